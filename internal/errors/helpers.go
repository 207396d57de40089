package errors

import (
	"context"
	"errors"
)

// As is errors.As narrowed to *Error
func As(err error, target **Error) bool {
	return errors.As(err, target)
}

// Is is errors.Is
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// GetCode extracts the code, CodeInternal for foreign errors and CodeOK for nil
func GetCode(err error) Code {
	if err == nil {
		return CodeOK
	}

	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return CodeInternal
}

// GetMeta extracts metadata from an error
func GetMeta(err error) map[string]any {
	var e *Error
	if errors.As(err, &e) {
		return e.Meta
	}
	return nil
}

// GetMessage returns the outermost player-facing message
func GetMessage(err error) string {
	if err == nil {
		return ""
	}

	var e *Error
	if errors.As(err, &e) {
		return e.Message
	}
	return err.Error()
}

// RootMessage returns the message of the innermost *Error in the chain. Validation
// failures are created deep in the orchestrators and wrapped on the way out; this
// recovers the text that should be shown inline.
func RootMessage(err error) string {
	msg := GetMessage(err)
	for err != nil {
		var e *Error
		if !errors.As(err, &e) {
			break
		}
		msg = e.Message
		err = e.Cause
	}
	return msg
}

// FromContext maps a context failure to a coded error
func FromContext(err error) *Error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, context.Canceled):
		return WrapWithCode(err, CodeCanceled, "request canceled")
	case errors.Is(err, context.DeadlineExceeded):
		return WrapWithCode(err, CodeDeadlineExceeded, "request timed out")
	default:
		return Wrap(err, "context error")
	}
}

// IsNotFound checks if an error is a not found error
func IsNotFound(err error) bool { return GetCode(err) == CodeNotFound }

// IsInvalidArgument checks if an error is an invalid argument error
func IsInvalidArgument(err error) bool { return GetCode(err) == CodeInvalidArgument }

// IsAlreadyExists checks if an error is an already exists error
func IsAlreadyExists(err error) bool { return GetCode(err) == CodeAlreadyExists }

// IsFailedPrecondition checks if an error is a failed precondition error
func IsFailedPrecondition(err error) bool { return GetCode(err) == CodeFailedPrecondition }

// IsUnauthenticated checks if an error is an unauthenticated error
func IsUnauthenticated(err error) bool { return GetCode(err) == CodeUnauthenticated }

// IsInternal checks if an error is an internal error
func IsInternal(err error) bool { return GetCode(err) == CodeInternal }

// IsCanceled checks if an error is a canceled error
func IsCanceled(err error) bool { return GetCode(err) == CodeCanceled }
