package config

import (
	stderrors "errors"
	"sync"

	"github.com/go-playground/validator/v10"

	"github.com/KirkDiggler/petoverse-api/internal/errors"
)

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate
)

// validatorInstance returns the shared validator used for config structs
func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		validateInst = validator.New(validator.WithRequiredStructEnabled())
	})
	return validateInst
}

// Validate checks every section and reports all failing fields at once
func (c *Config) Validate() error {
	err := validatorInstance().Struct(c)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !stderrors.As(err, &fieldErrs) {
		return errors.Wrap(err, "failed to validate config")
	}

	vb := errors.NewValidationBuilder()
	for _, fe := range fieldErrs {
		vb.Fieldf(fe.Namespace(), "failed %q rule (value %v)", fe.Tag(), fe.Value())
	}
	return vb.Build()
}
