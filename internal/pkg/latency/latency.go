// Package latency simulates latency-bearing calls to an external collaborator
// that does not exist yet (auth, rewards ledger, chat backend).
package latency

import (
	"context"
	"time"

	"github.com/KirkDiggler/petoverse-api/internal/errors"
)

// Wait blocks for delay or until ctx is done, whichever comes first
func Wait(ctx context.Context, delay time.Duration) error {
	if err := ctx.Err(); err != nil {
		return errors.FromContext(err)
	}
	if delay <= 0 {
		return nil
	}

	timer := time.NewTimer(delay)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return errors.FromContext(ctx.Err())
	case <-timer.C:
		return nil
	}
}

// Do runs fn once delay has elapsed. If ctx ends first fn is never called, so a
// caller that went away never has the effect applied on its behalf.
func Do[T any](ctx context.Context, delay time.Duration, fn func(context.Context) (T, error)) (T, error) {
	var zero T
	if err := Wait(ctx, delay); err != nil {
		return zero, err
	}
	return fn(ctx)
}
