package latency_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/petoverse-api/internal/errors"
	"github.com/KirkDiggler/petoverse-api/internal/pkg/latency"
)

func TestDo_RunsAfterDelay(t *testing.T) {
	start := time.Now()
	got, err := latency.Do(context.Background(), 20*time.Millisecond, func(context.Context) (string, error) {
		return "done", nil
	})

	require.NoError(t, err)
	assert.Equal(t, "done", got)
	assert.GreaterOrEqual(t, time.Since(start), 20*time.Millisecond)
}

func TestDo_ZeroDelayRunsImmediately(t *testing.T) {
	got, err := latency.Do(context.Background(), 0, func(context.Context) (int, error) {
		return 7, nil
	})

	require.NoError(t, err)
	assert.Equal(t, 7, got)
}

func TestDo_CancelledBeforeDelaySkipsEffect(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	called := false

	go func() {
		time.Sleep(10 * time.Millisecond)
		cancel()
	}()

	_, err := latency.Do(ctx, time.Second, func(context.Context) (struct{}, error) {
		called = true
		return struct{}{}, nil
	})

	require.Error(t, err)
	assert.True(t, errors.IsCanceled(err))
	assert.False(t, called)
}

func TestWait_DeadlineExceeded(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Millisecond)
	defer cancel()

	err := latency.Wait(ctx, time.Second)
	assert.Equal(t, errors.CodeDeadlineExceeded, errors.GetCode(err))
}
