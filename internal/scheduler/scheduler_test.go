package scheduler

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-BarberBooking/pkg/logger"
)

func TestScheduler_InvalidSpec(t *testing.T) {
	s := New(time.UTC, time.Second, logger.NewNop())

	err := s.Register("purge", "not a cron spec", false, func(ctx context.Context) error { return nil })
	assert.Error(t, err)
}

func TestScheduler_DisabledJob(t *testing.T) {
	s := New(time.UTC, time.Second, logger.NewNop())

	var calls atomic.Int32
	require.NoError(t, s.Register("purge", "", true, func(ctx context.Context) error {
		calls.Add(1)
		return nil
	}))

	s.Start()
	require.NoError(t, s.Stop(context.Background()))
	assert.Equal(t, int32(0), calls.Load())
}

func TestScheduler_RunOnStart(t *testing.T) {
	s := New(time.UTC, time.Second, logger.NewNop())

	var calls atomic.Int32
	require.NoError(t, s.Register("purge", "@every 1h", true, func(ctx context.Context) error {
		_, hasDeadline := ctx.Deadline()
		assert.True(t, hasDeadline)
		calls.Add(1)
		return nil
	}))
	require.NoError(t, s.Register("reminders", "@every 1h", false, func(ctx context.Context) error {
		calls.Add(10)
		return errors.New("must not run")
	}))

	s.Start()
	// Stop дожидается стартовых задач
	require.NoError(t, s.Stop(context.Background()))
	assert.Equal(t, int32(1), calls.Load())
}

func TestScheduler_StopTimeout(t *testing.T) {
	s := New(time.UTC, 0, logger.NewNop())

	release := make(chan struct{})
	t.Cleanup(func() { close(release) })

	require.NoError(t, s.Register("slow", "@every 1h", true, func(ctx context.Context) error {
		<-release
		return nil
	}))

	s.Start()

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()
	assert.ErrorIs(t, s.Stop(ctx), context.DeadlineExceeded)
}
