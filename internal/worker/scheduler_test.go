package worker

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-StudioBooking/pkg/logger"
)

func TestScheduler_Every(t *testing.T) {
	var calls atomic.Int32

	s := NewScheduler(time.UTC, logger.NewNop())
	require.NoError(t, s.Every("tick", time.Second, time.Second, JobFunc(func(ctx context.Context) error {
		calls.Add(1)
		return errors.New("ignored")
	})))

	s.Start()
	assert.Eventually(t, func() bool { return calls.Load() >= 1 }, 3*time.Second, 50*time.Millisecond)

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	assert.NoError(t, s.Stop(ctx))
}

func TestScheduler_InvalidInterval(t *testing.T) {
	s := NewScheduler(nil, logger.NewNop())
	assert.Error(t, s.Every("bad", 0, 0, JobFunc(func(context.Context) error { return nil })))
}

func TestScheduler_StopCancelsRunningJob(t *testing.T) {
	started := make(chan struct{})
	s := NewScheduler(time.UTC, logger.NewNop())
	require.NoError(t, s.Every("slow", time.Second, 0, JobFunc(func(ctx context.Context) error {
		close(started)
		<-ctx.Done()
		return ctx.Err()
	})))

	s.Start()
	select {
	case <-started:
	case <-time.After(3 * time.Second):
		t.Fatal("job did not start")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	assert.NoError(t, s.Stop(ctx))
}
