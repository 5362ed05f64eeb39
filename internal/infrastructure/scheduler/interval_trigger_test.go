package scheduler

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestIntervalTriggerConfig_Validate(t *testing.T) {
	assert.ErrorIs(t, IntervalTriggerConfig{Interval: time.Second}.Validate(), ErrInvalidConfig)
	assert.ErrorIs(t, IntervalTriggerConfig{Name: "confirm"}.Validate(), ErrInvalidConfig)
	assert.NoError(t, IntervalTriggerConfig{Name: "confirm", Interval: time.Second}.Validate())
}

func TestIntervalTrigger_RunsOnInterval(t *testing.T) {
	var calls atomic.Int32
	trigger, err := NewIntervalTrigger(
		IntervalTriggerConfig{Name: "test", Interval: 10 * time.Millisecond},
		TaskFunc(func(ctx context.Context) error {
			calls.Add(1)
			return nil
		}),
		zap.NewNop(),
	)
	require.NoError(t, err)

	require.NoError(t, trigger.Start(context.Background()))
	assert.True(t, trigger.IsRunning())
	assert.ErrorIs(t, trigger.Start(context.Background()), ErrAlreadyRunning)

	assert.Eventually(t, func() bool { return calls.Load() >= 3 }, time.Second, 5*time.Millisecond)

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	require.NoError(t, trigger.Stop(ctx))
	assert.False(t, trigger.IsRunning())

	stopped := calls.Load()
	time.Sleep(30 * time.Millisecond)
	assert.Equal(t, stopped, calls.Load())
}

func TestIntervalTrigger_RunOnStart(t *testing.T) {
	ran := make(chan struct{}, 1)
	trigger, err := NewIntervalTrigger(
		IntervalTriggerConfig{Name: "test", Interval: time.Hour, RunOnStart: true},
		TaskFunc(func(ctx context.Context) error {
			select {
			case ran <- struct{}{}:
			default:
			}
			return nil
		}),
		zap.NewNop(),
	)
	require.NoError(t, err)
	require.NoError(t, trigger.Start(context.Background()))
	defer trigger.Stop(context.Background())

	select {
	case <-ran:
	case <-time.After(time.Second):
		t.Fatal("task did not run on start")
	}
}

func TestIntervalTrigger_RunNowRecordsOutcome(t *testing.T) {
	boom := errors.New("boom")
	trigger, err := NewIntervalTrigger(
		IntervalTriggerConfig{Name: "test", Interval: time.Hour},
		TaskFunc(func(ctx context.Context) error {
			_, hasDeadline := ctx.Deadline()
			assert.True(t, hasDeadline)
			return boom
		}),
		zap.NewNop(),
	)
	require.NoError(t, err)

	err = trigger.RunNow(context.Background())
	assert.ErrorIs(t, err, boom)

	runs, lastRunAt, lastErr := trigger.Stats()
	assert.Equal(t, 1, runs)
	assert.False(t, lastRunAt.IsZero())
	assert.ErrorIs(t, lastErr, boom)
}

func TestIntervalTrigger_TicksDoNotOverlap(t *testing.T) {
	var inFlight, maxInFlight atomic.Int32
	trigger, err := NewIntervalTrigger(
		IntervalTriggerConfig{Name: "slow", Interval: 5 * time.Millisecond, Timeout: time.Second},
		TaskFunc(func(ctx context.Context) error {
			n := inFlight.Add(1)
			for {
				m := maxInFlight.Load()
				if n <= m || maxInFlight.CompareAndSwap(m, n) {
					break
				}
			}
			time.Sleep(25 * time.Millisecond)
			inFlight.Add(-1)
			return nil
		}),
		zap.NewNop(),
	)
	require.NoError(t, err)
	require.NoError(t, trigger.Start(context.Background()))

	time.Sleep(100 * time.Millisecond)
	require.NoError(t, trigger.Stop(context.Background()))
	assert.Equal(t, int32(1), maxInFlight.Load())
}
