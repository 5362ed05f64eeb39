package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/Renagang21/o4o-platform-sub111/internal/infrastructure/telemetry"
	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/zap"
)

// Task is one unit of periodic background work
type Task interface {
	Run(ctx context.Context) error
}

// TaskFunc adapts a function to Task
type TaskFunc func(ctx context.Context) error

// Run calls f(ctx)
func (f TaskFunc) Run(ctx context.Context) error {
	return f(ctx)
}

// IntervalTriggerConfig holds configuration for an interval trigger
type IntervalTriggerConfig struct {
	Name     string
	Interval time.Duration
	// Timeout bounds a single run; zero means the interval is used
	Timeout time.Duration
	// RunOnStart runs the task once immediately after Start
	RunOnStart bool
}

// Validate checks the configuration
func (c IntervalTriggerConfig) Validate() error {
	if c.Name == "" {
		return fmt.Errorf("%w: name is required", ErrInvalidConfig)
	}
	if c.Interval <= 0 {
		return fmt.Errorf("%w: interval must be positive for %s", ErrInvalidConfig, c.Name)
	}
	return nil
}

// IntervalTrigger runs a task on a fixed interval. Runs never overlap: a tick that
// arrives while the previous run is still going is dropped.
type IntervalTrigger struct {
	config IntervalTriggerConfig
	task   Task
	logger *zap.Logger

	cancel    context.CancelFunc
	wg        sync.WaitGroup
	mu        sync.Mutex
	isRunning bool
	running   sync.Mutex
	lastRunAt time.Time
	lastErr   error
	runs      int
}

// NewIntervalTrigger creates a new interval trigger
func NewIntervalTrigger(config IntervalTriggerConfig, task Task, logger *zap.Logger) (*IntervalTrigger, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}
	if config.Timeout <= 0 {
		config.Timeout = config.Interval
	}
	return &IntervalTrigger{
		config: config,
		task:   task,
		logger: logger.With(zap.String("trigger", config.Name)),
	}, nil
}

// Start starts the trigger loop
func (t *IntervalTrigger) Start(ctx context.Context) error {
	t.mu.Lock()
	if t.isRunning {
		t.mu.Unlock()
		return ErrAlreadyRunning
	}
	t.isRunning = true
	ctx, t.cancel = context.WithCancel(ctx)
	t.mu.Unlock()

	t.wg.Add(1)
	go t.runLoop(ctx)

	t.logger.Info("Interval trigger started",
		zap.Duration("interval", t.config.Interval),
		zap.Duration("timeout", t.config.Timeout),
	)
	return nil
}

// Stop stops the trigger and waits for an in-flight run
func (t *IntervalTrigger) Stop(ctx context.Context) error {
	t.mu.Lock()
	if !t.isRunning {
		t.mu.Unlock()
		return nil
	}
	t.isRunning = false
	cancel := t.cancel
	t.mu.Unlock()

	if cancel != nil {
		cancel()
	}

	done := make(chan struct{})
	go func() {
		t.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		t.logger.Info("Interval trigger stopped")
		return nil
	case <-ctx.Done():
		t.logger.Warn("Interval trigger stop timed out")
		return ctx.Err()
	}
}

// IsRunning reports whether the loop is active
func (t *IntervalTrigger) IsRunning() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.isRunning
}

func (t *IntervalTrigger) runLoop(ctx context.Context) {
	defer t.wg.Done()

	if t.config.RunOnStart {
		t.tick(ctx)
	}

	ticker := time.NewTicker(t.config.Interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			t.tick(ctx)
		}
	}
}

func (t *IntervalTrigger) tick(ctx context.Context) {
	if !t.running.TryLock() {
		t.logger.Debug("Previous run still in progress, skipping tick")
		return
	}
	defer t.running.Unlock()
	_ = t.execute(ctx)
}

// RunNow executes the task synchronously, waiting for any in-flight run first
func (t *IntervalTrigger) RunNow(ctx context.Context) error {
	t.running.Lock()
	defer t.running.Unlock()
	return t.execute(ctx)
}

func (t *IntervalTrigger) execute(ctx context.Context) error {
	runCtx, cancel := context.WithTimeout(ctx, t.config.Timeout)
	defer cancel()

	runCtx, span := telemetry.StartSpan(runCtx, "scheduler."+t.config.Name,
		attribute.String("scheduler.job", t.config.Name))
	start := time.Now()
	err := t.task.Run(runCtx)
	telemetry.EndSpan(span, err)

	t.mu.Lock()
	t.lastRunAt = start
	t.lastErr = err
	t.runs++
	t.mu.Unlock()

	if err != nil {
		t.logger.Error("Scheduled run failed",
			zap.Duration("elapsed", time.Since(start)),
			zap.Error(err),
		)
		return err
	}
	t.logger.Debug("Scheduled run completed", zap.Duration("elapsed", time.Since(start)))
	return nil
}

// Stats returns the number of completed runs and the outcome of the last one
func (t *IntervalTrigger) Stats() (runs int, lastRunAt time.Time, lastErr error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.runs, t.lastRunAt, t.lastErr
}
