package scheduler

import "errors"

var (
	// ErrInvalidConfig is returned when a trigger is configured without a name or interval
	ErrInvalidConfig = errors.New("invalid trigger configuration")

	// ErrAlreadyRunning is returned by Start on a trigger whose loop is active
	ErrAlreadyRunning = errors.New("trigger already running")
)
