package executor

import "errors"

// Common error values returned by the executor
var (
	// ErrPoolStopped is returned by Submit once Shutdown has begun.
	// The task is never enqueued in that case.
	ErrPoolStopped = errors.New("executor: pool stopped")

	// ErrTaskAbandoned resolves the handle of a task that was still queued
	// when the pool shut down. It is a terminal outcome distinct from both
	// success and task failure.
	ErrTaskAbandoned = errors.New("executor: task abandoned at shutdown")

	// ErrNilTask is returned when a nil TaskFunc is submitted.
	ErrNilTask = errors.New("executor: nil task function")
)

// IsAbandoned reports whether err marks a task discarded unexecuted at shutdown.
func IsAbandoned(err error) bool {
	return errors.Is(err, ErrTaskAbandoned)
}
