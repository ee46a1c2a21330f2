package executor

import (
	"context"
	"fmt"
	"sync"
	"time"
)

// TaskFunc is a single unit of work. It is invoked exactly once, on a worker
// goroutine other than the submitter's, so it must not rely on the caller's
// goroutine-local state. Recoverable errors should be returned; panics are
// captured into the task's failure result.
type TaskFunc func() (any, error)

// Result is the terminal outcome of a task: a value on success, an error on
// failure, or ErrTaskAbandoned when the task was discarded at shutdown before
// it ever ran.
type Result struct {
	// Value contains the successful return value (nil if an error occurred)
	Value any

	// Err contains the task's error, a recovered panic, or ErrTaskAbandoned
	Err error

	// Duration is how long the task took to execute (zero if abandoned)
	Duration time.Duration
}

// Handle is the caller-facing future for one submitted task. It resolves
// exactly once, with success, failure, or the abandoned outcome, and every
// read after resolution returns the same Result.
type Handle struct {
	res  Result
	done chan struct{}
}

func newHandle() *Handle {
	return &Handle{done: make(chan struct{})}
}

// Done returns a channel that is closed once the task has resolved.
// Useful in select statements alongside other channels.
func (h *Handle) Done() <-chan struct{} {
	return h.done
}

// Wait blocks until the task resolves and returns its result.
// It is safe to call Wait multiple times and from multiple goroutines.
func (h *Handle) Wait() Result {
	<-h.done
	return h.res
}

// WaitContext blocks until the task resolves or ctx is cancelled.
// Cancellation abandons only the wait, never the task itself.
func (h *Handle) WaitContext(ctx context.Context) (Result, error) {
	select {
	case <-h.done:
		return h.res, nil
	case <-ctx.Done():
		return Result{}, ctx.Err()
	}
}

// Resolved reports whether the task has already resolved, without blocking.
func (h *Handle) Resolved() bool {
	select {
	case <-h.done:
		return true
	default:
		return false
	}
}

// resolve publishes the result and unblocks all waiters. Each task has
// exactly one owner at a time (submitter, queue, then a single worker or the
// shutdown path), so resolve is called exactly once per handle.
func (h *Handle) resolve(res Result) {
	h.res = res
	close(h.done)
}

// task pairs a callable with the handle its outcome is delivered through.
type task struct {
	fn     TaskFunc
	handle *Handle
}

// run executes the callable, converts panics into failure results, and
// resolves the handle. The returned result carries the measured wall-clock
// duration for the pool's accumulators.
func (t *task) run() Result {
	start := time.Now()

	var res Result
	func() {
		defer func() {
			if r := recover(); r != nil {
				res.Err = fmt.Errorf("task panicked: %v", r)
			}
		}()
		res.Value, res.Err = t.fn()
	}()

	res.Duration = time.Since(start)
	t.handle.resolve(res)
	return res
}

// abandon resolves the handle with the abandoned outcome. Called only for
// tasks removed from the queue at shutdown, so a waiting consumer never
// blocks forever on a task that will not run.
func (t *task) abandon() {
	t.handle.resolve(Result{Err: ErrTaskAbandoned})
}

// Exclusive wraps fn so that every invocation holds l for its full duration.
// Use it for work that must serialize on an external exclusivity token, such
// as callbacks into a runtime that allows only one concurrent caller.
func Exclusive(l sync.Locker, fn TaskFunc) TaskFunc {
	return func() (any, error) {
		l.Lock()
		defer l.Unlock()
		return fn()
	}
}
