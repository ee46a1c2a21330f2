package executor

import (
	"fmt"
	"log/slog"
	"runtime"
	"sync"
	"sync/atomic"
	"time"
)

// Stats is a point-in-time snapshot of a pool's execution counters.
// Reading it never blocks task submission or execution.
type Stats struct {
	// Workers is the fixed worker count chosen at construction
	Workers int `json:"workers" yaml:"workers"`

	// ActiveTasks is the number of workers currently executing a task
	ActiveTasks int `json:"activeTasks" yaml:"activeTasks"`

	// CompletedTasks counts every task that finished, success or failure
	CompletedTasks uint64 `json:"completedTasks" yaml:"completedTasks"`

	// TotalExecutionTime is the cumulative wall-clock time spent in tasks
	TotalExecutionTime time.Duration `json:"totalExecutionTime" yaml:"totalExecutionTime"`

	// AverageTaskTime is TotalExecutionTime / CompletedTasks, zero when
	// nothing has completed yet
	AverageTaskTime time.Duration `json:"averageTaskTime" yaml:"averageTaskTime"`
}

// Pool is a fixed-size worker pool serving one FIFO task queue. Workers are
// started at construction and live until Shutdown; no goroutine is created or
// torn down per task. All methods are safe for concurrent use.
type Pool struct {
	workers int
	queue   *taskQueue
	logger  *slog.Logger

	// completed and totalExec are updated by workers without taking the
	// queue lock, so Stats stays non-blocking
	completed atomic.Uint64
	totalExec atomic.Int64 // nanoseconds

	stopped atomic.Bool
	wg      sync.WaitGroup
}

// New creates a pool and starts its workers.
// workers <= 0 defaults to the available hardware parallelism.
func New(workers int, logger *slog.Logger) *Pool {
	if workers <= 0 {
		workers = runtime.NumCPU()
	}

	if logger == nil {
		logger = slog.Default()
	}

	p := &Pool{
		workers: workers,
		queue:   newTaskQueue(),
		logger:  logger,
	}

	p.wg.Add(workers)
	for i := 0; i < workers; i++ {
		go p.worker(i)
	}

	p.logger.Debug("pool started", "workers", workers)
	return p
}

// Submit enqueues fn for execution and returns its handle. Submission is O(1)
// and never waits for the task to run; it wakes one idle worker or leaves the
// task queued when all workers are busy. Fails with ErrPoolStopped after
// Shutdown has begun.
func (p *Pool) Submit(fn TaskFunc) (*Handle, error) {
	if fn == nil {
		return nil, ErrNilTask
	}

	t := &task{fn: fn, handle: newHandle()}
	if err := p.queue.push(t); err != nil {
		return nil, err
	}

	return t.handle, nil
}

// SubmitBatch submits every function in fns, preserving input order in the
// returned handles. There is no atomicity across the batch: if an enqueue
// fails mid-batch (only possible when shutdown races with submission), the
// batch aborts immediately and the handles issued so far are returned with
// the error.
func (p *Pool) SubmitBatch(fns []TaskFunc) ([]*Handle, error) {
	handles := make([]*Handle, 0, len(fns))

	for i, fn := range fns {
		h, err := p.Submit(fn)
		if err != nil {
			return handles, fmt.Errorf("batch aborted at task %d: %w", i, err)
		}
		handles = append(handles, h)
	}

	return handles, nil
}

// WaitForAll blocks until the queue is empty and no worker is running a task,
// i.e. everything submitted before the call has resolved. Tasks submitted
// concurrently by other goroutines may or may not be covered.
func (p *Pool) WaitForAll() {
	p.queue.waitIdle()
}

// Stats returns a point-in-time snapshot of the pool's counters.
func (p *Pool) Stats() Stats {
	_, active := p.queue.snapshot()
	completed := p.completed.Load()
	total := time.Duration(p.totalExec.Load())

	var avg time.Duration
	if completed > 0 {
		avg = total / time.Duration(completed)
	}

	return Stats{
		Workers:            p.workers,
		ActiveTasks:        active,
		CompletedTasks:     completed,
		TotalExecutionTime: total,
		AverageTaskTime:    avg,
	}
}

// Workers returns the fixed worker count of the pool.
func (p *Pool) Workers() int {
	return p.workers
}

// Stopped reports whether Shutdown has been called.
func (p *Pool) Stopped() bool {
	return p.stopped.Load()
}

// Shutdown stops the pool and joins every worker. Tasks still queued are
// discarded without running; their handles resolve with ErrTaskAbandoned.
// Tasks already executing run to completion. Shutdown is idempotent; a
// second call returns immediately.
func (p *Pool) Shutdown() {
	if !p.stopped.CompareAndSwap(false, true) {
		return
	}

	discarded := p.queue.stop()
	for _, t := range discarded {
		t.abandon()
	}

	if len(discarded) > 0 {
		p.logger.Debug("abandoned queued tasks", "count", len(discarded))
	}

	p.wg.Wait()
	p.logger.Debug("pool stopped", "completed", p.completed.Load())
}

// worker is the loop bound to one worker goroutine for the pool's lifetime.
// It blocks on the queue while idle and exits once the pool has stopped and
// the queue is drained.
func (p *Pool) worker(id int) {
	defer p.wg.Done()

	for {
		t, ok := p.queue.next()
		if !ok {
			p.logger.Debug("worker exiting", "worker", id)
			return
		}

		// run resolves the handle before the completion counters and the
		// idle signal are touched, so a caller returning from WaitForAll
		// never finds an unresolved handle.
		res := t.run()

		p.totalExec.Add(int64(res.Duration))
		p.completed.Add(1)
		p.queue.finish()

		if res.Err != nil {
			p.logger.Debug("task failed",
				"worker", id,
				"error", res.Err,
				"duration", res.Duration)
		}
	}
}
