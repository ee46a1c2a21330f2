package executor

import "sync"

// taskQueue is the FIFO buffer shared by one pool's workers. A single mutex
// guards the task slice, the running-task count, and the stopped flag; two
// conditions hang off it: notEmpty wakes idle workers, idle wakes WaitForAll
// callers. idle is signaled on every task completion, not only on submission:
// a waiter whose predicate is satisfied by the last outstanding task finishing
// must still be woken.
type taskQueue struct {
	mu       sync.Mutex
	notEmpty *sync.Cond
	idle     *sync.Cond
	tasks    []*task
	active   int
	stopped  bool
}

func newTaskQueue() *taskQueue {
	q := &taskQueue{}
	q.notEmpty = sync.NewCond(&q.mu)
	q.idle = sync.NewCond(&q.mu)
	return q
}

// push appends t in submission order and wakes one idle worker.
// Fails with ErrPoolStopped once stop has been called; the task is not kept.
func (q *taskQueue) push(t *task) error {
	q.mu.Lock()
	defer q.mu.Unlock()

	if q.stopped {
		return ErrPoolStopped
	}

	q.tasks = append(q.tasks, t)
	q.notEmpty.Signal()
	return nil
}

// next blocks until a task is available or the queue has stopped and drained.
// The dequeue and the active-count increment happen in one critical section,
// so WaitForAll can never observe a task that is neither queued nor active.
func (q *taskQueue) next() (*task, bool) {
	q.mu.Lock()
	defer q.mu.Unlock()

	for len(q.tasks) == 0 && !q.stopped {
		q.notEmpty.Wait()
	}

	if len(q.tasks) == 0 {
		return nil, false
	}

	t := q.tasks[0]
	q.tasks[0] = nil // release for GC
	q.tasks = q.tasks[1:]
	q.active++
	return t, true
}

// finish marks one running task as done and wakes WaitForAll callers so they
// can re-check their predicate.
func (q *taskQueue) finish() {
	q.mu.Lock()
	q.active--
	q.idle.Broadcast()
	q.mu.Unlock()
}

// waitIdle blocks until the queue is empty and no task is running. Tasks
// submitted while waiting may or may not be observed, but everything
// outstanding at call entry is covered by the predicate.
func (q *taskQueue) waitIdle() {
	q.mu.Lock()
	for len(q.tasks) > 0 || q.active > 0 {
		q.idle.Wait()
	}
	q.mu.Unlock()
}

// stop rejects all future pushes, wakes every blocked worker and waiter, and
// returns the tasks that never started so the caller can abandon their
// handles. Safe to call more than once; later calls return nil.
func (q *taskQueue) stop() []*task {
	q.mu.Lock()
	defer q.mu.Unlock()

	if q.stopped {
		return nil
	}

	q.stopped = true
	discarded := q.tasks
	q.tasks = nil

	q.notEmpty.Broadcast()
	q.idle.Broadcast()
	return discarded
}

// snapshot returns the current queued and running counts.
func (q *taskQueue) snapshot() (pending, active int) {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.tasks), q.active
}
