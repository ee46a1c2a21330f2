package executor

import (
	"testing"
	"time"
)

func newTestTask() *task {
	return &task{
		fn:     func() (any, error) { return nil, nil },
		handle: newHandle(),
	}
}

func TestTaskQueue_FIFO(t *testing.T) {
	q := newTaskQueue()

	tasks := make([]*task, 5)
	for i := range tasks {
		tasks[i] = newTestTask()
		if err := q.push(tasks[i]); err != nil {
			t.Fatalf("push failed: %v", err)
		}
	}

	for i := range tasks {
		got, ok := q.next()
		if !ok {
			t.Fatalf("next returned not-ok at position %d", i)
		}
		if got != tasks[i] {
			t.Fatalf("dequeue order broken at position %d", i)
		}
	}

	pending, active := q.snapshot()
	if pending != 0 {
		t.Errorf("expected empty queue, got %d pending", pending)
	}
	if active != 5 {
		t.Errorf("expected 5 active after 5 dequeues, got %d", active)
	}
}

func TestTaskQueue_PushAfterStop(t *testing.T) {
	q := newTaskQueue()
	q.stop()

	if err := q.push(newTestTask()); err != ErrPoolStopped {
		t.Errorf("expected ErrPoolStopped, got %v", err)
	}
}

func TestTaskQueue_StopReturnsQueuedTasks(t *testing.T) {
	q := newTaskQueue()

	for i := 0; i < 3; i++ {
		if err := q.push(newTestTask()); err != nil {
			t.Fatalf("push failed: %v", err)
		}
	}

	discarded := q.stop()
	if len(discarded) != 3 {
		t.Fatalf("expected 3 discarded tasks, got %d", len(discarded))
	}

	// A second stop is a no-op
	if again := q.stop(); again != nil {
		t.Errorf("expected nil from repeated stop, got %d tasks", len(again))
	}
}

func TestTaskQueue_NextUnblocksOnStop(t *testing.T) {
	q := newTaskQueue()

	done := make(chan bool)
	go func() {
		_, ok := q.next()
		done <- ok
	}()

	time.Sleep(20 * time.Millisecond)
	q.stop()

	select {
	case ok := <-done:
		if ok {
			t.Error("next should report not-ok after stop on an empty queue")
		}
	case <-time.After(2 * time.Second):
		t.Fatal("next did not unblock on stop")
	}
}

func TestTaskQueue_WaitIdleWakesOnCompletion(t *testing.T) {
	q := newTaskQueue()

	if err := q.push(newTestTask()); err != nil {
		t.Fatalf("push failed: %v", err)
	}
	if _, ok := q.next(); !ok {
		t.Fatal("next failed on non-empty queue")
	}

	waited := make(chan struct{})
	go func() {
		q.waitIdle()
		close(waited)
	}()

	select {
	case <-waited:
		t.Fatal("waitIdle returned with a task still active")
	case <-time.After(20 * time.Millisecond):
	}

	// Completion, not submission, is what wakes the waiter
	q.finish()

	select {
	case <-waited:
	case <-time.After(2 * time.Second):
		t.Fatal("waitIdle did not wake on completion")
	}
}
