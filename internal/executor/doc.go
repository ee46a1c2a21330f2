// Package executor provides a parallel task execution engine: fixed-size
// worker pools fed by FIFO queues, with future-like handles for result
// delivery and a round-robin scheduler for balancing work across pools.
//
// # Key Features
//
//   - Fixed worker count per pool, chosen at construction (no per-task goroutines)
//   - Non-blocking submission returning a Handle that resolves exactly once
//   - Panic-safe workers: a failing task never takes its worker down
//   - Race-free WaitForAll signaled on every task completion
//   - Idempotent shutdown that abandons queued tasks explicitly instead of
//     leaving their handles unresolved
//   - Point-in-time execution statistics per pool
//
// # Basic Usage
//
// Create a pool, submit work, wait, read results:
//
//	pool := executor.New(4, logger)
//	defer pool.Shutdown()
//
//	handle, err := pool.Submit(func() (any, error) {
//	    return computeSomething(), nil
//	})
//	if err != nil {
//	    return err
//	}
//
//	pool.WaitForAll()
//	res := handle.Wait()
//
// # Outcomes
//
// Every handle resolves to exactly one of three terminal outcomes:
//
//   - success: res.Err == nil, res.Value holds the return value
//   - failure: the task returned an error or panicked; res.Err describes it
//   - abandoned: the pool shut down before the task started;
//     executor.IsAbandoned(res.Err) reports true
//
// # Multiple Pools
//
// A Scheduler spreads submissions across several pools in round-robin order:
//
//	sched := executor.NewScheduler(2, 4, logger)
//	defer sched.Shutdown()
//
//	handle, err := sched.Submit(work)
//
// # Concurrency Guarantees
//
//   - FIFO start order within one pool (completion order is unordered when
//     more than one worker runs)
//   - Submission, waiting, stats, and shutdown are safe from any goroutine
//   - A task runs at most once; its handle resolves exactly once
//   - Running tasks are never interrupted by shutdown
//
// Tasks must be independently safe to run concurrently with one another. Work
// that has to serialize on an external exclusivity token can be wrapped with
// Exclusive.
package executor
