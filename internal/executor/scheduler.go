package executor

import (
	"log/slog"
	"runtime"
	"sync/atomic"
)

// Scheduler routes submissions across a set of pools in round-robin order.
// The cursor advances by one per submission regardless of task duration, so
// long-run distribution is even but not load-aware. The scheduler owns its
// pools and tears them down on Shutdown.
type Scheduler struct {
	pools  []*Pool
	cursor atomic.Uint64
	logger *slog.Logger

	stopped atomic.Bool
}

// NewScheduler creates a scheduler owning the given number of pools.
// executors <= 0 defaults to 1. workersPerPool <= 0 splits the available
// hardware parallelism evenly across the pools, with at least one worker
// each.
func NewScheduler(executors, workersPerPool int, logger *slog.Logger) *Scheduler {
	if executors <= 0 {
		executors = 1
	}

	if logger == nil {
		logger = slog.Default()
	}

	if workersPerPool <= 0 {
		workersPerPool = runtime.NumCPU() / executors
		if workersPerPool < 1 {
			workersPerPool = 1
		}
	}

	s := &Scheduler{
		pools:  make([]*Pool, 0, executors),
		logger: logger,
	}

	for i := 0; i < executors; i++ {
		s.pools = append(s.pools, New(workersPerPool, logger.With("pool", i)))
	}

	logger.Debug("scheduler started",
		"pools", executors,
		"workersPerPool", workersPerPool)

	return s
}

// Submit forwards fn to the next pool in round-robin order. The i-th
// submission lands on pool i mod M. Error semantics match Pool.Submit.
func (s *Scheduler) Submit(fn TaskFunc) (*Handle, error) {
	i := int((s.cursor.Add(1) - 1) % uint64(len(s.pools)))
	return s.pools[i].Submit(fn)
}

// WaitForAll blocks until every owned pool has quiesced.
func (s *Scheduler) WaitForAll() {
	for _, p := range s.pools {
		p.WaitForAll()
	}
}

// AllStats returns one stat snapshot per owned pool, in construction order.
func (s *Scheduler) AllStats() []Stats {
	stats := make([]Stats, 0, len(s.pools))
	for _, p := range s.pools {
		stats = append(stats, p.Stats())
	}
	return stats
}

// Pools returns the number of pools the scheduler owns.
func (s *Scheduler) Pools() int {
	return len(s.pools)
}

// Shutdown shuts down every owned pool. Idempotent.
func (s *Scheduler) Shutdown() {
	if !s.stopped.CompareAndSwap(false, true) {
		return
	}

	for _, p := range s.pools {
		p.Shutdown()
	}

	s.logger.Debug("scheduler stopped", "pools", len(s.pools))
}
