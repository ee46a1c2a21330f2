package executor

import (
	"fmt"
	"strings"
	"time"
)

// CountSuccessful returns the number of successful results.
func CountSuccessful(results []Result) int {
	count := 0
	for _, r := range results {
		if r.Err == nil {
			count++
		}
	}
	return count
}

// CountFailed returns the number of failed results, excluding abandoned ones.
func CountFailed(results []Result) int {
	count := 0
	for _, r := range results {
		if r.Err != nil && !IsAbandoned(r.Err) {
			count++
		}
	}
	return count
}

// CountAbandoned returns the number of tasks discarded unexecuted at shutdown.
func CountAbandoned(results []Result) int {
	count := 0
	for _, r := range results {
		if IsAbandoned(r.Err) {
			count++
		}
	}
	return count
}

// Errors extracts the errors of failed results, abandoned ones included.
func Errors(results []Result) []error {
	errs := make([]error, 0)
	for _, r := range results {
		if r.Err != nil {
			errs = append(errs, r.Err)
		}
	}
	return errs
}

// Summary aggregates a batch of resolved results.
type Summary struct {
	Total       int
	Successful  int
	Failed      int
	Abandoned   int
	AvgDuration time.Duration
}

// Summarize builds a summary over resolved results.
func Summarize(results []Result) Summary {
	s := Summary{
		Total:      len(results),
		Successful: CountSuccessful(results),
		Failed:     CountFailed(results),
		Abandoned:  CountAbandoned(results),
	}

	executed := s.Successful + s.Failed
	if executed > 0 {
		var total time.Duration
		for _, r := range results {
			total += r.Duration
		}
		s.AvgDuration = total / time.Duration(executed)
	}

	return s
}

// String returns a human-readable one-line summary.
func (s Summary) String() string {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Total: %d, ", s.Total))
	sb.WriteString(fmt.Sprintf("Successful: %d, ", s.Successful))
	sb.WriteString(fmt.Sprintf("Failed: %d", s.Failed))

	if s.Abandoned > 0 {
		sb.WriteString(fmt.Sprintf(", Abandoned: %d", s.Abandoned))
	}
	if s.Total > 0 {
		sb.WriteString(fmt.Sprintf(", Avg: %s", s.AvgDuration.Round(time.Millisecond)))
	}

	return sb.String()
}
