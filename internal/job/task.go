package job

import (
	"context"
	"errors"
)

// RunFunc is the body of a task. It receives the outcomes of every task that
// executed before it in the chosen linearization, which is guaranteed to
// include all of the task's declared prerequisites. It must not mutate any
// shared state other than through its return value.
type RunFunc func(ctx context.Context, results Results) (map[string]any, error)

// Task is a named, single-execution unit of work. Tasks are plain values;
// prerequisites are declared when the task is registered on a Job.
type Task struct {
	ID  string
	Run RunFunc
}

// SkipError signals that a task deliberately did no work, typically because
// its configuration is absent. The engine records it as a Skipped outcome
// rather than a failure.
type SkipError struct {
	Reason string
}

func (e *SkipError) Error() string { return "skipped: " + e.Reason }

// Skip returns an error that marks the current task execution as skipped.
func Skip(reason string) error {
	return &SkipError{Reason: reason}
}

// IsSkip reports whether err marks a deliberate skip and, if so, its reason.
func IsSkip(err error) (string, bool) {
	var skip *SkipError
	if errors.As(err, &skip) {
		return skip.Reason, true
	}
	return "", false
}
