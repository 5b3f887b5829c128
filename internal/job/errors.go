package job

import (
	"errors"
	"fmt"
)

var (
	// ErrDuplicateTask is returned when a task id is registered twice.
	ErrDuplicateTask = errors.New("duplicate task id")
	// ErrUnknownPrerequisite is returned when an edge references a task id
	// that has not been registered yet.
	ErrUnknownPrerequisite = errors.New("unknown prerequisite")
	// ErrCycle is returned when the prerequisite relation is not acyclic.
	ErrCycle = errors.New("dependency cycle")
)

// TopologyError wraps a graph construction or ordering failure. These are
// programmer errors in how a fixed graph is assembled, never runtime input
// errors, and callers are expected to treat them as startup-fatal.
type TopologyError struct {
	Kind error
	Msg  string
}

func (e *TopologyError) Error() string {
	if e.Msg == "" {
		return e.Kind.Error()
	}
	return fmt.Sprintf("%s: %s", e.Kind.Error(), e.Msg)
}

func (e *TopologyError) Unwrap() error { return e.Kind }

func topologyf(kind error, format string, args ...any) error {
	return &TopologyError{Kind: kind, Msg: fmt.Sprintf(format, args...)}
}
