package job

// Status is the terminal state of a single task execution.
type Status int

const (
	// Success means the task body returned normally.
	Success Status = iota
	// Skipped means the task body declined to do any work.
	Skipped
	// Failed means the task body returned an error or panicked. The failure
	// was absorbed at the engine boundary and siblings were unaffected.
	Failed
)

// String returns a human-readable name for the status.
func (s Status) String() string {
	switch s {
	case Success:
		return "success"
	case Skipped:
		return "skipped"
	case Failed:
		return "failed"
	default:
		return "unknown"
	}
}

// Outcome is the tagged result of one task execution. Exactly one of Reason
// (Skipped) and Err (Failed) is meaningful; Data is always non-nil.
type Outcome struct {
	Status Status
	Data   map[string]any
	Reason string
	Err    error
}

// Results is the accumulating per-execution table mapping task id to that
// task's outcome. Each entry is written exactly once, by the engine, after
// the owning task finishes.
type Results map[string]Outcome
