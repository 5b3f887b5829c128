package job

import (
	"context"
	"fmt"

	"github.com/ObserveRTC/report-connector/internal/ctxlog"
)

// Job is a DAG of named tasks and their prerequisite edges. The zero value
// is not usable; construct with New. A Job is not safe for concurrent
// mutation; the provisioning graph is assembled once at startup.
type Job struct {
	tasks   map[string]Task
	prereqs map[string]map[string]struct{}
	// order preserves task registration order so Execute produces a stable
	// linearization without imposing a canonical tie-break on callers.
	order []string
}

// New creates and returns an initialized, empty Job.
func New() *Job {
	return &Job{
		tasks:   make(map[string]Task),
		prereqs: make(map[string]map[string]struct{}),
	}
}

// AddTask registers a task and records a prerequisite edge for each listed
// id. Every prerequisite must already be registered: the construction order
// of the graph is leaf-first. A duplicate id or an unknown prerequisite is a
// TopologyError.
func (j *Job) AddTask(t Task, prerequisites ...string) error {
	if t.ID == "" {
		return topologyf(ErrDuplicateTask, "task id must not be empty")
	}
	if _, ok := j.tasks[t.ID]; ok {
		return topologyf(ErrDuplicateTask, "%q", t.ID)
	}
	set := make(map[string]struct{}, len(prerequisites))
	for _, p := range prerequisites {
		if _, ok := j.tasks[p]; !ok {
			return topologyf(ErrUnknownPrerequisite, "%q requires unregistered task %q", t.ID, p)
		}
		set[p] = struct{}{}
	}
	j.tasks[t.ID] = t
	j.prereqs[t.ID] = set
	j.order = append(j.order, t.ID)
	return nil
}

// AddEdge records an additional prerequisite edge between two registered
// tasks. Duplicate edges collapse. A self-referential edge is rejected
// immediately; any other cycle it introduces is caught during Execute.
func (j *Job) AddEdge(dependent, prerequisite string) error {
	if dependent == prerequisite {
		return topologyf(ErrCycle, "self-referential edge %q -> %q", dependent, prerequisite)
	}
	if _, ok := j.tasks[dependent]; !ok {
		return topologyf(ErrUnknownPrerequisite, "dependent task %q is not registered", dependent)
	}
	if _, ok := j.tasks[prerequisite]; !ok {
		return topologyf(ErrUnknownPrerequisite, "prerequisite task %q is not registered", prerequisite)
	}
	j.prereqs[dependent][prerequisite] = struct{}{}
	return nil
}

// Len returns the number of registered tasks.
func (j *Job) Len() int { return len(j.tasks) }

// Execute runs every registered task sequentially in a topological order
// consistent with all recorded edges, passing each task the outcomes
// accumulated so far. Task-body errors and panics are absorbed and recorded
// as Failed outcomes; Execute itself fails only when the topology is
// malformed, before any task body has run.
func (j *Job) Execute(ctx context.Context) (Results, error) {
	logger := ctxlog.FromContext(ctx)

	order, err := j.linearize()
	if err != nil {
		return nil, fmt.Errorf("ordering tasks: %w", err)
	}
	logger.Debug("Task order resolved.", "count", len(order))

	results := make(Results, len(order))
	for _, id := range order {
		results[id] = j.runTask(ctx, j.tasks[id], results)
	}
	return results, nil
}

// runTask invokes a single task body and converts its return (or panic) into
// a tagged outcome. All failure paths land here so one task can never abort
// its siblings.
func (j *Job) runTask(ctx context.Context, t Task, results Results) (out Outcome) {
	logger := ctxlog.FromContext(ctx)

	defer func() {
		if r := recover(); r != nil {
			logger.Error("Task panicked.", "taskId", t.ID, "panic", r)
			out = Outcome{Status: Failed, Data: map[string]any{}, Err: fmt.Errorf("task %q panicked: %v", t.ID, r)}
		}
	}()

	logger.Debug("Running task.", "taskId", t.ID)
	if t.Run == nil {
		return Outcome{Status: Success, Data: map[string]any{}}
	}

	data, err := t.Run(ctx, results)
	if err != nil {
		if reason, ok := IsSkip(err); ok {
			logger.Debug("Task skipped.", "taskId", t.ID, "reason", reason)
			return Outcome{Status: Skipped, Data: map[string]any{}, Reason: reason}
		}
		logger.Error("Task failed.", "taskId", t.ID, "error", err)
		return Outcome{Status: Failed, Data: map[string]any{}, Err: err}
	}
	if data == nil {
		data = map[string]any{}
	}
	return Outcome{Status: Success, Data: data}
}

// linearize computes a topological order over the registered tasks using
// Kahn's algorithm, scanning candidates in registration order so repeated
// executions of the same graph agree on the linearization.
func (j *Job) linearize() ([]string, error) {
	remaining := make(map[string]int, len(j.tasks))
	for id, set := range j.prereqs {
		remaining[id] = len(set)
	}

	dependents := make(map[string][]string, len(j.tasks))
	for _, id := range j.order {
		for p := range j.prereqs[id] {
			dependents[p] = append(dependents[p], id)
		}
	}

	order := make([]string, 0, len(j.tasks))
	scheduled := make(map[string]bool, len(j.tasks))
	for len(order) < len(j.tasks) {
		progressed := false
		for _, id := range j.order {
			if scheduled[id] || remaining[id] != 0 {
				continue
			}
			scheduled[id] = true
			order = append(order, id)
			for _, d := range dependents[id] {
				remaining[d]--
			}
			progressed = true
		}
		if !progressed {
			return nil, topologyf(ErrCycle, "involving %s", j.firstUnscheduled(scheduled))
		}
	}
	return order, nil
}

func (j *Job) firstUnscheduled(scheduled map[string]bool) string {
	for _, id := range j.order {
		if !scheduled[id] {
			return fmt.Sprintf("%q", id)
		}
	}
	return "<none>"
}
