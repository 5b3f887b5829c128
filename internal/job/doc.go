// Package job is the dependency-ordered task execution engine behind the
// schema provisioning job. A Job holds named tasks and their prerequisite
// edges, validates the topology at construction time, and executes the tasks
// strictly sequentially in a valid linearization, threading an accumulating
// results table into each task.
//
// Task-body failures are fail-soft: they are caught at the engine boundary,
// logged, and recorded as a Failed outcome so sibling tasks still run. Only
// a malformed topology fails an Execute call as a whole.
package job
