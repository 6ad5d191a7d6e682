// Package task defines tasks and the scheduling metadata attached to them.
//
// A task is a named unit of remote-execution work. Annotations (target hosts,
// target roles, ordering preference, run-once semantics, settings overrides)
// are plain data held next to the runner in an explicit Metadata record; the
// dispatcher looks metadata up through a Registry instead of introspecting
// function values. Annotating a task never changes how its runner is called.
package task

import "context"

// Runner is the body of a task. The dispatcher invokes it once per resolved
// host; args carry any positional task arguments from the command line.
//
// The any return exists so callers (and the run-once guard) can distinguish
// "ran and produced a zero value" from "never ran".
type Runner func(ctx context.Context, args ...string) (any, error)

// Middleware rewrites a runner. Annotations that change run policy (run-once,
// settings overlays) are expressed as middleware so the underlying body keeps
// its original calling semantics.
type Middleware func(next Runner) Runner

// Metadata carries the scheduling hints the dispatcher reads before running a
// task. It is plain data: nothing here resolves hosts, maps roles, or opens
// connections — that belongs to the execution engine consuming it.
type Metadata struct {
	// Hosts are explicit target hosts, optionally in user@host[:port] form.
	// Empty means "no explicit override".
	Hosts []string

	// Roles name host groups the engine resolves through its own role
	// definitions. Empty means "no explicit override".
	Roles []string

	// EnsureOrder disables set-style deduplication of the combined
	// host/role target list; the engine iterates it in combined order.
	EnsureOrder bool

	// Sorted sorts the combined target list after deduplication.
	// Meaningful only when EnsureOrder is set.
	Sorted bool

	// Settings are applied as a scoped overlay around each invocation and
	// reverted on every exit path.
	Settings map[string]any
}

// Task is a registered unit of work plus its metadata.
type Task struct {
	Name    string
	Summary string
	Meta    Metadata

	runner Runner
}

// Option annotates a task at construction time.
type Option func(*Task)

// New builds a task from a name, a one-line summary, the runner body and any
// annotations. Options apply in order; later host/role options replace (never
// extend) earlier ones.
func New(name, summary string, run Runner, opts ...Option) *Task {
	t := &Task{Name: name, Summary: summary, runner: run}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// Run invokes the task body through any installed middleware.
func (t *Task) Run(ctx context.Context, args ...string) (any, error) {
	return t.runner(ctx, args...)
}

// Wrap installs middleware around the current runner. Used by annotation
// packages; most callers want the ready-made options instead.
func (t *Task) Wrap(mw Middleware) {
	t.runner = mw(t.runner)
}
