package settings

import (
	"context"

	"github.com/taskrig/taskrig/core/task"
)

// Apply annotates a task so each invocation runs under an overlay of
// overrides on the process-wide store, reverted on every exit path.
func Apply(overrides map[string]any) task.Option {
	return ApplyTo(Default(), overrides)
}

// ApplyTo is Apply against an explicit store, for embedders that scope their
// own configuration instead of using the process-wide default.
func ApplyTo(store *Store, overrides map[string]any) task.Option {
	return func(t *task.Task) {
		merged := make(map[string]any, len(t.Meta.Settings)+len(overrides))
		for k, v := range t.Meta.Settings {
			merged[k] = v
		}
		for k, v := range overrides {
			merged[k] = v
		}
		t.Meta.Settings = merged

		t.Wrap(func(next task.Runner) task.Runner {
			return func(ctx context.Context, args ...string) (any, error) {
				restore := store.Overlay(overrides)
				defer restore()
				return next(ctx, args...)
			}
		})
	}
}
