package task

import (
	"fmt"
	"sort"
	"sync"
)

// Registry maps task names to tasks. The execution engine reads metadata from
// here at dispatch time instead of inspecting function values.
type Registry struct {
	mu    sync.RWMutex
	tasks map[string]*Task
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		tasks: make(map[string]*Task),
	}
}

// Register adds a task. Registering two tasks under the same name is an
// error; re-annotation happens by building a new Task, not by mutating a
// registered one.
func (r *Registry) Register(t *Task) error {
	if t.Name == "" {
		return fmt.Errorf("task has no name")
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.tasks[t.Name]; exists {
		return fmt.Errorf("task %q already registered", t.Name)
	}
	r.tasks[t.Name] = t
	return nil
}

// MustRegister is Register for init-time use; it panics on error.
func (r *Registry) MustRegister(t *Task) {
	if err := r.Register(t); err != nil {
		panic("task: " + err.Error())
	}
}

// Lookup returns the task registered under name.
func (r *Registry) Lookup(name string) (*Task, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	t, ok := r.tasks[name]
	return t, ok
}

// Names returns all registered task names, sorted.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.tasks))
	for name := range r.tasks {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Tasks returns all registered tasks, sorted by name.
func (r *Registry) Tasks() []*Task {
	r.mu.RLock()
	defer r.mu.RUnlock()
	tasks := make([]*Task, 0, len(r.tasks))
	for _, t := range r.tasks {
		tasks = append(tasks, t)
	}
	sort.Slice(tasks, func(i, j int) bool { return tasks[i].Name < tasks[j].Name })
	return tasks
}

// Global registry instance. Task modules register from init, database/sql
// style, and the embedding program hands Global() to the CLI or engine.
var globalRegistry = NewRegistry()

// Global returns the process-wide registry.
func Global() *Registry {
	return globalRegistry
}

// Register adds a task to the global registry.
func Register(t *Task) error {
	return globalRegistry.Register(t)
}

// MustRegister adds a task to the global registry and panics on error.
func MustRegister(t *Task) {
	globalRegistry.MustRegister(t)
}
