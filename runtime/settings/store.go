// Package settings holds the process-wide execution configuration and the
// scoped-overlay primitive tasks are wrapped with.
//
// The store is a flat key/value space (warn_only, parallel, port, ...). An
// overlay applies a set of overrides for the duration of one call and
// restores the exact prior state — including "key was absent" — on every exit
// path. Overlays are not reentrant-safe across concurrent callers sharing one
// store; correctness assumes sequential task execution.
package settings

import (
	"fmt"
	"sync"
	"time"
)

// Store is a mutex-guarded settings map.
type Store struct {
	mu     sync.RWMutex
	values map[string]any
}

// NewStore creates a store seeded with the given values. Pass Defaults() for
// the standard execution defaults, or nil for an empty store.
func NewStore(seed map[string]any) *Store {
	s := &Store{values: make(map[string]any, len(seed))}
	for k, v := range seed {
		s.values[k] = v
	}
	return s
}

// Defaults returns the standard execution configuration.
func Defaults() map[string]any {
	return map[string]any{
		"warn_only": false,
		"parallel":  false,
		"port":      22,
		"timeout":   10 * time.Second,
	}
}

var std = NewStore(Defaults())

// Default returns the process-wide store.
func Default() *Store {
	return std
}

// Get returns the raw value for key.
func (s *Store) Get(key string) (any, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.values[key]
	return v, ok
}

// GetBool returns the value for key, or false when absent or not a bool.
func (s *Store) GetBool(key string) bool {
	v, _ := s.Get(key)
	b, _ := v.(bool)
	return b
}

// GetString returns the value for key, or "" when absent or not a string.
func (s *Store) GetString(key string) string {
	v, _ := s.Get(key)
	str, _ := v.(string)
	return str
}

// GetInt returns the value for key, coercing the numeric types a YAML load
// can produce. Returns 0 when absent or non-numeric.
func (s *Store) GetInt(key string) int {
	v, _ := s.Get(key)
	switch n := v.(type) {
	case int:
		return n
	case int64:
		return int(n)
	case float64:
		return int(n)
	}
	return 0
}

// GetDuration returns the value for key as a duration, accepting either a
// time.Duration or a parseable string like "30s". Returns 0 otherwise.
func (s *Store) GetDuration(key string) time.Duration {
	v, _ := s.Get(key)
	switch d := v.(type) {
	case time.Duration:
		return d
	case string:
		if parsed, err := time.ParseDuration(d); err == nil {
			return parsed
		}
	}
	return 0
}

// Set writes one value.
func (s *Store) Set(key string, value any) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.values[key] = value
}

// SetAll writes every entry of values.
func (s *Store) SetAll(values map[string]any) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for k, v := range values {
		s.values[k] = v
	}
}

// Snapshot returns a copy of the current state.
func (s *Store) Snapshot() map[string]any {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make(map[string]any, len(s.values))
	for k, v := range s.values {
		out[k] = v
	}
	return out
}

// Overlay applies overrides and returns a restore function that reinstates
// the prior state for exactly those keys. Keys that were absent before the
// overlay are deleted again on restore. Restore is idempotent.
func (s *Store) Overlay(overrides map[string]any) (restore func()) {
	s.mu.Lock()
	prior := make(map[string]any, len(overrides))
	present := make(map[string]bool, len(overrides))
	for k, v := range overrides {
		old, ok := s.values[k]
		prior[k] = old
		present[k] = ok
		s.values[k] = v
	}
	s.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			s.mu.Lock()
			defer s.mu.Unlock()
			for k := range overrides {
				if present[k] {
					s.values[k] = prior[k]
				} else {
					delete(s.values, k)
				}
			}
		})
	}
}

// With runs fn under an overlay of overrides, restoring prior state on
// return, on error, and on panic.
func (s *Store) With(overrides map[string]any, fn func() error) error {
	restore := s.Overlay(overrides)
	defer restore()
	return fn()
}

func (s *Store) String() string {
	return fmt.Sprintf("settings.Store(%d keys)", len(s.Snapshot()))
}
