// Package runonce implements execute-at-most-once-per-process semantics with
// result caching.
//
// Unlike sync.Once, a failed attempt does not count: errors are never cached,
// so the next call retries. Successful results are cached even when they are
// nil or zero values — the cache tracks presence explicitly rather than
// testing the value.
package runonce

import (
	"context"
	"sync"

	"github.com/taskrig/taskrig/core/task"
)

// Memo is a single cache slot guarding one function. The zero value is ready
// to use. Each guarded task should own its own Memo; sharing one across tasks
// shares the cache.
type Memo struct {
	mu        sync.Mutex
	populated bool
	value     any
}

// Do runs fn if no result has been cached yet, caching the result on success.
// Later calls return the cached value without running fn — even if the caller
// meant to pass different arguments through. If fn returns an error the slot
// stays empty and the next Do retries.
//
// The lock is held across fn, so concurrent first calls serialize and the
// first success wins.
func (m *Memo) Do(fn func() (any, error)) (any, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.populated {
		return m.value, nil
	}
	v, err := fn()
	if err != nil {
		return nil, err
	}
	m.value = v
	m.populated = true
	return v, nil
}

// Ran reports whether a result has been cached.
func (m *Memo) Ran() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.populated
}

// Reset clears the slot so the next Do executes again. Intended for tests and
// for engines that scope "once" to something shorter than the process.
func (m *Memo) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.populated = false
	m.value = nil
}

// Once annotates a task so only its first invocation executes the body; every
// later invocation returns the first invocation's result.
func Once() task.Option {
	return func(t *task.Task) {
		var memo Memo
		t.Wrap(func(next task.Runner) task.Runner {
			return func(ctx context.Context, args ...string) (any, error) {
				return memo.Do(func() (any, error) {
					return next(ctx, args...)
				})
			}
		})
	}
}
