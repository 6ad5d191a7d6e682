package runonce

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taskrig/taskrig/core/task"
)

func TestDoCachesFirstResult(t *testing.T) {
	var m Memo
	calls := 0

	for i := 0; i < 3; i++ {
		v, err := m.Do(func() (any, error) {
			calls++
			return calls, nil
		})
		require.NoError(t, err)
		assert.Equal(t, 1, v, "every call should return the first result")
	}
	assert.Equal(t, 1, calls, "body should run once")
	assert.True(t, m.Ran())
}

func TestDoCachesZeroValues(t *testing.T) {
	var m Memo
	calls := 0

	v, err := m.Do(func() (any, error) {
		calls++
		return nil, nil
	})
	require.NoError(t, err)
	assert.Nil(t, v)

	// Presence is tracked explicitly, so a nil result still counts as "ran".
	_, err = m.Do(func() (any, error) {
		calls++
		return "second", nil
	})
	require.NoError(t, err)
	assert.Equal(t, 1, calls)
	assert.True(t, m.Ran())
}

func TestDoDoesNotCacheErrors(t *testing.T) {
	var m Memo
	calls := 0
	boom := errors.New("boom")

	_, err := m.Do(func() (any, error) {
		calls++
		return nil, boom
	})
	require.ErrorIs(t, err, boom)
	assert.False(t, m.Ran(), "a failed attempt must not populate the cache")

	v, err := m.Do(func() (any, error) {
		calls++
		return "recovered", nil
	})
	require.NoError(t, err)
	assert.Equal(t, "recovered", v)
	assert.Equal(t, 2, calls)
}

func TestReset(t *testing.T) {
	var m Memo
	_, err := m.Do(func() (any, error) { return 1, nil })
	require.NoError(t, err)

	m.Reset()
	require.False(t, m.Ran())

	v, err := m.Do(func() (any, error) { return 2, nil })
	require.NoError(t, err)
	assert.Equal(t, 2, v)
}

func TestDoConcurrentFirstCalls(t *testing.T) {
	var m Memo
	var calls int

	var wg sync.WaitGroup
	results := make([]any, 8)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			v, err := m.Do(func() (any, error) {
				calls++
				return calls, nil
			})
			assert.NoError(t, err)
			results[i] = v
		}(i)
	}
	wg.Wait()

	assert.Equal(t, 1, calls, "Do holds the lock across the body")
	for _, v := range results {
		assert.Equal(t, 1, v)
	}
}

func TestOnceOptionIgnoresLaterArguments(t *testing.T) {
	counter := 0
	tk := task.New("counter", "", func(ctx context.Context, args ...string) (any, error) {
		counter++
		return counter, nil
	}, Once())

	first, err := tk.Run(context.Background(), "a")
	require.NoError(t, err)
	second, err := tk.Run(context.Background(), "completely", "different")
	require.NoError(t, err)

	assert.Equal(t, 1, first)
	assert.Equal(t, first, second, "second call must return the first call's value")
	assert.Equal(t, 1, counter, "body must not run again")
}

func TestOnceOptionRetriesAfterError(t *testing.T) {
	attempts := 0
	tk := task.New("flaky", "", func(ctx context.Context, args ...string) (any, error) {
		attempts++
		if attempts == 1 {
			return nil, errors.New("transient")
		}
		return "ok", nil
	}, Once())

	_, err := tk.Run(context.Background())
	require.Error(t, err)

	v, err := tk.Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "ok", v)
	assert.Equal(t, 2, attempts)
}
