package querycache

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFetchCachesUntilInvalidated(t *testing.T) {
	s := NewStore()
	key := Key{"logs", "daily", "2024-03-05"}
	var calls int

	fetch := func(ctx context.Context) (any, error) {
		calls++
		return calls, nil
	}

	v, err := s.Fetch(context.Background(), key, fetch)
	require.NoError(t, err)
	assert.Equal(t, 1, v)

	// Second read is served from cache.
	v, err = s.Fetch(context.Background(), key, fetch)
	require.NoError(t, err)
	assert.Equal(t, 1, v)
	assert.Equal(t, 1, calls)

	s.Invalidate(key)
	v, err = s.Fetch(context.Background(), key, fetch)
	require.NoError(t, err)
	assert.Equal(t, 2, v)
}

func TestInvalidateByPrefix(t *testing.T) {
	s := NewStore()
	list := Key{"foods", "category=y&search=x"}
	byID := Key{"foods", "byId", "123"}
	daily := Key{"logs", "daily", "2024-01-01"}

	for _, k := range []Key{list, byID, daily} {
		k := k
		_, err := s.Fetch(context.Background(), k, func(ctx context.Context) (any, error) {
			return k.String(), nil
		})
		require.NoError(t, err)
	}

	s.Invalidate(Key{"foods"})

	_, ok := s.Peek(list)
	assert.False(t, ok, "filtered list is stale")
	_, ok = s.Peek(byID)
	assert.False(t, ok, "byId entry is stale")
	_, ok = s.Peek(daily)
	assert.True(t, ok, "unrelated daily entry untouched")
}

func TestLogMutationTouchesOnlyItsDate(t *testing.T) {
	s := NewStore()
	mar5 := Key{"logs", "daily", "2024-03-05"}
	mar6 := Key{"logs", "daily", "2024-03-06"}
	s.Put(mar5, "a")
	s.Put(mar6, "b")

	s.Invalidate(mar5)

	_, ok := s.Peek(mar5)
	assert.False(t, ok)
	_, ok = s.Peek(mar6)
	assert.True(t, ok)
}

func TestFailedFetchLeavesPriorState(t *testing.T) {
	s := NewStore()
	key := Key{"weight", "all"}
	s.Put(key, "old")
	s.Invalidate(key)

	_, err := s.Fetch(context.Background(), key, func(ctx context.Context) (any, error) {
		return nil, errors.New("network down")
	})
	require.Error(t, err)

	// The stale entry is still there; a later successful fetch replaces it.
	v, err := s.Fetch(context.Background(), key, func(ctx context.Context) (any, error) {
		return "new", nil
	})
	require.NoError(t, err)
	assert.Equal(t, "new", v)
}

func TestConcurrentIdenticalReadsShareOneFetch(t *testing.T) {
	s := NewStore()
	key := Key{"users", "profile"}
	var calls atomic.Int32

	fetch := func(ctx context.Context) (any, error) {
		calls.Add(1)
		time.Sleep(20 * time.Millisecond)
		return "profile", nil
	}

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			v, err := s.Fetch(context.Background(), key, fetch)
			assert.NoError(t, err)
			assert.Equal(t, "profile", v)
		}()
	}
	wg.Wait()

	assert.Equal(t, int32(1), calls.Load())
}

func TestPutOverwritesFresh(t *testing.T) {
	s := NewStore()
	key := Key{"users", "profile"}
	s.Put(key, "v1")
	s.Invalidate(key)
	s.Put(key, "v2")

	v, ok := s.Peek(key)
	assert.True(t, ok)
	assert.Equal(t, "v2", v)
}

func TestReset(t *testing.T) {
	s := NewStore()
	s.Put(Key{"a"}, 1)
	s.Reset()
	_, ok := s.Peek(Key{"a"})
	assert.False(t, ok)
}

func TestTypedFetch(t *testing.T) {
	s := NewStore()
	v, err := Fetch(context.Background(), s, Key{"n"}, func(ctx context.Context) (int, error) {
		return 42, nil
	})
	require.NoError(t, err)
	assert.Equal(t, 42, v)

	_, err = Fetch(context.Background(), s, Key{"err"}, func(ctx context.Context) (int, error) {
		return 0, errors.New("boom")
	})
	assert.Error(t, err)
}
