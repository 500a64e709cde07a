package querycache

import (
	"context"
	"sync"

	"golang.org/x/sync/singleflight"
)

type entry struct {
	key   Key
	value any
	stale bool
}

// Store caches query results by Key. Reads hit the cache until the entry
// is invalidated; concurrent identical reads are collapsed into one fetch.
// Racing writes to the same key are last-write-wins; the store provides no
// ordering beyond its own mutex (the UI model is a single event loop).
type Store struct {
	mu      sync.Mutex
	entries map[string]*entry
	group   singleflight.Group
}

func NewStore() *Store {
	return &Store{entries: map[string]*entry{}}
}

// Fetch returns the cached value for key, or runs fetch and caches its
// result. A stale entry re-fetches instead of being served. Identical keys
// fetching concurrently share a single in-flight call.
func (s *Store) Fetch(ctx context.Context, key Key, fetch func(context.Context) (any, error)) (any, error) {
	ck := key.String()

	s.mu.Lock()
	if e, ok := s.entries[ck]; ok && !e.stale {
		v := e.value
		s.mu.Unlock()
		return v, nil
	}
	s.mu.Unlock()

	v, err, _ := s.group.Do(ck, func() (any, error) {
		v, err := fetch(ctx)
		if err != nil {
			// Failed reads leave prior cache state untouched.
			return nil, err
		}
		s.mu.Lock()
		s.entries[ck] = &entry{key: key, value: v}
		s.mu.Unlock()
		return v, nil
	})
	return v, err
}

// Peek returns the cached value without fetching, and whether a fresh
// entry was present.
func (s *Store) Peek(key Key) (any, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	e, ok := s.entries[key.String()]
	if !ok || e.stale {
		return nil, false
	}
	return e.value, true
}

// Put overwrites the entry for key with a known-current value, marking it
// fresh. Used when a mutation response already carries the new state.
func (s *Store) Put(key Key, value any) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries[key.String()] = &entry{key: key, value: value}
}

// Invalidate marks every entry matching any of the given key prefixes as
// stale. The next Fetch of a stale key re-fetches.
func (s *Store) Invalidate(prefixes ...Key) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, e := range s.entries {
		for _, p := range prefixes {
			if e.key.HasPrefix(p) {
				e.stale = true
				break
			}
		}
	}
}

// Reset drops everything. Called on logout.
func (s *Store) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries = map[string]*entry{}
}

// Fetch is the typed wrapper over Store.Fetch.
func Fetch[T any](ctx context.Context, s *Store, key Key, fetch func(context.Context) (T, error)) (T, error) {
	v, err := s.Fetch(ctx, key, func(ctx context.Context) (any, error) {
		return fetch(ctx)
	})
	if err != nil {
		var zero T
		return zero, err
	}
	return v.(T), nil
}
