package shell

import (
	"fmt"
	"sync"

	"github.com/bibliotech-pro/bibliotech-go/library/shared/core"
)

// Version counts committed changes to a Store.
type Version = uint64

// Store is the single mutable container of the library state.
// It is created explicitly and passed to handlers; there is no package-level instance.
// States handed out by Snapshot must be treated as read-only.
type Store struct {
	mu      sync.RWMutex
	state   core.State
	version Version
}

// NewStore creates a Store at version 0 holding initial.
func NewStore(initial core.State) *Store {
	return &Store{state: initial}
}

// NewStoreFromLibraryData creates a Store from persisted data with empty side collections.
func NewStoreFromLibraryData(data core.LibraryData) *Store {
	return NewStore(core.NewState(data))
}

// Snapshot returns the current state and its version.
func (s *Store) Snapshot() (core.State, Version) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.state, s.version
}

// Commit applies actions atomically if the store is still at expected.
// A stale expected version fails with ErrConcurrencyConflict, an Apply failure is returned as is,
// and in both cases the store is left unchanged.
func (s *Store) Commit(expected Version, actions ...core.Action) (core.State, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.version != expected {
		return s.state, fmt.Errorf("%w: expected version %d, current version %d", ErrConcurrencyConflict, expected, s.version)
	}

	next, err := core.ApplyAll(s.state, actions...)
	if err != nil {
		return s.state, err
	}

	s.state = next
	s.version++

	return next, nil
}

// Dispatch applies actions against whatever the current version is.
func (s *Store) Dispatch(actions ...core.Action) (core.State, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	next, err := core.ApplyAll(s.state, actions...)
	if err != nil {
		return s.state, err
	}

	s.state = next
	s.version++

	return next, nil
}
