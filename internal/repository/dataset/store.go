// Package dataset owns the in-memory snapshot of loaded ISS data.
package dataset

import (
	"sync"
	"sync/atomic"

	domds "github.com/kailas-cloud/isstracker/internal/domain/dataset"
)

// Store holds the current snapshot. Readers never block and always see a
// complete snapshot; Lock/Unlock serialize loads.
type Store struct {
	current atomic.Pointer[domds.Dataset]
	mu      sync.Mutex
}

// New creates an empty Store.
func New() *Store {
	return &Store{}
}

// Snapshot returns the current snapshot, or nil if nothing has been loaded.
func (s *Store) Snapshot() *domds.Dataset {
	return s.current.Load()
}

// Loaded reports whether the current snapshot holds both collections.
func (s *Store) Loaded() bool {
	return s.current.Load().Loaded()
}

// Replace swaps in a new snapshot wholesale.
func (s *Store) Replace(ds *domds.Dataset) {
	s.current.Store(ds)
}

// Lock acquires the load mutex.
func (s *Store) Lock() {
	s.mu.Lock()
}

// Unlock releases the load mutex.
func (s *Store) Unlock() {
	s.mu.Unlock()
}
