// Package store provides cache backends for computed partition values.
//
// The partition recurrence is pure, so a backend is free to evict: a miss
// only costs recomputation, never correctness. What a backend must never do
// is replace an entry with a different value, which is why the write
// operation is insert-if-absent rather than set.
package store

import (
	"math/big"
	"sync"
	"sync/atomic"
)

// Store is a cache backend for computed partition values.
// Implementations must be safe for concurrent use.
type Store interface {
	// Load returns the cached value for n, if present.
	Load(n int) (v *big.Int, ok bool, err error)

	// InsertIfAbsent stores v under n unless n is already present.
	// It reports whether the insert happened. An existing entry is
	// never replaced.
	InsertIfAbsent(n int, v *big.Int) (inserted bool, err error)
}

// InMemory is an unbounded sync.Map-backed store. It is the default backend:
// entries are never evicted, so the cache grows monotonically for the
// lifetime of its owner.
type InMemory struct {
	m    sync.Map
	size atomic.Int64
}

// NewInMemory returns an empty unbounded store.
func NewInMemory() *InMemory {
	return &InMemory{}
}

func (s *InMemory) Load(n int) (*big.Int, bool, error) {
	v, ok := s.m.Load(n)
	if !ok {
		return nil, false, nil
	}
	return v.(*big.Int), true, nil
}

func (s *InMemory) InsertIfAbsent(n int, v *big.Int) (bool, error) {
	_, loaded := s.m.LoadOrStore(n, v)
	if !loaded {
		s.size.Add(1)
	}
	return !loaded, nil
}

// Len returns the number of cached entries.
func (s *InMemory) Len() int {
	return int(s.size.Load())
}
