package store

import (
	"math/big"
	"sync"
)

// Rotating is a bounded store with generational eviction. Writes go into a
// fresh map; when the fresh map reaches maxSize it becomes the stale map and
// a new fresh map starts empty. Lookups consult both generations, so a hot
// entry survives at least one rotation and at most 2*maxSize entries are
// retained.
type Rotating struct {
	mu      sync.RWMutex
	fresh   map[int]*big.Int
	stale   map[int]*big.Int
	maxSize int
}

// NewRotating returns a rotating store bounded by maxSize entries per
// generation. It panics if maxSize is not positive.
func NewRotating(maxSize int) *Rotating {
	if maxSize <= 0 {
		panic("maxSize should be greater than 0")
	}
	return &Rotating{
		fresh:   make(map[int]*big.Int),
		stale:   make(map[int]*big.Int),
		maxSize: maxSize,
	}
}

func (r *Rotating) Load(n int) (*big.Int, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if v, ok := r.fresh[n]; ok {
		return v, true, nil
	}
	if v, ok := r.stale[n]; ok {
		return v, true, nil
	}
	return nil, false, nil
}

func (r *Rotating) InsertIfAbsent(n int, v *big.Int) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.fresh[n]; ok {
		return false, nil
	}
	if _, ok := r.stale[n]; ok {
		return false, nil
	}
	if len(r.fresh) >= r.maxSize {
		r.stale = r.fresh
		r.fresh = make(map[int]*big.Int)
	}
	r.fresh[n] = v
	return true, nil
}

// Len returns the number of entries currently retained over both generations.
func (r *Rotating) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.fresh) + len(r.stale)
}
