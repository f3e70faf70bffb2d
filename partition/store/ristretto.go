package store

import (
	"math/big"

	ristretto "github.com/dgraph-io/ristretto/v2"
)

// Ristretto is a bounded store backed by a ristretto cache with a unit cost
// per entry. InsertIfAbsent flushes the write buffer before returning, so an
// admitted entry is visible to the next Load. Admission may still reject an
// entry outright; callers recompute on a miss, which is harmless for a pure
// function, so this backend is a best-effort warmth tier rather than a
// guaranteed cache.
type Ristretto struct {
	cache *ristretto.Cache[int, *big.Int]
}

// NewRistretto returns a ristretto-backed store holding at most maxEntries
// values.
func NewRistretto(maxEntries int64) (*Ristretto, error) {
	cache, err := ristretto.NewCache(&ristretto.Config[int, *big.Int]{
		NumCounters: 10 * maxEntries, // number of keys to track frequency of.
		MaxCost:     maxEntries,      // unit cost per entry.
		BufferItems: 64,              // number of keys per Get buffer.
	})
	if err != nil {
		return nil, err
	}
	return &Ristretto{cache: cache}, nil
}

func (r *Ristretto) Load(n int) (*big.Int, bool, error) {
	v, ok := r.cache.Get(n)
	return v, ok, nil
}

func (r *Ristretto) InsertIfAbsent(n int, v *big.Int) (bool, error) {
	if _, ok := r.cache.Get(n); ok {
		return false, nil
	}
	r.cache.Set(n, v, 1)
	r.cache.Wait()
	return true, nil
}

// Wait blocks until buffered writes have been applied.
func (r *Ristretto) Wait() {
	r.cache.Wait()
}

// Close releases the resources held by the underlying cache.
func (r *Ristretto) Close() {
	r.cache.Close()
}
