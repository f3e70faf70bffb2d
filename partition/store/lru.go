package store

import (
	"math/big"

	lru "github.com/hashicorp/golang-lru"
)

// LRU is a bounded store backed by a thread-safe LRU cache. The least
// recently used entry is evicted once size is reached.
type LRU struct {
	cache *lru.Cache
}

// NewLRU returns an LRU-backed store holding at most size values.
func NewLRU(size int) (*LRU, error) {
	cache, err := lru.New(size)
	if err != nil {
		return nil, err
	}
	return &LRU{cache: cache}, nil
}

func (l *LRU) Load(n int) (*big.Int, bool, error) {
	v, ok := l.cache.Get(n)
	if !ok {
		return nil, false, nil
	}
	return v.(*big.Int), true, nil
}

func (l *LRU) InsertIfAbsent(n int, v *big.Int) (bool, error) {
	present, _ := l.cache.ContainsOrAdd(n, v)
	return !present, nil
}

// Len returns the number of cached entries.
func (l *LRU) Len() int {
	return l.cache.Len()
}
