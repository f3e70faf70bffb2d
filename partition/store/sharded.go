package store

import (
	"math/big"
	"strconv"
	"sync"

	"github.com/cespare/xxhash/v2"
)

// Sharded is an unbounded store that spreads keys over a fixed number of
// mutex-guarded maps. Shard selection hashes the decimal form of the key,
// so any future key type only needs a string rendering.
type Sharded struct {
	shards []*shard
}

type shard struct {
	mu sync.RWMutex
	m  map[int]*big.Int
}

// NewSharded returns a store with the given number of shards.
// It panics if numShards is not positive.
func NewSharded(numShards int) *Sharded {
	if numShards <= 0 {
		panic("numShards should be greater than 0")
	}
	shards := make([]*shard, numShards)
	for i := range shards {
		shards[i] = &shard{m: make(map[int]*big.Int)}
	}
	return &Sharded{shards: shards}
}

func (s *Sharded) shardOf(n int) *shard {
	idx := xxhash.Sum64String(strconv.Itoa(n)) % uint64(len(s.shards))
	return s.shards[idx]
}

func (s *Sharded) Load(n int) (*big.Int, bool, error) {
	sh := s.shardOf(n)
	sh.mu.RLock()
	defer sh.mu.RUnlock()
	v, ok := sh.m[n]
	return v, ok, nil
}

func (s *Sharded) InsertIfAbsent(n int, v *big.Int) (bool, error) {
	sh := s.shardOf(n)
	sh.mu.Lock()
	defer sh.mu.Unlock()
	if _, ok := sh.m[n]; ok {
		return false, nil
	}
	sh.m[n] = v
	return true, nil
}

// Len returns the number of cached entries across all shards.
func (s *Sharded) Len() int {
	total := 0
	for _, sh := range s.shards {
		sh.mu.RLock()
		total += len(sh.m)
		sh.mu.RUnlock()
	}
	return total
}
