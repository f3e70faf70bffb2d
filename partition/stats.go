package partition

import (
	"sync"
	"sync/atomic"

	"github.com/rickb777/date/v2/timespan"
)

// Stats is a point-in-time snapshot of an evaluator's cache behavior.
// Hits and Misses count store lookups across the whole recursion, so a
// single cold Evaluate(n) on a fresh evaluator records exactly n misses
// (one per uncached key 1..n).
type Stats struct {
	Hits   uint64
	Misses uint64

	// LastCold spans the most recent top-level computation that was not
	// answered from the cache.
	LastCold timespan.TimeSpan
}

type counters struct {
	hits   atomic.Uint64
	misses atomic.Uint64

	mu       sync.Mutex
	lastCold timespan.TimeSpan
}

func (c *counters) setLastCold(span timespan.TimeSpan) {
	c.mu.Lock()
	c.lastCold = span
	c.mu.Unlock()
}

func (c *counters) snapshot() Stats {
	c.mu.Lock()
	lastCold := c.lastCold
	c.mu.Unlock()
	return Stats{
		Hits:     c.hits.Load(),
		Misses:   c.misses.Load(),
		LastCold: lastCold,
	}
}
