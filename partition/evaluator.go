package partition

import (
	"fmt"
	"math/big"
	"sync"
	"time"

	"github.com/rickb777/date/v2/timespan"
	"go.uber.org/zap"

	"github.com/eulerfn/partitionfn/partition/store"
)

// ErrNegative is returned when a negative argument reaches the public
// query boundary. Negative sub-terms inside the recurrence are handled
// structurally and never produce this error.
var ErrNegative = fmt.Errorf("negative argument")

// Evaluator computes P(n) via Euler's pentagonal number recurrence,
// memoizing every value it computes in its store. Each evaluator owns its
// store exclusively; independently constructed evaluators share nothing.
//
// An Evaluator is safe for concurrent use. The recursion runs under a
// coarse mutex: contention is low for this workload and the lock guarantees
// each key is written at most once with a fully-computed value.
type Evaluator struct {
	mu     sync.Mutex
	store  store.Store
	logger *zap.Logger
	stats  counters
}

// Option configures an Evaluator.
type Option func(*Evaluator)

// WithStore swaps the cache backend. The store must be empty or hold only
// correct P(n) entries; the evaluator seeds the P(0)=1 base case itself.
func WithStore(s store.Store) Option {
	return func(e *Evaluator) { e.store = s }
}

// WithLogger attaches a logger for debug events on cold computations.
func WithLogger(logger *zap.Logger) Option {
	return func(e *Evaluator) { e.logger = logger }
}

// New returns a fresh evaluator whose cache holds only the P(0)=1 base case.
func New(opts ...Option) *Evaluator {
	e := &Evaluator{
		store:  store.NewInMemory(),
		logger: zap.NewNop(),
	}
	for _, opt := range opts {
		opt(e)
	}
	if _, err := e.store.InsertIfAbsent(0, big.NewInt(1)); err != nil {
		e.logger.Warn("failed to seed base case", zap.Error(err))
	}
	return e
}

// Evaluate returns the exact partition count P(n) for n ≥ 0. Negative n is
// rejected with ErrNegative before the cache is touched. The returned value
// is a copy; mutating it does not corrupt the cache.
//
// As a side effect the store is populated for n and every sub-argument
// reached during the computation, so later queries at or below n are cache
// hits.
func (e *Evaluator) Evaluate(n int) (*big.Int, error) {
	if n < 0 {
		return nil, fmt.Errorf("%w: %d", ErrNegative, n)
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	_, warm, err := e.store.Load(n)
	if err != nil {
		return nil, err
	}

	from := time.Now()
	v, err := e.eval(n, make(map[int]*big.Int))
	if err != nil {
		return nil, err
	}
	if !warm {
		span := timespan.BetweenTimes(from, time.Now())
		e.stats.setLastCold(span)
		e.logger.Debug("cold evaluation",
			zap.Int("n", n),
			zap.Duration("took", span.Duration()),
		)
	}
	return new(big.Int).Set(v), nil
}

// Cached reports whether the value for n is currently present in the store.
func (e *Evaluator) Cached(n int) bool {
	if n < 0 {
		return false
	}
	_, ok, err := e.store.Load(n)
	return err == nil && ok
}

// Stats returns a snapshot of the evaluator's cache behavior.
func (e *Evaluator) Stats() Stats {
	return e.stats.snapshot()
}

// eval is the memoized recursion. The caller holds e.mu.
//
// overlay memoizes within a single top-level Evaluate: it is consulted
// before the store and written through to it, so one call stays O(n·√n)
// even when the store evicts live keys (bounded retention) or applies
// writes asynchronously (ristretto admission). The store then only decides
// cross-call warmth.
//
// The k-loop exits as soon as the first pentagonal term exceeds n: g(k,-1)
// increases in k, so every later k would contribute nothing. The sign
// alternation is a parity test, not an exponentiation.
func (e *Evaluator) eval(n int, overlay map[int]*big.Int) (*big.Int, error) {
	if v, ok := overlay[n]; ok {
		e.stats.hits.Add(1)
		return v, nil
	}
	if v, ok, err := e.store.Load(n); err != nil {
		return nil, err
	} else if ok {
		e.stats.hits.Add(1)
		overlay[n] = v
		return v, nil
	}
	e.stats.misses.Add(1)

	// A bounded store may have evicted the seed, so the base case is
	// restated here rather than trusted to construction-time seeding.
	if n == 0 {
		one := big.NewInt(1)
		overlay[0] = one
		if _, err := e.store.InsertIfAbsent(0, one); err != nil {
			return nil, err
		}
		return one, nil
	}

	total := new(big.Int)
	for k := 1; ; k++ {
		g1 := Pentagonal(k, -1)
		if g1 > n {
			break
		}
		sub, err := e.eval(n-g1, overlay)
		if err != nil {
			return nil, err
		}
		term := new(big.Int).Set(sub)
		if g2 := Pentagonal(k, +1); g2 <= n {
			sub, err := e.eval(n-g2, overlay)
			if err != nil {
				return nil, err
			}
			term.Add(term, sub)
		}
		if k&1 == 1 {
			total.Add(total, term)
		} else {
			total.Sub(total, term)
		}
	}

	overlay[n] = total
	if _, err := e.store.InsertIfAbsent(n, total); err != nil {
		return nil, err
	}
	return total, nil
}
