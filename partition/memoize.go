package partition

import "math/big"

// Memoize returns P as a plain function value backed by a fresh evaluator.
// The closure owns its cache for its whole lifetime, so callers that only
// need "a memoized P" never see the evaluator at all.
func Memoize(opts ...Option) func(n int) (*big.Int, error) {
	e := New(opts...)
	return func(n int) (*big.Int, error) {
		return e.Evaluate(n)
	}
}
