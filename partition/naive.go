package partition

import "math/big"

// Naive computes P(n) by the same recurrence with no cache. Each call
// recomputes the entire call tree, which is exponential in n; it exists as
// the slow baseline the memoized evaluator is measured against and is only
// practical for small n. Negative n yields zero, matching the recurrence's
// treatment of out-of-domain arguments.
func Naive(n int) *big.Int {
	if n < 0 {
		return new(big.Int)
	}
	if n == 0 {
		return big.NewInt(1)
	}
	total := new(big.Int)
	for k := 1; ; k++ {
		g1 := Pentagonal(k, -1)
		if g1 > n {
			break
		}
		term := Naive(n - g1)
		if g2 := Pentagonal(k, +1); g2 <= n {
			term.Add(term, Naive(n-g2))
		}
		if k&1 == 1 {
			total.Add(total, term)
		} else {
			total.Sub(total, term)
		}
	}
	return total
}
