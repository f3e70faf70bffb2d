// Package partition computes Euler's integer partition function P(n): the
// number of ways to write a non-negative integer n as a sum of positive
// integers, order irrelevant.
//
// The centerpiece is Evaluator, a memoized evaluator for Euler's pentagonal
// number recurrence:
//
//	P(n) = Σ_{k≥1} (-1)^(k+1) · [ P(n − k(3k−1)/2) + P(n − k(3k+1)/2) ]
//
// with P(0) = 1 and terms whose argument is negative contributing zero.
// P(n) is a pure function of n, so every computed value is cacheable forever;
// the evaluator computes each distinct argument at most once and answers
// repeated queries from its store in O(1).
//
// Values grow roughly as exp(c·√n) and overflow fixed-width integers quickly
// (P(416) already exceeds 64 bits), so results are *big.Int.
//
// The default store is unbounded and never evicts. Bounded backends from the
// store subpackage may be swapped in via WithStore; eviction only ever costs
// recomputation across queries — within a single query every distinct
// argument is computed at most once whatever the backend retains.
package partition
