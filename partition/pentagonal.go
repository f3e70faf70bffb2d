package partition

// Pentagonal returns the generalized pentagonal number k(3k+s)/2 for
// s ∈ {-1, +1}. k(3k+s) is even for every integer k, so the division is
// exact.
func Pentagonal(k, s int) int {
	return k * (3*k + s) / 2
}
