package ga

import (
	"onemax/internal/rng"
)

// Pair holds the population indices of two parents.
type Pair struct {
	A, B int
}

// ElitePairs implements truncation selection: the elite are simply the
// top b members of a fitness-sorted population, and mating order among
// them is uniformly random with no further competition. The indices
// 0..b-1 are permuted (Fisher-Yates via the source) and consumed in
// consecutive pairs, so every elite appears in exactly one pair and the
// result is b/2 pairs.
func ElitePairs(b int, src rng.Source) []Pair {
	perm := make([]int, b)
	for i := range perm {
		perm[i] = i
	}
	src.Shuffle(b, func(i, j int) {
		perm[i], perm[j] = perm[j], perm[i]
	})

	pairs := make([]Pair, b/2)
	for i := range pairs {
		pairs[i] = Pair{A: perm[2*i], B: perm[2*i+1]}
	}
	return pairs
}
