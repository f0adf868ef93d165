package ga

import (
	"strings"

	"onemax/internal/rng"
)

// Genome is a fixed-length binary string. Values are strictly 0 or 1.
// A genome's length never changes during a run; offspring replace
// genomes wholesale, bits are never mutated in place.
type Genome []uint8

// RandomGenome creates a genome of n independently uniform bits.
func RandomGenome(n int, src rng.Source) Genome {
	g := make(Genome, n)
	for i := range g {
		g[i] = src.Bit()
	}
	return g
}

// Fitness returns the fraction of 1-bits, in [0,1]. The optimum is 1.0
// (all bits set).
func (g Genome) Fitness() float64 {
	ones := 0
	for _, b := range g {
		if b == 1 {
			ones++
		}
	}
	return float64(ones) / float64(len(g))
}

// String renders the genome as a bit pattern, e.g. "10110".
func (g Genome) String() string {
	var sb strings.Builder
	sb.Grow(len(g))
	for _, b := range g {
		sb.WriteByte('0' + b)
	}
	return sb.String()
}
