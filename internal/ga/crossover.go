package ga

// Crossover performs single-point crossover at cut, returning two new
// offspring genomes:
//
//	offspring1 = p1[:cut] ++ p2[cut:]
//	offspring2 = p2[:cut] ++ p1[cut:]
//
// cut must be in [0, len(p1)). cut == 0 yields exact copies of the
// parents with roles swapped; that is a legitimate outcome of a random
// cut, not an error.
func Crossover(p1, p2 Genome, cut int) (Genome, Genome) {
	n := len(p1)
	c1 := make(Genome, n)
	c2 := make(Genome, n)

	copy(c1[:cut], p1[:cut])
	copy(c1[cut:], p2[cut:])
	copy(c2[:cut], p2[:cut])
	copy(c2[cut:], p1[cut:])

	return c1, c2
}
