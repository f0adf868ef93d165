package ga

import (
	"sort"

	"onemax/internal/rng"
)

// Individual pairs a genome with its most recently evaluated fitness.
type Individual struct {
	Genome  Genome
	Fitness float64
}

// Population is an ordered, fixed-size collection of individuals. Its
// length is invariant for the lifetime of a run; the replacement step
// overwrites slots, it never grows or shrinks the slice.
type Population struct {
	Members []Individual
}

// NewPopulation creates a population of size random genomes of length n.
func NewPopulation(size, n int, src rng.Source) *Population {
	p := &Population{Members: make([]Individual, size)}
	for i := range p.Members {
		p.Members[i].Genome = RandomGenome(n, src)
	}
	p.Evaluate()
	return p
}

// Size returns the population size.
func (p *Population) Size() int {
	return len(p.Members)
}

// Evaluate recomputes the cached fitness of every member.
func (p *Population) Evaluate() {
	for i := range p.Members {
		p.Members[i].Fitness = p.Members[i].Genome.Fitness()
	}
}

// SortByFitness sorts members by fitness, descending. The sort is
// stable: members with equal fitness keep their relative order, so a
// run's outcome depends only on the random source's seed.
func (p *Population) SortByFitness() {
	sort.SliceStable(p.Members, func(i, j int) bool {
		return p.Members[i].Fitness > p.Members[j].Fitness
	})
}

// Best returns the member with highest fitness.
func (p *Population) Best() Individual {
	best := p.Members[0]
	for _, m := range p.Members[1:] {
		if m.Fitness > best.Fitness {
			best = m
		}
	}
	return best
}
