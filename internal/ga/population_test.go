package ga

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"onemax/internal/rng"
)

func TestNewPopulation_SizeAndLengths(t *testing.T) {
	src := rng.New(7)
	pop := NewPopulation(10, 16, src)

	require.Equal(t, 10, pop.Size())
	for _, m := range pop.Members {
		assert.Len(t, m.Genome, 16)
		assert.Equal(t, m.Genome.Fitness(), m.Fitness, "cached fitness must match the genome")
	}
}

func TestSortByFitness_Descending(t *testing.T) {
	src := rng.New(99)
	pop := NewPopulation(20, 16, src)
	pop.SortByFitness()

	for i := 0; i < pop.Size()-1; i++ {
		assert.GreaterOrEqual(t, pop.Members[i].Fitness, pop.Members[i+1].Fitness,
			"members %d and %d out of order", i, i+1)
	}
}

// TestSortByFitness_StableTies verifies equal-fitness members keep
// their relative order, so runs are reproducible for a fixed seed.
func TestSortByFitness_StableTies(t *testing.T) {
	pop := &Population{Members: []Individual{
		{Genome: Genome{1, 0, 0, 0}}, // 0.25
		{Genome: Genome{0, 1, 1, 0}}, // 0.50, first
		{Genome: Genome{1, 1, 0, 0}}, // 0.50, second
		{Genome: Genome{0, 0, 1, 1}}, // 0.50, third
	}}
	pop.Evaluate()
	pop.SortByFitness()

	assert.Equal(t, "0110", pop.Members[0].Genome.String())
	assert.Equal(t, "1100", pop.Members[1].Genome.String())
	assert.Equal(t, "0011", pop.Members[2].Genome.String())
	assert.Equal(t, "1000", pop.Members[3].Genome.String())
}

func TestBest(t *testing.T) {
	pop := &Population{Members: []Individual{
		{Genome: Genome{0, 0}},
		{Genome: Genome{1, 1}},
		{Genome: Genome{1, 0}},
	}}
	pop.Evaluate()

	assert.Equal(t, 1.0, pop.Best().Fitness)
}
