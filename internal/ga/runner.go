package ga

import (
	"errors"
	"fmt"

	"onemax/internal/rng"
)

// ErrInvalidConfig is wrapped by all parameter validation failures.
var ErrInvalidConfig = errors.New("invalid ga configuration")

// Params are the four integers that define a run.
type Params struct {
	GenomeLength   int // N, bits per genome
	PopulationSize int // M, genomes per population
	Bottleneck     int // B, elite count retained as parents
	MaxGenerations int // hard iteration cap
}

// Validate checks the run preconditions. The loop must not start on
// invalid parameters; pairing and replacement assume even sizes.
func (p Params) Validate() error {
	if p.GenomeLength < 1 {
		return fmt.Errorf("%w: genome length %d, want >= 1", ErrInvalidConfig, p.GenomeLength)
	}
	if p.PopulationSize < 2 || p.PopulationSize%2 != 0 {
		return fmt.Errorf("%w: population size %d, want even and >= 2", ErrInvalidConfig, p.PopulationSize)
	}
	if p.Bottleneck < 2 || p.Bottleneck%2 != 0 {
		return fmt.Errorf("%w: bottleneck %d, want even and > 0", ErrInvalidConfig, p.Bottleneck)
	}
	if p.Bottleneck > p.PopulationSize {
		return fmt.Errorf("%w: bottleneck %d exceeds population size %d", ErrInvalidConfig, p.Bottleneck, p.PopulationSize)
	}
	if p.MaxGenerations < 0 {
		return fmt.Errorf("%w: max generations %d, want >= 0", ErrInvalidConfig, p.MaxGenerations)
	}
	return nil
}

// Reporter receives run progress. Generation is called once per
// evaluation with the freshly sorted population, including the terminal
// one; callers may read it during the callback but must not retain it.
// Final is called once with the final population and generation count.
type Reporter interface {
	Generation(gen int, pop *Population)
	Final(pop *Population, gen int)
}

// NopReporter discards all progress.
type NopReporter struct{}

func (NopReporter) Generation(int, *Population) {}

func (NopReporter) Final(*Population, int) {}

// Runner drives the evolutionary loop: evaluate and sort, check
// termination, then breed the elite into the bottom slots. It owns the
// population; nothing else retains a reference across generations.
type Runner struct {
	params Params
	src    rng.Source
	rep    Reporter
}

// NewRunner validates params and returns a runner. A nil reporter is
// replaced with a NopReporter.
func NewRunner(params Params, src rng.Source, rep Reporter) (*Runner, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}
	if rep == nil {
		rep = NopReporter{}
	}
	return &Runner{params: params, src: src, rep: rep}, nil
}

// Run executes the loop to completion and returns the final population
// and terminal generation count. The count starts at 1 and increments
// per reproduction, so it reaches MaxGenerations+1 when the run never
// converges. Termination is best fitness exactly 1.0 or the counter
// passing the cap, checked after every sort.
func (r *Runner) Run() (*Population, int) {
	pop := NewPopulation(r.params.PopulationSize, r.params.GenomeLength, r.src)

	gen := 1
	for {
		pop.SortByFitness()
		r.rep.Generation(gen, pop)
		if pop.Members[0].Fitness == 1.0 || gen > r.params.MaxGenerations {
			break
		}
		r.reproduce(pop)
		gen++
	}

	r.rep.Final(pop, gen)
	return pop, gen
}

// reproduce breeds the sorted population's top Bottleneck members and
// overwrites the bottom Bottleneck slots with their offspring, the
// least-fit slots first. Offspring are collected before any slot is
// written: when Bottleneck == PopulationSize every slot is both parent
// and replacement target, and parents must be read intact.
func (r *Runner) reproduce(pop *Population) {
	m := r.params.PopulationSize
	pairs := ElitePairs(r.params.Bottleneck, r.src)

	offspring := make([]Genome, 2*len(pairs))
	for i, pair := range pairs {
		cut := r.src.Intn(r.params.GenomeLength)
		offspring[2*i], offspring[2*i+1] = Crossover(
			pop.Members[pair.A].Genome, pop.Members[pair.B].Genome, cut)
	}

	for i := range pairs {
		pop.Members[m-2-2*i].Genome = offspring[2*i]
		pop.Members[m-1-2*i].Genome = offspring[2*i+1]
	}
	pop.Evaluate()
}
