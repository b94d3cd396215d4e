// Package genetic implements a population-based route optimizer. It is an
// independent, non-exact strategy for the same class of problem the graph
// searches solve: minimize the total route distance across an ordered
// sequence of stops. It trades the optimality guarantee of A*/Dijkstra for a
// tunable quality/time budget.
package genetic

import (
	"math/rand"
	"sort"
	"time"
)

const (
	// eliteCount individuals survive each generation unconditionally, so the
	// best known fitness can never get worse across generations.
	eliteCount = 2
	// parentPool is how many of the fittest individuals parents are drawn from.
	parentPool = 10

	DefaultGenerations  = 50
	DefaultPopulation   = 30
	DefaultMutationRate = 0.1
)

// Config tunes the evolutionary loop. Population and MutationRate fall back
// to their defaults when unset and a zero Seed derives one from the clock.
// Generations is taken literally: zero evaluates the initial population
// without breeding, callers wanting the default pass DefaultGenerations.
type Config struct {
	Generations  int
	Population   int
	MutationRate float64
	Seed         int64
}

func (c Config) withDefaults() Config {
	if c.Generations < 0 {
		c.Generations = 0
	}
	if c.Population < 2 {
		// breeding samples two distinct parents, so anything below 2 falls
		// back to the default
		c.Population = DefaultPopulation
	}
	if c.MutationRate <= 0 {
		c.MutationRate = DefaultMutationRate
	}
	return c
}

func (c Config) rng() *rand.Rand {
	seed := c.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed))
}

// individual is one candidate solution with its cached fitness.
type individual[G any] struct {
	genes   G
	fitness float64
}

// evolve runs the shared generation loop over an initial population:
// sort ascending by fitness, carry over the elite unchanged, then fill the
// next generation with children of two distinct parents sampled uniformly
// from the fittest parentPool individuals, each child mutated with
// probability cfg.MutationRate. Returns the final population sorted by
// fitness, so index 0 is the best individual found.
//
// With Generations == 0 the initial population is only sorted, never bred.
func evolve[G any](
	rng *rand.Rand,
	cfg Config,
	population []individual[G],
	crossover func(a, b G) G,
	mutate func(G),
	fitness func(G) float64,
) []individual[G] {
	byFitness := func(p []individual[G]) {
		sort.SliceStable(p, func(i, j int) bool { return p[i].fitness < p[j].fitness })
	}

	for gen := 0; gen < cfg.Generations; gen++ {
		byFitness(population)

		next := make([]individual[G], 0, len(population))
		next = append(next, population[:min(eliteCount, len(population))]...)

		pool := min(parentPool, len(population))
		for len(next) < len(population) {
			i := rng.Intn(pool)
			j := rng.Intn(pool - 1)
			if j >= i {
				j++
			}
			genes := crossover(population[i].genes, population[j].genes)
			if rng.Float64() < cfg.MutationRate {
				mutate(genes)
			}
			next = append(next, individual[G]{genes: genes, fitness: fitness(genes)})
		}
		population = next
	}

	byFitness(population)
	return population
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
