package genetic

import (
	"errors"
	"fmt"
	"time"

	"github.com/prodflow/shopfloor-routing/pkg/geometry"
	"github.com/prodflow/shopfloor-routing/pkg/graph/path"
)

var (
	// ErrEmptyCandidatePool is returned when a process step has no machine
	// to choose from.
	ErrEmptyCandidatePool = errors.New("genetic: process step has no candidates")
	// ErrUnknownMachine is returned when a candidate machine has no
	// coordinate in the given map.
	ErrUnknownMachine = errors.New("genetic: no coordinate for machine")
)

// OptimizeAssignment searches the space of per-step machine selections. The
// flow gives the ordered process steps and pools the ordered candidate
// machines per step; an individual is an index vector choosing one machine
// per step, and its fitness is the haversine length of the tour through the
// chosen machines. Crossover is single point: genes before the cut come from
// the first parent, the rest from the second. Mutation reassigns one gene to
// a different valid index and is a no-op for steps with a single candidate,
// so individuals are valid by construction and need no penalty term.
func OptimizeAssignment(coords map[string]geometry.Point, flow []string, pools map[string][]string, cfg Config) (*path.Result, error) {
	if len(flow) == 0 {
		return nil, fmt.Errorf("genetic: empty process flow")
	}
	for _, step := range flow {
		if len(pools[step]) == 0 {
			return nil, fmt.Errorf("%w: %q", ErrEmptyCandidatePool, step)
		}
		for _, name := range pools[step] {
			if _, ok := coords[name]; !ok {
				return nil, fmt.Errorf("%w: %q", ErrUnknownMachine, name)
			}
		}
	}

	cfg = cfg.withDefaults()
	rng := cfg.rng()

	decode := func(genes []int) []string {
		names := make([]string, len(genes))
		for i, gene := range genes {
			names[i] = pools[flow[i]][gene]
		}
		return names
	}
	fitness := func(genes []int) float64 {
		names := decode(genes)
		total := 0.0
		for i := 0; i+1 < len(names); i++ {
			total += coords[names[i]].Haversine(coords[names[i+1]])
		}
		return total
	}

	crossover := func(a, b []int) []int {
		cut := rng.Intn(len(flow))
		child := make([]int, len(flow))
		copy(child[:cut], a[:cut])
		copy(child[cut:], b[cut:])
		return child
	}
	mutate := func(genes []int) {
		pos := rng.Intn(len(genes))
		size := len(pools[flow[pos]])
		if size < 2 {
			return
		}
		gene := rng.Intn(size - 1)
		if gene >= genes[pos] {
			gene++
		}
		genes[pos] = gene
	}

	began := time.Now()

	population := make([]individual[[]int], cfg.Population)
	for i := range population {
		genes := make([]int, len(flow))
		for step := range genes {
			genes[step] = rng.Intn(len(pools[flow[step]]))
		}
		population[i] = individual[[]int]{genes: genes, fitness: fitness(genes)}
	}

	population = evolve(rng, cfg, population, crossover, mutate, fitness)

	best := population[0]
	return &path.Result{
		Path:     decode(best.genes),
		Distance: best.fitness,
		Steps:    cfg.Generations,
		Elapsed:  time.Since(began),
	}, nil
}
