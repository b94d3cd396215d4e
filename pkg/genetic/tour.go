package genetic

import (
	"fmt"
	"math"
	"time"

	"github.com/prodflow/shopfloor-routing/pkg/graph"
	"github.com/prodflow/shopfloor-routing/pkg/graph/path"
)

// OptimizeTour searches the space of waypoint orderings between a fixed start
// and goal. An individual is a permutation of every other graph node; its
// fitness is the length of the decoded path [start, perm..., goal] along the
// graph's direct edges. Crossover takes a random-length prefix of the first
// parent's interior and fills the remainder with the second parent's interior
// in original order, skipping duplicates, so children always stay valid
// permutations. Mutation swaps two interior positions and is a no-op with
// fewer than two interior waypoints.
//
// The returned Steps is the generation count, which is the unit the
// comparison harness reports for this strategy.
func OptimizeTour(g *graph.Graph, start, goal string, cfg Config) (*path.Result, error) {
	if _, ok := g.FindNode(start); !ok {
		return nil, fmt.Errorf("%w: %q", graph.ErrNodeNotFound, start)
	}
	if _, ok := g.FindNode(goal); !ok {
		return nil, fmt.Errorf("%w: %q", graph.ErrNodeNotFound, goal)
	}

	cfg = cfg.withDefaults()
	rng := cfg.rng()

	interior := make([]string, 0, g.NodeCount())
	for _, name := range g.Names() {
		if name != start && name != goal {
			interior = append(interior, name)
		}
	}

	decode := func(perm []string) []string {
		decoded := make([]string, 0, len(perm)+2)
		decoded = append(decoded, start)
		decoded = append(decoded, perm...)
		decoded = append(decoded, goal)
		return decoded
	}
	fitness := func(perm []string) float64 {
		return pathDistance(g, decode(perm))
	}

	crossover := func(a, b []string) []string {
		cut := 0
		if len(interior) > 1 {
			cut = rng.Intn(len(interior) - 1)
		}
		child := make([]string, 0, len(interior))
		child = append(child, a[:cut]...)
		seen := make(map[string]bool, len(child))
		for _, name := range child {
			seen[name] = true
		}
		for _, name := range b {
			if !seen[name] {
				child = append(child, name)
			}
		}
		return child
	}
	mutate := func(perm []string) {
		if len(perm) < 2 {
			return
		}
		i := rng.Intn(len(perm))
		j := rng.Intn(len(perm) - 1)
		if j >= i {
			j++
		}
		perm[i], perm[j] = perm[j], perm[i]
	}

	began := time.Now()

	population := make([]individual[[]string], cfg.Population)
	for i := range population {
		perm := make([]string, len(interior))
		copy(perm, interior)
		rng.Shuffle(len(perm), func(a, b int) { perm[a], perm[b] = perm[b], perm[a] })
		population[i] = individual[[]string]{genes: perm, fitness: fitness(perm)}
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

// pathDistance sums the direct edge weights along the given node sequence.
// A missing edge contributes +Inf: on the complete graphs this optimizer runs
// over that never happens, and on a partial graph an infeasible tour must
// lose to every feasible one instead of being silently undercounted.
func pathDistance(g *graph.Graph, names []string) float64 {
	total := 0.0
	for i := 0; i+1 < len(names); i++ {
		arc, ok := findArc(g, names[i], names[i+1])
		if !ok {
			return math.Inf(1)
		}
		total += arc.Distance
	}
	return total
}

func findArc(g *graph.Graph, from, to string) (graph.Arc, bool) {
	for _, arc := range g.Neighbors(from) {
		if arc.To == to {
			return arc, true
		}
	}
	return graph.Arc{}, false
}
