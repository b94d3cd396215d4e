package path

import (
	"errors"
	"fmt"
	"time"

	"github.com/prodflow/shopfloor-routing/pkg/graph"
)

// Algorithm is the closed set of route search strategies. The comparison
// harness iterates over these variants generically instead of wiring each
// strategy through ad hoc parameters.
type Algorithm int

const (
	AStar Algorithm = iota
	Dijkstra
	Genetic
)

func (a Algorithm) String() string {
	switch a {
	case AStar:
		return "astar"
	case Dijkstra:
		return "dijkstra"
	case Genetic:
		return "ga"
	}
	return "unknown"
}

// ParseAlgorithm maps the user-facing algorithm names to their variants.
func ParseAlgorithm(s string) (Algorithm, error) {
	switch s {
	case "astar":
		return AStar, nil
	case "dijkstra":
		return Dijkstra, nil
	case "ga", "genetic":
		return Genetic, nil
	}
	return 0, fmt.Errorf("path: unknown algorithm %q", s)
}

// ErrNoPath is returned when the frontier is exhausted before the goal is
// reached. It cannot happen on a fully connected graph but partially built
// graphs must still surface it as a distinct outcome.
var ErrNoPath = errors.New("path: no path between the given nodes")

// Result reports one finished search. Path holds the node names from start to
// goal, Distance the sum of traversed edge weights in kilometers and Steps
// the number of frontier pops (or generations, for the genetic optimizer).
// A Result is produced fresh per invocation and never mutated afterwards.
type Result struct {
	Path     []string
	Distance float64
	Steps    int
	Elapsed  time.Duration
}

// Search computes the shortest path between two named nodes using the given
// single-pair algorithm. start == goal is a valid degenerate search: it
// yields a single-node path with distance 0, which is distinct from the
// ErrNoPath failure.
func Search(g *graph.Graph, start, goal string, algo Algorithm) (*Result, error) {
	switch algo {
	case AStar:
		return shortestPath(g, start, goal, true)
	case Dijkstra:
		return shortestPath(g, start, goal, false)
	default:
		return nil, fmt.Errorf("path: %v is not a single-pair search algorithm", algo)
	}
}
