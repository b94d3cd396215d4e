package path

import (
	"fmt"
	"time"

	"github.com/prodflow/shopfloor-routing/pkg/graph"
	"github.com/prodflow/shopfloor-routing/pkg/queue"
	"github.com/prodflow/shopfloor-routing/pkg/slice"
)

// shortestPath is the shared frontier/closed-set engine behind A* and
// Dijkstra. With useHeuristic the frontier is keyed by g+h where h is the
// haversine distance to the goal; because the edge weights are themselves
// haversine distances the heuristic is consistent and the search never
// re-expands a finalized node. With useHeuristic=false the key degenerates to
// g, which is plain Dijkstra.
//
// The step count increments once per frontier pop and feeds the algorithm
// comparison, it has no influence on correctness. For a fixed node insertion
// order the expansion order is deterministic, equal keys included.
func shortestPath(g *graph.Graph, start, goal string, useHeuristic bool) (*Result, error) {
	startNode, ok := g.FindNode(start)
	if !ok {
		return nil, fmt.Errorf("%w: %q", graph.ErrNodeNotFound, start)
	}
	goalNode, ok := g.FindNode(goal)
	if !ok {
		return nil, fmt.Errorf("%w: %q", graph.ErrNodeNotFound, goal)
	}

	began := time.Now()

	if start == goal {
		return &Result{Path: []string{start}, Distance: 0, Steps: 0, Elapsed: time.Since(began)}, nil
	}

	h := func(n *graph.Node) float64 {
		if !useHeuristic {
			return 0
		}
		return n.Coord.Haversine(goalNode.Coord)
	}

	items := make(map[string]*searchItem, g.NodeCount())
	closed := make(map[string]bool, g.NodeCount())
	frontier := queue.NewMinHeap[*searchItem](nil)

	origin := newSearchItem(start, 0, h(startNode), "")
	items[start] = origin
	frontier.Push(origin)

	steps := 0
	for frontier.Len() > 0 {
		current := frontier.Pop()
		steps++

		if current.name == goal {
			return &Result{
				Path:     reconstructPath(items, start, goal),
				Distance: current.distance,
				Steps:    steps,
				Elapsed:  time.Since(began),
			}, nil
		}

		closed[current.name] = true

		currentNode, _ := g.FindNode(current.name)
		for _, arc := range currentNode.Arcs() {
			if closed[arc.To] {
				continue
			}
			tentative := current.distance + arc.Distance
			successor, seen := items[arc.To]
			if !seen {
				neighborNode, _ := g.FindNode(arc.To)
				successor = newSearchItem(arc.To, tentative, h(neighborNode), current.name)
				items[arc.To] = successor
				frontier.Push(successor)
			} else if tentative < successor.distance {
				successor.distance = tentative
				successor.predecessor = current.name
				frontier.Update(successor)
			}
		}
	}

	return nil, fmt.Errorf("%w: %s -> %s", ErrNoPath, start, goal)
}

// reconstructPath walks the recorded predecessors from the goal back to the
// start and reverses the chain.
func reconstructPath(items map[string]*searchItem, start, goal string) []string {
	path := make([]string, 0)
	for name := goal; ; name = items[name].predecessor {
		path = append(path, name)
		if name == start {
			break
		}
	}
	slice.ReverseInPlace(path)
	return path
}
