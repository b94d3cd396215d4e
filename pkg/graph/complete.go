package graph

import (
	"sort"

	"github.com/prodflow/shopfloor-routing/pkg/geometry"
)

// NewCompleteGraph builds the complete graph over the given coordinate set:
// every unordered pair of distinct names gets exactly one edge weighted with
// the haversine distance between the two coordinates. Names are inserted in
// sorted order so that repeated builds enumerate neighbors identically.
//
// Construction is O(n²) in the number of names. It runs once per planning
// invocation over the handful of selected machines, so that is acceptable.
func NewCompleteGraph(coords map[string]geometry.Point) *Graph {
	names := make([]string, 0, len(coords))
	for name := range coords {
		names = append(names, name)
	}
	sort.Strings(names)

	g := NewGraph()
	for _, name := range names {
		g.AddNode(name, coords[name])
	}
	for i, a := range names {
		for _, b := range names[i+1:] {
			if err := g.AddEdge(a, b, coords[a].Haversine(coords[b])); err != nil {
				// distinct, freshly inserted names cannot fail
				panic(err)
			}
		}
	}
	return g
}
