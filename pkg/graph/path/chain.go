package path

import (
	"errors"
	"fmt"

	"github.com/prodflow/shopfloor-routing/pkg/graph"
)

// ChainResult is the outcome of a multi-waypoint search. FailedSegments
// records every consecutive pair for which the per-segment search found no
// path; such a pair is bridged directly in Path to keep the tour readable,
// but its undefined cost is excluded from Distance and the result must not
// be treated as a valid total.
type ChainResult struct {
	Result
	FailedSegments [][2]string
}

// Complete reports whether every segment search succeeded.
func (r *ChainResult) Complete() bool { return len(r.FailedSegments) == 0 }

// ChainWaypoints runs the chosen single-pair algorithm on each consecutive
// pair of the ordered waypoint list and concatenates the segments into one
// continuous path, dropping the duplicated boundary node between segments.
// Distance, step count and elapsed time accumulate across segments.
//
// An unreachable segment does not abort the chain: it is flagged in
// FailedSegments and the composite result reports Complete() == false.
func ChainWaypoints(g *graph.Graph, waypoints []string, algo Algorithm) (*ChainResult, error) {
	if len(waypoints) == 0 {
		return nil, fmt.Errorf("path: no waypoints given")
	}

	chain := &ChainResult{Result: Result{Path: []string{waypoints[0]}}}
	if _, ok := g.FindNode(waypoints[0]); !ok {
		return nil, fmt.Errorf("%w: %q", graph.ErrNodeNotFound, waypoints[0])
	}

	for i := 0; i+1 < len(waypoints); i++ {
		from, to := waypoints[i], waypoints[i+1]
		segment, err := Search(g, from, to, algo)
		if err != nil {
			if errors.Is(err, ErrNoPath) {
				// Keep the tour continuous but flag the gap instead of
				// summing an undefined segment cost.
				chain.FailedSegments = append(chain.FailedSegments, [2]string{from, to})
				chain.Path = append(chain.Path, to)
				continue
			}
			return nil, err
		}
		chain.Path = append(chain.Path, segment.Path[1:]...)
		chain.Distance += segment.Distance
		chain.Steps += segment.Steps
		chain.Elapsed += segment.Elapsed
	}
	return chain, nil
}
