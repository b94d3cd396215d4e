// Package routing runs every configured search strategy over the same graph
// and waypoint sequence and reports one normalized record per strategy, the
// contract boundary consumed by the CSV report, the GeoJSON export and the
// HTTP API.
package routing

import (
	"fmt"
	"math"
	"sync"

	"github.com/prodflow/shopfloor-routing/pkg/genetic"
	"github.com/prodflow/shopfloor-routing/pkg/graph"
	"github.com/prodflow/shopfloor-routing/pkg/graph/path"
)

// Epsilon is the absolute tolerance for cost comparisons between algorithms.
// Accumulation order differs per algorithm, so exact equality is meaningless.
const Epsilon = 1e-6

// AlgorithmResult is the normalized per-strategy record. Its shape is stable
// across algorithms so results stay comparable in tabular form.
type AlgorithmResult struct {
	Algorithm  string   `json:"algorithm"`
	Path       []string `json:"path"`
	DistanceKm float64  `json:"distance_km"`
	Seconds    float64  `json:"time_s"`
	Optimal    bool     `json:"optimal"`
	Steps      int      `json:"iterations"`
	Complete   bool     `json:"complete"`
}

// Options selects the strategies to compare against the A* reference and
// carries the genetic optimizer configuration.
type Options struct {
	Dijkstra bool
	Genetic  bool
	GA       genetic.Config
}

// CompareAll enables every strategy.
func CompareAll(ga genetic.Config) Options {
	return Options{Dijkstra: true, Genetic: true, GA: ga}
}

// Compare routes the ordered waypoint sequence through each selected
// strategy. A* always runs: it is the optimality reference, so its record
// carries Optimal=true unconditionally while every other strategy is optimal
// iff its cost matches A* within Epsilon. An incomplete chain (a waypoint
// pair with no path) is never reported optimal, its summed distance excludes
// the failed segments.
//
// The strategies are independent and the graph is read-only once built, so
// they run concurrently without locking.
func Compare(g *graph.Graph, waypoints []string, opts Options) ([]AlgorithmResult, error) {
	if len(waypoints) < 2 {
		return nil, fmt.Errorf("routing: need at least 2 waypoints, got %d", len(waypoints))
	}

	type slot struct {
		result AlgorithmResult
		err    error
	}
	run := make([]path.Algorithm, 0, 3)
	run = append(run, path.AStar)
	if opts.Dijkstra {
		run = append(run, path.Dijkstra)
	}
	if opts.Genetic {
		run = append(run, path.Genetic)
	}

	slots := make([]slot, len(run))
	var wg sync.WaitGroup
	for i, algo := range run {
		wg.Add(1)
		go func(i int, algo path.Algorithm) {
			defer wg.Done()
			slots[i].result, slots[i].err = runStrategy(g, waypoints, algo, opts.GA)
		}(i, algo)
	}
	wg.Wait()

	results := make([]AlgorithmResult, 0, len(slots))
	for _, s := range slots {
		if s.err != nil {
			return nil, s.err
		}
		results = append(results, s.result)
	}

	reference := results[0].DistanceKm
	for i := range results {
		switch {
		case i == 0:
			results[i].Optimal = true
		case !results[i].Complete:
			results[i].Optimal = false
		default:
			results[i].Optimal = math.Abs(results[i].DistanceKm-reference) < Epsilon
		}
	}
	return results, nil
}

func runStrategy(g *graph.Graph, waypoints []string, algo path.Algorithm, ga genetic.Config) (AlgorithmResult, error) {
	if algo == path.Genetic {
		start, goal := waypoints[0], waypoints[len(waypoints)-1]
		res, err := genetic.OptimizeTour(g, start, goal, ga)
		if err != nil {
			return AlgorithmResult{}, err
		}
		return AlgorithmResult{
			Algorithm:  algo.String(),
			Path:       res.Path,
			DistanceKm: res.Distance,
			Seconds:    res.Elapsed.Seconds(),
			Steps:      res.Steps,
			Complete:   !math.IsInf(res.Distance, 1),
		}, nil
	}

	chain, err := path.ChainWaypoints(g, waypoints, algo)
	if err != nil {
		return AlgorithmResult{}, err
	}
	return AlgorithmResult{
		Algorithm:  algo.String(),
		Path:       chain.Path,
		DistanceKm: chain.Distance,
		Seconds:    chain.Elapsed.Seconds(),
		Steps:      chain.Steps,
		Complete:   chain.Complete(),
	}, nil
}
