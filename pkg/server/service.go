package server

import (
	"context"
	"fmt"

	"github.com/paulmach/orb/geojson"

	"github.com/prodflow/shopfloor-routing/internal/aas"
	"github.com/prodflow/shopfloor-routing/pkg/genetic"
	"github.com/prodflow/shopfloor-routing/pkg/graph"
	"github.com/prodflow/shopfloor-routing/pkg/graph/path"
	"github.com/prodflow/shopfloor-routing/pkg/routing"
)

// PlannerService implements PlannerServicer over one machine selection. The
// route graph is built once at construction and read-only afterwards, so the
// handlers can serve concurrent requests without locking.
type PlannerService struct {
	machines []aas.Machine
	graph    *graph.Graph
	flow     []string
}

// NewPlannerService selects one running machine per flow step from the given
// machine park and materializes the complete route graph over the selection.
func NewPlannerService(machines []aas.Machine, flow []string) (*PlannerService, error) {
	selected := aas.SelectFlow(machines, flow)
	if len(selected) < 2 {
		return nil, fmt.Errorf("server: need at least 2 selected machines, got %d", len(selected))
	}
	return &PlannerService{
		machines: selected,
		graph:    graph.NewCompleteGraph(aas.Coords(selected)),
		flow:     flow,
	}, nil
}

func (s *PlannerService) Machines(ctx context.Context) ([]MachineInfo, error) {
	infos := make([]MachineInfo, 0, len(s.machines))
	for _, m := range s.machines {
		infos = append(infos, MachineInfo{
			Name:    m.Name,
			Lat:     m.Coord.Lat(),
			Lon:     m.Coord.Lon(),
			Process: m.Process,
			Status:  m.Status,
		})
	}
	return infos, nil
}

func (s *PlannerService) ComputeRoute(ctx context.Context, req RouteRequest) (routing.AlgorithmResult, error) {
	algoName := req.Algorithm
	if algoName == "" {
		algoName = path.AStar.String()
	}
	algo, err := path.ParseAlgorithm(algoName)
	if err != nil {
		return routing.AlgorithmResult{}, err
	}

	res, err := path.Search(s.graph, req.Start, req.Goal, algo)
	if err != nil {
		return routing.AlgorithmResult{}, err
	}
	return routing.AlgorithmResult{
		Algorithm:  algo.String(),
		Path:       res.Path,
		DistanceKm: res.Distance,
		Seconds:    res.Elapsed.Seconds(),
		Optimal:    algo == path.AStar,
		Steps:      res.Steps,
		Complete:   true,
	}, nil
}

func (s *PlannerService) Compare(ctx context.Context, req CompareRequest) ([]routing.AlgorithmResult, error) {
	ga := genetic.Config{
		Generations:  req.Generations,
		Population:   req.Population,
		MutationRate: req.MutationRate,
		Seed:         req.Seed,
	}
	if ga.Generations == 0 {
		ga.Generations = genetic.DefaultGenerations
	}
	return routing.Compare(s.graph, aas.Names(s.machines), routing.CompareAll(ga))
}

func (s *PlannerService) FlowGeoJSON(ctx context.Context) (*geojson.FeatureCollection, error) {
	chain, err := path.ChainWaypoints(s.graph, aas.Names(s.machines), path.AStar)
	if err != nil {
		return nil, err
	}
	return routing.RouteGeoJSON(s.graph, routing.AlgorithmResult{
		Algorithm:  path.AStar.String(),
		Path:       chain.Path,
		DistanceKm: chain.Distance,
		Optimal:    chain.Complete(),
	})
}
