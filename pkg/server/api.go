package server

import (
	"context"

	"github.com/paulmach/orb/geojson"

	"github.com/prodflow/shopfloor-routing/pkg/routing"
)

// PlannerServicer defines the api actions for the route planning API. The
// controller parses requests, hands them to a PlannerServicer and writes the
// results back.
type PlannerServicer interface {
	Machines(ctx context.Context) ([]MachineInfo, error)
	ComputeRoute(ctx context.Context, req RouteRequest) (routing.AlgorithmResult, error)
	Compare(ctx context.Context, req CompareRequest) ([]routing.AlgorithmResult, error)
	FlowGeoJSON(ctx context.Context) (*geojson.FeatureCollection, error)
}

// MachineInfo is the wire shape of one selected machine.
type MachineInfo struct {
	Name    string  `json:"name"`
	Lat     float64 `json:"lat"`
	Lon     float64 `json:"lon"`
	Process string  `json:"process"`
	Status  string  `json:"status"`
}

// RouteRequest asks for a single-pair shortest path.
type RouteRequest struct {
	Start     string `json:"start"`
	Goal      string `json:"goal"`
	Algorithm string `json:"algorithm,omitempty"` // astar (default) or dijkstra
}

// CompareRequest runs the full algorithm comparison over the selected flow.
// The genetic parameters are optional; zero values use the defaults.
type CompareRequest struct {
	Generations  int     `json:"generations,omitempty"`
	Population   int     `json:"population,omitempty"`
	MutationRate float64 `json:"mutationRate,omitempty"`
	Seed         int64   `json:"seed,omitempty"`
}
