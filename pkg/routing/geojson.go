package routing

import (
	"fmt"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"

	"github.com/prodflow/shopfloor-routing/pkg/graph"
)

// RouteGeoJSON renders the graph's machines as point features plus the
// computed route as one LineString feature, the shape mapping frontends
// consume directly.
func RouteGeoJSON(g *graph.Graph, result AlgorithmResult) (*geojson.FeatureCollection, error) {
	fc := geojson.NewFeatureCollection()

	for _, name := range g.Names() {
		node, _ := g.FindNode(name)
		f := geojson.NewFeature(node.Coord.Orb())
		f.Properties["name"] = name
		fc.Append(f)
	}

	line := make(orb.LineString, 0, len(result.Path))
	for _, name := range result.Path {
		node, ok := g.FindNode(name)
		if !ok {
			return nil, fmt.Errorf("%w: %q", graph.ErrNodeNotFound, name)
		}
		line = append(line, node.Coord.Orb())
	}
	route := geojson.NewFeature(line)
	route.Properties["algorithm"] = result.Algorithm
	route.Properties["distance_km"] = result.DistanceKm
	route.Properties["optimal"] = result.Optimal
	fc.Append(route)

	return fc, nil
}
