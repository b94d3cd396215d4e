// Package geocode resolves postal addresses to geographic coordinates for
// the ingestion layer. The routing core never geocodes; it only consumes the
// resulting name → coordinate mapping.
package geocode

import (
	"context"
	"errors"
	"fmt"

	"github.com/prodflow/shopfloor-routing/pkg/geometry"
)

// ErrNotFound is returned when no coordinate is known for an address.
var ErrNotFound = errors.New("geocode: address not found")

type Geocoder interface {
	Geocode(ctx context.Context, address string) (geometry.Point, error)
}

// Static resolves addresses from a fixed table.
type Static map[string]geometry.Point

func (s Static) Geocode(_ context.Context, address string) (geometry.Point, error) {
	if p, ok := s[address]; ok {
		return p, nil
	}
	return geometry.Point{}, fmt.Errorf("%w: %q", ErrNotFound, address)
}

// DefaultTable returns the address table shipped with the planner, covering
// the plants whose AAS documents carry no machine-readable coordinates.
func DefaultTable() Static {
	return Static{
		"6666 W 66th St, Chicago, Illinois":        geometry.MakePoint(41.772, -87.782),
		"2904 Scott Blvd, Santa Clara, California": geometry.MakePoint(37.369, -121.972),
	}
}

// Fallback tries each geocoder in order and returns the first hit. Resolver
// errors other than ErrNotFound abort the chain.
type Fallback []Geocoder

func (f Fallback) Geocode(ctx context.Context, address string) (geometry.Point, error) {
	for _, g := range f {
		p, err := g.Geocode(ctx, address)
		if err == nil {
			return p, nil
		}
		if !errors.Is(err, ErrNotFound) {
			return geometry.Point{}, err
		}
	}
	return geometry.Point{}, fmt.Errorf("%w: %q", ErrNotFound, address)
}
