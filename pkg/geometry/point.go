package geometry

import (
	"math"

	"github.com/paulmach/orb"
)

// EarthRadius is the mean Earth radius in kilometers.
const EarthRadius = 6371.0

// Point is a geographic location given in degrees. The underlying orb.Point
// stores longitude first, matching the GeoJSON axis order.
type Point struct {
	point orb.Point
}

func NewPoint(lat, lon float64) *Point {
	return &Point{point: orb.Point{lon, lat}}
}

func MakePoint(lat, lon float64) Point {
	return Point{point: orb.Point{lon, lat}}
}

func (p Point) Lat() float64 {
	return p.point.Lat()
}

func (p Point) Lon() float64 {
	return p.point.Lon()
}

// Orb returns the location as an orb.Point for GeoJSON encoding.
func (p Point) Orb() orb.Point {
	return p.point
}

// Haversine computes the great-circle distance between p and other in
// kilometers. The distance is symmetric, zero only for identical points and
// satisfies the triangle inequality on the sphere, which makes it usable both
// as an edge weight and as an admissible search heuristic.
//
// Coordinates are not validated: values outside the usual degree ranges still
// produce a finite result, it is just not a physically meaningful one.
func (p Point) Haversine(other Point) float64 {
	phi1 := deg2rad(p.Lat())
	phi2 := deg2rad(other.Lat())
	deltaPhi := deg2rad(other.Lat() - p.Lat())
	deltaLambda := deg2rad(other.Lon() - p.Lon())

	a := math.Sin(deltaPhi/2)*math.Sin(deltaPhi/2) +
		math.Cos(phi1)*math.Cos(phi2)*math.Sin(deltaLambda/2)*math.Sin(deltaLambda/2)
	return 2 * EarthRadius * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))
}

func deg2rad(d float64) float64 {
	return d * math.Pi / 180
}
