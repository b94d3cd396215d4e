package aas

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/prodflow/shopfloor-routing/internal/geocode"
	"github.com/prodflow/shopfloor-routing/pkg/geometry"
)

var (
	// ErrNoAddress marks a document without a resolvable postal address.
	ErrNoAddress = errors.New("aas: no address in document")
	// ErrNoProcess marks a document that no classification rule matched.
	ErrNoProcess = errors.New("aas: no process category for document")
)

// Machine is the flat record handed to the routing core. It is constructed
// here, immutable afterwards; the core only reads name, coordinate and
// process.
type Machine struct {
	Name    string
	Coord   geometry.Point
	Process string
	Status  string
	Address string
}

// Running reports whether the machine participates in route planning.
func (m Machine) Running() bool {
	return strings.EqualFold(m.Status, "running")
}

// Machine builds the flat record for one document. The address is mandatory
// and must geocode; a missing status degrades to "Unknown"; a document no
// classification rule matches is rejected with ErrNoProcess.
func (c Classifier) Machine(ctx context.Context, name string, doc *Document, geocoder geocode.Geocoder) (*Machine, error) {
	address, ok := c.Address(doc)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrNoAddress, name)
	}

	coord, err := geocoder.Geocode(ctx, address)
	if err != nil {
		return nil, fmt.Errorf("aas: locate %q: %w", name, err)
	}

	status, ok := c.Status(doc)
	if !ok {
		status = "Unknown"
	}

	process, ok := c.Process(doc)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrNoProcess, name)
	}

	return &Machine{
		Name:    name,
		Coord:   coord,
		Process: process,
		Status:  status,
		Address: address,
	}, nil
}

// Coords returns the name → coordinate mapping the graph builder consumes.
func Coords(machines []Machine) map[string]geometry.Point {
	coords := make(map[string]geometry.Point, len(machines))
	for _, m := range machines {
		coords[m.Name] = m.Coord
	}
	return coords
}

// Names returns the machine names in input order.
func Names(machines []Machine) []string {
	names := make([]string, len(machines))
	for i, m := range machines {
		names[i] = m.Name
	}
	return names
}
