// Package aas reads Asset Administration Shell JSON documents and turns them
// into the flat machine records the routing core consumes. The core never
// touches documents; it only sees name, coordinate and process category.
package aas

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
)

// maxVisitDepth bounds the element-tree walk. Real-world AAS submodels nest
// collections a handful of levels deep; anything beyond that is treated as
// absent rather than recursed into.
const maxVisitDepth = 8

var (
	// ErrNoShells marks a document without assetAdministrationShells.
	ErrNoShells = errors.New("aas: document has no asset administration shells")
	// ErrNoSubmodels marks a document without submodels.
	ErrNoSubmodels = errors.New("aas: document has no submodels")
)

// Document is the subset of an AAS JSON file the planner reads.
type Document struct {
	AssetAdministrationShells []Shell    `json:"assetAdministrationShells"`
	Submodels                 []Submodel `json:"submodels"`
}

type Shell struct {
	IdShort string `json:"idShort"`
}

type Submodel struct {
	IdShort          string            `json:"idShort"`
	SemanticId       *Reference        `json:"semanticId,omitempty"`
	SubmodelElements []SubmodelElement `json:"submodelElements"`
}

type Reference struct {
	Keys []Key `json:"keys"`
}

type Key struct {
	Value string `json:"value"`
}

// SubmodelElement is one node of the submodel tree. Value stays raw because
// documents in the wild put strings, numbers or objects there; StringValue
// resolves the only shape the planner cares about.
type SubmodelElement struct {
	IdShort          string            `json:"idShort"`
	Value            json.RawMessage   `json:"value,omitempty"`
	SubmodelElements []SubmodelElement `json:"submodelElements,omitempty"`
}

// StringValue returns the element value if it is a JSON string.
func (e SubmodelElement) StringValue() (string, bool) {
	if len(e.Value) == 0 {
		return "", false
	}
	var s string
	if err := json.Unmarshal(e.Value, &s); err != nil {
		return "", false
	}
	return s, true
}

// SemanticIRDI returns the first semantic id key of the submodel, the slot
// IRDI classification codes live in.
func (s Submodel) SemanticIRDI() (string, bool) {
	if s.SemanticId == nil || len(s.SemanticId.Keys) == 0 {
		return "", false
	}
	return s.SemanticId.Keys[0].Value, true
}

// DecodeDocument parses an AAS JSON document.
func DecodeDocument(r io.Reader) (*Document, error) {
	var doc Document
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("aas: decode document: %w", err)
	}
	return &doc, nil
}

// Validate checks the minimal structure the planner requires.
func (d *Document) Validate() error {
	if len(d.AssetAdministrationShells) == 0 {
		return ErrNoShells
	}
	if len(d.Submodels) == 0 {
		return ErrNoSubmodels
	}
	return nil
}

// visit walks the element tree depth-first up to maxVisitDepth levels,
// calling fn on every element until fn reports a match.
func visit(elements []SubmodelElement, depth int, fn func(SubmodelElement) bool) bool {
	if depth >= maxVisitDepth {
		return false
	}
	for _, elem := range elements {
		if fn(elem) {
			return true
		}
		if len(elem.SubmodelElements) > 0 {
			if visit(elem.SubmodelElements, depth+1, fn) {
				return true
			}
		}
	}
	return false
}
