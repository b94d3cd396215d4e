package aas

import (
	"strings"

	"github.com/prodflow/shopfloor-routing/pkg/slice"
)

// FieldMapping names the submodel element identifiers a document schema uses
// for the fields the planner extracts. An explicit, reviewable table instead
// of free-form scanning for lookalike field names.
type FieldMapping struct {
	AddressKeys     []string // idShort values holding a postal address
	StatusSubstring string   // idShort substring marking an operational status
	TypeKey         string   // idShort of the machine type property
	CategoryModel   string   // idShort of the submodel carrying the category
}

func DefaultFieldMapping() FieldMapping {
	return FieldMapping{
		AddressKeys:     []string{"Location", "Address", "Physical_address"},
		StatusSubstring: "status",
		TypeKey:         "Type",
		CategoryModel:   "Category",
	}
}

// Classifier maps document vocabulary to process categories. It is
// configuration data: build it once, pass it around, never mutate it.
type Classifier struct {
	Mapping FieldMapping
	// IRDIProcesses maps submodel semantic id codes to process categories.
	IRDIProcesses map[string]string
	// TypeProcesses maps machine type labels to process categories.
	TypeProcesses map[string]string
}

// DefaultClassifier carries the vocabulary of the machine park's documents.
func DefaultClassifier() Classifier {
	return Classifier{
		Mapping: DefaultFieldMapping(),
		IRDIProcesses: map[string]string{
			"0173-1#01-AKJ741#017": "Turning",
			"0173-1#01-AKJ783#017": "Milling",
			"0173-1#01-AKJ867#017": "Grinding",
		},
		TypeProcesses: map[string]string{
			"Hot Former":                  "Forging",
			"CNC LATHE":                   "Turning",
			"Vertical Machining Center":   "Milling",
			"Horizontal Machining Center": "Milling",
			"Flat surface grinder":        "Grinding",
			"Cylindrical grinder":         "Grinding",
			"Assembly System":             "Assembly",
		},
	}
}

// Address extracts the first postal address found under one of the mapped
// address keys, searching every submodel.
func (c Classifier) Address(doc *Document) (string, bool) {
	var address string
	for _, sm := range doc.Submodels {
		found := visit(sm.SubmodelElements, 0, func(e SubmodelElement) bool {
			if !slice.Contains(c.Mapping.AddressKeys, e.IdShort) {
				return false
			}
			value, ok := e.StringValue()
			if !ok {
				return false
			}
			address = strings.TrimSpace(value)
			return address != ""
		})
		if found {
			return address, true
		}
	}
	return "", false
}

// Status extracts the first element whose idShort contains the mapped status
// substring, case-insensitively.
func (c Classifier) Status(doc *Document) (string, bool) {
	var status string
	for _, sm := range doc.Submodels {
		found := visit(sm.SubmodelElements, 0, func(e SubmodelElement) bool {
			if !strings.Contains(strings.ToLower(e.IdShort), c.Mapping.StatusSubstring) {
				return false
			}
			value, ok := e.StringValue()
			if !ok {
				return false
			}
			status = value
			return true
		})
		if found {
			return status, true
		}
	}
	return "", false
}

// Process classifies the document into a process category. It tries, in
// order: the type property inside the category submodel, the submodel
// semantic id codes, and finally the shell's own idShort for the categories
// that never carry a classified submodel.
func (c Classifier) Process(doc *Document) (string, bool) {
	for _, sm := range doc.Submodels {
		if sm.IdShort == c.Mapping.CategoryModel {
			if process, ok := c.typeProcess(sm.SubmodelElements); ok {
				return process, true
			}
		}
		if irdi, ok := sm.SemanticIRDI(); ok {
			if process, ok := c.IRDIProcesses[irdi]; ok {
				return process, true
			}
		}
	}
	for _, shell := range doc.AssetAdministrationShells {
		id := strings.ToLower(shell.IdShort)
		if strings.Contains(id, "forging") {
			return "Forging", true
		}
		if strings.Contains(id, "assembly") {
			return "Assembly", true
		}
	}
	return "", false
}

func (c Classifier) typeProcess(elements []SubmodelElement) (string, bool) {
	var process string
	found := visit(elements, 0, func(e SubmodelElement) bool {
		if e.IdShort != c.Mapping.TypeKey {
			return false
		}
		value, ok := e.StringValue()
		if !ok {
			return false
		}
		process, ok = c.TypeProcesses[value]
		return ok
	})
	return process, found
}
