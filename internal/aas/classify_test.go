package aas

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/prodflow/shopfloor-routing/internal/geocode"
)

func decode(t *testing.T, raw string) *Document {
	t.Helper()
	doc, err := DecodeDocument(strings.NewReader(raw))
	require.NoError(t, err)
	return doc
}

func TestClassifierAddress(t *testing.T) {
	doc := decode(t, latheDocument)

	address, ok := DefaultClassifier().Address(doc)
	require.True(t, ok)
	assert.Equal(t, "6666 W 66th St, Chicago, Illinois", address)
}

func TestClassifierAddressMissing(t *testing.T) {
	doc := &Document{
		AssetAdministrationShells: []Shell{{IdShort: "bare"}},
		Submodels:                 []Submodel{{IdShort: "Nameplate"}},
	}
	_, ok := DefaultClassifier().Address(doc)
	assert.False(t, ok)
}

func TestClassifierStatus(t *testing.T) {
	doc := decode(t, latheDocument)

	status, ok := DefaultClassifier().Status(doc)
	require.True(t, ok)
	assert.Equal(t, "Running", status)
}

func TestClassifierProcessFromType(t *testing.T) {
	doc := decode(t, latheDocument)

	process, ok := DefaultClassifier().Process(doc)
	require.True(t, ok)
	assert.Equal(t, "Turning", process)
}

func TestClassifierProcessFromIRDI(t *testing.T) {
	doc := decode(t, `{
	  "assetAdministrationShells": [{"idShort": "mill_7"}],
	  "submodels": [
	    {
	      "idShort": "TechnicalData",
	      "semanticId": {"keys": [{"value": "0173-1#01-AKJ783#017"}]},
	      "submodelElements": []
	    }
	  ]
	}`)

	process, ok := DefaultClassifier().Process(doc)
	require.True(t, ok)
	assert.Equal(t, "Milling", process)
}

func TestClassifierProcessFromShellName(t *testing.T) {
	for shell, want := range map[string]string{
		"forging_press_2": "Forging",
		"Assembly_line_1": "Assembly",
	} {
		doc := &Document{
			AssetAdministrationShells: []Shell{{IdShort: shell}},
			Submodels:                 []Submodel{{IdShort: "Nameplate"}},
		}
		process, ok := DefaultClassifier().Process(doc)
		require.True(t, ok, shell)
		assert.Equal(t, want, process)
	}
}

func TestClassifierProcessUnclassified(t *testing.T) {
	doc := &Document{
		AssetAdministrationShells: []Shell{{IdShort: "mystery_box"}},
		Submodels:                 []Submodel{{IdShort: "Nameplate"}},
	}
	_, ok := DefaultClassifier().Process(doc)
	assert.False(t, ok)
}

func TestClassifierMachine(t *testing.T) {
	doc := decode(t, latheDocument)

	machine, err := DefaultClassifier().Machine(context.Background(), "cnc_lathe_1", doc, geocode.DefaultTable())
	require.NoError(t, err)

	assert.Equal(t, "cnc_lathe_1", machine.Name)
	assert.Equal(t, "Turning", machine.Process)
	assert.Equal(t, "Running", machine.Status)
	assert.True(t, machine.Running())
	assert.InDelta(t, 41.772, machine.Coord.Lat(), 1e-9)
	assert.InDelta(t, -87.782, machine.Coord.Lon(), 1e-9)
}

func TestClassifierMachineNoAddress(t *testing.T) {
	doc := &Document{
		AssetAdministrationShells: []Shell{{IdShort: "forging_press"}},
		Submodels:                 []Submodel{{IdShort: "Nameplate"}},
	}
	_, err := DefaultClassifier().Machine(context.Background(), "press", doc, geocode.DefaultTable())
	require.ErrorIs(t, err, ErrNoAddress)
}

func TestClassifierMachineUnresolvableAddress(t *testing.T) {
	doc := decode(t, strings.Replace(latheDocument, "6666 W 66th St, Chicago, Illinois", "1 Nowhere Lane", 1))

	_, err := DefaultClassifier().Machine(context.Background(), "lathe", doc, geocode.DefaultTable())
	require.ErrorIs(t, err, geocode.ErrNotFound)
}

func TestClassifierMachineDefaultsStatus(t *testing.T) {
	doc := decode(t, `{
	  "assetAdministrationShells": [{"idShort": "assembly_cell"}],
	  "submodels": [
	    {
	      "idShort": "Nameplate",
	      "submodelElements": [
	        {"idShort": "Address", "value": "2904 Scott Blvd, Santa Clara, California"}
	      ]
	    }
	  ]
	}`)

	machine, err := DefaultClassifier().Machine(context.Background(), "cell", doc, geocode.DefaultTable())
	require.NoError(t, err)
	assert.Equal(t, "Unknown", machine.Status)
	assert.False(t, machine.Running())
	assert.Equal(t, "Assembly", machine.Process)
}
