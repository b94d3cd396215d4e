package aas

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/prodflow/shopfloor-routing/internal/geocode"
	"github.com/prodflow/shopfloor-routing/internal/store"
)

const pressDocument = `{
  "assetAdministrationShells": [{"idShort": "forging_press_1"}],
  "submodels": [
    {
      "idShort": "Nameplate",
      "submodelElements": [
        {"idShort": "Address", "value": "2904 Scott Blvd, Santa Clara, California"},
        {"idShort": "OperationalStatus", "value": "Running"}
      ]
    }
  ]
}`

func openTestStore(t *testing.T) *store.Store {
	t.Helper()
	st, err := store.Open(t.TempDir())
	require.NoError(t, err)
	t.Cleanup(func() { require.NoError(t, st.Close()) })
	return st
}

func writeFile(t *testing.T, dir, name, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644))
}

func TestUploadDirectory(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "lathe.json", latheDocument)
	writeFile(t, dir, "press.json", pressDocument)
	writeFile(t, dir, "broken.json", "{not json")
	writeFile(t, dir, "empty.json", `{"assetAdministrationShells": [], "submodels": []}`)
	writeFile(t, dir, "notes.txt", "not a document")

	st := openTestStore(t)
	inserted, err := UploadDirectory(st, dir)
	require.NoError(t, err)
	assert.Equal(t, 2, inserted)

	count, err := st.Count()
	require.NoError(t, err)
	assert.Equal(t, 2, count)

	doc, err := st.Get("lathe")
	require.NoError(t, err)
	assert.JSONEq(t, latheDocument, string(doc))

	_, err = st.Get("broken")
	require.ErrorIs(t, err, store.ErrDocumentNotFound)
}

func TestUploadDirectoryReplacesPreviousContent(t *testing.T) {
	st := openTestStore(t)
	require.NoError(t, st.Put("stale", []byte(`{}`)))

	dir := t.TempDir()
	writeFile(t, dir, "lathe.json", latheDocument)

	_, err := UploadDirectory(st, dir)
	require.NoError(t, err)

	_, err = st.Get("stale")
	require.ErrorIs(t, err, store.ErrDocumentNotFound)
}

func TestUploadDirectoryMissingDir(t *testing.T) {
	st := openTestStore(t)
	_, err := UploadDirectory(st, filepath.Join(t.TempDir(), "missing"))
	assert.Error(t, err)
}

func TestLoadMachines(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "lathe.json", latheDocument)
	writeFile(t, dir, "press.json", pressDocument)
	// running machine with an address no geocoder resolves
	writeFile(t, dir, "orphan.json", strings.Replace(pressDocument, "2904 Scott Blvd, Santa Clara, California", "1 Nowhere Lane", 1))

	st := openTestStore(t)
	_, err := UploadDirectory(st, dir)
	require.NoError(t, err)

	machines, err := LoadMachines(context.Background(), st, DefaultClassifier(), geocode.DefaultTable())
	require.NoError(t, err)

	require.Len(t, machines, 2)
	assert.Equal(t, []string{"lathe", "press"}, Names(machines))
	assert.Equal(t, "Turning", machines[0].Process)
	assert.Equal(t, "Forging", machines[1].Process)
}

func TestLoadMachinesDropsStoppedMachines(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "idle.json", strings.Replace(latheDocument, `"Running"`, `"Stopped"`, 1))

	st := openTestStore(t)
	_, err := UploadDirectory(st, dir)
	require.NoError(t, err)

	machines, err := LoadMachines(context.Background(), st, DefaultClassifier(), geocode.DefaultTable())
	require.NoError(t, err)
	assert.Empty(t, machines)
}
