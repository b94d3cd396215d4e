package server

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/prodflow/shopfloor-routing/internal/aas"
	"github.com/prodflow/shopfloor-routing/pkg/geometry"
	"github.com/prodflow/shopfloor-routing/pkg/routing"
)

func testMachines() []aas.Machine {
	return []aas.Machine{
		{Name: "press-1", Process: "Forging", Status: "Running", Coord: geometry.MakePoint(41.772, -87.782)},
		{Name: "lathe-1", Process: "Turning", Status: "Running", Coord: geometry.MakePoint(41.8, -87.7)},
		{Name: "mill-1", Process: "Milling", Status: "Running", Coord: geometry.MakePoint(41.9, -87.6)},
		{Name: "cell-1", Process: "Assembly", Status: "Running", Coord: geometry.MakePoint(42.0, -87.5)},
	}
}

func testRouter(t *testing.T) http.Handler {
	t.Helper()
	service, err := NewPlannerService(testMachines(), aas.DefaultFlow())
	require.NoError(t, err)
	return NewRouter(service)
}

func TestNewPlannerServiceRejectsTinyPark(t *testing.T) {
	_, err := NewPlannerService(testMachines()[:1], aas.DefaultFlow())
	assert.Error(t, err)
}

func TestGetMachines(t *testing.T) {
	router := testRouter(t)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/machines", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json; charset=UTF-8", rec.Header().Get("Content-Type"))

	var machines []MachineInfo
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &machines))
	require.Len(t, machines, 4)
	assert.Equal(t, "press-1", machines[0].Name)
	assert.Equal(t, "Forging", machines[0].Process)
}

func TestPostRoutes(t *testing.T) {
	router := testRouter(t)

	body, _ := json.Marshal(RouteRequest{Start: "press-1", Goal: "cell-1"})
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/routes", bytes.NewReader(body)))

	require.Equal(t, http.StatusOK, rec.Code)

	var result routing.AlgorithmResult
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &result))
	assert.Equal(t, "astar", result.Algorithm)
	assert.Equal(t, "press-1", result.Path[0])
	assert.Equal(t, "cell-1", result.Path[len(result.Path)-1])
	assert.True(t, result.Optimal)
	assert.Positive(t, result.DistanceKm)
}

func TestPostRoutesDijkstra(t *testing.T) {
	router := testRouter(t)

	body, _ := json.Marshal(RouteRequest{Start: "press-1", Goal: "mill-1", Algorithm: "dijkstra"})
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/routes", bytes.NewReader(body)))

	require.Equal(t, http.StatusOK, rec.Code)

	var result routing.AlgorithmResult
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &result))
	assert.Equal(t, "dijkstra", result.Algorithm)
}

func TestPostRoutesUnknownNode(t *testing.T) {
	router := testRouter(t)

	body, _ := json.Marshal(RouteRequest{Start: "press-1", Goal: "ghost"})
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/routes", bytes.NewReader(body)))

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestPostRoutesMissingFields(t *testing.T) {
	router := testRouter(t)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/routes", bytes.NewReader([]byte(`{}`))))
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/routes", bytes.NewReader([]byte(`{"bogus": 1}`))))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestPostCompare(t *testing.T) {
	router := testRouter(t)

	body, _ := json.Marshal(CompareRequest{Seed: 1, Generations: 10})
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/compare", bytes.NewReader(body)))

	require.Equal(t, http.StatusOK, rec.Code)

	var results []routing.AlgorithmResult
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &results))
	require.Len(t, results, 3)
	assert.Equal(t, "astar", results[0].Algorithm)
	assert.True(t, results[0].Optimal)
	assert.Equal(t, "dijkstra", results[1].Algorithm)
	assert.Equal(t, "ga", results[2].Algorithm)
}

func TestGetFlowGeoJSON(t *testing.T) {
	router := testRouter(t)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/flow/geojson", nil))

	require.Equal(t, http.StatusOK, rec.Code)

	var fc struct {
		Type     string            `json:"type"`
		Features []json.RawMessage `json:"features"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &fc))
	assert.Equal(t, "FeatureCollection", fc.Type)
	// one point per machine plus the route line
	assert.Len(t, fc.Features, 5)
}

func TestMethodNotAllowed(t *testing.T) {
	router := testRouter(t)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodDelete, "/machines", nil))
	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}
