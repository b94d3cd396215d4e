package server

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/prodflow/shopfloor-routing/pkg/graph"
	"github.com/prodflow/shopfloor-routing/pkg/graph/path"
)

// Controller binds http requests to a PlannerServicer and writes the service
// results to the http response.
type Controller struct {
	service PlannerServicer
}

func NewController(service PlannerServicer) *Controller {
	return &Controller{service: service}
}

// Route binds one handler to a method and path.
type Route struct {
	Name        string
	Method      string
	Pattern     string
	HandlerFunc http.HandlerFunc
}

// Routes returns all api routes of the controller.
func (c *Controller) Routes() []Route {
	return []Route{
		{"Machines", http.MethodGet, "/machines", c.Machines},
		{"ComputeRoute", http.MethodPost, "/routes", c.ComputeRoute},
		{"Compare", http.MethodPost, "/compare", c.Compare},
		{"FlowGeoJSON", http.MethodGet, "/flow/geojson", c.FlowGeoJSON},
	}
}

// NewRouter builds the mux router for the planner API.
func NewRouter(service PlannerServicer) *mux.Router {
	controller := NewController(service)
	router := mux.NewRouter().StrictSlash(true)
	for _, route := range controller.Routes() {
		router.Methods(route.Method).
			Path(route.Pattern).
			Name(route.Name).
			Handler(logRequests(route.HandlerFunc))
	}
	return router
}

func logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log.Printf("%s %s", r.Method, r.RequestURI)
		next.ServeHTTP(w, r)
	})
}

func (c *Controller) Machines(w http.ResponseWriter, r *http.Request) {
	machines, err := c.service.Machines(r.Context())
	if err != nil {
		encodeError(w, err)
		return
	}
	encodeJSON(w, http.StatusOK, machines)
}

func (c *Controller) ComputeRoute(w http.ResponseWriter, r *http.Request) {
	var req RouteRequest
	d := json.NewDecoder(r.Body)
	d.DisallowUnknownFields()
	if err := d.Decode(&req); err != nil {
		encodeJSON(w, http.StatusBadRequest, errorBody(err))
		return
	}
	if req.Start == "" || req.Goal == "" {
		encodeJSON(w, http.StatusBadRequest, errorBody(errors.New("start and goal are required")))
		return
	}
	result, err := c.service.ComputeRoute(r.Context(), req)
	if err != nil {
		encodeError(w, err)
		return
	}
	encodeJSON(w, http.StatusOK, result)
}

func (c *Controller) Compare(w http.ResponseWriter, r *http.Request) {
	var req CompareRequest
	d := json.NewDecoder(r.Body)
	d.DisallowUnknownFields()
	if err := d.Decode(&req); err != nil {
		encodeJSON(w, http.StatusBadRequest, errorBody(err))
		return
	}
	results, err := c.service.Compare(r.Context(), req)
	if err != nil {
		encodeError(w, err)
		return
	}
	encodeJSON(w, http.StatusOK, results)
}

func (c *Controller) FlowGeoJSON(w http.ResponseWriter, r *http.Request) {
	fc, err := c.service.FlowGeoJSON(r.Context())
	if err != nil {
		encodeError(w, err)
		return
	}
	encodeJSON(w, http.StatusOK, fc)
}

// encodeError maps the planner's explicit failure variants to status codes.
func encodeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, graph.ErrNodeNotFound):
		encodeJSON(w, http.StatusNotFound, errorBody(err))
	case errors.Is(err, path.ErrNoPath):
		encodeJSON(w, http.StatusUnprocessableEntity, errorBody(err))
	default:
		encodeJSON(w, http.StatusInternalServerError, errorBody(err))
	}
}

func errorBody(err error) map[string]string {
	return map[string]string{"error": err.Error()}
}

func encodeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json; charset=UTF-8")
	w.Header().Set("Access-Control-Allow-Origin", "*")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		log.Printf("encode response: %v", err)
	}
}
