package server

import (
	"encoding/json"
	"net/http"

	openapi "github.com/swaggest/openapi-go"
	"github.com/swaggest/openapi-go/openapi3"

	"github.com/daywell/tripview/internal/trip"
)

// ErrorResponse is returned for all error responses.
type ErrorResponse struct {
	Error string `json:"error"`
}

func newOpenAPISpec() *openapi3.Spec {
	r := openapi3.NewReflector()
	r.Spec.Info.Title = "TripView API"
	r.Spec.Info.Version = "0.1.0"
	r.Spec.Info.WithDescription("Backend API for the family trip-itinerary viewer.")

	// GET /healthz
	getHealthz, _ := r.NewOperationContext(http.MethodGet, "/healthz")
	getHealthz.SetSummary("Health check")
	getHealthz.SetDescription("Returns the health status of backend dependencies.")
	getHealthz.AddRespStructure(HealthResponse{}, openapi.WithHTTPStatus(http.StatusOK))
	getHealthz.AddRespStructure(HealthResponse{}, openapi.WithHTTPStatus(http.StatusServiceUnavailable))
	_ = r.AddOperation(getHealthz)

	// POST /api/trips
	postTrip, _ := r.NewOperationContext(http.MethodPost, "/api/trips")
	postTrip.SetSummary("Ingest trip plan")
	postTrip.SetDescription("Stores a plan produced by the planning service. Accepts the {\"trip\": ...} envelope or a bare trip object.")
	postTrip.AddReqStructure(trip.PlanResponse{})
	postTrip.AddRespStructure(TripCreatedResponse{}, openapi.WithHTTPStatus(http.StatusCreated))
	postTrip.AddRespStructure(ErrorResponse{}, openapi.WithHTTPStatus(http.StatusBadRequest))
	_ = r.AddOperation(postTrip)

	// GET /api/trips
	listTrips, _ := r.NewOperationContext(http.MethodGet, "/api/trips")
	listTrips.SetSummary("List trips")
	listTrips.SetDescription("Returns summaries of all stored trips.")
	listTrips.AddRespStructure(map[string][]TripSummary{}, openapi.WithHTTPStatus(http.StatusOK))
	_ = r.AddOperation(listTrips)

	// GET /api/trips/{tripID}
	getTrip, _ := r.NewOperationContext(http.MethodGet, "/api/trips/{tripID}")
	getTrip.SetSummary("Get trip")
	getTrip.SetDescription("Returns the stored trip as delivered by the planning service.")
	getTrip.AddRespStructure(nil, openapi.WithHTTPStatus(http.StatusOK), openapi.WithContentType("application/json"))
	getTrip.AddRespStructure(ErrorResponse{}, openapi.WithHTTPStatus(http.StatusNotFound))
	_ = r.AddOperation(getTrip)

	// GET /api/trips/{tripID}/itinerary
	getItinerary, _ := r.NewOperationContext(http.MethodGet, "/api/trips/{tripID}/itinerary")
	getItinerary.SetSummary("Derived itinerary view")
	getItinerary.SetDescription("Normalized points and day-grouped schedule, plus the resolved map center and date range.")
	getItinerary.AddRespStructure(ItineraryResponse{}, openapi.WithHTTPStatus(http.StatusOK))
	getItinerary.AddRespStructure(ErrorResponse{}, openapi.WithHTTPStatus(http.StatusNotFound))
	_ = r.AddOperation(getItinerary)

	// POST /api/view/session
	postSession, _ := r.NewOperationContext(http.MethodPost, "/api/view/session")
	postSession.SetSummary("Open viewer session")
	postSession.SetDescription("Creates a viewer session for a trip and starts the nearby-events fetch. Returns a session token.")
	postSession.AddReqStructure(CreateSessionRequest{})
	postSession.AddRespStructure(CreateSessionResponse{}, openapi.WithHTTPStatus(http.StatusOK))
	postSession.AddRespStructure(ErrorResponse{}, openapi.WithHTTPStatus(http.StatusBadRequest))
	postSession.AddRespStructure(ErrorResponse{}, openapi.WithHTTPStatus(http.StatusNotFound))
	_ = r.AddOperation(postSession)

	// GET /api/view/state
	getState, _ := r.NewOperationContext(http.MethodGet, "/api/view/state")
	getState.SetSummary("Get view state")
	getState.SetDescription("Returns the full view snapshot: panels, markers, selection, and feed state. Requires Bearer token.")
	getState.AddRespStructure(ViewState{}, openapi.WithHTTPStatus(http.StatusOK))
	getState.AddRespStructure(ErrorResponse{}, openapi.WithHTTPStatus(http.StatusUnauthorized))
	_ = r.AddOperation(getState)

	// POST /api/view/select
	postSelect, _ := r.NewOperationContext(http.MethodPost, "/api/view/select")
	postSelect.SetSummary("Select marker or event")
	postSelect.SetDescription("Sets the detail-popup selection. An empty id clears it. Requires Bearer token.")
	postSelect.AddReqStructure(SelectRequest{})
	postSelect.AddRespStructure(ViewState{}, openapi.WithHTTPStatus(http.StatusOK))
	postSelect.AddRespStructure(ErrorResponse{}, openapi.WithHTTPStatus(http.StatusNotFound))
	postSelect.AddRespStructure(ErrorResponse{}, openapi.WithHTTPStatus(http.StatusUnauthorized))
	_ = r.AddOperation(postSelect)

	// POST /api/view/panels/{panel}/toggle
	postToggle, _ := r.NewOperationContext(http.MethodPost, "/api/view/panels/{panel}/toggle")
	postToggle.SetSummary("Toggle panel")
	postToggle.SetDescription("Expands or collapses the map or events panel. Collapsing preserves selection and feed state. Requires Bearer token.")
	postToggle.AddRespStructure(ToggleResponse{}, openapi.WithHTTPStatus(http.StatusOK))
	postToggle.AddRespStructure(ErrorResponse{}, openapi.WithHTTPStatus(http.StatusBadRequest))
	postToggle.AddRespStructure(ErrorResponse{}, openapi.WithHTTPStatus(http.StatusUnauthorized))
	_ = r.AddOperation(postToggle)

	// POST /api/view/retry
	postRetry, _ := r.NewOperationContext(http.MethodPost, "/api/view/retry")
	postRetry.SetSummary("Retry events fetch")
	postRetry.SetDescription("Re-runs the nearby-events fetch after a failure. Selection and expansion are untouched. Requires Bearer token.")
	postRetry.AddRespStructure(ViewState{}, openapi.WithHTTPStatus(http.StatusOK))
	postRetry.AddRespStructure(ErrorResponse{}, openapi.WithHTTPStatus(http.StatusUnauthorized))
	_ = r.AddOperation(postRetry)

	// POST /api/view/trip
	postSwitch, _ := r.NewOperationContext(http.MethodPost, "/api/view/trip")
	postSwitch.SetSummary("Switch trip")
	postSwitch.SetDescription("Points the session at a different trip. Selection clears, panels collapse, and a fresh events fetch starts. Requires Bearer token.")
	postSwitch.AddReqStructure(SwitchTripRequest{})
	postSwitch.AddRespStructure(ViewState{}, openapi.WithHTTPStatus(http.StatusOK))
	postSwitch.AddRespStructure(ErrorResponse{}, openapi.WithHTTPStatus(http.StatusNotFound))
	postSwitch.AddRespStructure(ErrorResponse{}, openapi.WithHTTPStatus(http.StatusUnauthorized))
	_ = r.AddOperation(postSwitch)

	// POST /api/view/map/ready
	postMapReady, _ := r.NewOperationContext(http.MethodPost, "/api/view/map/ready")
	postMapReady.SetSummary("Map widget loaded")
	postMapReady.SetDescription("Signals widget load success; the marker set is rebuilt wholesale. Requires Bearer token.")
	postMapReady.AddRespStructure(ViewState{}, openapi.WithHTTPStatus(http.StatusOK))
	postMapReady.AddRespStructure(ErrorResponse{}, openapi.WithHTTPStatus(http.StatusUnauthorized))
	_ = r.AddOperation(postMapReady)

	// POST /api/view/map/failed
	postMapFailed, _ := r.NewOperationContext(http.MethodPost, "/api/view/map/failed")
	postMapFailed.SetSummary("Map widget failed")
	postMapFailed.SetDescription("Signals widget load failure; the map panel falls back to a text-only point list. Requires Bearer token.")
	postMapFailed.AddRespStructure(ViewState{}, openapi.WithHTTPStatus(http.StatusOK))
	postMapFailed.AddRespStructure(ErrorResponse{}, openapi.WithHTTPStatus(http.StatusUnauthorized))
	_ = r.AddOperation(postMapFailed)

	// GET /api/view/events
	getEvents, _ := r.NewOperationContext(http.MethodGet, "/api/view/events")
	getEvents.SetSummary("SSE view-state stream")
	getEvents.SetDescription("Server-Sent Events stream of view transitions. Pass token as query parameter.")
	getEvents.AddRespStructure(nil, openapi.WithHTTPStatus(http.StatusOK),
		openapi.WithContentType("text/event-stream"))
	_ = r.AddOperation(getEvents)

	return r.Spec
}

func handleOpenAPI() http.HandlerFunc {
	spec := newOpenAPISpec()
	data, _ := json.MarshalIndent(spec, "", "  ")

	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write(data)
	}
}
