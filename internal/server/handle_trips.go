package server

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/daywell/tripview/internal/trip"
)

type TripCreatedResponse struct {
	TripID  string      `json:"tripId"`
	Summary TripSummary `json:"summary"`
}

// ItineraryResponse carries everything the itinerary page derives from a
// trip: the mappable points, the day-grouped schedule, and the resolved
// viewport and date range.
type ItineraryResponse struct {
	TripID      string              `json:"tripId"`
	Destination string              `json:"destination"`
	Center      trip.LatLng         `json:"center"`
	Zoom        int                 `json:"zoom"`
	DateRange   trip.DateRange      `json:"dateRange"`
	Points      []trip.LocatedPoint `json:"points"`
	Days        []trip.ScheduleDay  `json:"days"`
}

// handleCreateTrip ingests a plan as produced by the planning service:
// either the {"trip": {...}} envelope or a bare trip object.
func handleCreateTrip(store Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		defer r.Body.Close()
		body, err := io.ReadAll(io.LimitReader(r.Body, 1<<20))
		if err != nil {
			writeError(w, http.StatusBadRequest, "reading request body")
			return
		}

		t, err := decodePlan(body)
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid plan payload")
			return
		}
		if t.Destination == "" {
			writeError(w, http.StatusBadRequest, "trip destination is required")
			return
		}

		id, err := store.PutTrip(r.Context(), t)
		if err != nil {
			writeError(w, http.StatusInternalServerError, "internal error")
			return
		}

		writeJSON(w, http.StatusCreated, TripCreatedResponse{
			TripID: id,
			Summary: TripSummary{
				ID:          id,
				Destination: t.Destination,
				StartDate:   t.StartDate,
				EndDate:     t.EndDate,
				Days:        len(t.Itinerary),
			},
		})
	}
}

func decodePlan(body []byte) (*trip.Trip, error) {
	var plan trip.PlanResponse
	if err := json.Unmarshal(body, &plan); err == nil && plan.Trip != nil {
		return plan.Trip, nil
	}
	var t trip.Trip
	if err := json.Unmarshal(body, &t); err != nil {
		return nil, err
	}
	return &t, nil
}

func handleListTrips(store Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		trips, err := store.ListTrips(r.Context())
		if err != nil {
			writeError(w, http.StatusInternalServerError, "internal error")
			return
		}
		writeJSON(w, http.StatusOK, map[string][]TripSummary{"trips": trips})
	}
}

func handleGetTrip(store Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		t, err := store.GetTrip(r.Context(), chi.URLParam(r, "tripID"))
		if errors.Is(err, ErrNotFound) {
			writeError(w, http.StatusNotFound, "trip not found")
			return
		}
		if err != nil {
			writeError(w, http.StatusInternalServerError, "internal error")
			return
		}
		writeJSON(w, http.StatusOK, trip.PlanResponse{Trip: t})
	}
}

// handleItinerary is the stateless derivation: normalization and viewport
// resolution run on every request, the same trip always yields the same
// view.
func handleItinerary(store Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		tripID := chi.URLParam(r, "tripID")
		t, err := store.GetTrip(r.Context(), tripID)
		if errors.Is(err, ErrNotFound) {
			writeError(w, http.StatusNotFound, "trip not found")
			return
		}
		if err != nil {
			writeError(w, http.StatusInternalServerError, "internal error")
			return
		}

		view := trip.Normalize(t)
		writeJSON(w, http.StatusOK, ItineraryResponse{
			TripID:      tripID,
			Destination: t.Destination,
			Center:      trip.ResolveCenter(t),
			Zoom:        defaultZoom,
			DateRange:   trip.ResolveDateRange(t),
			Points:      view.Points,
			Days:        view.Days,
		})
	}
}
