package server

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
)

type CreateSessionRequest struct {
	TripID string `json:"tripId"`
}

type CreateSessionResponse struct {
	Token  string `json:"token"`
	TripID string `json:"tripId"`
}

type SelectRequest struct {
	ID string `json:"id"`
}

type SwitchTripRequest struct {
	TripID string `json:"tripId"`
}

type ToggleResponse struct {
	Panel    string `json:"panel"`
	Expanded bool   `json:"expanded"`
}

// handleCreateSession opens a viewer session on a trip. The controller is
// created immediately, which also starts the first feed fetch.
func handleCreateSession(store Store, views *Registry) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req CreateSessionRequest
		if err := readJSON(r, &req); err != nil || req.TripID == "" {
			writeError(w, http.StatusBadRequest, "tripId is required")
			return
		}

		if _, err := store.GetTrip(r.Context(), req.TripID); errors.Is(err, ErrNotFound) {
			writeError(w, http.StatusNotFound, "trip not found")
			return
		} else if err != nil {
			writeError(w, http.StatusInternalServerError, "internal error")
			return
		}

		token, err := store.CreateSession(r.Context(), req.TripID)
		if err != nil {
			writeError(w, http.StatusInternalServerError, "internal error")
			return
		}
		if _, err := views.Create(r.Context(), sessionInfo{Token: token, TripID: req.TripID}); err != nil {
			writeError(w, http.StatusInternalServerError, "internal error")
			return
		}

		writeJSON(w, http.StatusOK, CreateSessionResponse{Token: token, TripID: req.TripID})
	}
}

// viewFromRequest resolves the bearer token to the session's controller.
func viewFromRequest(r *http.Request, views *Registry) (*viewController, error) {
	token, err := sessionToken(r)
	if err != nil {
		return nil, err
	}
	return views.Get(r.Context(), token)
}

func handleViewState(views *Registry) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		vc, err := viewFromRequest(r, views)
		if err != nil {
			writeError(w, http.StatusUnauthorized, "invalid or missing session token")
			return
		}
		writeJSON(w, http.StatusOK, vc.State())
	}
}

func handleSelect(views *Registry) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		vc, err := viewFromRequest(r, views)
		if err != nil {
			writeError(w, http.StatusUnauthorized, "invalid or missing session token")
			return
		}

		var req SelectRequest
		if err := readJSON(r, &req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}

		if err := vc.Select(req.ID); err != nil {
			writeError(w, http.StatusNotFound, "no marker or event with that id")
			return
		}
		writeJSON(w, http.StatusOK, vc.State())
	}
}

func handleTogglePanel(views *Registry) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		vc, err := viewFromRequest(r, views)
		if err != nil {
			writeError(w, http.StatusUnauthorized, "invalid or missing session token")
			return
		}

		panel := chi.URLParam(r, "panel")
		expanded, err := vc.TogglePanel(panel)
		if err != nil {
			writeError(w, http.StatusBadRequest, "unknown panel")
			return
		}
		writeJSON(w, http.StatusOK, ToggleResponse{Panel: panel, Expanded: expanded})
	}
}

func handleRetry(views *Registry) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		vc, err := viewFromRequest(r, views)
		if err != nil {
			writeError(w, http.StatusUnauthorized, "invalid or missing session token")
			return
		}
		vc.Retry()
		writeJSON(w, http.StatusOK, vc.State())
	}
}

// handleSwitchTrip points the session at a different trip: a genuine
// identity change, so the controller resets selection and refetches.
func handleSwitchTrip(store Store, views *Registry) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		token, err := sessionToken(r)
		if err != nil {
			writeError(w, http.StatusUnauthorized, "invalid or missing session token")
			return
		}
		vc, err := views.Get(r.Context(), token)
		if err != nil {
			writeError(w, http.StatusUnauthorized, "invalid or missing session token")
			return
		}

		var req SwitchTripRequest
		if err := readJSON(r, &req); err != nil || req.TripID == "" {
			writeError(w, http.StatusBadRequest, "tripId is required")
			return
		}

		t, err := store.GetTrip(r.Context(), req.TripID)
		if errors.Is(err, ErrNotFound) {
			writeError(w, http.StatusNotFound, "trip not found")
			return
		}
		if err != nil {
			writeError(w, http.StatusInternalServerError, "internal error")
			return
		}

		if err := store.RetargetSession(r.Context(), token, req.TripID); err != nil {
			writeError(w, http.StatusInternalServerError, "internal error")
			return
		}
		vc.SetTrip(req.TripID, t)
		writeJSON(w, http.StatusOK, vc.State())
	}
}

func handleMapReady(views *Registry) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		vc, err := viewFromRequest(r, views)
		if err != nil {
			writeError(w, http.StatusUnauthorized, "invalid or missing session token")
			return
		}
		vc.MapReady()
		writeJSON(w, http.StatusOK, vc.State())
	}
}

func handleMapFailed(views *Registry) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		vc, err := viewFromRequest(r, views)
		if err != nil {
			writeError(w, http.StatusUnauthorized, "invalid or missing session token")
			return
		}
		vc.MapFailed()
		writeJSON(w, http.StatusOK, vc.State())
	}
}
