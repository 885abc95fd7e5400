package server

import (
	"database/sql"
	"log/slog"
	"os"

	"github.com/go-chi/chi/v5"
	"github.com/swaggest/swgui/v5emb"
)

func addRoutes(r chi.Router, logger *slog.Logger, db *sql.DB, store Store, feed Fetcher, spaDir string) {
	broker := NewBroker()
	views := NewRegistry(logger, store, feed, broker)

	r.Get("/openapi.json", handleOpenAPI())
	r.Mount("/docs", v5emb.New("TripView API", "/openapi.json", "/docs"))
	r.Get("/healthz", handleHealth(logger, db))

	// Trip ingestion and stateless itinerary derivation.
	r.Route("/api/trips", func(r chi.Router) {
		r.Post("/", handleCreateTrip(store))
		r.Get("/", handleListTrips(store))
		r.Get("/{tripID}", handleGetTrip(store))
		r.Get("/{tripID}/itinerary", handleItinerary(store))
	})

	// Viewer sessions — stateful selection/expansion, bearer token auth.
	r.Route("/api/view", func(r chi.Router) {
		r.Post("/session", handleCreateSession(store, views))
		r.Get("/state", handleViewState(views))
		r.Post("/select", handleSelect(views))
		r.Post("/panels/{panel}/toggle", handleTogglePanel(views))
		r.Post("/retry", handleRetry(views))
		r.Post("/trip", handleSwitchTrip(store, views))
		r.Post("/map/ready", handleMapReady(views))
		r.Post("/map/failed", handleMapFailed(views))
		r.Get("/events", handleViewEvents(views))
	})

	if spaDir != "" {
		if info, err := os.Stat(spaDir); err == nil && info.IsDir() {
			logger.Info("serving SPA", "dir", spaDir)
			r.NotFound(handleSPA(spaDir))
		}
	}
}
