package server

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"

	"github.com/daywell/tripview/internal/database"
	"github.com/daywell/tripview/internal/trip"
)

func testRouter(t *testing.T, feed Fetcher) (*chi.Mux, Store) {
	t.Helper()
	ctx := context.Background()

	db, err := database.Open(ctx, ":memory:")
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	store, err := NewDocStore(ctx, db)
	if err != nil {
		t.Fatalf("init doc store: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	r := chi.NewRouter()
	addRoutes(r, testLogger(), db, store, feed, "")
	return r, store
}

func createTrip(t *testing.T, r http.Handler, tr *trip.Trip) string {
	t.Helper()
	body, _ := json.Marshal(trip.PlanResponse{Trip: tr})
	req := httptest.NewRequest(http.MethodPost, "/api/trips", bytes.NewReader(body))
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusCreated {
		t.Fatalf("create trip: expected 201, got %d: %s", w.Code, w.Body.String())
	}
	var resp TripCreatedResponse
	json.NewDecoder(w.Body).Decode(&resp)
	if resp.TripID == "" {
		t.Fatal("create trip: expected a trip id")
	}
	return resp.TripID
}

func TestCreateAndGetTrip(t *testing.T) {
	r, _ := testRouter(t, &stubFeed{})

	id := createTrip(t, r, demoTrip())

	req := httptest.NewRequest(http.MethodGet, "/api/trips/"+id, nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	var resp trip.PlanResponse
	json.NewDecoder(w.Body).Decode(&resp)
	if resp.Trip == nil || resp.Trip.Destination != "New York City" {
		t.Errorf("unexpected trip: %+v", resp.Trip)
	}
	if len(resp.Trip.Itinerary) != 2 {
		t.Errorf("expected 2 itinerary days, got %d", len(resp.Trip.Itinerary))
	}
}

func TestCreateTripBarePayload(t *testing.T) {
	r, _ := testRouter(t, &stubFeed{})

	// A bare trip object without the envelope is accepted too.
	body, _ := json.Marshal(demoTrip())
	req := httptest.NewRequest(http.MethodPost, "/api/trips", bytes.NewReader(body))
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
	}
}

func TestCreateTripRejectsBadPayload(t *testing.T) {
	r, _ := testRouter(t, &stubFeed{})

	req := httptest.NewRequest(http.MethodPost, "/api/trips", strings.NewReader("{not json"))
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusBadRequest {
		t.Errorf("malformed json: expected 400, got %d", w.Code)
	}

	req = httptest.NewRequest(http.MethodPost, "/api/trips", strings.NewReader(`{"trip":{"destination":""}}`))
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusBadRequest {
		t.Errorf("missing destination: expected 400, got %d", w.Code)
	}
}

func TestGetTripNotFound(t *testing.T) {
	r, _ := testRouter(t, &stubFeed{})

	req := httptest.NewRequest(http.MethodGet, "/api/trips/nope", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusNotFound {
		t.Errorf("expected 404, got %d", w.Code)
	}
}

func TestListTrips(t *testing.T) {
	r, _ := testRouter(t, &stubFeed{})

	createTrip(t, r, demoTrip())
	createTrip(t, r, museumTrip())

	req := httptest.NewRequest(http.MethodGet, "/api/trips", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	var resp map[string][]TripSummary
	json.NewDecoder(w.Body).Decode(&resp)
	trips := resp["trips"]
	if len(trips) != 2 {
		t.Fatalf("expected 2 trips, got %d", len(trips))
	}
	if trips[0].Destination != "New York City" || trips[0].Days != 2 {
		t.Errorf("unexpected first summary: %+v", trips[0])
	}
	if trips[1].Destination != "Boston" {
		t.Errorf("unexpected second summary: %+v", trips[1])
	}
}

func TestItinerary(t *testing.T) {
	r, _ := testRouter(t, &stubFeed{})
	id := createTrip(t, r, demoTrip())

	req := httptest.NewRequest(http.MethodGet, "/api/trips/"+id+"/itinerary", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	var resp ItineraryResponse
	json.NewDecoder(w.Body).Decode(&resp)

	// activity_2 has no coordinates: four plotted points, five scheduled
	// entries across two days.
	if len(resp.Points) != 4 {
		t.Errorf("expected 4 points, got %d", len(resp.Points))
	}
	if len(resp.Days) != 2 {
		t.Fatalf("expected 2 days, got %d", len(resp.Days))
	}
	if len(resp.Days[0].Items)+len(resp.Days[1].Items) != 5 {
		t.Errorf("expected 5 schedule entries, got %d and %d",
			len(resp.Days[0].Items), len(resp.Days[1].Items))
	}
	if resp.Center.Lat != 40.7831 || resp.Center.Lng != -73.9712 {
		t.Errorf("unexpected center: %+v", resp.Center)
	}
	if resp.Zoom != 12 {
		t.Errorf("expected zoom 12, got %d", resp.Zoom)
	}
	if resp.DateRange.Start != "2025-09-20" || resp.DateRange.End != "2025-09-21" {
		t.Errorf("unexpected date range: %+v", resp.DateRange)
	}
}

func TestSeedDemoIdempotent(t *testing.T) {
	ctx := context.Background()
	db, err := database.Open(ctx, ":memory:")
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	defer db.Close()
	store, err := NewDocStore(ctx, db)
	if err != nil {
		t.Fatalf("init doc store: %v", err)
	}

	if err := SeedDemo(ctx, testLogger(), store); err != nil {
		t.Fatalf("first seed: %v", err)
	}
	if err := SeedDemo(ctx, testLogger(), store); err != nil {
		t.Fatalf("second seed: %v", err)
	}

	trips, err := store.ListTrips(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(trips) != 1 {
		t.Errorf("expected 1 trip after reseeding, got %d", len(trips))
	}
}
