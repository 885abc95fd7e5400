package server

import (
	"context"
	"log/slog"
	"math"
	"sync"

	"github.com/golang/geo/s2"

	"github.com/daywell/tripview/internal/events"
	"github.com/daywell/tripview/internal/trip"
)

// Feed fetch states. Transitions: idle -> loading once a trip is bound;
// loading -> success|failed on response; success|failed -> loading on retry
// or trip change.
const (
	feedIdle    = "idle"
	feedLoading = "loading"
	feedSuccess = "success"
	feedFailed  = "failed"
)

// Map widget states reported by the client.
const (
	mapPending = "pending"
	mapReady   = "ready"
	mapFailed  = "failed"
)

const (
	defaultZoom   = 12
	earthRadiusKM = 6371.0
)

// Fetcher is the outbound events search the controller invokes once per trip
// change and on explicit retry. No polling, no automatic backoff.
type Fetcher interface {
	Search(ctx context.Context, center, activeGTE, activeLTE string) ([]events.Event, error)
}

// Marker is one map-widget marker. Markers are an arena: each rebuild
// replaces the whole set, so a stale marker can never outlive its trip.
type Marker struct {
	ID          string       `json:"id"`
	Title       string       `json:"title"`
	Coordinates trip.LatLng  `json:"coordinates"`
	Color       string       `json:"color"`
	Icon        string       `json:"icon"`
	Popup       ActivityInfo `json:"popup"`
}

// ActivityInfo is the detail-popup payload for a selected itinerary point.
type ActivityInfo struct {
	Title       string        `json:"title"`
	Location    string        `json:"location"`
	Coordinates trip.LatLng   `json:"coordinates"`
	Category    trip.Category `json:"category"`
}

// EventItem is a provider event annotated with its distance from the trip's
// map center.
type EventItem struct {
	events.Event
	DistanceKM float64 `json:"distanceKm,omitempty"`
}

// SelectionDetail describes what the detail popup shows for the current
// selection.
type SelectionDetail struct {
	Kind     string        `json:"kind"` // "activity" or "event"
	Activity *ActivityInfo `json:"activity,omitempty"`
	Event    *EventItem    `json:"event,omitempty"`
}

type MapPanelState struct {
	Expanded bool                `json:"expanded"`
	Status   string              `json:"status"`
	Center   trip.LatLng         `json:"center"`
	Zoom     int                 `json:"zoom"`
	Markers  []Marker            `json:"markers"`
	Fallback []trip.LocatedPoint `json:"fallback,omitempty"` // text-only list when the widget failed to load
}

type EventsPanelState struct {
	Expanded bool        `json:"expanded"`
	Status   string      `json:"status"`
	Error    string      `json:"error,omitempty"`
	Items    []EventItem `json:"items"`
}

// ViewState is the full snapshot a viewer client renders from.
type ViewState struct {
	TripID      string             `json:"tripId"`
	Destination string             `json:"destination"`
	DateRange   trip.DateRange     `json:"dateRange"`
	SelectedID  string             `json:"selectedId,omitempty"`
	Selection   *SelectionDetail   `json:"selection,omitempty"`
	Map         MapPanelState      `json:"map"`
	Events      EventsPanelState   `json:"events"`
	Days        []trip.ScheduleDay `json:"days"`
}

// viewController owns the selection/expansion state and the feed fetch
// lifecycle for one viewer session. All state is mutated only through its
// methods; the map-widget marker set is exclusively its resource.
type viewController struct {
	logger  *slog.Logger
	feed    Fetcher
	publish func(ViewEvent)

	mu sync.Mutex

	tripID       string
	trip         *trip.Trip
	view         trip.View
	center       trip.LatLng
	searchCenter string
	dates        trip.DateRange

	// gen identifies the current fetch. A result arriving with an older gen
	// belongs to a superseded trip or retry and is discarded.
	gen int

	selectedID     string
	mapExpanded    bool
	eventsExpanded bool

	mapState string
	markers  []Marker

	feedState string
	feedItems []EventItem
	feedErr   string
}

func newViewController(logger *slog.Logger, feed Fetcher, publish func(ViewEvent), tripID string, t *trip.Trip) *viewController {
	vc := &viewController{
		logger:    logger,
		feed:      feed,
		publish:   publish,
		mapState:  mapPending,
		feedState: feedIdle,
	}
	vc.SetTrip(tripID, t)
	return vc
}

// SetTrip binds the controller to a new trip identity: derived views are
// recomputed, selection is cleared, panels return to their collapsed
// default, and a fresh feed fetch starts. Any in-flight fetch for the
// previous trip becomes stale.
func (vc *viewController) SetTrip(tripID string, t *trip.Trip) {
	vc.mu.Lock()
	vc.gen++
	gen := vc.gen

	vc.tripID = tripID
	vc.trip = t
	vc.view = trip.Normalize(t)
	vc.center = trip.ResolveCenter(t)
	vc.searchCenter = trip.ResolveSearchCenter(t)
	vc.dates = trip.ResolveDateRange(t)

	vc.selectedID = ""
	vc.mapExpanded = false
	vc.eventsExpanded = false

	if vc.mapState == mapReady {
		vc.rebuildMarkersLocked()
	} else {
		vc.markers = nil
	}

	vc.feedItems = nil
	vc.feedErr = ""
	if t == nil {
		vc.feedState = feedIdle
		vc.mu.Unlock()
		vc.publish(ViewEvent{Type: "trip", TripID: tripID, FeedStatus: feedIdle})
		return
	}
	vc.feedState = feedLoading
	center, dates := vc.searchCenter, vc.dates
	vc.mu.Unlock()

	vc.publish(ViewEvent{Type: "trip", TripID: tripID, FeedStatus: feedLoading})
	go vc.fetch(gen, center, dates)
}

// Retry re-runs the feed fetch after a failure (or success) without touching
// selection or expansion state.
func (vc *viewController) Retry() {
	vc.mu.Lock()
	if vc.trip == nil {
		vc.mu.Unlock()
		return
	}
	vc.gen++
	gen := vc.gen
	vc.feedState = feedLoading
	vc.feedErr = ""
	center, dates := vc.searchCenter, vc.dates
	vc.mu.Unlock()

	vc.publish(ViewEvent{Type: "feed", FeedStatus: feedLoading})
	go vc.fetch(gen, center, dates)
}

// fetch performs the single outbound search for generation gen and applies
// the outcome unless a newer generation has taken over in the meantime.
func (vc *viewController) fetch(gen int, center string, dates trip.DateRange) {
	evs, err := vc.feed.Search(context.Background(), center, dates.Start, dates.End)

	vc.mu.Lock()
	if gen != vc.gen {
		vc.mu.Unlock()
		vc.logger.Debug("discarding stale feed result", "gen", gen)
		return
	}
	var status string
	if err != nil {
		vc.feedState = feedFailed
		vc.feedErr = err.Error()
		vc.feedItems = nil
		status = feedFailed
		vc.logger.Error("feed fetch failed", "error", err)
	} else {
		vc.feedState = feedSuccess
		vc.feedErr = ""
		vc.feedItems = annotateEvents(evs, vc.center)
		status = feedSuccess
	}
	vc.mu.Unlock()

	vc.publish(ViewEvent{Type: "feed", FeedStatus: status})
}

// Select sets the current selection to a marker or event id; an empty id
// clears it (popup closed). Unknown ids are rejected.
func (vc *viewController) Select(id string) error {
	vc.mu.Lock()
	if id != "" && vc.selectionDetailLocked(id) == nil {
		vc.mu.Unlock()
		return ErrNotFound
	}
	vc.selectedID = id
	vc.mu.Unlock()

	vc.publish(ViewEvent{Type: "selection", SelectedID: id})
	return nil
}

// TogglePanel flips one panel's expansion. Panels are independent;
// collapsing never clears selection or feed state.
func (vc *viewController) TogglePanel(panel string) (bool, error) {
	vc.mu.Lock()
	var expanded bool
	switch panel {
	case "map":
		vc.mapExpanded = !vc.mapExpanded
		expanded = vc.mapExpanded
	case "events":
		vc.eventsExpanded = !vc.eventsExpanded
		expanded = vc.eventsExpanded
	default:
		vc.mu.Unlock()
		return false, ErrNotFound
	}
	vc.mu.Unlock()

	vc.publish(ViewEvent{Type: "panel", Panel: panel, Expanded: expanded})
	return expanded, nil
}

// MapReady is the widget's load-success signal. The previous marker set is
// discarded wholesale and one marker is created per located point.
func (vc *viewController) MapReady() {
	vc.mu.Lock()
	vc.mapState = mapReady
	vc.rebuildMarkersLocked()
	vc.mu.Unlock()

	vc.publish(ViewEvent{Type: "map", MapStatus: mapReady})
}

// MapFailed switches the map panel into its text-only fallback. Nothing else
// in the view is affected.
func (vc *viewController) MapFailed() {
	vc.mu.Lock()
	vc.mapState = mapFailed
	vc.markers = nil
	vc.mu.Unlock()

	vc.publish(ViewEvent{Type: "map", MapStatus: mapFailed})
}

// State returns a render-ready snapshot.
func (vc *viewController) State() ViewState {
	vc.mu.Lock()
	defer vc.mu.Unlock()

	st := ViewState{
		TripID:     vc.tripID,
		DateRange:  vc.dates,
		SelectedID: vc.selectedID,
		Days:       vc.view.Days,
		Map: MapPanelState{
			Expanded: vc.mapExpanded,
			Status:   vc.mapState,
			Center:   vc.center,
			Zoom:     defaultZoom,
			Markers:  vc.markers,
		},
		Events: EventsPanelState{
			Expanded: vc.eventsExpanded,
			Status:   vc.feedState,
			Error:    vc.feedErr,
			Items:    vc.feedItems,
		},
	}
	if vc.trip != nil {
		st.Destination = vc.trip.Destination
	}
	if st.Map.Markers == nil {
		st.Map.Markers = []Marker{}
	}
	if st.Events.Items == nil {
		st.Events.Items = []EventItem{}
	}
	if vc.mapState == mapFailed {
		st.Map.Fallback = vc.view.Points
	}
	if vc.selectedID != "" {
		st.Selection = vc.selectionDetailLocked(vc.selectedID)
	}
	return st
}

// rebuildMarkersLocked replaces the marker arena with one generation of
// markers for the current points. Caller holds mu.
func (vc *viewController) rebuildMarkersLocked() {
	markers := make([]Marker, 0, len(vc.view.Points))
	for _, p := range vc.view.Points {
		style := trip.StyleOf(p.Category)
		markers = append(markers, Marker{
			ID:          p.ID,
			Title:       p.Title,
			Coordinates: p.Coordinates,
			Color:       style.MapColor,
			Icon:        style.Icon,
			Popup: ActivityInfo{
				Title:       p.Title,
				Location:    p.Location,
				Coordinates: p.Coordinates,
				Category:    p.Category,
			},
		})
	}
	vc.markers = markers
}

// selectionDetailLocked resolves an id against the itinerary points first,
// then the fetched events. Caller holds mu.
func (vc *viewController) selectionDetailLocked(id string) *SelectionDetail {
	for _, p := range vc.view.Points {
		if p.ID == id {
			return &SelectionDetail{
				Kind: "activity",
				Activity: &ActivityInfo{
					Title:       p.Title,
					Location:    p.Location,
					Coordinates: p.Coordinates,
					Category:    p.Category,
				},
			}
		}
	}
	for i := range vc.feedItems {
		if vc.feedItems[i].ID == id {
			return &SelectionDetail{Kind: "event", Event: &vc.feedItems[i]}
		}
	}
	return nil
}

func annotateEvents(evs []events.Event, center trip.LatLng) []EventItem {
	items := make([]EventItem, 0, len(evs))
	for _, ev := range evs {
		item := EventItem{Event: ev}
		if len(ev.Location) == 2 {
			// Provider sends [lng, lat].
			item.DistanceKM = distanceKM(center, trip.LatLng{Lat: ev.Location[1], Lng: ev.Location[0]})
		}
		items = append(items, item)
	}
	return items
}

func distanceKM(a, b trip.LatLng) float64 {
	p1 := s2.LatLngFromDegrees(a.Lat, a.Lng)
	p2 := s2.LatLngFromDegrees(b.Lat, b.Lng)
	km := p1.Distance(p2).Radians() * earthRadiusKM
	return math.Round(km*10) / 10
}
