// Package trip defines the core trip-plan domain types and the pure
// derivations over them: category classification, itinerary normalization,
// and viewport resolution. It has zero external dependencies.
package trip

// LatLng is a geographic coordinate pair. Coordinates are accepted as the
// planning service produced them and never validated.
type LatLng struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// TimeWindow is the scheduled start/end of an activity, as display strings
// (e.g. "09:00 AM").
type TimeWindow struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

// Activity is one scheduled item within a day. ID is unique within a Trip
// and doubles as the map-marker identity and list key.
type Activity struct {
	ID                string      `json:"id"`
	Type              string      `json:"type"`
	Title             string      `json:"title"`
	Description       string      `json:"description,omitempty"`
	Address           string      `json:"address,omitempty"`
	Coordinates       *LatLng     `json:"coordinates,omitempty"`
	EstimatedDuration string      `json:"estimated_duration,omitempty"`
	SequencedTime     *TimeWindow `json:"sequenced_time,omitempty"`
	Tags              []string    `json:"tags,omitempty"`
}

// Day is one day of the itinerary. Order within Trip.Itinerary is meaningful
// (day 1, day 2, ...).
type Day struct {
	Day            int        `json:"day"`
	Date           string     `json:"date"`
	Activities     []Activity `json:"activities"`
	Accommodation  string     `json:"accommodation,omitempty"`
	Transportation string     `json:"transportation,omitempty"`
}

// Trip is a full multi-day plan as delivered by the planning service. It is
// read-only here: a new plan replaces the value wholesale, it is never
// patched.
type Trip struct {
	Destination string  `json:"destination"`
	Coordinates *LatLng `json:"coordinates,omitempty"`
	StartDate   string  `json:"startDate,omitempty"`
	EndDate     string  `json:"endDate,omitempty"`
	Duration    string  `json:"duration,omitempty"`
	Itinerary   []Day   `json:"itinerary"`
}

// PlanResponse is the envelope the planning service wraps a generated plan
// in.
type PlanResponse struct {
	Trip *Trip `json:"trip"`
}
