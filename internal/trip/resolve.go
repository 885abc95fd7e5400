package trip

import "fmt"

// DefaultCenter is the canonical fallback viewport, used when neither the
// trip nor any activity carries coordinates. Midtown Manhattan, matching the
// planning service's example coordinates. The feed search fallback resolves
// to this same constant; the two must never drift apart.
var DefaultCenter = LatLng{Lat: 40.7831, Lng: -73.9712}

// Fallback date range when neither the trip nor its itinerary carries dates.
const (
	DefaultStartDate = "2025-09-20"
	DefaultEndDate   = "2025-09-22"
)

// DateRange is an inclusive pair of ISO dates.
type DateRange struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

// ResolveCenter derives the map center from a trip. Fallback chain, first
// available wins: trip-level coordinates, the first located activity, then
// DefaultCenter. It always yields a renderable coordinate.
func ResolveCenter(t *Trip) LatLng {
	if t == nil {
		return DefaultCenter
	}
	if t.Coordinates != nil {
		return *t.Coordinates
	}
	for _, day := range t.Itinerary {
		for _, a := range day.Activities {
			if a.Coordinates != nil {
				return *a.Coordinates
			}
		}
	}
	return DefaultCenter
}

// ResolveDateRange derives the active date range for the feed query:
// trip-level dates when both are set, else the first and last itinerary day
// dates, else the fixed defaults.
func ResolveDateRange(t *Trip) DateRange {
	if t != nil {
		if t.StartDate != "" && t.EndDate != "" {
			return DateRange{Start: t.StartDate, End: t.EndDate}
		}
		if n := len(t.Itinerary); n > 0 {
			first, last := t.Itinerary[0].Date, t.Itinerary[n-1].Date
			if first != "" && last != "" {
				return DateRange{Start: first, End: last}
			}
		}
	}
	return DateRange{Start: DefaultStartDate, End: DefaultEndDate}
}

// ResolveSearchCenter is ResolveCenter in the "lat,lng" textual form the
// events provider expects.
func ResolveSearchCenter(t *Trip) string {
	c := ResolveCenter(t)
	return fmt.Sprintf("%.4f,%.4f", c.Lat, c.Lng)
}
