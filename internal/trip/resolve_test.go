package trip

import "testing"

func TestResolveCenterTripCoordinatesWin(t *testing.T) {
	tr := sampleTrip() // trip-level and activity-level coordinates differ
	got := ResolveCenter(tr)
	if got != (LatLng{Lat: 40.7831, Lng: -73.9712}) {
		t.Errorf("ResolveCenter = %+v, want trip-level coordinates", got)
	}
}

func TestResolveCenterFallsBackToFirstLocatedActivity(t *testing.T) {
	tr := sampleTrip()
	tr.Coordinates = nil
	got := ResolveCenter(tr)
	if got != (LatLng{Lat: 40.7829, Lng: -73.9654}) {
		t.Errorf("ResolveCenter = %+v, want first activity coordinates", got)
	}
}

func TestResolveCenterDefault(t *testing.T) {
	cases := []struct {
		name string
		trip *Trip
	}{
		{"nil trip", nil},
		{"no coordinates anywhere", &Trip{
			Destination: "Somewhere",
			Itinerary: []Day{{
				Date:       "2025-09-20",
				Activities: []Activity{{ID: "a1", Title: "Walk"}},
			}},
		}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := ResolveCenter(tc.trip); got != DefaultCenter {
				t.Errorf("ResolveCenter = %+v, want default", got)
			}
		})
	}
}

func TestResolveDateRangeTripDatesWin(t *testing.T) {
	got := ResolveDateRange(sampleTrip())
	if got.Start != "2025-09-20" || got.End != "2025-09-21" {
		t.Errorf("ResolveDateRange = %+v", got)
	}
}

func TestResolveDateRangeFromItinerary(t *testing.T) {
	tr := &Trip{
		Destination: "Somewhere",
		Itinerary: []Day{
			{Date: "2025-09-20"},
			{Date: "2025-09-21"},
			{Date: "2025-09-22"},
		},
	}
	got := ResolveDateRange(tr)
	if got.Start != "2025-09-20" || got.End != "2025-09-22" {
		t.Errorf("ResolveDateRange = %+v, want itinerary first/last dates", got)
	}
}

func TestResolveDateRangeDefault(t *testing.T) {
	got := ResolveDateRange(nil)
	if got.Start != DefaultStartDate || got.End != DefaultEndDate {
		t.Errorf("ResolveDateRange(nil) = %+v, want defaults", got)
	}
}

func TestResolveSearchCenterTextualForm(t *testing.T) {
	if got := ResolveSearchCenter(nil); got != "40.7831,-73.9712" {
		t.Errorf("ResolveSearchCenter(nil) = %q", got)
	}

	tr := &Trip{Coordinates: &LatLng{Lat: -12.0464, Lng: -77.0428}}
	if got := ResolveSearchCenter(tr); got != "-12.0464,-77.0428" {
		t.Errorf("ResolveSearchCenter = %q", got)
	}
}
