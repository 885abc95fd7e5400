package trip

import "testing"

func sampleTrip() *Trip {
	return &Trip{
		Destination: "New York City",
		Coordinates: &LatLng{Lat: 40.7831, Lng: -73.9712},
		StartDate:   "2025-09-20",
		EndDate:     "2025-09-21",
		Itinerary: []Day{
			{
				Day:  1,
				Date: "2025-09-20",
				Activities: []Activity{
					{
						ID:                "activity_1",
						Type:              "activity",
						Title:             "Family Fun Day at Central Park",
						Address:           "Central Park, New York, NY",
						Coordinates:       &LatLng{Lat: 40.7829, Lng: -73.9654},
						EstimatedDuration: "3 hours",
						SequencedTime:     &TimeWindow{Start: "10:00 AM", End: "1:00 PM"},
						Tags:              []string{"outdoor", "family"},
					},
					{
						ID:    "meal_1",
						Type:  "meal",
						Title: "Lunch at Family Restaurant",
						// No address, no coordinates, no times.
					},
				},
			},
			{
				Day:  2,
				Date: "2025-09-21",
				Activities: []Activity{
					{
						ID:          "activity_2",
						Type:        "activity",
						Title:       "Science Museum Exhibition",
						Address:     "City Science Museum",
						Coordinates: &LatLng{Lat: 40.7813, Lng: -73.974},
						Tags:        []string{"indoor"},
					},
				},
			},
		},
	}
}

func TestNormalizeNil(t *testing.T) {
	v := Normalize(nil)
	if v.Points == nil || v.Days == nil {
		t.Fatal("Normalize(nil) returned nil slices")
	}
	if len(v.Points) != 0 || len(v.Days) != 0 {
		t.Errorf("Normalize(nil) = %d points, %d days, want 0, 0", len(v.Points), len(v.Days))
	}
}

func TestNormalizeEmptyTrip(t *testing.T) {
	v := Normalize(&Trip{Destination: "Nowhere"})
	if len(v.Points) != 0 || len(v.Days) != 0 {
		t.Errorf("empty trip = %d points, %d days, want 0, 0", len(v.Points), len(v.Days))
	}
}

func TestNormalizeSplitsUnlocatedActivities(t *testing.T) {
	v := Normalize(sampleTrip())

	// meal_1 has no coordinates: listed but never plotted.
	if len(v.Points) != 2 {
		t.Fatalf("got %d points, want 2", len(v.Points))
	}
	for _, p := range v.Points {
		if p.ID == "meal_1" {
			t.Error("coordinate-less activity meal_1 appeared in points")
		}
	}

	if len(v.Days) != 2 {
		t.Fatalf("got %d days, want 2", len(v.Days))
	}
	if len(v.Days[0].Items) != 2 {
		t.Fatalf("day 1 has %d items, want 2", len(v.Days[0].Items))
	}
	if v.Days[0].Items[1].ID != "meal_1" {
		t.Errorf("day 1 item 2 = %q, want meal_1", v.Days[0].Items[1].ID)
	}
}

func TestNormalizePlaceholders(t *testing.T) {
	v := Normalize(sampleTrip())
	meal := v.Days[0].Items[1]

	if meal.Location != "Location not specified" {
		t.Errorf("location = %q, want placeholder", meal.Location)
	}
	if meal.Time != "Time TBD" {
		t.Errorf("time = %q, want placeholder", meal.Time)
	}
	if meal.Duration != "Duration not specified" {
		t.Errorf("duration = %q, want placeholder", meal.Duration)
	}
	if meal.Category != CategoryFood {
		t.Errorf("category = %v, want Food", meal.Category)
	}
}

func TestNormalizePreservesOrder(t *testing.T) {
	v := Normalize(sampleTrip())

	wantPoints := []string{"activity_1", "activity_2"}
	for i, want := range wantPoints {
		if v.Points[i].ID != want {
			t.Errorf("points[%d] = %q, want %q", i, v.Points[i].ID, want)
		}
	}

	if v.Days[0].Date != "2025-09-20" || v.Days[1].Date != "2025-09-21" {
		t.Errorf("day order = %q, %q", v.Days[0].Date, v.Days[1].Date)
	}
}

func TestNormalizeSingleOutdoorActivity(t *testing.T) {
	tr := &Trip{
		Destination: "Test Town",
		Itinerary: []Day{{
			Day:  1,
			Date: "2025-10-01",
			Activities: []Activity{{
				ID:          "a1",
				Type:        "activity",
				Title:       "Hike",
				Coordinates: &LatLng{Lat: 1, Lng: 2},
				Tags:        []string{"outdoor"},
			}},
		}},
	}

	v := Normalize(tr)
	if len(v.Points) != 1 {
		t.Fatalf("got %d points, want 1", len(v.Points))
	}
	if v.Points[0].Category != CategoryOutdoor {
		t.Errorf("category = %v, want Outdoor", v.Points[0].Category)
	}
}
