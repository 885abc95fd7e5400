package server

import (
	"context"
	"log/slog"

	"github.com/daywell/tripview/internal/trip"
)

// SeedDemo stores a demo trip if the store is empty, so a fresh install has
// something to render. Idempotent.
func SeedDemo(ctx context.Context, logger *slog.Logger, store Store) error {
	existing, err := store.ListTrips(ctx)
	if err != nil {
		return err
	}
	if len(existing) > 0 {
		return nil
	}

	id, err := store.PutTrip(ctx, demoTrip())
	if err != nil {
		return err
	}

	logger.Info("demo trip created", "trip_id", id)
	return nil
}

func demoTrip() *trip.Trip {
	return &trip.Trip{
		Destination: "New York City",
		Coordinates: &trip.LatLng{Lat: 40.7831, Lng: -73.9712},
		StartDate:   "2025-09-20",
		EndDate:     "2025-09-21",
		Duration:    "2 days",
		Itinerary: []trip.Day{
			{
				Day:  1,
				Date: "2025-09-20",
				Activities: []trip.Activity{
					{
						ID:                "activity_1",
						Type:              "activity",
						Title:             "Family Fun Day at Central Park",
						Description:       "Outdoor activities, games, and entertainment for the whole family",
						Address:           "Central Park, New York, NY",
						Coordinates:       &trip.LatLng{Lat: 40.7829, Lng: -73.9654},
						EstimatedDuration: "3 hours",
						SequencedTime:     &trip.TimeWindow{Start: "10:00 AM", End: "1:00 PM"},
						Tags:              []string{"outdoor", "family"},
					},
					{
						ID:                "meal_1",
						Type:              "meal",
						Title:             "Lunch at Family Restaurant",
						Description:       "Casual American dining, kids menu available",
						Address:           "Downtown Area, New York, NY",
						Coordinates:       &trip.LatLng{Lat: 40.7527, Lng: -73.9772},
						EstimatedDuration: "1 hour",
						SequencedTime:     &trip.TimeWindow{Start: "1:00 PM", End: "2:00 PM"},
						Tags:              []string{"food", "family-friendly"},
					},
					{
						ID:                "activity_2",
						Type:              "activity",
						Title:             "Shopping at Local Market",
						EstimatedDuration: "2 hours",
						SequencedTime:     &trip.TimeWindow{Start: "3:00 PM", End: "5:00 PM"},
						Tags:              []string{"shopping"},
						// No address or coordinates: listed, never plotted.
					},
				},
				Accommodation:  "Midtown Family Hotel",
				Transportation: "Subway",
			},
			{
				Day:  2,
				Date: "2025-09-21",
				Activities: []trip.Activity{
					{
						ID:                "activity_3",
						Type:              "activity",
						Title:             "Science Museum Exhibition",
						Description:       "Interactive exhibits perfect for curious minds",
						Address:           "City Science Museum, New York, NY",
						Coordinates:       &trip.LatLng{Lat: 40.7813, Lng: -73.974},
						EstimatedDuration: "4 hours",
						SequencedTime:     &trip.TimeWindow{Start: "9:00 AM", End: "1:00 PM"},
						Tags:              []string{"indoor", "family"},
					},
					{
						ID:                "activity_4",
						Type:              "activity",
						Title:             "Picnic in Riverside Park",
						Address:           "Riverside Park, New York, NY",
						Coordinates:       &trip.LatLng{Lat: 40.8009, Lng: -73.9708},
						EstimatedDuration: "2 hours",
						SequencedTime:     &trip.TimeWindow{Start: "2:00 PM", End: "4:00 PM"},
						Tags:              []string{"outdoor"},
					},
				},
				Accommodation:  "Midtown Family Hotel",
				Transportation: "Subway",
			},
		},
	}
}
