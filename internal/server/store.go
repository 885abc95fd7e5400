package server

import (
	"context"
	"errors"

	"github.com/daywell/tripview/internal/trip"
)

var ErrNotFound = errors.New("not found")

// TripSummary is the listing projection of a stored trip.
type TripSummary struct {
	ID          string `json:"id"`
	Destination string `json:"destination"`
	StartDate   string `json:"startDate,omitempty"`
	EndDate     string `json:"endDate,omitempty"`
	Days        int    `json:"days"`
	CreatedAt   string `json:"createdAt"`
}

// sessionInfo identifies a viewer session and the trip it is looking at.
type sessionInfo struct {
	Token  string
	TripID string
}

type Store interface {
	PutTrip(ctx context.Context, t *trip.Trip) (string, error)
	GetTrip(ctx context.Context, id string) (*trip.Trip, error)
	ListTrips(ctx context.Context) ([]TripSummary, error)

	CreateSession(ctx context.Context, tripID string) (string, error)
	SessionFromToken(ctx context.Context, token string) (sessionInfo, error)
	RetargetSession(ctx context.Context, token, tripID string) error
}
