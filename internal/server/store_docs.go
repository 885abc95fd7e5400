package server

import (
	"context"
	"crypto/rand"
	"database/sql"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/daywell/tripview/internal/trip"
)

// Document types stored as JSONB in per-model tables.

type tripDoc struct {
	ID        string     `json:"id"`
	CreatedAt string     `json:"createdAt"`
	Trip      *trip.Trip `json:"trip"`
}

type sessionDoc struct {
	Token     string `json:"token"`
	TripID    string `json:"tripId"`
	CreatedAt string `json:"createdAt"`
}

// DocStore implements Store using per-model tables with JSONB data columns.
type DocStore struct {
	db *sql.DB
}

func NewDocStore(ctx context.Context, db *sql.DB) (*DocStore, error) {
	for _, ddl := range []string{
		`CREATE TABLE IF NOT EXISTS trips (
			id          TEXT PRIMARY KEY,
			destination TEXT NOT NULL,
			data        JSONB NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS view_sessions (
			id   TEXT PRIMARY KEY,
			data JSONB NOT NULL
		)`,
	} {
		if _, err := db.ExecContext(ctx, ddl); err != nil {
			return nil, fmt.Errorf("creating table: %w", err)
		}
	}

	return &DocStore{db: db}, nil
}

func (s *DocStore) PutTrip(ctx context.Context, t *trip.Trip) (string, error) {
	doc := tripDoc{ID: newID(), CreatedAt: nowUTC(), Trip: t}
	data, err := json.Marshal(doc)
	if err != nil {
		return "", err
	}
	_, err = s.db.ExecContext(ctx,
		`INSERT INTO trips (id, destination, data) VALUES (?, ?, jsonb(?))`,
		doc.ID, t.Destination, string(data),
	)
	if err != nil {
		return "", err
	}
	return doc.ID, nil
}

func (s *DocStore) GetTrip(ctx context.Context, id string) (*trip.Trip, error) {
	var doc tripDoc
	if err := s.get(ctx, "trips", id, &doc); err != nil {
		return nil, err
	}
	return doc.Trip, nil
}

func (s *DocStore) ListTrips(ctx context.Context) ([]TripSummary, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT json(data) FROM trips ORDER BY rowid`,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	summaries := []TripSummary{}
	for rows.Next() {
		var data string
		if err := rows.Scan(&data); err != nil {
			return nil, err
		}
		var doc tripDoc
		if err := json.Unmarshal([]byte(data), &doc); err != nil {
			return nil, err
		}
		sum := TripSummary{ID: doc.ID, CreatedAt: doc.CreatedAt}
		if doc.Trip != nil {
			sum.Destination = doc.Trip.Destination
			sum.StartDate = doc.Trip.StartDate
			sum.EndDate = doc.Trip.EndDate
			sum.Days = len(doc.Trip.Itinerary)
		}
		summaries = append(summaries, sum)
	}
	return summaries, rows.Err()
}

func (s *DocStore) CreateSession(ctx context.Context, tripID string) (string, error) {
	doc := sessionDoc{Token: newID(), TripID: tripID, CreatedAt: nowUTC()}
	data, err := json.Marshal(doc)
	if err != nil {
		return "", err
	}
	_, err = s.db.ExecContext(ctx,
		`INSERT INTO view_sessions (id, data) VALUES (?, jsonb(?))`,
		doc.Token, string(data),
	)
	if err != nil {
		return "", err
	}
	return doc.Token, nil
}

func (s *DocStore) SessionFromToken(ctx context.Context, token string) (sessionInfo, error) {
	var doc sessionDoc
	if err := s.get(ctx, "view_sessions", token, &doc); err != nil {
		return sessionInfo{}, err
	}
	return sessionInfo{Token: doc.Token, TripID: doc.TripID}, nil
}

func (s *DocStore) RetargetSession(ctx context.Context, token, tripID string) error {
	var doc sessionDoc
	if err := s.get(ctx, "view_sessions", token, &doc); err != nil {
		return err
	}
	doc.TripID = tripID
	data, err := json.Marshal(doc)
	if err != nil {
		return err
	}
	_, err = s.db.ExecContext(ctx,
		`UPDATE view_sessions SET data = jsonb(?) WHERE id = ?`,
		string(data), token,
	)
	return err
}

func (s *DocStore) get(ctx context.Context, table, id string, dest any) error {
	var data string
	err := s.db.QueryRowContext(ctx,
		fmt.Sprintf(`SELECT json(data) FROM %s WHERE id = ?`, table), id,
	).Scan(&data)
	if errors.Is(err, sql.ErrNoRows) {
		return ErrNotFound
	}
	if err != nil {
		return err
	}
	return json.Unmarshal([]byte(data), dest)
}

func newID() string {
	b := make([]byte, 16)
	rand.Read(b)
	return hex.EncodeToString(b)
}

func nowUTC() string {
	return time.Now().UTC().Format("2006-01-02T15:04:05.000Z")
}
