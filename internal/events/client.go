// Package events fetches nearby public events from the external events
// provider. The client is independent of the rest of the system: it only
// knows the center coordinate and date range it is handed.
package events

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
)

// Fixed search policy: constant radius, a whitelist of provider categories,
// provider-side rank sort, capped result count.
const (
	searchRadius     = "50km"
	searchCategories = "community,festivals,performing-arts,sports"
	searchSort       = "-rank"
	searchLimit      = 20
)

// Event is one provider event record. Its identity space is independent of
// activity IDs: events are co-displayed with the itinerary, never merged.
type Event struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Category  string    `json:"category"`
	Start     string    `json:"start"`
	End       string    `json:"end"`
	Labels    []string  `json:"labels,omitempty"`
	Location  []float64 `json:"location,omitempty"` // [lng, lat] pair as sent by the provider
	LocalRank float64   `json:"local_rank,omitempty"`
}

// Client talks to the events provider. The bearer credential is injected at
// construction, never read from the environment here.
type Client struct {
	baseURL    string
	token      string
	httpClient *http.Client
}

func New(baseURL, token string) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		token:   token,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// Search issues one radius-and-date-bounded query and returns the provider's
// event records. A non-success HTTP status or transport failure is returned
// as an error carrying the reason; a response without a results field is an
// empty success, not a failure.
func (c *Client) Search(ctx context.Context, center, activeGTE, activeLTE string) ([]Event, error) {
	if c.token == "" {
		return nil, errors.New("events api credential not configured")
	}

	q := url.Values{}
	q.Set("within", searchRadius+"@"+center)
	q.Set("active.gte", activeGTE)
	q.Set("active.lte", activeLTE)
	q.Set("category", searchCategories)
	q.Set("sort", searchSort)
	q.Set("limit", strconv.Itoa(searchLimit))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/?"+q.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("building events request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.token)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("events request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, fmt.Errorf("events api error: status=%d body=%s", resp.StatusCode, strings.TrimSpace(string(body)))
	}

	var out struct {
		Results []Event `json:"results"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, fmt.Errorf("decoding events response: %w", err)
	}

	if out.Results == nil {
		return []Event{}, nil
	}
	return out.Results, nil
}
