package server

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
)

// Registry maps live viewer sessions to their controllers. Controllers are
// created on session creation and rebuilt lazily from the store after a
// restart.
type Registry struct {
	logger *slog.Logger
	store  Store
	feed   Fetcher
	broker *Broker

	mu    sync.RWMutex
	views map[string]*viewController
}

func NewRegistry(logger *slog.Logger, store Store, feed Fetcher, broker *Broker) *Registry {
	return &Registry{
		logger: logger,
		store:  store,
		feed:   feed,
		broker: broker,
		views:  make(map[string]*viewController),
	}
}

// Get returns the controller for a session token, reviving it from the
// store if this process has not seen the session yet.
func (r *Registry) Get(ctx context.Context, token string) (*viewController, error) {
	r.mu.RLock()
	vc, ok := r.views[token]
	r.mu.RUnlock()
	if ok {
		return vc, nil
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	// Double-check after acquiring write lock.
	if vc, ok := r.views[token]; ok {
		return vc, nil
	}

	sess, err := r.store.SessionFromToken(ctx, token)
	if err != nil {
		return nil, err
	}
	vc, err = r.open(ctx, sess)
	if err != nil {
		return nil, err
	}
	r.views[token] = vc
	return vc, nil
}

// Create spins up a controller for a freshly created session. The feed fetch
// starts immediately.
func (r *Registry) Create(ctx context.Context, sess sessionInfo) (*viewController, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if vc, ok := r.views[sess.Token]; ok {
		return vc, nil
	}

	vc, err := r.open(ctx, sess)
	if err != nil {
		return nil, err
	}
	r.views[sess.Token] = vc
	return vc, nil
}

func (r *Registry) open(ctx context.Context, sess sessionInfo) (*viewController, error) {
	t, err := r.store.GetTrip(ctx, sess.TripID)
	if err != nil {
		return nil, fmt.Errorf("loading trip %q: %w", sess.TripID, err)
	}
	token := sess.Token
	publish := func(ev ViewEvent) { r.broker.Publish(token, ev) }
	return newViewController(r.logger, r.feed, publish, sess.TripID, t), nil
}
