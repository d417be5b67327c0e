// Package session provides the booking session store: one session per
// in-progress booking, holding the temporary booking state and the selected
// flight. Backends are an in-memory map (development, tests) and Redis.
package session

import (
	"context"
	"time"

	"github.com/skytrip/booking-engine/internal/domain"
)

//go:generate mockgen -source=store.go -destination=mock_store.go -package=session

// Session is one logical booking flow owned by a single client.
// The use case serializes all mutations per session id, so stores do not
// need to guard against interleaved partial updates of one session.
type Session struct {
	// ID is the session identifier handed to the client
	ID string `json:"id"`

	// Booking is the in-progress temporary booking state
	Booking *domain.TemporaryBooking `json:"booking"`

	// Flight is the currently selected flight offer, nil when none
	Flight *domain.SelectedFlight `json:"flight,omitempty"`

	// CreatedAt is when the session was created
	CreatedAt time.Time `json:"createdAt"`

	// UpdatedAt is when the session was last mutated
	UpdatedAt time.Time `json:"updatedAt"`
}

// Store persists booking sessions with a bounded lifetime.
type Store interface {
	// Get returns the session with the given id.
	// Returns domain.ErrSessionNotFound for missing or expired sessions.
	Get(ctx context.Context, id string) (*Session, error)

	// Put stores the session, resetting its expiry.
	Put(ctx context.Context, s *Session) error

	// Delete removes the session. Deleting an absent session is not an error.
	Delete(ctx context.Context, id string) error

	// Close releases any resources held by the store.
	Close() error
}
