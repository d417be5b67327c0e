// Package domain contains the core booking entities and pricing rules.
// These types are transport-agnostic and form the foundation upon which the
// session use case and HTTP layer are built.
package domain

import "errors"

// Sentinel errors returned by the surrounding layers. The pricing core itself
// never returns errors: unknown catalog ids and malformed clock strings
// degrade to zero contributions so a bad selection cannot abort a booking
// flow in progress.
var (
	// ErrInvalidRequest indicates the caller supplied invalid input.
	ErrInvalidRequest = errors.New("invalid request")

	// ErrSessionNotFound indicates the booking session does not exist or has expired.
	ErrSessionNotFound = errors.New("booking session not found")

	// ErrStoreUnavailable indicates the session store could not be reached.
	ErrStoreUnavailable = errors.New("session store unavailable")

	// ErrConfirmationFailed indicates the booking-confirmation endpoint rejected the snapshot.
	ErrConfirmationFailed = errors.New("booking confirmation failed")
)
