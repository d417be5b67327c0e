package session

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/skytrip/booking-engine/internal/domain"
	"github.com/skytrip/booking-engine/internal/infrastructure/timeutil"
)

func newTestSession(id string) *Session {
	b := domain.NewTemporaryBooking()
	b.BasePrice = 250
	b.TotalPrice = 250
	return &Session{
		ID:      id,
		Booking: b,
	}
}

func TestMemory_PutGet(t *testing.T) {
	store := NewMemory(time.Minute, nil)
	ctx := context.Background()

	s := newTestSession("s1")
	require.NoError(t, store.Put(ctx, s))

	got, err := store.Get(ctx, "s1")
	require.NoError(t, err)
	assert.Equal(t, "s1", got.ID)
	assert.Equal(t, 250.0, got.Booking.BasePrice)
}

func TestMemory_GetReturnsPrivateCopy(t *testing.T) {
	store := NewMemory(time.Minute, nil)
	ctx := context.Background()

	require.NoError(t, store.Put(ctx, newTestSession("s1")))

	first, err := store.Get(ctx, "s1")
	require.NoError(t, err)
	first.Booking.BasePrice = 999999

	// Mutating one snapshot must not leak into later reads.
	second, err := store.Get(ctx, "s1")
	require.NoError(t, err)
	assert.Equal(t, 250.0, second.Booking.BasePrice)
}

func TestMemory_GetMissing(t *testing.T) {
	store := NewMemory(time.Minute, nil)

	_, err := store.Get(context.Background(), "nope")
	assert.ErrorIs(t, err, domain.ErrSessionNotFound)
}

func TestMemory_Expiry(t *testing.T) {
	clock := timeutil.NewMockClock(time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC))
	store := NewMemory(30*time.Minute, clock)
	ctx := context.Background()

	require.NoError(t, store.Put(ctx, newTestSession("s1")))

	clock.Advance(29 * time.Minute)
	_, err := store.Get(ctx, "s1")
	assert.NoError(t, err, "session should survive until the TTL elapses")

	clock.Advance(2 * time.Minute)
	_, err = store.Get(ctx, "s1")
	assert.ErrorIs(t, err, domain.ErrSessionNotFound)
	assert.Equal(t, 0, store.Len(), "expired entry is swept on access")
}

func TestMemory_PutResetsExpiry(t *testing.T) {
	clock := timeutil.NewMockClock(time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC))
	store := NewMemory(30*time.Minute, clock)
	ctx := context.Background()

	require.NoError(t, store.Put(ctx, newTestSession("s1")))

	clock.Advance(20 * time.Minute)
	require.NoError(t, store.Put(ctx, newTestSession("s1")))

	clock.Advance(20 * time.Minute)
	_, err := store.Get(ctx, "s1")
	assert.NoError(t, err, "rewriting the session extends its lifetime")
}

func TestMemory_Delete(t *testing.T) {
	store := NewMemory(time.Minute, nil)
	ctx := context.Background()

	require.NoError(t, store.Put(ctx, newTestSession("s1")))
	require.NoError(t, store.Delete(ctx, "s1"))

	_, err := store.Get(ctx, "s1")
	assert.ErrorIs(t, err, domain.ErrSessionNotFound)

	// Deleting an absent session is not an error.
	assert.NoError(t, store.Delete(ctx, "s1"))
}

func TestMemory_Close(t *testing.T) {
	store := NewMemory(time.Minute, nil)
	assert.NoError(t, store.Close())
}
