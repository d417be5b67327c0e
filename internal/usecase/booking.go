// Package usecase implements the booking session workflow: it loads a
// session from the store, applies the pricing core's mutators under a
// per-session lock, and persists the result.
package usecase

import (
	"context"
	"fmt"
	"sync"

	"github.com/google/uuid"

	"github.com/skytrip/booking-engine/internal/currency"
	"github.com/skytrip/booking-engine/internal/domain"
	"github.com/skytrip/booking-engine/internal/infrastructure/logger"
	"github.com/skytrip/booking-engine/internal/infrastructure/timeutil"
	"github.com/skytrip/booking-engine/internal/session"
)

// BookingUseCase defines the operations of a booking session.
type BookingUseCase interface {
	// Create starts a new empty booking session.
	Create(ctx context.Context) (*session.Session, error)

	// Get returns the current session snapshot.
	Get(ctx context.Context, id string) (*session.Session, error)

	// SetBasePrice replaces the base fare and currency.
	SetBasePrice(ctx context.Context, id string, price float64, cur string) (*session.Session, error)

	// UpdateAddOns replaces the selected add-on id set.
	UpdateAddOns(ctx context.Context, id string, addOnIDs []string) (*session.Session, error)

	// UpdateInsurance sets or clears (nil) the selected insurance tier.
	UpdateInsurance(ctx context.Context, id string, insuranceID *string) (*session.Session, error)

	// UpdatePassengers replaces the passenger list verbatim.
	UpdatePassengers(ctx context.Context, id string, passengers []domain.PassengerInfo) (*session.Session, error)

	// Recalculate explicitly recomputes derived totals. It is idempotent:
	// with no intervening mutation the state is unchanged.
	Recalculate(ctx context.Context, id string) (*session.Session, error)

	// Reset restores the session to the empty initial state.
	Reset(ctx context.Context, id string) (*session.Session, error)

	// SelectFlight stores the flight offer with fully recomputed layover times.
	SelectFlight(ctx context.Context, id string, flight *domain.SelectedFlight) (*session.Session, error)

	// ClearFlight removes the selected flight.
	ClearFlight(ctx context.Context, id string) (*session.Session, error)

	// Confirm hands the finalized snapshot to the confirmation gateway and
	// resets the session.
	Confirm(ctx context.Context, id string) (*ConfirmedBooking, error)
}

// Config contains the collaborators of the booking use case. Zero fields
// fall back to the built-in catalogs, rate table, layover calculator and
// system clock.
type Config struct {
	AddOns    domain.Catalog
	Insurance domain.Catalog
	Rates     domain.CurrencyConverter
	Layover   domain.LayoverFunc
	Clock     timeutil.Clock
	Logger    *logger.Logger
}

type bookingUseCase struct {
	store   session.Store
	gateway ConfirmationGateway
	agg     *domain.Aggregator
	layover domain.LayoverFunc
	clock   timeutil.Clock
	log     *logger.Logger

	// locks serializes mutators per session id so two concurrent requests
	// against one session cannot interleave partial updates. Distinct
	// sessions do not contend. Entries are refcounted and removed when the
	// last holder releases, so the map does not outlive the sessions.
	locksMu sync.Mutex
	locks   map[string]*sessionLock
}

// sessionLock is one refcounted per-session mutex. refs is guarded by the
// use case's locksMu, not by mu itself.
type sessionLock struct {
	mu   sync.Mutex
	refs int
}

// NewBookingUseCase creates a BookingUseCase over the given store and
// confirmation gateway.
func NewBookingUseCase(store session.Store, gateway ConfirmationGateway, cfg *Config) BookingUseCase {
	c := Config{}
	if cfg != nil {
		c = *cfg
	}
	if c.AddOns == nil {
		c.AddOns = domain.DefaultAddOns()
	}
	if c.Insurance == nil {
		c.Insurance = domain.DefaultInsurance()
	}
	if c.Rates == nil {
		c.Rates = currency.DefaultTable()
	}
	if c.Layover == nil {
		c.Layover = timeutil.LayoverMinutes
	}
	if c.Clock == nil {
		c.Clock = timeutil.NewRealClock()
	}
	if c.Logger == nil {
		c.Logger = logger.Nop()
	}

	return &bookingUseCase{
		store:   store,
		gateway: gateway,
		agg:     domain.NewAggregator(c.AddOns, c.Insurance, c.Rates),
		layover: c.Layover,
		clock:   c.Clock,
		log:     c.Logger,
		locks:   make(map[string]*sessionLock),
	}
}

// acquire takes the lock guarding the given session id, creating it on
// first use.
func (uc *bookingUseCase) acquire(id string) *sessionLock {
	uc.locksMu.Lock()
	l, ok := uc.locks[id]
	if !ok {
		l = &sessionLock{}
		uc.locks[id] = l
	}
	l.refs++
	uc.locksMu.Unlock()

	l.mu.Lock()
	return l
}

// release unlocks the session lock and drops its map entry once no other
// caller is holding or waiting on it.
func (uc *bookingUseCase) release(id string, l *sessionLock) {
	l.mu.Unlock()

	uc.locksMu.Lock()
	l.refs--
	if l.refs == 0 {
		delete(uc.locks, id)
	}
	uc.locksMu.Unlock()
}

// mutate loads the session, applies fn under the session lock, stamps
// UpdatedAt and persists the result.
func (uc *bookingUseCase) mutate(ctx context.Context, id string, fn func(*session.Session)) (*session.Session, error) {
	l := uc.acquire(id)
	defer uc.release(id, l)

	s, err := uc.store.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	fn(s)
	s.UpdatedAt = uc.clock.Now()

	if err := uc.store.Put(ctx, s); err != nil {
		return nil, err
	}
	return s, nil
}

// Create implements BookingUseCase.Create.
func (uc *bookingUseCase) Create(ctx context.Context) (*session.Session, error) {
	now := uc.clock.Now()
	s := &session.Session{
		ID:        uuid.New().String(),
		Booking:   domain.NewTemporaryBooking(),
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := uc.store.Put(ctx, s); err != nil {
		return nil, err
	}

	uc.log.Debug().Str("session_id", s.ID).Msg("Booking session created")
	return s, nil
}

// Get implements BookingUseCase.Get.
func (uc *bookingUseCase) Get(ctx context.Context, id string) (*session.Session, error) {
	return uc.store.Get(ctx, id)
}

// SetBasePrice implements BookingUseCase.SetBasePrice.
func (uc *bookingUseCase) SetBasePrice(ctx context.Context, id string, price float64, cur string) (*session.Session, error) {
	return uc.mutate(ctx, id, func(s *session.Session) {
		uc.agg.SetBasePrice(s.Booking, price, cur)
	})
}

// UpdateAddOns implements BookingUseCase.UpdateAddOns.
func (uc *bookingUseCase) UpdateAddOns(ctx context.Context, id string, addOnIDs []string) (*session.Session, error) {
	return uc.mutate(ctx, id, func(s *session.Session) {
		uc.agg.UpdateAddOns(s.Booking, addOnIDs)
	})
}

// UpdateInsurance implements BookingUseCase.UpdateInsurance.
func (uc *bookingUseCase) UpdateInsurance(ctx context.Context, id string, insuranceID *string) (*session.Session, error) {
	return uc.mutate(ctx, id, func(s *session.Session) {
		uc.agg.UpdateInsurance(s.Booking, insuranceID)
	})
}

// UpdatePassengers implements BookingUseCase.UpdatePassengers.
func (uc *bookingUseCase) UpdatePassengers(ctx context.Context, id string, passengers []domain.PassengerInfo) (*session.Session, error) {
	return uc.mutate(ctx, id, func(s *session.Session) {
		uc.agg.UpdatePassengers(s.Booking, passengers)
	})
}

// Recalculate implements BookingUseCase.Recalculate.
func (uc *bookingUseCase) Recalculate(ctx context.Context, id string) (*session.Session, error) {
	return uc.mutate(ctx, id, func(s *session.Session) {
		uc.agg.CalculateTotalPrice(s.Booking)
	})
}

// Reset implements BookingUseCase.Reset. The selected flight is cleared
// along with the booking state: a reset starts the flow over.
func (uc *bookingUseCase) Reset(ctx context.Context, id string) (*session.Session, error) {
	return uc.mutate(ctx, id, func(s *session.Session) {
		uc.agg.Reset(s.Booking)
		s.Flight = nil
	})
}

// Confirm implements BookingUseCase.Confirm.
func (uc *bookingUseCase) Confirm(ctx context.Context, id string) (*ConfirmedBooking, error) {
	l := uc.acquire(id)
	defer uc.release(id, l)

	s, err := uc.store.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	confirmed := &ConfirmedBooking{
		SessionID:   s.ID,
		Booking:     *s.Booking,
		Flight:      s.Flight,
		ConfirmedAt: uc.clock.Now(),
	}

	if err := uc.gateway.Confirm(ctx, *confirmed); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrConfirmationFailed, err)
	}

	// The flow is finished; the session returns to its initial empty state.
	uc.agg.Reset(s.Booking)
	s.Flight = nil
	s.UpdatedAt = uc.clock.Now()

	if err := uc.store.Put(ctx, s); err != nil {
		return nil, err
	}

	uc.log.Info().
		Str("session_id", s.ID).
		Float64("total_price", confirmed.Booking.TotalPrice).
		Str("currency", confirmed.Booking.Currency).
		Msg("Booking finalized")
	return confirmed, nil
}
