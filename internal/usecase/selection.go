package usecase

import (
	"context"

	"github.com/skytrip/booking-engine/internal/domain"
	"github.com/skytrip/booking-engine/internal/session"
)

// SelectFlight implements BookingUseCase.SelectFlight.
// A nil flight clears the selection. Otherwise the layover annotations are
// rebuilt in full from the new segments; nothing from a previous selection
// survives.
func (uc *bookingUseCase) SelectFlight(ctx context.Context, id string, flight *domain.SelectedFlight) (*session.Session, error) {
	return uc.mutate(ctx, id, func(s *session.Session) {
		if flight == nil {
			s.Flight = nil
			return
		}

		flight.RecomputeLayovers(uc.layover)
		s.Flight = flight
	})
}

// ClearFlight implements BookingUseCase.ClearFlight.
func (uc *bookingUseCase) ClearFlight(ctx context.Context, id string) (*session.Session, error) {
	return uc.mutate(ctx, id, func(s *session.Session) {
		s.Flight = nil
	})
}
