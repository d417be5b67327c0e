package usecase

import (
	"context"
	"time"

	"github.com/skytrip/booking-engine/internal/domain"
	"github.com/skytrip/booking-engine/internal/infrastructure/logger"
)

//go:generate mockgen -source=confirmation.go -destination=mock_gateway.go -package=usecase

// ConfirmedBooking is the finalized snapshot handed to the external
// booking-confirmation endpoint. The engine does not know the wire format
// of that call; it only produces the snapshot.
type ConfirmedBooking struct {
	SessionID   string                  `json:"sessionId"`
	Booking     domain.TemporaryBooking `json:"booking"`
	Flight      *domain.SelectedFlight  `json:"flight,omitempty"`
	ConfirmedAt time.Time               `json:"confirmedAt"`
}

// ConfirmationGateway delivers a finalized booking snapshot to the external
// booking-confirmation endpoint.
type ConfirmationGateway interface {
	// Confirm submits the snapshot. A non-nil error leaves the session intact
	// so the client can retry.
	Confirm(ctx context.Context, booking ConfirmedBooking) error
}

// LogGateway is a ConfirmationGateway that records the snapshot in the log.
// It stands in for the real booking backend in development.
type LogGateway struct {
	log *logger.Logger
}

// NewLogGateway creates a LogGateway. A nil logger disables output.
func NewLogGateway(log *logger.Logger) *LogGateway {
	if log == nil {
		log = logger.Nop()
	}
	return &LogGateway{log: log}
}

// Confirm implements ConfirmationGateway.
func (g *LogGateway) Confirm(_ context.Context, booking ConfirmedBooking) error {
	g.log.Info().
		Str("session_id", booking.SessionID).
		Float64("total_price", booking.Booking.TotalPrice).
		Str("currency", booking.Booking.Currency).
		Int("passengers", len(booking.Booking.Passengers)).
		Msg("Booking confirmed")
	return nil
}

var _ ConfirmationGateway = (*LogGateway)(nil)
