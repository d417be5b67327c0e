package http

import (
	"github.com/skytrip/booking-engine/internal/currency"
	"github.com/skytrip/booking-engine/internal/domain"
	"github.com/skytrip/booking-engine/internal/session"
	"github.com/skytrip/booking-engine/internal/usecase"
)

// toDomainPassengers converts wire passengers to domain passengers.
func toDomainPassengers(dtos []PassengerDTO) []domain.PassengerInfo {
	passengers := make([]domain.PassengerInfo, 0, len(dtos))
	for _, d := range dtos {
		passengers = append(passengers, domain.PassengerInfo{
			FirstName:       d.FirstName,
			LastName:        d.LastName,
			DateOfBirth:     d.DateOfBirth,
			Gender:          domain.Gender(d.Gender),
			Type:            domain.PassengerType(d.Type),
			PassportNumber:  d.PassportNumber,
			Nationality:     d.Nationality,
			Email:           d.Email,
			Phone:           d.Phone,
			SpecialRequests: d.SpecialRequests,
		})
	}
	return passengers
}

// toPassengerDTOs converts domain passengers to wire passengers.
func toPassengerDTOs(passengers []domain.PassengerInfo) []PassengerDTO {
	dtos := make([]PassengerDTO, 0, len(passengers))
	for _, p := range passengers {
		dtos = append(dtos, PassengerDTO{
			FirstName:       p.FirstName,
			LastName:        p.LastName,
			DateOfBirth:     p.DateOfBirth,
			Gender:          string(p.Gender),
			Type:            string(p.Type),
			PassportNumber:  p.PassportNumber,
			Nationality:     p.Nationality,
			Email:           p.Email,
			Phone:           p.Phone,
			SpecialRequests: p.SpecialRequests,
		})
	}
	return dtos
}

// toDomainFlight converts a selection request to the domain flight.
// Layover annotations are left empty; the use case derives them.
func toDomainFlight(r *SelectFlightRequest) *domain.SelectedFlight {
	segments := make([]domain.FlightSegment, 0, len(r.Segments))
	for _, s := range r.Segments {
		segments = append(segments, domain.FlightSegment{
			Airline:         s.Airline,
			AirlineCode:     s.AirlineCode,
			FlightNumber:    s.FlightNumber,
			Origin:          s.Origin,
			Destination:     s.Destination,
			DepartureTime:   s.DepartureTime,
			ArrivalTime:     s.ArrivalTime,
			DurationMinutes: s.Duration,
			Terminal:        s.Terminal,
			Aircraft:        s.Aircraft,
			Status:          s.Status,
		})
	}

	return &domain.SelectedFlight{
		Segments:             segments,
		Price:                r.Price,
		TotalPrice:           r.TotalPrice,
		Currency:             r.Currency,
		CabinClass:           r.CabinClass,
		TotalDurationMinutes: r.TotalDuration,
	}
}

// toFlightDTO converts the domain flight to its wire form.
func toFlightDTO(f *domain.SelectedFlight) *FlightDTO {
	if f == nil {
		return nil
	}

	segments := make([]SegmentDTO, 0, len(f.Segments))
	for _, s := range f.Segments {
		segments = append(segments, SegmentDTO{
			Airline:       s.Airline,
			AirlineCode:   s.AirlineCode,
			FlightNumber:  s.FlightNumber,
			Origin:        s.Origin,
			Destination:   s.Destination,
			DepartureTime: s.DepartureTime,
			ArrivalTime:   s.ArrivalTime,
			Duration:      s.DurationMinutes,
			Terminal:      s.Terminal,
			Aircraft:      s.Aircraft,
			Status:        s.Status,
		})
	}

	return &FlightDTO{
		Segments:          segments,
		IsLayover:         f.IsLayover,
		LayoverTimes:      f.LayoverTimes,
		Price:             f.Price,
		TotalPrice:        f.TotalPrice,
		Currency:          f.Currency,
		CabinClass:        f.CabinClass,
		TotalDuration:     f.TotalDurationMinutes,
		FormattedDuration: domain.FormatMinutes(f.TotalDurationMinutes),
	}
}

// toSessionDTO builds the session snapshot returned by every endpoint.
func toSessionDTO(s *session.Session) *SessionDTO {
	b := s.Booking
	return &SessionDTO{
		ID:                s.ID,
		Passengers:        toPassengerDTOs(b.Passengers),
		SelectedAddOns:    b.SelectedAddOns,
		SelectedInsurance: b.SelectedInsurance,
		BasePrice:         b.BasePrice,
		Currency:          b.Currency,
		AddOnsTotal:       b.AddOnsTotal,
		TotalPrice:        b.TotalPrice,
		FormattedTotal:    currency.Format(b.TotalPrice, b.Currency),
		Flight:            toFlightDTO(s.Flight),
		CreatedAt:         s.CreatedAt,
		UpdatedAt:         s.UpdatedAt,
	}
}

// toConfirmationDTO builds the finalized snapshot response.
func toConfirmationDTO(c *usecase.ConfirmedBooking) *ConfirmationDTO {
	return &ConfirmationDTO{
		SessionID:      c.SessionID,
		Passengers:     toPassengerDTOs(c.Booking.Passengers),
		SelectedAddOns: c.Booking.SelectedAddOns,
		Insurance:      c.Booking.SelectedInsurance,
		TotalPrice:     c.Booking.TotalPrice,
		Currency:       c.Booking.Currency,
		FormattedTotal: currency.Format(c.Booking.TotalPrice, c.Booking.Currency),
		Flight:         toFlightDTO(c.Flight),
		ConfirmedAt:    c.ConfirmedAt,
	}
}

// toCatalogDTOs converts a catalog to its wire form.
func toCatalogDTOs(cat domain.Catalog) []CatalogItemDTO {
	dtos := make([]CatalogItemDTO, 0, len(cat))
	for _, item := range cat {
		dtos = append(dtos, CatalogItemDTO{
			ID:          item.ID,
			Name:        item.Name,
			Description: item.Description,
			BasePrice:   item.BasePrice,
		})
	}
	return dtos
}

// toCurrencyDTOs converts the conversion table to its wire form, sorted by code.
func toCurrencyDTOs(table currency.Table) []CurrencyDTO {
	dtos := make([]CurrencyDTO, 0, len(table))
	for _, code := range table.Codes() {
		dtos = append(dtos, CurrencyDTO{Code: code, Multiplier: table[code]})
	}
	return dtos
}
