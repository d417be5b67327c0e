package domain

import "strconv"

// FlightSegment is a single leg of a selected flight offer.
// Segments arrive pre-normalized from the external search step and are
// immutable once attached to a selection.
type FlightSegment struct {
	// Airline is the operating airline name (e.g., "Garuda Indonesia")
	Airline string `json:"airline"`

	// AirlineCode is the optional IATA airline code (e.g., "GA")
	AirlineCode string `json:"airlineCode,omitempty"`

	// FlightNumber is the airline's flight number (e.g., "GA-123")
	FlightNumber string `json:"flightNumber"`

	// Origin is the IATA code of the departure airport
	Origin string `json:"origin"`

	// Destination is the IATA code of the arrival airport
	Destination string `json:"destination"`

	// DepartureTime is the localized 12-hour clock string (e.g., "8:55 AM")
	DepartureTime string `json:"departureTime"`

	// ArrivalTime is the localized 12-hour clock string (e.g., "11:25:00 PM")
	ArrivalTime string `json:"arrivalTime"`

	// DurationMinutes is the segment duration in minutes
	DurationMinutes int `json:"duration"`

	// Terminal is the optional departure terminal identifier
	Terminal string `json:"terminal,omitempty"`

	// Aircraft is the optional aircraft type (e.g., "A320")
	Aircraft string `json:"aircraft,omitempty"`

	// Status is the optional schedule status (e.g., "scheduled")
	Status string `json:"status,omitempty"`
}

// FormatMinutes renders a minute count as a compact duration string
// ("2h 30m", "2h", "45m").
func FormatMinutes(totalMinutes int) string {
	hours := totalMinutes / 60
	mins := totalMinutes % 60

	switch {
	case hours > 0 && mins > 0:
		return strconv.Itoa(hours) + "h " + strconv.Itoa(mins) + "m"
	case hours > 0:
		return strconv.Itoa(hours) + "h"
	default:
		return strconv.Itoa(mins) + "m"
	}
}
