package http

import "time"

// SetPriceRequest is the body for PUT /bookings/:id/price.
type SetPriceRequest struct {
	// BasePrice is the fare before add-ons, in Currency
	BasePrice float64 `json:"basePrice"`

	// Currency is the ISO 4217 code (e.g., "USD", "IDR")
	Currency string `json:"currency"`
}

// UpdateAddOnsRequest is the body for PUT /bookings/:id/addons.
type UpdateAddOnsRequest struct {
	// AddOns replaces the selected add-on id set
	AddOns []string `json:"addOns"`
}

// UpdateInsuranceRequest is the body for PUT /bookings/:id/insurance.
type UpdateInsuranceRequest struct {
	// Insurance is the selected tier id; null clears the selection
	Insurance *string `json:"insurance"`
}

// PassengerDTO mirrors domain.PassengerInfo on the wire.
type PassengerDTO struct {
	FirstName       string `json:"firstName"`
	LastName        string `json:"lastName"`
	DateOfBirth     string `json:"dateOfBirth"`
	Gender          string `json:"gender"`
	Type            string `json:"type"`
	PassportNumber  string `json:"passportNumber,omitempty"`
	Nationality     string `json:"nationality,omitempty"`
	Email           string `json:"email,omitempty"`
	Phone           string `json:"phone,omitempty"`
	SpecialRequests string `json:"specialRequests,omitempty"`
}

// UpdatePassengersRequest is the body for PUT /bookings/:id/passengers.
type UpdatePassengersRequest struct {
	Passengers []PassengerDTO `json:"passengers"`
}

// SegmentDTO is one flight leg in a selection request.
type SegmentDTO struct {
	Airline       string `json:"airline"`
	AirlineCode   string `json:"airlineCode,omitempty"`
	FlightNumber  string `json:"flightNumber"`
	Origin        string `json:"origin"`
	Destination   string `json:"destination"`
	DepartureTime string `json:"departureTime"`
	ArrivalTime   string `json:"arrivalTime"`
	Duration      int    `json:"duration"`
	Terminal      string `json:"terminal,omitempty"`
	Aircraft      string `json:"aircraft,omitempty"`
	Status        string `json:"status,omitempty"`
}

// SelectFlightRequest is the body for PUT /bookings/:id/flight.
type SelectFlightRequest struct {
	Segments      []SegmentDTO `json:"segments"`
	Price         float64      `json:"price"`
	TotalPrice    float64      `json:"totalPrice"`
	Currency      string       `json:"currency"`
	CabinClass    string       `json:"cabinClass"`
	TotalDuration int          `json:"totalDuration"`
}

// FlightDTO is the selected flight in session snapshots.
type FlightDTO struct {
	Segments          []SegmentDTO `json:"segments"`
	IsLayover         bool         `json:"isLayover"`
	LayoverTimes      []int        `json:"layoverTimes"`
	Price             float64      `json:"price"`
	TotalPrice        float64      `json:"totalPrice"`
	Currency          string       `json:"currency"`
	CabinClass        string       `json:"cabinClass"`
	TotalDuration     int          `json:"totalDuration"`
	FormattedDuration string       `json:"formattedDuration"`
}

// SessionDTO is the full booking session snapshot returned by every
// session endpoint.
type SessionDTO struct {
	ID                string         `json:"id"`
	Passengers        []PassengerDTO `json:"passengers"`
	SelectedAddOns    []string       `json:"selectedAddOns"`
	SelectedInsurance *string        `json:"selectedInsurance"`
	BasePrice         float64        `json:"basePrice"`
	Currency          string         `json:"currency"`
	AddOnsTotal       float64        `json:"addOnsTotal"`
	TotalPrice        float64        `json:"totalPrice"`
	FormattedTotal    string         `json:"formattedTotal"`
	Flight            *FlightDTO     `json:"flight,omitempty"`
	CreatedAt         time.Time      `json:"createdAt"`
	UpdatedAt         time.Time      `json:"updatedAt"`
}

// ConfirmationDTO is returned by POST /bookings/:id/confirm.
type ConfirmationDTO struct {
	SessionID      string         `json:"sessionId"`
	Passengers     []PassengerDTO `json:"passengers"`
	SelectedAddOns []string       `json:"selectedAddOns"`
	Insurance      *string        `json:"insurance"`
	TotalPrice     float64        `json:"totalPrice"`
	Currency       string         `json:"currency"`
	FormattedTotal string         `json:"formattedTotal"`
	Flight         *FlightDTO     `json:"flight,omitempty"`
	ConfirmedAt    time.Time      `json:"confirmedAt"`
}

// CatalogItemDTO is one catalog entry in catalog listings.
type CatalogItemDTO struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	BasePrice   float64 `json:"basePrice"`
}

// CurrencyDTO is one conversion table entry.
type CurrencyDTO struct {
	Code       string  `json:"code"`
	Multiplier float64 `json:"multiplier"`
}
