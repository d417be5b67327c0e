// Package http provides the HTTP handler layer for the booking API.
// It handles request parsing, validation, response formatting, and error mapping.
package http

import (
	"context"
	"errors"

	"github.com/labstack/echo/v4"

	"github.com/skytrip/booking-engine/internal/adapter/http/response"
	"github.com/skytrip/booking-engine/internal/currency"
	"github.com/skytrip/booking-engine/internal/domain"
	"github.com/skytrip/booking-engine/internal/usecase"
)

// BookingHandler handles HTTP requests for booking session endpoints.
type BookingHandler struct {
	useCase   usecase.BookingUseCase
	addOns    domain.Catalog
	insurance domain.Catalog
	rates     currency.Table
}

// NewBookingHandler creates a BookingHandler. The catalogs and rate table
// back the read-only catalog endpoints and must be the same instances the
// use case prices against.
func NewBookingHandler(uc usecase.BookingUseCase, addOns, insurance domain.Catalog, rates currency.Table) *BookingHandler {
	return &BookingHandler{
		useCase:   uc,
		addOns:    addOns,
		insurance: insurance,
		rates:     rates,
	}
}

// CreateBooking handles POST /api/v1/bookings.
func (h *BookingHandler) CreateBooking(c echo.Context) error {
	s, err := h.useCase.Create(c.Request().Context())
	if err != nil {
		return h.handleError(c, err)
	}
	return response.Created(c, toSessionDTO(s))
}

// GetBooking handles GET /api/v1/bookings/:id.
func (h *BookingHandler) GetBooking(c echo.Context) error {
	s, err := h.useCase.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return h.handleError(c, err)
	}
	return response.OK(c, toSessionDTO(s))
}

// SetPrice handles PUT /api/v1/bookings/:id/price.
func (h *BookingHandler) SetPrice(c echo.Context) error {
	var req SetPriceRequest
	if err := c.Bind(&req); err != nil {
		return response.InvalidRequestBody(c)
	}
	if err := req.Validate(); err != nil {
		return h.handleValidationError(c, err)
	}

	s, err := h.useCase.SetBasePrice(c.Request().Context(), c.Param("id"), req.BasePrice, req.Currency)
	if err != nil {
		return h.handleError(c, err)
	}
	return response.OK(c, toSessionDTO(s))
}

// UpdateAddOns handles PUT /api/v1/bookings/:id/addons.
// Unknown add-on ids are accepted and contribute zero to the total.
func (h *BookingHandler) UpdateAddOns(c echo.Context) error {
	var req UpdateAddOnsRequest
	if err := c.Bind(&req); err != nil {
		return response.InvalidRequestBody(c)
	}

	s, err := h.useCase.UpdateAddOns(c.Request().Context(), c.Param("id"), req.AddOns)
	if err != nil {
		return h.handleError(c, err)
	}
	return response.OK(c, toSessionDTO(s))
}

// UpdateInsurance handles PUT /api/v1/bookings/:id/insurance.
func (h *BookingHandler) UpdateInsurance(c echo.Context) error {
	var req UpdateInsuranceRequest
	if err := c.Bind(&req); err != nil {
		return response.InvalidRequestBody(c)
	}

	s, err := h.useCase.UpdateInsurance(c.Request().Context(), c.Param("id"), req.Insurance)
	if err != nil {
		return h.handleError(c, err)
	}
	return response.OK(c, toSessionDTO(s))
}

// UpdatePassengers handles PUT /api/v1/bookings/:id/passengers.
func (h *BookingHandler) UpdatePassengers(c echo.Context) error {
	var req UpdatePassengersRequest
	if err := c.Bind(&req); err != nil {
		return response.InvalidRequestBody(c)
	}

	passengers := toDomainPassengers(req.Passengers)
	if err := domain.ValidatePassengerList(passengers); err != nil {
		return h.handleError(c, err)
	}

	s, err := h.useCase.UpdatePassengers(c.Request().Context(), c.Param("id"), passengers)
	if err != nil {
		return h.handleError(c, err)
	}
	return response.OK(c, toSessionDTO(s))
}

// SelectFlight handles PUT /api/v1/bookings/:id/flight.
func (h *BookingHandler) SelectFlight(c echo.Context) error {
	var req SelectFlightRequest
	if err := c.Bind(&req); err != nil {
		return response.InvalidRequestBody(c)
	}
	if err := req.Validate(); err != nil {
		return h.handleValidationError(c, err)
	}

	s, err := h.useCase.SelectFlight(c.Request().Context(), c.Param("id"), toDomainFlight(&req))
	if err != nil {
		return h.handleError(c, err)
	}
	return response.OK(c, toSessionDTO(s))
}

// ClearFlight handles DELETE /api/v1/bookings/:id/flight.
func (h *BookingHandler) ClearFlight(c echo.Context) error {
	s, err := h.useCase.ClearFlight(c.Request().Context(), c.Param("id"))
	if err != nil {
		return h.handleError(c, err)
	}
	return response.OK(c, toSessionDTO(s))
}

// Recalculate handles POST /api/v1/bookings/:id/recalculate.
func (h *BookingHandler) Recalculate(c echo.Context) error {
	s, err := h.useCase.Recalculate(c.Request().Context(), c.Param("id"))
	if err != nil {
		return h.handleError(c, err)
	}
	return response.OK(c, toSessionDTO(s))
}

// Reset handles POST /api/v1/bookings/:id/reset.
func (h *BookingHandler) Reset(c echo.Context) error {
	s, err := h.useCase.Reset(c.Request().Context(), c.Param("id"))
	if err != nil {
		return h.handleError(c, err)
	}
	return response.OK(c, toSessionDTO(s))
}

// Confirm handles POST /api/v1/bookings/:id/confirm.
func (h *BookingHandler) Confirm(c echo.Context) error {
	confirmed, err := h.useCase.Confirm(c.Request().Context(), c.Param("id"))
	if err != nil {
		return h.handleError(c, err)
	}
	return response.OK(c, toConfirmationDTO(confirmed))
}

// ListAddOns handles GET /api/v1/catalog/addons.
func (h *BookingHandler) ListAddOns(c echo.Context) error {
	return response.OK(c, toCatalogDTOs(h.addOns))
}

// ListInsurance handles GET /api/v1/catalog/insurance.
func (h *BookingHandler) ListInsurance(c echo.Context) error {
	return response.OK(c, toCatalogDTOs(h.insurance))
}

// ListCurrencies handles GET /api/v1/catalog/currencies.
func (h *BookingHandler) ListCurrencies(c echo.Context) error {
	return response.OK(c, toCurrencyDTOs(h.rates))
}

// Health handles GET /health.
func (h *BookingHandler) Health(c echo.Context) error {
	return response.Health(c)
}

// handleValidationError handles validation errors and returns a 400 response.
func (h *BookingHandler) handleValidationError(c echo.Context, err error) error {
	var validationErrs *ValidationErrors
	if errors.As(err, &validationErrs) {
		return response.ValidationError(c, validationErrs.ToMap())
	}
	return response.ValidationErrorWithMessage(c, err.Error())
}

// handleError maps domain errors to HTTP responses.
func (h *BookingHandler) handleError(c echo.Context, err error) error {
	switch {
	case errors.Is(err, domain.ErrSessionNotFound):
		return response.SessionNotFound(c)
	case errors.Is(err, domain.ErrInvalidRequest):
		return response.ValidationErrorWithMessage(c, err.Error())
	case errors.Is(err, domain.ErrStoreUnavailable):
		return response.StoreUnavailable(c)
	case errors.Is(err, domain.ErrConfirmationFailed):
		return response.ConfirmationFailed(c)
	case errors.Is(err, context.DeadlineExceeded):
		return response.GatewayTimeout(c)
	default:
		return response.InternalServerError(c)
	}
}
