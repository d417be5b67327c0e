package http

import (
	"github.com/labstack/echo/v4"
)

// RegisterRoutes registers all booking API routes.
// It creates a versioned API group and attaches the handler methods.
func RegisterRoutes(e *echo.Echo, h *BookingHandler) {
	// Health check endpoint (no version prefix)
	e.GET("/health", h.Health)

	api := e.Group("/api/v1")

	bookings := api.Group("/bookings")
	bookings.POST("", h.CreateBooking)
	bookings.GET("/:id", h.GetBooking)
	bookings.PUT("/:id/price", h.SetPrice)
	bookings.PUT("/:id/addons", h.UpdateAddOns)
	bookings.PUT("/:id/insurance", h.UpdateInsurance)
	bookings.PUT("/:id/passengers", h.UpdatePassengers)
	bookings.PUT("/:id/flight", h.SelectFlight)
	bookings.DELETE("/:id/flight", h.ClearFlight)
	bookings.POST("/:id/recalculate", h.Recalculate)
	bookings.POST("/:id/reset", h.Reset)
	bookings.POST("/:id/confirm", h.Confirm)

	catalog := api.Group("/catalog")
	catalog.GET("/addons", h.ListAddOns)
	catalog.GET("/insurance", h.ListInsurance)
	catalog.GET("/currencies", h.ListCurrencies)
}
