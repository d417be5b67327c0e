// Package response provides standardized HTTP response builders for the
// booking API. It centralizes response formatting so every endpoint answers
// in the same shape.
package response

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// Response is the standardized API response envelope.
type Response struct {
	// Success indicates whether the request was successful
	Success bool `json:"success"`

	// Data contains the response payload (for successful responses)
	Data interface{} `json:"data,omitempty"`

	// Error contains error details (for error responses)
	Error *ErrorDetail `json:"error,omitempty"`
}

// ErrorDetail contains structured error information.
type ErrorDetail struct {
	// Code is a machine-readable error code
	Code string `json:"code"`

	// Message is a human-readable error message
	Message string `json:"message"`

	// Details contains field-specific error details (for validation errors)
	Details map[string]string `json:"details,omitempty"`
}

// Error codes used in API responses.
const (
	CodeInvalidRequest     = "invalid_request"
	CodeValidationError    = "validation_error"
	CodeNotFound           = "not_found"
	CodeServiceUnavailable = "service_unavailable"
	CodeConfirmationFailed = "confirmation_failed"
	CodeTimeout            = "timeout"
	CodeRateLimited        = "rate_limited"
	CodeInternalError      = "internal_error"
)

// Error messages used in API responses.
const (
	MsgInvalidRequestBody = "Failed to parse request body"
	MsgValidationFailed   = "Request validation failed"
	MsgSessionNotFound    = "Booking session not found or expired"
	MsgStoreUnavailable   = "Session store is currently unavailable"
	MsgConfirmationFailed = "Booking could not be confirmed"
	MsgTimeout            = "Request timed out"
	MsgTooManyRequests    = "Too many requests"
	MsgInternalError      = "An unexpected error occurred"
)

// OK writes a 200 OK envelope with the given data.
func OK(c echo.Context, data interface{}) error {
	return c.JSON(http.StatusOK, &Response{Success: true, Data: data})
}

// Created writes a 201 Created envelope with the given data.
func Created(c echo.Context, data interface{}) error {
	return c.JSON(http.StatusCreated, &Response{Success: true, Data: data})
}

// NoContent writes a 204 No Content response.
func NoContent(c echo.Context) error {
	return c.NoContent(http.StatusNoContent)
}

// HealthResponse represents the health check response.
type HealthResponse struct {
	Status string `json:"status"`
}

// Health writes a health check response.
func Health(c echo.Context) error {
	return c.JSON(http.StatusOK, &HealthResponse{Status: "ok"})
}
