package middleware

import (
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
)

// Setup registers all middleware on the Echo instance in the correct order:
//  1. RequestID - first, so every later log line carries the ID
//  2. RequestLogger - logs all requests with request ID
//  3. RateLimit - rejects over-limit clients before doing work
//  4. Recover - catches panics and returns 500 (wraps handlers)
//
// Call this before registering routes.
func Setup(e *echo.Echo, log zerolog.Logger, rl RateLimitConfig) {
	e.Use(RequestID())
	e.Use(RequestLogger(log))
	e.Use(RateLimit(rl))
	e.Use(Recover(log))
}
