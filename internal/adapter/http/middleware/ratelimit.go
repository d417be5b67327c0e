package middleware

import (
	"sync"

	"github.com/labstack/echo/v4"
	"golang.org/x/time/rate"

	"github.com/skytrip/booking-engine/internal/adapter/http/response"
)

// RateLimitConfig holds per-client token bucket settings.
type RateLimitConfig struct {
	RequestsPerSecond float64
	Burst             int
}

// DefaultRateLimitConfig returns the default rate limit settings.
func DefaultRateLimitConfig() RateLimitConfig {
	return RateLimitConfig{
		RequestsPerSecond: 20,
		Burst:             40,
	}
}

// clientLimiter hands out one token bucket per client IP.
type clientLimiter struct {
	mu       sync.Mutex
	limiters map[string]*rate.Limiter
	cfg      RateLimitConfig
}

func (cl *clientLimiter) get(ip string) *rate.Limiter {
	cl.mu.Lock()
	defer cl.mu.Unlock()

	if limiter, ok := cl.limiters[ip]; ok {
		return limiter
	}

	limiter := rate.NewLimiter(rate.Limit(cl.cfg.RequestsPerSecond), cl.cfg.Burst)
	cl.limiters[ip] = limiter
	return limiter
}

// RateLimit returns middleware that applies a per-client-IP token bucket.
// Requests over the limit get a 429 without reaching the handler.
func RateLimit(cfg RateLimitConfig) echo.MiddlewareFunc {
	cl := &clientLimiter{
		limiters: make(map[string]*rate.Limiter),
		cfg:      cfg,
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if !cl.get(c.RealIP()).Allow() {
				return response.TooManyRequests(c)
			}
			return next(c)
		}
	}
}
