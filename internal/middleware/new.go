package middleware

import (
	"time"

	"campus-assistant/pkg/log"
)

// RateLimitConfig controls per-client request limiting.
type RateLimitConfig struct {
	RequestsPerMin int // <= 0 disables rate limiting
	MaxClients     int
	TTL            time.Duration
}

// Middleware bundles the gin middlewares used by the HTTP server.
type Middleware struct {
	l       log.Logger
	limiter *rateLimiter
}

// New creates the middleware set.
func New(l log.Logger, rl RateLimitConfig) Middleware {
	m := Middleware{l: l}
	if rl.RequestsPerMin > 0 {
		m.limiter = newRateLimiter(rl)
	}
	return m
}
