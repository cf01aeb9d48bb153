// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package middleware

import (
	"net/http"
	"sync"
	"time"

	"golang.org/x/time/rate"
)

// clientIdleTTL is how long an idle client's limiter is kept
const clientIdleTTL = 3 * time.Minute

type client struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// RateLimiter hands out one token bucket per client IP.
type RateLimiter struct {
	rps        rate.Limit
	burst      int
	trustProxy bool

	mu        sync.Mutex
	clients   map[string]*client
	lastSweep time.Time
	now       func() time.Time
}

// NewRateLimiter returns a limiter allowing rps requests per second per
// client with the given burst. rps <= 0 disables limiting. Clients are
// keyed by GetClientIP(r, trustProxy).
func NewRateLimiter(rps float64, burst int, trustProxy bool) *RateLimiter {
	return &RateLimiter{
		rps:        rate.Limit(rps),
		burst:      burst,
		trustProxy: trustProxy,
		clients:    make(map[string]*client),
		now:        time.Now,
	}
}

// Allow reports whether a request from ip may proceed
func (l *RateLimiter) Allow(ip string) bool {
	if l.rps <= 0 {
		return true
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	if now.Sub(l.lastSweep) > clientIdleTTL {
		for key, c := range l.clients {
			if now.Sub(c.lastSeen) > clientIdleTTL {
				delete(l.clients, key)
			}
		}
		l.lastSweep = now
	}

	c, ok := l.clients[ip]
	if !ok {
		c = &client{limiter: rate.NewLimiter(l.rps, l.burst)}
		l.clients[ip] = c
	}
	c.lastSeen = now

	return c.limiter.AllowN(now, 1)
}

// Middleware rejects requests over the limit with 429
func (l *RateLimiter) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !l.Allow(GetClientIP(r, l.trustProxy)) {
			w.Header().Set("Retry-After", "1")
			ErrorResponse(w, http.StatusTooManyRequests, "rate limit exceeded")
			return
		}
		next.ServeHTTP(w, r)
	})
}
