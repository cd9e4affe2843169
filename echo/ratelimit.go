package echo

import (
	"net/http"
	"sync"

	"github.com/fwojciec/profscrape"
	"github.com/labstack/echo/v4"
	"golang.org/x/time/rate"
)

// ClientLimiter provides per-client rate limiting using token buckets.
// Each client address gets its own limiter, so one busy client cannot
// starve the others.
type ClientLimiter struct {
	mu       sync.Mutex
	limiters map[string]*rate.Limiter
	rps      float64
	burst    int
}

// NewClientLimiter creates a ClientLimiter allowing rps requests per second
// per client with the given burst. A burst below 1 is treated as 1.
func NewClientLimiter(rps float64, burst int) *ClientLimiter {
	if burst < 1 {
		burst = 1
	}
	return &ClientLimiter{
		limiters: make(map[string]*rate.Limiter),
		rps:      rps,
		burst:    burst,
	}
}

// Allow reports whether client may make a request now.
func (l *ClientLimiter) Allow(client string) bool {
	l.mu.Lock()
	limiter, ok := l.limiters[client]
	if !ok {
		limiter = rate.NewLimiter(rate.Limit(l.rps), l.burst)
		l.limiters[client] = limiter
	}
	l.mu.Unlock()

	return limiter.Allow()
}

// Middleware rejects requests over the client's limit with 429.
// The health endpoint is never limited.
func (l *ClientLimiter) Middleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if c.Path() == "/health" || l.Allow(c.RealIP()) {
				return next(c)
			}
			return c.JSON(http.StatusTooManyRequests, errorResponse{
				Code:  profscrape.EINVALID,
				Error: "rate limit exceeded, retry later",
			})
		}
	}
}
