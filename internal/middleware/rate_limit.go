package middleware

import (
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/hashicorp/golang-lru/v2/expirable"
	"golang.org/x/time/rate"

	"task-assistant/internal/model"
	"task-assistant/pkg/response"
)

const (
	maxLimiters = 10000
	limiterTTL  = 5 * time.Minute
)

// rateLimiter keeps one token bucket per key. Idle buckets expire.
type rateLimiter struct {
	mu       sync.Mutex
	limiters *expirable.LRU[string, *rate.Limiter]
	rate     rate.Limit
	burst    int
}

func newRateLimiter(requestsPerMin, burst int) *rateLimiter {
	if requestsPerMin <= 0 {
		return nil
	}
	if burst <= 0 {
		burst = max(requestsPerMin/10, 1)
	}
	return &rateLimiter{
		limiters: expirable.NewLRU[string, *rate.Limiter](maxLimiters, nil, limiterTTL),
		rate:     rate.Limit(float64(requestsPerMin) / 60.0),
		burst:    burst,
	}
}

func (rl *rateLimiter) allow(key string) bool {
	return rl.limiterFor(key).Allow()
}

// limiterFor returns the bucket for key, creating it under mu so concurrent
// first requests share one bucket.
func (rl *rateLimiter) limiterFor(key string) *rate.Limiter {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	limiter, ok := rl.limiters.Get(key)
	if !ok {
		limiter = rate.NewLimiter(rl.rate, rl.burst)
		rl.limiters.Add(key, limiter)
	}
	return limiter
}

// RateLimit throttles requests per authenticated user, falling back to the
// client IP. It must run after Auth to key by user. A non-positive
// requests-per-minute setting disables it.
func (m Middleware) RateLimit() gin.HandlerFunc {
	return func(c *gin.Context) {
		if m.limiter == nil {
			c.Next()
			return
		}

		key := c.ClientIP()
		if sc, ok := model.GetScopeFromContext(c.Request.Context()); ok {
			key = "user:" + sc.UserID
		}

		if !m.limiter.allow(key) {
			m.l.Warnf(c.Request.Context(), "internal.middleware.RateLimit: limit exceeded for %s", key)
			response.TooManyRequests(c)
			return
		}

		c.Next()
	}
}
