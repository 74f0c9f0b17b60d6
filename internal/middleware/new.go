package middleware

import (
	"task-assistant/config"
	"task-assistant/pkg/log"
	"task-assistant/pkg/scope"
)

type Middleware struct {
	l            log.Logger
	scopeManager scope.Manager
	limiter      *rateLimiter
}

func New(l log.Logger, scopeManager scope.Manager, rl config.RateLimitConfig) Middleware {
	return Middleware{
		l:            l,
		scopeManager: scopeManager,
		limiter:      newRateLimiter(rl.RequestsPerMinute, rl.Burst),
	}
}
