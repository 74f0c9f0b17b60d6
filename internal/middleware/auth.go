package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"task-assistant/internal/model"
	"task-assistant/pkg/log"
	"task-assistant/pkg/response"
)

const bearerPrefix = "Bearer "

// Auth verifies the bearer token and stores the caller's scope in the
// request context. Requests without a valid token get 401.
func (m Middleware) Auth() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()

		token := extractBearer(c.GetHeader("Authorization"))
		if token == "" {
			response.Unauthorized(c)
			return
		}

		payload, err := m.scopeManager.Verify(token)
		if err != nil {
			m.l.Warnf(ctx, "internal.middleware.Auth.Verify: %v", err)
			response.Unauthorized(c)
			return
		}

		ctx = model.SetScopeToContext(ctx, model.Scope{
			UserID: payload.UserID,
			Email:  payload.Email,
		})
		ctx = log.SetUserID(ctx, payload.UserID)
		c.Request = c.Request.WithContext(ctx)

		c.Next()
	}
}

func extractBearer(header string) string {
	if len(header) <= len(bearerPrefix) || !strings.EqualFold(header[:len(bearerPrefix)], bearerPrefix) {
		return ""
	}
	return strings.TrimSpace(header[len(bearerPrefix):])
}
