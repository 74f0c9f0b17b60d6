package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"task-assistant/pkg/log"
)

const HeaderRequestID = "X-Request-ID"

const maxRequestIDLen = 128

// RequestID propagates the caller's X-Request-ID or generates one, and
// attaches it to the request context for logging.
func (m Middleware) RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(HeaderRequestID)
		if id == "" || len(id) > maxRequestIDLen {
			id = uuid.NewString()
		}

		c.Request = c.Request.WithContext(log.SetRequestID(c.Request.Context(), id))
		c.Header(HeaderRequestID, id)

		c.Next()
	}
}
