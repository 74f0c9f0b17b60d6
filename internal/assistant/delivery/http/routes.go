package http

import (
	"github.com/gin-gonic/gin"

	"task-assistant/internal/middleware"
)

// RegisterRoutes maps /chat under rg behind auth and the per-user rate limit.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	rg.POST("/chat", mw.Auth(), mw.RateLimit(), h.Chat)
}
