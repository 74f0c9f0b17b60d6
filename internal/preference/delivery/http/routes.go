package http

import (
	"github.com/gin-gonic/gin"

	"task-assistant/internal/middleware"
)

// RegisterRoutes maps /preferences under rg.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	prefs := rg.Group("/preferences", mw.Auth())
	{
		prefs.GET("", h.Detail)
		prefs.PUT("", h.Update)
	}
}
