package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"task-assistant/internal/model"
	pkgErrors "task-assistant/pkg/errors"
)

func (h *handler) processChatReq(c *gin.Context) (model.Scope, chatReq, error) {
	var req chatReq
	sc, ok := model.GetScopeFromContext(c.Request.Context())
	if !ok {
		return sc, req, pkgErrors.ErrUnauthorized
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		return sc, req, pkgErrors.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return sc, req, nil
}
