package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"task-assistant/internal/model"
	pkgErrors "task-assistant/pkg/errors"
)

func (h *handler) processScope(c *gin.Context) (model.Scope, error) {
	sc, ok := model.GetScopeFromContext(c.Request.Context())
	if !ok {
		return model.Scope{}, pkgErrors.ErrUnauthorized
	}
	return sc, nil
}

func (h *handler) processCreateReq(c *gin.Context) (model.Scope, createReq, error) {
	var req createReq
	sc, err := h.processScope(c)
	if err != nil {
		return sc, req, err
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		return sc, req, pkgErrors.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return sc, req, nil
}

func (h *handler) processListReq(c *gin.Context) (model.Scope, listReq, error) {
	var req listReq
	sc, err := h.processScope(c)
	if err != nil {
		return sc, req, err
	}
	if err := c.ShouldBindQuery(&req); err != nil {
		return sc, req, pkgErrors.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return sc, req, req.validate()
}

func (h *handler) processUpdateReq(c *gin.Context) (model.Scope, updateReq, error) {
	var req updateReq
	sc, err := h.processScope(c)
	if err != nil {
		return sc, req, err
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		return sc, req, pkgErrors.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	req.ID = c.Param("id")
	return sc, req, nil
}
