package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"task-assistant/internal/model"
	pkgErrors "task-assistant/pkg/errors"
	"task-assistant/pkg/response"
)

// Detail godoc
// @Summary     Get reminder preferences
// @Tags        Preferences
// @Produce     json
// @Security    BearerAuth
// @Success     200 {object} preferenceResp
// @Failure     401 {object} response.ErrorResp "Unauthorized"
// @Failure     404 {object} response.ErrorResp "Not Found"
// @Router      /api/v1/preferences [GET]
func (h *handler) Detail(c *gin.Context) {
	ctx := c.Request.Context()

	sc, ok := model.GetScopeFromContext(ctx)
	if !ok {
		response.Unauthorized(c)
		return
	}

	out, err := h.uc.Detail(ctx, sc)
	if err != nil {
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newPreferenceResp(out.Preference))
}

// Update godoc
// @Summary     Update reminder preferences
// @Description Partial update of lead time, enabled flag, recipient and email templates.
// @Tags        Preferences
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       body body updateReq true "Fields to update"
// @Success     200 {object} preferenceResp
// @Failure     400 {object} response.ErrorResp "Bad Request"
// @Failure     401 {object} response.ErrorResp "Unauthorized"
// @Failure     404 {object} response.ErrorResp "Not Found"
// @Router      /api/v1/preferences [PUT]
func (h *handler) Update(c *gin.Context) {
	ctx := c.Request.Context()

	sc, ok := model.GetScopeFromContext(ctx)
	if !ok {
		response.Unauthorized(c)
		return
	}

	var req updateReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, pkgErrors.NewHTTPError(http.StatusBadRequest, err.Error()))
		return
	}

	out, err := h.uc.Update(ctx, sc, req.toInput())
	if err != nil {
		h.l.Warnf(ctx, "internal.preference.delivery.http.Update: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newPreferenceResp(out.Preference))
}
