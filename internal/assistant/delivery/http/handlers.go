package http

import (
	"github.com/gin-gonic/gin"

	"task-assistant/pkg/response"
)

// Chat godoc
// @Summary     Talk to the task assistant
// @Description Interprets a free-text message, applies the task operations the assistant proposes and returns the reply with one result per operation.
// @Tags        Assistant
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       body body     chatReq  true "Message, optional history and time zone"
// @Success     200  {object} chatResp
// @Failure     400  {object} response.ErrorResp "Bad Request"
// @Failure     401  {object} response.ErrorResp "Unauthorized"
// @Failure     429  {object} response.ErrorResp "Too Many Requests"
// @Failure     500  {object} response.ErrorResp "Internal Server Error"
// @Router      /api/v1/chat [POST]
func (h *handler) Chat(c *gin.Context) {
	ctx := c.Request.Context()

	sc, req, err := h.processChatReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.Chat(ctx, sc, req.toInput())
	if err != nil {
		h.l.Warnf(ctx, "internal.assistant.delivery.http.Chat: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newChatResp(output))
}
