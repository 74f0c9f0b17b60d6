package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"task-assistant/pkg/response"
)

// Create godoc
// @Summary     Create a task
// @Description Creates a pending task owned by the caller.
// @Tags        Tasks
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       body body createReq true "Task data"
// @Success     201  {object} taskEnvelope
// @Failure     400  {object} response.ErrorResp "Bad Request"
// @Failure     401  {object} response.ErrorResp "Unauthorized"
// @Failure     500  {object} response.ErrorResp "Internal Server Error"
// @Router      /api/v1/tasks [POST]
func (h *handler) Create(c *gin.Context) {
	ctx := c.Request.Context()

	sc, req, err := h.processCreateReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.Create(ctx, sc, req.toInput())
	if err != nil {
		h.l.Warnf(ctx, "internal.task.delivery.http.Create: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.Created(c, h.newTaskEnvelope(output.Task))
}

// List godoc
// @Summary     List tasks
// @Description Returns the caller's tasks with optional filters and pagination.
// @Tags        Tasks
// @Produce     json
// @Security    BearerAuth
// @Param       status     query string false "pending or done"
// @Param       due_filter query string false "today, overdue or upcoming"
// @Param       search     query string false "Case-insensitive match on title or description"
// @Param       timezone   query string false "IANA zone used by the today filter (default UTC)"
// @Param       order_by   query string false "created_at, due_at, priority or title"
// @Param       limit      query int    false "Page size (default 50)"
// @Param       offset     query int    false "Page offset"
// @Success     200 {object} listResp
// @Failure     400 {object} response.ErrorResp "Bad Request"
// @Failure     401 {object} response.ErrorResp "Unauthorized"
// @Failure     500 {object} response.ErrorResp "Internal Server Error"
// @Router      /api/v1/tasks [GET]
func (h *handler) List(c *gin.Context) {
	ctx := c.Request.Context()

	sc, req, err := h.processListReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.List(ctx, sc, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "internal.task.delivery.http.List: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newListResp(output))
}

// Detail godoc
// @Summary     Get a task
// @Tags        Tasks
// @Produce     json
// @Security    BearerAuth
// @Param       id path string true "Task ID"
// @Success     200 {object} taskEnvelope
// @Failure     404 {object} response.ErrorResp "Not Found"
// @Router      /api/v1/tasks/{id} [GET]
func (h *handler) Detail(c *gin.Context) {
	ctx := c.Request.Context()

	sc, err := h.processScope(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.Detail(ctx, sc, c.Param("id"))
	if err != nil {
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newTaskEnvelope(output.Task))
}

// Update godoc
// @Summary     Update a task
// @Description Partial update. Omitted fields are left unchanged.
// @Tags        Tasks
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id   path string    true "Task ID"
// @Param       body body updateReq true "Fields to update"
// @Success     200 {object} taskEnvelope
// @Failure     400 {object} response.ErrorResp "Bad Request"
// @Failure     404 {object} response.ErrorResp "Not Found"
// @Failure     500 {object} response.ErrorResp "Internal Server Error"
// @Router      /api/v1/tasks/{id} [PATCH]
func (h *handler) Update(c *gin.Context) {
	ctx := c.Request.Context()

	sc, req, err := h.processUpdateReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.Update(ctx, sc, req.toInput())
	if err != nil {
		h.l.Warnf(ctx, "internal.task.delivery.http.Update: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newTaskEnvelope(output.Task))
}

// Delete godoc
// @Summary     Delete a task
// @Tags        Tasks
// @Security    BearerAuth
// @Param       id path string true "Task ID"
// @Success     204
// @Failure     404 {object} response.ErrorResp "Not Found"
// @Failure     500 {object} response.ErrorResp "Internal Server Error"
// @Router      /api/v1/tasks/{id} [DELETE]
func (h *handler) Delete(c *gin.Context) {
	ctx := c.Request.Context()

	sc, err := h.processScope(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	if err := h.uc.Delete(ctx, sc, c.Param("id")); err != nil {
		h.l.Warnf(ctx, "internal.task.delivery.http.Delete: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	c.Status(http.StatusNoContent)
}
