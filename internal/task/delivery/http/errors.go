package http

import (
	"errors"
	"net/http"

	"task-assistant/internal/task"
	pkgErrors "task-assistant/pkg/errors"
)

var errInvalidTimezone = pkgErrors.NewHTTPError(http.StatusBadRequest, "invalid timezone")

// mapError translates use-case errors into HTTP errors from pkg/errors.
func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, task.ErrTaskNotFound):
		return pkgErrors.NewHTTPError(http.StatusNotFound, "task not found")
	case errors.Is(err, task.ErrInvalidPayload):
		return pkgErrors.NewHTTPError(http.StatusBadRequest, err.Error())
	default:
		return pkgErrors.ErrInternalServerError
	}
}
