package http

import (
	"errors"
	"net/http"

	"task-assistant/internal/preference"
	pkgErrors "task-assistant/pkg/errors"
)

func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, preference.ErrPreferenceNotFound):
		return pkgErrors.NewHTTPError(http.StatusNotFound, "preferences not found")
	case errors.Is(err, preference.ErrInvalidPayload):
		return pkgErrors.NewHTTPError(http.StatusBadRequest, err.Error())
	default:
		return pkgErrors.ErrInternalServerError
	}
}
