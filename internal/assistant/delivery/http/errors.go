package http

import (
	"errors"
	"net/http"

	"task-assistant/internal/assistant"
	pkgErrors "task-assistant/pkg/errors"
)

func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, assistant.ErrEmptyMessage),
		errors.Is(err, assistant.ErrMessageTooLong),
		errors.Is(err, assistant.ErrInvalidTimezone),
		errors.Is(err, assistant.ErrInvalidHistory):
		return pkgErrors.NewHTTPError(http.StatusBadRequest, err.Error())
	default:
		return pkgErrors.ErrInternalServerError
	}
}
