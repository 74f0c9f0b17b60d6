package http

import (
	"task-assistant/internal/preference"
	"task-assistant/pkg/log"
)

type handler struct {
	l  log.Logger
	uc preference.UseCase
}

// New creates a new HTTP handler for the preference domain.
func New(l log.Logger, uc preference.UseCase) *handler {
	return &handler{l: l, uc: uc}
}
