package http

import (
	"aether/internal/validate"
	"aether/pkg/log"
)

type handler struct {
	l  log.Logger
	uc validate.UseCase
}

// New creates a new HTTP handler for the date validation endpoint.
func New(l log.Logger, uc validate.UseCase) *handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
