package http

import (
	"aether/internal/content"
	"aether/pkg/log"
)

type handler struct {
	l  log.Logger
	uc content.UseCase
}

// New creates a new HTTP handler for the content domain.
func New(l log.Logger, uc content.UseCase) *handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
