package http

import (
	"aether/internal/seed"
	"aether/pkg/log"
)

type handler struct {
	l  log.Logger
	uc seed.UseCase
}

// New creates a new HTTP handler for the demo-data seeder.
func New(l log.Logger, uc seed.UseCase) *handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
