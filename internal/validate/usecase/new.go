package usecase

import (
	"aether/internal/validate"
	"aether/pkg/dateguard"
	"aether/pkg/log"
)

type implUseCase struct {
	validator *dateguard.Validator
	l         log.Logger
}

// New creates a new validate UseCase implementation.
func New(validator *dateguard.Validator, l log.Logger) validate.UseCase {
	return &implUseCase{
		validator: validator,
		l:         l,
	}
}
