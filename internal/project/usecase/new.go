package usecase

import (
	"aether/internal/project/repository"
	"aether/pkg/dateguard"
	"aether/pkg/log"
)

// implUseCase is the private implementation of project.UseCase.
type implUseCase struct {
	repo      repository.Repository
	validator *dateguard.Validator
	l         log.Logger
}

// New creates a new project UseCase implementation.
func New(repo repository.Repository, validator *dateguard.Validator, l log.Logger) *implUseCase {
	return &implUseCase{
		repo:      repo,
		validator: validator,
		l:         l,
	}
}
