package usecase

import (
	"context"

	"aether/internal/model"
	"aether/internal/task/repository"
	"aether/pkg/dateguard"
	"aether/pkg/log"
)

// projectGetter is the slice of the project repository the task domain
// needs to resolve deadline ceilings.
type projectGetter interface {
	GetProject(ctx context.Context, id string) (model.Project, error)
}

// implUseCase is the private implementation of task.UseCase.
type implUseCase struct {
	repo        repository.Repository
	projectRepo projectGetter
	validator   *dateguard.Validator
	l           log.Logger
}

// New creates a new task UseCase implementation.
func New(repo repository.Repository, projRepo projectGetter, validator *dateguard.Validator, l log.Logger) *implUseCase {
	return &implUseCase{
		repo:        repo,
		projectRepo: projRepo,
		validator:   validator,
		l:           l,
	}
}
