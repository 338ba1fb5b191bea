package repository

import (
	"context"

	"aether/internal/model"
)

// Repository is the interface for project persistence.
type Repository interface {
	CreateProject(ctx context.Context, opt CreateProjectOptions) (model.Project, error)
	GetProject(ctx context.Context, id string) (model.Project, error)
	ListProjects(ctx context.Context, opt ListProjectsOptions) ([]model.Project, error)
	UpdateProject(ctx context.Context, project model.Project) (model.Project, error)
	DeleteProject(ctx context.Context, id string) error
}
