package project

import (
	"context"

	"aether/internal/model"
)

//go:generate mockery --name UseCase
type UseCase interface {
	Create(ctx context.Context, sc model.Scope, input CreateProjectInput) (ProjectOutput, error)
	List(ctx context.Context, sc model.Scope, input ListProjectsInput) (ListProjectsOutput, error)
	Detail(ctx context.Context, sc model.Scope, id string) (ProjectOutput, error)
	Update(ctx context.Context, sc model.Scope, input UpdateProjectInput) (ProjectOutput, error)
	Delete(ctx context.Context, sc model.Scope, id string) error
}
