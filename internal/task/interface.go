package task

import (
	"context"

	"aether/internal/model"
)

//go:generate mockery --name UseCase
type UseCase interface {
	Create(ctx context.Context, sc model.Scope, input CreateTaskInput) (TaskOutput, error)
	List(ctx context.Context, sc model.Scope, input ListTasksInput) (ListTasksOutput, error)
	Detail(ctx context.Context, sc model.Scope, id string) (TaskOutput, error)
	Update(ctx context.Context, sc model.Scope, input UpdateTaskInput) (TaskOutput, error)
	Delete(ctx context.Context, sc model.Scope, id string) error
}
