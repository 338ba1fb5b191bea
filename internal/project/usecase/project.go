package usecase

import (
	"context"
	"errors"

	"aether/internal/model"
	"aether/internal/project"
	repo "aether/internal/project/repository"
	"aether/pkg/dateguard"
	"aether/pkg/docstore"
)

// Create creates a new project. A non-empty deadline must pass
// validation in the deadline context, so weekend and imminent
// advisories apply.
func (uc *implUseCase) Create(ctx context.Context, sc model.Scope, input project.CreateProjectInput) (project.ProjectOutput, error) {
	res, err := uc.validateDeadline(input.Deadline)
	if err != nil {
		return project.ProjectOutput{}, err
	}

	created, err := uc.repo.CreateProject(ctx, repo.CreateProjectOptions{
		WorkspaceID: sc.WorkspaceID,
		Name:        input.Name,
		Description: input.Description,
		Deadline:    input.Deadline,
		Color:       input.Color,
		Demo:        input.Demo,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Create CreateProject: %v", err)
		return project.ProjectOutput{}, err
	}

	return project.ProjectOutput{Project: created, Validation: res}, nil
}

func (uc *implUseCase) List(ctx context.Context, sc model.Scope, input project.ListProjectsInput) (project.ListProjectsOutput, error) {
	projects, err := uc.repo.ListProjects(ctx, repo.ListProjectsOptions{
		WorkspaceID: sc.WorkspaceID,
		DemoOnly:    input.DemoOnly,
		Limit:       input.Limit,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.List ListProjects: %v", err)
		return project.ListProjectsOutput{}, err
	}
	return project.ListProjectsOutput{Projects: projects, Total: len(projects)}, nil
}

func (uc *implUseCase) Detail(ctx context.Context, sc model.Scope, id string) (project.ProjectOutput, error) {
	p, err := uc.repo.GetProject(ctx, id)
	if err != nil {
		if errors.Is(err, docstore.ErrNotFound) {
			return project.ProjectOutput{}, project.ErrProjectNotFound
		}
		uc.l.Errorf(ctx, "uc.Detail GetProject: %v", err)
		return project.ProjectOutput{}, err
	}
	return project.ProjectOutput{Project: p}, nil
}

func (uc *implUseCase) Update(ctx context.Context, sc model.Scope, input project.UpdateProjectInput) (project.ProjectOutput, error) {
	existing, err := uc.repo.GetProject(ctx, input.ID)
	if err != nil {
		if errors.Is(err, docstore.ErrNotFound) {
			return project.ProjectOutput{}, project.ErrProjectNotFound
		}
		uc.l.Errorf(ctx, "uc.Update GetProject: %v", err)
		return project.ProjectOutput{}, err
	}

	var res *dateguard.Result
	if input.Deadline != "" && input.Deadline != existing.Deadline {
		res, err = uc.validateDeadline(input.Deadline)
		if err != nil {
			return project.ProjectOutput{}, err
		}
		existing.Deadline = input.Deadline
	}

	if input.Name != "" {
		existing.Name = input.Name
	}
	if input.Description != "" {
		existing.Description = input.Description
	}
	if input.Color != "" {
		existing.Color = input.Color
	}

	updated, err := uc.repo.UpdateProject(ctx, existing)
	if err != nil {
		uc.l.Errorf(ctx, "uc.Update UpdateProject: %v", err)
		return project.ProjectOutput{}, err
	}
	return project.ProjectOutput{Project: updated, Validation: res}, nil
}

func (uc *implUseCase) Delete(ctx context.Context, sc model.Scope, id string) error {
	if err := uc.repo.DeleteProject(ctx, id); err != nil {
		if errors.Is(err, docstore.ErrNotFound) {
			return project.ErrProjectNotFound
		}
		uc.l.Errorf(ctx, "uc.Delete DeleteProject: %v", err)
		return err
	}
	return nil
}

// validateDeadline runs the date engine over a candidate project
// deadline.
func (uc *implUseCase) validateDeadline(deadline string) (*dateguard.Result, error) {
	if deadline == "" {
		return nil, nil
	}

	res := uc.validator.Validate(deadline, dateguard.Options{Context: dateguard.ContextDeadline})
	if !res.IsValid {
		return nil, dateguard.NewValidationError(res)
	}
	if len(res.Warnings) > 0 {
		return &res, nil
	}
	return nil, nil
}
