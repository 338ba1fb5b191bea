package usecase

import (
	"context"
	"errors"
	"time"

	"aether/internal/model"
	"aether/internal/task"
	repo "aether/internal/task/repository"
	"aether/pkg/dateguard"
	"aether/pkg/docstore"
)

// Create creates a new task. A non-empty due date must pass validation;
// advisory warnings are returned alongside the created task.
func (uc *implUseCase) Create(ctx context.Context, sc model.Scope, input task.CreateTaskInput) (task.TaskOutput, error) {
	res, err := uc.validateDueDate(ctx, input.DueDate, input.ProjectID)
	if err != nil {
		return task.TaskOutput{}, err
	}

	created, err := uc.repo.CreateTask(ctx, repo.CreateTaskOptions{
		WorkspaceID: sc.WorkspaceID,
		ProjectID:   input.ProjectID,
		Title:       input.Title,
		Description: input.Description,
		Status:      input.Status,
		Priority:    input.Priority,
		DueDate:     input.DueDate,
		AssigneeID:  input.AssigneeID,
		Demo:        input.Demo,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Create CreateTask: %v", err)
		return task.TaskOutput{}, err
	}

	return task.TaskOutput{Task: created, Validation: res}, nil
}

func (uc *implUseCase) List(ctx context.Context, sc model.Scope, input task.ListTasksInput) (task.ListTasksOutput, error) {
	tasks, err := uc.repo.ListTasks(ctx, repo.ListTasksOptions{
		WorkspaceID: sc.WorkspaceID,
		ProjectID:   input.ProjectID,
		Status:      input.Status,
		DemoOnly:    input.DemoOnly,
		Limit:       input.Limit,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.List ListTasks: %v", err)
		return task.ListTasksOutput{}, err
	}
	return task.ListTasksOutput{Tasks: tasks, Total: len(tasks)}, nil
}

func (uc *implUseCase) Detail(ctx context.Context, sc model.Scope, id string) (task.TaskOutput, error) {
	t, err := uc.repo.GetTask(ctx, id)
	if err != nil {
		if errors.Is(err, docstore.ErrNotFound) {
			return task.TaskOutput{}, task.ErrTaskNotFound
		}
		uc.l.Errorf(ctx, "uc.Detail GetTask: %v", err)
		return task.TaskOutput{}, err
	}
	return task.TaskOutput{Task: t}, nil
}

// Update modifies an existing task. Empty input fields keep their
// current values. A changed due date is re-validated.
func (uc *implUseCase) Update(ctx context.Context, sc model.Scope, input task.UpdateTaskInput) (task.TaskOutput, error) {
	existing, err := uc.repo.GetTask(ctx, input.ID)
	if err != nil {
		if errors.Is(err, docstore.ErrNotFound) {
			return task.TaskOutput{}, task.ErrTaskNotFound
		}
		uc.l.Errorf(ctx, "uc.Update GetTask: %v", err)
		return task.TaskOutput{}, err
	}

	var res *dateguard.Result
	if input.DueDate != "" && input.DueDate != existing.DueDate {
		res, err = uc.validateDueDate(ctx, input.DueDate, existing.ProjectID)
		if err != nil {
			return task.TaskOutput{}, err
		}
		existing.DueDate = input.DueDate
	}

	existing.Title = coalesce(input.Title, existing.Title)
	existing.Description = coalesce(input.Description, existing.Description)
	existing.Priority = coalesce(input.Priority, existing.Priority)
	existing.AssigneeID = coalesce(input.AssigneeID, existing.AssigneeID)
	if input.Status != "" {
		existing.Status = input.Status
	}

	updated, err := uc.repo.UpdateTask(ctx, existing)
	if err != nil {
		uc.l.Errorf(ctx, "uc.Update UpdateTask: %v", err)
		return task.TaskOutput{}, err
	}
	return task.TaskOutput{Task: updated, Validation: res}, nil
}

func (uc *implUseCase) Delete(ctx context.Context, sc model.Scope, id string) error {
	if err := uc.repo.DeleteTask(ctx, id); err != nil {
		if errors.Is(err, docstore.ErrNotFound) {
			return task.ErrTaskNotFound
		}
		uc.l.Errorf(ctx, "uc.Delete DeleteTask: %v", err)
		return err
	}
	return nil
}

// validateDueDate runs the date engine over a candidate due date. The
// parent project's deadline, when present, acts as a ceiling. Returns
// a *dateguard.ValidationError on hard failure and the Result (for its
// warnings) on success.
func (uc *implUseCase) validateDueDate(ctx context.Context, dueDate, projectID string) (*dateguard.Result, error) {
	if dueDate == "" {
		return nil, nil
	}

	opts := dateguard.Options{Context: dateguard.ContextTask}

	if projectID != "" {
		proj, err := uc.projectRepo.GetProject(ctx, projectID)
		if err != nil {
			if errors.Is(err, docstore.ErrNotFound) {
				return nil, task.ErrProjectNotFound
			}
			uc.l.Errorf(ctx, "uc.validateDueDate GetProject: %v", err)
			return nil, err
		}
		if proj.Deadline != "" {
			deadline, err := time.ParseInLocation(dateguard.DateFormat, proj.Deadline, time.Local)
			if err == nil {
				opts.ProjectDeadline = &deadline
			}
		}
	}

	res := uc.validator.Validate(dueDate, opts)
	if !res.IsValid {
		return nil, dateguard.NewValidationError(res)
	}
	if len(res.Warnings) > 0 {
		return &res, nil
	}
	return nil, nil
}

func coalesce(v, fallback string) string {
	if v != "" {
		return v
	}
	return fallback
}
