package usecase

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"aether/internal/model"
	"aether/internal/task"
	repo "aether/internal/task/repository"
	"aether/pkg/dateguard"
	"aether/pkg/docstore"
	pkgLog "aether/pkg/log"
)

// frozenNow is a Saturday morning. Relative-date rules in these tests
// are anchored to it via NewWithClock.
var frozenNow = time.Date(2024, 6, 15, 10, 0, 0, 0, time.Local)

type mockTaskRepo struct {
	tasks  map[string]model.Task
	nextID int
	err    error
}

func newMockTaskRepo() *mockTaskRepo {
	return &mockTaskRepo{tasks: map[string]model.Task{}}
}

func (m *mockTaskRepo) CreateTask(_ context.Context, opt repo.CreateTaskOptions) (model.Task, error) {
	if m.err != nil {
		return model.Task{}, m.err
	}
	m.nextID++
	t := model.Task{
		ID:          fmt.Sprintf("task-%d", m.nextID),
		WorkspaceID: opt.WorkspaceID,
		ProjectID:   opt.ProjectID,
		Title:       opt.Title,
		Description: opt.Description,
		Status:      opt.Status,
		Priority:    opt.Priority,
		DueDate:     opt.DueDate,
		AssigneeID:  opt.AssigneeID,
		Demo:        opt.Demo,
	}
	if t.Status == "" {
		t.Status = model.TaskStatusTodo
	}
	m.tasks[t.ID] = t
	return t, nil
}

func (m *mockTaskRepo) GetTask(_ context.Context, id string) (model.Task, error) {
	t, ok := m.tasks[id]
	if !ok {
		return model.Task{}, docstore.ErrNotFound
	}
	return t, nil
}

func (m *mockTaskRepo) ListTasks(_ context.Context, opt repo.ListTasksOptions) ([]model.Task, error) {
	var out []model.Task
	for _, t := range m.tasks {
		if opt.DemoOnly && !t.Demo {
			continue
		}
		if opt.Status != "" && t.Status != opt.Status {
			continue
		}
		out = append(out, t)
	}
	return out, nil
}

func (m *mockTaskRepo) UpdateTask(_ context.Context, t model.Task) (model.Task, error) {
	if _, ok := m.tasks[t.ID]; !ok {
		return model.Task{}, docstore.ErrNotFound
	}
	m.tasks[t.ID] = t
	return t, nil
}

func (m *mockTaskRepo) DeleteTask(_ context.Context, id string) error {
	if _, ok := m.tasks[id]; !ok {
		return docstore.ErrNotFound
	}
	delete(m.tasks, id)
	return nil
}

type mockProjectRepo struct {
	projects map[string]model.Project
}

func (m *mockProjectRepo) GetProject(_ context.Context, id string) (model.Project, error) {
	p, ok := m.projects[id]
	if !ok {
		return model.Project{}, docstore.ErrNotFound
	}
	return p, nil
}

func newUC(taskRepo *mockTaskRepo, projectRepo *mockProjectRepo) *implUseCase {
	if projectRepo == nil {
		projectRepo = &mockProjectRepo{projects: map[string]model.Project{}}
	}
	validator := dateguard.NewWithClock(func() time.Time { return frozenNow })
	return &implUseCase{
		repo:        taskRepo,
		projectRepo: projectRepo,
		validator:   validator,
		l:           pkgLog.NewNoop(),
	}
}

var testScope = model.Scope{UserID: "u1", WorkspaceID: "ws1"}

func TestCreateWithoutDueDate(t *testing.T) {
	uc := newUC(newMockTaskRepo(), nil)

	out, err := uc.Create(context.Background(), testScope, task.CreateTaskInput{Title: "Write invoice"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.Task.ID == "" {
		t.Error("expected task to get an ID")
	}
	if out.Task.Status != model.TaskStatusTodo {
		t.Errorf("expected default status todo, got %q", out.Task.Status)
	}
	if out.Validation != nil {
		t.Errorf("expected no validation result, got %+v", out.Validation)
	}
}

func TestCreateRejectsPastDueDate(t *testing.T) {
	repo := newMockTaskRepo()
	uc := newUC(repo, nil)

	_, err := uc.Create(context.Background(), testScope, task.CreateTaskInput{
		Title:   "Backdated",
		DueDate: "2024-06-10",
	})

	var verr *dateguard.ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	if verr.Result.SuggestedDate != "2024-06-16" {
		t.Errorf("expected tomorrow suggestion, got %q", verr.Result.SuggestedDate)
	}
	if len(repo.tasks) != 0 {
		t.Error("task must not be persisted on validation failure")
	}
}

func TestCreateEnforcesProjectDeadline(t *testing.T) {
	projects := &mockProjectRepo{projects: map[string]model.Project{
		"proj-1": {ID: "proj-1", Name: "Launch", Deadline: "2024-06-20"},
	}}
	uc := newUC(newMockTaskRepo(), projects)

	_, err := uc.Create(context.Background(), testScope, task.CreateTaskInput{
		ProjectID: "proj-1",
		Title:     "Late task",
		DueDate:   "2024-07-01",
	})

	var verr *dateguard.ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	if verr.Result.SuggestedDate != "2024-06-19" {
		t.Errorf("expected day-before-deadline suggestion, got %q", verr.Result.SuggestedDate)
	}
}

func TestCreateUnknownProject(t *testing.T) {
	uc := newUC(newMockTaskRepo(), nil)

	_, err := uc.Create(context.Background(), testScope, task.CreateTaskInput{
		ProjectID: "missing",
		Title:     "Orphan",
		DueDate:   "2024-06-25",
	})
	if !errors.Is(err, task.ErrProjectNotFound) {
		t.Fatalf("expected ErrProjectNotFound, got %v", err)
	}
}

func TestCreateSameDayWarning(t *testing.T) {
	uc := newUC(newMockTaskRepo(), nil)

	out, err := uc.Create(context.Background(), testScope, task.CreateTaskInput{
		Title:   "Call supplier",
		DueDate: "2024-06-15T17:00",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.Validation == nil {
		t.Fatal("expected validation warnings to surface")
	}
	found := false
	for _, w := range out.Validation.Warnings {
		if w == dateguard.WarnSameDayTask {
			found = true
		}
	}
	if !found {
		t.Errorf("expected same-day warning, got %v", out.Validation.Warnings)
	}
}

func TestUpdateRevalidatesDueDate(t *testing.T) {
	repo := newMockTaskRepo()
	uc := newUC(repo, nil)

	out, err := uc.Create(context.Background(), testScope, task.CreateTaskInput{
		Title:   "Prepare pitch",
		DueDate: "2024-06-25",
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	_, err = uc.Update(context.Background(), testScope, task.UpdateTaskInput{
		ID:      out.Task.ID,
		DueDate: "2024-06-01",
	})
	var verr *dateguard.ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected ValidationError, got %v", err)
	}

	// Keeping the same due date skips re-validation.
	updated, err := uc.Update(context.Background(), testScope, task.UpdateTaskInput{
		ID:     out.Task.ID,
		Status: model.TaskStatusDone,
	})
	if err != nil {
		t.Fatalf("status-only update: %v", err)
	}
	if updated.Task.Status != model.TaskStatusDone {
		t.Errorf("expected done, got %q", updated.Task.Status)
	}
	if updated.Task.DueDate != "2024-06-25" {
		t.Errorf("due date must be preserved, got %q", updated.Task.DueDate)
	}
}

func TestUpdateNotFound(t *testing.T) {
	uc := newUC(newMockTaskRepo(), nil)

	_, err := uc.Update(context.Background(), testScope, task.UpdateTaskInput{ID: "nope", Title: "x"})
	if !errors.Is(err, task.ErrTaskNotFound) {
		t.Fatalf("expected ErrTaskNotFound, got %v", err)
	}
}

func TestDeleteNotFound(t *testing.T) {
	uc := newUC(newMockTaskRepo(), nil)

	if err := uc.Delete(context.Background(), testScope, "nope"); !errors.Is(err, task.ErrTaskNotFound) {
		t.Fatalf("expected ErrTaskNotFound, got %v", err)
	}
}

func TestListDemoOnly(t *testing.T) {
	repo := newMockTaskRepo()
	uc := newUC(repo, nil)

	ctx := context.Background()
	if _, err := uc.Create(ctx, testScope, task.CreateTaskInput{Title: "real"}); err != nil {
		t.Fatal(err)
	}
	if _, err := uc.Create(ctx, testScope, task.CreateTaskInput{Title: "demo", Demo: true}); err != nil {
		t.Fatal(err)
	}

	out, err := uc.List(ctx, testScope, task.ListTasksInput{DemoOnly: true})
	if err != nil {
		t.Fatal(err)
	}
	if out.Total != 1 || out.Tasks[0].Title != "demo" {
		t.Errorf("expected only the demo task, got %+v", out.Tasks)
	}
}
