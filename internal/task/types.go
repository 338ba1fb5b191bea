package task

import (
	"aether/internal/model"
	"aether/pkg/dateguard"
)

// --- UseCase Inputs ---

type CreateTaskInput struct {
	ProjectID   string
	Title       string
	Description string
	Status      model.TaskStatus
	Priority    string
	DueDate     string // YYYY-MM-DD or YYYY-MM-DDTHH:mm, optional
	AssigneeID  string
	Demo        bool
}

type ListTasksInput struct {
	ProjectID string
	Status    model.TaskStatus
	DemoOnly  bool
	Limit     int
}

type UpdateTaskInput struct {
	ID          string
	Title       string
	Description string
	Status      model.TaskStatus
	Priority    string
	DueDate     string
	AssigneeID  string
}

// --- UseCase Outputs ---

// TaskOutput carries the task plus any advisory warnings raised while
// validating its due date.
type TaskOutput struct {
	Task       model.Task
	Validation *dateguard.Result
}

type ListTasksOutput struct {
	Tasks []model.Task
	Total int
}
