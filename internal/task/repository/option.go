package repository

import "aether/internal/model"

// CreateTaskOptions holds the parameters for creating a task.
type CreateTaskOptions struct {
	WorkspaceID string
	ProjectID   string
	Title       string
	Description string
	Status      model.TaskStatus
	Priority    string
	DueDate     string
	AssigneeID  string
	Demo        bool
}

// ListTasksOptions holds the parameters for listing tasks.
type ListTasksOptions struct {
	WorkspaceID string
	ProjectID   string
	Status      model.TaskStatus
	DemoOnly    bool // only return seeded demo tasks
	Limit       int  // default 100
}
