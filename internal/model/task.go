package model

// TaskStatus is the board column a task sits in.
type TaskStatus string

const (
	TaskStatusTodo       TaskStatus = "todo"
	TaskStatusInProgress TaskStatus = "in_progress"
	TaskStatusDone       TaskStatus = "done"
)

// Task is a workspace task stored in the document store.
type Task struct {
	ID          string     `json:"id"`
	WorkspaceID string     `json:"workspace_id"`
	ProjectID   string     `json:"project_id,omitempty"`
	Title       string     `json:"title"`
	Description string     `json:"description,omitempty"`
	Status      TaskStatus `json:"status"`
	Priority    string     `json:"priority,omitempty"` // p1, p2, p3
	DueDate     string     `json:"due_date,omitempty"` // YYYY-MM-DD or YYYY-MM-DDTHH:mm
	AssigneeID  string     `json:"assignee_id,omitempty"`
	Demo        bool       `json:"demo,omitempty"`
	CreateTime  string     `json:"create_time,omitempty"` // RFC3339, set by the document store
	UpdateTime  string     `json:"update_time,omitempty"`
}
