package http

import (
	"aether/internal/model"
	"aether/internal/task"
	"aether/pkg/dateguard"
)

// --- Request DTOs ---

type createReq struct {
	ProjectID   string `json:"project_id"`
	Title       string `json:"title"       binding:"required,min=1,max=255"`
	Description string `json:"description" binding:"max=2000"`
	Status      string `json:"status"      binding:"omitempty,oneof=todo in_progress done"`
	Priority    string `json:"priority"    binding:"omitempty,oneof=p1 p2 p3"`
	DueDate     string `json:"due_date"`
	AssigneeID  string `json:"assignee_id"`
}

func (r createReq) toInput() task.CreateTaskInput {
	return task.CreateTaskInput{
		ProjectID:   r.ProjectID,
		Title:       r.Title,
		Description: r.Description,
		Status:      model.TaskStatus(r.Status),
		Priority:    r.Priority,
		DueDate:     r.DueDate,
		AssigneeID:  r.AssigneeID,
	}
}

type listReq struct {
	ProjectID string `form:"project_id"`
	Status    string `form:"status"`
	Limit     int    `form:"limit"`
}

func (r listReq) toInput() task.ListTasksInput {
	limit := r.Limit
	if limit <= 0 || limit > 200 {
		limit = 100
	}
	return task.ListTasksInput{
		ProjectID: r.ProjectID,
		Status:    model.TaskStatus(r.Status),
		Limit:     limit,
	}
}

type updateReq struct {
	ID          string `json:"-"` // populated from URI param
	Title       string `json:"title"       binding:"omitempty,min=1,max=255"`
	Description string `json:"description" binding:"omitempty,max=2000"`
	Status      string `json:"status"      binding:"omitempty,oneof=todo in_progress done"`
	Priority    string `json:"priority"    binding:"omitempty,oneof=p1 p2 p3"`
	DueDate     string `json:"due_date"`
	AssigneeID  string `json:"assignee_id"`
}

func (r updateReq) toInput() task.UpdateTaskInput {
	return task.UpdateTaskInput{
		ID:          r.ID,
		Title:       r.Title,
		Description: r.Description,
		Status:      model.TaskStatus(r.Status),
		Priority:    r.Priority,
		DueDate:     r.DueDate,
		AssigneeID:  r.AssigneeID,
	}
}

// --- Response DTOs ---

type taskResp struct {
	Task       model.Task        `json:"task"`
	Validation *dateguard.Result `json:"validation,omitempty"`
}

func (h *handler) newTaskResp(out task.TaskOutput) taskResp {
	return taskResp{Task: out.Task, Validation: out.Validation}
}

type listResp struct {
	Tasks []model.Task `json:"tasks"`
	Total int          `json:"total"`
}

func (h *handler) newListResp(out task.ListTasksOutput) listResp {
	tasks := out.Tasks
	if tasks == nil {
		tasks = []model.Task{}
	}
	return listResp{Tasks: tasks, Total: out.Total}
}
