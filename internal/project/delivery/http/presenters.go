package http

import (
	"aether/internal/model"
	"aether/internal/project"
	"aether/pkg/dateguard"
)

// --- Request DTOs ---

type createReq struct {
	Name        string `json:"name"        binding:"required,min=1,max=255"`
	Description string `json:"description" binding:"max=2000"`
	Deadline    string `json:"deadline"`
	Color       string `json:"color"`
}

func (r createReq) toInput() project.CreateProjectInput {
	return project.CreateProjectInput{
		Name:        r.Name,
		Description: r.Description,
		Deadline:    r.Deadline,
		Color:       r.Color,
	}
}

type listReq struct {
	Limit int `form:"limit"`
}

func (r listReq) toInput() project.ListProjectsInput {
	limit := r.Limit
	if limit <= 0 || limit > 200 {
		limit = 100
	}
	return project.ListProjectsInput{Limit: limit}
}

type updateReq struct {
	ID          string `json:"-"` // populated from URI param
	Name        string `json:"name"        binding:"omitempty,min=1,max=255"`
	Description string `json:"description" binding:"omitempty,max=2000"`
	Deadline    string `json:"deadline"`
	Color       string `json:"color"`
}

func (r updateReq) toInput() project.UpdateProjectInput {
	return project.UpdateProjectInput{
		ID:          r.ID,
		Name:        r.Name,
		Description: r.Description,
		Deadline:    r.Deadline,
		Color:       r.Color,
	}
}

// --- Response DTOs ---

type projectResp struct {
	Project    model.Project     `json:"project"`
	Validation *dateguard.Result `json:"validation,omitempty"`
}

func (h *handler) newProjectResp(out project.ProjectOutput) projectResp {
	return projectResp{Project: out.Project, Validation: out.Validation}
}

type listResp struct {
	Projects []model.Project `json:"projects"`
	Total    int             `json:"total"`
}

func (h *handler) newListResp(out project.ListProjectsOutput) listResp {
	projects := out.Projects
	if projects == nil {
		projects = []model.Project{}
	}
	return listResp{Projects: projects, Total: out.Total}
}
