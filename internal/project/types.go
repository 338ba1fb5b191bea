package project

import (
	"aether/internal/model"
	"aether/pkg/dateguard"
)

// --- UseCase Inputs ---

type CreateProjectInput struct {
	Name        string
	Description string
	Deadline    string // YYYY-MM-DD, optional
	Color       string
	Demo        bool
}

type ListProjectsInput struct {
	DemoOnly bool
	Limit    int
}

type UpdateProjectInput struct {
	ID          string
	Name        string
	Description string
	Deadline    string
	Color       string
}

// --- UseCase Outputs ---

// ProjectOutput carries the project plus any advisory warnings raised
// while validating its deadline.
type ProjectOutput struct {
	Project    model.Project
	Validation *dateguard.Result
}

type ListProjectsOutput struct {
	Projects []model.Project
	Total    int
}
