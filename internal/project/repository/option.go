package repository

// CreateProjectOptions holds the parameters for creating a project.
type CreateProjectOptions struct {
	WorkspaceID string
	Name        string
	Description string
	Deadline    string
	Color       string
	Demo        bool
}

// ListProjectsOptions holds the parameters for listing projects.
type ListProjectsOptions struct {
	WorkspaceID string
	DemoOnly    bool
	Limit       int
}
