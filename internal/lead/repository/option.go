package repository

import "aether/internal/model"

// CreateLeadOptions holds the parameters for creating a lead.
type CreateLeadOptions struct {
	WorkspaceID string
	Name        string
	Email       string
	Company     string
	Phone       string
	Stage       model.LeadStage
	Value       float64
	Demo        bool
}

// ListLeadsOptions holds the parameters for listing leads.
type ListLeadsOptions struct {
	WorkspaceID string
	Stage       model.LeadStage
	DemoOnly    bool
	Limit       int
}
