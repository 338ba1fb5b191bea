package lead

import "aether/internal/model"

// --- UseCase Inputs ---

type CreateLeadInput struct {
	Name    string
	Email   string
	Company string
	Phone   string
	Stage   model.LeadStage
	Value   float64
	Demo    bool
}

type ListLeadsInput struct {
	Stage    model.LeadStage
	DemoOnly bool
	Limit    int
}

type UpdateLeadInput struct {
	ID      string
	Name    string
	Email   string
	Company string
	Phone   string
	Stage   model.LeadStage
	Value   float64
}

// --- UseCase Outputs ---

type LeadOutput struct {
	Lead model.Lead
}

type ListLeadsOutput struct {
	Leads []model.Lead
	Total int
}
