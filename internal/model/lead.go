package model

// LeadStage is the pipeline stage of a CRM lead.
type LeadStage string

const (
	LeadStageNew       LeadStage = "new"
	LeadStageContacted LeadStage = "contacted"
	LeadStageQualified LeadStage = "qualified"
	LeadStageWon       LeadStage = "won"
	LeadStageLost      LeadStage = "lost"
)

// Lead is a CRM lead. HubSpotID is set once the lead has been pushed
// to HubSpot.
type Lead struct {
	ID          string    `json:"id"`
	WorkspaceID string    `json:"workspace_id"`
	Name        string    `json:"name"`
	Email       string    `json:"email,omitempty"`
	Company     string    `json:"company,omitempty"`
	Phone       string    `json:"phone,omitempty"`
	Stage       LeadStage `json:"stage"`
	Value       float64   `json:"value,omitempty"` // estimated deal value
	HubSpotID   string    `json:"hubspot_id,omitempty"`
	Demo        bool      `json:"demo,omitempty"`
	CreateTime  string    `json:"create_time,omitempty"`
	UpdateTime  string    `json:"update_time,omitempty"`
}
