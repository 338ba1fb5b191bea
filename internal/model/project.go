package model

// Project groups tasks under a shared deadline.
type Project struct {
	ID          string `json:"id"`
	WorkspaceID string `json:"workspace_id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Deadline    string `json:"deadline,omitempty"` // YYYY-MM-DD
	Color       string `json:"color,omitempty"`
	Demo        bool   `json:"demo,omitempty"`
	CreateTime  string `json:"create_time,omitempty"`
	UpdateTime  string `json:"update_time,omitempty"`
}
