package model

// Scope identifies the acting user and workspace on every use-case call.
type Scope struct {
	UserID      string
	Username    string
	WorkspaceID string
}
