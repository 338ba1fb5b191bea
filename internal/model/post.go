package model

// PostStatus is the lifecycle state of a scheduled social post.
type PostStatus string

const (
	PostStatusDraft     PostStatus = "draft"
	PostStatusScheduled PostStatus = "scheduled"
	PostStatusPublished PostStatus = "published"
)

// ScheduledPost is a social post drafted (often AI-generated) in the
// workspace and scheduled for publication.
type ScheduledPost struct {
	ID          string     `json:"id"`
	WorkspaceID string     `json:"workspace_id"`
	Platform    string     `json:"platform"` // e.g. "linkedin", "x"
	Body        string     `json:"body"`
	Status      PostStatus `json:"status"`
	PublishAt   string     `json:"publish_at,omitempty"` // YYYY-MM-DDTHH:mm local
	Generated   bool       `json:"generated,omitempty"`  // true when drafted by the LLM
	Demo        bool       `json:"demo,omitempty"`
	CreateTime  string     `json:"create_time,omitempty"`
	UpdateTime  string     `json:"update_time,omitempty"`
}
