package content

import (
	"aether/internal/model"
	"aether/pkg/dateguard"
)

// --- UseCase Inputs ---

type GenerateSocialPostInput struct {
	Platform string // "linkedin", "x", ...
	Topic    string
	Tone     string // optional, e.g. "casual", "professional"
}

type GenerateAuditInput struct {
	URL   string
	Notes string // optional context about the business
}

type SummarizeNotesInput struct {
	Notes string
}

type SchedulePostInput struct {
	PostID    string
	PublishAt string // YYYY-MM-DDTHH:mm local
}

type ListPostsInput struct {
	Status   model.PostStatus
	DemoOnly bool
	Limit    int
}

// --- UseCase Outputs ---

type PostOutput struct {
	Post       model.ScheduledPost
	Validation *dateguard.Result
}

type ListPostsOutput struct {
	Posts []model.ScheduledPost
	Total int
}

// AuditFinding is one issue found in a website audit.
type AuditFinding struct {
	Category string `json:"category"` // "seo", "performance", "content", "accessibility"
	Severity string `json:"severity"` // "low", "medium", "high"
	Issue    string `json:"issue"`
	Fix      string `json:"fix"`
}

type AuditOutput struct {
	URL      string         `json:"url"`
	Score    int            `json:"score"` // 0-100
	Findings []AuditFinding `json:"findings"`
	Provider string         `json:"provider"` // which LLM produced the audit
}

// ActionItem is a follow-up extracted from meeting notes. DueDate is
// resolved from the relative phrase the model returned.
type ActionItem struct {
	Title   string `json:"title"`
	Owner   string `json:"owner,omitempty"`
	DueDate string `json:"due_date,omitempty"` // YYYY-MM-DD
}

type MeetingSummaryOutput struct {
	Summary      string       `json:"summary"`
	ActionItems  []ActionItem `json:"action_items"`
	NextMeeting  string       `json:"next_meeting,omitempty"` // YYYY-MM-DD
	CalendarLink string       `json:"calendar_link,omitempty"`
	Provider     string       `json:"provider"`
}
