package content

import (
	"context"

	"aether/internal/model"
)

//go:generate mockery --name UseCase
type UseCase interface {
	// GenerateSocialPost drafts a social media post with the LLM and
	// stores it as a draft.
	GenerateSocialPost(ctx context.Context, sc model.Scope, input GenerateSocialPostInput) (PostOutput, error)

	// GenerateWebsiteAudit produces a structured audit of a website.
	GenerateWebsiteAudit(ctx context.Context, sc model.Scope, input GenerateAuditInput) (AuditOutput, error)

	// SummarizeMeetingNotes summarizes raw meeting notes into a summary
	// and action items, resolving relative follow-up phrases ("in 3
	// days", "next friday") to concrete dates. When the notes mention a
	// next meeting and a calendar is configured, an event is created.
	SummarizeMeetingNotes(ctx context.Context, sc model.Scope, input SummarizeNotesInput) (MeetingSummaryOutput, error)

	// SchedulePost sets a publish time on a post. The time is validated
	// with minute precision.
	SchedulePost(ctx context.Context, sc model.Scope, input SchedulePostInput) (PostOutput, error)

	ListPosts(ctx context.Context, sc model.Scope, input ListPostsInput) (ListPostsOutput, error)
}
