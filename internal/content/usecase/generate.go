package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"aether/internal/content"
	repo "aether/internal/content/repository"
	"aether/internal/model"
	"aether/pkg/dateguard"
	"aether/pkg/gcalendar"
	"aether/pkg/llmprovider"
)

// GenerateSocialPost drafts a post with the LLM and stores it as a
// draft for later scheduling.
func (uc *implUseCase) GenerateSocialPost(ctx context.Context, sc model.Scope, input content.GenerateSocialPostInput) (content.PostOutput, error) {
	platform := input.Platform
	if platform == "" {
		platform = content.DefaultPlatform
	}
	tone := input.Tone
	if tone == "" {
		tone = content.DefaultTone
	}

	resp, err := uc.llm.GenerateContent(ctx, &llmprovider.Request{
		Messages: []llmprovider.Message{
			{Role: "user", Text: fmt.Sprintf(content.PromptSocialPost, platform, input.Topic, tone)},
		},
		Temperature: content.SocialPostTemperature,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.GenerateSocialPost llm: %v", err)
		return content.PostOutput{}, content.ErrGenerationFailed
	}

	body := sanitizeModelOutput(resp.Text)
	if body == "" {
		return content.PostOutput{}, content.ErrBadModelOutput
	}

	post, err := uc.repo.CreatePost(ctx, repo.CreatePostOptions{
		WorkspaceID: sc.WorkspaceID,
		Platform:    platform,
		Body:        body,
		Status:      model.PostStatusDraft,
		Generated:   true,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.GenerateSocialPost CreatePost: %v", err)
		return content.PostOutput{}, err
	}

	uc.l.Infof(ctx, "generated %s post via %s", platform, resp.ProviderName)
	return content.PostOutput{Post: post}, nil
}

// auditPayload is the JSON shape the audit prompt asks for.
type auditPayload struct {
	Score    int                    `json:"score"`
	Findings []content.AuditFinding `json:"findings"`
}

func (uc *implUseCase) GenerateWebsiteAudit(ctx context.Context, sc model.Scope, input content.GenerateAuditInput) (content.AuditOutput, error) {
	notes := input.Notes
	if notes == "" {
		notes = "none"
	}

	resp, err := uc.llm.GenerateContent(ctx, &llmprovider.Request{
		Messages: []llmprovider.Message{
			{Role: "user", Text: fmt.Sprintf(content.PromptWebsiteAudit, input.URL, notes)},
		},
		Temperature: content.AuditTemperature,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.GenerateWebsiteAudit llm: %v", err)
		return content.AuditOutput{}, content.ErrGenerationFailed
	}

	var payload auditPayload
	if err := json.Unmarshal([]byte(sanitizeModelOutput(resp.Text)), &payload); err != nil {
		uc.l.Warnf(ctx, "uc.GenerateWebsiteAudit: unparseable model output: %v", err)
		return content.AuditOutput{}, content.ErrBadModelOutput
	}

	if payload.Score < 0 {
		payload.Score = 0
	}
	if payload.Score > 100 {
		payload.Score = 100
	}

	return content.AuditOutput{
		URL:      input.URL,
		Score:    payload.Score,
		Findings: payload.Findings,
		Provider: resp.ProviderName,
	}, nil
}

// summaryPayload is the JSON shape the meeting summary prompt asks
// for. Due dates come back as relative phrases.
type summaryPayload struct {
	Summary     string `json:"summary"`
	ActionItems []struct {
		Title string `json:"title"`
		Owner string `json:"owner"`
		Due   string `json:"due"`
	} `json:"action_items"`
	NextMeeting string `json:"next_meeting"`
}

func (uc *implUseCase) SummarizeMeetingNotes(ctx context.Context, sc model.Scope, input content.SummarizeNotesInput) (content.MeetingSummaryOutput, error) {
	resp, err := uc.llm.GenerateContent(ctx, &llmprovider.Request{
		Messages: []llmprovider.Message{
			{Role: "user", Text: fmt.Sprintf(content.PromptMeetingSummary, input.Notes)},
		},
		Temperature: content.SummaryTemperature,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.SummarizeMeetingNotes llm: %v", err)
		return content.MeetingSummaryOutput{}, content.ErrGenerationFailed
	}

	var payload summaryPayload
	if err := json.Unmarshal([]byte(sanitizeModelOutput(resp.Text)), &payload); err != nil {
		uc.l.Warnf(ctx, "uc.SummarizeMeetingNotes: unparseable model output: %v", err)
		return content.MeetingSummaryOutput{}, content.ErrBadModelOutput
	}

	out := content.MeetingSummaryOutput{
		Summary:  payload.Summary,
		Provider: resp.ProviderName,
	}

	base := uc.now()
	for _, item := range payload.ActionItems {
		ai := content.ActionItem{Title: item.Title, Owner: item.Owner}
		if item.Due != "" {
			if due, err := uc.dates.Parse(item.Due, base); err == nil {
				ai.DueDate = due.Format(dateguard.DateFormat)
			} else {
				uc.l.Warnf(ctx, "uc.SummarizeMeetingNotes: cannot resolve %q: %v", item.Due, err)
			}
		}
		out.ActionItems = append(out.ActionItems, ai)
	}

	if payload.NextMeeting != "" {
		if next, err := uc.dates.Parse(payload.NextMeeting, base); err == nil {
			out.NextMeeting = next.Format(dateguard.DateFormat)
			out.CalendarLink = uc.createMeetingEvent(ctx, payload.Summary, next)
		}
	}

	return out, nil
}

// createMeetingEvent books the follow-up meeting. Calendar failures
// degrade to a summary without a link.
func (uc *implUseCase) createMeetingEvent(ctx context.Context, summary string, start time.Time) string {
	if uc.calendar == nil {
		return ""
	}

	// Default meetings to 10:00-10:30 local when the phrase resolved to
	// a bare date.
	if start.Hour() == 0 && start.Minute() == 0 {
		start = time.Date(start.Year(), start.Month(), start.Day(), 10, 0, 0, 0, start.Location())
	}

	event, err := uc.calendar.CreateEvent(ctx, gcalendar.CreateEventRequest{
		Summary:     "Team follow-up meeting",
		Description: summary,
		StartTime:   start,
		EndTime:     start.Add(30 * time.Minute),
	})
	if err != nil {
		uc.l.Warnf(ctx, "uc.createMeetingEvent: %v", err)
		return ""
	}
	return event.HtmlLink
}
