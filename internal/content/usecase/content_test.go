package usecase

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"aether/internal/content"
	repo "aether/internal/content/repository"
	"aether/internal/model"
	"aether/pkg/dateguard"
	"aether/pkg/datemath"
	"aether/pkg/docstore"
	"aether/pkg/gcalendar"
	"aether/pkg/llmprovider"
	pkgLog "aether/pkg/log"
)

// frozenNow is a Saturday morning.
var frozenNow = time.Date(2024, 6, 15, 10, 0, 0, 0, time.Local)

type mockPostRepo struct {
	posts  map[string]model.ScheduledPost
	nextID int
}

func newMockPostRepo() *mockPostRepo {
	return &mockPostRepo{posts: map[string]model.ScheduledPost{}}
}

func (m *mockPostRepo) CreatePost(_ context.Context, opt repo.CreatePostOptions) (model.ScheduledPost, error) {
	m.nextID++
	p := model.ScheduledPost{
		ID:          fmt.Sprintf("post-%d", m.nextID),
		WorkspaceID: opt.WorkspaceID,
		Platform:    opt.Platform,
		Body:        opt.Body,
		Status:      opt.Status,
		PublishAt:   opt.PublishAt,
		Generated:   opt.Generated,
		Demo:        opt.Demo,
	}
	if p.Status == "" {
		p.Status = model.PostStatusDraft
	}
	m.posts[p.ID] = p
	return p, nil
}

func (m *mockPostRepo) GetPost(_ context.Context, id string) (model.ScheduledPost, error) {
	p, ok := m.posts[id]
	if !ok {
		return model.ScheduledPost{}, docstore.ErrNotFound
	}
	return p, nil
}

func (m *mockPostRepo) ListPosts(_ context.Context, opt repo.ListPostsOptions) ([]model.ScheduledPost, error) {
	var out []model.ScheduledPost
	for _, p := range m.posts {
		if opt.Status != "" && p.Status != opt.Status {
			continue
		}
		if opt.DemoOnly && !p.Demo {
			continue
		}
		out = append(out, p)
	}
	return out, nil
}

func (m *mockPostRepo) UpdatePost(_ context.Context, p model.ScheduledPost) (model.ScheduledPost, error) {
	if _, ok := m.posts[p.ID]; !ok {
		return model.ScheduledPost{}, docstore.ErrNotFound
	}
	m.posts[p.ID] = p
	return p, nil
}

func (m *mockPostRepo) DeletePost(_ context.Context, id string) error {
	if _, ok := m.posts[id]; !ok {
		return docstore.ErrNotFound
	}
	delete(m.posts, id)
	return nil
}

type fakeLLM struct {
	text string
	err  error
}

func (f *fakeLLM) GenerateContent(_ context.Context, _ *llmprovider.Request) (*llmprovider.Response, error) {
	if f.err != nil {
		return nil, f.err
	}
	return &llmprovider.Response{Text: f.text, ProviderName: "fake", ModelName: "fake-1"}, nil
}

type fakeCalendar struct {
	events []gcalendar.CreateEventRequest
	err    error
}

func (f *fakeCalendar) CreateEvent(_ context.Context, req gcalendar.CreateEventRequest) (*gcalendar.Event, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.events = append(f.events, req)
	return &gcalendar.Event{ID: "evt-1", HtmlLink: "https://calendar.example/evt-1"}, nil
}

func newUC(t *testing.T, r *mockPostRepo, llm generator, cal eventCreator) *implUseCase {
	t.Helper()
	parser, err := datemath.NewParser("Local")
	if err != nil {
		t.Fatalf("datemath parser: %v", err)
	}
	return &implUseCase{
		repo:      r,
		llm:       llm,
		calendar:  cal,
		dates:     parser,
		validator: dateguard.NewWithClock(func() time.Time { return frozenNow }),
		now:       func() time.Time { return frozenNow },
		l:         pkgLog.NewNoop(),
	}
}

var testScope = model.Scope{UserID: "u1", WorkspaceID: "ws1"}

func TestGenerateSocialPost(t *testing.T) {
	r := newMockPostRepo()
	uc := newUC(t, r, &fakeLLM{text: "We just launched our summer menu."}, nil)

	out, err := uc.GenerateSocialPost(context.Background(), testScope, content.GenerateSocialPostInput{
		Topic: "summer menu launch",
	})
	if err != nil {
		t.Fatal(err)
	}
	if out.Post.Status != model.PostStatusDraft {
		t.Errorf("expected draft, got %q", out.Post.Status)
	}
	if !out.Post.Generated {
		t.Error("expected generated flag")
	}
	if out.Post.Platform != content.DefaultPlatform {
		t.Errorf("expected default platform, got %q", out.Post.Platform)
	}
}

func TestGenerateSocialPostLLMFailure(t *testing.T) {
	uc := newUC(t, newMockPostRepo(), &fakeLLM{err: errors.New("all providers failed")}, nil)

	_, err := uc.GenerateSocialPost(context.Background(), testScope, content.GenerateSocialPostInput{Topic: "x"})
	if !errors.Is(err, content.ErrGenerationFailed) {
		t.Fatalf("expected ErrGenerationFailed, got %v", err)
	}
}

func TestGenerateWebsiteAuditParsesFencedJSON(t *testing.T) {
	payload := "```json\n{\"score\": 72, \"findings\": [{\"category\": \"seo\", \"severity\": \"high\", \"issue\": \"missing titles\", \"fix\": \"add title tags\"}]}\n```"
	uc := newUC(t, newMockPostRepo(), &fakeLLM{text: payload}, nil)

	out, err := uc.GenerateWebsiteAudit(context.Background(), testScope, content.GenerateAuditInput{URL: "https://example.com"})
	if err != nil {
		t.Fatal(err)
	}
	if out.Score != 72 {
		t.Errorf("expected score 72, got %d", out.Score)
	}
	if len(out.Findings) != 1 || out.Findings[0].Category != "seo" {
		t.Errorf("unexpected findings: %+v", out.Findings)
	}
	if out.Provider != "fake" {
		t.Errorf("expected provider name, got %q", out.Provider)
	}
}

func TestGenerateWebsiteAuditBadOutput(t *testing.T) {
	uc := newUC(t, newMockPostRepo(), &fakeLLM{text: "I cannot audit that website, sorry."}, nil)

	_, err := uc.GenerateWebsiteAudit(context.Background(), testScope, content.GenerateAuditInput{URL: "https://example.com"})
	if !errors.Is(err, content.ErrBadModelOutput) {
		t.Fatalf("expected ErrBadModelOutput, got %v", err)
	}
}

func TestSummarizeMeetingNotesResolvesDates(t *testing.T) {
	payload := `{
		"summary": "Team agreed to ship the landing page.",
		"action_items": [
			{"title": "Finish copy", "owner": "maria", "due": "in 3 days"},
			{"title": "Review design", "owner": "", "due": ""}
		],
		"next_meeting": "in 1 week"
	}`
	cal := &fakeCalendar{}
	uc := newUC(t, newMockPostRepo(), &fakeLLM{text: payload}, cal)

	out, err := uc.SummarizeMeetingNotes(context.Background(), testScope, content.SummarizeNotesInput{Notes: "raw notes"})
	if err != nil {
		t.Fatal(err)
	}
	if len(out.ActionItems) != 2 {
		t.Fatalf("expected 2 action items, got %d", len(out.ActionItems))
	}
	if out.ActionItems[0].DueDate != "2024-06-18" {
		t.Errorf("expected resolved due date 2024-06-18, got %q", out.ActionItems[0].DueDate)
	}
	if out.ActionItems[1].DueDate != "" {
		t.Errorf("empty phrase must stay empty, got %q", out.ActionItems[1].DueDate)
	}
	if out.NextMeeting != "2024-06-22" {
		t.Errorf("expected next meeting 2024-06-22, got %q", out.NextMeeting)
	}
	if out.CalendarLink == "" {
		t.Error("expected calendar link")
	}
	if len(cal.events) != 1 {
		t.Fatalf("expected 1 calendar event, got %d", len(cal.events))
	}
	if cal.events[0].StartTime.Hour() != 10 {
		t.Errorf("bare-date meeting should default to 10:00, got %d", cal.events[0].StartTime.Hour())
	}
}

func TestSummarizeMeetingNotesCalendarFailureDegrades(t *testing.T) {
	payload := `{"summary": "s", "action_items": [], "next_meeting": "tomorrow"}`
	cal := &fakeCalendar{err: errors.New("calendar down")}
	uc := newUC(t, newMockPostRepo(), &fakeLLM{text: payload}, cal)

	out, err := uc.SummarizeMeetingNotes(context.Background(), testScope, content.SummarizeNotesInput{Notes: "n"})
	if err != nil {
		t.Fatal(err)
	}
	if out.NextMeeting == "" {
		t.Error("next meeting date should still resolve")
	}
	if out.CalendarLink != "" {
		t.Errorf("failed calendar call must not produce a link, got %q", out.CalendarLink)
	}
}

func TestSchedulePost(t *testing.T) {
	r := newMockPostRepo()
	uc := newUC(t, r, &fakeLLM{text: "draft"}, nil)

	ctx := context.Background()
	out, err := uc.GenerateSocialPost(ctx, testScope, content.GenerateSocialPostInput{Topic: "t"})
	if err != nil {
		t.Fatal(err)
	}

	scheduled, err := uc.SchedulePost(ctx, testScope, content.SchedulePostInput{
		PostID:    out.Post.ID,
		PublishAt: "2024-06-17T09:00",
	})
	if err != nil {
		t.Fatal(err)
	}
	if scheduled.Post.Status != model.PostStatusScheduled {
		t.Errorf("expected scheduled, got %q", scheduled.Post.Status)
	}
	if scheduled.Post.PublishAt != "2024-06-17T09:00" {
		t.Errorf("publish time lost: %q", scheduled.Post.PublishAt)
	}
}

func TestSchedulePostRejectsPastTime(t *testing.T) {
	r := newMockPostRepo()
	uc := newUC(t, r, &fakeLLM{text: "draft"}, nil)

	ctx := context.Background()
	out, err := uc.GenerateSocialPost(ctx, testScope, content.GenerateSocialPostInput{Topic: "t"})
	if err != nil {
		t.Fatal(err)
	}

	_, err = uc.SchedulePost(ctx, testScope, content.SchedulePostInput{
		PostID:    out.Post.ID,
		PublishAt: "2024-06-15T08:00",
	})
	var verr *dateguard.ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected ValidationError, got %v", err)
	}

	got, _ := uc.repo.GetPost(ctx, out.Post.ID)
	if got.Status != model.PostStatusDraft {
		t.Errorf("failed scheduling must keep the post a draft, got %q", got.Status)
	}
}

func TestSchedulePostNotFound(t *testing.T) {
	uc := newUC(t, newMockPostRepo(), &fakeLLM{}, nil)

	_, err := uc.SchedulePost(context.Background(), testScope, content.SchedulePostInput{
		PostID:    "nope",
		PublishAt: "2024-06-17T09:00",
	})
	if !errors.Is(err, content.ErrPostNotFound) {
		t.Fatalf("expected ErrPostNotFound, got %v", err)
	}
}
