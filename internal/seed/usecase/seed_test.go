package usecase

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	chatRepo "aether/internal/chat/repository"
	contentRepo "aether/internal/content/repository"
	leadRepo "aether/internal/lead/repository"
	"aether/internal/model"
	projectRepo "aether/internal/project/repository"
	"aether/internal/seed"
	taskRepo "aether/internal/task/repository"
	"aether/pkg/docstore"
	pkgLog "aether/pkg/log"
)

// memStore backs all fake repositories and records delete order so
// tests can assert removal runs children-first.
type memStore struct {
	projects map[string]model.Project
	tasks    map[string]model.Task
	leads    map[string]model.Lead
	channels map[string]model.Channel
	messages map[string]model.Message
	posts    map[string]model.ScheduledPost

	deleteOrder []string // collection names in deletion order
	failDelete  string   // collection whose deletes fail
	nextID      int
}

func newMemStore() *memStore {
	return &memStore{
		projects: map[string]model.Project{},
		tasks:    map[string]model.Task{},
		leads:    map[string]model.Lead{},
		channels: map[string]model.Channel{},
		messages: map[string]model.Message{},
		posts:    map[string]model.ScheduledPost{},
	}
}

func (s *memStore) id(prefix string) string {
	s.nextID++
	return fmt.Sprintf("%s-%d", prefix, s.nextID)
}

func (s *memStore) deleted(collection string) error {
	if s.failDelete == collection {
		return errors.New(collection + " delete failed")
	}
	s.deleteOrder = append(s.deleteOrder, collection)
	return nil
}

type fakeProjects struct{ s *memStore }

func (f fakeProjects) CreateProject(_ context.Context, opt projectRepo.CreateProjectOptions) (model.Project, error) {
	p := model.Project{ID: f.s.id("proj"), WorkspaceID: opt.WorkspaceID, Name: opt.Name, Deadline: opt.Deadline, Demo: opt.Demo}
	f.s.projects[p.ID] = p
	return p, nil
}

func (f fakeProjects) GetProject(_ context.Context, id string) (model.Project, error) {
	p, ok := f.s.projects[id]
	if !ok {
		return model.Project{}, docstore.ErrNotFound
	}
	return p, nil
}

func (f fakeProjects) ListProjects(_ context.Context, opt projectRepo.ListProjectsOptions) ([]model.Project, error) {
	var out []model.Project
	for _, p := range f.s.projects {
		if opt.DemoOnly && !p.Demo {
			continue
		}
		out = append(out, p)
	}
	return out, nil
}

func (f fakeProjects) UpdateProject(_ context.Context, p model.Project) (model.Project, error) {
	f.s.projects[p.ID] = p
	return p, nil
}

func (f fakeProjects) DeleteProject(_ context.Context, id string) error {
	if err := f.s.deleted("projects"); err != nil {
		return err
	}
	delete(f.s.projects, id)
	return nil
}

type fakeTasks struct{ s *memStore }

func (f fakeTasks) CreateTask(_ context.Context, opt taskRepo.CreateTaskOptions) (model.Task, error) {
	t := model.Task{ID: f.s.id("task"), WorkspaceID: opt.WorkspaceID, ProjectID: opt.ProjectID, Title: opt.Title, DueDate: opt.DueDate, Demo: opt.Demo}
	f.s.tasks[t.ID] = t
	return t, nil
}

func (f fakeTasks) GetTask(_ context.Context, id string) (model.Task, error) {
	t, ok := f.s.tasks[id]
	if !ok {
		return model.Task{}, docstore.ErrNotFound
	}
	return t, nil
}

func (f fakeTasks) ListTasks(_ context.Context, opt taskRepo.ListTasksOptions) ([]model.Task, error) {
	var out []model.Task
	for _, t := range f.s.tasks {
		if opt.DemoOnly && !t.Demo {
			continue
		}
		out = append(out, t)
	}
	return out, nil
}

func (f fakeTasks) UpdateTask(_ context.Context, t model.Task) (model.Task, error) {
	f.s.tasks[t.ID] = t
	return t, nil
}

func (f fakeTasks) DeleteTask(_ context.Context, id string) error {
	if err := f.s.deleted("tasks"); err != nil {
		return err
	}
	delete(f.s.tasks, id)
	return nil
}

type fakeLeads struct{ s *memStore }

func (f fakeLeads) CreateLead(_ context.Context, opt leadRepo.CreateLeadOptions) (model.Lead, error) {
	l := model.Lead{ID: f.s.id("lead"), WorkspaceID: opt.WorkspaceID, Name: opt.Name, Demo: opt.Demo}
	f.s.leads[l.ID] = l
	return l, nil
}

func (f fakeLeads) GetLead(_ context.Context, id string) (model.Lead, error) {
	l, ok := f.s.leads[id]
	if !ok {
		return model.Lead{}, docstore.ErrNotFound
	}
	return l, nil
}

func (f fakeLeads) ListLeads(_ context.Context, opt leadRepo.ListLeadsOptions) ([]model.Lead, error) {
	var out []model.Lead
	for _, l := range f.s.leads {
		if opt.DemoOnly && !l.Demo {
			continue
		}
		out = append(out, l)
	}
	return out, nil
}

func (f fakeLeads) UpdateLead(_ context.Context, l model.Lead) (model.Lead, error) {
	f.s.leads[l.ID] = l
	return l, nil
}

func (f fakeLeads) DeleteLead(_ context.Context, id string) error {
	if err := f.s.deleted("leads"); err != nil {
		return err
	}
	delete(f.s.leads, id)
	return nil
}

type fakeChat struct{ s *memStore }

func (f fakeChat) CreateChannel(_ context.Context, opt chatRepo.CreateChannelOptions) (model.Channel, error) {
	ch := model.Channel{ID: f.s.id("ch"), WorkspaceID: opt.WorkspaceID, Name: opt.Name, Demo: opt.Demo}
	f.s.channels[ch.ID] = ch
	return ch, nil
}

func (f fakeChat) GetChannel(_ context.Context, id string) (model.Channel, error) {
	ch, ok := f.s.channels[id]
	if !ok {
		return model.Channel{}, docstore.ErrNotFound
	}
	return ch, nil
}

func (f fakeChat) GetChannelBySlackID(_ context.Context, _ string) (model.Channel, error) {
	return model.Channel{}, docstore.ErrNotFound
}

func (f fakeChat) ListChannels(_ context.Context, opt chatRepo.ListChannelsOptions) ([]model.Channel, error) {
	var out []model.Channel
	for _, ch := range f.s.channels {
		if opt.DemoOnly && !ch.Demo {
			continue
		}
		out = append(out, ch)
	}
	return out, nil
}

func (f fakeChat) DeleteChannel(_ context.Context, id string) error {
	if err := f.s.deleted("channels"); err != nil {
		return err
	}
	delete(f.s.channels, id)
	return nil
}

func (f fakeChat) CreateMessage(_ context.Context, opt chatRepo.CreateMessageOptions) (model.Message, error) {
	m := model.Message{ID: f.s.id("msg"), ChannelID: opt.ChannelID, Text: opt.Text, Demo: opt.Demo}
	f.s.messages[m.ID] = m
	return m, nil
}

func (f fakeChat) ListMessages(_ context.Context, opt chatRepo.ListMessagesOptions) ([]model.Message, error) {
	var out []model.Message
	for _, m := range f.s.messages {
		if opt.DemoOnly && !m.Demo {
			continue
		}
		out = append(out, m)
	}
	return out, nil
}

func (f fakeChat) DeleteMessage(_ context.Context, id string) error {
	if err := f.s.deleted("messages"); err != nil {
		return err
	}
	delete(f.s.messages, id)
	return nil
}

type fakePosts struct{ s *memStore }

func (f fakePosts) CreatePost(_ context.Context, opt contentRepo.CreatePostOptions) (model.ScheduledPost, error) {
	p := model.ScheduledPost{ID: f.s.id("post"), WorkspaceID: opt.WorkspaceID, Body: opt.Body, Demo: opt.Demo}
	f.s.posts[p.ID] = p
	return p, nil
}

func (f fakePosts) GetPost(_ context.Context, id string) (model.ScheduledPost, error) {
	p, ok := f.s.posts[id]
	if !ok {
		return model.ScheduledPost{}, docstore.ErrNotFound
	}
	return p, nil
}

func (f fakePosts) ListPosts(_ context.Context, opt contentRepo.ListPostsOptions) ([]model.ScheduledPost, error) {
	var out []model.ScheduledPost
	for _, p := range f.s.posts {
		if opt.DemoOnly && !p.Demo {
			continue
		}
		out = append(out, p)
	}
	return out, nil
}

func (f fakePosts) UpdatePost(_ context.Context, p model.ScheduledPost) (model.ScheduledPost, error) {
	f.s.posts[p.ID] = p
	return p, nil
}

func (f fakePosts) DeletePost(_ context.Context, id string) error {
	if err := f.s.deleted("posts"); err != nil {
		return err
	}
	delete(f.s.posts, id)
	return nil
}

func newSeeder(s *memStore) *implUseCase {
	uc := New(fakeProjects{s}, fakeTasks{s}, fakeLeads{s}, fakeChat{s}, fakePosts{s}, pkgLog.NewNoop())
	uc.now = func() time.Time { return time.Date(2024, 6, 15, 10, 0, 0, 0, time.Local) }
	return uc
}

var testScope = model.Scope{UserID: "u1", WorkspaceID: "ws1"}

func TestSeedCreatesDemoData(t *testing.T) {
	s := newMemStore()
	uc := newSeeder(s)

	out, err := uc.Seed(context.Background(), testScope)
	if err != nil {
		t.Fatalf("seed: %v", err)
	}
	if !out.Seeded {
		t.Error("expected seeded=true")
	}
	for _, step := range out.Steps {
		if step.Status != seed.StepDone {
			t.Errorf("step %s: expected done, got %s (%s)", step.ID, step.Status, step.Error)
		}
	}

	if len(s.projects) == 0 || len(s.tasks) == 0 || len(s.leads) == 0 ||
		len(s.channels) == 0 || len(s.messages) == 0 || len(s.posts) == 0 {
		t.Error("expected demo rows in every collection")
	}

	status, err := uc.Status(context.Background(), testScope)
	if err != nil {
		t.Fatal(err)
	}
	if !status.Seeded || status.Running {
		t.Errorf("unexpected status: %+v", status)
	}
}

func TestSeedTwiceFails(t *testing.T) {
	uc := newSeeder(newMemStore())

	if _, err := uc.Seed(context.Background(), testScope); err != nil {
		t.Fatal(err)
	}
	if _, err := uc.Seed(context.Background(), testScope); !errors.Is(err, seed.ErrAlreadySeeded) {
		t.Fatalf("expected ErrAlreadySeeded, got %v", err)
	}
}

func TestSeedWhileBusy(t *testing.T) {
	uc := newSeeder(newMemStore())
	uc.running = true

	if _, err := uc.Seed(context.Background(), testScope); !errors.Is(err, seed.ErrBusy) {
		t.Fatalf("expected ErrBusy, got %v", err)
	}
	if _, err := uc.Remove(context.Background(), testScope); !errors.Is(err, seed.ErrBusy) {
		t.Fatalf("expected ErrBusy, got %v", err)
	}
}

func TestRemoveNotSeeded(t *testing.T) {
	uc := newSeeder(newMemStore())

	if _, err := uc.Remove(context.Background(), testScope); !errors.Is(err, seed.ErrNotSeeded) {
		t.Fatalf("expected ErrNotSeeded, got %v", err)
	}
}

func TestRemoveDeletesChildrenFirst(t *testing.T) {
	s := newMemStore()
	uc := newSeeder(s)

	ctx := context.Background()
	if _, err := uc.Seed(ctx, testScope); err != nil {
		t.Fatal(err)
	}

	out, err := uc.Remove(ctx, testScope)
	if err != nil {
		t.Fatalf("remove: %v", err)
	}
	if out.Seeded {
		t.Error("expected seeded=false after full removal")
	}
	for _, step := range out.Steps {
		if step.Status != seed.StepDone {
			t.Errorf("step %s: expected done, got %s (%s)", step.ID, step.Status, step.Error)
		}
	}

	if len(s.projects)+len(s.tasks)+len(s.leads)+len(s.channels)+len(s.messages)+len(s.posts) != 0 {
		t.Error("expected all demo rows gone")
	}

	// Verify collection ordering: each collection's deletes form a
	// contiguous block in the required order.
	order := []string{"posts", "messages", "channels", "leads", "tasks", "projects"}
	rank := map[string]int{}
	for i, c := range order {
		rank[c] = i
	}
	last := -1
	for _, c := range s.deleteOrder {
		r := rank[c]
		if r < last {
			t.Fatalf("deletion order violated: %v", s.deleteOrder)
		}
		last = r
	}
}

func TestRemoveHaltsOnFailure(t *testing.T) {
	s := newMemStore()
	uc := newSeeder(s)

	ctx := context.Background()
	if _, err := uc.Seed(ctx, testScope); err != nil {
		t.Fatal(err)
	}

	s.failDelete = "leads"
	out, err := uc.Remove(ctx, testScope)
	if err != nil {
		t.Fatalf("remove: %v", err)
	}

	byID := map[string]seed.Step{}
	for _, step := range out.Steps {
		byID[step.ID] = step
	}

	for _, id := range []string{"posts", "messages", "channels"} {
		if byID[id].Status != seed.StepDone {
			t.Errorf("step %s: expected done, got %s", id, byID[id].Status)
		}
	}
	if byID["leads"].Status != seed.StepFailed || byID["leads"].Error == "" {
		t.Errorf("leads step should fail with an error, got %+v", byID["leads"])
	}
	for _, id := range []string{"tasks", "projects"} {
		if byID[id].Status != seed.StepPending {
			t.Errorf("step %s: expected pending after halt, got %s", id, byID[id].Status)
		}
	}

	// Projects survive a halted run, so the workspace still counts as
	// seeded and removal can be retried.
	status, err := uc.Status(ctx, testScope)
	if err != nil {
		t.Fatal(err)
	}
	if !status.Seeded {
		t.Error("halted removal must leave the seeded marker in place")
	}

	s.failDelete = ""
	if _, err := uc.Remove(ctx, testScope); err != nil {
		t.Fatalf("retry: %v", err)
	}
	if len(s.leads) != 0 || len(s.projects) != 0 {
		t.Error("retry should finish the removal")
	}
}
