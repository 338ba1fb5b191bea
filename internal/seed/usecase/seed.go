package usecase

import (
	"context"
	"fmt"

	chatRepo "aether/internal/chat/repository"
	contentRepo "aether/internal/content/repository"
	leadRepo "aether/internal/lead/repository"
	"aether/internal/model"
	projectRepo "aether/internal/project/repository"
	"aether/internal/seed"
	taskRepo "aether/internal/task/repository"
	"aether/pkg/dateguard"
)

// Seed step order: parents before children so references resolve.
var seedSteps = []seed.Step{
	{ID: "projects", Label: "Create demo projects"},
	{ID: "tasks", Label: "Create demo tasks"},
	{ID: "leads", Label: "Create demo leads"},
	{ID: "channels", Label: "Create demo channels"},
	{ID: "messages", Label: "Create demo messages"},
	{ID: "posts", Label: "Create demo posts"},
}

func (uc *implUseCase) Seed(ctx context.Context, sc model.Scope) (seed.StatusOutput, error) {
	if err := uc.begin(); err != nil {
		return seed.StatusOutput{}, err
	}
	defer uc.finish()

	seeded, err := uc.isSeeded(ctx, sc)
	if err != nil {
		return seed.StatusOutput{}, err
	}
	if seeded {
		return seed.StatusOutput{}, seed.ErrAlreadySeeded
	}

	steps := newSteps(seedSteps)
	uc.setSteps(steps)

	run := &seedRun{uc: uc, sc: sc}
	runners := map[string]func(context.Context) error{
		"projects": run.createProjects,
		"tasks":    run.createTasks,
		"leads":    run.createLeads,
		"channels": run.createChannels,
		"messages": run.createMessages,
		"posts":    run.createPosts,
	}

	uc.runSteps(ctx, steps, runners)

	return seed.StatusOutput{
		Seeded:  failedCount(steps) == 0,
		Running: false,
		Steps:   steps,
	}, nil
}

// seedRun carries state created by earlier steps into later ones.
type seedRun struct {
	uc *implUseCase
	sc model.Scope

	projectID string
	channelID string
}

func (r *seedRun) createProjects(ctx context.Context) error {
	deadline := r.uc.now().AddDate(0, 0, 30).Format(dateguard.DateFormat)

	p, err := r.uc.projects.CreateProject(ctx, projectRepo.CreateProjectOptions{
		WorkspaceID: r.sc.WorkspaceID,
		Name:        "Website relaunch (demo)",
		Description: "Refresh the marketing site before the busy season.",
		Deadline:    deadline,
		Color:       "#4f46e5",
		Demo:        true,
	})
	if err != nil {
		return err
	}
	r.projectID = p.ID
	return nil
}

func (r *seedRun) createTasks(ctx context.Context) error {
	now := r.uc.now()
	tasks := []taskRepo.CreateTaskOptions{
		{
			Title:    "Draft new homepage copy",
			Status:   model.TaskStatusInProgress,
			Priority: "p1",
			DueDate:  now.AddDate(0, 0, 3).Format(dateguard.DateFormat),
		},
		{
			Title:    "Collect customer testimonials",
			Status:   model.TaskStatusTodo,
			Priority: "p2",
			DueDate:  now.AddDate(0, 0, 10).Format(dateguard.DateFormat),
		},
		{
			Title:  "Brainstorm spring promotion",
			Status: model.TaskStatusTodo,
		},
	}

	for _, opt := range tasks {
		opt.WorkspaceID = r.sc.WorkspaceID
		opt.ProjectID = r.projectID
		opt.Demo = true
		if _, err := r.uc.tasks.CreateTask(ctx, opt); err != nil {
			return err
		}
	}
	return nil
}

func (r *seedRun) createLeads(ctx context.Context) error {
	leads := []leadRepo.CreateLeadOptions{
		{Name: "Nora Hale", Email: "nora@halebakery.example", Company: "Hale Bakery", Stage: model.LeadStageNew, Value: 1200},
		{Name: "Victor Sanz", Email: "victor@sanzlegal.example", Company: "Sanz Legal", Stage: model.LeadStageContacted, Value: 4800},
		{Name: "Priya Raman", Email: "priya@ramanfit.example", Company: "Raman Fitness", Stage: model.LeadStageQualified, Value: 9500},
	}

	for _, opt := range leads {
		opt.WorkspaceID = r.sc.WorkspaceID
		opt.Demo = true
		if _, err := r.uc.leads.CreateLead(ctx, opt); err != nil {
			return err
		}
	}
	return nil
}

func (r *seedRun) createChannels(ctx context.Context) error {
	ch, err := r.uc.chat.CreateChannel(ctx, chatRepo.CreateChannelOptions{
		WorkspaceID: r.sc.WorkspaceID,
		Name:        "general (demo)",
		Topic:       "Day-to-day chatter",
		Demo:        true,
	})
	if err != nil {
		return err
	}
	r.channelID = ch.ID
	return nil
}

func (r *seedRun) createMessages(ctx context.Context) error {
	messages := []string{
		"Welcome to Aether! This channel was created by the demo seeder.",
		"Try linking a Slack channel to mirror messages both ways.",
	}

	for _, text := range messages {
		_, err := r.uc.chat.CreateMessage(ctx, chatRepo.CreateMessageOptions{
			ChannelID:  r.channelID,
			AuthorName: "Aether Bot",
			Text:       text,
			Source:     "aether",
			Demo:       true,
		})
		if err != nil {
			return err
		}
	}
	return nil
}

func (r *seedRun) createPosts(ctx context.Context) error {
	_, err := r.uc.posts.CreatePost(ctx, contentRepo.CreatePostOptions{
		WorkspaceID: r.sc.WorkspaceID,
		Platform:    "linkedin",
		Body:        "We are refreshing our website! Stay tuned for the new look.",
		Status:      model.PostStatusDraft,
		Generated:   true,
		Demo:        true,
	})
	return err
}

// --- run machinery shared by Seed and Remove ---

func (uc *implUseCase) begin() error {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	if uc.running {
		return seed.ErrBusy
	}
	uc.running = true
	return nil
}

func (uc *implUseCase) finish() {
	uc.mu.Lock()
	uc.running = false
	uc.mu.Unlock()
}

func (uc *implUseCase) setSteps(steps []seed.Step) {
	uc.mu.Lock()
	uc.lastSteps = steps
	uc.mu.Unlock()
}

// runSteps executes steps in order, halting after the first failure so
// later steps stay pending and a retry can resume.
func (uc *implUseCase) runSteps(ctx context.Context, steps []seed.Step, runners map[string]func(context.Context) error) {
	for i := range steps {
		run, ok := runners[steps[i].ID]
		if !ok {
			steps[i].Status = seed.StepFailed
			steps[i].Error = fmt.Sprintf("no runner for step %s", steps[i].ID)
			return
		}

		steps[i].Status = seed.StepRunning
		if err := run(ctx); err != nil {
			uc.l.Errorf(ctx, "seed step %s failed: %v", steps[i].ID, err)
			steps[i].Status = seed.StepFailed
			steps[i].Error = err.Error()
			return
		}
		steps[i].Status = seed.StepDone
	}
}

func newSteps(template []seed.Step) []seed.Step {
	steps := make([]seed.Step, len(template))
	copy(steps, template)
	for i := range steps {
		steps[i].Status = seed.StepPending
	}
	return steps
}

func failedCount(steps []seed.Step) int {
	n := 0
	for _, s := range steps {
		if s.Status == seed.StepFailed {
			n++
		}
	}
	return n
}

// isSeeded uses demo projects as the marker: they are created first
// and removed last, so they exist for the whole lifetime of the demo
// data set.
func (uc *implUseCase) isSeeded(ctx context.Context, sc model.Scope) (bool, error) {
	projects, err := uc.projects.ListProjects(ctx, projectRepo.ListProjectsOptions{
		WorkspaceID: sc.WorkspaceID,
		DemoOnly:    true,
		Limit:       1,
	})
	if err != nil {
		return false, err
	}
	return len(projects) > 0, nil
}
