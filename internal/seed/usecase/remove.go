package usecase

import (
	"context"

	chatRepo "aether/internal/chat/repository"
	contentRepo "aether/internal/content/repository"
	leadRepo "aether/internal/lead/repository"
	"aether/internal/model"
	projectRepo "aether/internal/project/repository"
	"aether/internal/seed"
	taskRepo "aether/internal/task/repository"
)

// Removal step order: children before parents, the reverse of
// seeding, so a halted run never leaves orphaned references.
var removeSteps = []seed.Step{
	{ID: "posts", Label: "Remove demo posts"},
	{ID: "messages", Label: "Remove demo messages"},
	{ID: "channels", Label: "Remove demo channels"},
	{ID: "leads", Label: "Remove demo leads"},
	{ID: "tasks", Label: "Remove demo tasks"},
	{ID: "projects", Label: "Remove demo projects"},
}

func (uc *implUseCase) Remove(ctx context.Context, sc model.Scope) (seed.StatusOutput, error) {
	if err := uc.begin(); err != nil {
		return seed.StatusOutput{}, err
	}
	defer uc.finish()

	seeded, err := uc.isSeeded(ctx, sc)
	if err != nil {
		return seed.StatusOutput{}, err
	}
	if !seeded {
		return seed.StatusOutput{}, seed.ErrNotSeeded
	}

	steps := newSteps(removeSteps)
	uc.setSteps(steps)

	runners := map[string]func(context.Context) error{
		"posts":    func(ctx context.Context) error { return uc.removePosts(ctx, sc) },
		"messages": func(ctx context.Context) error { return uc.removeMessages(ctx, sc) },
		"channels": func(ctx context.Context) error { return uc.removeChannels(ctx, sc) },
		"leads":    func(ctx context.Context) error { return uc.removeLeads(ctx, sc) },
		"tasks":    func(ctx context.Context) error { return uc.removeTasks(ctx, sc) },
		"projects": func(ctx context.Context) error { return uc.removeProjects(ctx, sc) },
	}

	uc.runSteps(ctx, steps, runners)

	return seed.StatusOutput{
		Seeded:  failedCount(steps) > 0,
		Running: false,
		Steps:   steps,
	}, nil
}

func (uc *implUseCase) Status(ctx context.Context, sc model.Scope) (seed.StatusOutput, error) {
	seeded, err := uc.isSeeded(ctx, sc)
	if err != nil {
		return seed.StatusOutput{}, err
	}

	uc.mu.Lock()
	defer uc.mu.Unlock()
	return seed.StatusOutput{
		Seeded:  seeded,
		Running: uc.running,
		Steps:   uc.lastSteps,
	}, nil
}

func (uc *implUseCase) removePosts(ctx context.Context, sc model.Scope) error {
	posts, err := uc.posts.ListPosts(ctx, contentRepo.ListPostsOptions{
		WorkspaceID: sc.WorkspaceID,
		DemoOnly:    true,
	})
	if err != nil {
		return err
	}
	for _, p := range posts {
		if err := uc.posts.DeletePost(ctx, p.ID); err != nil {
			return err
		}
	}
	return nil
}

func (uc *implUseCase) removeMessages(ctx context.Context, sc model.Scope) error {
	messages, err := uc.chat.ListMessages(ctx, chatRepo.ListMessagesOptions{DemoOnly: true})
	if err != nil {
		return err
	}
	for _, m := range messages {
		if err := uc.chat.DeleteMessage(ctx, m.ID); err != nil {
			return err
		}
	}
	return nil
}

func (uc *implUseCase) removeChannels(ctx context.Context, sc model.Scope) error {
	channels, err := uc.chat.ListChannels(ctx, chatRepo.ListChannelsOptions{
		WorkspaceID: sc.WorkspaceID,
		DemoOnly:    true,
	})
	if err != nil {
		return err
	}
	for _, ch := range channels {
		if err := uc.chat.DeleteChannel(ctx, ch.ID); err != nil {
			return err
		}
	}
	return nil
}

func (uc *implUseCase) removeLeads(ctx context.Context, sc model.Scope) error {
	leads, err := uc.leads.ListLeads(ctx, leadRepo.ListLeadsOptions{
		WorkspaceID: sc.WorkspaceID,
		DemoOnly:    true,
	})
	if err != nil {
		return err
	}
	for _, l := range leads {
		if err := uc.leads.DeleteLead(ctx, l.ID); err != nil {
			return err
		}
	}
	return nil
}

func (uc *implUseCase) removeTasks(ctx context.Context, sc model.Scope) error {
	tasks, err := uc.tasks.ListTasks(ctx, taskRepo.ListTasksOptions{
		WorkspaceID: sc.WorkspaceID,
		DemoOnly:    true,
	})
	if err != nil {
		return err
	}
	for _, t := range tasks {
		if err := uc.tasks.DeleteTask(ctx, t.ID); err != nil {
			return err
		}
	}
	return nil
}

func (uc *implUseCase) removeProjects(ctx context.Context, sc model.Scope) error {
	projects, err := uc.projects.ListProjects(ctx, projectRepo.ListProjectsOptions{
		WorkspaceID: sc.WorkspaceID,
		DemoOnly:    true,
	})
	if err != nil {
		return err
	}
	for _, p := range projects {
		if err := uc.projects.DeleteProject(ctx, p.ID); err != nil {
			return err
		}
	}
	return nil
}
