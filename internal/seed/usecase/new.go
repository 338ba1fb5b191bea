package usecase

import (
	"sync"
	"time"

	chatRepo "aether/internal/chat/repository"
	contentRepo "aether/internal/content/repository"
	leadRepo "aether/internal/lead/repository"
	projectRepo "aether/internal/project/repository"
	"aether/internal/seed"
	taskRepo "aether/internal/task/repository"
	"aether/pkg/log"
)

// implUseCase is the private implementation of seed.UseCase. A single
// mutex makes seed and removal runs single-flight per process.
type implUseCase struct {
	mu        sync.Mutex
	running   bool
	lastSteps []seed.Step

	projects projectRepo.Repository
	tasks    taskRepo.Repository
	leads    leadRepo.Repository
	chat     chatRepo.Repository
	posts    contentRepo.Repository

	now func() time.Time
	l   log.Logger
}

// New creates a new seed UseCase implementation.
func New(
	projects projectRepo.Repository,
	tasks taskRepo.Repository,
	leads leadRepo.Repository,
	chat chatRepo.Repository,
	posts contentRepo.Repository,
	l log.Logger,
) *implUseCase {
	return &implUseCase{
		projects: projects,
		tasks:    tasks,
		leads:    leads,
		chat:     chat,
		posts:    posts,
		now:      time.Now,
		l:        l,
	}
}
