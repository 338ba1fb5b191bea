package usecase

import (
	"context"

	"aether/internal/chat/repository"
	"aether/pkg/log"
)

// messagePoster is the slice of the Slack client this domain needs.
type messagePoster interface {
	PostMessage(ctx context.Context, channelID, text string) (string, error)
}

// implUseCase is the private implementation of chat.UseCase.
type implUseCase struct {
	repo  repository.Repository
	slack messagePoster // nil when mirroring is not configured
	l     log.Logger
}

// New creates a new chat UseCase implementation. slack may be nil when
// no bot token is configured; messages are then stored without
// mirroring.
func New(repo repository.Repository, slack messagePoster, l log.Logger) *implUseCase {
	return &implUseCase{
		repo:  repo,
		slack: slack,
		l:     l,
	}
}
