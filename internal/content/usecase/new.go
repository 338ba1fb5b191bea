package usecase

import (
	"context"
	"time"

	"aether/internal/content/repository"
	"aether/pkg/dateguard"
	"aether/pkg/datemath"
	"aether/pkg/gcalendar"
	"aether/pkg/llmprovider"
	"aether/pkg/log"
)

// generator is the slice of the LLM provider manager this domain needs.
type generator interface {
	GenerateContent(ctx context.Context, req *llmprovider.Request) (*llmprovider.Response, error)
}

// eventCreator is the slice of the calendar client this domain needs.
type eventCreator interface {
	CreateEvent(ctx context.Context, req gcalendar.CreateEventRequest) (*gcalendar.Event, error)
}

// implUseCase is the private implementation of content.UseCase.
type implUseCase struct {
	repo      repository.Repository
	llm       generator
	calendar  eventCreator // nil when no calendar is configured
	dates     *datemath.Parser
	validator *dateguard.Validator
	now       func() time.Time
	l         log.Logger
}

// New creates a new content UseCase implementation. calendar may be
// nil; meeting summaries then skip event creation.
func New(repo repository.Repository, llm generator, calendar eventCreator, dates *datemath.Parser, validator *dateguard.Validator, l log.Logger) *implUseCase {
	return &implUseCase{
		repo:      repo,
		llm:       llm,
		calendar:  calendar,
		dates:     dates,
		validator: validator,
		now:       time.Now,
		l:         l,
	}
}
