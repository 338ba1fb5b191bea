package usecase

import (
	"context"

	"aether/internal/lead/repository"
	"aether/pkg/hubspot"
	"aether/pkg/log"
)

// contactSyncer is the slice of the HubSpot client this domain needs.
type contactSyncer interface {
	CreateContact(ctx context.Context, props hubspot.ContactProperties) (*hubspot.Contact, error)
	UpdateContact(ctx context.Context, id string, props hubspot.ContactProperties) (*hubspot.Contact, error)
}

// implUseCase is the private implementation of lead.UseCase.
type implUseCase struct {
	repo    repository.Repository
	hubspot contactSyncer // nil when sync is not configured
	l       log.Logger
}

// New creates a new lead UseCase implementation. hs may be nil when no
// HubSpot token is configured; SyncToHubSpot then fails explicitly.
func New(repo repository.Repository, hs contactSyncer, l log.Logger) *implUseCase {
	return &implUseCase{
		repo:    repo,
		hubspot: hs,
		l:       l,
	}
}
