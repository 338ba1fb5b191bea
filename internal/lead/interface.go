package lead

import (
	"context"

	"aether/internal/model"
)

//go:generate mockery --name UseCase
type UseCase interface {
	Create(ctx context.Context, sc model.Scope, input CreateLeadInput) (LeadOutput, error)
	List(ctx context.Context, sc model.Scope, input ListLeadsInput) (ListLeadsOutput, error)
	Detail(ctx context.Context, sc model.Scope, id string) (LeadOutput, error)
	Update(ctx context.Context, sc model.Scope, input UpdateLeadInput) (LeadOutput, error)
	Delete(ctx context.Context, sc model.Scope, id string) error

	// SyncToHubSpot pushes the lead to HubSpot as a CRM contact,
	// creating it on first sync and patching it afterwards.
	SyncToHubSpot(ctx context.Context, sc model.Scope, id string) (LeadOutput, error)
}
