package repository

import (
	"context"

	"aether/internal/model"
)

// Repository is the interface for lead persistence.
type Repository interface {
	CreateLead(ctx context.Context, opt CreateLeadOptions) (model.Lead, error)
	GetLead(ctx context.Context, id string) (model.Lead, error)
	ListLeads(ctx context.Context, opt ListLeadsOptions) ([]model.Lead, error)
	UpdateLead(ctx context.Context, lead model.Lead) (model.Lead, error)
	DeleteLead(ctx context.Context, id string) error
}
