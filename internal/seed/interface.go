package seed

import (
	"context"

	"aether/internal/model"
)

//go:generate mockery --name UseCase
type UseCase interface {
	// Seed populates the workspace with demo data. Fails with
	// ErrAlreadySeeded when demo data exists and ErrBusy while another
	// run is in flight.
	Seed(ctx context.Context, sc model.Scope) (StatusOutput, error)

	// Remove deletes all demo data in dependency order, halting on the
	// first failed step so a retry can resume.
	Remove(ctx context.Context, sc model.Scope) (StatusOutput, error)

	Status(ctx context.Context, sc model.Scope) (StatusOutput, error)
}
