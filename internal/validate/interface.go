package validate

import (
	"context"

	"aether/pkg/dateguard"
)

//go:generate mockery --name UseCase
type UseCase interface {
	// ValidateDate runs the date engine on a single candidate without
	// persisting anything. Hard failures come back inside the Result,
	// not as an error, so clients always get the full verdict.
	ValidateDate(ctx context.Context, input ValidateDateInput) (dateguard.Result, error)
}
