package ports

import (
	"context"

	"barbari/internal/core/domain/model/kernel"
	"barbari/internal/core/domain/model/pricing"
)

// PricingRepository defines the persistence contract for rate configurations.
//
// The "at most one active configuration" invariant is shared between the
// activation handler (deactivate-all-then-activate in one transaction) and
// the storage schema (a partial unique index on the active flag), so a
// reader can never observe two active configurations.
type PricingRepository interface {
	// Add persists a new configuration to storage.
	Add(ctx context.Context, aggregate *pricing.Configuration) error

	// Update persists changes to an existing configuration.
	Update(ctx context.Context, aggregate *pricing.Configuration) error

	// Get retrieves a configuration by its unique identifier.
	// Returns an ObjectNotFound error when no such configuration exists.
	Get(ctx context.Context, id kernel.UUID) (*pricing.Configuration, error)

	// GetActive retrieves the single active configuration.
	// Returns an ObjectNotFound error when no configuration is active.
	GetActive(ctx context.Context) (*pricing.Configuration, error)

	// DeactivateAll clears the active flag on every configuration.
	// Must run inside the same transaction as the subsequent activation.
	DeactivateAll(ctx context.Context) error
}
