package ports

import (
	"context"

	"barbari/internal/core/domain/model/driver"
	"barbari/internal/core/domain/model/kernel"
)

// DriverRepository defines the persistence contract for driver aggregates.
type DriverRepository interface {
	// Add persists a new driver aggregate to storage.
	// Returns a Conflict error when the user already has a driver profile.
	Add(ctx context.Context, aggregate *driver.Driver) error

	// Update persists changes to an existing driver aggregate.
	Update(ctx context.Context, aggregate *driver.Driver) error

	// Get retrieves a driver aggregate by its unique identifier.
	// Returns an ObjectNotFound error when no such driver exists.
	Get(ctx context.Context, id kernel.UUID) (*driver.Driver, error)

	// GetForUpdate retrieves a driver aggregate with a row-level lock held
	// until the surrounding transaction ends. Used to serialize rating
	// aggregation and stat mutations per driver.
	GetForUpdate(ctx context.Context, id kernel.UUID) (*driver.Driver, error)
}
