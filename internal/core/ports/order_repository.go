package ports

import (
	"context"

	"barbari/internal/core/domain/model/kernel"
	"barbari/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
type OrderRepository interface {
	// Add persists a new order aggregate to storage.
	// Returns a Concurrency error when the order number is already taken,
	// so the creating handler can regenerate and retry.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order aggregate.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order aggregate by its unique identifier.
	// Returns an ObjectNotFound error when no such order exists.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetLastNumberWithPrefix returns the lexicographically greatest order
	// number starting with prefix, or the empty string when none exists.
	// Used by the order number generator to continue today's sequence.
	GetLastNumberWithPrefix(ctx context.Context, prefix string) (string, error)
}
