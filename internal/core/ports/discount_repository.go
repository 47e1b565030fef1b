package ports

import (
	"context"
	"time"

	"barbari/internal/core/domain/model/discount"
	"barbari/internal/core/domain/model/kernel"
)

// DiscountRepository defines the persistence contract for discount codes.
type DiscountRepository interface {
	// Add persists a new discount code to storage.
	// Returns a Conflict error when the normalized code string is taken.
	Add(ctx context.Context, aggregate *discount.Code) error

	// Update persists changes to an existing discount code.
	Update(ctx context.Context, aggregate *discount.Code) error

	// Get retrieves a discount code by its unique identifier.
	// Returns an ObjectNotFound error when no such code exists.
	Get(ctx context.Context, id kernel.UUID) (*discount.Code, error)

	// GetByCode retrieves a discount code by its normalized code string.
	// Returns an ObjectNotFound error when no such code exists.
	GetByCode(ctx context.Context, code string) (*discount.Code, error)

	// Redeem consumes one usage of the code in a single conditional update:
	// the usage count is incremented only while it is below the usage limit.
	// Returns a Conflict error when the limit is already reached, so
	// concurrent redemptions can never oversell a capped code.
	Redeem(ctx context.Context, id kernel.UUID) error

	// DeactivateExpired clears the active flag on every code whose end date
	// is before now. Returns the number of codes deactivated.
	DeactivateExpired(ctx context.Context, now time.Time) (int64, error)
}
