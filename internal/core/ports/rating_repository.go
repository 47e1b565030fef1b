package ports

import (
	"context"

	"barbari/internal/core/domain/model/kernel"
	"barbari/internal/core/domain/model/rating"
)

// RatingRepository defines the persistence contract for order ratings.
type RatingRepository interface {
	// Add persists a new order rating to storage.
	// Returns a Conflict error when the order is already rated; the schema
	// enforces one rating per order with a unique constraint.
	Add(ctx context.Context, aggregate *rating.OrderRating) error

	// GetByOrder retrieves the rating for the given order.
	// Returns an ObjectNotFound error when the order is not yet rated.
	GetByOrder(ctx context.Context, orderID kernel.UUID) (*rating.OrderRating, error)

	// GetDriverRatings returns every driver-rating value attached to the
	// driver's orders, in submission order. Feeds the rating aggregation.
	GetDriverRatings(ctx context.Context, driverID kernel.UUID) ([]int, error)
}
