package ratingrepo

import (
	"context"
	"errors"

	"barbari/internal/core/domain/model/kernel"
	"barbari/internal/core/domain/model/rating"
	"barbari/internal/pkg/errs"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

const uniqueViolationCode = "23505"

// GormRatingRepository implements RatingRepository using GORM.
type GormRatingRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormRatingRepository creates a new GORM order rating repository.
func NewGormRatingRepository(db *gorm.DB, tracker aggregateTracker) *GormRatingRepository {
	return &GormRatingRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new order rating to the database.
// A unique violation on the order id surfaces as a Conflict error: an order
// is rated at most once.
func (r *GormRatingRepository) Add(ctx context.Context, aggregate *rating.OrderRating) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode {
			return errs.NewConflictErrorWithCause("order rating", err)
		}
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// GetByOrder retrieves the rating for the given order.
func (r *GormRatingRepository) GetByOrder(ctx context.Context, orderID kernel.UUID) (*rating.OrderRating, error) {
	if err := orderID.Validate(); err != nil {
		return nil, err
	}

	var dto OrderRatingDTO
	if err := r.db.WithContext(ctx).First(&dto, "order_id = ?", orderID.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("order rating", orderID.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetDriverRatings returns every driver-rating value attached to the
// driver's orders, oldest first.
func (r *GormRatingRepository) GetDriverRatings(ctx context.Context, driverID kernel.UUID) ([]int, error) {
	if err := driverID.Validate(); err != nil {
		return nil, err
	}

	ratings := make([]int, 0)

	rows, err := r.db.WithContext(ctx).Raw(`
		SELECT r.driver_rating
		FROM order_ratings r
		JOIN orders o ON o.id = r.order_id
		WHERE o.driver_id = ? AND r.driver_rating IS NOT NULL
		ORDER BY r.created_at
	`, driverID.Bytes()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var value int
		if err = rows.Scan(&value); err != nil {
			return nil, err
		}
		ratings = append(ratings, value)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return ratings, nil
}
