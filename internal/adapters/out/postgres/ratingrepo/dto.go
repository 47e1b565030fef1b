// Package ratingrepo provides data transfer objects and mapping functions
// for order rating persistence.
package ratingrepo

import (
	"time"

	"barbari/internal/core/domain/model/kernel"
	"barbari/internal/core/domain/model/rating"

	"github.com/google/uuid"
)

// OrderRatingDTO represents the database structure for persisting order
// ratings. The unique index on OrderID enforces one rating per order.
type OrderRatingDTO struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrderID       uuid.UUID `gorm:"type:uuid;uniqueIndex"`
	UserID        uuid.UUID `gorm:"type:uuid;index"`
	OverallRating int       `gorm:"type:smallint"`
	DriverRating  *int      `gorm:"type:smallint"`
	ServiceRating *int      `gorm:"type:smallint"`
	Comment       string
	CreatedAt     time.Time
}

// TableName specifies the database table name for order ratings.
func (OrderRatingDTO) TableName() string {
	return "order_ratings"
}

// fromDomain converts an order rating entity to its database representation.
func fromDomain(aggregate *rating.OrderRating) OrderRatingDTO {
	return OrderRatingDTO{
		ID:            aggregate.ID().Bytes(),
		OrderID:       aggregate.OrderID().Bytes(),
		UserID:        aggregate.UserID().Bytes(),
		OverallRating: aggregate.OverallRating(),
		DriverRating:  aggregate.DriverRating(),
		ServiceRating: aggregate.ServiceRating(),
		Comment:       aggregate.Comment(),
		CreatedAt:     aggregate.CreatedAt(),
	}
}

// toDomain converts a database DTO to an order rating entity.
func toDomain(dto OrderRatingDTO) (*rating.OrderRating, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	orderID, err := kernel.UUIDFromBytes(dto.OrderID[:])
	if err != nil {
		return nil, err
	}

	userID, err := kernel.UUIDFromBytes(dto.UserID[:])
	if err != nil {
		return nil, err
	}

	return rating.RestoreOrderRating(
		id, orderID, userID,
		dto.OverallRating,
		dto.DriverRating, dto.ServiceRating,
		dto.Comment,
		dto.CreatedAt,
	)
}
