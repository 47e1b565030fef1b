// Package orderrepo provides data transfer objects and mapping functions for
// order persistence. It implements the repository pattern for the order
// aggregate, handling the conversion between domain entities and database
// representations.
package orderrepo

import (
	"time"

	"barbari/internal/core/domain/model/kernel"
	"barbari/internal/core/domain/model/order"
	"barbari/internal/core/domain/model/pricing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderDTO represents the database structure for persisting order aggregates.
// The price breakdown is flattened into numeric columns so projections can be
// served without reconstructing the aggregate. The unique index on
// OrderNumber backs the optimistic order number generation: a losing writer
// gets a unique violation and retries with a fresh number.
type OrderDTO struct {
	ID                       uuid.UUID  `gorm:"type:uuid;primaryKey"`
	OrderNumber              string     `gorm:"uniqueIndex"`
	UserID                   uuid.UUID  `gorm:"type:uuid;index"`
	ServiceID                uuid.UUID  `gorm:"type:uuid"`
	VehicleType              int        `gorm:"type:smallint"`
	Status                   int        `gorm:"type:smallint;index"`
	DriverID                 *uuid.UUID `gorm:"type:uuid;index"`
	ScheduledAt              time.Time
	VehiclePrice             decimal.Decimal `gorm:"type:numeric"`
	WorkerPrice              decimal.Decimal `gorm:"type:numeric"`
	DistancePrice            decimal.Decimal `gorm:"type:numeric"`
	FloorPrice               decimal.Decimal `gorm:"type:numeric"`
	WalkingDistancePrice     decimal.Decimal `gorm:"type:numeric"`
	StopsPrice               decimal.Decimal `gorm:"type:numeric"`
	PackingPrice             decimal.Decimal `gorm:"type:numeric"`
	Subtotal                 decimal.Decimal `gorm:"type:numeric"`
	Discount                 decimal.Decimal `gorm:"type:numeric"`
	TotalPrice               decimal.Decimal `gorm:"type:numeric"`
	EstimatedDurationMinutes int
	DiscountCode             *string
	IsPaid                   bool
	CancellationReason       string
	CreatedAt                time.Time
	StartedAt                *time.Time
	CompletedAt              *time.Time
	CancelledAt              *time.Time
}

// TableName specifies the database table name for order entities.
func (OrderDTO) TableName() string {
	return "orders"
}

// fromDomain converts an order domain aggregate to its database
// representation.
func fromDomain(aggregate *order.Order) OrderDTO {
	var driverID *uuid.UUID
	if id := aggregate.Driver(); id != nil {
		raw := id.Bytes()
		driverID = &raw
	}

	breakdown := aggregate.Breakdown()

	return OrderDTO{
		ID:                       aggregate.ID().Bytes(),
		OrderNumber:              aggregate.OrderNumber(),
		UserID:                   aggregate.UserID().Bytes(),
		ServiceID:                aggregate.ServiceID().Bytes(),
		VehicleType:              int(aggregate.VehicleType()),
		Status:                   int(aggregate.Status()),
		DriverID:                 driverID,
		ScheduledAt:              aggregate.ScheduledAt(),
		VehiclePrice:             breakdown.VehiclePrice,
		WorkerPrice:              breakdown.WorkerPrice,
		DistancePrice:            breakdown.DistancePrice,
		FloorPrice:               breakdown.FloorPrice,
		WalkingDistancePrice:     breakdown.WalkingDistancePrice,
		StopsPrice:               breakdown.StopsPrice,
		PackingPrice:             breakdown.PackingPrice,
		Subtotal:                 breakdown.Subtotal,
		Discount:                 breakdown.Discount,
		TotalPrice:               breakdown.TotalPrice,
		EstimatedDurationMinutes: breakdown.EstimatedDurationMinutes,
		DiscountCode:             aggregate.DiscountCode(),
		IsPaid:                   aggregate.IsPaid(),
		CancellationReason:       aggregate.CancellationReason(),
		CreatedAt:                aggregate.CreatedAt(),
		StartedAt:                aggregate.StartedAt(),
		CompletedAt:              aggregate.CompletedAt(),
		CancelledAt:              aggregate.CancelledAt(),
	}
}

// toDomain converts a database DTO to an order domain aggregate.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	userID, err := kernel.UUIDFromBytes(dto.UserID[:])
	if err != nil {
		return nil, err
	}

	serviceID, err := kernel.UUIDFromBytes(dto.ServiceID[:])
	if err != nil {
		return nil, err
	}

	var driverID *kernel.UUID
	if dto.DriverID != nil {
		dID, driverErr := kernel.UUIDFromBytes((*dto.DriverID)[:])
		if driverErr != nil {
			return nil, driverErr
		}

		driverID = &dID
	}

	breakdown := pricing.Breakdown{
		VehiclePrice:             dto.VehiclePrice,
		WorkerPrice:              dto.WorkerPrice,
		DistancePrice:            dto.DistancePrice,
		FloorPrice:               dto.FloorPrice,
		WalkingDistancePrice:     dto.WalkingDistancePrice,
		StopsPrice:               dto.StopsPrice,
		PackingPrice:             dto.PackingPrice,
		Subtotal:                 dto.Subtotal,
		Discount:                 dto.Discount,
		TotalPrice:               dto.TotalPrice,
		EstimatedDurationMinutes: dto.EstimatedDurationMinutes,
	}

	return order.RestoreOrder(
		id,
		dto.OrderNumber,
		userID,
		serviceID,
		kernel.VehicleType(dto.VehicleType),
		dto.ScheduledAt,
		breakdown,
		dto.DiscountCode,
		dto.CreatedAt,
		order.RestoredState{
			Status:             order.Status(dto.Status),
			DriverID:           driverID,
			IsPaid:             dto.IsPaid,
			StartedAt:          dto.StartedAt,
			CompletedAt:        dto.CompletedAt,
			CancelledAt:        dto.CancelledAt,
			CancellationReason: dto.CancellationReason,
		},
	)
}
