// Package driverrepo provides data transfer objects and mapping functions
// for driver persistence.
package driverrepo

import (
	"barbari/internal/core/domain/model/driver"
	"barbari/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// DriverDTO represents the database structure for persisting driver
// aggregates. The unique index on UserID enforces one driver profile per
// user account.
type DriverDTO struct {
	ID             uuid.UUID       `gorm:"type:uuid;primaryKey"`
	UserID         uuid.UUID       `gorm:"type:uuid;uniqueIndex"`
	VehicleType    int             `gorm:"type:smallint"`
	Rating         decimal.Decimal `gorm:"type:numeric"`
	TotalRides     int
	CompletedRides int
	CancelledRides int
	TotalEarnings  decimal.Decimal `gorm:"type:numeric"`
	IsAvailable    bool            `gorm:"index"`
	IsActive       bool
}

// TableName specifies the database table name for driver entities.
func (DriverDTO) TableName() string {
	return "drivers"
}

// fromDomain converts a driver domain aggregate to its database
// representation.
func fromDomain(aggregate *driver.Driver) DriverDTO {
	return DriverDTO{
		ID:             aggregate.ID().Bytes(),
		UserID:         aggregate.UserID().Bytes(),
		VehicleType:    int(aggregate.VehicleType()),
		Rating:         aggregate.Rating(),
		TotalRides:     aggregate.TotalRides(),
		CompletedRides: aggregate.CompletedRides(),
		CancelledRides: aggregate.CancelledRides(),
		TotalEarnings:  aggregate.TotalEarnings(),
		IsAvailable:    aggregate.IsAvailable(),
		IsActive:       aggregate.IsActive(),
	}
}

// toDomain converts a database DTO to a driver domain aggregate.
func toDomain(dto DriverDTO) (*driver.Driver, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	userID, err := kernel.UUIDFromBytes(dto.UserID[:])
	if err != nil {
		return nil, err
	}

	return driver.RestoreDriver(id, userID, kernel.VehicleType(dto.VehicleType), driver.RestoredState{
		Rating:         dto.Rating,
		TotalRides:     dto.TotalRides,
		CompletedRides: dto.CompletedRides,
		CancelledRides: dto.CancelledRides,
		TotalEarnings:  dto.TotalEarnings,
		IsAvailable:    dto.IsAvailable,
		IsActive:       dto.IsActive,
	})
}
