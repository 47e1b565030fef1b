// Package discountrepo provides data transfer objects and mapping functions
// for discount code persistence.
package discountrepo

import (
	"time"

	"barbari/internal/core/domain/model/discount"
	"barbari/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CodeDTO represents the database structure for persisting discount codes.
// Code strings are stored normalized (upper case, trimmed) and carry a
// unique index.
type CodeDTO struct {
	ID             uuid.UUID        `gorm:"type:uuid;primaryKey"`
	Code           string           `gorm:"uniqueIndex"`
	Kind           int              `gorm:"type:smallint"`
	Value          decimal.Decimal  `gorm:"type:numeric"`
	MaxDiscount    *decimal.Decimal `gorm:"type:numeric"`
	MinOrderAmount *decimal.Decimal `gorm:"type:numeric"`
	StartDate      time.Time
	EndDate        *time.Time
	UsageLimit     *int
	UsageCount     int
	PerUserLimit   *int
	IsActive       bool `gorm:"index"`
	Description    string
}

// TableName specifies the database table name for discount codes.
func (CodeDTO) TableName() string {
	return "discount_codes"
}

// fromDomain converts a discount code aggregate to its database
// representation.
func fromDomain(aggregate *discount.Code) CodeDTO {
	return CodeDTO{
		ID:             aggregate.ID().Bytes(),
		Code:           aggregate.Value(),
		Kind:           int(aggregate.Kind()),
		Value:          aggregate.Amount(),
		MaxDiscount:    aggregate.MaxDiscount(),
		MinOrderAmount: aggregate.MinOrderAmount(),
		StartDate:      aggregate.StartDate(),
		EndDate:        aggregate.EndDate(),
		UsageLimit:     aggregate.UsageLimit(),
		UsageCount:     aggregate.UsageCount(),
		PerUserLimit:   aggregate.PerUserLimit(),
		IsActive:       aggregate.IsActive(),
		Description:    aggregate.Description(),
	}
}

// toDomain converts a database DTO to a discount code aggregate.
func toDomain(dto CodeDTO) (*discount.Code, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	return discount.RestoreCode(id, discount.CodeParams{
		Code:           dto.Code,
		Kind:           discount.Kind(dto.Kind),
		Value:          dto.Value,
		MaxDiscount:    dto.MaxDiscount,
		MinOrderAmount: dto.MinOrderAmount,
		StartDate:      dto.StartDate,
		EndDate:        dto.EndDate,
		UsageLimit:     dto.UsageLimit,
		PerUserLimit:   dto.PerUserLimit,
		Description:    dto.Description,
	}, dto.UsageCount, dto.IsActive)
}
