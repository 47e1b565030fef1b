// Package pricingrepo provides data transfer objects and mapping functions
// for rate configuration persistence.
package pricingrepo

import (
	"time"

	"barbari/internal/core/domain/model/kernel"
	"barbari/internal/core/domain/model/pricing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ConfigurationDTO represents the database structure for persisting rate
// configurations. Vehicle rate tables and walking tiers are stored as JSONB:
// they are read as whole documents and never filtered on. The partial unique
// index on IsActive lets at most one row hold is_active = true, backing the
// single-active invariant even if two activations race.
type ConfigurationDTO struct {
	ID                             uuid.UUID                  `gorm:"type:uuid;primaryKey"`
	Name                           string                     `gorm:"uniqueIndex"`
	BaseWorkerRate                 decimal.Decimal            `gorm:"type:numeric"`
	BaseVehicleRates               map[string]decimal.Decimal `gorm:"serializer:json;type:jsonb"`
	WorkerRatesByVehicle           map[string]decimal.Decimal `gorm:"serializer:json;type:jsonb"`
	PerKmRate                      decimal.Decimal            `gorm:"type:numeric"`
	PerFloorRate                   decimal.Decimal            `gorm:"type:numeric"`
	WalkingTiers                   []WalkingTierDTO           `gorm:"serializer:json;type:jsonb"`
	StopRate                       decimal.Decimal            `gorm:"type:numeric"`
	PackingHourlyRate              decimal.Decimal            `gorm:"type:numeric"`
	PackingMaterialsCost           decimal.Decimal            `gorm:"type:numeric"`
	IncludePackingMaterialsInPrice bool
	CancellationFee                decimal.Decimal `gorm:"type:numeric"`
	ExpertVisitFee                 decimal.Decimal `gorm:"type:numeric"`
	IsActive                       bool            `gorm:"uniqueIndex:udx_pricing_configurations_active,where:is_active"`
	CreatedAt                      time.Time
}

// TableName specifies the database table name for rate configurations.
func (ConfigurationDTO) TableName() string {
	return "pricing_configurations"
}

// WalkingTierDTO is the JSON shape of one walking distance tier.
type WalkingTierDTO struct {
	ThresholdMeters int             `json:"threshold_meters"`
	Amount          decimal.Decimal `json:"amount"`
}

// fromDomain converts a rate configuration aggregate to its database
// representation.
func fromDomain(aggregate *pricing.Configuration) ConfigurationDTO {
	tiers := make([]WalkingTierDTO, 0, len(aggregate.WalkingTiers()))
	for _, tier := range aggregate.WalkingTiers() {
		tiers = append(tiers, WalkingTierDTO{
			ThresholdMeters: tier.ThresholdMeters,
			Amount:          tier.Amount,
		})
	}

	return ConfigurationDTO{
		ID:                             aggregate.ID().Bytes(),
		Name:                           aggregate.Name(),
		BaseWorkerRate:                 aggregate.BaseWorkerRate(),
		BaseVehicleRates:               ratesToJSON(aggregate.BaseVehicleRates()),
		WorkerRatesByVehicle:           ratesToJSON(aggregate.WorkerRatesByVehicle()),
		PerKmRate:                      aggregate.PerKmRate(),
		PerFloorRate:                   aggregate.PerFloorRate(),
		WalkingTiers:                   tiers,
		StopRate:                       aggregate.StopRate(),
		PackingHourlyRate:              aggregate.PackingHourlyRate(),
		PackingMaterialsCost:           aggregate.PackingMaterialsCost(),
		IncludePackingMaterialsInPrice: aggregate.IncludePackingMaterialsInPrice(),
		CancellationFee:                aggregate.CancellationFee(),
		ExpertVisitFee:                 aggregate.ExpertVisitFee(),
		IsActive:                       aggregate.IsActive(),
		CreatedAt:                      aggregate.CreatedAt(),
	}
}

// toDomain converts a database DTO to a rate configuration aggregate.
func toDomain(dto ConfigurationDTO) (*pricing.Configuration, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	baseVehicleRates, err := ratesFromJSON(dto.BaseVehicleRates)
	if err != nil {
		return nil, err
	}

	workerRates, err := ratesFromJSON(dto.WorkerRatesByVehicle)
	if err != nil {
		return nil, err
	}

	tiers := make([]pricing.WalkingTier, 0, len(dto.WalkingTiers))
	for _, tier := range dto.WalkingTiers {
		tiers = append(tiers, pricing.WalkingTier{
			ThresholdMeters: tier.ThresholdMeters,
			Amount:          tier.Amount,
		})
	}

	return pricing.RestoreConfiguration(id, pricing.ConfigurationParams{
		Name:                           dto.Name,
		BaseWorkerRate:                 dto.BaseWorkerRate,
		BaseVehicleRates:               baseVehicleRates,
		WorkerRatesByVehicle:           workerRates,
		PerKmRate:                      dto.PerKmRate,
		PerFloorRate:                   dto.PerFloorRate,
		WalkingTiers:                   tiers,
		StopRate:                       dto.StopRate,
		PackingHourlyRate:              dto.PackingHourlyRate,
		PackingMaterialsCost:           dto.PackingMaterialsCost,
		IncludePackingMaterialsInPrice: dto.IncludePackingMaterialsInPrice,
		CancellationFee:                dto.CancellationFee,
		ExpertVisitFee:                 dto.ExpertVisitFee,
	}, dto.IsActive, dto.CreatedAt)
}

func ratesToJSON(rates map[kernel.VehicleType]decimal.Decimal) map[string]decimal.Decimal {
	if len(rates) == 0 {
		return nil
	}

	out := make(map[string]decimal.Decimal, len(rates))
	for vehicleType, rate := range rates {
		out[vehicleType.String()] = rate
	}
	return out
}

func ratesFromJSON(rates map[string]decimal.Decimal) (map[kernel.VehicleType]decimal.Decimal, error) {
	if len(rates) == 0 {
		return nil, nil
	}

	out := make(map[kernel.VehicleType]decimal.Decimal, len(rates))
	for name, rate := range rates {
		vehicleType, err := kernel.VehicleTypeFromString(name)
		if err != nil {
			return nil, err
		}
		out[vehicleType] = rate
	}
	return out, nil
}
