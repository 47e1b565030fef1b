package queries

import (
	"context"
	"time"

	"barbari/internal/core/domain/model/kernel"
	"barbari/internal/core/domain/model/pricing"
	"barbari/internal/core/ports"

	"github.com/shopspring/decimal"
)

// GetActivePricingConfigQuery fetches the currently active rate
// configuration. It carries no parameters.
type GetActivePricingConfigQuery struct{}

// PricingConfigResponse is the flat projection of a rate configuration.
type PricingConfigResponse struct {
	ID                             string
	Name                           string
	BaseWorkerRate                 decimal.Decimal
	BaseVehicleRates               map[string]decimal.Decimal
	WorkerRatesByVehicle           map[string]decimal.Decimal
	PerKmRate                      decimal.Decimal
	PerFloorRate                   decimal.Decimal
	WalkingTiers                   []pricing.WalkingTier
	StopRate                       decimal.Decimal
	PackingHourlyRate              decimal.Decimal
	PackingMaterialsCost           decimal.Decimal
	IncludePackingMaterialsInPrice bool
	CancellationFee                decimal.Decimal
	ExpertVisitFee                 decimal.Decimal
	CreatedAt                      time.Time
}

// GetActivePricingConfigQueryHandler serves the active configuration.
type GetActivePricingConfigQueryHandler struct {
	pricingRepo ports.PricingRepository
}

// NewGetActivePricingConfigQueryHandler creates a handler bound to the
// pricing repository.
func NewGetActivePricingConfigQueryHandler(pricingRepo ports.PricingRepository) GetActivePricingConfigQueryHandler {
	return GetActivePricingConfigQueryHandler{pricingRepo: pricingRepo}
}

// Handle returns the active configuration, or an ObjectNotFound error when
// none has been activated yet.
func (h GetActivePricingConfigQueryHandler) Handle(
	ctx context.Context, _ GetActivePricingConfigQuery,
) (PricingConfigResponse, error) {
	cfg, err := h.pricingRepo.GetActive(ctx)
	if err != nil {
		return PricingConfigResponse{}, err
	}

	return PricingConfigResponse{
		ID:                             cfg.ID().String(),
		Name:                           cfg.Name(),
		BaseWorkerRate:                 cfg.BaseWorkerRate(),
		BaseVehicleRates:               vehicleRatesByName(cfg.BaseVehicleRates()),
		WorkerRatesByVehicle:           vehicleRatesByName(cfg.WorkerRatesByVehicle()),
		PerKmRate:                      cfg.PerKmRate(),
		PerFloorRate:                   cfg.PerFloorRate(),
		WalkingTiers:                   cfg.WalkingTiers(),
		StopRate:                       cfg.StopRate(),
		PackingHourlyRate:              cfg.PackingHourlyRate(),
		PackingMaterialsCost:           cfg.PackingMaterialsCost(),
		IncludePackingMaterialsInPrice: cfg.IncludePackingMaterialsInPrice(),
		CancellationFee:                cfg.CancellationFee(),
		ExpertVisitFee:                 cfg.ExpertVisitFee(),
		CreatedAt:                      cfg.CreatedAt(),
	}, nil
}

func vehicleRatesByName(rates map[kernel.VehicleType]decimal.Decimal) map[string]decimal.Decimal {
	named := make(map[string]decimal.Decimal, len(rates))
	for vehicleType, rate := range rates {
		named[vehicleType.String()] = rate
	}
	return named
}
