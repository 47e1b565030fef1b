package services

import (
	"time"

	"barbari/internal/core/domain/model/discount"
	"barbari/internal/core/domain/model/pricing"

	"github.com/shopspring/decimal"
)

// Duration estimation constants, in minutes.
const (
	baseDurationMinutes   = 60
	minutesPerKm          = 2
	minutesPerWalkUpFloor = 5
	minutesPerStop        = 15
	minutesPerPackingHour = 60
)

// PriceCalculator is a domain service that turns a move request and the
// active rate configuration into an itemized price breakdown.
//
// Key rules:
//   - Every optional input contributes zero when absent, never an error
//   - An unconfigured vehicle type prices at zero (the closed enumeration
//     makes a truly unknown type impossible)
//   - The floor surcharge counts only floors without an elevator and with a
//     positive floor number
//   - Walking legs resolve through the configuration's tier table,
//     closest-lower-bound per leg
//   - The discount is resolved through DiscountValidator; an ineligible code
//     contributes zero rather than failing the calculation
//   - The total is clamped at zero, so an oversized fixed discount can never
//     produce a negative price
type PriceCalculator struct {
	validator DiscountValidator
}

// NewPriceCalculator creates a new PriceCalculator instance.
func NewPriceCalculator() PriceCalculator {
	return PriceCalculator{validator: NewDiscountValidator()}
}

// Calculate prices the request against the configuration. The discount code
// aggregate is nil when the request carries no code or the code is unknown;
// validation failures show up as a zero discount with no details.
func (c PriceCalculator) Calculate(
	req pricing.Request,
	cfg *pricing.Configuration,
	code *discount.Code,
	now time.Time,
) (pricing.Breakdown, error) {
	if err := cfg.Validate(); err != nil {
		return pricing.Breakdown{}, err
	}

	breakdown := pricing.Breakdown{
		VehiclePrice:         cfg.VehicleRate(req.VehicleType),
		WorkerPrice:          c.workerPrice(req, cfg),
		DistancePrice:        c.distancePrice(req, cfg),
		FloorPrice:           c.floorPrice(req, cfg),
		WalkingDistancePrice: c.walkingDistancePrice(req, cfg),
		StopsPrice:           c.stopsPrice(req, cfg),
		PackingPrice:         c.packingPrice(req, cfg),
	}

	breakdown.Subtotal = decimal.Sum(
		breakdown.VehiclePrice,
		breakdown.WorkerPrice,
		breakdown.DistancePrice,
		breakdown.FloorPrice,
		breakdown.WalkingDistancePrice,
		breakdown.StopsPrice,
		breakdown.PackingPrice,
	)

	breakdown.Discount = decimal.Zero
	if req.DiscountCode != "" {
		if applied, reason := c.validator.Validate(code, breakdown.Subtotal, now); reason == RejectionNone {
			breakdown.Discount = applied.AmountFor(breakdown.Subtotal)
			breakdown.DiscountDetails = applied
		}
	}

	breakdown.TotalPrice = breakdown.Subtotal.Sub(breakdown.Discount)
	if breakdown.TotalPrice.IsNegative() {
		breakdown.TotalPrice = decimal.Zero
	}

	breakdown.EstimatedDurationMinutes = c.estimateDuration(req)
	return breakdown, nil
}

func (c PriceCalculator) workerPrice(req pricing.Request, cfg *pricing.Configuration) decimal.Decimal {
	if !req.RequiresWorkers || req.WorkerCount <= 0 {
		return decimal.Zero
	}
	return cfg.WorkerRate(req.VehicleType).Mul(decimal.NewFromInt(int64(req.WorkerCount)))
}

func (c PriceCalculator) distancePrice(req pricing.Request, cfg *pricing.Configuration) decimal.Decimal {
	if !req.DistanceKm.IsPositive() {
		return decimal.Zero
	}
	return req.DistanceKm.Mul(cfg.PerKmRate())
}

func (c PriceCalculator) floorPrice(req pricing.Request, cfg *pricing.Configuration) decimal.Decimal {
	price := decimal.Zero
	for _, floor := range req.Floors {
		if floor.HasElevator || floor.FloorNumber <= 0 {
			continue
		}
		price = price.Add(cfg.PerFloorRate().Mul(decimal.NewFromInt(int64(floor.FloorNumber))))
	}
	return price
}

func (c PriceCalculator) walkingDistancePrice(req pricing.Request, cfg *pricing.Configuration) decimal.Decimal {
	price := decimal.Zero
	for _, distanceMeters := range req.WalkingDistancesM {
		price = price.Add(cfg.WalkingAmount(distanceMeters))
	}
	return price
}

func (c PriceCalculator) stopsPrice(req pricing.Request, cfg *pricing.Configuration) decimal.Decimal {
	if req.StopsCount <= 0 {
		return decimal.Zero
	}
	return cfg.StopRate().Mul(decimal.NewFromInt(int64(req.StopsCount)))
}

func (c PriceCalculator) packingPrice(req pricing.Request, cfg *pricing.Configuration) decimal.Decimal {
	if !req.RequiresPacking {
		return decimal.Zero
	}

	price := cfg.PackingHourlyRate().Mul(decimal.NewFromInt(int64(req.PackingDurationHours)))
	if cfg.IncludePackingMaterialsInPrice() {
		price = price.Add(cfg.PackingMaterialsCost())
	}
	return price
}

func (c PriceCalculator) estimateDuration(req pricing.Request) int {
	minutes := baseDurationMinutes

	if req.DistanceKm.IsPositive() {
		minutes += int(req.DistanceKm.Mul(decimal.NewFromInt(minutesPerKm)).Round(0).IntPart())
	}

	for _, floor := range req.Floors {
		if !floor.HasElevator && floor.FloorNumber > 0 {
			minutes += minutesPerWalkUpFloor
		}
	}

	if req.StopsCount > 0 {
		minutes += minutesPerStop * req.StopsCount
	}

	if req.RequiresPacking {
		minutes += minutesPerPackingHour * req.PackingDurationHours
	}

	return minutes
}
