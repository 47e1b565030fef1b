package pricing

import (
	"barbari/internal/core/domain/model/discount"

	"github.com/shopspring/decimal"
)

// Breakdown is the itemized result of a price calculation.
// Subtotal is the sum of the seven component prices; TotalPrice is the
// subtotal minus the discount, clamped at zero.
type Breakdown struct {
	VehiclePrice         decimal.Decimal
	WorkerPrice          decimal.Decimal
	DistancePrice        decimal.Decimal
	FloorPrice           decimal.Decimal
	WalkingDistancePrice decimal.Decimal
	StopsPrice           decimal.Decimal
	PackingPrice         decimal.Decimal
	Subtotal             decimal.Decimal
	Discount             decimal.Decimal
	TotalPrice           decimal.Decimal

	EstimatedDurationMinutes int
	DiscountDetails          *discount.Applied
}
