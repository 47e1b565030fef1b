package pricing

import (
	"barbari/internal/core/domain/model/kernel"

	"github.com/shopspring/decimal"
)

// Floor describes one floor the movers have to carry goods across.
// Floors served by an elevator do not contribute to the floor surcharge.
type Floor struct {
	FloorNumber int
	HasElevator bool
}

// Request carries every pricing-relevant attribute of an order request.
// Optional inputs are zero values; the calculator treats them as a zero
// contribution, never as an error.
type Request struct {
	VehicleType          kernel.VehicleType
	RequiresWorkers      bool
	WorkerCount          int
	DistanceKm           decimal.Decimal
	Floors               []Floor
	WalkingDistancesM    []int
	StopsCount           int
	RequiresPacking      bool
	PackingDurationHours int
	DiscountCode         string
}
