// Package queries contains read-only operations in the CQRS architecture.
// Query handlers either reuse repository ports for reads that need domain
// reconstruction, or go straight to the database for flat projections.
package queries

import (
	"errors"

	"barbari/internal/core/domain/model/kernel"
	"barbari/internal/core/domain/model/pricing"
	"barbari/internal/pkg/errs"
	"barbari/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var ErrCalculatePriceQueryIsNotConstructed = errors.New(
	"CalculatePriceQuery must be created via NewCalculatePriceQuery constructor",
)

// CalculatePriceQueryParams groups the pricing-relevant attributes of a
// prospective move. Optional inputs are zero values.
type CalculatePriceQueryParams struct {
	VehicleType          kernel.VehicleType
	RequiresWorkers      bool
	WorkerCount          int
	DistanceKm           decimal.Decimal
	Floors               []pricing.Floor
	WalkingDistancesM    []int
	StopsCount           int
	RequiresPacking      bool
	PackingDurationHours int
	DiscountCode         string
}

// CalculatePriceQuery requests a price preview without creating an order.
// Previews never consume discount usage.
type CalculatePriceQuery struct { //nolint:recvcheck //using for validation
	params CalculatePriceQueryParams

	guard guard.ConstructorGuard
}

// NewCalculatePriceQuery creates a price preview query.
func NewCalculatePriceQuery(params CalculatePriceQueryParams) (CalculatePriceQuery, error) {
	query := CalculatePriceQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		params.VehicleType.Validate(),
		validateNonNegative("worker count", params.WorkerCount),
		validateNonNegative("stops count", params.StopsCount),
		validateNonNegative("packing duration hours", params.PackingDurationHours),
	); err != nil {
		return CalculatePriceQuery{}, err
	}

	query.params = params
	return query, nil
}

// Validate ensures the query was created through the constructor.
func (q CalculatePriceQuery) Validate() error {
	return q.guard.Validate(ErrCalculatePriceQueryIsNotConstructed)
}

// Request maps the query to the calculator's input.
func (q CalculatePriceQuery) Request() pricing.Request {
	return pricing.Request{
		VehicleType:          q.params.VehicleType,
		RequiresWorkers:      q.params.RequiresWorkers,
		WorkerCount:          q.params.WorkerCount,
		DistanceKm:           q.params.DistanceKm,
		Floors:               q.params.Floors,
		WalkingDistancesM:    q.params.WalkingDistancesM,
		StopsCount:           q.params.StopsCount,
		RequiresPacking:      q.params.RequiresPacking,
		PackingDurationHours: q.params.PackingDurationHours,
		DiscountCode:         q.params.DiscountCode,
	}
}

// DiscountCode returns the optional discount code.
func (q CalculatePriceQuery) DiscountCode() string {
	return q.params.DiscountCode
}

func validateNonNegative(paramName string, value int) error {
	if value < 0 {
		return errs.NewValueIsOutOfRangeError(paramName, value, 0, "unbounded")
	}
	return nil
}
