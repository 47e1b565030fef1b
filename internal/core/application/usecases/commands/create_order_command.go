package commands

import (
	"errors"
	"time"

	"barbari/internal/core/domain/model/kernel"
	"barbari/internal/core/domain/model/pricing"
	"barbari/internal/pkg/errs"
	"barbari/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var ErrCreateOrderCommandIsNotConstructed = errors.New(
	"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
)

// CreateOrderCommandParams groups the inputs of an order creation request:
// who is moving, when, with which vehicle, and every pricing-relevant detail
// of the move.
type CreateOrderCommandParams struct {
	OrderID              kernel.UUID
	UserID               kernel.UUID
	ServiceID            kernel.UUID
	VehicleType          kernel.VehicleType
	ScheduledAt          time.Time
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

// CreateOrderCommand represents a request to create a new moving order.
// The price is calculated and frozen onto the order at creation time.
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	params CreateOrderCommandParams

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand creates a command to register a new moving order.
// Identifiers and the vehicle type must be valid; counted inputs must be
// non-negative. Returns an error if any validation fails.
func NewCreateOrderCommand(params CreateOrderCommandParams) (CreateOrderCommand, error) {
	command := CreateOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		params.OrderID.Validate(),
		params.UserID.Validate(),
		params.ServiceID.Validate(),
		params.VehicleType.Validate(),
		validateScheduledAt(params.ScheduledAt),
		validateNonNegativeCount("worker count", params.WorkerCount),
		validateNonNegativeCount("stops count", params.StopsCount),
		validateNonNegativeCount("packing duration hours", params.PackingDurationHours),
		validateNonNegativeDecimal("distance", params.DistanceKm),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	command.params = params
	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// Params returns the order creation inputs.
func (c CreateOrderCommand) Params() CreateOrderCommandParams {
	return c.params
}

// PricingRequest maps the command to the calculator's input.
func (c CreateOrderCommand) PricingRequest() pricing.Request {
	return pricing.Request{
		VehicleType:          c.params.VehicleType,
		RequiresWorkers:      c.params.RequiresWorkers,
		WorkerCount:          c.params.WorkerCount,
		DistanceKm:           c.params.DistanceKm,
		Floors:               c.params.Floors,
		WalkingDistancesM:    c.params.WalkingDistancesM,
		StopsCount:           c.params.StopsCount,
		RequiresPacking:      c.params.RequiresPacking,
		PackingDurationHours: c.params.PackingDurationHours,
		DiscountCode:         c.params.DiscountCode,
	}
}

func validateScheduledAt(scheduledAt time.Time) error {
	if scheduledAt.IsZero() {
		return errs.NewValueIsRequiredError("scheduled at")
	}
	return nil
}

func validateNonNegativeCount(paramName string, value int) error {
	if value < 0 {
		return errs.NewValueIsOutOfRangeError(paramName, value, 0, "unbounded")
	}
	return nil
}

func validateNonNegativeDecimal(paramName string, value decimal.Decimal) error {
	if value.IsNegative() {
		return errs.NewValueIsOutOfRangeError(paramName, value.String(), 0, "unbounded")
	}
	return nil
}
