package commands

import (
	"errors"

	"barbari/internal/core/domain/model/kernel"
	"barbari/internal/pkg/guard"
)

var ErrRateOrderCommandIsNotConstructed = errors.New(
	"RateOrderCommand must be created via NewRateOrderCommand constructor",
)

// RateOrderCommand represents a customer's rating of a completed order.
// Range checks on the scores live in the rating aggregate; the command only
// validates the identifiers.
type RateOrderCommand struct { //nolint:recvcheck //using for validation
	orderID       kernel.UUID
	userID        kernel.UUID
	overallRating int
	driverRating  *int
	serviceRating *int
	comment       string

	guard guard.ConstructorGuard
}

// NewRateOrderCommand creates a command to rate a completed order.
func NewRateOrderCommand(
	orderID, userID kernel.UUID,
	overallRating int,
	driverRating, serviceRating *int,
	comment string,
) (RateOrderCommand, error) {
	command := RateOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		orderID.Validate(),
		userID.Validate(),
	); err != nil {
		return RateOrderCommand{}, err
	}

	command.orderID = orderID
	command.userID = userID
	command.overallRating = overallRating
	command.driverRating = driverRating
	command.serviceRating = serviceRating
	command.comment = comment
	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c RateOrderCommand) Validate() error {
	return c.guard.Validate(ErrRateOrderCommandIsNotConstructed)
}

// OrderID returns the rated order's identifier.
func (c RateOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// UserID returns the rating customer's identifier.
func (c RateOrderCommand) UserID() kernel.UUID {
	return c.userID
}

// OverallRating returns the mandatory overall score.
func (c RateOrderCommand) OverallRating() int {
	return c.overallRating
}

// DriverRating returns the optional driver score.
func (c RateOrderCommand) DriverRating() *int {
	return c.driverRating
}

// ServiceRating returns the optional service score.
func (c RateOrderCommand) ServiceRating() *int {
	return c.serviceRating
}

// Comment returns the free-text comment.
func (c RateOrderCommand) Comment() string {
	return c.comment
}
