package commands

import (
	"errors"

	"barbari/internal/core/domain/model/kernel"
	"barbari/internal/pkg/guard"
)

var ErrCreateDriverCommandIsNotConstructed = errors.New(
	"CreateDriverCommand must be created via NewCreateDriverCommand constructor",
)

// CreateDriverCommand represents a request to register a new driver profile.
type CreateDriverCommand struct { //nolint:recvcheck //using for validation
	driverID    kernel.UUID
	userID      kernel.UUID
	vehicleType kernel.VehicleType

	guard guard.ConstructorGuard
}

// NewCreateDriverCommand creates a command to register a driver.
// The identifiers must be valid UUIDs and the vehicle type must belong to
// the closed enumeration.
func NewCreateDriverCommand(
	driverID, userID kernel.UUID, vehicleType kernel.VehicleType,
) (CreateDriverCommand, error) {
	command := CreateDriverCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		driverID.Validate(),
		userID.Validate(),
		vehicleType.Validate(),
	); err != nil {
		return CreateDriverCommand{}, err
	}

	command.driverID = driverID
	command.userID = userID
	command.vehicleType = vehicleType
	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateDriverCommand) Validate() error {
	return c.guard.Validate(ErrCreateDriverCommandIsNotConstructed)
}

// DriverID returns the driver's unique identifier.
func (c CreateDriverCommand) DriverID() kernel.UUID {
	return c.driverID
}

// UserID returns the identifier of the user behind the driver profile.
func (c CreateDriverCommand) UserID() kernel.UUID {
	return c.userID
}

// VehicleType returns the driver's vehicle type.
func (c CreateDriverCommand) VehicleType() kernel.VehicleType {
	return c.vehicleType
}
