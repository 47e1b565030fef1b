package commands

import (
	"context"

	"barbari/internal/core/domain/model/driver"
)

// CreateDriverCommandHandler handles driver registration.
// A user can hold at most one driver profile; the repository surfaces a
// Conflict error on a duplicate registration.
type CreateDriverCommandHandler struct {
	uowFactory DriverUoWFactory
}

// NewCreateDriverCommandHandler creates a handler for driver registration.
func NewCreateDriverCommandHandler(uowFactory DriverUoWFactory) CreateDriverCommandHandler {
	return CreateDriverCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the driver registration command.
func (h CreateDriverCommandHandler) Handle(ctx context.Context, command CreateDriverCommand) error {
	if err := command.Validate(); err != nil {
		return err
	}

	aggregate, err := driver.NewDriver(command.DriverID(), command.UserID(), command.VehicleType())
	if err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.DriverRepository().Add(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
