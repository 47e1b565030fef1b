package commands

import (
	"context"
	"fmt"

	"barbari/internal/core/ports"
)

// AssignDriverCommandHandler handles driver assignment for confirmed orders.
//
// Assignment is not a bare status set: it validates the driver is active,
// marks the driver busy, increments the driver's ride counter, binds the
// driver to the order, and notifies both parties. Order and driver are
// updated in one transaction.
type AssignDriverCommandHandler struct {
	uowFactory LifecycleUoWFactory
	notifier   ports.Notifier
}

// NewAssignDriverCommandHandler creates a handler for driver assignment.
// Requires a LifecycleUoWFactory for transactional persistence and a Notifier
// for post-commit dispatch.
func NewAssignDriverCommandHandler(
	uowFactory LifecycleUoWFactory, notifier ports.Notifier,
) AssignDriverCommandHandler {
	return AssignDriverCommandHandler{
		uowFactory: uowFactory,
		notifier:   notifier,
	}
}

// Handle processes the driver assignment command.
// Returns an ObjectNotFound error when the order or driver is missing and a
// Validation error when the driver is deactivated or the order cannot accept
// an assignment in its current status.
func (h AssignDriverCommandHandler) Handle(ctx context.Context, command AssignDriverCommand) error {
	if err := command.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	aggregate, err := orderRepo.Get(ctx, command.OrderID())
	if err != nil {
		return err
	}

	driverRepo := uow.DriverRepository()
	assignedDriver, err := driverRepo.GetForUpdate(ctx, command.DriverID())
	if err != nil {
		return err
	}

	if err = assignedDriver.MarkAssigned(); err != nil {
		return err
	}

	if err = aggregate.AssignDriver(command.DriverID()); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	if err = driverRepo.Update(ctx, assignedDriver); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	orderID := aggregate.ID()
	h.notifier.Notify(ctx, ports.Notification{
		UserID:  aggregate.UserID(),
		Type:    ports.NotificationDriverAssigned,
		Title:   "Driver assigned",
		Message: fmt.Sprintf("A driver has been assigned to your order %s.", aggregate.OrderNumber()),
		OrderID: &orderID,
	})
	h.notifier.Notify(ctx, ports.Notification{
		UserID:  assignedDriver.UserID(),
		Type:    ports.NotificationNewAssignment,
		Title:   "New assignment",
		Message: fmt.Sprintf("You have been assigned order %s.", aggregate.OrderNumber()),
		OrderID: &orderID,
	})

	return nil
}
