package commands

import (
	"context"
	"fmt"
	"time"

	"barbari/internal/core/ports"
)

// CancelOrderCommandHandler cancels orders on behalf of the customer.
//
// Cancellation shares the transition behavior of the lifecycle table: the
// order moves to Cancelled with a stamped timestamp and reason, an assigned
// driver is released and has a cancellation recorded, and the customer is
// notified after commit. A terminal order is never mutated; the attempt
// surfaces a Conflict error.
type CancelOrderCommandHandler struct {
	uowFactory LifecycleUoWFactory
	notifier   ports.Notifier
}

// NewCancelOrderCommandHandler creates a handler for order cancellation.
func NewCancelOrderCommandHandler(
	uowFactory LifecycleUoWFactory, notifier ports.Notifier,
) CancelOrderCommandHandler {
	return CancelOrderCommandHandler{
		uowFactory: uowFactory,
		notifier:   notifier,
	}
}

// Handle processes the cancellation command.
// Returns an ObjectNotFound error for a missing order and a Conflict error
// when the order is already completed or cancelled.
func (h CancelOrderCommandHandler) Handle(ctx context.Context, command CancelOrderCommand) error {
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

	if err = cancelOrder(ctx, uow, aggregate, time.Now().UTC(), command.Reason()); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	orderID := aggregate.ID()
	h.notifier.Notify(ctx, ports.Notification{
		UserID:  aggregate.UserID(),
		Type:    ports.NotificationOrderCancelled,
		Title:   "Order cancelled",
		Message: fmt.Sprintf("Your order %s was cancelled: %s", aggregate.OrderNumber(), command.Reason()),
		OrderID: &orderID,
	})

	return nil
}
