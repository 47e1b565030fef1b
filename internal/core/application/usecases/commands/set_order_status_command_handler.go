package commands

import (
	"context"
	"fmt"
	"time"

	"barbari/internal/core/domain/model/order"
	"barbari/internal/core/ports"
	"barbari/internal/pkg/errs"
)

// transitionEffect is the behavior bound to one target status: the aggregate
// mutations to run inside the transaction, and the notifications to dispatch
// after it commits.
type transitionEffect struct {
	mutate func(ctx context.Context, uow LifecycleUoW, o *order.Order, now time.Time, reason string) error
	notify func(o *order.Order, reason string) []ports.Notification
}

// SetOrderStatusCommandHandler moves orders through their lifecycle.
//
// The per-status behavior lives in a transition table keyed by target status,
// so adding a lifecycle phase means adding one table entry, not editing a
// branch ladder. Driver assignment is deliberately absent from the table: it
// carries its own validation and driver bookkeeping and runs as a separate
// command.
//
// Re-applying an order's current status is accepted and does nothing: no
// mutation, no notification. Side-effect batches therefore fire at most once
// per status actually entered.
type SetOrderStatusCommandHandler struct {
	uowFactory LifecycleUoWFactory
	notifier   ports.Notifier
	effects    map[order.Status]transitionEffect
}

// NewSetOrderStatusCommandHandler creates a handler for status transitions.
// Requires a LifecycleUoWFactory for transactional persistence and a Notifier
// for post-commit dispatch.
func NewSetOrderStatusCommandHandler(
	uowFactory LifecycleUoWFactory, notifier ports.Notifier,
) SetOrderStatusCommandHandler {
	return SetOrderStatusCommandHandler{
		uowFactory: uowFactory,
		notifier:   notifier,
		effects:    buildTransitionEffects(),
	}
}

// Handle processes the status transition command.
// Returns an ObjectNotFound error for a missing order, a Validation error for
// an illegal transition target, and a Conflict error when cancelling an order
// that is already terminal.
func (h SetOrderStatusCommandHandler) Handle(ctx context.Context, command SetOrderStatusCommand) error {
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

	if aggregate.Status() == command.Status() {
		return nil
	}

	effect, ok := h.effects[command.Status()]
	if !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"status transition is invalid",
			fmt.Errorf("%s is not a settable target status", command.Status()),
		)
	}

	now := time.Now().UTC()
	if err = effect.mutate(ctx, uow, aggregate, now, command.Reason()); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	for _, notification := range effect.notify(aggregate, command.Reason()) {
		h.notifier.Notify(ctx, notification)
	}

	return nil
}

func buildTransitionEffects() map[order.Status]transitionEffect {
	effects := map[order.Status]transitionEffect{
		order.Confirmed: {
			mutate: func(_ context.Context, _ LifecycleUoW, o *order.Order, _ time.Time, _ string) error {
				return o.Confirm()
			},
			notify: func(o *order.Order, _ string) []ports.Notification {
				return []ports.Notification{customerNotification(
					o,
					ports.NotificationOrderConfirmed,
					"Order confirmed",
					fmt.Sprintf("Your order %s has been confirmed.", o.OrderNumber()),
				)}
			},
		},
		order.Completed: {
			mutate: completeOrder,
			notify: func(o *order.Order, _ string) []ports.Notification {
				return []ports.Notification{customerNotification(
					o,
					ports.NotificationOrderCompleted,
					"Order completed",
					fmt.Sprintf("Your order %s is complete. Please rate your experience.", o.OrderNumber()),
				)}
			},
		},
		order.Cancelled: {
			mutate: cancelOrder,
			notify: func(o *order.Order, reason string) []ports.Notification {
				return []ports.Notification{customerNotification(
					o,
					ports.NotificationOrderCancelled,
					"Order cancelled",
					fmt.Sprintf("Your order %s was cancelled: %s", o.OrderNumber(), reason),
				)}
			},
		},
	}

	for _, target := range order.InProgressStatuses() {
		effects[target] = transitionEffect{
			mutate: func(_ context.Context, _ LifecycleUoW, o *order.Order, now time.Time, _ string) error {
				return o.Advance(target, now)
			},
			notify: func(o *order.Order, _ string) []ports.Notification {
				return []ports.Notification{customerNotification(
					o,
					ports.NotificationOrderInProgress,
					"Order in progress",
					fmt.Sprintf("Your order %s is now %s.", o.OrderNumber(), target),
				)}
			},
		}
	}

	return effects
}

func completeOrder(ctx context.Context, uow LifecycleUoW, o *order.Order, now time.Time, _ string) error {
	if err := o.Complete(now); err != nil {
		return err
	}

	driverID := o.Driver()
	if driverID == nil {
		return nil
	}

	driverRepo := uow.DriverRepository()
	assignedDriver, err := driverRepo.GetForUpdate(ctx, *driverID)
	if err != nil {
		return err
	}

	assignedDriver.RecordCompletion(o.Breakdown().TotalPrice)
	return driverRepo.Update(ctx, assignedDriver)
}

func cancelOrder(ctx context.Context, uow LifecycleUoW, o *order.Order, now time.Time, reason string) error {
	if err := o.Cancel(now, reason); err != nil {
		return err
	}

	driverID := o.Driver()
	if driverID == nil {
		return nil
	}

	driverRepo := uow.DriverRepository()
	assignedDriver, err := driverRepo.GetForUpdate(ctx, *driverID)
	if err != nil {
		return err
	}

	assignedDriver.RecordCancellation()
	return driverRepo.Update(ctx, assignedDriver)
}

func customerNotification(o *order.Order, kind, title, message string) ports.Notification {
	orderID := o.ID()
	return ports.Notification{
		UserID:  o.UserID(),
		Type:    kind,
		Title:   title,
		Message: message,
		OrderID: &orderID,
	}
}
