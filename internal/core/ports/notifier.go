package ports

import (
	"context"

	"barbari/internal/core/domain/model/kernel"
)

// Notification type tags understood by client applications.
const (
	NotificationOrderConfirmed  = "order_confirmed"
	NotificationDriverAssigned  = "driver_assigned"
	NotificationOrderInProgress = "order_in_progress"
	NotificationOrderCompleted  = "order_completed"
	NotificationOrderCancelled  = "order_cancelled"
	NotificationNewAssignment   = "new_assignment"
)

// Notification is the payload handed to the dispatch collaborator.
type Notification struct {
	UserID  kernel.UUID
	Type    string
	Title   string
	Message string
	OrderID *kernel.UUID
}

// Notifier dispatches notifications to users. Dispatch is fire-and-forget:
// implementations log failures and never propagate them, so a failed
// notification cannot roll back the state transition that produced it.
type Notifier interface {
	Notify(ctx context.Context, notification Notification)
}
