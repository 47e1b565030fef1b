// Package notifier persists customer and driver notifications. Delivery to
// devices is handled by a separate push pipeline reading the notifications
// table; this adapter only records what should be sent.
package notifier

import (
	"context"
	"log/slog"
	"time"

	"barbari/internal/core/ports"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// NotificationDTO represents the database structure for persisting
// notifications.
type NotificationDTO struct {
	ID        uuid.UUID  `gorm:"type:uuid;primaryKey"`
	UserID    uuid.UUID  `gorm:"type:uuid;index"`
	OrderID   *uuid.UUID `gorm:"type:uuid;index"`
	Type      string
	Title     string
	Message   string
	IsRead    bool
	CreatedAt time.Time
}

// TableName specifies the database table name for notifications.
func (NotificationDTO) TableName() string {
	return "notifications"
}

// GormNotifier implements ports.Notifier on top of the notifications table.
// Notify never fails the calling operation: a lost notification is
// preferable to a failed order transition, so persistence errors are logged
// and swallowed.
type GormNotifier struct {
	db     *gorm.DB
	logger *slog.Logger
}

// NewGormNotifier creates a notifier writing to the notifications table.
func NewGormNotifier(db *gorm.DB, logger *slog.Logger) *GormNotifier {
	return &GormNotifier{
		db:     db,
		logger: logger,
	}
}

// Notify records a notification for later delivery.
func (n *GormNotifier) Notify(ctx context.Context, notification ports.Notification) {
	var orderID *uuid.UUID
	if notification.OrderID != nil {
		raw := notification.OrderID.Bytes()
		orderID = &raw
	}

	dto := NotificationDTO{
		ID:        uuid.New(),
		UserID:    notification.UserID.Bytes(),
		OrderID:   orderID,
		Type:      notification.Type,
		Title:     notification.Title,
		Message:   notification.Message,
		CreatedAt: time.Now().UTC(),
	}

	if err := n.db.WithContext(ctx).Create(&dto).Error; err != nil {
		n.logger.Error("failed to record notification",
			"type", notification.Type,
			"user_id", notification.UserID.String(),
			"error", err,
		)
	}
}
