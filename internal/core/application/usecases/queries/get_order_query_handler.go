package queries

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"barbari/internal/core/domain/model/kernel"
	"barbari/internal/core/domain/model/order"
	"barbari/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetOrderQueryHandler retrieves a single order projection straight from
// the database, bypassing aggregate reconstruction.
type GetOrderQueryHandler struct {
	db *gorm.DB
}

// NewGetOrderQueryHandler creates a handler for order lookups.
// Requires a GORM database connection for query execution.
func NewGetOrderQueryHandler(db *gorm.DB) GetOrderQueryHandler {
	return GetOrderQueryHandler{db: db}
}

// Handle executes the lookup. Returns an ObjectNotFound error when no order
// has the requested id.
func (h GetOrderQueryHandler) Handle(
	ctx context.Context,
	query GetOrderQuery,
) (GetOrderQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetOrderQueryResponse{}, err
	}

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			order_number,
			user_id,
			service_id,
			vehicle_type,
			status,
			driver_id,
			scheduled_at,
			subtotal,
			discount,
			total_price,
			estimated_duration_minutes,
			discount_code,
			is_paid,
			cancellation_reason,
			created_at,
			started_at,
			completed_at,
			cancelled_at
		FROM orders
		WHERE id = ?
	`, query.OrderID().Bytes()).Row()

	var (
		resp               GetOrderQueryResponse
		id                 uuid.UUID
		userID             uuid.UUID
		serviceID          uuid.UUID
		vehicleType        int
		status             int
		driverID           *uuid.UUID
		discountCode       sql.NullString
		cancellationReason sql.NullString
		startedAt          *time.Time
		completedAt        *time.Time
		cancelledAt        *time.Time
	)

	err := row.Scan(
		&id,
		&resp.OrderNumber,
		&userID,
		&serviceID,
		&vehicleType,
		&status,
		&driverID,
		&resp.ScheduledAt,
		&resp.Subtotal,
		&resp.Discount,
		&resp.TotalPrice,
		&resp.EstimatedDurationMinutes,
		&discountCode,
		&resp.IsPaid,
		&cancellationReason,
		&resp.CreatedAt,
		&startedAt,
		&completedAt,
		&cancelledAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return GetOrderQueryResponse{}, errs.NewObjectNotFoundError("order", query.OrderID())
	}
	if err != nil {
		return GetOrderQueryResponse{}, err
	}

	if resp.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
		return GetOrderQueryResponse{}, err
	}
	if resp.UserID, err = kernel.UUIDFromBytes(userID[:]); err != nil {
		return GetOrderQueryResponse{}, err
	}
	if resp.ServiceID, err = kernel.UUIDFromBytes(serviceID[:]); err != nil {
		return GetOrderQueryResponse{}, err
	}
	if driverID != nil {
		restored, idErr := kernel.UUIDFromBytes(driverID[:])
		if idErr != nil {
			return GetOrderQueryResponse{}, idErr
		}
		resp.DriverID = &restored
	}

	resp.VehicleType = kernel.VehicleType(vehicleType).String()
	resp.Status = order.Status(status).String()
	if discountCode.Valid {
		resp.DiscountCode = &discountCode.String
	}
	resp.CancellationReason = cancellationReason.String
	resp.StartedAt = startedAt
	resp.CompletedAt = completedAt
	resp.CancelledAt = cancelledAt

	return resp, nil
}
