package queries

import (
	"errors"
	"time"

	"barbari/internal/core/domain/model/kernel"
	"barbari/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var ErrGetOrderQueryIsNotConstructed = errors.New(
	"GetOrderQuery must be created via NewGetOrderQuery constructor",
)

// GetOrderQuery retrieves a single order projection by id.
type GetOrderQuery struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetOrderQuery creates an order lookup query.
func NewGetOrderQuery(orderID kernel.UUID) (GetOrderQuery, error) {
	if err := orderID.Validate(); err != nil {
		return GetOrderQuery{}, err
	}

	return GetOrderQuery{
		orderID: orderID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetOrderQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderQueryIsNotConstructed)
}

// OrderID returns the id of the order to fetch.
func (q GetOrderQuery) OrderID() kernel.UUID {
	return q.orderID
}

// GetOrderQueryResponse is the flat order projection served to clients.
// Timestamps that have not happened yet are nil.
type GetOrderQueryResponse struct {
	ID                       kernel.UUID
	OrderNumber              string
	UserID                   kernel.UUID
	ServiceID                kernel.UUID
	VehicleType              string
	Status                   string
	DriverID                 *kernel.UUID
	ScheduledAt              time.Time
	Subtotal                 decimal.Decimal
	Discount                 decimal.Decimal
	TotalPrice               decimal.Decimal
	EstimatedDurationMinutes int
	DiscountCode             *string
	IsPaid                   bool
	CancellationReason       string
	CreatedAt                time.Time
	StartedAt                *time.Time
	CompletedAt              *time.Time
	CancelledAt              *time.Time
}
