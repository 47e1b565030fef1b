// Package rating contains the per-order customer rating entity.
// Exactly one rating exists per completed order; submitting one triggers the
// driver rating aggregation in the application layer.
package rating

import (
	"errors"
	"time"

	"barbari/internal/core/domain/model/kernel"
	"barbari/internal/pkg/errs"
)

// ErrOrderRatingIsNotConstructed is returned when an OrderRating instance was
// not created through the NewOrderRating or RestoreOrderRating factory methods.
var ErrOrderRatingIsNotConstructed = errors.New(
	"OrderRating must be created via NewOrderRating or RestoreOrderRating constructor",
)

const (
	minRating = 1
	maxRating = 5
)

// OrderRating is the customer's rating of a completed order. The overall
// rating is mandatory; driver and service ratings are optional refinements.
type OrderRating struct {
	id            kernel.UUID
	orderID       kernel.UUID
	userID        kernel.UUID
	overallRating int
	driverRating  *int
	serviceRating *int
	comment       string
	createdAt     time.Time

	isConstructed bool
}

// NewOrderRating creates a rating for an order. All present rating values
// must lie within [1, 5].
func NewOrderRating(
	id, orderID, userID kernel.UUID,
	overallRating int,
	driverRating, serviceRating *int,
	comment string,
	createdAt time.Time,
) (*OrderRating, error) {
	r := &OrderRating{
		comment:       comment,
		createdAt:     createdAt,
		isConstructed: true,
	}

	if err := errors.Join(
		r.setIDs(id, orderID, userID),
		r.setOverallRating(overallRating),
		r.setOptionalRating("driver rating", driverRating, &r.driverRating),
		r.setOptionalRating("service rating", serviceRating, &r.serviceRating),
	); err != nil {
		return nil, err
	}

	return r, nil
}

// RestoreOrderRating reconstructs an OrderRating from persistent storage.
func RestoreOrderRating(
	id, orderID, userID kernel.UUID,
	overallRating int,
	driverRating, serviceRating *int,
	comment string,
	createdAt time.Time,
) (*OrderRating, error) {
	return NewOrderRating(id, orderID, userID, overallRating, driverRating, serviceRating, comment, createdAt)
}

// Validate ensures the OrderRating instance was properly constructed.
func (r *OrderRating) Validate() error {
	if r == nil || !r.isConstructed {
		return ErrOrderRatingIsNotConstructed
	}
	return nil
}

// ID returns the rating's unique identifier.
func (r *OrderRating) ID() kernel.UUID {
	return r.id
}

// OrderID returns the rated order's identifier.
func (r *OrderRating) OrderID() kernel.UUID {
	return r.orderID
}

// UserID returns the identifier of the customer who rated.
func (r *OrderRating) UserID() kernel.UUID {
	return r.userID
}

// OverallRating returns the mandatory overall score.
func (r *OrderRating) OverallRating() int {
	return r.overallRating
}

// DriverRating returns the optional driver score.
func (r *OrderRating) DriverRating() *int {
	return r.driverRating
}

// ServiceRating returns the optional service score.
func (r *OrderRating) ServiceRating() *int {
	return r.serviceRating
}

// Comment returns the free-text comment.
func (r *OrderRating) Comment() string {
	return r.comment
}

// CreatedAt returns the submission timestamp.
func (r *OrderRating) CreatedAt() time.Time {
	return r.createdAt
}

func (r *OrderRating) setIDs(id, orderID, userID kernel.UUID) error {
	if err := errors.Join(id.Validate(), orderID.Validate(), userID.Validate()); err != nil {
		return err
	}
	r.id = id
	r.orderID = orderID
	r.userID = userID
	return nil
}

func (r *OrderRating) setOverallRating(overallRating int) error {
	if overallRating < minRating || overallRating > maxRating {
		return errs.NewValueIsOutOfRangeError("overall rating", overallRating, minRating, maxRating)
	}
	r.overallRating = overallRating
	return nil
}

func (r *OrderRating) setOptionalRating(name string, value *int, target **int) error {
	if value == nil {
		return nil
	}
	if *value < minRating || *value > maxRating {
		return errs.NewValueIsOutOfRangeError(name, *value, minRating, maxRating)
	}
	*target = value
	return nil
}
