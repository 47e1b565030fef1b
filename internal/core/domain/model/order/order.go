package order

import (
	"errors"
	"fmt"
	"time"

	"barbari/internal/core/domain/model/kernel"
	"barbari/internal/core/domain/model/pricing"
	"barbari/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created
	// through the NewOrder or RestoreOrder factory methods.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder constructor")

	// ErrOrderIsTerminal is returned when cancelling an order that is already
	// completed or cancelled. The order is left untouched.
	ErrOrderIsTerminal = errs.NewConflictError("order is already in a terminal status")
)

// Order represents a transport/packing booking in the system. It is the
// aggregate root that manages the order lifecycle from creation through
// driver assignment and the in-progress phases to completion or cancellation.
//
// Order follows these invariants:
//   - Must have a valid unique identifier and a non-empty order number
//   - The price breakdown is frozen at creation time
//   - Status transitions follow the lifecycle state machine in Status
//   - Timestamps are stamped exactly once: startedAt on entering the
//     in-progress span, completedAt on completion, cancelledAt on cancellation
//   - Can only be created through NewOrder or RestoreOrder
type Order struct {
	id                 kernel.UUID
	orderNumber        string
	userID             kernel.UUID
	serviceID          kernel.UUID
	vehicleType        kernel.VehicleType
	status             Status
	driverID           *kernel.UUID
	scheduledAt        time.Time
	breakdown          pricing.Breakdown
	discountCode       *string
	isPaid             bool
	createdAt          time.Time
	startedAt          *time.Time
	completedAt        *time.Time
	cancelledAt        *time.Time
	cancellationReason string

	isConstructed bool
}

// NewOrder creates a new Order in Pending status with the given frozen price
// breakdown. This is the only way to create a valid fresh Order.
func NewOrder(
	id kernel.UUID,
	orderNumber string,
	userID kernel.UUID,
	serviceID kernel.UUID,
	vehicleType kernel.VehicleType,
	scheduledAt time.Time,
	breakdown pricing.Breakdown,
	discountCode *string,
	createdAt time.Time,
) (*Order, error) {
	order := &Order{
		status:        Pending,
		isConstructed: true,
		breakdown:     breakdown,
		discountCode:  discountCode,
		createdAt:     createdAt,
	}

	if err := errors.Join(
		order.setID(id),
		order.setOrderNumber(orderNumber),
		order.setUserID(userID),
		order.setServiceID(serviceID),
		order.setVehicleType(vehicleType),
		order.setScheduledAt(scheduledAt),
	); err != nil {
		return nil, err
	}

	return order, nil
}

// RestoredState groups the mutable lifecycle state needed to reconstruct an
// order from persistent storage.
type RestoredState struct {
	Status             Status
	DriverID           *kernel.UUID
	IsPaid             bool
	StartedAt          *time.Time
	CompletedAt        *time.Time
	CancelledAt        *time.Time
	CancellationReason string
}

// RestoreOrder reconstructs an Order aggregate from persistent storage.
func RestoreOrder(
	id kernel.UUID,
	orderNumber string,
	userID kernel.UUID,
	serviceID kernel.UUID,
	vehicleType kernel.VehicleType,
	scheduledAt time.Time,
	breakdown pricing.Breakdown,
	discountCode *string,
	createdAt time.Time,
	state RestoredState,
) (*Order, error) {
	order, err := NewOrder(id, orderNumber, userID, serviceID, vehicleType, scheduledAt, breakdown, discountCode, createdAt)
	if err != nil {
		return nil, err
	}

	if err = state.Status.Validate(); err != nil {
		return nil, err
	}
	if state.DriverID != nil {
		if err = state.DriverID.Validate(); err != nil {
			return nil, err
		}
	}

	order.status = state.Status
	order.driverID = state.DriverID
	order.isPaid = state.IsPaid
	order.startedAt = state.StartedAt
	order.completedAt = state.CompletedAt
	order.cancelledAt = state.CancelledAt
	order.cancellationReason = state.CancellationReason
	return order, nil
}

// Validate ensures the Order instance was properly constructed.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// IsEqual compares two orders by their unique identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// OrderNumber returns the date-prefixed sequential order number.
func (o *Order) OrderNumber() string {
	return o.orderNumber
}

// UserID returns the customer's identifier.
func (o *Order) UserID() kernel.UUID {
	return o.userID
}

// ServiceID returns the booked service's identifier.
func (o *Order) ServiceID() kernel.UUID {
	return o.serviceID
}

// VehicleType returns the requested vehicle type.
func (o *Order) VehicleType() kernel.VehicleType {
	return o.vehicleType
}

// Status returns the current lifecycle status.
func (o *Order) Status() Status {
	return o.status
}

// Driver returns the assigned driver's ID, or nil if unassigned.
func (o *Order) Driver() *kernel.UUID {
	return o.driverID
}

// ScheduledAt returns the requested pickup date and time.
func (o *Order) ScheduledAt() time.Time {
	return o.scheduledAt
}

// Breakdown returns the price breakdown frozen at creation time.
func (o *Order) Breakdown() pricing.Breakdown {
	return o.breakdown
}

// DiscountCode returns the discount code redeemed at creation, if any.
func (o *Order) DiscountCode() *string {
	return o.discountCode
}

// IsPaid reports whether the order has been paid.
func (o *Order) IsPaid() bool {
	return o.isPaid
}

// CreatedAt returns the creation timestamp.
func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

// StartedAt returns when the order entered the in-progress span, if it has.
func (o *Order) StartedAt() *time.Time {
	return o.startedAt
}

// CompletedAt returns the completion timestamp, if completed.
func (o *Order) CompletedAt() *time.Time {
	return o.completedAt
}

// CancelledAt returns the cancellation timestamp, if cancelled.
func (o *Order) CancelledAt() *time.Time {
	return o.cancelledAt
}

// CancellationReason returns the reason recorded at cancellation.
func (o *Order) CancellationReason() string {
	return o.cancellationReason
}

// Confirm moves a pending order to Confirmed.
func (o *Order) Confirm() error {
	if err := o.status.ValidateTransition(Confirmed); err != nil {
		return err
	}

	o.status = Confirmed
	return nil
}

// AssignDriver assigns the order to a driver and moves it to DriverAssigned.
// Reassignment of an already assigned order is allowed.
func (o *Order) AssignDriver(driverID kernel.UUID) error {
	if err := driverID.Validate(); err != nil {
		return err
	}

	if o.status != DriverAssigned {
		if err := o.status.ValidateTransition(DriverAssigned); err != nil {
			return err
		}
	}

	o.status = DriverAssigned
	o.driverID = &driverID
	return nil
}

// Advance moves the order forward within the in-progress span.
// Entering the span for the first time stamps startedAt.
// DriverAssigned, Completed and Cancelled are not valid targets here;
// use AssignDriver, Complete and Cancel instead.
func (o *Order) Advance(next Status, now time.Time) error {
	if !next.IsInProgress() {
		return errs.NewValueIsInvalidErrorWithCause(
			"status transition is invalid",
			fmt.Errorf("%s is not an in-progress status", next),
		)
	}

	if err := o.status.ValidateTransition(next); err != nil {
		return err
	}

	if !o.status.IsInProgress() && o.startedAt == nil {
		o.startedAt = &now
	}

	o.status = next
	return nil
}

// Complete marks the order as fulfilled and stamps completedAt.
// The order must have entered the in-progress span.
func (o *Order) Complete(now time.Time) error {
	if err := o.status.ValidateTransition(Completed); err != nil {
		return err
	}

	o.status = Completed
	o.completedAt = &now
	return nil
}

// Cancel terminates the order with a reason and stamps cancelledAt.
// Cancelling an order that is already completed or cancelled returns a
// Conflict error and leaves the order untouched.
func (o *Order) Cancel(now time.Time, reason string) error {
	if o.status.IsTerminal() {
		return ErrOrderIsTerminal
	}

	o.status = Cancelled
	o.cancelledAt = &now
	o.cancellationReason = reason
	return nil
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setOrderNumber(orderNumber string) error {
	if orderNumber == "" {
		return errs.NewValueIsRequiredError("order number")
	}
	o.orderNumber = orderNumber
	return nil
}

func (o *Order) setUserID(userID kernel.UUID) error {
	if err := userID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("user ID", err)
	}
	o.userID = userID
	return nil
}

func (o *Order) setServiceID(serviceID kernel.UUID) error {
	if err := serviceID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("service ID", err)
	}
	o.serviceID = serviceID
	return nil
}

func (o *Order) setVehicleType(vehicleType kernel.VehicleType) error {
	if err := vehicleType.Validate(); err != nil {
		return err
	}
	o.vehicleType = vehicleType
	return nil
}

func (o *Order) setScheduledAt(scheduledAt time.Time) error {
	if scheduledAt.IsZero() {
		return errs.NewValueIsRequiredError("scheduled date")
	}
	o.scheduledAt = scheduledAt
	return nil
}
