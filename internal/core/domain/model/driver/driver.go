// Package driver contains the driver aggregate: the registered driver profile
// together with the running statistics mutated by the order lifecycle
// (assignment, completion, cancellation) and by rating aggregation.
package driver

import (
	"errors"
	"fmt"

	"barbari/internal/core/domain/model/kernel"
	"barbari/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

var (
	// ErrDriverIsNotConstructed is returned when a Driver instance was not created
	// through the NewDriver or RestoreDriver factory methods.
	ErrDriverIsNotConstructed = errors.New("Driver must be created via NewDriver or RestoreDriver constructor")

	// ErrDriverIsNotActive is returned when assigning an order to a deactivated driver.
	ErrDriverIsNotActive = errs.NewValueIsInvalidError("driver is not active")
)

// Driver represents a registered driver in the system. It is an aggregate root
// managing the driver's profile and running statistics.
//
// Driver follows these invariants:
//   - Must have valid driver and user identifiers and a valid vehicle type
//   - Ride counters never decrease
//   - Rating stays within [0, 5] and uses exact decimal arithmetic
//   - Only active drivers can be assigned to orders
//   - Can only be created through NewDriver or RestoreDriver
type Driver struct {
	id             kernel.UUID
	userID         kernel.UUID
	vehicleType    kernel.VehicleType
	rating         decimal.Decimal
	totalRides     int
	completedRides int
	cancelledRides int
	totalEarnings  decimal.Decimal
	isAvailable    bool
	isActive       bool

	isConstructed bool
}

// NewDriver registers a new driver: zero statistics, available and active.
func NewDriver(id, userID kernel.UUID, vehicleType kernel.VehicleType) (*Driver, error) {
	driver := &Driver{
		rating:        decimal.Zero,
		totalEarnings: decimal.Zero,
		isAvailable:   true,
		isActive:      true,
		isConstructed: true,
	}

	if err := errors.Join(
		driver.setID(id),
		driver.setUserID(userID),
		driver.setVehicleType(vehicleType),
	); err != nil {
		return nil, err
	}

	return driver, nil
}

// RestoredState groups the mutable statistics needed to reconstruct a driver
// from persistent storage.
type RestoredState struct {
	Rating         decimal.Decimal
	TotalRides     int
	CompletedRides int
	CancelledRides int
	TotalEarnings  decimal.Decimal
	IsAvailable    bool
	IsActive       bool
}

// RestoreDriver reconstructs a Driver aggregate from persistent storage.
func RestoreDriver(id, userID kernel.UUID, vehicleType kernel.VehicleType, state RestoredState) (*Driver, error) {
	driver, err := NewDriver(id, userID, vehicleType)
	if err != nil {
		return nil, err
	}

	if state.TotalRides < 0 || state.CompletedRides < 0 || state.CancelledRides < 0 {
		return nil, errs.NewValueIsInvalidError("ride counters must not be negative")
	}

	driver.rating = state.Rating
	driver.totalRides = state.TotalRides
	driver.completedRides = state.CompletedRides
	driver.cancelledRides = state.CancelledRides
	driver.totalEarnings = state.TotalEarnings
	driver.isAvailable = state.IsAvailable
	driver.isActive = state.IsActive
	return driver, nil
}

// Validate ensures the Driver instance was properly constructed.
func (d *Driver) Validate() error {
	if d == nil || !d.isConstructed {
		return ErrDriverIsNotConstructed
	}
	return nil
}

// ID returns the driver's unique identifier.
func (d *Driver) ID() kernel.UUID {
	return d.id
}

// UserID returns the identifier of the user account behind this driver.
func (d *Driver) UserID() kernel.UUID {
	return d.userID
}

// VehicleType returns the driver's vehicle class.
func (d *Driver) VehicleType() kernel.VehicleType {
	return d.vehicleType
}

// Rating returns the running mean of per-order driver ratings.
func (d *Driver) Rating() decimal.Decimal {
	return d.rating
}

// TotalRides returns how many orders have been assigned to the driver.
func (d *Driver) TotalRides() int {
	return d.totalRides
}

// CompletedRides returns how many assigned orders the driver completed.
func (d *Driver) CompletedRides() int {
	return d.completedRides
}

// CancelledRides returns how many assigned orders were cancelled.
func (d *Driver) CancelledRides() int {
	return d.cancelledRides
}

// TotalEarnings returns the cumulative earnings from completed orders.
func (d *Driver) TotalEarnings() decimal.Decimal {
	return d.totalEarnings
}

// IsAvailable reports whether the driver can take a new order.
func (d *Driver) IsAvailable() bool {
	return d.isAvailable
}

// IsActive reports whether the driver is enabled on the platform.
func (d *Driver) IsActive() bool {
	return d.isActive
}

// MarkAssigned records an order assignment: increments the total ride counter
// and marks the driver busy. Fails for deactivated drivers.
func (d *Driver) MarkAssigned() error {
	if !d.isActive {
		return ErrDriverIsNotActive
	}

	d.totalRides++
	d.isAvailable = false
	return nil
}

// RecordCompletion credits a completed order: increments the completed ride
// counter and adds the order total to earnings. Availability is not touched;
// drivers are released explicitly by dispatch or by cancellation.
func (d *Driver) RecordCompletion(orderTotal decimal.Decimal) {
	d.completedRides++
	d.totalEarnings = d.totalEarnings.Add(orderTotal)
}

// RecordCancellation counts a cancelled assignment and frees the driver.
func (d *Driver) RecordCancellation() {
	d.cancelledRides++
	d.isAvailable = true
}

// SetRating replaces the running rating with a recomputed mean.
func (d *Driver) SetRating(rating decimal.Decimal) error {
	if rating.IsNegative() || rating.GreaterThan(decimal.NewFromInt(5)) {
		return errs.NewValueIsOutOfRangeError("rating", rating.String(), 0, 5)
	}

	d.rating = rating
	return nil
}

// Deactivate removes the driver from service. Assigned orders keep running,
// but no new assignments are accepted.
func (d *Driver) Deactivate() {
	d.isActive = false
	d.isAvailable = false
}

func (d *Driver) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	d.id = id
	return nil
}

func (d *Driver) setUserID(userID kernel.UUID) error {
	if err := userID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("user ID", err)
	}
	d.userID = userID
	return nil
}

func (d *Driver) setVehicleType(vehicleType kernel.VehicleType) error {
	if err := vehicleType.Validate(); err != nil {
		return err
	}
	d.vehicleType = vehicleType
	return nil
}

// String implements fmt.Stringer for log output.
func (d *Driver) String() string {
	return fmt.Sprintf("driver %s (%s)", d.id, d.vehicleType)
}
