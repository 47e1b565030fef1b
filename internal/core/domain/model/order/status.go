package order

import (
	"fmt"

	"barbari/internal/pkg/errs"
)

// Status represents the lifecycle state of an order.
// It implements a state machine with defined transitions to ensure
// orders follow the correct business workflow.
//
// State transitions:
//
//	Pending ──> Confirmed ──> DriverAssigned ──> [in-progress span] ──> Completed
//	    │            │               │                   │
//	    └────────────┴───────────────┴───────────────────┴──> Cancelled
//
// The in-progress span is an ordered list of sub-states
// (EnRoute, Packing, Loading, InTransit). Orders may skip forward within the
// span but never move backward. Completed and Cancelled are terminal.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Pending is the initial status when an order is first created.
	Pending

	// Confirmed indicates the order has been accepted and is waiting
	// for a driver to be assigned.
	Confirmed

	// DriverAssigned indicates a driver has been assigned to the order.
	DriverAssigned

	// EnRoute indicates the driver is on the way to the pickup address.
	EnRoute

	// Packing indicates the crew is packing the customer's goods.
	Packing

	// Loading indicates the crew is loading the vehicle.
	Loading

	// InTransit indicates the goods are being transported to the destination.
	InTransit

	// Completed indicates the order has been fulfilled.
	// This is a final state with no further transitions allowed.
	Completed

	// Cancelled indicates the order was cancelled before completion.
	// This is a final state with no further transitions allowed.
	Cancelled
)

// inProgressSpan is the ordered list of in-progress sub-states. Extending the
// lifecycle with a new phase means inserting it here; the transition table is
// derived from this ordering.
var inProgressSpan = []Status{EnRoute, Packing, Loading, InTransit}

// InProgressStatuses returns the in-progress sub-states in lifecycle order.
// Callers building per-status behavior iterate this instead of naming the
// phases, so a new phase needs no changes outside this package.
func InProgressStatuses() []Status {
	span := make([]Status, len(inProgressSpan))
	copy(span, inProgressSpan)
	return span
}

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:        "unknown",
		Pending:        "pending",
		Confirmed:      "confirmed",
		DriverAssigned: "driver_assigned",
		EnRoute:        "en_route",
		Packing:        "packing",
		Loading:        "loading",
		InTransit:      "in_transit",
		Completed:      "completed",
		Cancelled:      "cancelled",
	}
}

// StatusFromString parses the wire representation of a status.
func StatusFromString(s string) (Status, error) {
	for status, str := range getStatusStrings() {
		if status != Unknown && str == s {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause(
		"status is invalid",
		fmt.Errorf("%q is not a known status", s),
	)
}

// Validate checks if the Status value is valid.
// Unknown (0) and any other values are invalid.
func (s Status) Validate() error {
	if _, ok := getStatusStrings()[s]; !ok || s == Unknown {
		return errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%d is not a valid status", s),
		)
	}
	return nil
}

// String returns the wire representation of the status.
// Implements the fmt.Stringer interface and is safe to call on any value,
// including invalid ones.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// IsTerminal reports whether the status admits no further transitions.
func (s Status) IsTerminal() bool {
	return s == Completed || s == Cancelled
}

// IsInProgress reports whether the status belongs to the in-progress span.
func (s Status) IsInProgress() bool {
	return s.spanIndex() >= 0
}

// spanIndex returns the position of the status within the in-progress span,
// or -1 when the status is outside the span.
func (s Status) spanIndex() int {
	for i, phase := range inProgressSpan {
		if phase == s {
			return i
		}
	}
	return -1
}

// CanTransitionTo reports whether the lifecycle allows moving from s to next.
// Re-applying the current status is always allowed; the caller decides
// whether it is a no-op.
func (s Status) CanTransitionTo(next Status) bool {
	if s == next {
		return true
	}

	if s.IsTerminal() {
		return false
	}

	// Cancellation is reachable from every non-terminal status.
	if next == Cancelled {
		return true
	}

	switch s {
	case Pending:
		return next == Confirmed
	case Confirmed:
		return next == DriverAssigned
	case DriverAssigned:
		return next.IsInProgress()
	default:
	}

	// Within the span: forward only. Completion requires having entered the span.
	if from := s.spanIndex(); from >= 0 {
		if next == Completed {
			return true
		}
		return next.spanIndex() > from
	}

	return false
}

// ValidateTransition checks that moving from s to next is allowed,
// returning a Validation error with both states on failure.
func (s Status) ValidateTransition(next Status) error {
	if err := next.Validate(); err != nil {
		return err
	}

	if !s.CanTransitionTo(next) {
		return errs.NewValueIsInvalidErrorWithCause(
			"status transition is invalid",
			fmt.Errorf("%s -> %s is not an allowed transition", s, next),
		)
	}
	return nil
}
