// Package kernel contains shared value objects used across all domain models:
// entity identifiers and the closed vehicle-type enumeration that the pricing
// tables and driver profiles are keyed by.
//
// Value objects in this package are immutable and validate themselves at
// construction time, so an invalid identifier or an unrecognized vehicle type
// can never silently enter an aggregate.
package kernel
