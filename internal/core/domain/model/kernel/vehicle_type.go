package kernel

import (
	"fmt"

	"barbari/internal/pkg/errs"
)

// VehicleType identifies the class of vehicle a transport order is priced and
// dispatched for. It is a closed enumeration: rate tables are keyed by it and
// validated at write time, so an unrecognized type can never resolve to a
// silently zero-priced vehicle.
type VehicleType int

const (
	// VehicleUnknown represents an invalid or undefined vehicle type.
	// This value (0) helps catch uninitialized VehicleType values.
	VehicleUnknown VehicleType = iota

	// VehiclePickup is a small open-bed pickup suitable for light moves.
	VehiclePickup

	// VehicleVan is a closed van for medium household moves.
	VehicleVan

	// VehicleLightTruck is a light truck for full apartment moves.
	VehicleLightTruck

	// VehicleHeavyTruck is a heavy truck for large or commercial moves.
	VehicleHeavyTruck
)

func getVehicleTypeStrings() map[VehicleType]string {
	return map[VehicleType]string{
		VehicleUnknown:    "unknown",
		VehiclePickup:     "pickup",
		VehicleVan:        "van",
		VehicleLightTruck: "light_truck",
		VehicleHeavyTruck: "heavy_truck",
	}
}

func getValidVehicleTypeStrings() map[VehicleType]string {
	//nolint:exhaustive // VehicleUnknown is intentionally excluded as it's invalid
	return map[VehicleType]string{
		VehiclePickup:     "pickup",
		VehicleVan:        "van",
		VehicleLightTruck: "light_truck",
		VehicleHeavyTruck: "heavy_truck",
	}
}

// VehicleTypeFromString parses the wire representation of a vehicle type.
// Returns a Validation error for anything outside the closed enumeration.
func VehicleTypeFromString(s string) (VehicleType, error) {
	for vt, str := range getValidVehicleTypeStrings() {
		if str == s {
			return vt, nil
		}
	}
	return VehicleUnknown, errs.NewValueIsInvalidErrorWithCause(
		"vehicle type is invalid",
		fmt.Errorf("%q is not a known vehicle type", s),
	)
}

// Validate checks if the VehicleType value is part of the closed enumeration.
// VehicleUnknown (0) and any other values are invalid.
func (v VehicleType) Validate() error {
	if _, ok := getValidVehicleTypeStrings()[v]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"vehicle type is invalid",
			fmt.Errorf("%d is not a valid vehicle type", v),
		)
	}
	return nil
}

// String returns the wire representation of the vehicle type.
// Implements the fmt.Stringer interface and is safe to call on any value,
// including invalid ones.
func (v VehicleType) String() string {
	if str, ok := getVehicleTypeStrings()[v]; ok {
		return str
	}
	return "unknown"
}

// AllVehicleTypes returns every valid vehicle type.
// Used to validate rate-table completeness at configuration write time.
func AllVehicleTypes() []VehicleType {
	return []VehicleType{VehiclePickup, VehicleVan, VehicleLightTruck, VehicleHeavyTruck}
}
