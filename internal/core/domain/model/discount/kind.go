package discount

import (
	"fmt"

	"barbari/internal/pkg/errs"
)

// Kind distinguishes how a discount code reduces the order subtotal:
// by a percentage of it, or by a fixed amount.
type Kind int

const (
	// KindUnknown represents an invalid or undefined kind.
	// This value (0) helps catch uninitialized Kind values.
	KindUnknown Kind = iota

	// Percentage reduces the subtotal by value percent,
	// optionally capped at a maximum discount amount.
	Percentage

	// Fixed reduces the subtotal by a flat amount.
	Fixed
)

func getKindStrings() map[Kind]string {
	return map[Kind]string{
		KindUnknown: "unknown",
		Percentage:  "percentage",
		Fixed:       "fixed",
	}
}

// KindFromString parses the wire representation of a discount kind.
func KindFromString(s string) (Kind, error) {
	switch s {
	case "percentage":
		return Percentage, nil
	case "fixed":
		return Fixed, nil
	default:
		return KindUnknown, errs.NewValueIsInvalidErrorWithCause(
			"discount kind is invalid",
			fmt.Errorf("%q is not a known discount kind", s),
		)
	}
}

// Validate checks if the Kind value is valid.
func (k Kind) Validate() error {
	if k != Percentage && k != Fixed {
		return errs.NewValueIsInvalidErrorWithCause(
			"discount kind is invalid",
			fmt.Errorf("%d is not a valid discount kind", k),
		)
	}
	return nil
}

// String returns the wire representation of the kind.
func (k Kind) String() string {
	if str, ok := getKindStrings()[k]; ok {
		return str
	}
	return "unknown"
}
