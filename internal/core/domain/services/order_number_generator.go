package services

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"barbari/internal/pkg/errs"
)

const (
	orderNumberBrand        = "BB"
	orderNumberDateLayout   = "060102"
	orderNumberSequenceSize = 4
)

// OrderNumberGenerator is a domain service producing human-readable order
// numbers of the form "BB" + yymmdd (UTC) + a 4-digit zero-padded sequence
// that restarts at 0001 every day.
//
// The generator itself is pure: the caller reads the greatest existing number
// for today's prefix, and the persistence layer's unique constraint on the
// order number catches the read-increment race under concurrent creation.
// The creating handler retries a bounded number of times on that conflict.
type OrderNumberGenerator struct{}

// NewOrderNumberGenerator creates a new OrderNumberGenerator instance.
func NewOrderNumberGenerator() OrderNumberGenerator {
	return OrderNumberGenerator{}
}

// Prefix returns the order-number prefix for the given instant, in UTC.
func (g OrderNumberGenerator) Prefix(now time.Time) string {
	return orderNumberBrand + now.UTC().Format(orderNumberDateLayout)
}

// Next produces the order number following lastNumber for the given instant.
// lastNumber is the lexicographically greatest existing number sharing the
// instant's prefix, or empty when today has no orders yet.
func (g OrderNumberGenerator) Next(lastNumber string, now time.Time) (string, error) {
	prefix := g.Prefix(now)

	sequence := 1
	if lastNumber != "" {
		if !strings.HasPrefix(lastNumber, prefix) {
			return "", errs.NewValueIsInvalidErrorWithCause(
				"last order number is invalid",
				fmt.Errorf("%q does not carry prefix %q", lastNumber, prefix),
			)
		}

		lastSequence, err := strconv.Atoi(lastNumber[len(prefix):])
		if err != nil {
			return "", errs.NewValueIsInvalidErrorWithCause("last order number is invalid", err)
		}
		sequence = lastSequence + 1
	}

	return fmt.Sprintf("%s%0*d", prefix, orderNumberSequenceSize, sequence), nil
}
