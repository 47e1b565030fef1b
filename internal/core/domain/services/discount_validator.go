package services

import (
	"time"

	"barbari/internal/core/domain/model/discount"

	"github.com/shopspring/decimal"
)

// RejectionReason explains why a discount code was rejected. The zero value
// RejectionNone means the code passed every check.
type RejectionReason string

const (
	// RejectionNone means the code is valid and applicable.
	RejectionNone RejectionReason = ""

	// RejectionNotFound means the code does not exist or has been deactivated.
	// Deactivated codes are deliberately indistinguishable from unknown ones.
	RejectionNotFound RejectionReason = "NOT_FOUND"

	// RejectionNotYetActive means the code's start date is in the future.
	RejectionNotYetActive RejectionReason = "NOT_YET_ACTIVE"

	// RejectionExpired means the code's end date has passed.
	RejectionExpired RejectionReason = "EXPIRED"

	// RejectionLimitReached means the code's total usage limit is exhausted.
	RejectionLimitReached RejectionReason = "LIMIT_REACHED"

	// RejectionBelowMinimum means the order subtotal is below the code's
	// minimum order amount.
	RejectionBelowMinimum RejectionReason = "BELOW_MINIMUM"
)

// DiscountValidator is a domain service that decides whether a discount code
// applies to an order subtotal at a given instant.
//
// The checks run in a fixed order and short-circuit on the first failure:
// existence/active, start date, end date, usage limit, minimum order amount.
// A code that fails several checks at once always reports the earliest one,
// so callers (and users) see a deterministic reason.
//
// Validation is read-only. Usage is consumed separately, exactly once, when
// an order is actually placed with the code; price previews never inflate
// the usage count.
type DiscountValidator struct{}

// NewDiscountValidator creates a new DiscountValidator instance.
func NewDiscountValidator() DiscountValidator {
	return DiscountValidator{}
}

// Validate runs the eligibility checks for the code against the subtotal at
// the given instant. On success it returns the applied-discount view and
// RejectionNone; on failure the view is nil and the reason names the first
// failed check. A nil code is reported as RejectionNotFound.
func (v DiscountValidator) Validate(
	code *discount.Code, subtotal decimal.Decimal, now time.Time,
) (*discount.Applied, RejectionReason) {
	if code == nil || code.Validate() != nil || !code.IsActive() {
		return nil, RejectionNotFound
	}

	if now.Before(code.StartDate()) {
		return nil, RejectionNotYetActive
	}

	if endDate := code.EndDate(); endDate != nil && now.After(*endDate) {
		return nil, RejectionExpired
	}

	if limit := code.UsageLimit(); limit != nil && code.UsageCount() >= *limit {
		return nil, RejectionLimitReached
	}

	if minAmount := code.MinOrderAmount(); minAmount != nil && subtotal.LessThan(*minAmount) {
		return nil, RejectionBelowMinimum
	}

	applied := code.Applied()
	return &applied, RejectionNone
}
