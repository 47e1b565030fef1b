package queries

import (
	"errors"
	"strings"

	"barbari/internal/core/domain/model/discount"
	"barbari/internal/core/domain/services"
	"barbari/internal/pkg/errs"
	"barbari/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var ErrValidateDiscountQueryIsNotConstructed = errors.New(
	"ValidateDiscountQuery must be created via NewValidateDiscountQuery constructor",
)

// ValidateDiscountQuery checks whether a discount code applies to an order
// of the given amount, without consuming usage.
type ValidateDiscountQuery struct { //nolint:recvcheck //using for validation
	code        string
	orderAmount decimal.Decimal

	guard guard.ConstructorGuard
}

// NewValidateDiscountQuery creates a discount eligibility query.
func NewValidateDiscountQuery(code string, orderAmount decimal.Decimal) (ValidateDiscountQuery, error) {
	query := ValidateDiscountQuery{
		guard: guard.NewConstructorGuard(),
	}

	if strings.TrimSpace(code) == "" {
		return ValidateDiscountQuery{}, errs.NewValueIsRequiredError("code")
	}
	if orderAmount.IsNegative() {
		return ValidateDiscountQuery{}, errs.NewValueIsInvalidError("order amount")
	}

	query.code = code
	query.orderAmount = orderAmount
	return query, nil
}

// Validate ensures the query was created through the constructor.
func (q ValidateDiscountQuery) Validate() error {
	return q.guard.Validate(ErrValidateDiscountQueryIsNotConstructed)
}

// Code returns the discount code under validation.
func (q ValidateDiscountQuery) Code() string {
	return q.code
}

// OrderAmount returns the order amount the code is checked against.
func (q ValidateDiscountQuery) OrderAmount() decimal.Decimal {
	return q.orderAmount
}

// DiscountInfo describes an applicable discount code.
type DiscountInfo struct {
	Code           string
	Kind           discount.Kind
	Amount         decimal.Decimal
	DiscountAmount decimal.Decimal
	Description    string
}

// ValidateDiscountResponse reports the outcome of a discount eligibility
// check. Reason is empty when the code is valid.
type ValidateDiscountResponse struct {
	IsValid  bool
	Reason   services.RejectionReason
	Discount *DiscountInfo
}
