package discount

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"barbari/internal/core/domain/model/kernel"
	"barbari/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

var (
	// ErrCodeIsNotConstructed is returned when a Code instance was not created
	// through the NewCode or RestoreCode factory methods.
	ErrCodeIsNotConstructed = errors.New("Code must be created via NewCode or RestoreCode constructor")

	// ErrUsageLimitReached is returned by Redeem when the code has been used up.
	ErrUsageLimitReached = errs.NewConflictError("discount code usage limit reached")
)

// Code represents a redeemable discount code. It is an aggregate root holding
// the eligibility parameters and the running usage count.
//
// Code follows these invariants:
//   - The code string is unique, trimmed and upper-cased at construction
//   - Percentage values lie in (0, 100]; fixed values are positive
//   - maxDiscount may only be set on percentage codes
//   - usageCount never exceeds usageLimit once set
//   - Can only be created through NewCode or RestoreCode
type Code struct {
	id             kernel.UUID
	code           string
	kind           Kind
	value          decimal.Decimal
	maxDiscount    *decimal.Decimal
	minOrderAmount *decimal.Decimal
	startDate      time.Time
	endDate        *time.Time
	usageLimit     *int
	usageCount     int
	perUserLimit   *int
	isActive       bool
	description    string

	isConstructed bool
}

// CodeParams groups the constructor parameters of a discount code.
// Optional eligibility constraints are nil when unset.
type CodeParams struct {
	Code           string
	Kind           Kind
	Value          decimal.Decimal
	MaxDiscount    *decimal.Decimal
	MinOrderAmount *decimal.Decimal
	StartDate      time.Time
	EndDate        *time.Time
	UsageLimit     *int
	PerUserLimit   *int
	Description    string
}

// NewCode creates a new active Code with zero usage.
// This is the only way to create a valid fresh Code, ensuring all
// business invariants are maintained.
func NewCode(id kernel.UUID, params CodeParams) (*Code, error) {
	code := &Code{
		isActive:      true,
		isConstructed: true,
	}

	if err := errors.Join(
		code.setID(id),
		code.setCode(params.Code),
		code.setKindAndValue(params.Kind, params.Value),
		code.setMaxDiscount(params.Kind, params.MaxDiscount),
		code.setMinOrderAmount(params.MinOrderAmount),
		code.setWindow(params.StartDate, params.EndDate),
		code.setLimits(params.UsageLimit, params.PerUserLimit),
	); err != nil {
		return nil, err
	}

	code.description = params.Description
	return code, nil
}

// RestoreCode reconstructs a Code aggregate from persistent storage,
// including its usage count and active flag.
func RestoreCode(id kernel.UUID, params CodeParams, usageCount int, isActive bool) (*Code, error) {
	code, err := NewCode(id, params)
	if err != nil {
		return nil, err
	}

	if usageCount < 0 {
		return nil, errs.NewValueIsInvalidErrorWithCause(
			"usage count is invalid",
			fmt.Errorf("%d is not greater or equal to 0", usageCount),
		)
	}

	code.usageCount = usageCount
	code.isActive = isActive
	return code, nil
}

// Validate ensures the Code instance was properly constructed.
func (c *Code) Validate() error {
	if c == nil || !c.isConstructed {
		return ErrCodeIsNotConstructed
	}
	return nil
}

// ID returns the code's unique identifier.
func (c *Code) ID() kernel.UUID {
	return c.id
}

// Value returns the normalized code string.
func (c *Code) Value() string {
	return c.code
}

// Kind returns whether the code is percentage or fixed.
func (c *Code) Kind() Kind {
	return c.kind
}

// Amount returns the discount value (percent or flat amount, per Kind).
func (c *Code) Amount() decimal.Decimal {
	return c.value
}

// MaxDiscount returns the optional cap for percentage codes.
func (c *Code) MaxDiscount() *decimal.Decimal {
	return c.maxDiscount
}

// MinOrderAmount returns the optional minimum subtotal for eligibility.
func (c *Code) MinOrderAmount() *decimal.Decimal {
	return c.minOrderAmount
}

// StartDate returns when the code becomes redeemable.
func (c *Code) StartDate() time.Time {
	return c.startDate
}

// EndDate returns the optional expiry instant.
func (c *Code) EndDate() *time.Time {
	return c.endDate
}

// UsageLimit returns the optional total-redemption cap.
func (c *Code) UsageLimit() *int {
	return c.usageLimit
}

// UsageCount returns how many times the code has been redeemed.
func (c *Code) UsageCount() int {
	return c.usageCount
}

// PerUserLimit returns the optional per-customer redemption cap.
func (c *Code) PerUserLimit() *int {
	return c.perUserLimit
}

// IsActive reports whether the code is currently enabled.
func (c *Code) IsActive() bool {
	return c.isActive
}

// Description returns the human-readable description of the code.
func (c *Code) Description() string {
	return c.description
}

// Applied builds the value object the price calculator consumes.
func (c *Code) Applied() Applied {
	return Applied{
		Code:        c.code,
		Kind:        c.kind,
		Value:       c.value,
		MaxDiscount: c.maxDiscount,
		Description: c.description,
	}
}

// Redeem consumes one usage of the code.
//
// The eligibility check and the increment are a single operation so the
// aggregate can never observe usageCount > usageLimit. The persistence layer
// mirrors this with a conditional update for the cross-process guarantee.
func (c *Code) Redeem() error {
	if c.usageLimit != nil && c.usageCount >= *c.usageLimit {
		return ErrUsageLimitReached
	}

	c.usageCount++
	return nil
}

// Deactivate disables the code. Further validations report it as not found.
func (c *Code) Deactivate() {
	c.isActive = false
}

func (c *Code) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.id = id
	return nil
}

func (c *Code) setCode(raw string) error {
	normalized := strings.ToUpper(strings.TrimSpace(raw))
	if normalized == "" {
		return errs.NewValueIsRequiredError("code")
	}
	c.code = normalized
	return nil
}

func (c *Code) setKindAndValue(kind Kind, value decimal.Decimal) error {
	if err := kind.Validate(); err != nil {
		return err
	}

	if !value.IsPositive() {
		return errs.NewValueIsInvalidErrorWithCause(
			"discount value is invalid",
			fmt.Errorf("%s is not greater than 0", value),
		)
	}

	if kind == Percentage && value.GreaterThan(decimal.NewFromInt(100)) {
		return errs.NewValueIsOutOfRangeError("discount percentage", value.String(), 0, 100)
	}

	c.kind = kind
	c.value = value
	return nil
}

func (c *Code) setMaxDiscount(kind Kind, maxDiscount *decimal.Decimal) error {
	if maxDiscount == nil {
		return nil
	}

	if kind != Percentage {
		return errs.NewValueIsInvalidErrorWithCause(
			"max discount is invalid",
			errors.New("max discount is only applicable to percentage codes"),
		)
	}

	if !maxDiscount.IsPositive() {
		return errs.NewValueIsInvalidErrorWithCause(
			"max discount is invalid",
			fmt.Errorf("%s is not greater than 0", maxDiscount),
		)
	}

	c.maxDiscount = maxDiscount
	return nil
}

func (c *Code) setMinOrderAmount(minOrderAmount *decimal.Decimal) error {
	if minOrderAmount == nil {
		return nil
	}

	if minOrderAmount.IsNegative() {
		return errs.NewValueIsInvalidErrorWithCause(
			"min order amount is invalid",
			fmt.Errorf("%s is not greater or equal to 0", minOrderAmount),
		)
	}

	c.minOrderAmount = minOrderAmount
	return nil
}

func (c *Code) setWindow(startDate time.Time, endDate *time.Time) error {
	if startDate.IsZero() {
		return errs.NewValueIsRequiredError("start date")
	}

	if endDate != nil && endDate.Before(startDate) {
		return errs.NewValueIsInvalidErrorWithCause(
			"end date is invalid",
			fmt.Errorf("end date %s is before start date %s", endDate, startDate),
		)
	}

	c.startDate = startDate
	c.endDate = endDate
	return nil
}

func (c *Code) setLimits(usageLimit, perUserLimit *int) error {
	if usageLimit != nil && *usageLimit <= 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"usage limit is invalid",
			fmt.Errorf("%d is not greater than 0", *usageLimit),
		)
	}

	if perUserLimit != nil && *perUserLimit <= 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"per-user limit is invalid",
			fmt.Errorf("%d is not greater than 0", *perUserLimit),
		)
	}

	c.usageLimit = usageLimit
	c.perUserLimit = perUserLimit
	return nil
}
