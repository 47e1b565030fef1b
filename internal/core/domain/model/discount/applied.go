package discount

import "github.com/shopspring/decimal"

// Applied is the read-only result of successfully validating a discount code.
// It carries everything the price calculator needs to apply the discount
// without reaching back into the aggregate.
type Applied struct {
	Code        string
	Kind        Kind
	Value       decimal.Decimal
	MaxDiscount *decimal.Decimal
	Description string
}

// AmountFor computes the discount amount for the given subtotal.
//
// Percentage discounts are subtotal × value/100, capped at MaxDiscount when
// one is configured. Fixed discounts are the raw value, deliberately uncapped
// relative to the subtotal: the caller clamps the final total at zero.
func (a Applied) AmountFor(subtotal decimal.Decimal) decimal.Decimal {
	switch a.Kind {
	case Percentage:
		amount := subtotal.Mul(a.Value).Div(decimal.NewFromInt(100))
		if a.MaxDiscount != nil && amount.GreaterThan(*a.MaxDiscount) {
			return *a.MaxDiscount
		}
		return amount
	case Fixed:
		return a.Value
	default:
		return decimal.Zero
	}
}
