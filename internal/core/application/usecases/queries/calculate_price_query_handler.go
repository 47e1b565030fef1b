package queries

import (
	"context"
	"errors"
	"time"

	"barbari/internal/core/domain/model/discount"
	"barbari/internal/core/domain/model/pricing"
	"barbari/internal/core/domain/services"
	"barbari/internal/core/ports"
	"barbari/internal/pkg/errs"
)

// CalculatePriceQueryHandler produces price previews against the active rate
// configuration. Previews are read-only: the discount code's eligibility is
// checked but its usage is never consumed.
type CalculatePriceQueryHandler struct {
	pricingRepo  ports.PricingRepository
	discountRepo ports.DiscountRepository
	calculator   services.PriceCalculator
}

// NewCalculatePriceQueryHandler creates a handler for price previews.
// The repositories are read-only and not bound to a transaction.
func NewCalculatePriceQueryHandler(
	pricingRepo ports.PricingRepository, discountRepo ports.DiscountRepository,
) CalculatePriceQueryHandler {
	return CalculatePriceQueryHandler{
		pricingRepo:  pricingRepo,
		discountRepo: discountRepo,
		calculator:   services.NewPriceCalculator(),
	}
}

// Handle executes the price preview.
// Returns an ObjectNotFound error when no rate configuration is active; an
// unknown or ineligible discount code yields a zero discount, not an error.
func (h CalculatePriceQueryHandler) Handle(
	ctx context.Context, query CalculatePriceQuery,
) (pricing.Breakdown, error) {
	if err := query.Validate(); err != nil {
		return pricing.Breakdown{}, err
	}

	cfg, err := h.pricingRepo.GetActive(ctx)
	if err != nil {
		return pricing.Breakdown{}, err
	}

	var code *discount.Code
	if query.DiscountCode() != "" {
		code, err = h.discountRepo.GetByCode(ctx, query.DiscountCode())
		if err != nil && !errors.Is(err, errs.ErrObjectNotFound) {
			return pricing.Breakdown{}, err
		}
	}

	return h.calculator.Calculate(query.Request(), cfg, code, time.Now().UTC())
}
