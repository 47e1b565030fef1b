package queries

import (
	"context"
	"errors"
	"time"

	"barbari/internal/core/domain/services"
	"barbari/internal/core/ports"
	"barbari/internal/pkg/errs"
)

// ValidateDiscountQueryHandler checks discount eligibility. An unknown code
// is a NOT_FOUND response, not an error: callers surface the reason to the
// customer instead of failing the request.
type ValidateDiscountQueryHandler struct {
	discountRepo ports.DiscountRepository
	validator    services.DiscountValidator
}

// NewValidateDiscountQueryHandler creates a handler for discount checks.
func NewValidateDiscountQueryHandler(discountRepo ports.DiscountRepository) ValidateDiscountQueryHandler {
	return ValidateDiscountQueryHandler{
		discountRepo: discountRepo,
		validator:    services.NewDiscountValidator(),
	}
}

// Handle runs every eligibility check against the stored code.
func (h ValidateDiscountQueryHandler) Handle(
	ctx context.Context, query ValidateDiscountQuery,
) (ValidateDiscountResponse, error) {
	if err := query.Validate(); err != nil {
		return ValidateDiscountResponse{}, err
	}

	code, err := h.discountRepo.GetByCode(ctx, query.Code())
	if err != nil {
		if errors.Is(err, errs.ErrObjectNotFound) {
			return ValidateDiscountResponse{Reason: services.RejectionNotFound}, nil
		}
		return ValidateDiscountResponse{}, err
	}

	applied, reason := h.validator.Validate(code, query.OrderAmount(), time.Now().UTC())
	if reason != services.RejectionNone {
		return ValidateDiscountResponse{Reason: reason}, nil
	}

	return ValidateDiscountResponse{
		IsValid: true,
		Discount: &DiscountInfo{
			Code:           applied.Code,
			Kind:           applied.Kind,
			Amount:         applied.Value,
			DiscountAmount: applied.AmountFor(query.OrderAmount()),
			Description:    applied.Description,
		},
	}, nil
}
