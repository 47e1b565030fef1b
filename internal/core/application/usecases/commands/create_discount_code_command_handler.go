package commands

import (
	"context"

	"barbari/internal/core/domain/model/discount"
)

// CreateDiscountCodeCommandHandler stores new discount codes.
// The code string is unique after normalization; the repository surfaces a
// Conflict error on a duplicate.
type CreateDiscountCodeCommandHandler struct {
	uowFactory DiscountUoWFactory
}

// NewCreateDiscountCodeCommandHandler creates a handler for discount code
// registration.
func NewCreateDiscountCodeCommandHandler(uowFactory DiscountUoWFactory) CreateDiscountCodeCommandHandler {
	return CreateDiscountCodeCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the discount code creation command.
func (h CreateDiscountCodeCommandHandler) Handle(ctx context.Context, command CreateDiscountCodeCommand) error {
	if err := command.Validate(); err != nil {
		return err
	}

	aggregate, err := discount.NewCode(command.CodeID(), command.Params())
	if err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.DiscountRepository().Add(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
