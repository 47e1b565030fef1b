package commands

import (
	"context"
	"time"

	"barbari/internal/core/domain/model/pricing"
)

// CreatePricingConfigurationCommandHandler stores new rate configurations.
type CreatePricingConfigurationCommandHandler struct {
	uowFactory PricingUoWFactory
}

// NewCreatePricingConfigurationCommandHandler creates a handler for storing
// rate configurations.
func NewCreatePricingConfigurationCommandHandler(
	uowFactory PricingUoWFactory,
) CreatePricingConfigurationCommandHandler {
	return CreatePricingConfigurationCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the configuration creation command. The aggregate
// constructor enforces the rate-table invariants; the new configuration is
// stored inactive.
func (h CreatePricingConfigurationCommandHandler) Handle(
	ctx context.Context, command CreatePricingConfigurationCommand,
) error {
	if err := command.Validate(); err != nil {
		return err
	}

	aggregate, err := pricing.NewConfiguration(command.ConfigID(), command.Params(), time.Now().UTC())
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

	if err = uow.PricingRepository().Add(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
