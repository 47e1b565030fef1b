package commands

import (
	"context"
)

// ActivatePricingConfigurationCommandHandler switches the active rate
// configuration.
//
// Deactivate-all and activate-one run in a single transaction, so no price
// calculation can ever observe zero or two active configurations. A partial
// unique index on the active flag backs the invariant at the schema level.
type ActivatePricingConfigurationCommandHandler struct {
	uowFactory PricingUoWFactory
}

// NewActivatePricingConfigurationCommandHandler creates a handler for
// configuration activation.
func NewActivatePricingConfigurationCommandHandler(
	uowFactory PricingUoWFactory,
) ActivatePricingConfigurationCommandHandler {
	return ActivatePricingConfigurationCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the activation command.
// Returns an ObjectNotFound error when the configuration does not exist.
func (h ActivatePricingConfigurationCommandHandler) Handle(
	ctx context.Context, command ActivatePricingConfigurationCommand,
) error {
	if err := command.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	pricingRepo := uow.PricingRepository()
	aggregate, err := pricingRepo.Get(ctx, command.ConfigID())
	if err != nil {
		return err
	}

	if aggregate.IsActive() {
		return nil
	}

	if err = pricingRepo.DeactivateAll(ctx); err != nil {
		return err
	}

	aggregate.Activate()
	if err = pricingRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
