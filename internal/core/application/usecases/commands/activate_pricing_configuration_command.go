package commands

import (
	"errors"

	"barbari/internal/core/domain/model/kernel"
	"barbari/internal/pkg/guard"
)

var ErrActivatePricingConfigurationCommandIsNotConstructed = errors.New(
	"ActivatePricingConfigurationCommand must be created via NewActivatePricingConfigurationCommand constructor",
)

// ActivatePricingConfigurationCommand represents a request to make one rate
// configuration the active one.
type ActivatePricingConfigurationCommand struct { //nolint:recvcheck //using for validation
	configID kernel.UUID

	guard guard.ConstructorGuard
}

// NewActivatePricingConfigurationCommand creates a command to activate a
// rate configuration.
func NewActivatePricingConfigurationCommand(
	configID kernel.UUID,
) (ActivatePricingConfigurationCommand, error) {
	command := ActivatePricingConfigurationCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := configID.Validate(); err != nil {
		return ActivatePricingConfigurationCommand{}, err
	}

	command.configID = configID
	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c ActivatePricingConfigurationCommand) Validate() error {
	return c.guard.Validate(ErrActivatePricingConfigurationCommandIsNotConstructed)
}

// ConfigID returns the configuration's unique identifier.
func (c ActivatePricingConfigurationCommand) ConfigID() kernel.UUID {
	return c.configID
}
