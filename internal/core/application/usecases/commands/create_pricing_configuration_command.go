package commands

import (
	"errors"

	"barbari/internal/core/domain/model/kernel"
	"barbari/internal/core/domain/model/pricing"
	"barbari/internal/pkg/guard"
)

var ErrCreatePricingConfigurationCommandIsNotConstructed = errors.New(
	"CreatePricingConfigurationCommand must be created via NewCreatePricingConfigurationCommand constructor",
)

// CreatePricingConfigurationCommand represents a request to store a new rate
// configuration. The configuration is created inactive; activation is a
// separate command.
type CreatePricingConfigurationCommand struct { //nolint:recvcheck //using for validation
	configID kernel.UUID
	params   pricing.ConfigurationParams

	guard guard.ConstructorGuard
}

// NewCreatePricingConfigurationCommand creates a command to store a rate
// configuration. The rate tables themselves are validated by the aggregate
// constructor in the handler; the command only checks the identifier.
func NewCreatePricingConfigurationCommand(
	configID kernel.UUID, params pricing.ConfigurationParams,
) (CreatePricingConfigurationCommand, error) {
	command := CreatePricingConfigurationCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := configID.Validate(); err != nil {
		return CreatePricingConfigurationCommand{}, err
	}

	command.configID = configID
	command.params = params
	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c CreatePricingConfigurationCommand) Validate() error {
	return c.guard.Validate(ErrCreatePricingConfigurationCommandIsNotConstructed)
}

// ConfigID returns the configuration's unique identifier.
func (c CreatePricingConfigurationCommand) ConfigID() kernel.UUID {
	return c.configID
}

// Params returns the rate configuration parameters.
func (c CreatePricingConfigurationCommand) Params() pricing.ConfigurationParams {
	return c.params
}
