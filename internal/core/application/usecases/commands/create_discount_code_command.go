package commands

import (
	"errors"

	"barbari/internal/core/domain/model/discount"
	"barbari/internal/core/domain/model/kernel"
	"barbari/internal/pkg/guard"
)

var ErrCreateDiscountCodeCommandIsNotConstructed = errors.New(
	"CreateDiscountCodeCommand must be created via NewCreateDiscountCodeCommand constructor",
)

// CreateDiscountCodeCommand represents a request to create a discount code.
type CreateDiscountCodeCommand struct { //nolint:recvcheck //using for validation
	codeID kernel.UUID
	params discount.CodeParams

	guard guard.ConstructorGuard
}

// NewCreateDiscountCodeCommand creates a command to register a discount code.
// The eligibility parameters are validated by the aggregate constructor in
// the handler; the command only checks the identifier.
func NewCreateDiscountCodeCommand(
	codeID kernel.UUID, params discount.CodeParams,
) (CreateDiscountCodeCommand, error) {
	command := CreateDiscountCodeCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := codeID.Validate(); err != nil {
		return CreateDiscountCodeCommand{}, err
	}

	command.codeID = codeID
	command.params = params
	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateDiscountCodeCommand) Validate() error {
	return c.guard.Validate(ErrCreateDiscountCodeCommandIsNotConstructed)
}

// CodeID returns the discount code's unique identifier.
func (c CreateDiscountCodeCommand) CodeID() kernel.UUID {
	return c.codeID
}

// Params returns the discount code parameters.
func (c CreateDiscountCodeCommand) Params() discount.CodeParams {
	return c.params
}
