package commands

import (
	"context"
	"errors"
	"time"

	"barbari/internal/core/domain/model/discount"
	"barbari/internal/core/domain/model/order"
	"barbari/internal/core/domain/services"
	"barbari/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// maxCreateOrderAttempts bounds the retries on an order-number collision.
// Two requests racing for the same daily sequence slot lose at most twice
// before one of them surfaces a Concurrency error.
const maxCreateOrderAttempts = 3

// CreateOrderResult is the outcome of a successful order creation.
type CreateOrderResult struct {
	OrderID     string
	OrderNumber string
	Status      order.Status
	TotalPrice  decimal.Decimal
}

// CreateOrderCommandHandler handles the business logic for order creation.
//
// Creation prices the request against the active rate configuration, redeems
// the discount code when one applies, generates the next order number for
// today's sequence, and persists the order in Pending status. The whole
// attempt runs in one transaction; an order-number collision rolls the
// attempt back and retries it from the top with a fresh number.
type CreateOrderCommandHandler struct {
	uowFactory CreateOrderUoWFactory
	calculator services.PriceCalculator
	generator  services.OrderNumberGenerator
}

// NewCreateOrderCommandHandler creates a handler for order creation operations.
// Requires a CreateOrderUoWFactory for transactional persistence.
func NewCreateOrderCommandHandler(uowFactory CreateOrderUoWFactory) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
		calculator: services.NewPriceCalculator(),
		generator:  services.NewOrderNumberGenerator(),
	}
}

// Handle processes the order creation command.
// Returns an ObjectNotFound error when no rate configuration is active, and
// a Concurrency error when the order-number retries are exhausted.
func (h CreateOrderCommandHandler) Handle(
	ctx context.Context, command CreateOrderCommand,
) (CreateOrderResult, error) {
	if err := command.Validate(); err != nil {
		return CreateOrderResult{}, err
	}

	var lastErr error
	for attempt := 0; attempt < maxCreateOrderAttempts; attempt++ {
		result, err := h.createOnce(ctx, command, time.Now().UTC())
		if errors.Is(err, errs.ErrConcurrency) {
			lastErr = err
			continue
		}
		return result, err
	}

	return CreateOrderResult{}, lastErr
}

func (h CreateOrderCommandHandler) createOnce(
	ctx context.Context, command CreateOrderCommand, now time.Time,
) (CreateOrderResult, error) {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return CreateOrderResult{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	cfg, err := uow.PricingRepository().GetActive(ctx)
	if err != nil {
		return CreateOrderResult{}, err
	}

	code, err := h.resolveDiscountCode(ctx, uow, command.Params().DiscountCode)
	if err != nil {
		return CreateOrderResult{}, err
	}

	breakdown, err := h.calculator.Calculate(command.PricingRequest(), cfg, code, now)
	if err != nil {
		return CreateOrderResult{}, err
	}

	var appliedCode *string
	if breakdown.DiscountDetails != nil {
		redeemErr := uow.DiscountRepository().Redeem(ctx, code.ID())
		switch {
		case errors.Is(redeemErr, errs.ErrConflict):
			// The code ran out between validation and redemption.
			// Reprice without it rather than failing the order.
			breakdown, err = h.calculator.Calculate(command.PricingRequest(), cfg, nil, now)
			if err != nil {
				return CreateOrderResult{}, err
			}
		case redeemErr != nil:
			return CreateOrderResult{}, redeemErr
		default:
			value := code.Value()
			appliedCode = &value
		}
	}

	orderRepo := uow.OrderRepository()
	lastNumber, err := orderRepo.GetLastNumberWithPrefix(ctx, h.generator.Prefix(now))
	if err != nil {
		return CreateOrderResult{}, err
	}

	orderNumber, err := h.generator.Next(lastNumber, now)
	if err != nil {
		return CreateOrderResult{}, err
	}

	params := command.Params()
	aggregate, err := order.NewOrder(
		params.OrderID,
		orderNumber,
		params.UserID,
		params.ServiceID,
		params.VehicleType,
		params.ScheduledAt,
		breakdown,
		appliedCode,
		now,
	)
	if err != nil {
		return CreateOrderResult{}, err
	}

	if err = orderRepo.Add(ctx, aggregate); err != nil {
		return CreateOrderResult{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return CreateOrderResult{}, err
	}

	return CreateOrderResult{
		OrderID:     aggregate.ID().String(),
		OrderNumber: aggregate.OrderNumber(),
		Status:      aggregate.Status(),
		TotalPrice:  aggregate.Breakdown().TotalPrice,
	}, nil
}

func (h CreateOrderCommandHandler) resolveDiscountCode(
	ctx context.Context, uow CreateOrderUoW, rawCode string,
) (*discount.Code, error) {
	if rawCode == "" {
		return nil, nil
	}

	code, err := uow.DiscountRepository().GetByCode(ctx, rawCode)
	if errors.Is(err, errs.ErrObjectNotFound) {
		// An unknown code prices as a zero discount, never as an error.
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return code, nil
}
