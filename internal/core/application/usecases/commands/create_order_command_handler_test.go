package commands_test

import (
	"context"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"barbari/internal/core/application/usecases/commands"
	"barbari/internal/core/domain/model/discount"
	"barbari/internal/core/domain/model/kernel"
	"barbari/internal/core/domain/model/order"
	"barbari/internal/core/domain/model/pricing"
	"barbari/internal/core/ports"
	"barbari/internal/pkg/errs"
)

func testConfiguration(t *testing.T) *pricing.Configuration {
	t.Helper()
	cfg, err := pricing.RestoreConfiguration(kernel.NewUUID(), pricing.ConfigurationParams{
		Name:           "test rates",
		BaseWorkerRate: decimal.NewFromInt(150000),
		BaseVehicleRates: map[kernel.VehicleType]decimal.Decimal{
			kernel.VehicleVan: decimal.NewFromInt(450000),
		},
		PerKmRate:    decimal.NewFromInt(9000),
		PerFloorRate: decimal.NewFromInt(25000),
		StopRate:     decimal.NewFromInt(50000),
	}, true, time.Now().UTC())
	require.NoError(t, err)
	return cfg
}

func testCreateOrderCommand(t *testing.T, discountCode string) commands.CreateOrderCommand {
	t.Helper()
	command, err := commands.NewCreateOrderCommand(commands.CreateOrderCommandParams{
		OrderID:      kernel.NewUUID(),
		UserID:       kernel.NewUUID(),
		ServiceID:    kernel.NewUUID(),
		VehicleType:  kernel.VehicleVan,
		ScheduledAt:  time.Now().UTC().Add(24 * time.Hour),
		DistanceKm:   decimal.NewFromInt(10),
		DiscountCode: discountCode,
	})
	require.NoError(t, err)
	return command
}

func TestCreateOrderCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()

	orderRepo := &MockOrderRepository{}
	orderRepo.On("GetLastNumberWithPrefix", ctx, mock.AnythingOfType("string")).Return("", nil)
	orderRepo.On("Add", ctx, mock.AnythingOfType("*order.Order")).Return(nil)

	pricingRepo := &MockPricingRepository{}
	pricingRepo.On("GetActive", ctx).Return(testConfiguration(t), nil)

	uow := &MockUoW{}
	uow.On("Begin", ctx).Return(nil)
	uow.On("Commit", ctx).Return(nil)
	uow.On("Rollback", ctx).Return(nil)
	uow.On("OrderRepository").Return(orderRepo)
	uow.On("PricingRepository").Return(pricingRepo)

	handler := commands.NewCreateOrderCommandHandler(stubCreateOrderUoWFactory{uow: uow})

	result, err := handler.Handle(ctx, testCreateOrderCommand(t, ""))

	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(result.OrderNumber, "BB"))
	assert.True(t, strings.HasSuffix(result.OrderNumber, "0001"))
	assert.Equal(t, order.Pending, result.Status)
	// 450000 vehicle + 10 × 9000 distance
	assert.True(t, decimal.NewFromInt(540000).Equal(result.TotalPrice),
		"want 540000, got %s", result.TotalPrice)
	orderRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestCreateOrderCommandHandler_Handle_RedeemsDiscount(t *testing.T) {
	ctx := t.Context()

	code, err := discount.NewCode(kernel.NewUUID(), discount.CodeParams{
		Code:      "WELCOME10",
		Kind:      discount.Percentage,
		Value:     decimal.NewFromInt(10),
		StartDate: time.Now().UTC().Add(-time.Hour),
	})
	require.NoError(t, err)

	orderRepo := &MockOrderRepository{}
	orderRepo.On("GetLastNumberWithPrefix", ctx, mock.AnythingOfType("string")).Return("", nil)
	orderRepo.On("Add", ctx, mock.AnythingOfType("*order.Order")).Return(nil)

	pricingRepo := &MockPricingRepository{}
	pricingRepo.On("GetActive", ctx).Return(testConfiguration(t), nil)

	discountRepo := &MockDiscountRepository{}
	discountRepo.On("GetByCode", ctx, "WELCOME10").Return(code, nil)
	discountRepo.On("Redeem", ctx, code.ID()).Return(nil)

	uow := &MockUoW{}
	uow.On("Begin", ctx).Return(nil)
	uow.On("Commit", ctx).Return(nil)
	uow.On("Rollback", ctx).Return(nil)
	uow.On("OrderRepository").Return(orderRepo)
	uow.On("PricingRepository").Return(pricingRepo)
	uow.On("DiscountRepository").Return(discountRepo)

	handler := commands.NewCreateOrderCommandHandler(stubCreateOrderUoWFactory{uow: uow})

	result, err := handler.Handle(ctx, testCreateOrderCommand(t, "WELCOME10"))

	require.NoError(t, err)
	// 540000 subtotal − 10%
	assert.True(t, decimal.NewFromInt(486000).Equal(result.TotalPrice),
		"want 486000, got %s", result.TotalPrice)
	discountRepo.AssertCalled(t, "Redeem", ctx, code.ID())
}

func TestCreateOrderCommandHandler_Handle_NoActiveConfiguration(t *testing.T) {
	ctx := t.Context()

	pricingRepo := &MockPricingRepository{}
	pricingRepo.On("GetActive", ctx).Return(nil, errs.NewObjectNotFoundError("configuration", nil))

	uow := &MockUoW{}
	uow.On("Begin", ctx).Return(nil)
	uow.On("Rollback", ctx).Return(nil)
	uow.On("PricingRepository").Return(pricingRepo)

	handler := commands.NewCreateOrderCommandHandler(stubCreateOrderUoWFactory{uow: uow})

	_, err := handler.Handle(ctx, testCreateOrderCommand(t, ""))

	assert.ErrorIs(t, err, errs.ErrObjectNotFound)
	uow.AssertNotCalled(t, "Commit", ctx)
}

func TestCreateOrderCommandHandler_Handle_RetriesOnNumberCollision(t *testing.T) {
	ctx := t.Context()

	orderRepo := &MockOrderRepository{}
	orderRepo.On("GetLastNumberWithPrefix", ctx, mock.AnythingOfType("string")).Return("", nil)
	orderRepo.On("Add", ctx, mock.AnythingOfType("*order.Order")).
		Return(errs.NewConcurrencyError("order number is taken")).Twice()
	orderRepo.On("Add", ctx, mock.AnythingOfType("*order.Order")).Return(nil).Once()

	pricingRepo := &MockPricingRepository{}
	pricingRepo.On("GetActive", ctx).Return(testConfiguration(t), nil)

	uow := &MockUoW{}
	uow.On("Begin", ctx).Return(nil)
	uow.On("Commit", ctx).Return(nil)
	uow.On("Rollback", ctx).Return(nil)
	uow.On("OrderRepository").Return(orderRepo)
	uow.On("PricingRepository").Return(pricingRepo)

	handler := commands.NewCreateOrderCommandHandler(stubCreateOrderUoWFactory{uow: uow})

	result, err := handler.Handle(ctx, testCreateOrderCommand(t, ""))

	require.NoError(t, err)
	assert.NotEmpty(t, result.OrderNumber)
	orderRepo.AssertNumberOfCalls(t, "Add", 3)
}

func TestCreateOrderCommandHandler_Handle_SurfacesExhaustedRetries(t *testing.T) {
	ctx := t.Context()

	orderRepo := &MockOrderRepository{}
	orderRepo.On("GetLastNumberWithPrefix", ctx, mock.AnythingOfType("string")).Return("", nil)
	orderRepo.On("Add", ctx, mock.AnythingOfType("*order.Order")).
		Return(errs.NewConcurrencyError("order number is taken"))

	pricingRepo := &MockPricingRepository{}
	pricingRepo.On("GetActive", ctx).Return(testConfiguration(t), nil)

	uow := &MockUoW{}
	uow.On("Begin", ctx).Return(nil)
	uow.On("Rollback", ctx).Return(nil)
	uow.On("OrderRepository").Return(orderRepo)
	uow.On("PricingRepository").Return(pricingRepo)

	handler := commands.NewCreateOrderCommandHandler(stubCreateOrderUoWFactory{uow: uow})

	_, err := handler.Handle(ctx, testCreateOrderCommand(t, ""))

	assert.ErrorIs(t, err, errs.ErrConcurrency)
	orderRepo.AssertNumberOfCalls(t, "Add", 3)
}

func TestCreateOrderCommandHandler_Handle_UnconstructedCommand(t *testing.T) {
	handler := commands.NewCreateOrderCommandHandler(stubCreateOrderUoWFactory{uow: &MockUoW{}})

	_, err := handler.Handle(t.Context(), commands.CreateOrderCommand{})

	assert.ErrorIs(t, err, commands.ErrCreateOrderCommandIsNotConstructed)
}

// memOrderStore simulates the unique constraint on order numbers.
type memOrderStore struct {
	mu      sync.Mutex
	numbers map[string]struct{}
	cfg     *pricing.Configuration
}

type memCreateOrderUoW struct{ store *memOrderStore }

func (u memCreateOrderUoW) Begin(context.Context) error    { return nil }
func (u memCreateOrderUoW) Commit(context.Context) error   { return nil }
func (u memCreateOrderUoW) Rollback(context.Context) error { return nil }

func (u memCreateOrderUoW) OrderRepository() ports.OrderRepository {
	return memOrderRepo{store: u.store}
}

func (u memCreateOrderUoW) PricingRepository() ports.PricingRepository {
	return memPricingRepo{store: u.store}
}

func (u memCreateOrderUoW) DiscountRepository() ports.DiscountRepository {
	return nil
}

type memCreateOrderUoWFactory struct{ store *memOrderStore }

func (f memCreateOrderUoWFactory) Create() commands.CreateOrderUoW {
	return memCreateOrderUoW{store: f.store}
}

type memOrderRepo struct{ store *memOrderStore }

func (r memOrderRepo) Add(_ context.Context, o *order.Order) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	if _, taken := r.store.numbers[o.OrderNumber()]; taken {
		return errs.NewConcurrencyError("order number is taken")
	}
	r.store.numbers[o.OrderNumber()] = struct{}{}
	return nil
}

func (r memOrderRepo) Update(context.Context, *order.Order) error { return nil }

func (r memOrderRepo) Get(context.Context, kernel.UUID) (*order.Order, error) {
	return nil, errs.NewObjectNotFoundError("order", nil)
}

func (r memOrderRepo) GetLastNumberWithPrefix(_ context.Context, prefix string) (string, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	last := ""
	for number := range r.store.numbers {
		if strings.HasPrefix(number, prefix) && number > last {
			last = number
		}
	}
	return last, nil
}

type memPricingRepo struct{ store *memOrderStore }

func (r memPricingRepo) Add(context.Context, *pricing.Configuration) error    { return nil }
func (r memPricingRepo) Update(context.Context, *pricing.Configuration) error { return nil }
func (r memPricingRepo) DeactivateAll(context.Context) error                  { return nil }

func (r memPricingRepo) Get(context.Context, kernel.UUID) (*pricing.Configuration, error) {
	return r.store.cfg, nil
}

func (r memPricingRepo) GetActive(context.Context) (*pricing.Configuration, error) {
	return r.store.cfg, nil
}

func TestCreateOrderCommandHandler_Handle_ConcurrentCreationsNeverDuplicateNumbers(t *testing.T) {
	const goroutines = 50

	store := &memOrderStore{
		numbers: make(map[string]struct{}),
		cfg:     testConfiguration(t),
	}
	handler := commands.NewCreateOrderCommandHandler(memCreateOrderUoWFactory{store: store})
	command := testCreateOrderCommand(t, "")

	var wg sync.WaitGroup
	results := make([]commands.CreateOrderResult, goroutines)
	errors := make([]error, goroutines)

	for i := range goroutines {
		wg.Add(1)
		go func() {
			defer wg.Done()
			results[i], errors[i] = handler.Handle(context.Background(), command)
		}()
	}
	wg.Wait()

	seen := make(map[string]struct{})
	for i := range goroutines {
		if errors[i] != nil {
			// Contention may exhaust the bounded retries; that must
			// surface as a Concurrency error, never as a duplicate.
			assert.ErrorIs(t, errors[i], errs.ErrConcurrency)
			continue
		}
		_, duplicate := seen[results[i].OrderNumber]
		assert.False(t, duplicate, "duplicate order number %s", results[i].OrderNumber)
		seen[results[i].OrderNumber] = struct{}{}
	}
	assert.NotEmpty(t, seen)
}
