package commands_test

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"barbari/internal/core/application/usecases/commands"
	"barbari/internal/core/domain/model/discount"
	"barbari/internal/core/domain/model/driver"
	"barbari/internal/core/domain/model/kernel"
	"barbari/internal/core/domain/model/order"
	"barbari/internal/core/domain/model/pricing"
	"barbari/internal/core/domain/model/rating"
	"barbari/internal/core/ports"
)

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Add(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Update(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockOrderRepository) GetLastNumberWithPrefix(ctx context.Context, prefix string) (string, error) {
	args := m.Called(ctx, prefix)
	return args.String(0), args.Error(1)
}

type MockDriverRepository struct{ mock.Mock }

func (m *MockDriverRepository) Add(ctx context.Context, d *driver.Driver) error {
	args := m.Called(ctx, d)
	return args.Error(0)
}

func (m *MockDriverRepository) Update(ctx context.Context, d *driver.Driver) error {
	args := m.Called(ctx, d)
	return args.Error(0)
}

func (m *MockDriverRepository) Get(ctx context.Context, id kernel.UUID) (*driver.Driver, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*driver.Driver), args.Error(1)
}

func (m *MockDriverRepository) GetForUpdate(ctx context.Context, id kernel.UUID) (*driver.Driver, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*driver.Driver), args.Error(1)
}

type MockPricingRepository struct{ mock.Mock }

func (m *MockPricingRepository) Add(ctx context.Context, cfg *pricing.Configuration) error {
	args := m.Called(ctx, cfg)
	return args.Error(0)
}

func (m *MockPricingRepository) Update(ctx context.Context, cfg *pricing.Configuration) error {
	args := m.Called(ctx, cfg)
	return args.Error(0)
}

func (m *MockPricingRepository) Get(ctx context.Context, id kernel.UUID) (*pricing.Configuration, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*pricing.Configuration), args.Error(1)
}

func (m *MockPricingRepository) GetActive(ctx context.Context) (*pricing.Configuration, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*pricing.Configuration), args.Error(1)
}

func (m *MockPricingRepository) DeactivateAll(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

type MockDiscountRepository struct{ mock.Mock }

func (m *MockDiscountRepository) Add(ctx context.Context, c *discount.Code) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}

func (m *MockDiscountRepository) Update(ctx context.Context, c *discount.Code) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}

func (m *MockDiscountRepository) Get(ctx context.Context, id kernel.UUID) (*discount.Code, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*discount.Code), args.Error(1)
}

func (m *MockDiscountRepository) GetByCode(ctx context.Context, code string) (*discount.Code, error) {
	args := m.Called(ctx, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*discount.Code), args.Error(1)
}

func (m *MockDiscountRepository) Redeem(ctx context.Context, id kernel.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockDiscountRepository) DeactivateExpired(ctx context.Context, now time.Time) (int64, error) {
	args := m.Called(ctx, now)
	return args.Get(0).(int64), args.Error(1)
}

type MockRatingRepository struct{ mock.Mock }

func (m *MockRatingRepository) Add(ctx context.Context, r *rating.OrderRating) error {
	args := m.Called(ctx, r)
	return args.Error(0)
}

func (m *MockRatingRepository) GetByOrder(ctx context.Context, orderID kernel.UUID) (*rating.OrderRating, error) {
	args := m.Called(ctx, orderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*rating.OrderRating), args.Error(1)
}

func (m *MockRatingRepository) GetDriverRatings(ctx context.Context, driverID kernel.UUID) ([]int, error) {
	args := m.Called(ctx, driverID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]int), args.Error(1)
}

// MockUoW satisfies every unit-of-work composition the command handlers use.
type MockUoW struct{ mock.Mock }

func (m *MockUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

func (m *MockUoW) DriverRepository() ports.DriverRepository {
	args := m.Called()
	return args.Get(0).(ports.DriverRepository)
}

func (m *MockUoW) PricingRepository() ports.PricingRepository {
	args := m.Called()
	return args.Get(0).(ports.PricingRepository)
}

func (m *MockUoW) DiscountRepository() ports.DiscountRepository {
	args := m.Called()
	return args.Get(0).(ports.DiscountRepository)
}

func (m *MockUoW) RatingRepository() ports.RatingRepository {
	args := m.Called()
	return args.Get(0).(ports.RatingRepository)
}

// Stub factories hand the same unit of work to every Create call.
type (
	stubCreateOrderUoWFactory struct{ uow commands.CreateOrderUoW }
	stubLifecycleUoWFactory   struct{ uow commands.LifecycleUoW }
	stubRatingUoWFactory      struct{ uow commands.RatingUoW }
	stubDriverUoWFactory      struct{ uow commands.DriverUoW }
	stubPricingUoWFactory     struct{ uow commands.PricingUoW }
	stubDiscountUoWFactory    struct{ uow commands.DiscountUoW }
)

func (f stubCreateOrderUoWFactory) Create() commands.CreateOrderUoW { return f.uow }
func (f stubLifecycleUoWFactory) Create() commands.LifecycleUoW { return f.uow }
func (f stubRatingUoWFactory) Create() commands.RatingUoW { return f.uow }
func (f stubDriverUoWFactory) Create() commands.DriverUoW { return f.uow }
func (f stubPricingUoWFactory) Create() commands.PricingUoW { return f.uow }
func (f stubDiscountUoWFactory) Create() commands.DiscountUoW { return f.uow }

type MockNotifier struct{ mock.Mock }

func (m *MockNotifier) Notify(ctx context.Context, notification ports.Notification) {
	m.Called(ctx, notification)
}
