package queries_test

import (
	"context"
	"time"

	"barbari/internal/core/domain/model/discount"
	"barbari/internal/core/domain/model/kernel"
	"barbari/internal/core/domain/model/pricing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
)

type MockPricingRepository struct {
	mock.Mock
}

func (m *MockPricingRepository) Add(ctx context.Context, aggregate *pricing.Configuration) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockPricingRepository) Update(ctx context.Context, aggregate *pricing.Configuration) error {
	args := m.Called(ctx, aggregate)
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

type MockDiscountRepository struct {
	mock.Mock
}

func (m *MockDiscountRepository) Add(ctx context.Context, aggregate *discount.Code) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockDiscountRepository) Update(ctx context.Context, aggregate *discount.Code) error {
	args := m.Called(ctx, aggregate)
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

func decimalPtr(value int64) *decimal.Decimal {
	d := decimal.NewFromInt(value)
	return &d
}
