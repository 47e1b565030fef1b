package queries_test

import (
	"context"
	"testing"
	"time"

	"barbari/internal/core/application/usecases/queries"
	"barbari/internal/core/domain/model/kernel"
	"barbari/internal/core/domain/model/pricing"
	"barbari/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestGetActivePricingConfigQueryHandler_Handle_Success(t *testing.T) {
	cfg, err := pricing.RestoreConfiguration(kernel.NewUUID(), pricing.ConfigurationParams{
		Name:           "winter rates",
		BaseWorkerRate: decimal.NewFromInt(180000),
		BaseVehicleRates: map[kernel.VehicleType]decimal.Decimal{
			kernel.VehicleVan:        decimal.NewFromInt(450000),
			kernel.VehicleHeavyTruck: decimal.NewFromInt(900000),
		},
		PerKmRate: decimal.NewFromInt(9000),
		WalkingTiers: []pricing.WalkingTier{
			{ThresholdMeters: 20, Amount: decimal.NewFromInt(200000)},
		},
	}, true, time.Now().UTC())
	require.NoError(t, err)

	pricingRepo := &MockPricingRepository{}
	pricingRepo.On("GetActive", mock.Anything).Return(cfg, nil)

	handler := queries.NewGetActivePricingConfigQueryHandler(pricingRepo)
	resp, err := handler.Handle(context.Background(), queries.GetActivePricingConfigQuery{})
	require.NoError(t, err)

	assert.Equal(t, cfg.ID().String(), resp.ID)
	assert.Equal(t, "winter rates", resp.Name)
	assert.True(t, resp.BaseVehicleRates["van"].Equal(decimal.NewFromInt(450000)))
	assert.True(t, resp.BaseVehicleRates["heavy_truck"].Equal(decimal.NewFromInt(900000)))
	assert.Len(t, resp.WalkingTiers, 1)
}

func TestGetActivePricingConfigQueryHandler_Handle_NoneActive(t *testing.T) {
	pricingRepo := &MockPricingRepository{}
	pricingRepo.On("GetActive", mock.Anything).
		Return(nil, errs.NewObjectNotFoundError("active pricing configuration", nil))

	handler := queries.NewGetActivePricingConfigQueryHandler(pricingRepo)
	_, err := handler.Handle(context.Background(), queries.GetActivePricingConfigQuery{})

	require.ErrorIs(t, err, errs.ErrObjectNotFound)
}
