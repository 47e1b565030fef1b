package services_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"barbari/internal/core/domain/model/discount"
	"barbari/internal/core/domain/model/kernel"
	"barbari/internal/core/domain/model/pricing"
	"barbari/internal/core/domain/services"
)

func newConfiguration(t *testing.T, params pricing.ConfigurationParams) *pricing.Configuration {
	t.Helper()
	cfg, err := pricing.NewConfiguration(kernel.NewUUID(), params, time.Now().UTC())
	require.NoError(t, err)
	return cfg
}

func standardParams() pricing.ConfigurationParams {
	return pricing.ConfigurationParams{
		Name:           "standard rates",
		BaseWorkerRate: decimal.NewFromInt(150000),
		BaseVehicleRates: map[kernel.VehicleType]decimal.Decimal{
			kernel.VehiclePickup: decimal.NewFromInt(300000),
			kernel.VehicleVan:    decimal.NewFromInt(450000),
		},
		WorkerRatesByVehicle: map[kernel.VehicleType]decimal.Decimal{
			kernel.VehicleVan: decimal.NewFromInt(180000),
		},
		PerKmRate:    decimal.NewFromInt(9000),
		PerFloorRate: decimal.NewFromInt(25000),
		WalkingTiers: []pricing.WalkingTier{
			{ThresholdMeters: 0, Amount: decimal.Zero},
			{ThresholdMeters: 20, Amount: decimal.NewFromInt(200000)},
			{ThresholdMeters: 35, Amount: decimal.NewFromInt(350000)},
		},
		StopRate:                       decimal.NewFromInt(50000),
		PackingHourlyRate:              decimal.NewFromInt(120000),
		PackingMaterialsCost:           decimal.NewFromInt(80000),
		IncludePackingMaterialsInPrice: true,
		CancellationFee:                decimal.NewFromInt(100000),
		ExpertVisitFee:                 decimal.NewFromInt(70000),
	}
}

func assertDecimal(t *testing.T, want int64, got decimal.Decimal) {
	t.Helper()
	assert.True(t, decimal.NewFromInt(want).Equal(got), "want %d, got %s", want, got)
}

func TestPriceCalculator_Calculate(t *testing.T) {
	calculator := services.NewPriceCalculator()
	now := time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC)

	t.Run("should itemize all components for a full request", func(t *testing.T) {
		cfg := newConfiguration(t, standardParams())
		req := pricing.Request{
			VehicleType:     kernel.VehicleVan,
			RequiresWorkers: true,
			WorkerCount:     3,
			DistanceKm:      decimal.NewFromInt(12),
			Floors: []pricing.Floor{
				{FloorNumber: 3, HasElevator: false},
				{FloorNumber: 5, HasElevator: true},
			},
			WalkingDistancesM:    []int{30, 40},
			StopsCount:           2,
			RequiresPacking:      true,
			PackingDurationHours: 2,
		}

		breakdown, err := calculator.Calculate(req, cfg, nil, now)

		require.NoError(t, err)
		assertDecimal(t, 450000, breakdown.VehiclePrice)
		assertDecimal(t, 540000, breakdown.WorkerPrice)          // 180000 × 3
		assertDecimal(t, 108000, breakdown.DistancePrice)        // 12 × 9000
		assertDecimal(t, 75000, breakdown.FloorPrice)            // 3 × 25000, elevator floor free
		assertDecimal(t, 550000, breakdown.WalkingDistancePrice) // 200000 + 350000
		assertDecimal(t, 100000, breakdown.StopsPrice)           // 2 × 50000
		assertDecimal(t, 320000, breakdown.PackingPrice)         // 2 × 120000 + 80000
		assertDecimal(t, 2143000, breakdown.Subtotal)
		assertDecimal(t, 2143000, breakdown.TotalPrice)
		assert.True(t, breakdown.Discount.IsZero())
		assert.Nil(t, breakdown.DiscountDetails)

		// 60 + 2×12 + 5×1 + 15×2 + 60×2
		assert.Equal(t, 239, breakdown.EstimatedDurationMinutes)
	})

	t.Run("should price optional inputs as zero contributions", func(t *testing.T) {
		cfg := newConfiguration(t, standardParams())
		req := pricing.Request{VehicleType: kernel.VehiclePickup}

		breakdown, err := calculator.Calculate(req, cfg, nil, now)

		require.NoError(t, err)
		assertDecimal(t, 300000, breakdown.VehiclePrice)
		assertDecimal(t, 300000, breakdown.Subtotal)
		assert.Equal(t, 60, breakdown.EstimatedDurationMinutes)
	})

	t.Run("should price unconfigured vehicle type at zero", func(t *testing.T) {
		cfg := newConfiguration(t, standardParams())
		req := pricing.Request{VehicleType: kernel.VehicleHeavyTruck}

		breakdown, err := calculator.Calculate(req, cfg, nil, now)

		require.NoError(t, err)
		assert.True(t, breakdown.VehiclePrice.IsZero())
	})

	t.Run("should fall back to base worker rate for vehicle without worker rate", func(t *testing.T) {
		cfg := newConfiguration(t, standardParams())
		req := pricing.Request{
			VehicleType:     kernel.VehiclePickup,
			RequiresWorkers: true,
			WorkerCount:     2,
		}

		breakdown, err := calculator.Calculate(req, cfg, nil, now)

		require.NoError(t, err)
		assertDecimal(t, 300000, breakdown.WorkerPrice) // 150000 × 2
	})

	t.Run("should resolve walking legs by closest lower tier", func(t *testing.T) {
		cfg := newConfiguration(t, standardParams())

		tests := map[string]struct {
			distanceMeters int
			want           int64
		}{
			"between tiers takes lower": {distanceMeters: 30, want: 200000},
			"below first paid tier":     {distanceMeters: 10, want: 0},
			"exact threshold match":     {distanceMeters: 35, want: 350000},
		}

		for name, tc := range tests {
			t.Run(name, func(t *testing.T) {
				req := pricing.Request{
					VehicleType:       kernel.VehiclePickup,
					WalkingDistancesM: []int{tc.distanceMeters},
				}

				breakdown, err := calculator.Calculate(req, cfg, nil, now)

				require.NoError(t, err)
				assertDecimal(t, tc.want, breakdown.WalkingDistancePrice)
			})
		}
	})

	t.Run("should price walking legs at zero without configured tiers", func(t *testing.T) {
		params := standardParams()
		params.WalkingTiers = nil
		cfg := newConfiguration(t, params)
		req := pricing.Request{
			VehicleType:       kernel.VehiclePickup,
			WalkingDistancesM: []int{5, 50, 5000},
		}

		breakdown, err := calculator.Calculate(req, cfg, nil, now)

		require.NoError(t, err)
		assert.True(t, breakdown.WalkingDistancePrice.IsZero())
	})

	t.Run("should exclude packing materials when not invoiced", func(t *testing.T) {
		params := standardParams()
		params.IncludePackingMaterialsInPrice = false
		cfg := newConfiguration(t, params)
		req := pricing.Request{
			VehicleType:          kernel.VehiclePickup,
			RequiresPacking:      true,
			PackingDurationHours: 2,
		}

		breakdown, err := calculator.Calculate(req, cfg, nil, now)

		require.NoError(t, err)
		assertDecimal(t, 240000, breakdown.PackingPrice)
	})

	t.Run("should clamp total at zero for oversized fixed discount", func(t *testing.T) {
		params := standardParams()
		params.BaseVehicleRates = map[kernel.VehicleType]decimal.Decimal{
			kernel.VehiclePickup: decimal.NewFromInt(1000000),
		}
		cfg := newConfiguration(t, params)

		code, err := discount.NewCode(kernel.NewUUID(), discount.CodeParams{
			Code:      "MEGA",
			Kind:      discount.Fixed,
			Value:     decimal.NewFromInt(1500000),
			StartDate: now.Add(-time.Hour),
		})
		require.NoError(t, err)

		req := pricing.Request{VehicleType: kernel.VehiclePickup, DiscountCode: "MEGA"}

		breakdown, err := calculator.Calculate(req, cfg, code, now)

		require.NoError(t, err)
		assertDecimal(t, 1000000, breakdown.Subtotal)
		assertDecimal(t, 1500000, breakdown.Discount)
		assert.True(t, breakdown.TotalPrice.IsZero())
	})

	t.Run("should cap percentage discount at max discount", func(t *testing.T) {
		params := standardParams()
		params.BaseVehicleRates = map[kernel.VehicleType]decimal.Decimal{
			kernel.VehiclePickup: decimal.NewFromInt(10000000),
		}
		cfg := newConfiguration(t, params)

		code, err := discount.NewCode(kernel.NewUUID(), discount.CodeParams{
			Code:        "HALF",
			Kind:        discount.Percentage,
			Value:       decimal.NewFromInt(50),
			MaxDiscount: decimalPtr(decimal.NewFromInt(2000000)),
			StartDate:   now.Add(-time.Hour),
		})
		require.NoError(t, err)

		req := pricing.Request{VehicleType: kernel.VehiclePickup, DiscountCode: "HALF"}

		breakdown, err := calculator.Calculate(req, cfg, code, now)

		require.NoError(t, err)
		assertDecimal(t, 2000000, breakdown.Discount)
		assertDecimal(t, 8000000, breakdown.TotalPrice)
		require.NotNil(t, breakdown.DiscountDetails)
		assert.Equal(t, "HALF", breakdown.DiscountDetails.Code)
	})

	t.Run("should apply zero discount for ineligible code", func(t *testing.T) {
		cfg := newConfiguration(t, standardParams())

		code, err := discount.NewCode(kernel.NewUUID(), discount.CodeParams{
			Code:      "EXPIRED",
			Kind:      discount.Fixed,
			Value:     decimal.NewFromInt(50000),
			StartDate: now.Add(-2 * time.Hour),
			EndDate:   timePtr(now.Add(-time.Hour)),
		})
		require.NoError(t, err)

		req := pricing.Request{VehicleType: kernel.VehiclePickup, DiscountCode: "EXPIRED"}

		breakdown, err := calculator.Calculate(req, cfg, code, now)

		require.NoError(t, err)
		assert.True(t, breakdown.Discount.IsZero())
		assert.Nil(t, breakdown.DiscountDetails)
		assertDecimal(t, 300000, breakdown.TotalPrice)
	})

	t.Run("should reject unconstructed configuration", func(t *testing.T) {
		_, err := calculator.Calculate(pricing.Request{}, nil, nil, now)

		assert.ErrorIs(t, err, pricing.ErrConfigurationIsNotConstructed)
	})
}
