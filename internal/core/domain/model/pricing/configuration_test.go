package pricing

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"barbari/internal/core/domain/model/kernel"
	"barbari/internal/pkg/errs"
)

func validParams() ConfigurationParams {
	return ConfigurationParams{
		Name:           "autumn rates",
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
		WalkingTiers: []WalkingTier{
			{ThresholdMeters: 20, Amount: decimal.NewFromInt(200000)},
			{ThresholdMeters: 0, Amount: decimal.Zero},
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

func Test_NewConfiguration(t *testing.T) {
	now := time.Now().UTC()

	t.Run("should_create_inactive_configuration", func(t *testing.T) {
		// Arrange
		id := kernel.NewUUID()

		// Act
		cfg, err := NewConfiguration(id, validParams(), now)

		// Assert
		require.NoError(t, err)
		assert.Equal(t, id, cfg.ID())
		assert.Equal(t, "autumn rates", cfg.Name())
		assert.False(t, cfg.IsActive())
		assert.Equal(t, now, cfg.CreatedAt())
		assert.True(t, cfg.IncludePackingMaterialsInPrice())
	})

	t.Run("should_sort_walking_tiers_by_threshold", func(t *testing.T) {
		// Act
		cfg, err := NewConfiguration(kernel.NewUUID(), validParams(), now)

		// Assert
		require.NoError(t, err)
		tiers := cfg.WalkingTiers()
		require.Len(t, tiers, 3)
		assert.Equal(t, 0, tiers[0].ThresholdMeters)
		assert.Equal(t, 20, tiers[1].ThresholdMeters)
		assert.Equal(t, 35, tiers[2].ThresholdMeters)
	})

	t.Run("should_reject_empty_name", func(t *testing.T) {
		// Arrange
		params := validParams()
		params.Name = ""

		// Act
		cfg, err := NewConfiguration(kernel.NewUUID(), params, now)

		// Assert
		assert.Nil(t, cfg)
		assert.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("should_reject_negative_scalar_rate", func(t *testing.T) {
		// Arrange
		params := validParams()
		params.PerKmRate = decimal.NewFromInt(-1)

		// Act
		cfg, err := NewConfiguration(kernel.NewUUID(), params, now)

		// Assert
		assert.Nil(t, cfg)
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("should_reject_negative_vehicle_rate", func(t *testing.T) {
		// Arrange
		params := validParams()
		params.BaseVehicleRates[kernel.VehicleHeavyTruck] = decimal.NewFromInt(-100)

		// Act
		cfg, err := NewConfiguration(kernel.NewUUID(), params, now)

		// Assert
		assert.Nil(t, cfg)
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("should_reject_invalid_vehicle_key", func(t *testing.T) {
		// Arrange
		params := validParams()
		params.WorkerRatesByVehicle[kernel.VehicleType(99)] = decimal.NewFromInt(1)

		// Act
		cfg, err := NewConfiguration(kernel.NewUUID(), params, now)

		// Assert
		assert.Nil(t, cfg)
		assert.Error(t, err)
	})

	t.Run("should_reject_duplicate_walking_tier_thresholds", func(t *testing.T) {
		// Arrange
		params := validParams()
		params.WalkingTiers = []WalkingTier{
			{ThresholdMeters: 20, Amount: decimal.NewFromInt(200000)},
			{ThresholdMeters: 20, Amount: decimal.NewFromInt(250000)},
		}

		// Act
		cfg, err := NewConfiguration(kernel.NewUUID(), params, now)

		// Assert
		assert.Nil(t, cfg)
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("should_reject_negative_walking_tier", func(t *testing.T) {
		// Arrange
		params := validParams()
		params.WalkingTiers = []WalkingTier{
			{ThresholdMeters: -5, Amount: decimal.NewFromInt(200000)},
		}

		// Act
		cfg, err := NewConfiguration(kernel.NewUUID(), params, now)

		// Assert
		assert.Nil(t, cfg)
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func Test_Configuration_RateLookups(t *testing.T) {
	cfg, err := NewConfiguration(kernel.NewUUID(), validParams(), time.Now().UTC())
	require.NoError(t, err)

	t.Run("should_return_configured_vehicle_rate", func(t *testing.T) {
		assert.True(t, decimal.NewFromInt(450000).Equal(cfg.VehicleRate(kernel.VehicleVan)))
	})

	t.Run("should_return_zero_for_unconfigured_vehicle", func(t *testing.T) {
		assert.True(t, cfg.VehicleRate(kernel.VehicleHeavyTruck).IsZero())
	})

	t.Run("should_return_vehicle_specific_worker_rate", func(t *testing.T) {
		assert.True(t, decimal.NewFromInt(180000).Equal(cfg.WorkerRate(kernel.VehicleVan)))
	})

	t.Run("should_fall_back_to_base_worker_rate", func(t *testing.T) {
		assert.True(t, decimal.NewFromInt(150000).Equal(cfg.WorkerRate(kernel.VehiclePickup)))
	})
}

func Test_Configuration_WalkingAmount(t *testing.T) {
	cfg, err := NewConfiguration(kernel.NewUUID(), validParams(), time.Now().UTC())
	require.NoError(t, err)

	tests := map[string]struct {
		distanceMeters int
		want           decimal.Decimal
	}{
		"below_first_paid_tier":   {distanceMeters: 10, want: decimal.Zero},
		"between_tiers":           {distanceMeters: 30, want: decimal.NewFromInt(200000)},
		"exactly_on_threshold":    {distanceMeters: 35, want: decimal.NewFromInt(350000)},
		"beyond_highest_tier":     {distanceMeters: 120, want: decimal.NewFromInt(350000)},
		"zero_distance_zero_tier": {distanceMeters: 0, want: decimal.Zero},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			assert.True(t, tc.want.Equal(cfg.WalkingAmount(tc.distanceMeters)),
				"want %s, got %s", tc.want, cfg.WalkingAmount(tc.distanceMeters))
		})
	}
}

func Test_Configuration_WalkingAmount_NoTiers(t *testing.T) {
	params := validParams()
	params.WalkingTiers = nil
	cfg, err := NewConfiguration(kernel.NewUUID(), params, time.Now().UTC())
	require.NoError(t, err)

	assert.True(t, cfg.WalkingAmount(500).IsZero())
}

func Test_Configuration_Activation(t *testing.T) {
	t.Run("should_toggle_active_flag", func(t *testing.T) {
		// Arrange
		cfg, err := NewConfiguration(kernel.NewUUID(), validParams(), time.Now().UTC())
		require.NoError(t, err)

		// Act & Assert
		cfg.Activate()
		assert.True(t, cfg.IsActive())

		cfg.Deactivate()
		assert.False(t, cfg.IsActive())
	})

	t.Run("restore_should_keep_active_flag", func(t *testing.T) {
		// Act
		cfg, err := RestoreConfiguration(kernel.NewUUID(), validParams(), true, time.Now().UTC())

		// Assert
		require.NoError(t, err)
		assert.True(t, cfg.IsActive())
	})
}

func Test_Configuration_Validate(t *testing.T) {
	t.Run("should_reject_zero_value_configuration", func(t *testing.T) {
		var cfg Configuration
		assert.ErrorIs(t, cfg.Validate(), ErrConfigurationIsNotConstructed)
	})
}
