package discount_test

import (
	"testing"
	"time"

	"barbari/internal/core/domain/model/discount"
	"barbari/internal/core/domain/model/kernel"
	"barbari/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validParams() discount.CodeParams {
	return discount.CodeParams{
		Code:      "welcome10",
		Kind:      discount.Percentage,
		Value:     decimal.NewFromInt(10),
		StartDate: time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
	}
}

func TestNewCode(t *testing.T) {
	t.Run("normalizes_code_and_starts_active", func(t *testing.T) {
		code, err := discount.NewCode(kernel.NewUUID(), validParams())
		require.NoError(t, err)

		assert.Equal(t, "WELCOME10", code.Value())
		assert.True(t, code.IsActive())
		assert.Equal(t, 0, code.UsageCount())
	})

	t.Run("requires_code_string", func(t *testing.T) {
		params := validParams()
		params.Code = "   "
		_, err := discount.NewCode(kernel.NewUUID(), params)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("requires_positive_value", func(t *testing.T) {
		params := validParams()
		params.Value = decimal.Zero
		_, err := discount.NewCode(kernel.NewUUID(), params)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("rejects_percentage_above_100", func(t *testing.T) {
		params := validParams()
		params.Value = decimal.NewFromInt(150)
		_, err := discount.NewCode(kernel.NewUUID(), params)
		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	})

	t.Run("rejects_max_discount_on_fixed_codes", func(t *testing.T) {
		maxDiscount := decimal.NewFromInt(500000)
		params := validParams()
		params.Kind = discount.Fixed
		params.Value = decimal.NewFromInt(200000)
		params.MaxDiscount = &maxDiscount

		_, err := discount.NewCode(kernel.NewUUID(), params)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("rejects_end_date_before_start_date", func(t *testing.T) {
		endDate := time.Date(2024, 12, 1, 0, 0, 0, 0, time.UTC)
		params := validParams()
		params.EndDate = &endDate

		_, err := discount.NewCode(kernel.NewUUID(), params)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestCode_Redeem(t *testing.T) {
	t.Run("increments_usage_count", func(t *testing.T) {
		code, err := discount.NewCode(kernel.NewUUID(), validParams())
		require.NoError(t, err)

		require.NoError(t, code.Redeem())
		assert.Equal(t, 1, code.UsageCount())
	})

	t.Run("never_exceeds_usage_limit", func(t *testing.T) {
		limit := 2
		params := validParams()
		params.UsageLimit = &limit

		code, err := discount.NewCode(kernel.NewUUID(), params)
		require.NoError(t, err)

		require.NoError(t, code.Redeem())
		require.NoError(t, code.Redeem())

		err = code.Redeem()
		require.ErrorIs(t, err, errs.ErrConflict)
		assert.Equal(t, 2, code.UsageCount())
	})
}

func TestApplied_AmountFor(t *testing.T) {
	subtotal := decimal.NewFromInt(10_000_000)

	t.Run("percentage_without_cap", func(t *testing.T) {
		applied := discount.Applied{Kind: discount.Percentage, Value: decimal.NewFromInt(10)}
		assert.True(t, applied.AmountFor(subtotal).Equal(decimal.NewFromInt(1_000_000)))
	})

	t.Run("percentage_capped_at_max_discount", func(t *testing.T) {
		maxDiscount := decimal.NewFromInt(2_000_000)
		applied := discount.Applied{
			Kind:        discount.Percentage,
			Value:       decimal.NewFromInt(50),
			MaxDiscount: &maxDiscount,
		}
		assert.True(t, applied.AmountFor(subtotal).Equal(maxDiscount))
	})

	t.Run("fixed_is_uncapped", func(t *testing.T) {
		applied := discount.Applied{Kind: discount.Fixed, Value: decimal.NewFromInt(15_000_000)}
		assert.True(t, applied.AmountFor(subtotal).Equal(decimal.NewFromInt(15_000_000)))
	})
}

func TestRestoreCode(t *testing.T) {
	t.Run("restores_usage_state", func(t *testing.T) {
		code, err := discount.RestoreCode(kernel.NewUUID(), validParams(), 5, false)
		require.NoError(t, err)

		assert.Equal(t, 5, code.UsageCount())
		assert.False(t, code.IsActive())
	})

	t.Run("rejects_negative_usage_count", func(t *testing.T) {
		_, err := discount.RestoreCode(kernel.NewUUID(), validParams(), -1, true)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}
