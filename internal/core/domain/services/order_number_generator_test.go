package services_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"barbari/internal/core/domain/services"
	"barbari/internal/pkg/errs"
)

func TestOrderNumberGenerator(t *testing.T) {
	generator := services.NewOrderNumberGenerator()
	now := time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC)

	t.Run("should build date prefix in UTC", func(t *testing.T) {
		assert.Equal(t, "BB260315", generator.Prefix(now))

		tehran := time.FixedZone("IRST", int((3*time.Hour + 30*time.Minute).Seconds()))
		lateEvening := time.Date(2026, 3, 16, 2, 0, 0, 0, tehran)
		assert.Equal(t, "BB260315", generator.Prefix(lateEvening))
	})

	t.Run("should start at 0001 on a fresh day", func(t *testing.T) {
		number, err := generator.Next("", now)

		require.NoError(t, err)
		assert.Equal(t, "BB2603150001", number)
	})

	t.Run("should increment the last sequence", func(t *testing.T) {
		number, err := generator.Next("BB2603150041", now)

		require.NoError(t, err)
		assert.Equal(t, "BB2603150042", number)
	})

	t.Run("should produce lexicographically increasing numbers", func(t *testing.T) {
		last := ""
		for range 20 {
			number, err := generator.Next(last, now)
			require.NoError(t, err)
			assert.Greater(t, number, last)
			last = number
		}
	})

	t.Run("should reject last number from another day", func(t *testing.T) {
		_, err := generator.Next("BB2603140017", now)

		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("should reject malformed sequence suffix", func(t *testing.T) {
		_, err := generator.Next("BB260315XYZA", now)

		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}
