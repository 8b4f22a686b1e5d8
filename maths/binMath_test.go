package maths_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dlmmSniperSDK/maths"
	"dlmmSniperSDK/types"
)

func TestBinIdFromPrice(t *testing.T) {
	t.Run("price 1 is bin 0 for every step", func(t *testing.T) {
		for _, step := range []int{1, 5, 25, 100, 400} {
			down, err := maths.BinIdFromPrice(decimal.NewFromInt(1), step, types.RoundingDown)
			require.NoError(t, err)
			up, err := maths.BinIdFromPrice(decimal.NewFromInt(1), step, types.RoundingUp)
			require.NoError(t, err)
			assert.Equal(t, int64(0), down, "step %d", step)
			assert.Equal(t, int64(0), up, "step %d", step)
		}
	})

	t.Run("non-positive price maps to bin 0", func(t *testing.T) {
		id, err := maths.BinIdFromPrice(decimal.Zero, 25, types.RoundingDown)
		require.NoError(t, err)
		assert.Equal(t, int64(0), id)

		id, err = maths.BinIdFromPrice(decimal.NewFromInt(-3), 25, types.RoundingUp)
		require.NoError(t, err)
		assert.Equal(t, int64(0), id)
	})

	t.Run("non-positive bin step is a contract violation", func(t *testing.T) {
		_, err := maths.BinIdFromPrice(decimal.NewFromInt(100), 0, types.RoundingDown)
		assert.Error(t, err)

		_, err = maths.BinIdFromPrice(decimal.NewFromInt(100), -25, types.RoundingUp)
		assert.Error(t, err)
	})

	t.Run("rounding direction", func(t *testing.T) {
		// ln(100)/ln(1.0025) ≈ 1844.0 and change, so the two
		// directions differ by exactly one bin.
		down, err := maths.BinIdFromPrice(decimal.NewFromInt(100), 25, types.RoundingDown)
		require.NoError(t, err)
		up, err := maths.BinIdFromPrice(decimal.NewFromInt(100), 25, types.RoundingUp)
		require.NoError(t, err)
		assert.Equal(t, down+1, up)
	})

	t.Run("prices below 1 have negative bin ids", func(t *testing.T) {
		id, err := maths.BinIdFromPrice(decimal.RequireFromString("0.5"), 25, types.RoundingDown)
		require.NoError(t, err)
		assert.Negative(t, id)
	})
}

func TestNumberOfBins(t *testing.T) {
	t.Run("90 to 110 at 25 bps", func(t *testing.T) {
		// ceil(ln(110)/ln(1.0025)) - floor(ln(90)/ln(1.0025)) + 1
		// = 1883 - 1802 + 1
		n := maths.NumberOfBins(decimal.NewFromInt(90), decimal.NewFromInt(110), 25)
		assert.Equal(t, int64(82), n)
	})

	t.Run("degenerate inputs yield 0", func(t *testing.T) {
		n := maths.NumberOfBins(decimal.Zero, decimal.Zero, 25)
		assert.Equal(t, int64(0), n)

		n = maths.NumberOfBins(decimal.NewFromInt(90), decimal.NewFromInt(110), 0)
		assert.Equal(t, int64(0), n)

		n = maths.NumberOfBins(decimal.NewFromInt(110), decimal.NewFromInt(90), 25)
		assert.Equal(t, int64(0), n)

		n = maths.NumberOfBins(decimal.NewFromInt(90), decimal.NewFromInt(90), 25)
		assert.Equal(t, int64(0), n)
	})

	t.Run("at least one bin once the range is real", func(t *testing.T) {
		n := maths.NumberOfBins(
			decimal.RequireFromString("99.999"),
			decimal.RequireFromString("100.001"),
			25,
		)
		assert.GreaterOrEqual(t, n, int64(1))
	})

	t.Run("monotonic in the max price", func(t *testing.T) {
		min := decimal.NewFromInt(90)
		prev := int64(0)
		for _, max := range []string{"95", "100", "110", "150", "300"} {
			n := maths.NumberOfBins(min, decimal.RequireFromString(max), 25)
			assert.GreaterOrEqual(t, n, prev, "max %s", max)
			prev = n
		}
	})

	t.Run("monotonic as the min price decreases", func(t *testing.T) {
		max := decimal.NewFromInt(110)
		prev := int64(0)
		for _, min := range []string{"105", "100", "90", "50", "10"} {
			n := maths.NumberOfBins(decimal.RequireFromString(min), max, 25)
			assert.GreaterOrEqual(t, n, prev, "min %s", min)
			prev = n
		}
	})

	t.Run("stable under bin-step-aligned scaling", func(t *testing.T) {
		base := decimal.NewFromInt(1).Add(
			decimal.RequireFromString("0.0025"),
		)
		factor, err := base.PowInt32(10)
		require.NoError(t, err)

		min, max := decimal.NewFromInt(90), decimal.NewFromInt(110)
		n1 := maths.NumberOfBins(min, max, 25)
		n2 := maths.NumberOfBins(min.Mul(factor), max.Mul(factor), 25)
		assert.InDelta(t, float64(n1), float64(n2), 1, "rounding tolerance at bin boundaries")
	})
}
