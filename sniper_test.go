package dlmmsnipersdk_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	dlmmsnipersdk "dlmmSniperSDK"
	"dlmmSniperSDK/types"
)

const testMint = "So11111111111111111111111111111111111111112"

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func TestInitialPriceSeedsRangeOnce(t *testing.T) {
	s := dlmmsnipersdk.NewSniper()
	s.SetBinStep(25)
	s.SetInitialPrice(decimal.NewFromInt(100))

	snap := s.Snapshot()
	assert.True(t, snap.Position.MinPrice.Equal(decimal.NewFromInt(90)),
		"min price %s", snap.Position.MinPrice)
	assert.True(t, snap.Position.MaxPrice.Equal(decimal.NewFromInt(110)),
		"max price %s", snap.Position.MaxPrice)
	assert.Equal(t, int64(82), snap.Derived.NumberOfBins)

	// A later price edit must not re-derive the range.
	s.SetInitialPrice(decimal.NewFromInt(200))
	snap = s.Snapshot()
	assert.True(t, snap.Position.MinPrice.Equal(decimal.NewFromInt(90)))
	assert.True(t, snap.Position.MaxPrice.Equal(decimal.NewFromInt(110)))
}

func TestOffsetsUsePlaceholderBeforePrice(t *testing.T) {
	s := dlmmsnipersdk.NewSniper()
	snap := s.Snapshot()
	assert.True(t, snap.Derived.MinPriceOffsetPct.Equal(decimal.NewFromInt(-10)))
	assert.True(t, snap.Derived.MaxPriceOffsetPct.Equal(decimal.NewFromInt(10)))
}

func TestOffsetsTrackRangeEdits(t *testing.T) {
	s := dlmmsnipersdk.NewSniper()
	s.SetInitialPrice(decimal.NewFromInt(100))
	s.SetMinPrice(decimal.NewFromInt(80))
	s.SetMaxPrice(decimal.NewFromInt(125))

	snap := s.Snapshot()
	assert.True(t, snap.Derived.MinPriceOffsetPct.Equal(decimal.NewFromInt(-20)),
		"min offset %s", snap.Derived.MinPriceOffsetPct)
	assert.True(t, snap.Derived.MaxPriceOffsetPct.Equal(decimal.NewFromInt(25)),
		"max offset %s", snap.Derived.MaxPriceOffsetPct)
}

func TestApplyPreset(t *testing.T) {
	t.Run("no-op without an initial price", func(t *testing.T) {
		s := dlmmsnipersdk.NewSniper()
		assert.False(t, s.ApplyPreset(4))

		snap := s.Snapshot()
		assert.Nil(t, snap.Position.PresetID)
		assert.True(t, snap.Position.MinPrice.IsZero())
		assert.True(t, snap.Position.MaxPrice.IsZero())
	})

	t.Run("unknown preset is rejected", func(t *testing.T) {
		s := dlmmsnipersdk.NewSniper()
		s.SetInitialPrice(decimal.NewFromInt(100))
		assert.False(t, s.ApplyPreset(99))
	})

	t.Run("asymmetric preset with an off-catalog deposit", func(t *testing.T) {
		// Preset 4: -5%/+15%, deposit 2. At price 50 that is
		// 47.5..57.5, and 2 is not a fixed deposit option.
		s := dlmmsnipersdk.NewSniper()
		s.SetInitialPrice(decimal.NewFromInt(50))
		require.True(t, s.ApplyPreset(4))

		snap := s.Snapshot()
		assert.True(t, snap.Position.MinPrice.Equal(dec("47.5")), "min %s", snap.Position.MinPrice)
		assert.True(t, snap.Position.MaxPrice.Equal(dec("57.5")), "max %s", snap.Position.MaxPrice)
		assert.True(t, snap.Position.DepositAmount.Equal(decimal.NewFromInt(2)))
		assert.Equal(t, types.DepositCustom, snap.Position.DepositOption)
		require.NotNil(t, snap.Position.PresetID)
		assert.Equal(t, 4, *snap.Position.PresetID)
	})

	t.Run("preset with a fixed-option deposit selects the option", func(t *testing.T) {
		// Preset 2: ±10%, deposit 1, which is the fixed "1" option.
		s := dlmmsnipersdk.NewSniper()
		s.SetInitialPrice(decimal.NewFromInt(100))
		require.True(t, s.ApplyPreset(2))
		assert.Equal(t, types.DepositOneSOL, s.Snapshot().Position.DepositOption)
	})

	t.Run("idempotent under an unchanged initial price", func(t *testing.T) {
		s := dlmmsnipersdk.NewSniper()
		s.SetInitialPrice(decimal.NewFromInt(50))
		require.True(t, s.ApplyPreset(4))
		first := s.Snapshot()
		require.True(t, s.ApplyPreset(4))
		second := s.Snapshot()

		assert.True(t, first.Position.MinPrice.Equal(second.Position.MinPrice))
		assert.True(t, first.Position.MaxPrice.Equal(second.Position.MaxPrice))
		assert.True(t, first.Position.DepositAmount.Equal(second.Position.DepositAmount))
		assert.Equal(t, first.Position.DepositOption, second.Position.DepositOption)
	})
}

func TestDepositOptionRoundTrip(t *testing.T) {
	s := dlmmsnipersdk.NewSniper()

	s.SetDepositOption(types.DepositOneSOL)
	snap := s.Snapshot()
	assert.True(t, snap.Position.DepositAmount.Equal(decimal.NewFromInt(1)))

	s.SetDepositOption(types.DepositCustom)
	s.SetDepositAmount(decimal.NewFromInt(3))
	snap = s.Snapshot()
	assert.Equal(t, types.DepositCustom, snap.Position.DepositOption)
	assert.True(t, snap.Position.DepositAmount.Equal(decimal.NewFromInt(3)))

	// Editing the amount away from a fixed option's value detaches it.
	s.SetDepositOption(types.DepositFiveSOL)
	s.SetDepositAmount(decimal.NewFromInt(4))
	assert.Equal(t, types.DepositCustom, s.Snapshot().Position.DepositOption)
}

func TestManualRangeEditsDetachPreset(t *testing.T) {
	s := dlmmsnipersdk.NewSniper()
	s.SetInitialPrice(decimal.NewFromInt(100))
	require.True(t, s.ApplyPreset(2))
	require.NotNil(t, s.Snapshot().Position.PresetID)

	s.SetMinPrice(decimal.NewFromInt(85))
	assert.Nil(t, s.Snapshot().Position.PresetID)
}

func TestResetPriceRange(t *testing.T) {
	s := dlmmsnipersdk.NewSniper()
	s.SetInitialPrice(decimal.NewFromInt(100))
	s.SetMinPrice(decimal.NewFromInt(5))
	s.SetMaxPrice(decimal.NewFromInt(500))
	s.SetDepositAmount(decimal.NewFromInt(7))

	s.ResetPriceRange()
	snap := s.Snapshot()
	assert.True(t, snap.Position.MinPrice.Equal(decimal.NewFromInt(90)))
	assert.True(t, snap.Position.MaxPrice.Equal(decimal.NewFromInt(110)))
	assert.True(t, snap.Position.DepositAmount.Equal(decimal.NewFromInt(7)),
		"deposit fields must not be touched")
}

func TestValiditySignals(t *testing.T) {
	s := dlmmsnipersdk.NewSniper()
	snap := s.Snapshot()
	assert.False(t, snap.Derived.PoolValid)
	assert.False(t, snap.Derived.PositionValid)

	s.SetBaseToken(testMint)
	s.SetBinStep(25)
	s.SetInitialPrice(decimal.NewFromInt(100))
	snap = s.Snapshot()
	assert.True(t, snap.Derived.PoolValid)
	assert.True(t, snap.Derived.PositionValid)

	// Empty base token invalidates the pool regardless of the rest.
	s.SetBaseToken("")
	assert.False(t, s.Snapshot().Derived.PoolValid)

	// Inverted range invalidates the position.
	s.SetMinPrice(decimal.NewFromInt(10))
	s.SetMaxPrice(decimal.NewFromInt(5))
	assert.False(t, s.Snapshot().Derived.PositionValid)
}

func TestAdvisoryMerges(t *testing.T) {
	s := dlmmsnipersdk.NewSniper()

	s.SetMarketPrice(dec("0.0025"), true)
	require.True(t, s.ApplyMarketPrice())
	assert.True(t, s.Snapshot().Pool.InitialPrice.Equal(dec("0.0025")))

	s.SetMarketPrice(decimal.Zero, false)
	assert.False(t, s.ApplyMarketPrice(), "unavailable price must not apply")

	s.SetDepositAmount(decimal.NewFromInt(5))
	s.SetWalletBalance(decimal.NewFromInt(2), true)
	assert.True(t, s.Snapshot().Derived.InsufficientBalance)

	s.SetWalletBalance(decimal.Zero, false)
	snap := s.Snapshot()
	assert.Nil(t, snap.Derived.WalletBalance)
	assert.False(t, snap.Derived.InsufficientBalance)
}

func TestReset(t *testing.T) {
	s := dlmmsnipersdk.NewSniper()
	s.SetBaseToken(testMint)
	s.SetBinStep(25)
	s.SetInitialPrice(decimal.NewFromInt(100))

	s.Reset()
	snap := s.Snapshot()
	assert.Equal(t, types.QuoteSOL, snap.Pool.QuoteToken)
	assert.Empty(t, snap.Pool.BaseToken)
	assert.Nil(t, snap.Pool.BinStepBps)
	assert.True(t, snap.Pool.InitialPrice.IsZero())
	assert.True(t, snap.Position.MinPrice.IsZero())

	// The one-shot range derivation is armed again after a reset.
	s.SetInitialPrice(decimal.NewFromInt(40))
	snap = s.Snapshot()
	assert.True(t, snap.Position.MinPrice.Equal(decimal.NewFromInt(36)))
	assert.True(t, snap.Position.MaxPrice.Equal(decimal.NewFromInt(44)))
}
