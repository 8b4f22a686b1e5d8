package maths

import (
	"fmt"

	"github.com/shopspring/decimal"

	"dlmmSniperSDK/constants"
	"dlmmSniperSDK/types"
)

// lnPrecision is the number of decimal digits carried through the
// logarithm and division steps. Bin boundaries sit on exact powers of
// (1 + binStep/10000); float64 rounding can misclassify a price that
// lands on one, so everything stays in decimals at this precision.
const lnPrecision = 24

// BinIdFromPrice converts a price to its bin id on the grid anchored
// at price 1.
//
// binId = ln(price) / ln(1 + binStepBps/10000)
//
// The result is floored for RoundingDown and ceiled for RoundingUp.
// Prices at or below zero map to bin 0. A non-positive bin step is a
// caller contract violation and is reported as an error.
func BinIdFromPrice(price decimal.Decimal, binStepBps int, rounding types.Rounding) (int64, error) {
	if binStepBps <= 0 {
		return 0, fmt.Errorf("bin step must be positive, got %d", binStepBps)
	}
	if price.Sign() <= 0 {
		return 0, nil
	}

	base := decimal.NewFromInt(1).Add(
		decimal.NewFromInt(int64(binStepBps)).
			DivRound(decimal.NewFromInt(constants.BasisPointMax), lnPrecision),
	)

	lnPrice, err := price.Ln(lnPrecision)
	if err != nil {
		return 0, fmt.Errorf("ln(price): %w", err)
	}
	lnBase, err := base.Ln(lnPrecision)
	if err != nil {
		return 0, fmt.Errorf("ln(base): %w", err)
	}

	binId := lnPrice.DivRound(lnBase, lnPrecision)
	if rounding == types.RoundingUp {
		return binId.Ceil().IntPart(), nil
	}
	return binId.Floor().IntPart(), nil
}

// NumberOfBins reports how many bins the [minPrice, maxPrice] range
// spans: upperBinId - lowerBinId + 1, with the lower bound floored and
// the upper bound ceiled. Degenerate inputs (non-positive prices,
// min >= max, non-positive bin step) yield 0 so the caller always has
// a renderable value.
func NumberOfBins(minPrice, maxPrice decimal.Decimal, binStepBps int) int64 {
	if minPrice.Sign() <= 0 || maxPrice.Sign() <= 0 ||
		minPrice.GreaterThanOrEqual(maxPrice) || binStepBps <= 0 {
		return 0
	}

	lower, err := BinIdFromPrice(minPrice, binStepBps, types.RoundingDown)
	if err != nil {
		return 0
	}
	upper, err := BinIdFromPrice(maxPrice, binStepBps, types.RoundingUp)
	if err != nil {
		return 0
	}

	if n := upper - lower + 1; n > 0 {
		return n
	}
	return 0
}
