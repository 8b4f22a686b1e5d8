package helpers

import (
	"dlmmSniperSDK/constants"
	"dlmmSniperSDK/types"
)

// ValidatePool checks the independent field constraints of a pool spec
// and returns one error per offending field. An empty result does not
// mean the pool is complete; completeness is the state machine's
// PoolValid signal.
func ValidatePool(pool types.PoolSpec) []types.FieldError {
	var errs []types.FieldError

	if pool.BaseToken == "" {
		errs = append(errs, types.FieldError{
			Path:    "pool.baseToken",
			Message: "Base token is required",
		})
	} else if !IsValidMintAddress(pool.BaseToken) {
		errs = append(errs, types.FieldError{
			Path:    "pool.baseToken",
			Message: "Base token must be a valid mint address",
		})
	}

	if pool.BaseFeeBps != nil && !constants.IsBaseFeeOption(*pool.BaseFeeBps) {
		errs = append(errs, types.FieldError{
			Path:    "pool.baseFee",
			Message: "Base fee is not a supported option",
		})
	}

	if pool.BinStepBps == nil {
		errs = append(errs, types.FieldError{
			Path:    "pool.binStep",
			Message: "Bin step is required",
		})
	} else if !constants.IsBinStepOption(*pool.BinStepBps) {
		errs = append(errs, types.FieldError{
			Path:    "pool.binStep",
			Message: "Bin step is not a supported option",
		})
	}

	if pool.InitialPrice.Sign() < 0 {
		errs = append(errs, types.FieldError{
			Path:    "pool.initialPrice",
			Message: "Initial price must be positive",
		})
	}

	return errs
}

// ValidatePosition checks a position spec. A min price above the max
// price attaches an error to both fields so either input can surface
// the conflict.
func ValidatePosition(position types.PositionSpec) []types.FieldError {
	var errs []types.FieldError

	if position.PresetID != nil {
		if _, ok := constants.PresetByID(*position.PresetID); !ok {
			errs = append(errs, types.FieldError{
				Path:    "position.presetId",
				Message: "Unknown preset",
			})
		}
	}

	if position.DepositAmount.Sign() < 0 {
		errs = append(errs, types.FieldError{
			Path:    "position.depositAmount",
			Message: "Deposit amount must be positive",
		})
	}

	if position.MinPrice.Sign() < 0 {
		errs = append(errs, types.FieldError{
			Path:    "position.minPrice",
			Message: "Min price must be positive",
		})
	}
	if position.MaxPrice.Sign() < 0 {
		errs = append(errs, types.FieldError{
			Path:    "position.maxPrice",
			Message: "Max price must be positive",
		})
	}

	if position.MinPrice.GreaterThan(position.MaxPrice) {
		errs = append(errs,
			types.FieldError{
				Path:    "position.minPrice",
				Message: "Min price cannot be greater than max price",
			},
			types.FieldError{
				Path:    "position.maxPrice",
				Message: "Max price cannot be less than min price",
			},
		)
	}

	return errs
}

// ValidateConfig validates the whole configuration in one pass.
func ValidateConfig(pool types.PoolSpec, position types.PositionSpec) []types.FieldError {
	return append(ValidatePool(pool), ValidatePosition(position)...)
}
