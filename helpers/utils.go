package helpers

import (
	"regexp"

	"github.com/shopspring/decimal"

	"dlmmSniperSDK/constants"
	"dlmmSniperSDK/types"
)

// Solana addresses are base58 encoded, typically 32-44 characters.
var mintAddressPattern = regexp.MustCompile(`^[1-9A-HJ-NP-Za-km-z]{32,44}$`)

// IsValidMintAddress reports whether s has the shape of a base58
// Solana mint address.
func IsValidMintAddress(s string) bool {
	return mintAddressPattern.MatchString(s)
}

// MatchDepositOption maps a deposit amount to the fixed option with
// the same value, falling back to DepositCustom.
func MatchDepositOption(amount decimal.Decimal) types.DepositOption {
	for _, opt := range constants.FixedDepositOptions {
		if v, ok := opt.Amount(); ok && v.Equal(amount) {
			return opt
		}
	}
	return types.DepositCustom
}
