package types

import "github.com/shopspring/decimal"

// QuoteToken is the quote/denominator asset of a pool.
type QuoteToken string

const (
	QuoteSOL  QuoteToken = "SOL"
	QuoteUSDC QuoteToken = "USDC"
)

// DepositOption selects whether the deposit amount tracks one of the
// fixed catalog values or is free-form.
type DepositOption string

const (
	DepositHalfSOL DepositOption = "0.5"
	DepositOneSOL  DepositOption = "1"
	DepositFiveSOL DepositOption = "5"
	DepositCustom  DepositOption = "CUSTOM"
)

// Amount returns the fixed deposit amount the option represents.
// ok is false for DepositCustom.
func (d DepositOption) Amount() (decimal.Decimal, bool) {
	if d == DepositCustom {
		return decimal.Zero, false
	}
	v, err := decimal.NewFromString(string(d))
	if err != nil {
		return decimal.Zero, false
	}
	return v, true
}

type Rounding uint8

const (
	RoundingDown Rounding = iota
	RoundingUp
)
