package types

import (
	"time"

	"github.com/gagliardetto/solana-go"
	"github.com/shopspring/decimal"
)

// PoolSpec is the user-editable description of the pool to create.
// BaseFeeBps and BinStepBps stay nil until an option is picked.
type PoolSpec struct {
	QuoteToken   QuoteToken
	BaseToken    string // mint address of the base token
	BaseFeeBps   *int
	BinStepBps   *int
	InitialPrice decimal.Decimal // base token priced in the quote token
}

// PositionSpec is the user-editable description of the initial
// liquidity position. A nil PresetID means a custom range.
type PositionSpec struct {
	PresetID      *int
	DepositAmount decimal.Decimal // quote-token units
	DepositOption DepositOption
	MinPrice      decimal.Decimal
	MaxPrice      decimal.Decimal
}

// Preset is a named range/deposit template applied relative to the
// current initial price.
type Preset struct {
	ID              int
	Code            string
	Name            string
	ShortName       string
	LowerPercentage decimal.Decimal
	UpperPercentage decimal.Decimal
	DepositAmount   decimal.Decimal
	QuickAccess     bool
}

// DerivedView holds everything recomputed from the specs. It is never
// mutated independently of its inputs.
type DerivedView struct {
	NumberOfBins      int64
	MinPriceOffsetPct decimal.Decimal
	MaxPriceOffsetPct decimal.Decimal
	PoolValid         bool
	PositionValid     bool

	// Advisory values merged from async collaborators. Nil means the
	// collaborator has not answered or reported itself unavailable.
	MarketPrice         *decimal.Decimal
	WalletBalance       *decimal.Decimal
	InsufficientBalance bool
}

// Snapshot is the read-only view a UI layer renders from.
type Snapshot struct {
	Pool            PoolSpec
	Position        PositionSpec
	Derived         DerivedView
	Submitting      bool
	LastSubmitError error
}

// FieldError attaches a user-correctable message to a spec field.
type FieldError struct {
	Path    string `json:"path"`
	Message string `json:"message"`
}

func (e FieldError) Error() string {
	return e.Path + ": " + e.Message
}

// TokenInfo is the resolved metadata of a base token mint.
type TokenInfo struct {
	Address  string `json:"address"`
	Symbol   string `json:"symbol"`
	Name     string `json:"name"`
	Decimals uint8  `json:"decimals"`
	LogoURI  string `json:"logoURI,omitempty"`
}

// CreationRequest is the final pool+position order handed to the
// request sink on a successful submission.
type CreationRequest struct {
	PoolAddress     solana.PublicKey `json:"poolAddress"`
	PositionAddress solana.PublicKey `json:"positionAddress"`
	PositionNftMint solana.PublicKey `json:"positionNftMint"`
	BaseToken       string           `json:"baseToken"`
	QuoteToken      QuoteToken       `json:"quoteToken"`
	BaseFeeBps      int              `json:"baseFeeBps,omitempty"`
	BinStepBps      int              `json:"binStepBps"`
	InitialPrice    decimal.Decimal  `json:"initialPrice"`
	MinPrice        decimal.Decimal  `json:"minPrice"`
	MaxPrice        decimal.Decimal  `json:"maxPrice"`
	DepositAmount   decimal.Decimal  `json:"depositAmount"`
	NumberOfBins    int64            `json:"numberOfBins"`
	CreatedAt       time.Time        `json:"createdAt"`
}
