package constants

import (
	"slices"
	"time"

	"github.com/shopspring/decimal"

	"dlmmSniperSDK/types"
)

const (
	BasisPointMax = 10_000

	// DefaultRangePercentage seeds min/max price at ±10% of the initial
	// price when the range has never been touched.
	DefaultRangePercentage = 10

	JupiterLiteAPIBaseURL  = "https://lite-api.jup.ag"
	JupiterTokenSearchPath = "/tokens/v2/search"
	JupiterPricePath       = "/price/v3"

	TokenInfoTTL = 5 * time.Minute
	PriceTTL     = 30 * time.Second
)

var (
	// BaseFeeOptionsBps are the selectable base fee tiers.
	BaseFeeOptionsBps = []int{1, 2, 5, 10, 25, 50, 100, 200}

	// BinStepOptionsBps are the selectable bin widths.
	BinStepOptionsBps = []int{1, 2, 4, 5, 8, 10, 15, 20, 25, 50, 80, 100, 160, 200, 250, 400}

	// FixedDepositOptions are the deposit options that carry a fixed
	// amount; DepositCustom is always available on top of these.
	FixedDepositOptions = []types.DepositOption{
		types.DepositHalfSOL,
		types.DepositOneSOL,
		types.DepositFiveSOL,
	}

	QuoteTokenMints = map[types.QuoteToken]string{
		types.QuoteSOL:  "So11111111111111111111111111111111111111112",
		types.QuoteUSDC: "EPjFWdd5AufqSSqeM2qN1xzybapC8G4wEGGkZwyTDt1v",
	}
)

// Presets is the ordered, immutable range/deposit preset catalog.
// Seeded once here and never changed at runtime.
var Presets = []types.Preset{
	{
		ID:              1,
		Code:            "NARROW",
		Name:            "Narrow Range",
		ShortName:       "NRW",
		LowerPercentage: decimal.NewFromInt(5),
		UpperPercentage: decimal.NewFromInt(5),
		DepositAmount:   decimal.NewFromFloat(0.5),
		QuickAccess:     true,
	},
	{
		ID:              2,
		Code:            "BALANCED",
		Name:            "Balanced Range",
		ShortName:       "BAL",
		LowerPercentage: decimal.NewFromInt(10),
		UpperPercentage: decimal.NewFromInt(10),
		DepositAmount:   decimal.NewFromInt(1),
		QuickAccess:     true,
	},
	{
		ID:              3,
		Code:            "WIDE",
		Name:            "Wide Range",
		ShortName:       "WDE",
		LowerPercentage: decimal.NewFromInt(20),
		UpperPercentage: decimal.NewFromInt(20),
		DepositAmount:   decimal.NewFromInt(5),
		QuickAccess:     true,
	},
	{
		ID:              4,
		Code:            "BULLISH",
		Name:            "Bullish Skew",
		ShortName:       "BLL",
		LowerPercentage: decimal.NewFromInt(5),
		UpperPercentage: decimal.NewFromInt(15),
		DepositAmount:   decimal.NewFromInt(2),
	},
}

// PresetByID looks a preset up in the catalog.
func PresetByID(id int) (types.Preset, bool) {
	for _, p := range Presets {
		if p.ID == id {
			return p, true
		}
	}
	return types.Preset{}, false
}

func IsBaseFeeOption(bps int) bool {
	return slices.Contains(BaseFeeOptionsBps, bps)
}

func IsBinStepOption(bps int) bool {
	return slices.Contains(BinStepOptionsBps, bps)
}
