package dlmmsnipersdk

import (
	"sync"

	"github.com/shopspring/decimal"

	"dlmmSniperSDK/constants"
	"dlmmSniperSDK/helpers"
	"dlmmSniperSDK/maths"
	"dlmmSniperSDK/types"
)

// Sniper owns one pool+position configuration session. Every edit goes
// through its methods, and the derived view is recomputed before each
// method returns, so a snapshot never disagrees with the specs it was
// derived from.
//
// Market price and wallet balance arrive from async collaborators
// through SetMarketPrice/SetWalletBalance; they only touch advisory
// derived fields and never mutate the specs themselves.
type Sniper struct {
	mu       sync.Mutex
	pool     types.PoolSpec
	position types.PositionSpec
	derived  types.DerivedView

	// rangeSeeded marks that the one-shot ±10% range derivation fired.
	rangeSeeded   bool
	submitting    bool
	lastSubmitErr error

	marketPrice   *decimal.Decimal
	walletBalance *decimal.Decimal
}

func NewSniper() *Sniper {
	s := &Sniper{}
	s.resetLocked()
	return s
}

// Snapshot returns a read-only copy of the session for rendering.
func (s *Sniper) Snapshot() types.Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return types.Snapshot{
		Pool:            s.pool,
		Position:        s.position,
		Derived:         s.derived,
		Submitting:      s.submitting,
		LastSubmitError: s.lastSubmitErr,
	}
}

func (s *Sniper) SetQuoteToken(q types.QuoteToken) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.pool.QuoteToken = q
	s.recomputeLocked()
}

func (s *Sniper) SetBaseToken(mintAddress string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.pool.BaseToken = mintAddress
	s.recomputeLocked()
}

func (s *Sniper) SetBaseFee(bps int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.pool.BaseFeeBps = &bps
	s.recomputeLocked()
}

func (s *Sniper) SetBinStep(bps int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.pool.BinStepBps = &bps
	s.recomputeLocked()
}

// SetInitialPrice sets the pool's initial price. The first time the
// price turns positive while the range is still untouched, min/max are
// derived at ±10% around it; after that the range is only changed by
// explicit edits, presets, or ResetPriceRange.
func (s *Sniper) SetInitialPrice(p decimal.Decimal) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.setInitialPriceLocked(p)
	s.recomputeLocked()
}

// ApplyMarketPrice copies the advisory market price into the initial
// price. Reports false when no market price is available.
func (s *Sniper) ApplyMarketPrice() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.marketPrice == nil {
		return false
	}
	s.setInitialPriceLocked(*s.marketPrice)
	s.recomputeLocked()
	return true
}

func (s *Sniper) setInitialPriceLocked(p decimal.Decimal) {
	s.pool.InitialPrice = p
	if !s.rangeSeeded && p.Sign() > 0 &&
		s.position.MinPrice.Sign() == 0 && s.position.MaxPrice.Sign() == 0 {
		s.seedRangeLocked()
		s.rangeSeeded = true
	}
}

// SetMinPrice is a direct range edit. It accepts any non-negative
// value without clamping against the other bound; validation reports
// min>max instead. Direct edits detach the position from its preset.
func (s *Sniper) SetMinPrice(v decimal.Decimal) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.position.MinPrice = v
	s.position.PresetID = nil
	s.recomputeLocked()
}

func (s *Sniper) SetMaxPrice(v decimal.Decimal) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.position.MaxPrice = v
	s.position.PresetID = nil
	s.recomputeLocked()
}

// SetDepositAmount edits the deposit directly. If the amount no longer
// matches the selected fixed option, the option falls back to CUSTOM;
// while already on CUSTOM the option is left untouched.
func (s *Sniper) SetDepositAmount(v decimal.Decimal) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.position.DepositAmount = v
	if fixed, ok := s.position.DepositOption.Amount(); ok && !fixed.Equal(v) {
		s.position.DepositOption = types.DepositCustom
	}
	s.recomputeLocked()
}

// SetDepositOption selects a deposit option. Fixed options overwrite
// the deposit amount with their value; CUSTOM leaves the amount for
// direct edit.
func (s *Sniper) SetDepositOption(opt types.DepositOption) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.position.DepositOption = opt
	if amt, ok := opt.Amount(); ok {
		s.position.DepositAmount = amt
	}
	s.recomputeLocked()
}

// ApplyPreset atomically applies a catalog preset: price range from
// the preset's percentages around the initial price, deposit amount,
// and the matching deposit option. Reports false, leaving the state
// unchanged, when the preset is unknown or the initial price is not
// set yet.
func (s *Sniper) ApplyPreset(id int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	preset, ok := constants.PresetByID(id)
	if !ok || s.pool.InitialPrice.Sign() <= 0 {
		return false
	}

	one := decimal.NewFromInt(1)
	hundred := decimal.NewFromInt(100)
	s.position.MinPrice = s.pool.InitialPrice.Mul(one.Sub(preset.LowerPercentage.Div(hundred)))
	s.position.MaxPrice = s.pool.InitialPrice.Mul(one.Add(preset.UpperPercentage.Div(hundred)))
	s.position.DepositAmount = preset.DepositAmount
	s.position.DepositOption = helpers.MatchDepositOption(preset.DepositAmount)
	presetID := preset.ID
	s.position.PresetID = &presetID

	s.recomputeLocked()
	return true
}

// ResetPriceRange recomputes min/max at ±10% of the current initial
// price. Unlike the first automatic derivation it can be used any
// number of times, and it does not touch the deposit fields.
func (s *Sniper) ResetPriceRange() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.seedRangeLocked()
	s.position.PresetID = nil
	s.recomputeLocked()
}

// Reset discards the session back to its defaults.
func (s *Sniper) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.resetLocked()
}

// SetMarketPrice merges a price oracle result into the advisory view.
// ok=false marks the oracle unavailable. Idempotent and independent of
// the configuration edits.
func (s *Sniper) SetMarketPrice(p decimal.Decimal, ok bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if ok {
		price := p
		s.marketPrice = &price
	} else {
		s.marketPrice = nil
	}
	s.recomputeLocked()
}

// SetWalletBalance merges a balance source result into the advisory
// view. The balance only drives the insufficient-balance warning; it
// never blocks editing or submission.
func (s *Sniper) SetWalletBalance(b decimal.Decimal, ok bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if ok {
		balance := b
		s.walletBalance = &balance
	} else {
		s.walletBalance = nil
	}
	s.recomputeLocked()
}

func (s *Sniper) seedRangeLocked() {
	pct := decimal.New(constants.DefaultRangePercentage, -2)
	one := decimal.NewFromInt(1)
	s.position.MinPrice = s.pool.InitialPrice.Mul(one.Sub(pct))
	s.position.MaxPrice = s.pool.InitialPrice.Mul(one.Add(pct))
}

func (s *Sniper) resetLocked() {
	s.pool = types.PoolSpec{QuoteToken: types.QuoteSOL}
	s.position = types.PositionSpec{DepositOption: types.DepositCustom}
	s.rangeSeeded = false
	s.marketPrice = nil
	s.walletBalance = nil
	s.lastSubmitErr = nil
	s.recomputeLocked()
}

func (s *Sniper) recomputeLocked() {
	binStep := 0
	if s.pool.BinStepBps != nil {
		binStep = *s.pool.BinStepBps
	}

	d := types.DerivedView{
		NumberOfBins:      maths.NumberOfBins(s.position.MinPrice, s.position.MaxPrice, binStep),
		MinPriceOffsetPct: offsetPct(s.position.MinPrice, s.pool.InitialPrice, -constants.DefaultRangePercentage),
		MaxPriceOffsetPct: offsetPct(s.position.MaxPrice, s.pool.InitialPrice, constants.DefaultRangePercentage),
		PoolValid: s.pool.BaseToken != "" &&
			s.pool.BinStepBps != nil &&
			s.pool.InitialPrice.Sign() > 0,
		PositionValid: s.position.MinPrice.Sign() > 0 &&
			s.position.MaxPrice.Sign() > 0 &&
			!s.position.MinPrice.GreaterThan(s.position.MaxPrice),
		MarketPrice:   s.marketPrice,
		WalletBalance: s.walletBalance,
	}
	if s.walletBalance != nil {
		d.InsufficientBalance = s.position.DepositAmount.GreaterThan(*s.walletBalance)
	}
	s.derived = d
}

// offsetPct is the signed percentage distance of price from the
// initial price. Before the pool has a price there is nothing to
// measure against, so a fixed placeholder is reported instead.
func offsetPct(price, initial decimal.Decimal, placeholder int64) decimal.Decimal {
	if initial.Sign() <= 0 {
		return decimal.NewFromInt(placeholder)
	}
	return price.Sub(initial).DivRound(initial, 8).Mul(decimal.NewFromInt(100))
}

// beginSubmit claims the single submission slot for this session.
func (s *Sniper) beginSubmit() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.submitting {
		return false
	}
	s.submitting = true
	return true
}

// finishSubmit releases the submission slot. A successful submission
// discards the session; a failed one keeps it for correction.
func (s *Sniper) finishSubmit(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.submitting = false
	if err == nil {
		s.resetLocked()
		return
	}
	s.lastSubmitErr = err
}
