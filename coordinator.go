package dlmmsnipersdk

import (
	"context"
	"fmt"
	"time"

	"github.com/gagliardetto/solana-go"
	"github.com/gagliardetto/solana-go/rpc"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"

	"dlmmSniperSDK/helpers"
	"dlmmSniperSDK/maths"
	"dlmmSniperSDK/types"
)

// TokenLookup resolves base token metadata by mint address. Repeated
// calls with the same mint must be side-effect free beyond caching.
type TokenLookup interface {
	Resolve(ctx context.Context, mintAddress string) (types.TokenInfo, error)
}

// PriceOracle quotes the base token in units of the quote token.
type PriceOracle interface {
	Quote(ctx context.Context, baseMint string, quote types.QuoteToken) (decimal.Decimal, error)
}

// BalanceSource reports a wallet's quote-token balance. Advisory only:
// it feeds the insufficient-balance warning and never blocks a submit.
type BalanceSource interface {
	BalanceOf(ctx context.Context, account solana.PublicKey) (decimal.Decimal, error)
}

// KeyGenerator mints fresh identities for the pool and the position
// NFT. Generation must be free of external side effects so an
// abandoned submission needs no compensation.
type KeyGenerator interface {
	NewIdentity() (solana.PublicKey, error)
}

// RequestSink receives the final creation request.
type RequestSink interface {
	Accept(ctx context.Context, req types.CreationRequest) error
}

// ErrSubmissionInFlight is returned when a submit is requested while a
// previous one has not finished.
var ErrSubmissionInFlight = errors.New("submission already in flight")

// ValidationFailedError aggregates the field errors that block a
// submission. Recoverable: the user corrects the fields and retries.
type ValidationFailedError struct {
	Errors []types.FieldError
}

func (e *ValidationFailedError) Error() string {
	return fmt.Sprintf("validation failed with %d field error(s)", len(e.Errors))
}

// GenerationFailedError wraps a key generator failure.
type GenerationFailedError struct {
	Err error
}

func (e *GenerationFailedError) Error() string {
	return "identity generation failed: " + e.Err.Error()
}

func (e *GenerationFailedError) Unwrap() error { return e.Err }

// SinkRejectedError wraps a request sink failure.
type SinkRejectedError struct {
	Err error
}

func (e *SinkRejectedError) Error() string {
	return "creation request rejected: " + e.Err.Error()
}

func (e *SinkRejectedError) Unwrap() error { return e.Err }

// WalletKeyGenerator mints throwaway ed25519 wallet keypairs.
type WalletKeyGenerator struct{}

func (WalletKeyGenerator) NewIdentity() (solana.PublicKey, error) {
	return solana.NewWallet().PublicKey(), nil
}

// RPCBalanceSource reads SOL balances over a Solana RPC connection.
type RPCBalanceSource struct {
	Conn *rpc.Client
}

func (b RPCBalanceSource) BalanceOf(ctx context.Context, account solana.PublicKey) (decimal.Decimal, error) {
	return helpers.WalletBalance(ctx, b.Conn, account)
}

// Coordinator turns a ready configuration session into a creation
// request: re-validate, generate identities, compute the bin count,
// assemble, and hand off to the sink. Nothing before the sink call has
// external side effects, so a failed attempt leaves no partial state.
type Coordinator struct {
	keys KeyGenerator
	sink RequestSink
	log  *logrus.Entry
}

func NewCoordinator(keys KeyGenerator, sink RequestSink, log *logrus.Entry) *Coordinator {
	if log == nil {
		log = logrus.NewEntry(logrus.StandardLogger())
	}
	return &Coordinator{keys: keys, sink: sink, log: log}
}

// Submit runs the submission pipeline against the sniper's current
// snapshot. At most one submission per session may be in flight; a
// concurrent call fails fast with ErrSubmissionInFlight. On success
// the session is discarded; on failure it is kept for correction and
// the error is recorded in the snapshot.
func (c *Coordinator) Submit(ctx context.Context, s *Sniper) (*types.CreationRequest, error) {
	if !s.beginSubmit() {
		return nil, ErrSubmissionInFlight
	}
	req, err := c.submit(ctx, s.Snapshot())
	s.finishSubmit(err)
	return req, err
}

func (c *Coordinator) submit(ctx context.Context, snap types.Snapshot) (*types.CreationRequest, error) {
	if errs := helpers.ValidateConfig(snap.Pool, snap.Position); len(errs) > 0 {
		// Before the session is ready only the first blocking reason
		// is surfaced; a ready session gets the full list for batch
		// display.
		if !snap.Derived.PoolValid || !snap.Derived.PositionValid {
			errs = errs[:1]
		}
		return nil, &ValidationFailedError{Errors: errs}
	}
	// Stricter gate than field validation: the form tolerates zero
	// prices while it is being filled in, a submission does not.
	if errs := requiredFieldErrors(snap); len(errs) > 0 {
		return nil, &ValidationFailedError{Errors: errs}
	}

	poolAddress, err := c.keys.NewIdentity()
	if err != nil {
		return nil, &GenerationFailedError{Err: err}
	}
	positionNftMint, err := c.keys.NewIdentity()
	if err != nil {
		return nil, &GenerationFailedError{Err: err}
	}

	binStep := *snap.Pool.BinStepBps
	req := &types.CreationRequest{
		PoolAddress:     poolAddress,
		PositionAddress: DerivePositionAddress(positionNftMint),
		PositionNftMint: positionNftMint,
		BaseToken:       snap.Pool.BaseToken,
		QuoteToken:      snap.Pool.QuoteToken,
		BinStepBps:      binStep,
		InitialPrice:    snap.Pool.InitialPrice,
		MinPrice:        snap.Position.MinPrice,
		MaxPrice:        snap.Position.MaxPrice,
		DepositAmount:   snap.Position.DepositAmount,
		NumberOfBins:    maths.NumberOfBins(snap.Position.MinPrice, snap.Position.MaxPrice, binStep),
		CreatedAt:       time.Now().UTC(),
	}
	if snap.Pool.BaseFeeBps != nil {
		req.BaseFeeBps = *snap.Pool.BaseFeeBps
	}

	if err := c.sink.Accept(ctx, *req); err != nil {
		return nil, &SinkRejectedError{Err: err}
	}

	c.log.WithFields(logrus.Fields{
		"pool":     req.PoolAddress.String(),
		"position": req.PositionAddress.String(),
		"bins":     req.NumberOfBins,
	}).Info("creation request accepted")

	return req, nil
}

func requiredFieldErrors(snap types.Snapshot) []types.FieldError {
	var errs []types.FieldError
	if snap.Pool.BaseToken == "" {
		errs = append(errs, types.FieldError{Path: "pool.baseToken", Message: "Base token is required"})
	}
	if snap.Pool.BinStepBps == nil {
		errs = append(errs, types.FieldError{Path: "pool.binStep", Message: "Bin step is required"})
	}
	if snap.Pool.InitialPrice.Sign() <= 0 {
		errs = append(errs, types.FieldError{Path: "pool.initialPrice", Message: "Initial price must be set"})
	}
	if snap.Position.MinPrice.Sign() <= 0 {
		errs = append(errs, types.FieldError{Path: "position.minPrice", Message: "Min price must be set"})
	}
	if snap.Position.MaxPrice.Sign() <= 0 {
		errs = append(errs, types.FieldError{Path: "position.maxPrice", Message: "Max price must be set"})
	}
	return errs
}
