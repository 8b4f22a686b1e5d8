// Package testUtils holds fake collaborators shared by the SDK tests.
package testUtils

import (
	"context"

	"github.com/gagliardetto/solana-go"

	"dlmmSniperSDK/types"
)

// FakeKeyGenerator hands out pre-seeded identities in order, then
// falls back to fresh wallet keys. A non-nil Err fails every call.
type FakeKeyGenerator struct {
	Identities []solana.PublicKey
	Err        error
	calls      int
}

func (g *FakeKeyGenerator) NewIdentity() (solana.PublicKey, error) {
	if g.Err != nil {
		return solana.PublicKey{}, g.Err
	}
	if g.calls < len(g.Identities) {
		pk := g.Identities[g.calls]
		g.calls++
		return pk, nil
	}
	g.calls++
	return solana.NewWallet().PublicKey(), nil
}

// CollectingSink records accepted requests in memory. A non-nil Err
// rejects every request.
type CollectingSink struct {
	Requests []types.CreationRequest
	Err      error
}

func (s *CollectingSink) Accept(_ context.Context, req types.CreationRequest) error {
	if s.Err != nil {
		return s.Err
	}
	s.Requests = append(s.Requests, req)
	return nil
}

// BlockingSink parks in Accept until released, for exercising the
// single-flight submission guard.
type BlockingSink struct {
	Entered chan struct{}
	Release chan struct{}
}

func NewBlockingSink() *BlockingSink {
	return &BlockingSink{
		Entered: make(chan struct{}),
		Release: make(chan struct{}),
	}
}

func (s *BlockingSink) Accept(ctx context.Context, _ types.CreationRequest) error {
	close(s.Entered)
	select {
	case <-s.Release:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
