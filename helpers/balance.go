package helpers

import (
	"context"

	"github.com/gagliardetto/solana-go"
	"github.com/gagliardetto/solana-go/rpc"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
)

// WalletBalance returns the SOL balance of owner in whole SOL.
func WalletBalance(ctx context.Context, conn *rpc.Client, owner solana.PublicKey) (decimal.Decimal, error) {
	out, err := conn.GetBalance(ctx, owner, rpc.CommitmentConfirmed)
	if err != nil {
		return decimal.Zero, errors.Wrapf(err, "get balance of %s", owner.String())
	}
	lamports := decimal.NewFromUint64(out.Value)
	return lamports.DivRound(decimal.NewFromInt(int64(solana.LAMPORTS_PER_SOL)), 9), nil
}
