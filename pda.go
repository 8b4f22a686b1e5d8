package dlmmsnipersdk

import "github.com/gagliardetto/solana-go"

// DLMMProgramID is Meteora's DLMM program.
var DLMMProgramID = solana.MustPublicKeyFromBase58("LBUZKhRxPF3XUpBCjp4YzTKgLccjZhTSDM9YuVaPwxo")

func DerivePositionAddress(positionNftMint solana.PublicKey) solana.PublicKey {
	pda, _, _ := solana.FindProgramAddress(
		[][]byte{
			[]byte("position"),
			positionNftMint.Bytes(),
		},
		DLMMProgramID,
	)
	return pda
}

func DerivePositionNftAccount(positionNftMint solana.PublicKey) solana.PublicKey {
	pda, _, _ := solana.FindProgramAddress(
		[][]byte{
			[]byte("position_nft_account"),
			positionNftMint.Bytes(),
		},
		DLMMProgramID,
	)
	return pda
}
