package forge

import (
	"context"
	"strconv"

	"github.com/gagliardetto/solana-go"
	"github.com/gagliardetto/solana-go/rpc"
)

// TokenBalance reads the owner's associated-account balance for a mint
// in raw base units.
func TokenBalance(ctx context.Context, client *rpc.Client, owner, mint solana.PublicKey, standard TokenStandard) (uint64, error) {
	ata, err := DeriveAssociatedAddress(owner, mint, standard)
	if err != nil {
		return 0, err
	}

	result, err := client.GetTokenAccountBalance(ctx, ata, rpc.CommitmentConfirmed)
	if err != nil {
		return 0, err
	}
	return strconv.ParseUint(result.Value.Amount, 10, 64)
}

// SolBalance reads the wallet's native balance in lamports.
func SolBalance(ctx context.Context, client *rpc.Client, owner solana.PublicKey) (uint64, error) {
	result, err := client.GetBalance(ctx, owner, rpc.CommitmentConfirmed)
	if err != nil {
		return 0, err
	}
	return result.Value, nil
}
