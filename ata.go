package forge

import (
	"context"
	"fmt"

	"github.com/gagliardetto/solana-go"
)

// DeriveAssociatedAddress computes the unique token-holding account
// for (owner, mint, standard). Pure derivation; identical inputs
// always yield the identical address.
func DeriveAssociatedAddress(owner, mint solana.PublicKey, standard TokenStandard) (solana.PublicKey, error) {
	if standard == Classic {
		ata, _, err := solana.FindAssociatedTokenAddress(owner, mint)
		if err != nil {
			return solana.PublicKey{}, fmt.Errorf("associated address: %w", err)
		}
		return ata, nil
	}

	// Token-2022 uses the same ATA program with the token program as
	// the middle seed.
	ata, _, err := solana.FindProgramAddress(
		[][]byte{
			owner.Bytes(),
			solana.Token2022ProgramID.Bytes(),
			mint.Bytes(),
		},
		solana.SPLAssociatedTokenAccountProgramID,
	)
	if err != nil {
		return solana.PublicKey{}, fmt.Errorf("associated address: %w", err)
	}
	return ata, nil
}

// NeedsCreation reports whether the associated account must be created
// before it can receive tokens. Recreating an existing one fails the
// whole batch on chain, so this gates the create operation entirely.
func NeedsCreation(ctx context.Context, ledger Ledger, ata solana.PublicKey) (bool, error) {
	exists, err := ledger.AccountExists(ctx, ata)
	if err != nil {
		return false, fmt.Errorf("%w: account lookup: %v", ErrNetwork, err)
	}
	return !exists, nil
}
