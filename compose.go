package forge

import (
	"fmt"

	"github.com/gagliardetto/solana-go"
)

// Compose orders the operations into one atomic transaction anchored
// to a recent blockhash. The caller supplies the order; Compose
// re-checks it and rejects a batch that consumes an address before the
// operation creating it, instead of letting the network fail it.
func Compose(ops []Operation, feePayer solana.PublicKey, anchor Anchor) (*solana.Transaction, error) {
	if len(ops) == 0 {
		return nil, fmt.Errorf("%w: empty batch", ErrValidation)
	}
	if err := validateOrder(ops); err != nil {
		return nil, err
	}

	ixs := make([]solana.Instruction, len(ops))
	for i, op := range ops {
		ixs[i] = op.Ix
	}

	tx, err := solana.NewTransaction(
		ixs,
		anchor.Blockhash,
		solana.TransactionPayer(feePayer),
	)
	if err != nil {
		return nil, fmt.Errorf("compose: %w", err)
	}
	return tx, nil
}

// SignWithMintKey partially signs with a locally generated keypair.
// Used only when the batch creates a brand-new account: the ledger
// requires the new account's own key to countersign its creation. The
// wallet's signature completes authorization later, outside this
// component.
func SignWithMintKey(tx *solana.Transaction, key solana.PrivateKey) error {
	pub := key.PublicKey()
	_, err := tx.PartialSign(func(k solana.PublicKey) *solana.PrivateKey {
		if k.Equals(pub) {
			return &key
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("ephemeral sign: %w", err)
	}
	return nil
}

// validateOrder checks that every address an operation requires is
// either created earlier in the batch or not created by the batch at
// all (i.e. assumed pre-existing).
func validateOrder(ops []Operation) error {
	createdAt := make(map[solana.PublicKey]int)
	for i, op := range ops {
		for _, addr := range op.Creates {
			if _, dup := createdAt[addr]; dup {
				return fmt.Errorf("%w: %s created twice", ErrDependencyOrder, addr)
			}
			createdAt[addr] = i
		}
	}
	for i, op := range ops {
		for _, addr := range op.Requires {
			if j, ok := createdAt[addr]; ok && j >= i {
				return fmt.Errorf("%w: operation %d uses %s before it is created", ErrDependencyOrder, i, addr)
			}
		}
	}
	return nil
}
