package forge

import (
	"context"

	"github.com/gagliardetto/solana-go"
)

// Anchor is the short-lived validity window for one batch: a recent
// blockhash plus the block height past which the ledger rejects it.
// Single use; fetched immediately before signing, never reused.
type Anchor struct {
	Blockhash            solana.Hash
	LastValidBlockHeight uint64
}

// TxStatus is the ledger's view of a submitted signature.
type TxStatus struct {
	Committed bool
	// ExecErr is non-empty when the ledger executed the batch and it
	// failed. Distinct from transport errors.
	ExecErr string
}

// Ledger is the read side of the chain, black-boxed so flows can be
// exercised against fakes. The production implementation is RPCLedger.
type Ledger interface {
	AccountExists(ctx context.Context, addr solana.PublicKey) (bool, error)
	MinimumBalance(ctx context.Context, space uint64) (uint64, error)
	RecentAnchor(ctx context.Context) (Anchor, error)
	BlockHeight(ctx context.Context) (uint64, error)
	SignatureStatus(ctx context.Context, sig solana.Signature) (TxStatus, error)
}

// Wallet signs and broadcasts a composed transaction. SignAndSend may
// block indefinitely awaiting user approval; only confirmation after
// broadcast is time-boxed (by the anchor), never the approval itself.
type Wallet interface {
	PublicKey() solana.PublicKey
	SignAndSend(ctx context.Context, tx *solana.Transaction) (solana.Signature, error)
}
