package forge

import (
	"context"
	"fmt"
	"time"

	"github.com/gagliardetto/solana-go"
)

// Outcome classifies a confirmation result. Expired is deliberately
// distinct from Failed: an expired batch may or may not have landed
// and needs a user-level re-query, while Failed is definitive.
type Outcome int

const (
	OutcomeConfirmed Outcome = iota
	OutcomeExpired
	OutcomeFailed
)

func (o Outcome) String() string {
	switch o {
	case OutcomeConfirmed:
		return "confirmed"
	case OutcomeExpired:
		return "expired"
	default:
		return "failed"
	}
}

const confirmPollInterval = 200 * time.Millisecond

// Submit hands the composed and mint-signed transaction to the wallet
// for signing and broadcast. This may block for as long as the user
// takes to approve; cancellation before broadcast has no ledger
// effect.
func Submit(ctx context.Context, wallet Wallet, tx *solana.Transaction) (solana.Signature, error) {
	sig, err := wallet.SignAndSend(ctx, tx)
	if err != nil {
		return solana.Signature{}, fmt.Errorf("%w: broadcast: %v", ErrNetwork, err)
	}
	submitLog.Debug().Str("signature", sig.String()).Msg("broadcast")
	return sig, nil
}

// Confirm polls until the signature is committed, the anchor's block
// height ceiling elapses, or the ledger reports execution failure.
// Nothing is assumed successful until Confirmed is observed.
func Confirm(ctx context.Context, ledger Ledger, sig solana.Signature, anchor Anchor) (Outcome, error) {
	for {
		status, err := ledger.SignatureStatus(ctx, sig)
		if err == nil {
			if status.ExecErr != "" {
				return OutcomeFailed, fmt.Errorf("%w: %s", ErrExecution, status.ExecErr)
			}
			if status.Committed {
				return OutcomeConfirmed, nil
			}
		}

		height, herr := ledger.BlockHeight(ctx)
		if herr == nil && height > anchor.LastValidBlockHeight {
			return OutcomeExpired, fmt.Errorf("%w: block height %d past ceiling %d", ErrExpired, height, anchor.LastValidBlockHeight)
		}

		select {
		case <-ctx.Done():
			return OutcomeFailed, fmt.Errorf("%w: confirmation: %v", ErrNetwork, ctx.Err())
		case <-time.After(confirmPollInterval):
		}
	}
}
