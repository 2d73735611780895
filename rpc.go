package forge

import (
	"context"
	"errors"
	"fmt"

	"github.com/gagliardetto/solana-go"
	"github.com/gagliardetto/solana-go/rpc"
)

// RPCLedger is the production Ledger over a Solana JSON-RPC endpoint.
type RPCLedger struct {
	client     *rpc.Client
	commitment rpc.CommitmentType
}

func NewRPCLedger(rpcURL string) *RPCLedger {
	return &RPCLedger{
		client:     rpc.New(rpcURL),
		commitment: rpc.CommitmentConfirmed,
	}
}

// Client exposes the underlying rpc client for callers that need raw
// access (balance queries, broadcast).
func (l *RPCLedger) Client() *rpc.Client {
	return l.client
}

func (l *RPCLedger) AccountExists(ctx context.Context, addr solana.PublicKey) (bool, error) {
	out, err := l.client.GetAccountInfo(ctx, addr)
	if err != nil {
		if errors.Is(err, rpc.ErrNotFound) {
			return false, nil
		}
		return false, err
	}
	return out != nil && out.Value != nil, nil
}

func (l *RPCLedger) MinimumBalance(ctx context.Context, space uint64) (uint64, error) {
	return l.client.GetMinimumBalanceForRentExemption(ctx, space, l.commitment)
}

func (l *RPCLedger) RecentAnchor(ctx context.Context) (Anchor, error) {
	recent, err := l.client.GetLatestBlockhash(ctx, l.commitment)
	if err != nil {
		return Anchor{}, fmt.Errorf("blockhash: %w", err)
	}
	return Anchor{
		Blockhash:            recent.Value.Blockhash,
		LastValidBlockHeight: recent.Value.LastValidBlockHeight,
	}, nil
}

func (l *RPCLedger) BlockHeight(ctx context.Context) (uint64, error) {
	return l.client.GetBlockHeight(ctx, l.commitment)
}

func (l *RPCLedger) SignatureStatus(ctx context.Context, sig solana.Signature) (TxStatus, error) {
	out, err := l.client.GetSignatureStatuses(ctx, false, sig)
	if err != nil {
		return TxStatus{}, err
	}
	if len(out.Value) == 0 || out.Value[0] == nil {
		return TxStatus{}, nil
	}

	st := out.Value[0]
	status := TxStatus{}
	if st.Err != nil {
		status.ExecErr = fmt.Sprintf("%v", st.Err)
	}
	if st.ConfirmationStatus == rpc.ConfirmationStatusConfirmed ||
		st.ConfirmationStatus == rpc.ConfirmationStatusFinalized {
		status.Committed = true
	}
	return status, nil
}
