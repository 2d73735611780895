package forge

import (
	"context"
	"sync"

	"github.com/gagliardetto/solana-go"
)

// fakeLedger is an in-memory Ledger for flow and pipeline tests. Every
// method bumps calls so tests can assert fail-fast paths make no
// network calls at all.
type fakeLedger struct {
	mu    sync.Mutex
	calls int

	exists     map[solana.PublicKey]bool
	minBalance uint64
	anchor     Anchor
	height     uint64

	// statuses are returned in order from SignatureStatus; the last
	// entry repeats once exhausted.
	statuses  []TxStatus
	statusIdx int

	minBalanceFor []uint64 // requested sizes, in call order
}

func newFakeLedger() *fakeLedger {
	return &fakeLedger{
		exists:     map[solana.PublicKey]bool{},
		minBalance: 1_000_000,
		anchor:     Anchor{LastValidBlockHeight: 500},
		height:     100,
		statuses:   []TxStatus{{Committed: true}},
	}
}

func (f *fakeLedger) bump() {
	f.mu.Lock()
	f.calls++
	f.mu.Unlock()
}

func (f *fakeLedger) callCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls
}

func (f *fakeLedger) AccountExists(ctx context.Context, addr solana.PublicKey) (bool, error) {
	f.bump()
	return f.exists[addr], nil
}

func (f *fakeLedger) MinimumBalance(ctx context.Context, space uint64) (uint64, error) {
	f.bump()
	f.mu.Lock()
	f.minBalanceFor = append(f.minBalanceFor, space)
	f.mu.Unlock()
	return f.minBalance, nil
}

func (f *fakeLedger) RecentAnchor(ctx context.Context) (Anchor, error) {
	f.bump()
	return f.anchor, nil
}

func (f *fakeLedger) BlockHeight(ctx context.Context) (uint64, error) {
	f.bump()
	return f.height, nil
}

func (f *fakeLedger) SignatureStatus(ctx context.Context, sig solana.Signature) (TxStatus, error) {
	f.bump()
	f.mu.Lock()
	defer f.mu.Unlock()
	st := f.statuses[f.statusIdx]
	if f.statusIdx < len(f.statuses)-1 {
		f.statusIdx++
	}
	return st, nil
}

// fakeWallet signs nothing and captures the transaction it was asked
// to broadcast.
type fakeWallet struct {
	key  solana.PrivateKey
	sent *solana.Transaction
	err  error
}

func newFakeWallet() *fakeWallet {
	w := solana.NewWallet()
	return &fakeWallet{key: w.PrivateKey}
}

func (f *fakeWallet) PublicKey() solana.PublicKey {
	return f.key.PublicKey()
}

func (f *fakeWallet) SignAndSend(ctx context.Context, tx *solana.Transaction) (solana.Signature, error) {
	if f.err != nil {
		return solana.Signature{}, f.err
	}
	f.sent = tx
	return solana.Signature{1, 2, 3}, nil
}

// instructionPrograms maps each compiled instruction back to its
// program id.
func instructionPrograms(tx *solana.Transaction) []solana.PublicKey {
	out := make([]solana.PublicKey, len(tx.Message.Instructions))
	for i, ix := range tx.Message.Instructions {
		out[i] = tx.Message.AccountKeys[ix.ProgramIDIndex]
	}
	return out
}
