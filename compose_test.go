package forge

import (
	"errors"
	"testing"

	"github.com/gagliardetto/solana-go"
)

func TestComposeRejectsOutOfOrderBatch(t *testing.T) {
	payer := solana.NewWallet().PublicKey()
	mint := solana.NewWallet().PublicKey()
	dest := solana.NewWallet().PublicKey()

	// mint-to before the account creating the mint: must be rejected
	// locally, never sent.
	ops := []Operation{
		MintToClassicOp(mint, dest, payer, 1),
		CreateAccountOp(payer, mint, 82, 1, solana.TokenProgramID),
	}

	_, err := Compose(ops, payer, Anchor{})
	if !errors.Is(err, ErrDependencyOrder) {
		t.Fatalf("error = %v, want ErrDependencyOrder", err)
	}
}

func TestComposeRejectsDuplicateCreation(t *testing.T) {
	payer := solana.NewWallet().PublicKey()
	mint := solana.NewWallet().PublicKey()

	ops := []Operation{
		CreateAccountOp(payer, mint, 82, 1, solana.TokenProgramID),
		CreateAccountOp(payer, mint, 82, 1, solana.TokenProgramID),
	}

	_, err := Compose(ops, payer, Anchor{})
	if !errors.Is(err, ErrDependencyOrder) {
		t.Fatalf("error = %v, want ErrDependencyOrder", err)
	}
}

func TestComposeRejectsEmptyBatch(t *testing.T) {
	_, err := Compose(nil, solana.NewWallet().PublicKey(), Anchor{})
	if !errors.Is(err, ErrValidation) {
		t.Fatalf("error = %v, want ErrValidation", err)
	}
}

func TestComposeOrderedBatch(t *testing.T) {
	payer := solana.NewWallet().PublicKey()
	mint := solana.NewWallet().PublicKey()
	dest := solana.NewWallet().PublicKey()

	ops := []Operation{
		CreateAccountOp(payer, mint, 82, 1, solana.TokenProgramID),
		InitializeMintClassicOp(mint, 6, payer, payer),
		MintToClassicOp(mint, dest, payer, 100),
	}

	tx, err := Compose(ops, payer, Anchor{})
	if err != nil {
		t.Fatal(err)
	}
	if len(tx.Message.Instructions) != 3 {
		t.Errorf("instructions = %d, want 3", len(tx.Message.Instructions))
	}
	// Fee payer is always the first account key.
	if !tx.Message.AccountKeys[0].Equals(payer) {
		t.Errorf("fee payer = %s, want %s", tx.Message.AccountKeys[0], payer)
	}
}

func TestSignWithMintKey(t *testing.T) {
	payerKey := solana.NewWallet()
	mintKey := solana.NewWallet()
	payer := payerKey.PublicKey()
	mint := mintKey.PublicKey()

	ops := []Operation{
		CreateAccountOp(payer, mint, 82, 1, solana.TokenProgramID),
		InitializeMintClassicOp(mint, 6, payer, payer),
	}

	tx, err := Compose(ops, payer, Anchor{})
	if err != nil {
		t.Fatal(err)
	}
	if err := SignWithMintKey(tx, mintKey.PrivateKey); err != nil {
		t.Fatal(err)
	}

	// The mint's signature slot must be populated; the payer's (the
	// wallet's, added later) stays empty.
	var signed int
	for _, sig := range tx.Signatures {
		if !sig.IsZero() {
			signed++
		}
	}
	if signed != 1 {
		t.Errorf("non-empty signatures = %d, want 1 (mint only)", signed)
	}
}
