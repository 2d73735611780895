package forge

import (
	"github.com/gagliardetto/solana-go"
	"github.com/gagliardetto/solana-go/programs/system"
	"github.com/gagliardetto/solana-go/programs/token"
)

// Operation is one ledger instruction plus the address dependencies
// the composer validates: Creates lists accounts this operation brings
// into existence, Requires lists accounts that must already exist
// (either before the batch or earlier within it).
type Operation struct {
	Ix       solana.Instruction
	Creates  []solana.PublicKey
	Requires []solana.PublicKey
}

// CreateAccountOp allocates and funds a brand-new account owned by the
// given program. The new account's key must co-sign the batch.
func CreateAccountOp(payer, newAccount solana.PublicKey, space, lamports uint64, owner solana.PublicKey) Operation {
	ix := system.NewCreateAccountInstruction(lamports, space, owner, payer, newAccount).Build()
	return Operation{
		Ix:      ix,
		Creates: []solana.PublicKey{newAccount},
	}
}

// InitializeMintClassicOp initializes an allocated account as a
// classic SPL mint.
func InitializeMintClassicOp(mint solana.PublicKey, decimals uint8, mintAuthority, freezeAuthority solana.PublicKey) Operation {
	ix := token.NewInitializeMint2Instruction(decimals, mintAuthority, freezeAuthority, mint).Build()
	return Operation{
		Ix:       ix,
		Requires: []solana.PublicKey{mint},
	}
}

// MintToClassicOp mints rawAmount base units into a classic token
// account. The caller performs any decimal scaling; this never
// rescales.
func MintToClassicOp(mint, destination, authority solana.PublicKey, rawAmount uint64) Operation {
	ix := token.NewMintToInstruction(rawAmount, mint, destination, authority, nil).Build()
	return Operation{
		Ix:       ix,
		Requires: []solana.PublicKey{mint, destination},
	}
}

// CreateAssociatedAccountOp creates the associated token account for
// (owner, mint) under the standard's token program. The instruction
// data is empty; the ATA program's sole instruction is Create.
func CreateAssociatedAccountOp(payer, owner, ata, mint solana.PublicKey, standard TokenStandard) Operation {
	ix := solana.NewInstruction(
		solana.SPLAssociatedTokenAccountProgramID,
		solana.AccountMetaSlice{
			{PublicKey: payer, IsSigner: true, IsWritable: true},
			{PublicKey: ata, IsSigner: false, IsWritable: true},
			{PublicKey: owner, IsSigner: false, IsWritable: false},
			{PublicKey: mint, IsSigner: false, IsWritable: false},
			{PublicKey: solana.SystemProgramID, IsSigner: false, IsWritable: false},
			{PublicKey: standard.Program(), IsSigner: false, IsWritable: false},
			{PublicKey: solana.SysVarRentPubkey, IsSigner: false, IsWritable: false},
		},
		[]byte{},
	)
	return Operation{
		Ix:       ix,
		Creates:  []solana.PublicKey{ata},
		Requires: []solana.PublicKey{mint},
	}
}
