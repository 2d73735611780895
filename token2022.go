package forge

import (
	"crypto/sha256"
	"encoding/binary"

	"github.com/gagliardetto/solana-go"
)

// Hand-encoded Token-2022 instructions. solana-go ships generated
// builders for the classic token program only, so the extension
// instructions follow the program's wire layout directly.
const (
	ixMintTo                   = 7
	ixInitializeMint2          = 20
	ixMetadataPointerExtension = 39

	metadataPointerInitialize = 0
)

// InitializeMetadataPointerOp points the mint's metadata at an
// account, here the mint itself. Must run before mint initialization:
// the extension set is fixed when the mint is initialized.
func InitializeMetadataPointerOp(mint, authority, metadataAddress solana.PublicKey) Operation {
	data := make([]byte, 2+32+32)
	data[0] = ixMetadataPointerExtension
	data[1] = metadataPointerInitialize
	copy(data[2:34], authority.Bytes())
	copy(data[34:66], metadataAddress.Bytes())

	ix := solana.NewInstruction(
		solana.Token2022ProgramID,
		solana.AccountMetaSlice{
			{PublicKey: mint, IsSigner: false, IsWritable: true},
		},
		data,
	)
	return Operation{
		Ix:       ix,
		Requires: []solana.PublicKey{mint},
	}
}

// InitializeMintExtendedOp initializes an allocated account as a
// Token-2022 mint. Layout matches InitializeMint2: decimals, mint
// authority, then the freeze authority as a COption.
func InitializeMintExtendedOp(mint solana.PublicKey, decimals uint8, mintAuthority, freezeAuthority solana.PublicKey) Operation {
	data := make([]byte, 0, 2+32+1+32)
	data = append(data, ixInitializeMint2, decimals)
	data = append(data, mintAuthority.Bytes()...)
	data = append(data, 1)
	data = append(data, freezeAuthority.Bytes()...)

	ix := solana.NewInstruction(
		solana.Token2022ProgramID,
		solana.AccountMetaSlice{
			{PublicKey: mint, IsSigner: false, IsWritable: true},
		},
		data,
	)
	return Operation{
		Ix:       ix,
		Requires: []solana.PublicKey{mint},
	}
}

// InitializeMetadataExtendedOp writes name/symbol/uri into the mint's
// own metadata extension space. Valid only after the mint is
// initialized. The discriminator is the spl-token-metadata interface
// namespace hash.
func InitializeMetadataExtendedOp(mint solana.PublicKey, name, symbol, uri string, authority solana.PublicKey) Operation {
	disc := sha256.Sum256([]byte("spl_token_metadata_interface:initialize_account"))

	data := make([]byte, 0, 8+4+len(name)+4+len(symbol)+4+len(uri))
	data = append(data, disc[:8]...)
	data = appendBorshString(data, name)
	data = appendBorshString(data, symbol)
	data = appendBorshString(data, uri)

	ix := solana.NewInstruction(
		solana.Token2022ProgramID,
		solana.AccountMetaSlice{
			{PublicKey: mint, IsSigner: false, IsWritable: true}, // metadata lives in the mint
			{PublicKey: authority, IsSigner: false, IsWritable: false},
			{PublicKey: mint, IsSigner: false, IsWritable: false},
			{PublicKey: authority, IsSigner: true, IsWritable: false},
		},
		data,
	)
	return Operation{
		Ix:       ix,
		Requires: []solana.PublicKey{mint},
	}
}

// MintToExtendedOp is MintTo under the Token-2022 program.
func MintToExtendedOp(mint, destination, authority solana.PublicKey, rawAmount uint64) Operation {
	data := make([]byte, 9)
	data[0] = ixMintTo
	binary.LittleEndian.PutUint64(data[1:], rawAmount)

	ix := solana.NewInstruction(
		solana.Token2022ProgramID,
		solana.AccountMetaSlice{
			{PublicKey: mint, IsSigner: false, IsWritable: true},
			{PublicKey: destination, IsSigner: false, IsWritable: true},
			{PublicKey: authority, IsSigner: true, IsWritable: false},
		},
		data,
	)
	return Operation{
		Ix:       ix,
		Requires: []solana.PublicKey{mint, destination},
	}
}

func appendBorshString(data []byte, s string) []byte {
	var n [4]byte
	binary.LittleEndian.PutUint32(n[:], uint32(len(s)))
	data = append(data, n[:]...)
	return append(data, s...)
}
