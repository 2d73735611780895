package forge

import (
	"encoding/binary"
	"fmt"

	"github.com/gagliardetto/solana-go"
)

// Classic-standard metadata lives in a separate account owned by the
// Metaplex token-metadata program, at a PDA derived from the mint.

const ixCreateMetadataAccountV3 = 33

// DeriveMetadataAddress computes the Metaplex metadata PDA for a mint.
func DeriveMetadataAddress(mint solana.PublicKey) (solana.PublicKey, error) {
	addr, _, err := solana.FindProgramAddress(
		[][]byte{
			[]byte("metadata"),
			solana.TokenMetadataProgramID.Bytes(),
			mint.Bytes(),
		},
		solana.TokenMetadataProgramID,
	)
	if err != nil {
		return solana.PublicKey{}, fmt.Errorf("metadata address: %w", err)
	}
	return addr, nil
}

// CreateMetadataAccountClassicOp derives the metadata PDA and builds
// CreateMetadataAccountV3 for it. Data is borsh DataV2 with no
// creators, collection or uses, mutable, no collection details.
func CreateMetadataAccountClassicOp(mint, authority, payer solana.PublicKey, name, symbol, uri string) (Operation, error) {
	metadata, err := DeriveMetadataAddress(mint)
	if err != nil {
		return Operation{}, err
	}

	data := make([]byte, 0, 1+4+len(name)+4+len(symbol)+4+len(uri)+2+3+1+1)
	data = append(data, ixCreateMetadataAccountV3)
	data = appendBorshString(data, name)
	data = appendBorshString(data, symbol)
	data = appendBorshString(data, uri)
	var sellerFee [2]byte
	binary.LittleEndian.PutUint16(sellerFee[:], 0)
	data = append(data, sellerFee[:]...)
	data = append(data, 0) // creators: None
	data = append(data, 0) // collection: None
	data = append(data, 0) // uses: None
	data = append(data, 1) // is_mutable
	data = append(data, 0) // collection_details: None

	ix := solana.NewInstruction(
		solana.TokenMetadataProgramID,
		solana.AccountMetaSlice{
			{PublicKey: metadata, IsSigner: false, IsWritable: true},
			{PublicKey: mint, IsSigner: false, IsWritable: false},
			{PublicKey: authority, IsSigner: true, IsWritable: false},
			{PublicKey: payer, IsSigner: true, IsWritable: true},
			{PublicKey: authority, IsSigner: false, IsWritable: false}, // update authority
			{PublicKey: solana.SystemProgramID, IsSigner: false, IsWritable: false},
		},
		data,
	)
	return Operation{
		Ix:       ix,
		Creates:  []solana.PublicKey{metadata},
		Requires: []solana.PublicKey{mint},
	}, nil
}
