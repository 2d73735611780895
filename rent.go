package forge

import (
	"context"
	"fmt"
)

// On-chain account sizing. Classic mints are a fixed 82 bytes. A
// Token-2022 mint carrying the metadata-pointer extension is padded to
// the 165-byte token-account length, then one account-type byte, then
// the TLV-encoded extension record. The token-metadata payload itself
// is written by the program after creation, so it is not part of the
// allocated space, but rent must cover it up front.
const (
	mintSizeClassic = 82

	extensionBaseSize   = 165
	accountTypeSize     = 1
	extensionTypeSize   = 2
	extensionLengthSize = 2

	// authority pubkey + metadata address pubkey
	metadataPointerSize = 64
)

// MintAccountSize returns the byte length to allocate for a new mint
// account of the given standard.
func MintAccountSize(standard TokenStandard) uint64 {
	if standard == ExtendedWithMetadata {
		return extensionBaseSize + accountTypeSize +
			extensionTypeSize + extensionLengthSize + metadataPointerSize
	}
	return mintSizeClassic
}

// MetadataSpace returns the bytes the embedded token-metadata entry
// will occupy once initialized: a TLV header plus the borsh-serialized
// TokenMetadata (update authority, mint, three length-prefixed
// strings, empty additional-metadata vec).
func MetadataSpace(spec TokenSpec) uint64 {
	packed := 32 + 32 +
		4 + len(spec.Name) +
		4 + len(spec.Symbol) +
		4 + len(spec.MetadataURI) +
		4
	return uint64(extensionTypeSize + extensionLengthSize + packed)
}

// RentFor queries the current rent-exemption minimum for a creation of
// the given standard. The threshold is a network parameter, so it is
// fetched fresh per call. For ExtendedWithMetadata the funded amount
// covers the allocated mint plus the metadata the program will write.
func RentFor(ctx context.Context, ledger Ledger, standard TokenStandard, spec TokenSpec) (space, lamports uint64, err error) {
	space = MintAccountSize(standard)

	rentSpace := space
	if standard == ExtendedWithMetadata {
		rentSpace += MetadataSpace(spec)
	}

	lamports, err = ledger.MinimumBalance(ctx, rentSpace)
	if err != nil {
		return 0, 0, fmt.Errorf("%w: rent exemption lookup: %v", ErrNetwork, err)
	}
	return space, lamports, nil
}
