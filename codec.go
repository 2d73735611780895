package forge

import (
	"fmt"

	"github.com/gagliardetto/solana-go"
)

// DecodeAddress parses a human-entered base58 address. Malformed input
// fails with ErrInvalidAddress before any other work begins.
func DecodeAddress(text string) (solana.PublicKey, error) {
	if text == "" {
		return solana.PublicKey{}, fmt.Errorf("%w: empty string", ErrInvalidAddress)
	}
	pk, err := solana.PublicKeyFromBase58(text)
	if err != nil {
		return solana.PublicKey{}, fmt.Errorf("%w: %q", ErrInvalidAddress, text)
	}
	return pk, nil
}
