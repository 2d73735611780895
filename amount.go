package forge

import (
	"fmt"
	"math/big"
	"strings"

	"github.com/shopspring/decimal"
)

// ScaleAmount converts a human-readable decimal amount into raw base
// units: floor(human * 10^decimals). Excess fractional digits are
// truncated, never rounded up.
func ScaleAmount(human string, decimals uint8) (uint64, error) {
	human = strings.TrimSpace(human)
	if human == "" {
		return 0, fmt.Errorf("%w: amount cannot be empty", ErrValidation)
	}

	d, err := decimal.NewFromString(human)
	if err != nil {
		return 0, fmt.Errorf("%w: invalid amount %q", ErrValidation, human)
	}
	if d.IsNegative() {
		return 0, fmt.Errorf("%w: amount cannot be negative", ErrValidation)
	}

	raw := d.Shift(int32(decimals)).Floor().BigInt()
	if !raw.IsUint64() {
		return 0, fmt.Errorf("%w: amount %q overflows u64 at %d decimals", ErrValidation, human, decimals)
	}
	return raw.Uint64(), nil
}

// FmtAmount renders raw base units as a human-readable decimal.
func FmtAmount(raw uint64, decimals uint8) string {
	return decimal.NewFromBigInt(new(big.Int).SetUint64(raw), -int32(decimals)).String()
}
