package forge

import (
	"time"

	"github.com/gagliardetto/solana-go"
)

// TokenStandard selects which token program a mint lives under. A mint
// is permanently one standard; it cannot be converted after creation.
type TokenStandard uint8

const (
	// Classic is the original SPL token program, with metadata held in
	// a separate Metaplex program-derived account.
	Classic TokenStandard = iota
	// ExtendedWithMetadata is Token-2022 with the metadata-pointer
	// extension, metadata embedded in the mint account itself.
	ExtendedWithMetadata
)

func (s TokenStandard) String() string {
	switch s {
	case Classic:
		return "classic"
	case ExtendedWithMetadata:
		return "token2022"
	default:
		return "unknown"
	}
}

// ParseStandard maps a CLI flag value to a TokenStandard.
func ParseStandard(s string) (TokenStandard, bool) {
	switch s {
	case "classic", "spl":
		return Classic, true
	case "token2022", "2022", "extended":
		return ExtendedWithMetadata, true
	}
	return Classic, false
}

// Program returns the token program that owns mints of this standard.
func (s TokenStandard) Program() solana.PublicKey {
	if s == ExtendedWithMetadata {
		return solana.Token2022ProgramID
	}
	return solana.TokenProgramID
}

// TokenSpec is the immutable input to a creation flow.
type TokenSpec struct {
	Name          string `validate:"required"`
	Symbol        string `validate:"required"`
	MetadataURI   string
	Decimals      uint8  `validate:"lte=9"`
	InitialSupply string // optional human-readable decimal, e.g. "100" or "1.5"
}

// MintRequest is the input to a mint-more flow against an existing mint.
type MintRequest struct {
	Mint      solana.PublicKey
	Standard  TokenStandard
	Decimals  uint8
	Recipient string // base58, decoded and validated before any network call
	Amount    string // human-readable decimal
}

// OperationType tags a TransactionRecord.
type OperationType string

const (
	OpCreation OperationType = "creation"
	OpMint     OperationType = "mint"
)

// TransactionRecord is one completed flow, session-scoped and
// observational only.
type TransactionRecord struct {
	Signature string
	Type      OperationType
	Mint      string
	Amount    string
	Recipient string
	Time      time.Time
}

// CreateResult is what a successful creation flow yields.
type CreateResult struct {
	Mint      solana.PublicKey
	Signature solana.Signature
}

const (
	MainnetRPC = "https://api.mainnet-beta.solana.com"
	DevnetRPC  = "https://api.devnet.solana.com"
)
