package forge

import (
	"context"
	"fmt"
	"time"

	"github.com/gagliardetto/solana-go"
	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"
)

// Status is the externally observable state of a flow. One flow moves
// strictly forward through these; any error short-circuits to
// StatusFailed.
type Status string

const (
	StatusIdle                    Status = "idle"
	StatusValidating              Status = "validating"
	StatusFunding                 Status = "funding"
	StatusComposing               Status = "composing"
	StatusAwaitingWalletSignature Status = "awaiting wallet signature"
	StatusBroadcasting            Status = "broadcasting"
	StatusConfirming              Status = "confirming"
	StatusSucceeded               Status = "succeeded"
	StatusFailed                  Status = "failed"
)

var validate = validator.New()

// Launchpad orchestrates token creation and mint-more flows over a
// Ledger and a Wallet. Methods hold no mutable state beyond the
// append-only history, so independent flows may run concurrently.
type Launchpad struct {
	ledger  Ledger
	wallet  Wallet
	history *History
	log     zerolog.Logger

	// OnStatus, if set, receives every state transition. Intended for
	// the presentation layer; must not block.
	OnStatus func(Status)
	// OnRecord, if set, receives each completed TransactionRecord in
	// addition to the in-memory history.
	OnRecord func(TransactionRecord)
}

func NewLaunchpad(ledger Ledger, wallet Wallet) *Launchpad {
	return &Launchpad{
		ledger:  ledger,
		wallet:  wallet,
		history: NewHistory(),
		log:     flowLog,
	}
}

// History is the session's append-only record list.
func (l *Launchpad) History() *History {
	return l.history
}

func (l *Launchpad) setStatus(s Status) {
	l.log.Debug().Str("status", string(s)).Msg("state")
	if l.OnStatus != nil {
		l.OnStatus(s)
	}
}

func (l *Launchpad) fail(err error) error {
	l.log.Error().Err(err).Msg("flow failed")
	l.setStatus(StatusFailed)
	return err
}

// CreateToken runs the full creation flow: size and fund the mint
// account, compose the creation batch for the chosen standard, include
// the optional initial supply atomically, then sign, broadcast and
// confirm. On success the new mint address is returned and a record
// appended to history.
func (l *Launchpad) CreateToken(ctx context.Context, spec TokenSpec, standard TokenStandard) (*CreateResult, error) {
	l.setStatus(StatusValidating)
	if err := validate.Struct(spec); err != nil {
		return nil, l.fail(fmt.Errorf("%w: %v", ErrValidation, err))
	}

	var initialSupply uint64
	if spec.InitialSupply != "" {
		raw, err := ScaleAmount(spec.InitialSupply, spec.Decimals)
		if err != nil {
			return nil, l.fail(err)
		}
		initialSupply = raw
	}

	payer := l.wallet.PublicKey()

	// The mint identity: a fresh keypair whose public half becomes the
	// token's permanent address. The private half co-signs the
	// creation batch once and is not retained.
	mint := solana.NewWallet()
	mintPub := mint.PublicKey()

	l.setStatus(StatusFunding)
	space, lamports, err := RentFor(ctx, l.ledger, standard, spec)
	if err != nil {
		return nil, l.fail(err)
	}

	l.setStatus(StatusComposing)
	ops := []Operation{
		CreateAccountOp(payer, mintPub, space, lamports, standard.Program()),
	}

	switch standard {
	case ExtendedWithMetadata:
		// The metadata pointer must precede mint initialization: the
		// extension layout is fixed when the mint is initialized.
		ops = append(ops,
			InitializeMetadataPointerOp(mintPub, payer, mintPub),
			InitializeMintExtendedOp(mintPub, spec.Decimals, payer, payer),
			InitializeMetadataExtendedOp(mintPub, spec.Name, spec.Symbol, spec.MetadataURI, payer),
		)
	default:
		metaOp, err := CreateMetadataAccountClassicOp(mintPub, payer, payer, spec.Name, spec.Symbol, spec.MetadataURI)
		if err != nil {
			return nil, l.fail(err)
		}
		ops = append(ops,
			InitializeMintClassicOp(mintPub, spec.Decimals, payer, payer),
			metaOp,
		)
	}

	if initialSupply > 0 {
		supplyOps, err := l.mintOpsTo(ctx, mintPub, payer, standard, initialSupply)
		if err != nil {
			return nil, l.fail(err)
		}
		ops = append(ops, supplyOps...)
	}

	// Anchor fetched immediately before signing; a stale anchor fails
	// submission rather than retrying silently.
	anchor, err := l.ledger.RecentAnchor(ctx)
	if err != nil {
		return nil, l.fail(fmt.Errorf("%w: anchor: %v", ErrNetwork, err))
	}

	tx, err := Compose(ops, payer, anchor)
	if err != nil {
		return nil, l.fail(err)
	}
	if err := SignWithMintKey(tx, mint.PrivateKey); err != nil {
		return nil, l.fail(err)
	}

	sig, err := l.submitAndConfirm(ctx, tx, anchor)
	if err != nil {
		return nil, err
	}

	l.finish(TransactionRecord{
		Signature: sig.String(),
		Type:      OpCreation,
		Mint:      mintPub.String(),
		Amount:    FmtAmount(initialSupply, spec.Decimals),
		Recipient: payer.String(),
		Time:      time.Now(),
	})
	l.log.Info().Str("mint", mintPub.String()).Str("standard", standard.String()).Msg("token created")

	return &CreateResult{Mint: mintPub, Signature: sig}, nil
}

// MintMore mints additional supply of an existing token to a
// recipient. The recipient string is validated before any network
// call; the associated account is created only when it does not
// already exist.
func (l *Launchpad) MintMore(ctx context.Context, req MintRequest) (solana.Signature, error) {
	l.setStatus(StatusValidating)
	if req.Mint.IsZero() {
		return solana.Signature{}, l.fail(fmt.Errorf("%w: no mint address", ErrValidation))
	}
	recipient, err := DecodeAddress(req.Recipient)
	if err != nil {
		return solana.Signature{}, l.fail(err)
	}
	rawAmount, err := ScaleAmount(req.Amount, req.Decimals)
	if err != nil {
		return solana.Signature{}, l.fail(err)
	}
	if rawAmount == 0 {
		return solana.Signature{}, l.fail(fmt.Errorf("%w: amount must be positive", ErrValidation))
	}

	l.setStatus(StatusComposing)
	ops, err := l.mintOpsTo(ctx, req.Mint, recipient, req.Standard, rawAmount)
	if err != nil {
		return solana.Signature{}, l.fail(err)
	}

	payer := l.wallet.PublicKey()
	anchor, err := l.ledger.RecentAnchor(ctx)
	if err != nil {
		return solana.Signature{}, l.fail(fmt.Errorf("%w: anchor: %v", ErrNetwork, err))
	}

	tx, err := Compose(ops, payer, anchor)
	if err != nil {
		return solana.Signature{}, l.fail(err)
	}

	sig, err := l.submitAndConfirm(ctx, tx, anchor)
	if err != nil {
		return solana.Signature{}, err
	}

	l.finish(TransactionRecord{
		Signature: sig.String(),
		Type:      OpMint,
		Mint:      req.Mint.String(),
		Amount:    FmtAmount(rawAmount, req.Decimals),
		Recipient: recipient.String(),
		Time:      time.Now(),
	})
	l.log.Info().Str("mint", req.Mint.String()).Str("recipient", recipient.String()).Msg("minted")

	return sig, nil
}

// mintOpsTo builds the associated-account and mint-to operations for a
// recipient, creating the associated account only when it is missing.
func (l *Launchpad) mintOpsTo(ctx context.Context, mint, recipient solana.PublicKey, standard TokenStandard, rawAmount uint64) ([]Operation, error) {
	payer := l.wallet.PublicKey()

	ata, err := DeriveAssociatedAddress(recipient, mint, standard)
	if err != nil {
		return nil, err
	}

	need, err := NeedsCreation(ctx, l.ledger, ata)
	if err != nil {
		return nil, err
	}

	var ops []Operation
	if need {
		ops = append(ops, CreateAssociatedAccountOp(payer, recipient, ata, mint, standard))
	}
	if standard == ExtendedWithMetadata {
		ops = append(ops, MintToExtendedOp(mint, ata, payer, rawAmount))
	} else {
		ops = append(ops, MintToClassicOp(mint, ata, payer, rawAmount))
	}
	return ops, nil
}

func (l *Launchpad) submitAndConfirm(ctx context.Context, tx *solana.Transaction, anchor Anchor) (solana.Signature, error) {
	// The wallet primitive fuses user approval and broadcast, so the
	// two states collapse into one call.
	l.setStatus(StatusAwaitingWalletSignature)
	l.setStatus(StatusBroadcasting)
	sig, err := Submit(ctx, l.wallet, tx)
	if err != nil {
		return solana.Signature{}, l.fail(err)
	}

	l.setStatus(StatusConfirming)
	outcome, err := Confirm(ctx, l.ledger, sig, anchor)
	if err != nil {
		l.log.Warn().Str("outcome", outcome.String()).Str("signature", sig.String()).Msg("not confirmed")
		return solana.Signature{}, l.fail(err)
	}
	return sig, nil
}

func (l *Launchpad) finish(r TransactionRecord) {
	l.history.Append(r)
	if l.OnRecord != nil {
		l.OnRecord(r)
	}
	l.setStatus(StatusSucceeded)
}
