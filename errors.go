package forge

import "errors"

// Every failure a flow can surface wraps exactly one of these
// sentinels, so callers can classify with errors.Is without parsing
// messages.
var (
	// ErrValidation: bad or missing input, detected locally before any
	// network call.
	ErrValidation = errors.New("validation failed")

	// ErrInvalidAddress: a string that does not decode to a 32-byte
	// base58 public key.
	ErrInvalidAddress = errors.New("invalid address")

	// ErrNetwork: an RPC lookup or broadcast failed in transport.
	ErrNetwork = errors.New("network error")

	// ErrDependencyOrder: a composed batch references an address
	// before the operation that creates it. Internal invariant breach;
	// correct callers never see it.
	ErrDependencyOrder = errors.New("dependency order violation")

	// ErrExpired: the blockhash anchor elapsed before the signature
	// was observed committed. The batch may or may not have landed;
	// callers must re-query, not blindly retry.
	ErrExpired = errors.New("transaction expired")

	// ErrExecution: the ledger accepted the batch and reported an
	// execution failure.
	ErrExecution = errors.New("ledger execution failure")
)
