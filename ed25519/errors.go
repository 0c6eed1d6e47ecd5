package ed25519

import "errors"

// Typed error values this package's public entry points return. Every
// internal primitive below the package boundary still reports failure
// through an int/uint64 flag (see edwards25519.Decompress,
// field.Element.SqrtRatioI); these are the errors those flags get
// translated into once a caller-visible decision has been made.
var (
	// ErrInvalidEncoding means bytes did not decode to a curve point,
	// canonical scalar, or well-formed signature: a non-canonical field
	// element, a nonsquare in decompression, or s >= ell.
	ErrInvalidEncoding = errors.New("ed25519: invalid encoding")

	// ErrWeakPublicKey means a verifying key has order dividing 8;
	// returned only when strict small-order rejection is in effect.
	ErrWeakPublicKey = errors.New("ed25519: verifying key has small order")

	// ErrSignatureMismatch means the bytes decoded fine but the
	// verification equation did not hold.
	ErrSignatureMismatch = errors.New("ed25519: signature verification failed")

	// ErrBatchFailure means at least one signature in a batch failed;
	// VerifyBatch does not identify which one. Callers that need to
	// know which signature is bad fall back to verifying individually.
	ErrBatchFailure = errors.New("ed25519: batch verification failed")

	// ErrContextTooLong means an Ed25519ctx/Ed25519ph context string
	// exceeded 255 bytes.
	ErrContextTooLong = errors.New("ed25519: context too long")
)
