package ed25519

import "crypto"

// Options selects the signing/verification variant, mirroring the
// standard library's crypto/ed25519.Options: Hash distinguishes plain
// Ed25519 (crypto.Hash(0)) from Ed25519ph (crypto.SHA512, message is
// already a 64-byte pre-hash), and Context carries the optional
// Ed25519ctx/Ed25519ph domain-separation string (at most 255 bytes).
type Options struct {
	Hash    crypto.Hash
	Context string
}

// HashFunc lets *Options satisfy crypto.SignerOpts.
func (o *Options) HashFunc() crypto.Hash {
	return o.Hash
}

// dom2 builds the RFC 8032 domain-separation prefix "SigEd25519 no
// Ed25519 collisions" || phflag || len(ctx) || ctx. It is prepended to
// the message before hashing whenever a context string is present or
// the message has been pre-hashed (Ed25519ph); plain Ed25519 with no
// context uses no prefix at all, matching the original RFC 8032
// scheme rather than unconditionally dom2-prefixing everything.
func dom2(phflag byte, ctx string) []byte {
	out := make([]byte, 0, 32+2+len(ctx))
	out = append(out, []byte("SigEd25519 no Ed25519 collisions")...)
	out = append(out, phflag, byte(len(ctx)))
	out = append(out, ctx...)
	return out
}

func (o *Options) needsDom2() bool {
	return o != nil && (o.Context != "" || o.Hash == crypto.SHA512)
}

func (o *Options) phflag() byte {
	if o != nil && o.Hash == crypto.SHA512 {
		return 1
	}
	return 0
}

func (o *Options) context() string {
	if o == nil {
		return ""
	}
	return o.Context
}

// VerifyOption configures VerifyWithOptions' acceptance rules.
type VerifyOption func(*verifyConfig)

type verifyConfig struct {
	cofactored        bool
	permissiveWeakKey bool
}

// WithCofactoredVerification switches the acceptance test from the
// strict equation (accept iff [s]B - [k]A == R) to the cofactored one
// (accept iff [8]([s]B - [k]A - R) == identity), the ZIP-215-compatible
// rule. Off by default: strict is the IETF-preferred behavior.
func WithCofactoredVerification() VerifyOption {
	return func(c *verifyConfig) { c.cofactored = true }
}

// WithPermissiveSmallOrder disables the strict-mode rejection of
// small-order (order dividing 8) verifying keys. Off by default.
func WithPermissiveSmallOrder() VerifyOption {
	return func(c *verifyConfig) { c.permissiveWeakKey = true }
}
