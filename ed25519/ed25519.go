// Package ed25519 implements Ed25519 signing and verification (RFC
// 8032) over the edwards25519/ristretto255 module's curve arithmetic:
// key expansion, deterministic and randomized signing, the Ed25519ctx
// and Ed25519ph variants, strict and cofactored (ZIP-215-style)
// verification, and Pippenger-backed batch verification.
package ed25519

import (
	"crypto"
	cryptorand "crypto/rand"
	"crypto/sha512"
	"crypto/subtle"
	"io"

	"github.com/Beneficial-AI-Foundation/libsignal-focus-dalek-lite/edwards25519"
	"github.com/Beneficial-AI-Foundation/libsignal-focus-dalek-lite/internal/scalar"
)

// SeedSize is the length in bytes of an Ed25519 seed.
const SeedSize = 32

// PublicKeySize is the length in bytes of an Ed25519 public key.
const PublicKeySize = 32

// SignatureSize is the length in bytes of an Ed25519 signature.
const SignatureSize = 64

// SigningKey holds an Ed25519 private key: the original seed plus the
// values key expansion derives from it (clamp(SHA-512(seed)) split into
// the scalar a and the nonce-generation prefix), and the cached
// compressed public key A = (a*B).compress() so signing never needs to
// recompute it.
type SigningKey struct {
	seed   [SeedSize]byte
	a      scalar.Scalar
	prefix [32]byte
	pub    edwards25519.CompressedEdwardsY
}

// VerifyingKey holds an Ed25519 public key as its 32-byte compressed
// encoding plus the decompressed point, decoded once at construction
// time so repeated verification calls against the same key don't pay
// the decompression cost again.
type VerifyingKey struct {
	encoded edwards25519.CompressedEdwardsY
	point   edwards25519.Point
	valid   bool
}

// NewKeyFromSeed expands a 32-byte seed into a SigningKey, per RFC 8032
// section 5.1.5: h = SHA-512(seed); a = clamp(h[0:32]); prefix =
// h[32:64]; A = (a*B).compress().
func NewKeyFromSeed(seed [SeedSize]byte) *SigningKey {
	h := sha512.Sum512(seed[:])

	var hLow [32]byte
	copy(hLow[:], h[:32])
	clamped := scalar.ClampInteger(hLow)

	sk := &SigningKey{seed: seed}
	sk.a = scalar.FromBytesModOrder(&clamped)
	copy(sk.prefix[:], h[32:])

	A := new(edwards25519.Point).ScalarBaseMult(&sk.a)
	sk.pub.Compress(A)
	return sk
}

// GenerateKey generates a new SigningKey using entropy from rand. If
// rand is nil, crypto/rand.Reader is used.
func GenerateKey(rand io.Reader) (*SigningKey, error) {
	if rand == nil {
		rand = cryptorand.Reader
	}
	var seed [SeedSize]byte
	if _, err := io.ReadFull(rand, seed[:]); err != nil {
		return nil, err
	}
	return NewKeyFromSeed(seed), nil
}

// Seed returns the 32-byte seed this key was derived from.
func (sk *SigningKey) Seed() [SeedSize]byte {
	return sk.seed
}

// Public returns the VerifyingKey corresponding to sk.
func (sk *SigningKey) Public() *VerifyingKey {
	vk := &VerifyingKey{encoded: sk.pub}
	vk.point.Decompress(&vk.encoded)
	vk.valid = true
	return vk
}

// PublicKeyBytes returns the 32-byte compressed encoding of sk's
// public key.
func (sk *SigningKey) PublicKeyBytes() [PublicKeySize]byte {
	var out [PublicKeySize]byte
	copy(out[:], sk.pub[:])
	return out
}

// Sign produces a deterministic, plain (non-ctx, non-ph) Ed25519
// signature over message, per RFC 8032 section 5.1.6.
func (sk *SigningKey) Sign(message []byte) [SignatureSize]byte {
	sig, _ := sk.sign(nil, message, nil)
	return sig
}

// SignWithOptions signs message under opts (Ed25519ctx if opts.Context
// is non-empty, Ed25519ph if opts.Hash is crypto.SHA512 and message is
// the 64-byte SHA-512 pre-hash of the real message). If rand is
// non-nil, 32 bytes are read from it and folded into the per-signature
// nonce, producing a randomized rather than deterministic signature;
// the extra entropy need not be high quality, it cannot weaken the
// signature, only make it unpredictable to an outsider.
func (sk *SigningKey) SignWithOptions(rand io.Reader, message []byte, opts *Options) ([SignatureSize]byte, error) {
	if len(opts.context()) > 255 {
		return [SignatureSize]byte{}, ErrContextTooLong
	}
	var randomization []byte
	if rand != nil {
		var buf [32]byte
		if _, err := io.ReadFull(rand, buf[:]); err != nil {
			return [SignatureSize]byte{}, err
		}
		randomization = buf[:]
	}
	return sk.sign(randomization, message, opts)
}

// SignCryptoSigner matches the crypto.Signer method shape, the same
// shape the standard library's own crypto/ed25519.PrivateKey uses for
// Sign. Only an *Options value selects a variant; any other opts
// value, including a bare crypto.SHA512, produces a plain Ed25519
// signature.
func (sk *SigningKey) SignCryptoSigner(rand io.Reader, message []byte, opts crypto.SignerOpts) ([]byte, error) {
	o, _ := opts.(*Options)
	sig, err := sk.SignWithOptions(rand, message, o)
	if err != nil {
		return nil, err
	}
	return sig[:], nil
}

func (sk *SigningKey) sign(randomization, message []byte, opts *Options) ([SignatureSize]byte, error) {
	h := sha512.New()
	h.Write(sk.prefix[:])
	if randomization != nil {
		h.Write(randomization)
	}
	prefix := dom2Prefix(opts)
	h.Write(prefix)
	h.Write(message)
	var nonceDigest [64]byte
	h.Sum(nonceDigest[:0])

	r := scalar.FromBytesModOrderWide(&nonceDigest)

	R := new(edwards25519.Point).ScalarBaseMult(&r)
	var Renc edwards25519.CompressedEdwardsY
	Renc.Compress(R)

	h2 := sha512.New()
	h2.Write(prefix)
	h2.Write(Renc[:])
	h2.Write(sk.pub[:])
	h2.Write(message)
	var challengeDigest [64]byte
	h2.Sum(challengeDigest[:0])
	k := scalar.FromBytesModOrderWide(&challengeDigest)

	var ka, s scalar.Scalar
	ka.Mul(&k, &sk.a)
	s.Add(&r, &ka)
	sBytes := s.Bytes()

	var sig [SignatureSize]byte
	copy(sig[:32], Renc[:])
	copy(sig[32:], sBytes[:])
	return sig, nil
}

func dom2Prefix(opts *Options) []byte {
	if !opts.needsDom2() {
		return nil
	}
	return dom2(opts.phflag(), opts.context())
}

// DecodeVerifyingKey parses the 32-byte compressed encoding of an
// Ed25519 public key. It does not, by itself, reject small-order keys;
// that check is strict verification's job, so a key that turns out to
// be small-order can still be decoded and inspected.
func DecodeVerifyingKey(encoded [PublicKeySize]byte) (*VerifyingKey, error) {
	vk := &VerifyingKey{}
	copy(vk.encoded[:], encoded[:])
	_, ok := vk.point.Decompress(&vk.encoded)
	if ok != 1 {
		return nil, ErrInvalidEncoding
	}
	vk.valid = true
	return vk, nil
}

// Bytes returns the 32-byte compressed encoding of vk.
func (vk *VerifyingKey) Bytes() [PublicKeySize]byte {
	var out [PublicKeySize]byte
	copy(out[:], vk.encoded[:])
	return out
}

// Equal reports whether vk and other hold byte-identical encodings.
func (vk *VerifyingKey) Equal(other *VerifyingKey) bool {
	return subtle.ConstantTimeCompare(vk.encoded[:], other.encoded[:]) == 1
}

// Verify checks sig as a plain Ed25519 signature of message under vk,
// using the default strict rules (reject small-order vk, reject
// s >= ell, non-cofactored equation). It is equivalent to
// VerifyWithOptions(vk, message, sig, nil).
func (vk *VerifyingKey) Verify(message []byte, sig [SignatureSize]byte) error {
	return vk.VerifyWithOptions(message, sig, nil)
}

// VerifyWithOptions checks sig as an Ed25519/Ed25519ctx/Ed25519ph
// signature of message under vk, per opts, applying any VerifyOptions
// given. Not constant-time: public keys, signatures, and the resulting
// accept/reject decision are all public information.
func (vk *VerifyingKey) VerifyWithOptions(message []byte, sig [SignatureSize]byte, opts *Options, verifyOpts ...VerifyOption) error {
	if !vk.valid {
		return ErrInvalidEncoding
	}
	if len(opts.context()) > 255 {
		return ErrContextTooLong
	}

	cfg := &verifyConfig{}
	for _, o := range verifyOpts {
		o(cfg)
	}

	if !cfg.permissiveWeakKey && vk.point.IsSmallOrder() {
		return ErrWeakPublicKey
	}

	var Renc edwards25519.CompressedEdwardsY
	copy(Renc[:], sig[:32])
	var R edwards25519.Point
	if _, ok := R.Decompress(&Renc); ok != 1 {
		return ErrInvalidEncoding
	}

	var sBytes [32]byte
	copy(sBytes[:], sig[32:])
	s, ok := scalar.FromCanonicalBytes(&sBytes)
	if !ok {
		return ErrInvalidEncoding
	}

	prefix := dom2Prefix(opts)
	h := sha512.New()
	h.Write(prefix)
	h.Write(Renc[:])
	h.Write(vk.encoded[:])
	h.Write(message)
	var challengeDigest [64]byte
	h.Sum(challengeDigest[:0])
	k := scalar.FromBytesModOrderWide(&challengeDigest)

	var negK scalar.Scalar
	negK.Negate(&k)

	sB := edwards25519.VarTimeMultiScalarMult(
		[]*scalar.Scalar{&s, &negK},
		[]*edwards25519.Point{edwards25519.Generator(), &vk.point},
	)

	if !cfg.cofactored {
		if sB.Equal(&R) == 1 {
			return nil
		}
		return ErrSignatureMismatch
	}

	var diff edwards25519.Point
	diff.Sub(sB, &R)
	var cleared edwards25519.Point
	cleared.MulByCofactor(&diff)
	if cleared.IsIdentity() == 1 {
		return nil
	}
	return ErrSignatureMismatch
}
