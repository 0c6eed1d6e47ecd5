package ed25519

import (
	cryptorand "crypto/rand"
	"crypto/sha512"
	"io"

	"github.com/Beneficial-AI-Foundation/libsignal-focus-dalek-lite/edwards25519"
	"github.com/Beneficial-AI-Foundation/libsignal-focus-dalek-lite/internal/scalar"
)

// VerifyBatch checks n (verifyingKey, message, signature) triples at
// once by folding them into a single multi-scalar-multiplication
// equation with random 128-bit coefficients z_i:
//
//	(sum z_i*s_i)*B - sum z_i*k_i*A_i - sum z_i*R_i == identity
//
// A batch of all-valid signatures always satisfies this; a batch
// containing even one invalid signature fails it with overwhelming
// probability (1 - 1/2^128 per forged term), which is what lets this
// combine n individual equations into one VarTimeMultiScalarMult call
// instead of n separate ones. If the batch fails, VerifyBatch does not
// identify which signature was bad — ErrBatchFailure is returned, and
// a caller that needs to know falls back to verifying individually. If
// rand is nil, crypto/rand.Reader is used.
func VerifyBatch(rand io.Reader, keys []*VerifyingKey, messages [][]byte, sigs [][SignatureSize]byte) error {
	n := len(keys)
	if len(messages) != n || len(sigs) != n {
		panic("ed25519: VerifyBatch requires equal-length inputs")
	}
	if n == 0 {
		return nil
	}
	if rand == nil {
		rand = cryptorand.Reader
	}

	for _, vk := range keys {
		if !vk.valid {
			return ErrInvalidEncoding
		}
		if vk.point.IsSmallOrder() {
			return ErrWeakPublicKey
		}
	}

	Rs := make([]*edwards25519.Point, n)
	ss := make([]*scalar.Scalar, n)
	ks := make([]*scalar.Scalar, n)
	for i := 0; i < n; i++ {
		var Renc edwards25519.CompressedEdwardsY
		copy(Renc[:], sigs[i][:32])
		R := new(edwards25519.Point)
		if _, ok := R.Decompress(&Renc); ok != 1 {
			return ErrInvalidEncoding
		}
		Rs[i] = R

		var sBytes [32]byte
		copy(sBytes[:], sigs[i][32:])
		s, ok := scalar.FromCanonicalBytes(&sBytes)
		if !ok {
			return ErrInvalidEncoding
		}
		si := s
		ss[i] = &si

		h := sha512.New()
		h.Write(Renc[:])
		h.Write(keys[i].encoded[:])
		h.Write(messages[i])
		var challengeDigest [64]byte
		h.Sum(challengeDigest[:0])
		k := scalar.FromBytesModOrderWide(&challengeDigest)
		ks[i] = &k
	}

	zs := make([]*scalar.Scalar, n)
	for i := 0; i < n; i++ {
		var z128 [32]byte
		if _, err := io.ReadFull(rand, z128[:16]); err != nil {
			return err
		}
		z := scalar.FromBytesModOrder(&z128)
		zs[i] = &z
	}

	var sSum scalar.Scalar
	sSum.Zero()
	for i := 0; i < n; i++ {
		var term scalar.Scalar
		term.Mul(zs[i], ss[i])
		sSum.Add(&sSum, &term)
	}

	scalars := make([]*scalar.Scalar, 0, 2*n+1)
	points := make([]*edwards25519.Point, 0, 2*n+1)
	scalars = append(scalars, &sSum)
	points = append(points, edwards25519.Generator())

	for i := 0; i < n; i++ {
		var negZK scalar.Scalar
		negZK.Mul(zs[i], ks[i])
		negZK.Negate(&negZK)
		scalars = append(scalars, &negZK)
		points = append(points, &keys[i].point)
	}
	for i := 0; i < n; i++ {
		var negZ scalar.Scalar
		negZ.Negate(zs[i])
		scalars = append(scalars, &negZ)
		points = append(points, Rs[i])
	}

	result := edwards25519.VarTimeMultiScalarMult(scalars, points)
	if result.IsIdentity() == 1 {
		return nil
	}
	return ErrBatchFailure
}
