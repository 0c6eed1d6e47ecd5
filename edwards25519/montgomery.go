package edwards25519

import (
	"crypto/subtle"

	"github.com/Beneficial-AI-Foundation/libsignal-focus-dalek-lite/internal/field"
	"github.com/Beneficial-AI-Foundation/libsignal-focus-dalek-lite/internal/scalar"
)

// MontgomeryPoint is the 32-byte little-endian encoding of a
// Montgomery-form curve point's u-coordinate, the wire format used by
// X25519 Diffie-Hellman.
type MontgomeryPoint [32]byte

// montgomeryA24 is (486662-2)/4 mod p, the Montgomery curve
// coefficient folded into the ladder step the way RFC 7748's
// pseudocode does.
var montgomeryA24 = &field.Element{121665, 0, 0, 0, 0}

// X25519 computes the X25519 Diffie-Hellman function: scalar*point,
// returning the resulting u-coordinate. The scalar is clamped per RFC
// 7748 before use (the caller need not pre-clamp a private key). Runs
// the Montgomery ladder down all 255 significant bits in constant
// time with respect to both scalar and point, using field.ConditionalSwap
// at each step rather than branching on the scalar's bits.
//
// X25519 never rejects a degenerate (low-order) input; it always
// returns a result, silently the all-zero point for some such inputs,
// matching the function as specified rather than the stricter variants
// some protocols layer on top. Callers that need to reject those cases
// should check the result with IsZero, or reject known low-order
// points (and the unclamped scalar out of range) before calling.
func X25519(privateKey *[32]byte, point *MontgomeryPoint) MontgomeryPoint {
	clamped := scalar.ClampInteger(*privateKey)

	var x1 field.Element
	var ub [32]byte
	copy(ub[:], point[:])
	x1.SetBytes(&ub)

	var x2, z2 field.Element
	x2.One()
	z2.Zero()
	var x3, z3 field.Element
	x3.Set(&x1)
	z3.One()

	swap := uint64(0)
	for pos := 254; pos >= 0; pos-- {
		bit := uint64((clamped[pos/8] >> uint(pos%8)) & 1)
		swap ^= bit
		field.ConditionalSwap(&x2, &x3, swap)
		field.ConditionalSwap(&z2, &z3, swap)
		swap = bit

		var a, aa, b, bb, e, c, d, da, cb field.Element
		a.Add(&x2, &z2)
		aa.Square(&a)
		b.Sub(&x2, &z2)
		bb.Square(&b)
		e.Sub(&aa, &bb)
		c.Add(&x3, &z3)
		d.Sub(&x3, &z3)
		da.Mul(&d, &a)
		cb.Mul(&c, &b)

		x3.Add(&da, &cb)
		x3.Square(&x3)
		z3.Sub(&da, &cb)
		z3.Square(&z3)
		z3.Mul(&z3, &x1)

		x2.Mul(&aa, &bb)
		z2.Mul(&e, montgomeryA24)
		z2.Add(&z2, &aa)
		z2.Mul(&z2, &e)
	}
	field.ConditionalSwap(&x2, &x3, swap)
	field.ConditionalSwap(&z2, &z3, swap)

	var invZ2, u field.Element
	invZ2.Invert(&z2)
	u.Mul(&x2, &invZ2)

	return MontgomeryPoint(u.Bytes())
}

// IsZero reports whether p is the all-zero encoding, the output
// X25519 produces for a handful of degenerate (low-order or otherwise
// contributory-behavior-violating) inputs.
func (p *MontgomeryPoint) IsZero() bool {
	var zero [32]byte
	return subtle.ConstantTimeCompare(p[:], zero[:]) == 1
}
