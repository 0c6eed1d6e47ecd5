// Package ristretto255 implements the Ristretto group: a prime-order
// quotient of the edwards25519 curve that removes cofactor artifacts
// (and the four-way sign/torsion ambiguity they cause) at the encoding
// layer, so every group element has exactly one canonical 32-byte
// representation regardless of which of its curve-point cosets a
// computation happens to land on.
package ristretto255

import (
	"crypto/sha512"

	"golang.org/x/crypto/sha3"

	"github.com/Beneficial-AI-Foundation/libsignal-focus-dalek-lite/edwards25519"
	"github.com/Beneficial-AI-Foundation/libsignal-focus-dalek-lite/internal/field"
	"github.com/Beneficial-AI-Foundation/libsignal-focus-dalek-lite/internal/scalar"
)

// sqrtM1 and invsqrtAMinusD are the two curve constants the Ristretto
// encoding needs beyond what edwards25519 already exposes. Rather than
// transcribe their published hex literals, both are derived at package
// init time from the same SqrtRatioI primitive Decompress and MapToCurve
// already rely on: sqrtM1 = sqrt(-1), invsqrtAMinusD = 1/sqrt(a-d) with
// a=-1. Both square roots are known to exist (-1 is a QR mod p, and the
// curve's a-d is chosen to be a QR by construction), so wasSquare is
// always 1 here; deriving them this way means their correctness rests on
// SqrtRatioI alone, not on an independently-transcribed constant.
var (
	sqrtM1         field.Element
	invsqrtAMinusD field.Element
	curveDForRistr field.Element
)

func init() {
	var minusOne, one field.Element
	one.One()
	minusOne.Negate(&one)
	sqrtM1.SqrtRatioI(&minusOne, &one)

	// a-d = -1-d. curveD is not exported by edwards25519, so recover d
	// from the curve equation via a decompressed basepoint-adjacent
	// value is unnecessary: d is recomputed here from its own defining
	// ratio -121665/121666, the same literal edwards25519 uses.
	var d, num, den field.Element
	num = field.Element{121665, 0, 0, 0, 0}
	den = field.Element{121666, 0, 0, 0, 0}
	var invDen field.Element
	invDen.Invert(&den)
	d.Mul(&num, &invDen)
	d.Negate(&d)
	curveDForRistr.Set(&d)

	var aMinusD field.Element
	aMinusD.Sub(&minusOne, &d)
	invsqrtAMinusD.SqrtRatioI(&one, &aMinusD)
}

// Element is a Ristretto group element, represented internally as an
// edwards25519 extended-coordinate point standing in for its entire
// four-point coset.
type Element struct {
	p edwards25519.Point
}

// CompressedRistretto is the 32-byte canonical encoding of an Element:
// a little-endian field element s with its least-significant bit
// (IsNegative's sign convention) forced to 0.
type CompressedRistretto [32]byte

// Identity sets e to the group identity and returns e.
func (e *Element) Identity() *Element {
	e.p.SetIdentity()
	return e
}

// Add sets e = a+b and returns e.
func (e *Element) Add(a, b *Element) *Element {
	e.p.Add(&a.p, &b.p)
	return e
}

// Sub sets e = a-b and returns e.
func (e *Element) Sub(a, b *Element) *Element {
	e.p.Sub(&a.p, &b.p)
	return e
}

// Negate sets e = -a and returns e.
func (e *Element) Negate(a *Element) *Element {
	e.p.Negate(&a.p)
	return e
}

// ScalarMult sets e = s*a and returns e, in constant time with respect
// to s.
func (e *Element) ScalarMult(s *scalar.Scalar, a *Element) *Element {
	e.p.ScalarMult(s, &a.p)
	return e
}

// ScalarBaseMult sets e = s*B, where B is the Ristretto group's
// standard basepoint (the image of edwards25519's basepoint), and
// returns e.
func (e *Element) ScalarBaseMult(s *scalar.Scalar) *Element {
	e.p.ScalarBaseMult(s)
	return e
}

// Equal reports whether e and f represent the same Ristretto element,
// i.e. whether their internal Edwards representatives lie in the same
// coset. Representatives of the same coset differ by the sign of both
// coordinates or by the swap (x, y) -> (i*y, i*x), so the textbook
// coordinate comparison does not apply; instead this cross-multiplies,
// X1*Y2 == X2*Y1 (sign-flipped representatives) or Y1*Y2 == X1*X2
// (swapped representatives), which holds for any two representatives
// of the same coset and fails otherwise. Runs in constant time.
func (e *Element) Equal(f *Element) int {
	var lhs, rhs, yy, xx field.Element
	lhs.Mul(&e.p.X, &f.p.Y)
	rhs.Mul(&f.p.X, &e.p.Y)
	yy.Mul(&e.p.Y, &f.p.Y)
	xx.Mul(&e.p.X, &f.p.X)
	return lhs.Equal(&rhs) | yy.Equal(&xx)
}

// Encode sets c to the canonical 32-byte encoding of e and returns c.
// Follows the IETF ristretto255 encoding procedure: it is not simply
// "compress the underlying Edwards point" (that would leak which of
// the coset's four representatives e happens to hold); the extra
// enchanted_denominator/rotate machinery below normalizes away that
// choice so any representative of the same coset encodes identically.
func (e *Element) Encode(c *CompressedRistretto) *CompressedRistretto {
	x0, y0, z0, t0 := &e.p.X, &e.p.Y, &e.p.Z, &e.p.T

	var one field.Element
	one.One()

	var u1, u2, zmy, zpy field.Element
	zpy.Add(z0, y0)
	zmy.Sub(z0, y0)
	u1.Mul(&zpy, &zmy)
	u2.Mul(x0, y0)

	var u2sq field.Element
	u2sq.Square(&u2)

	var invsqrt, den1u1u2sq field.Element
	den1u1u2sq.Mul(&u1, &u2sq)
	invsqrt.SqrtRatioI(&one, &den1u1u2sq)

	var den1, den2 field.Element
	den1.Mul(&invsqrt, &u1)
	den2.Mul(&invsqrt, &u2)

	var zInv field.Element
	zInv.Mul(&den1, &den2)
	zInv.Mul(&zInv, t0)

	var ix0, iy0 field.Element
	ix0.Mul(x0, &sqrtM1)
	iy0.Mul(y0, &sqrtM1)

	var enchantedDenominator field.Element
	enchantedDenominator.Mul(&den1, &invsqrtAMinusD)

	var tZinv field.Element
	tZinv.Mul(t0, &zInv)
	rotate := tZinv.IsNegative()

	var x, y, denInv field.Element
	x.ConditionalSelect(&iy0, x0, uint64(rotate))
	y.ConditionalSelect(&ix0, y0, uint64(rotate))
	denInv.ConditionalSelect(&enchantedDenominator, &den2, uint64(rotate))

	var xZinv field.Element
	xZinv.Mul(&x, &zInv)
	y.ConditionalNegate(&y, uint64(xZinv.IsNegative()))

	var s, zMinusY field.Element
	zMinusY.Sub(z0, &y)
	s.Mul(&denInv, &zMinusY)
	s.Absolute(&s)

	*c = CompressedRistretto(s.Bytes())
	return c
}

// Decode sets e to the element encoded by c and returns e, and 1 if c
// was a valid canonical Ristretto encoding; on invalid input it sets e
// to the identity and returns 0. All-zero input is the
// canonical encoding of the identity and decodes successfully.
func (e *Element) Decode(c *CompressedRistretto) (*Element, int) {
	var sb [32]byte
	copy(sb[:], c[:])

	if field.IsCanonical(&sb) == 0 {
		e.Identity()
		return e, 0
	}

	var s field.Element
	s.SetBytes(&sb)
	if s.IsNegative() == 1 {
		e.Identity()
		return e, 0
	}

	var one field.Element
	one.One()

	var ss, u1, u2 field.Element
	ss.Square(&s)
	u1.Sub(&one, &ss)
	u2.Add(&one, &ss)

	var u2sq field.Element
	u2sq.Square(&u2)

	var u1sq, du1sq, v field.Element
	u1sq.Square(&u1)
	du1sq.Mul(&curveDForRistr, &u1sq)
	v.Add(&du1sq, &u2sq)
	v.Negate(&v)

	var denom field.Element
	denom.Mul(&v, &u2sq)
	invsqrt, wasSquare := new(field.Element).SqrtRatioI(&one, &denom)

	var denX, denY field.Element
	denX.Mul(invsqrt, &u2)
	denY.Mul(invsqrt, &denX)
	denY.Mul(&denY, &v)

	var x, y, t field.Element
	var twoS field.Element
	twoS.Add(&s, &s)
	x.Mul(&twoS, &denX)
	x.Absolute(&x)
	y.Mul(&u1, &denY)
	t.Mul(&x, &y)

	if wasSquare == 0 || t.IsNegative() == 1 || y.IsZero() == 1 {
		e.Identity()
		return e, 0
	}

	e.p.X.Set(&x)
	e.p.Y.Set(&y)
	e.p.Z.One()
	e.p.T.Set(&t)
	return e, 1
}

// HashToGroup maps a 64-byte uniformly random input (ordinarily a
// SHA-512 digest) to a uniformly random Element: split the input into
// two 32-byte halves, map each through Elligator, and add.
// edwards25519.MapToCurve already clears the cofactor internally, and
// cofactor clearing distributes over addition (8*(P1+P2) ==
// 8*P1+8*P2), so summing the two already-cleared images gives the same
// point as mapping both halves, adding, and clearing the cofactor once.
// The output does not match the ristretto255 draft's own MAP-based
// hash-to-group bit for bit; this reuses MapToCurve's already-exercised
// SqrtRatioI-based machinery instead of re-deriving the ristretto-draft
// quotient map's extra constants a second time.
func HashToGroup(input [64]byte) *Element {
	var b1, b2 [32]byte
	copy(b1[:], input[:32])
	copy(b2[:], input[32:])

	var r1, r2 field.Element
	r1.SetBytes(&b1)
	r2.SetBytes(&b2)

	p1 := edwards25519.MapToCurve(&r1)
	p2 := edwards25519.MapToCurve(&r2)

	var e Element
	e.p.Add(p1, p2)
	return &e
}

// HashToGroupSHA512 hashes input with SHA-512 and maps the digest to a
// group element via HashToGroup.
func HashToGroupSHA512(input []byte) *Element {
	h := sha512.Sum512(input)
	return HashToGroup(h)
}

// HashToGroupShake256 hashes input by squeezing 64 bytes from SHAKE256
// and maps the result to a group element via HashToGroup, an alternate
// digest for callers that configure hash-to-group with SHAKE256
// instead of SHA-512.
func HashToGroupShake256(input []byte) *Element {
	var out [64]byte
	sh := sha3.NewShake256()
	sh.Write(input)
	sh.Read(out[:])
	return HashToGroup(out)
}
