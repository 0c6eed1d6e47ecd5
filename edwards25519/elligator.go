package edwards25519

import (
	"crypto/sha512"

	"github.com/Beneficial-AI-Foundation/libsignal-focus-dalek-lite/internal/field"
)

// montgomeryA is the Montgomery-form curve coefficient A=486662 for
// the birational equivalent of this package's twisted Edwards curve.
var montgomeryA = &field.Element{486662, 0, 0, 0, 0}

// MapToCurve implements the Elligator2 map from a field element to a
// curve point: it lands on the Montgomery-form curve v^2 = u^3+A*u^2+u
// via the standard non-square-2 construction, lifts the result to
// this package's twisted Edwards curve through the birational map
// y=(u-1)/(u+1) (the Edwards curve equation depends only on y^2, so
// either sign of the Montgomery v-coordinate lifts to a valid Edwards
// point; MapToCurve never needs to track v at all), and clears the
// cofactor so every output lands in the prime-order subgroup.
//
// Every nonzero field element maps to some point (the construction
// never fails); the one genuine edge case, a Montgomery u of exactly
// -1, occurs with probability 2^-255 and is not special-cased.
func MapToCurve(r *field.Element) *Point {
	var one field.Element
	one.One()

	var r2, d1, invD1, d field.Element
	r2.Square(r)
	d1.Add(&r2, &r2)
	d1.Add(&d1, &one) // 1 + 2r^2
	invD1.Invert(&d1)
	d.Negate(montgomeryA)
	d.Mul(&d, &invD1) // d = -A/(1+2r^2)

	var dSq, aD, eps field.Element
	dSq.Square(&d)
	aD.Mul(montgomeryA, &d)
	eps.Add(&dSq, &aD)
	eps.Add(&eps, &one)
	eps.Mul(&d, &eps) // eps = d^3 + A*d^2 + d

	var chk field.Element
	_, epsIsSquare := chk.SqrtRatioI(&eps, &one)

	var u, aTerm field.Element
	aTerm.ConditionalSelect(&field.Element{}, montgomeryA, uint64(epsIsSquare))
	u.Add(&d, &aTerm)
	u.ConditionalNegate(&u, uint64(1-epsIsSquare))

	var uMinus1, uPlus1, invUPlus1, y field.Element
	uMinus1.Sub(&u, &one)
	uPlus1.Add(&u, &one)
	invUPlus1.Invert(&uPlus1)
	y.Mul(&uMinus1, &invUPlus1)

	var yy, xu, xv, x field.Element
	yy.Square(&y)
	xu.Sub(&yy, &one)
	xv.Mul(curveD, &yy)
	xv.Add(&xv, &one)
	x.SqrtRatioI(&xu, &xv)

	var lifted, result Point
	lifted.X.Set(&x)
	lifted.Y.Set(&y)
	lifted.Z.One()
	lifted.T.Mul(&x, &y)

	result.MulByCofactor(&lifted)
	return &result
}

// HashToCurve deterministically maps an arbitrary-length input to a
// curve point in the prime-order subgroup: it hashes input with
// SHA-512, reduces the low 32 bytes into a field element, and runs
// MapToCurve.
func HashToCurve(input []byte) *Point {
	h := sha512.Sum512(input)
	var b [32]byte
	copy(b[:], h[:32])

	var r field.Element
	r.SetBytes(&b)
	return MapToCurve(&r)
}
