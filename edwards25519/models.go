// Package edwards25519 implements the twisted Edwards curve
//
//	-x^2 + y^2 = 1 - (121665/121666)*x^2*y^2
//
// over GF(2^255-19), better known as the curve underlying Ed25519 and
// Curve25519 (via its Montgomery-form birational equivalent). It
// exposes the curve-model polymorphism the rest of this module's
// scalar-multiplication engines are built on: Completed, Projective,
// and the canonical extended-coordinate Point, plus the two cached
// "Niels" forms used on the addition side of the group law.
//
// Every exported operation here runs in constant time unless its name
// says "VarTime"; the scalar-multiplication engines in scalarmul.go
// and lookup.go are where that distinction actually matters for
// secret-dependent inputs.
package edwards25519

import "github.com/Beneficial-AI-Foundation/libsignal-focus-dalek-lite/internal/field"

// curveD is the Edwards curve equation constant d = -121665/121666 mod p.
var curveD = &field.Element{929955233495203, 466365720129213,
	1662059464998953, 2033849074728123, 1442794654840575}

// curveD2 is 2*d mod p, used throughout the HWCD addition/doubling formulas.
var curveD2 = &field.Element{1859910466990425, 932731440258426,
	1072319116312658, 1815898335770999, 633789495995903}

// Completed holds a point as (X:Y:Z:T) in the "P1xP1" model that the
// HWCD addition and doubling formulas produce directly, before the
// extra multiplication needed to land in either Projective or Point
// (extended) coordinates.
type Completed struct {
	X, Y, Z, T field.Element
}

// Projective holds a point as (X:Y:Z) with x = X/Z, y = Y/Z. Cheaper to
// double than Point, at the cost of not supporting the extended-coordinate
// addition formula directly.
type Projective struct {
	X, Y, Z field.Element
}

// Point holds a point in extended coordinates (X:Y:Z:T), with
// x = X/Z, y = Y/Z, x*y = T/Z. This is the representation used for
// the group's public API (Add, Double, scalar multiplication).
type Point struct {
	X, Y, Z, T field.Element
}

// ProjectiveNiels holds the precomputed combination of a point's
// coordinates used as the second operand of point addition:
// (Y+X, Y-X, Z, 2d*T). Building one of these once and reusing it
// across several additions (e.g. a table of small multiples) saves
// repeating that combination work every time.
type ProjectiveNiels struct {
	YplusX, YminusX, Z, T2d field.Element
}

// AffineNiels is the same precomputed combination as ProjectiveNiels,
// but for a point already normalized to Z=1 (affine), dropping the Z
// field entirely. Used for the fixed-base (basepoint) table, where the
// one-time cost of normalizing is paid at table-build time rather than
// once per addition.
type AffineNiels struct {
	YplusX, YminusX, T2d field.Element
}

// Identity-valued constructors.

// SetIdentity sets v to the identity element (0:1:1:0) and returns v.
func (v *Point) SetIdentity() *Point {
	v.X.Zero()
	v.Y.One()
	v.Z.One()
	v.T.Zero()
	return v
}

// SetIdentity sets v to the identity element (0:1:1) and returns v.
func (v *Projective) SetIdentity() *Projective {
	v.X.Zero()
	v.Y.One()
	v.Z.One()
	return v
}

// Set sets v = u and returns v.
func (v *Point) Set(u *Point) *Point {
	*v = *u
	return v
}

// Conversions between models.

// FromCompleted sets v from the completed point p, via (X:Y:Z) =
// (X1*T1 : Y1*Z1 : Z1*T1).
func (v *Projective) FromCompleted(p *Completed) *Projective {
	v.X.Mul(&p.X, &p.T)
	v.Y.Mul(&p.Y, &p.Z)
	v.Z.Mul(&p.Z, &p.T)
	return v
}

// FromPoint sets v to the projective form of p, dropping T.
func (v *Projective) FromPoint(p *Point) *Projective {
	v.X.Set(&p.X)
	v.Y.Set(&p.Y)
	v.Z.Set(&p.Z)
	return v
}

// FromCompleted sets v from the completed point p.
func (v *Point) FromCompleted(p *Completed) *Point {
	v.X.Mul(&p.X, &p.T)
	v.Y.Mul(&p.Y, &p.Z)
	v.Z.Mul(&p.Z, &p.T)
	v.T.Mul(&p.X, &p.Y)
	return v
}

// FromProjective sets v to the extended-coordinate form of p, via
// (X:Y:Z:T) = (X1*Z1 : Y1*Z1 : Z1^2 : X1*Y1).
func (v *Point) FromProjective(p *Projective) *Point {
	v.X.Mul(&p.X, &p.Z)
	v.Y.Mul(&p.Y, &p.Z)
	v.Z.Square(&p.Z)
	v.T.Mul(&p.X, &p.Y)
	return v
}

// FromPoint precomputes the ProjectiveNiels form of p.
func (v *ProjectiveNiels) FromPoint(p *Point) *ProjectiveNiels {
	v.YplusX.Add(&p.Y, &p.X)
	v.YminusX.Sub(&p.Y, &p.X)
	v.Z.Set(&p.Z)
	v.T2d.Mul(&p.T, curveD2)
	return v
}

// FromPoint precomputes the AffineNiels form of p, normalizing p's Z
// coordinate to 1 in the process. Pays for a field inversion, so this
// is meant to be called at table-build time, not per addition.
func (v *AffineNiels) FromPoint(p *Point) *AffineNiels {
	v.YplusX.Add(&p.Y, &p.X)
	v.YminusX.Sub(&p.Y, &p.X)
	v.T2d.Mul(&p.T, curveD2)

	var invZ field.Element
	invZ.Invert(&p.Z)
	v.YplusX.Mul(&v.YplusX, &invZ)
	v.YminusX.Mul(&v.YminusX, &invZ)
	v.T2d.Mul(&v.T2d, &invZ)
	return v
}

// Addition and subtraction.

// Add sets v = p+q and returns v.
func (v *Point) Add(p, q *Point) *Point {
	var result Completed
	var qn ProjectiveNiels
	qn.FromPoint(q)
	result.Add(p, &qn)
	v.FromCompleted(&result)
	return v
}

// Sub sets v = p-q and returns v.
func (v *Point) Sub(p, q *Point) *Point {
	var result Completed
	var qn ProjectiveNiels
	qn.FromPoint(q)
	result.Sub(p, &qn)
	v.FromCompleted(&result)
	return v
}

// Add implements "add-2008-hwcd-3": v = p+q, with q precomputed into
// ProjectiveNiels form.
func (v *Completed) Add(p *Point, q *ProjectiveNiels) *Completed {
	var yPlusX, yMinusX, pp, mm, tt2d, zz2 field.Element

	yPlusX.Add(&p.Y, &p.X)
	yMinusX.Sub(&p.Y, &p.X)

	pp.Mul(&yPlusX, &q.YplusX)
	mm.Mul(&yMinusX, &q.YminusX)
	tt2d.Mul(&p.T, &q.T2d)
	zz2.Mul(&p.Z, &q.Z)
	zz2.Add(&zz2, &zz2)

	v.X.Sub(&pp, &mm)
	v.Y.Add(&pp, &mm)
	v.Z.Add(&zz2, &tt2d)
	v.T.Sub(&zz2, &tt2d)
	return v
}

// Sub is Add with q negated (the curve negation swaps YplusX/YminusX
// and flips the sign of T2d, exactly the same sign flips folded
// directly into this formula).
func (v *Completed) Sub(p *Point, q *ProjectiveNiels) *Completed {
	var yPlusX, yMinusX, pp, mm, tt2d, zz2 field.Element

	yPlusX.Add(&p.Y, &p.X)
	yMinusX.Sub(&p.Y, &p.X)

	pp.Mul(&yPlusX, &q.YminusX)
	mm.Mul(&yMinusX, &q.YplusX)
	tt2d.Mul(&p.T, &q.T2d)
	zz2.Mul(&p.Z, &q.Z)
	zz2.Add(&zz2, &zz2)

	v.X.Sub(&pp, &mm)
	v.Y.Add(&pp, &mm)
	v.Z.Sub(&zz2, &tt2d)
	v.T.Add(&zz2, &tt2d)
	return v
}

// AddAffine is Add with q precomputed into AffineNiels form (Z=1).
func (v *Completed) AddAffine(p *Point, q *AffineNiels) *Completed {
	var yPlusX, yMinusX, pp, mm, tt2d, z2 field.Element

	yPlusX.Add(&p.Y, &p.X)
	yMinusX.Sub(&p.Y, &p.X)

	pp.Mul(&yPlusX, &q.YplusX)
	mm.Mul(&yMinusX, &q.YminusX)
	tt2d.Mul(&p.T, &q.T2d)
	z2.Add(&p.Z, &p.Z)

	v.X.Sub(&pp, &mm)
	v.Y.Add(&pp, &mm)
	v.Z.Add(&z2, &tt2d)
	v.T.Sub(&z2, &tt2d)
	return v
}

// SubAffine is Sub with q precomputed into AffineNiels form.
func (v *Completed) SubAffine(p *Point, q *AffineNiels) *Completed {
	var yPlusX, yMinusX, pp, mm, tt2d, z2 field.Element

	yPlusX.Add(&p.Y, &p.X)
	yMinusX.Sub(&p.Y, &p.X)

	pp.Mul(&yPlusX, &q.YminusX)
	mm.Mul(&yMinusX, &q.YplusX)
	tt2d.Mul(&p.T, &q.T2d)
	z2.Add(&p.Z, &p.Z)

	v.X.Sub(&pp, &mm)
	v.Y.Add(&pp, &mm)
	v.Z.Sub(&z2, &tt2d)
	v.T.Add(&z2, &tt2d)
	return v
}

// Double sets v = 2*p (dedicated doubling formula, operating on the
// Projective model since doubling never needs T) and returns v.
func (v *Completed) Double(p *Projective) *Completed {
	var xx, yy, zz2, xPlusYsq field.Element

	xx.Square(&p.X)
	yy.Square(&p.Y)
	zz2.Square(&p.Z)
	zz2.Add(&zz2, &zz2)
	xPlusYsq.Add(&p.X, &p.Y)
	xPlusYsq.Square(&xPlusYsq)

	v.Y.Add(&yy, &xx)
	v.Z.Sub(&yy, &xx)
	v.X.Sub(&xPlusYsq, &v.Y)
	v.T.Sub(&zz2, &v.Z)
	return v
}

// Double sets v = 2*p and returns v.
func (v *Point) Double(p *Point) *Point {
	var pp Projective
	pp.FromPoint(p)
	var c Completed
	c.Double(&pp)
	v.FromCompleted(&c)
	return v
}

// Negate sets v = -p and returns v.
func (v *Point) Negate(p *Point) *Point {
	v.X.Negate(&p.X)
	v.Y.Set(&p.Y)
	v.Z.Set(&p.Z)
	v.T.Negate(&p.T)
	return v
}

// Equal reports, in constant time, whether v and u represent the same
// curve point: it
// cross-multiplies rather than normalizing either side, so it works
// regardless of each point's Z.
func (v *Point) Equal(u *Point) int {
	var t1, t2, t3, t4 field.Element
	t1.Mul(&v.X, &u.Z)
	t2.Mul(&u.X, &v.Z)
	t3.Mul(&v.Y, &u.Z)
	t4.Mul(&u.Y, &v.Z)
	return t1.Equal(&t2) & t3.Equal(&t4)
}

// IsIdentity returns 1 if v is the identity element and 0 otherwise.
func (v *Point) IsIdentity() int {
	var id Point
	id.SetIdentity()
	return v.Equal(&id)
}

// Constant-time selection.

// ConditionalSelect sets v to a if cond == 1, or to b if cond == 0.
func (v *ProjectiveNiels) ConditionalSelect(a, b *ProjectiveNiels, cond uint64) *ProjectiveNiels {
	v.YplusX.ConditionalSelect(&a.YplusX, &b.YplusX, cond)
	v.YminusX.ConditionalSelect(&a.YminusX, &b.YminusX, cond)
	v.Z.ConditionalSelect(&a.Z, &b.Z, cond)
	v.T2d.ConditionalSelect(&a.T2d, &b.T2d, cond)
	return v
}

// ConditionalSelect sets v to a if cond == 1, or to b if cond == 0.
func (v *AffineNiels) ConditionalSelect(a, b *AffineNiels, cond uint64) *AffineNiels {
	v.YplusX.ConditionalSelect(&a.YplusX, &b.YplusX, cond)
	v.YminusX.ConditionalSelect(&a.YminusX, &b.YminusX, cond)
	v.T2d.ConditionalSelect(&a.T2d, &b.T2d, cond)
	return v
}

// ConditionalNegate negates v if cond == 1, leaving it unchanged if
// cond == 0: swapping YplusX/YminusX and flipping the sign of T2d is
// exactly the curve negation for this precomputed form.
func (v *ProjectiveNiels) ConditionalNegate(cond uint64) *ProjectiveNiels {
	field.ConditionalSwap(&v.YplusX, &v.YminusX, cond)
	var negT2d field.Element
	negT2d.Negate(&v.T2d)
	v.T2d.ConditionalSelect(&negT2d, &v.T2d, cond)
	return v
}

// ConditionalNegate negates v if cond == 1, leaving it unchanged if
// cond == 0.
func (v *AffineNiels) ConditionalNegate(cond uint64) *AffineNiels {
	field.ConditionalSwap(&v.YplusX, &v.YminusX, cond)
	var negT2d field.Element
	negT2d.Negate(&v.T2d)
	v.T2d.ConditionalSelect(&negT2d, &v.T2d, cond)
	return v
}
