package edwards25519

import (
	"crypto/subtle"

	"github.com/Beneficial-AI-Foundation/libsignal-focus-dalek-lite/internal/field"
)

// CompressedEdwardsY is the 32-byte compressed encoding of a curve
// point: the canonical little-endian encoding of its y-coordinate,
// with the sign of its x-coordinate folded into the otherwise-unused
// top bit of the last byte.
type CompressedEdwardsY [32]byte

// Compress sets c to the compressed encoding of p and returns c.
func (c *CompressedEdwardsY) Compress(p *Point) *CompressedEdwardsY {
	var x, y, zInv field.Element
	zInv.Invert(&p.Z)
	x.Mul(&p.X, &zInv)
	y.Mul(&p.Y, &zInv)

	*c = CompressedEdwardsY(y.Bytes())
	c[31] ^= byte(x.IsNegative()) << 7
	return c
}

// Decompress sets p to the point encoded by c and returns p, and 1 if
// c was a valid, canonical encoding; on invalid input it sets p to the
// identity and returns 0. Recovers x from y via the curve equation
// x^2 = (y^2-1)/(d*y^2+1), rejecting non-canonical y encodings and
// encodings with no corresponding curve point.
func (p *Point) Decompress(c *CompressedEdwardsY) (*Point, int) {
	var cb [32]byte
	copy(cb[:], c[:])
	signBit := cb[31] >> 7
	cb[31] &= 0x7f

	if field.IsCanonical(&cb) == 0 {
		p.SetIdentity()
		return p, 0
	}

	var y field.Element
	y.SetBytes(&cb)

	var one field.Element
	one.One()

	var yy, u, v field.Element
	yy.Square(&y)
	u.Sub(&yy, &one)   // u = y^2 - 1
	v.Mul(curveD, &yy) // v = d*y^2
	v.Add(&v, &one)    // v = d*y^2 + 1

	var x field.Element
	_, wasSquare := x.SqrtRatioI(&u, &v)
	if wasSquare == 0 {
		p.SetIdentity()
		return p, 0
	}

	x.ConditionalNegate(&x, uint64(x.IsNegative())^uint64(signBit))

	// Reject the non-canonical encoding of the identity-adjacent point
	// x=0 with the sign bit set (there is no -0 on this curve).
	if x.IsZero() == 1 && signBit == 1 {
		p.SetIdentity()
		return p, 0
	}

	p.X.Set(&x)
	p.Y.Set(&y)
	p.Z.One()
	p.T.Mul(&x, &y)
	return p, 1
}

// Equal reports whether c and d are byte-for-byte the same encoding,
// in constant time.
func (c *CompressedEdwardsY) Equal(d *CompressedEdwardsY) int {
	return subtle.ConstantTimeCompare(c[:], d[:])
}

// Bytes returns the 32-byte encoding held by c.
func (c *CompressedEdwardsY) Bytes() []byte {
	return c[:]
}
