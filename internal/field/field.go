// Package field implements constant-time arithmetic over GF(2^255 - 19),
// the prime field underlying Curve25519, Ed25519, and Ristretto255.
//
// Storage format: five 64-bit limbs in base 2^51, little-endian order
// (limb 0 is least significant). Most operations accept and produce
// "loose" values whose limbs may run up to 2^54; reduce() and Bytes()
// bring a value back down to the canonical range (each limb < 2^51, the
// integer value < p). Unless otherwise noted, every method here runs in
// time and touches memory independent of the values of its operands, so
// that it is safe to call on secret field elements.
package field

import (
	"crypto/subtle"
	"math/bits"
)

// mask51 isolates the low 51 bits of a limb.
const mask51 = (uint64(1) << 51) - 1

// Element is a value in GF(2^255 - 19), held as five 51-bit limbs.
//
// The zero value of Element is the field element 0 and is ready to use.
type Element [5]uint64

var feZero = Element{0, 0, 0, 0, 0}
var feOne = Element{1, 0, 0, 0, 0}

// Zero sets v = 0 and returns v.
func (v *Element) Zero() *Element {
	*v = feZero
	return v
}

// One sets v = 1 and returns v.
func (v *Element) One() *Element {
	*v = feOne
	return v
}

// Set sets v = a and returns v.
func (v *Element) Set(a *Element) *Element {
	*v = *a
	return v
}

// Add sets v = a + b and returns v. Limbs of v may run up to 2^54.
func (v *Element) Add(a, b *Element) *Element {
	v[0] = a[0] + b[0]
	v[1] = a[1] + b[1]
	v[2] = a[2] + b[2]
	v[3] = a[3] + b[3]
	v[4] = a[4] + b[4]
	return v
}

// Sub sets v = a - b and returns v. A multiple of p is added to a's limbs
// first so that every limb subtraction stays non-negative.
func (v *Element) Sub(a, b *Element) *Element {
	// 16*p in the 5x51 representation, as limbs: the low limb carries the
	// "-19" term of p = 2^255-19, and every limb is scaled by 16 so that
	// every a[i]+16p[i] exceeds the largest possible b[i] (which is
	// bounded by 2^54).
	const lo = (uint64(1) << 55) - 19*16
	const hi = (uint64(1) << 55) - 16
	v[0] = (a[0] + lo) - b[0]
	v[1] = (a[1] + hi) - b[1]
	v[2] = (a[2] + hi) - b[2]
	v[3] = (a[3] + hi) - b[3]
	v[4] = (a[4] + hi) - b[4]
	return v.carryPropagate()
}

// Negate sets v = -a and returns v.
func (v *Element) Negate(a *Element) *Element {
	return v.Sub(feZero.shallowCopy(), a)
}

func (a Element) shallowCopy() *Element {
	b := a
	return &b
}

// carryPropagate reduces limbs so each is < 2^51, folding any final
// overflow back in multiplied by 19 (since 2^255 == 19 mod p).
func (v *Element) carryPropagate() *Element {
	c0 := v[0] >> 51
	c1 := v[1] >> 51
	c2 := v[2] >> 51
	c3 := v[3] >> 51
	c4 := v[4] >> 51

	v[0] = v[0]&mask51 + c4*19
	v[1] = v[1]&mask51 + c0
	v[2] = v[2]&mask51 + c1
	v[3] = v[3]&mask51 + c2
	v[4] = v[4]&mask51 + c3

	return v
}

// wide64 accumulates a sum of 64x64->128 products without losing the high
// half, the same role u128 plays in the reference Rust implementation.
type wide64 struct {
	lo, hi uint64
}

func (w *wide64) addMul(x, y uint64) {
	hi, lo := bits.Mul64(x, y)
	var c uint64
	w.lo, c = bits.Add64(w.lo, lo, 0)
	w.hi += hi + c
}

func (w *wide64) addWide(x uint64) {
	var c uint64
	w.lo, c = bits.Add64(w.lo, x, 0)
	w.hi += c
}

// lowAndCarry splits w into its low 51 bits and the remaining value
// shifted down by 51 bits (which fits comfortably back into a uint64 for
// every accumulator shape used in Mul/Square below).
func (w wide64) lowAndCarry() (low, carry uint64) {
	low = w.lo & mask51
	carry = w.hi<<13 | (w.lo >> 51)
	return
}

// Mul sets v = a * b and returns v.
//
// Because 2^255 == 19 (mod p), any cross term a[i]*b[j] with i+j >= 5
// contributes to output limb i+j-5, scaled by 19.
func (v *Element) Mul(a, b *Element) *Element {
	a0, a1, a2, a3, a4 := a[0], a[1], a[2], a[3], a[4]
	b0, b1, b2, b3, b4 := b[0], b[1], b[2], b[3], b[4]

	b1_19 := b1 * 19
	b2_19 := b2 * 19
	b3_19 := b3 * 19
	b4_19 := b4 * 19

	var c0, c1, c2, c3, c4 wide64

	c0.addMul(a0, b0)
	c0.addMul(a1, b4_19)
	c0.addMul(a2, b3_19)
	c0.addMul(a3, b2_19)
	c0.addMul(a4, b1_19)

	c1.addMul(a0, b1)
	c1.addMul(a1, b0)
	c1.addMul(a2, b4_19)
	c1.addMul(a3, b3_19)
	c1.addMul(a4, b2_19)

	c2.addMul(a0, b2)
	c2.addMul(a1, b1)
	c2.addMul(a2, b0)
	c2.addMul(a3, b4_19)
	c2.addMul(a4, b3_19)

	c3.addMul(a0, b3)
	c3.addMul(a1, b2)
	c3.addMul(a2, b1)
	c3.addMul(a3, b0)
	c3.addMul(a4, b4_19)

	c4.addMul(a0, b4)
	c4.addMul(a1, b3)
	c4.addMul(a2, b2)
	c4.addMul(a3, b1)
	c4.addMul(a4, b0)

	t0, carry := c0.lowAndCarry()
	c1.addWide(carry)
	t1, carry := c1.lowAndCarry()
	c2.addWide(carry)
	t2, carry := c2.lowAndCarry()
	c3.addWide(carry)
	t3, carry := c3.lowAndCarry()
	c4.addWide(carry)
	t4, carry := c4.lowAndCarry()

	t0 += carry * 19
	t1 += t0 >> 51
	t0 &= mask51

	v[0], v[1], v[2], v[3], v[4] = t0, t1, t2, t3, t4
	return v
}

// Square sets v = a*a and returns v. Implemented via the shared
// multiplication path above, which keeps a single reviewed carry chain as
// the source of truth for every product in this package.
func (v *Element) Square(a *Element) *Element {
	return v.Mul(a, a)
}

// Pow2k sets v = a^(2^k) and returns v, for k > 0.
func (v *Element) Pow2k(a *Element, k int) *Element {
	v.Square(a)
	for i := 1; i < k; i++ {
		v.Square(v)
	}
	return v
}

// reduce returns a copy of v fully reduced to the canonical range
// [0, p), with every limb < 2^51.
func (v Element) reduce() Element {
	v.carryPropagate()
	v.carryPropagate()
	return constantTimeReducedSubtract(v)
}

// pLimbs is p = 2^255-19 in 5x51 limb form.
var pLimbs = Element{
	mask51 - 18,
	mask51,
	mask51,
	mask51,
	mask51,
}

// constantTimeReducedSubtract returns v mod p for a v already known to
// have limbs < 2^51 (i.e. after carryPropagate), by conditionally
// subtracting p exactly once.
func constantTimeReducedSubtract(v Element) Element {
	var borrow uint64
	var diff Element
	diff[0], borrow = bits.Sub64(v[0], pLimbs[0], 0)
	diff[1], borrow = bits.Sub64(v[1], pLimbs[1], borrow)
	diff[2], borrow = bits.Sub64(v[2], pLimbs[2], borrow)
	diff[3], borrow = bits.Sub64(v[3], pLimbs[3], borrow)
	diff[4], borrow = bits.Sub64(v[4], pLimbs[4], borrow)

	// borrow == 1 means v < p, so v is already the answer.
	mask := -(borrow ^ 1)
	var out Element
	out[0] = (mask & diff[0]) | (^mask & v[0])
	out[1] = (mask & diff[1]) | (^mask & v[1])
	out[2] = (mask & diff[2]) | (^mask & v[2])
	out[3] = (mask & diff[3]) | (^mask & v[3])
	out[4] = (mask & diff[4]) | (^mask & v[4])
	return out
}

// Bytes returns the canonical 32-byte little-endian encoding of v.
func (v *Element) Bytes() [32]byte {
	t := v.reduce()
	var out [32]byte

	out[0] = byte(t[0])
	out[1] = byte(t[0] >> 8)
	out[2] = byte(t[0] >> 16)
	out[3] = byte(t[0] >> 24)
	out[4] = byte(t[0] >> 32)
	out[5] = byte(t[0] >> 40)
	out[6] = byte(t[0] >> 48)
	out[6] ^= byte(t[1]<<3) & 0xf8
	out[7] = byte(t[1] >> 5)
	out[8] = byte(t[1] >> 13)
	out[9] = byte(t[1] >> 21)
	out[10] = byte(t[1] >> 29)
	out[11] = byte(t[1] >> 37)
	out[12] = byte(t[1] >> 45)
	out[12] ^= byte(t[2]<<6) & 0xc0
	out[13] = byte(t[2] >> 2)
	out[14] = byte(t[2] >> 10)
	out[15] = byte(t[2] >> 18)
	out[16] = byte(t[2] >> 26)
	out[17] = byte(t[2] >> 34)
	out[18] = byte(t[2] >> 42)
	out[19] = byte(t[2] >> 50)
	out[19] ^= byte(t[3]<<1) & 0xfe
	out[20] = byte(t[3] >> 7)
	out[21] = byte(t[3] >> 15)
	out[22] = byte(t[3] >> 23)
	out[23] = byte(t[3] >> 31)
	out[24] = byte(t[3] >> 39)
	out[25] = byte(t[3] >> 47)
	out[25] ^= byte(t[4]<<4) & 0xf0
	out[26] = byte(t[4] >> 4)
	out[27] = byte(t[4] >> 12)
	out[28] = byte(t[4] >> 20)
	out[29] = byte(t[4] >> 28)
	out[30] = byte(t[4] >> 36)
	out[31] = byte(t[4] >> 44)
	return out
}

// SetBytes sets v to the value of the 32-byte little-endian encoding x.
// The high bit of x[31] (bit 255) is ignored, as required for decoding
// the y-coordinate of a CompressedEdwardsY or a Ristretto field element
// before the sign/canonicity bit is inspected separately. The result is
// not reduced modulo p; callers that need a canonical value must call
// reduce (via Bytes, or IsCanonical for a check without re-encoding).
func (v *Element) SetBytes(x *[32]byte) *Element {
	v[0] = uint64(x[0]) | uint64(x[1])<<8 | uint64(x[2])<<16 | uint64(x[3])<<24 |
		uint64(x[4])<<32 | uint64(x[5])<<40 | uint64(x[6]&7)<<48
	v[1] = uint64(x[6])>>3 | uint64(x[7])<<5 | uint64(x[8])<<13 | uint64(x[9])<<21 |
		uint64(x[10])<<29 | uint64(x[11])<<37 | uint64(x[12]&63)<<45
	v[2] = uint64(x[12])>>6 | uint64(x[13])<<2 | uint64(x[14])<<10 | uint64(x[15])<<18 |
		uint64(x[16])<<26 | uint64(x[17])<<34 | uint64(x[18])<<42 | uint64(x[19]&1)<<50
	v[3] = uint64(x[19])>>1 | uint64(x[20])<<7 | uint64(x[21])<<15 | uint64(x[22])<<23 |
		uint64(x[23])<<31 | uint64(x[24])<<39 | uint64(x[25]&15)<<47
	v[4] = uint64(x[25])>>4 | uint64(x[26])<<4 | uint64(x[27])<<12 | uint64(x[28])<<20 |
		uint64(x[29])<<28 | uint64(x[30])<<36 | uint64(x[31]&127)<<44
	return v
}

// IsCanonical reports, as a 0/1 uint64 mask, whether x is the canonical
// 32-byte encoding of some field element: strictly less than p, and with
// bit 255 clear.
func IsCanonical(x *[32]byte) uint64 {
	if x[31]&0x80 != 0 {
		return 0
	}
	var v Element
	v.SetBytes(x)
	re := v.reduce()
	var back [32]byte
	re.encodeInto(&back)
	return uint64(subtle.ConstantTimeCompare(x[:], back[:]))
}

func (v Element) encodeInto(out *[32]byte) {
	p := &v
	enc := p.Bytes()
	*out = enc
}

// Equal returns 1 if v == u and 0 otherwise.
func (v *Element) Equal(u *Element) int {
	a, b := v.Bytes(), u.Bytes()
	return subtle.ConstantTimeCompare(a[:], b[:])
}

// IsZero returns 1 if v == 0 and 0 otherwise.
func (v *Element) IsZero() int {
	zero := [32]byte{}
	b := v.Bytes()
	return subtle.ConstantTimeCompare(b[:], zero[:])
}

// IsNegative returns 1 if the canonical encoding of v has its
// least-significant bit set, and 0 otherwise. Used by Ristretto and
// Elligator sign normalization.
func (v *Element) IsNegative() int {
	b := v.Bytes()
	return int(b[0] & 1)
}

// ConditionalSelect sets v to a if cond == 1, or to b if cond == 0. cond
// must be 0 or 1.
func (v *Element) ConditionalSelect(a, b *Element, cond uint64) *Element {
	mask := -cond
	v[0] = b[0] ^ (mask & (a[0] ^ b[0]))
	v[1] = b[1] ^ (mask & (a[1] ^ b[1]))
	v[2] = b[2] ^ (mask & (a[2] ^ b[2]))
	v[3] = b[3] ^ (mask & (a[3] ^ b[3]))
	v[4] = b[4] ^ (mask & (a[4] ^ b[4]))
	return v
}

// ConditionalSwap swaps the values of a and b if cond == 1, and leaves
// them unchanged if cond == 0. cond must be 0 or 1.
func ConditionalSwap(a, b *Element, cond uint64) {
	mask := -cond
	for i := range a {
		t := mask & (a[i] ^ b[i])
		a[i] ^= t
		b[i] ^= t
	}
}

// ConditionalNegate sets v = -a if cond == 1, or v = a if cond == 0. cond
// must be 0 or 1.
func (v *Element) ConditionalNegate(a *Element, cond uint64) *Element {
	var neg Element
	neg.Negate(a)
	return v.ConditionalSelect(&neg, a, cond)
}

// Absolute sets v to |a|, defined as a if a's low bit is 0, or -a
// otherwise (the Ristretto/Elligator sign convention), and returns v.
func (v *Element) Absolute(a *Element) *Element {
	return v.ConditionalNegate(a, uint64(a.IsNegative()))
}

// Invert sets v = 1/z if z != 0, or v = 0 if z == 0, and returns v.
//
// Implemented as exponentiation by p-2, via the same 254-squaring,
// 11-multiplication addition chain used throughout the Curve25519
// ecosystem.
func (v *Element) Invert(z *Element) *Element {
	var z2, z9, z11, z2_5_0, z2_10_0, z2_20_0, z2_50_0, z2_100_0, t Element

	z2.Square(z)
	t.Square(&z2)
	t.Square(&t)
	z9.Mul(&t, z)
	z11.Mul(&z9, &z2)
	t.Square(&z11)
	z2_5_0.Mul(&t, &z9)

	t.Square(&z2_5_0)
	for i := 0; i < 4; i++ {
		t.Square(&t)
	}
	z2_10_0.Mul(&t, &z2_5_0)

	t.Square(&z2_10_0)
	for i := 0; i < 9; i++ {
		t.Square(&t)
	}
	z2_20_0.Mul(&t, &z2_10_0)

	t.Square(&z2_20_0)
	for i := 0; i < 19; i++ {
		t.Square(&t)
	}
	t.Mul(&t, &z2_20_0)

	t.Square(&t)
	for i := 0; i < 9; i++ {
		t.Square(&t)
	}
	z2_50_0.Mul(&t, &z2_10_0)

	t.Square(&z2_50_0)
	for i := 0; i < 49; i++ {
		t.Square(&t)
	}
	z2_100_0.Mul(&t, &z2_50_0)

	t.Square(&z2_100_0)
	for i := 0; i < 99; i++ {
		t.Square(&t)
	}
	t.Mul(&t, &z2_100_0)

	t.Square(&t)
	for i := 0; i < 49; i++ {
		t.Square(&t)
	}
	t.Mul(&t, &z2_50_0)

	t.Square(&t)
	t.Square(&t)
	t.Square(&t)
	t.Square(&t)
	t.Square(&t)

	return v.Mul(&t, &z11)
}

// Pow22523 sets v = z^((p-5)/8) and returns v. Used by SqrtRatioI.
func (v *Element) Pow22523(z *Element) *Element {
	var t0, t1, t2 Element

	t0.Square(z)
	t1.Square(&t0)
	t1.Square(&t1)
	t1.Mul(z, &t1)
	t0.Mul(&t0, &t1)
	t0.Square(&t0)
	t0.Mul(&t1, &t0)
	t1.Square(&t0)
	for i := 1; i < 5; i++ {
		t1.Square(&t1)
	}
	t0.Mul(&t1, &t0)
	t1.Square(&t0)
	for i := 1; i < 10; i++ {
		t1.Square(&t1)
	}
	t1.Mul(&t1, &t0)
	t2.Square(&t1)
	for i := 1; i < 20; i++ {
		t2.Square(&t2)
	}
	t1.Mul(&t2, &t1)
	t1.Square(&t1)
	for i := 1; i < 10; i++ {
		t1.Square(&t1)
	}
	t0.Mul(&t1, &t0)
	t1.Square(&t0)
	for i := 1; i < 50; i++ {
		t1.Square(&t1)
	}
	t1.Mul(&t1, &t0)
	t2.Square(&t1)
	for i := 1; i < 100; i++ {
		t2.Square(&t2)
	}
	t1.Mul(&t2, &t1)
	t1.Square(&t1)
	for i := 1; i < 50; i++ {
		t1.Square(&t1)
	}
	t0.Mul(&t1, &t0)
	t0.Square(&t0)
	t0.Square(&t0)
	return v.Mul(&t0, z)
}

// sqrtM1 is a fixed square root of -1 in GF(2^255-19).
var sqrtM1 = &Element{1718705420411056, 234908883556509,
	2233514472574048, 2117202627021982, 765476049583133}

// SqrtRatioI sets r to a nonnegative square root of u/v, following
// draft-irtf-cfrg-ristretto255-decaf448. If u/v is a square, SqrtRatioI
// returns (r, 1) with r*r*v == u. If u/v is not a square, it returns
// (r, 0) with r*r*v == sqrtM1*u, i.e. r is a square root of sqrtM1*u/v
// instead, with the documented sign normalization either way.
func (r *Element) SqrtRatioI(u, v *Element) (rr *Element, wasSquare int) {
	var t0, v2, uv3, uv7, check, uNeg, rPrime Element

	v2.Square(v)
	uv3.Mul(u, t0.Mul(&v2, v))
	uv7.Mul(&uv3, t0.Square(&v2))
	result := new(Element).Mul(&uv3, t0.Pow22523(&uv7))

	check.Mul(v, t0.Square(result))
	uNeg.Negate(u)
	correctSignSqrt := check.Equal(u)
	flippedSignSqrt := check.Equal(&uNeg)
	flippedSignSqrtI := check.Equal(t0.Mul(&uNeg, sqrtM1))

	rPrime.Mul(result, sqrtM1)
	result.ConditionalSelect(&rPrime, result, uint64(flippedSignSqrt|flippedSignSqrtI))

	r.Absolute(result)
	return r, correctSignSqrt | flippedSignSqrt
}
