package edwards25519

import "github.com/Beneficial-AI-Foundation/libsignal-focus-dalek-lite/internal/scalar"

// ScalarMult sets v = x*q, for an arbitrary point q, and returns v.
// Runs in constant time with respect to x: it builds a table of q's
// small multiples once, then walks x's radix-16 digits doing a
// full-table scan-and-mask lookup at each step, so execution time
// depends only on the bit length of x, never on its value.
func (v *Point) ScalarMult(x *scalar.Scalar, q *Point) *Point {
	var table variableBaseTable
	table.FromPoint(q)
	v.SetIdentity()

	digits := x.AsRadix16()

	var multiple ProjectiveNiels
	var tmp1 Completed
	var tmp2 Projective

	table.SelectInto(&multiple, digits[63])
	tmp1.Add(v, &multiple)
	for i := 62; i >= 0; i-- {
		tmp2.FromCompleted(&tmp1)
		tmp1.Double(&tmp2)
		tmp2.FromCompleted(&tmp1)
		tmp1.Double(&tmp2)
		tmp2.FromCompleted(&tmp1)
		tmp1.Double(&tmp2)
		tmp2.FromCompleted(&tmp1)
		tmp1.Double(&tmp2)
		v.FromCompleted(&tmp1)
		table.SelectInto(&multiple, digits[i])
		tmp1.Add(v, &multiple)
	}
	v.FromCompleted(&tmp1)
	return v
}

// ScalarBaseMult sets v = x*B, where B is the standard basepoint, and
// returns v. Constant time with respect to x, and needs no point
// doublings at all: every one of x's 64 radix-16 digits selects
// directly from its own precomputed basepointTable entry, and the 64
// results are just summed.
func (v *Point) ScalarBaseMult(x *scalar.Scalar) *Point {
	digits := x.AsRadix16()
	v.SetIdentity()

	var multiple AffineNiels
	var tmp Completed
	for i := 0; i < 64; i++ {
		basepointTable[i].selectInto(&multiple, digits[i])
		tmp.AddAffine(v, &multiple)
		v.FromCompleted(&tmp)
	}
	return v
}

// MultiScalarMult sets v to the sum of scalars[i]*points[i] and
// returns v. Runs in constant time with respect to the scalars
// (execution time depends only on the slice lengths): it shares the
// doublings of the radix-16 ladder across every term, exactly as
// ScalarMult does for a single term.
func MultiScalarMult(scalars []*scalar.Scalar, points []*Point) *Point {
	if len(scalars) != len(points) {
		panic("edwards25519: MultiScalarMult requires equal-length inputs")
	}
	v := Identity()
	if len(scalars) == 0 {
		return v
	}

	tables := make([]variableBaseTable, len(points))
	for i := range tables {
		tables[i].FromPoint(points[i])
	}
	digits := make([][64]int8, len(scalars))
	for i := range digits {
		digits[i] = scalars[i].AsRadix16()
	}

	var multiple ProjectiveNiels
	var tmp1 Completed
	var tmp2 Projective

	for j := range tables {
		tables[j].SelectInto(&multiple, digits[j][63])
		tmp1.Add(v, &multiple)
		v.FromCompleted(&tmp1)
	}
	tmp2.FromPoint(v)
	for i := 62; i >= 0; i-- {
		tmp1.Double(&tmp2)
		tmp2.FromCompleted(&tmp1)
		tmp1.Double(&tmp2)
		tmp2.FromCompleted(&tmp1)
		tmp1.Double(&tmp2)
		tmp2.FromCompleted(&tmp1)
		tmp1.Double(&tmp2)
		v.FromCompleted(&tmp1)

		for j := range tables {
			tables[j].SelectInto(&multiple, digits[j][i])
			tmp1.Add(v, &multiple)
			v.FromCompleted(&tmp1)
		}
		tmp2.FromPoint(v)
	}
	return v
}

// VarTimeMultiScalarMult sets v to the sum of scalars[i]*points[i] and
// returns v. Execution time depends on the (public) scalar and point
// values; not for use on secret scalars. Below the Straus/Pippenger
// crossover (StrausPippengerThreshold points), it uses Straus' method
// with a shared-doubling width-5 NAF walk, one lookup table per point;
// above it, it switches to a bucket-method (Pippenger) pass that scales
// better as the number of terms grows. This is the variable-time engine
// behind signature verification and batch verification.
func VarTimeMultiScalarMult(scalars []*scalar.Scalar, points []*Point) *Point {
	if len(scalars) != len(points) {
		panic("edwards25519: VarTimeMultiScalarMult requires equal-length inputs")
	}
	if len(scalars) == 0 {
		return Identity()
	}
	if len(scalars) >= StrausPippengerThreshold {
		return pippengerMultiScalarMult(scalars, points)
	}
	return strausMultiScalarMult(scalars, points)
}

// StrausPippengerThreshold is the number of simultaneous terms at or
// above which VarTimeMultiScalarMult switches from Straus' method to
// the Pippenger bucket method. Exposed as a variable so benchmarks and
// callers with unusual batch-size distributions can retune the
// crossover without touching call sites.
var StrausPippengerThreshold = 190

func strausMultiScalarMult(scalars []*scalar.Scalar, points []*Point) *Point {
	const w = 5

	tables := make([]nafLookupTable, len(points))
	for i := range tables {
		tables[i].FromPoint(points[i])
	}
	nafs := make([][256]int8, len(scalars))
	for i := range nafs {
		nafs[i] = scalars[i].NonAdjacentForm(w)
	}

	var multiple ProjectiveNiels
	var tmp1 Completed
	var tmp2 Projective
	tmp2.SetIdentity()

	v := Identity()
	for i := 255; i >= 0; i-- {
		tmp1.Double(&tmp2)

		for j := range nafs {
			d := nafs[j][i]
			if d > 0 {
				v.FromCompleted(&tmp1)
				tables[j].SelectInto(&multiple, d)
				tmp1.Add(v, &multiple)
			} else if d < 0 {
				v.FromCompleted(&tmp1)
				tables[j].SelectInto(&multiple, -d)
				tmp1.Sub(v, &multiple)
			}
		}
		tmp2.FromCompleted(&tmp1)
	}
	v.FromProjective(&tmp2)
	return v
}

// pippengerMultiScalarMult computes sum(scalars[i]*points[i]) with the
// bucket method: each scalar is split into fixed-width signed digits,
// and for every digit position the points are bucketed by digit value
// so that, instead of one scalar-multiplication ladder per point, the
// accumulation work is shared across every point that happens to have
// the same digit at that position. This is the standard way to amortize
// multi-scalar multiplication cost once the number of terms is large
// enough that table-building overhead no longer dominates.
func pippengerMultiScalarMult(scalars []*scalar.Scalar, points []*Point) *Point {
	const w = 6
	const digitBase = 1 << w
	const halfBase = digitBase / 2
	const numDigits = (256 + w - 1) / w

	digitsPerScalar := make([][]int32, len(scalars))
	for i := range scalars {
		digitsPerScalar[i] = scalars[i].SignedDigitsW(w)
	}

	total := Identity()
	var windowSum Point
	for d := numDigits - 1; d >= 0; d-- {
		buckets := make([]*Point, halfBase+1)
		for i := range scalars {
			digit := digitsPerScalar[i][d]
			if digit == 0 {
				continue
			}
			sign := int32(1)
			if digit < 0 {
				sign = -1
				digit = -digit
			}
			idx := int(digit)
			p := points[i]
			if sign < 0 {
				var neg Point
				neg.Negate(p)
				p = &neg
			}
			if buckets[idx] == nil {
				np := new(Point).Set(p)
				buckets[idx] = np
			} else {
				buckets[idx].Add(buckets[idx], p)
			}
		}

		windowSum.SetIdentity()
		var running Point
		running.SetIdentity()
		for b := halfBase; b >= 1; b-- {
			if buckets[b] != nil {
				running.Add(&running, buckets[b])
			}
			windowSum.Add(&windowSum, &running)
		}

		for k := 0; k < w; k++ {
			total.Double(total)
		}
		total.Add(total, &windowSum)
	}
	return total
}
