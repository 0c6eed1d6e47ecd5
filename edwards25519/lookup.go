package edwards25519

// absAndSignMask splits a digit in [-8, 8] into its absolute value and
// a 0/1 sign mask, via arithmetic sign-extension rather than a branch
// on the digit's sign: mask is all-ones when digit is negative and all
// zeros otherwise (digit >> 7 sign-extends int8's top bit across the
// whole value), and (digit ^ mask) - mask is the standard two's
// complement absolute value built from that mask.
func absAndSignMask(digit int8) (absDigit int8, sign uint64) {
	mask := digit >> 7
	absDigit = (digit ^ mask) - mask
	sign = uint64(mask) & 1
	return
}

// eqMask8 returns 1 if a == b, 0 otherwise, without branching on
// either value: it XORs the two bytes (zero iff equal) and OR-folds
// the result down into its low bit, so any differing bit anywhere
// forces that bit to 1, then inverts it.
func eqMask8(a, b int8) uint64 {
	d := uint64(uint8(a) ^ uint8(b))
	d |= d >> 4
	d |= d >> 2
	d |= d >> 1
	return 1 ^ (d & 1)
}

// variableBaseTable holds the ProjectiveNiels forms of 1*Q, 2*Q, ...,
// 8*Q for some point Q, used by the constant-time variable-base
// scalar multiplication in scalarmul.go. Every lookup scans the whole
// table and masks, regardless of the requested digit, so that table
// access time does not leak which multiple of Q is being used.
type variableBaseTable struct {
	entries [8]ProjectiveNiels
}

// FromPoint builds t from q, by repeatedly adding Q to fill in the
// consecutive multiples 2Q, 3Q, ..., 8Q that SelectInto assumes.
func (t *variableBaseTable) FromPoint(q *Point) *variableBaseTable {
	t.entries[0].FromPoint(q)

	var qn Point
	qn.Set(q)
	for i := 1; i < 8; i++ {
		qn.Add(&qn, q)
		t.entries[i].FromPoint(&qn)
	}
	return t
}

// SelectInto sets out to digit*Q, for digit in [-8, 8], in constant
// time: it scans every table entry regardless of digit, masking in
// the one that matches abs(digit), then conditionally negates.
func (t *variableBaseTable) SelectInto(out *ProjectiveNiels, digit int8) {
	absDigit, sign := absAndSignMask(digit)

	var identity ProjectiveNiels
	identity.FromPoint(Identity())
	*out = identity
	for i := 0; i < 8; i++ {
		cond := eqMask8(absDigit, int8(i+1))
		out.ConditionalSelect(&t.entries[i], out, cond)
	}
	out.ConditionalNegate(sign)
}

// fixedBaseTable holds the AffineNiels forms of 1*Q, ..., 8*Q, for a
// Q that is itself already scaled by some fixed power of 16 (used by
// the basepoint table in basepoint.go). The entries are affine, since
// the table is built once and reused across every basepoint
// multiplication.
type fixedBaseTable struct {
	entries [8]AffineNiels
}

// fromPoint builds t from q, by repeatedly adding Q to fill in the
// consecutive multiples 2Q, 3Q, ..., 8Q that selectInto assumes.
func (t *fixedBaseTable) fromPoint(q *Point) *fixedBaseTable {
	t.entries[0].FromPoint(q)

	var qn Point
	qn.Set(q)
	for i := 1; i < 8; i++ {
		qn.Add(&qn, q)
		t.entries[i].FromPoint(&qn)
	}
	return t
}

// selectInto sets out to digit*Q, for digit in [-8, 8], in constant
// time, exactly as variableBaseTable.SelectInto but over affine
// entries.
func (t *fixedBaseTable) selectInto(out *AffineNiels, digit int8) {
	absDigit, sign := absAndSignMask(digit)

	var identity AffineNiels
	identity.FromPoint(Identity())
	*out = identity
	for i := 0; i < 8; i++ {
		cond := eqMask8(absDigit, int8(i+1))
		out.ConditionalSelect(&t.entries[i], out, cond)
	}
	out.ConditionalNegate(sign)
}

// nafLookupTable holds the ProjectiveNiels forms of the odd multiples
// 1*Q, 3*Q, 5*Q, ..., 15*Q of some point Q, indexed as
// entries[(d-1)/2] for odd d. Used by the variable-time width-5 NAF
// scalar multiplication, where table access time is allowed to depend
// on the (public) point being multiplied.
type nafLookupTable struct {
	entries [8]ProjectiveNiels
}

// FromPoint builds t from q.
func (t *nafLookupTable) FromPoint(q *Point) *nafLookupTable {
	t.entries[0].FromPoint(q)

	var q2 Point
	q2.Double(q)

	var qn Point
	qn.Set(q)
	for i := 1; i < 8; i++ {
		qn.Add(&qn, &q2)
		t.entries[i].FromPoint(&qn)
	}
	return t
}

// SelectInto sets out to d*Q for odd d in [1, 15].
func (t *nafLookupTable) SelectInto(out *ProjectiveNiels, d int8) {
	*out = t.entries[(d-1)/2]
}
