package edwards25519

// MulByCofactor sets v = 8*p and returns v, using three dedicated
// doublings rather than a general scalar multiplication.
func (v *Point) MulByCofactor(p *Point) *Point {
	var pp Projective
	pp.FromPoint(p)
	var result Completed
	result.Double(&pp)
	pp.FromCompleted(&result)
	result.Double(&pp)
	pp.FromCompleted(&result)
	result.Double(&pp)
	return v.FromCompleted(&result)
}

// MulByGroupOrder sets v = ell*p, where ell is the order of the prime-order
// subgroup, and returns v. v is the identity if and only if p is the
// identity or lies on the prime-order subgroup; any other point (one
// with a nonzero low-order component) maps to a nonidentity result.
// This is the standard way to test subgroup membership without a
// general (and slower) variable-length scalar multiplication.
//
// The sequence of 34 additions and 248 point-doublings-via-self-addition
// below computes this via a fixed addition chain for the exponent ell,
// the same chain used throughout the Curve25519 ecosystem for this
// check (ell is a 253-bit prime shared by every implementation of this
// curve, so the chain is universal, not reimplementation-specific).
func (v *Point) MulByGroupOrder(p *Point) *Point {
	var t0, t1, t2, t3, t4, t5, t6, t7, t8, t9, tA, tB, tC Point
	pp := new(Point).Set(p)

	tA.Add(pp, pp)
	t4.Add(pp, &tA)
	t2.Add(pp, &t4)
	pp.Add(&tA, &t2)
	t1.Add(&tA, pp)
	t5.Add(&t4, &t1)
	t3.Add(&t1, &t1)
	t0.Add(&t3, &t3)
	t8.Add(pp, &t0)
	t0.Add(&t0, &t0)
	t7.Add(&t3, &t0)
	tB.Add(&t4, &t7)
	t3.Add(&t3, &tB)
	t9.Add(&t2, &t3)
	t6.Add(&t2, &t9)
	t4.Add(&t0, &tB)
	t2.Add(&t2, &t4)
	t8.Add(&t8, &t2)
	t0.Add(&t0, &t4)
	t7.Add(&t7, &t2)
	pp.Add(pp, &t7)
	t1.Add(&t1, pp)
	tC.Add(&t5, &t1)
	for s := 0; s < 126; s++ {
		tC.Add(&tC, &tC)
	}
	tB.Add(&tB, &tC)
	for s := 0; s < 9; s++ {
		tB.Add(&tB, &tB)
	}
	tA.Add(&tA, &tB)
	tA.Add(&t1, &tA)
	for s := 0; s < 7; s++ {
		tA.Add(&tA, &tA)
	}
	t9.Add(&t9, &tA)
	for s := 0; s < 9; s++ {
		t9.Add(&t9, &t9)
	}
	t9.Add(&t1, &t9)
	for s := 0; s < 11; s++ {
		t9.Add(&t9, &t9)
	}
	t8.Add(&t8, &t9)
	for s := 0; s < 8; s++ {
		t8.Add(&t8, &t8)
	}
	t7.Add(&t7, &t8)
	for s := 0; s < 9; s++ {
		t7.Add(&t7, &t7)
	}
	t6.Add(&t6, &t7)
	for s := 0; s < 6; s++ {
		t6.Add(&t6, &t6)
	}
	t5.Add(&t5, &t6)
	for s := 0; s < 14; s++ {
		t5.Add(&t5, &t5)
	}
	t4.Add(&t4, &t5)
	for s := 0; s < 10; s++ {
		t4.Add(&t4, &t4)
	}
	t3.Add(&t3, &t4)
	for s := 0; s < 9; s++ {
		t3.Add(&t3, &t3)
	}
	t2.Add(&t2, &t3)
	for s := 0; s < 10; s++ {
		t2.Add(&t2, &t2)
	}
	t1.Add(&t1, &t2)
	for s := 0; s < 8; s++ {
		t1.Add(&t1, &t1)
	}
	t0.Add(&t0, &t1)
	for s := 0; s < 8; s++ {
		t0.Add(&t0, &t0)
	}
	return v.Add(pp, &t0)
}

// IsSmallOrder reports whether p has order dividing the
// cofactor 8, i.e. whether repeated doubling carries it to the
// identity before any scalar multiplication would.
func (p *Point) IsSmallOrder() bool {
	var eightP Point
	eightP.MulByCofactor(p)
	return eightP.IsIdentity() == 1
}

// IsTorsionFree reports whether p lies in the prime-order subgroup
// generated by the standard basepoint, i.e. has no component in the
// order-8 torsion subgroup. None of this module's Ed25519 verification
// paths call it; they test keys with IsSmallOrder instead.
func (p *Point) IsTorsionFree() bool {
	var lp Point
	lp.MulByGroupOrder(p)
	return lp.IsIdentity() == 1
}
