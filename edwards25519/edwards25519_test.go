package edwards25519

import (
	"encoding/hex"
	"testing"

	"github.com/Beneficial-AI-Foundation/libsignal-focus-dalek-lite/internal/scalar"
)

func decodeHex32(t *testing.T, s string) [32]byte {
	b, err := hex.DecodeString(s)
	if err != nil {
		t.Fatalf("bad hex %q: %v", s, err)
	}
	var out [32]byte
	if len(b) != 32 {
		t.Fatalf("expected 32 bytes, got %d", len(b))
	}
	copy(out[:], b)
	return out
}

// RFC 7748 section 5.2, the first X25519 Diffie-Hellman test vector.
func TestX25519Vector(t *testing.T) {
	scalarBytes := decodeHex32(t, "a546e36bf0527c9d3b16154b82465edd62144c0ac1fc5a18506a2244ba449ac4")
	point := MontgomeryPoint(decodeHex32(t, "e6db6867583030db3594c1a424b15f7c726624ec26b3353b10a903a6d0ab1c4c"))
	want := decodeHex32(t, "c3da55379de9c6908e94ea4df28d084f32eccf03491c71f754b4075577a28552")

	got := X25519(&scalarBytes, &point)
	if [32]byte(got) != want {
		t.Fatalf("X25519 = %x, want %x", got, want)
	}
}

func TestMontgomeryPointIsZero(t *testing.T) {
	var zero MontgomeryPoint
	if !zero.IsZero() {
		t.Fatalf("all-zero MontgomeryPoint must report IsZero")
	}
	nonzero := MontgomeryPoint(decodeHex32(t, "0900000000000000000000000000000000000000000000000000000000000000"))
	if nonzero.IsZero() {
		t.Fatalf("basepoint u-coordinate must not report IsZero")
	}
}

func TestBasepointEncodingRoundTrips(t *testing.T) {
	B := Generator()
	var enc CompressedEdwardsY
	enc.Compress(B)

	want := decodeHex32(t, "5866666666666666666666666666666666666666666666666666666666666666")
	if [32]byte(enc) != want {
		t.Fatalf("basepoint encoding = %x, want %x", enc, want)
	}

	var decoded Point
	if _, ok := decoded.Decompress(&enc); ok != 1 {
		t.Fatalf("basepoint encoding did not decompress")
	}
	if decoded.Equal(B) != 1 {
		t.Fatalf("decompress(compress(B)) != B")
	}
}

func TestPointGroupLaws(t *testing.T) {
	B := Generator()
	id := Identity()

	var sum Point
	sum.Add(B, id)
	if sum.Equal(B) != 1 {
		t.Fatalf("B+identity != B")
	}

	var negB, shouldBeId Point
	negB.Negate(B)
	shouldBeId.Add(B, &negB)
	if shouldBeId.IsIdentity() != 1 {
		t.Fatalf("B+(-B) != identity")
	}

	var two scalar.Scalar
	two.One()
	two.Add(&two, &two)

	var doubled, bPlusB Point
	doubled.ScalarMult(&two, B)
	bPlusB.Add(B, B)
	if doubled.Equal(&bPlusB) != 1 {
		t.Fatalf("2*B != B+B")
	}
}

func TestScalarMultMatchesScalarBaseMult(t *testing.T) {
	raw := decodeHex32(t, "0300000000000000000000000000000000000000000000000000000000000000")
	s := scalar.FromBytesModOrder(&raw)

	var viaGeneric Point
	viaGeneric.ScalarMult(&s, Generator())

	var viaBase Point
	viaBase.ScalarBaseMult(&s)

	if viaGeneric.Equal(&viaBase) != 1 {
		t.Fatalf("ScalarMult(s, B) != ScalarBaseMult(s)")
	}
}

func TestMultiScalarMultMatchesSequentialAdds(t *testing.T) {
	araw := decodeHex32(t, "0500000000000000000000000000000000000000000000000000000000000000")
	braw := decodeHex32(t, "0700000000000000000000000000000000000000000000000000000000000000")
	a := scalar.FromBytesModOrder(&araw)
	b := scalar.FromBytesModOrder(&braw)

	B := Generator()
	var fiveB, sevenB, want Point
	fiveB.ScalarMult(&a, B)
	sevenB.ScalarMult(&b, B)
	want.Add(&fiveB, &sevenB)

	got := MultiScalarMult([]*scalar.Scalar{&a, &b}, []*Point{B, B})
	if got.Equal(&want) != 1 {
		t.Fatalf("MultiScalarMult != sequential adds")
	}

	gotVar := VarTimeMultiScalarMult([]*scalar.Scalar{&a, &b}, []*Point{B, B})
	if gotVar.Equal(&want) != 1 {
		t.Fatalf("VarTimeMultiScalarMult != sequential adds")
	}
}

func TestIdentityEncodingRoundTrips(t *testing.T) {
	id := Identity()
	var enc CompressedEdwardsY
	enc.Compress(id)

	want := decodeHex32(t, "0100000000000000000000000000000000000000000000000000000000000000")
	if [32]byte(enc) != want {
		t.Fatalf("identity encoding = %x, want %x", enc, want)
	}

	var decoded Point
	if _, ok := decoded.Decompress(&enc); ok != 1 {
		t.Fatalf("identity encoding did not decompress")
	}
	if decoded.IsIdentity() != 1 {
		t.Fatalf("decompressed identity encoding is not the identity")
	}
}

func TestSmallOrderAndTorsionFreeChecks(t *testing.T) {
	// Identity has order 1, which divides both the cofactor 8 and the
	// prime subgroup order ell trivially, so it reads as both
	// small-order and torsion-free under these checks' definitions.
	id := Identity()
	if !id.IsSmallOrder() {
		t.Fatalf("identity must be reported as small-order")
	}
	if !id.IsTorsionFree() {
		t.Fatalf("identity must be reported as torsion-free")
	}

	B := Generator()
	if B.IsSmallOrder() {
		t.Fatalf("basepoint must not be reported as small-order")
	}
	if !B.IsTorsionFree() {
		t.Fatalf("basepoint must be torsion-free")
	}
}

func TestMulByCofactorClearsIdentity(t *testing.T) {
	id := Identity()
	var cleared Point
	cleared.MulByCofactor(id)
	if cleared.IsIdentity() != 1 {
		t.Fatalf("8*identity != identity")
	}
}
