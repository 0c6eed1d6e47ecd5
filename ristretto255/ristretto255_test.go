package ristretto255

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

// The IETF ristretto255 draft's basepoint encoding test vector.
const basepointEncodingHex = "e2f2ae0a6abc4e71a884a961c500515f58e30b6aa582dd8db6a65945e08d2d76"

func ristrettoBasepoint() *Element {
	var one scalar.Scalar
	one.One()
	return new(Element).ScalarBaseMult(&one)
}

func TestBasepointDecodesToKnownEncoding(t *testing.T) {
	c := CompressedRistretto(decodeHex32(t, basepointEncodingHex))

	var decoded Element
	if _, ok := decoded.Decode(&c); ok != 1 {
		t.Fatalf("basepoint encoding failed to decode")
	}

	B := ristrettoBasepoint()
	if decoded.Equal(B) != 1 {
		t.Fatalf("decoded basepoint != ScalarBaseMult(1)")
	}
}

func TestBasepointEncodeMatchesKnownEncoding(t *testing.T) {
	B := ristrettoBasepoint()
	var c CompressedRistretto
	B.Encode(&c)

	want := CompressedRistretto(decodeHex32(t, basepointEncodingHex))
	if c != want {
		t.Fatalf("Encode(B) = %x, want %x", c, want)
	}
}

func TestEncodeDecodeRoundTrips(t *testing.T) {
	var three scalar.Scalar
	three.One()
	three.Add(&three, &three)
	one := scalarOne()
	three.Add(&three, &one)

	e := new(Element).ScalarBaseMult(&three)

	var c CompressedRistretto
	e.Encode(&c)

	var decoded Element
	if _, ok := decoded.Decode(&c); ok != 1 {
		t.Fatalf("failed to decode a just-encoded element")
	}
	if decoded.Equal(e) != 1 {
		t.Fatalf("decode(encode(e)) != e")
	}

	var c2 CompressedRistretto
	decoded.Encode(&c2)
	if c2 != c {
		t.Fatalf("re-encoding did not reproduce the canonical encoding: got %x, want %x", c2, c)
	}
}

func scalarOne() scalar.Scalar {
	var one scalar.Scalar
	one.One()
	return one
}

func TestIdentityEncodingIsAllZero(t *testing.T) {
	id := new(Element).Identity()
	var c CompressedRistretto
	id.Encode(&c)

	var zero CompressedRistretto
	if c != zero {
		t.Fatalf("identity encoding = %x, want all-zero", c)
	}
}

func TestAllZeroDecodesToIdentity(t *testing.T) {
	var zero CompressedRistretto
	var decoded Element
	if _, ok := decoded.Decode(&zero); ok != 1 {
		t.Fatalf("all-zero encoding should decode successfully")
	}
	id := new(Element).Identity()
	if decoded.Equal(id) != 1 {
		t.Fatalf("all-zero encoding did not decode to the identity")
	}
}

func TestNonCanonicalEncodingIsRejected(t *testing.T) {
	// p itself, the smallest non-canonical field-element encoding: any
	// value >= p must be rejected by Decode even though it is a valid
	// byte string.
	pBytes := decodeHex32(t, "edffffffffffffffffffffffffffffffffffffffffffffffffffffffffffff7f")
	c := CompressedRistretto(pBytes)
	var decoded Element
	if _, ok := decoded.Decode(&c); ok != 0 {
		t.Fatalf("encoding of p itself must be rejected as non-canonical")
	}
}

func TestGroupLaws(t *testing.T) {
	B := ristrettoBasepoint()
	id := new(Element).Identity()

	var sum Element
	sum.Add(B, id)
	if sum.Equal(B) != 1 {
		t.Fatalf("B+identity != B")
	}

	var negB, shouldBeId Element
	negB.Negate(B)
	shouldBeId.Add(B, &negB)
	if shouldBeId.Equal(id) != 1 {
		t.Fatalf("B+(-B) != identity")
	}

	two := scalarOne()
	two.Add(&two, &two)

	var doubled, bPlusB Element
	doubled.ScalarMult(&two, B)
	bPlusB.Add(B, B)
	if doubled.Equal(&bPlusB) != 1 {
		t.Fatalf("2*B != B+B")
	}
}

func TestHashToGroupIsDeterministic(t *testing.T) {
	input := []byte("ristretto255 hash-to-group test input")
	a := HashToGroupSHA512(input)
	b := HashToGroupSHA512(input)
	if a.Equal(b) != 1 {
		t.Fatalf("HashToGroupSHA512 is not deterministic for the same input")
	}

	c := HashToGroupSHA512([]byte("a different input entirely"))
	if a.Equal(c) == 1 {
		t.Fatalf("HashToGroupSHA512 collided on two different inputs")
	}
}

func TestHashToGroupShake256Deterministic(t *testing.T) {
	input := []byte("shake256 path")
	a := HashToGroupShake256(input)
	b := HashToGroupShake256(input)
	if a.Equal(b) != 1 {
		t.Fatalf("HashToGroupShake256 is not deterministic for the same input")
	}
}

func TestTwoRepresentativesOfSameCosetEncodeIdentically(t *testing.T) {
	// Adding the identity never changes the coset or the curve point,
	// but it does change the extended coordinates the internal
	// edwards25519.Point holds (Add recomputes X, Y, Z, T from scratch,
	// so the result is the same point scaled to a different Z rather
	// than its input unchanged). Encode must still agree.
	B := ristrettoBasepoint()
	id := new(Element).Identity()

	var viaAdd Element
	viaAdd.Add(B, id)

	var c1, c2 CompressedRistretto
	B.Encode(&c1)
	viaAdd.Encode(&c2)
	if c1 != c2 {
		t.Fatalf("two representatives of the same coset encoded differently: %x vs %x", c1, c2)
	}
}
