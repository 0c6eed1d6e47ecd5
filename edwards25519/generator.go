package edwards25519

import "github.com/Beneficial-AI-Foundation/libsignal-focus-dalek-lite/internal/field"

// generatorPoint is the standard Ed25519/Curve25519 basepoint, in
// extended coordinates.
var generatorPoint = &Point{
	X: field.Element{1738742601995546, 1146398526822698, 2070867633025821, 562264141797630, 587772402128613},
	Y: field.Element{1801439850948184, 1351079888211148, 450359962737049, 900719925474099, 1801439850948198},
	Z: field.Element{1, 0, 0, 0, 0},
	T: field.Element{1841354044333475, 16398895984059, 755974180946558, 900171276175154, 1821297809914039},
}

// Identity returns a new Point set to the group identity element.
func Identity() *Point {
	return new(Point).SetIdentity()
}

// Generator returns a new Point set to the standard basepoint.
func Generator() *Point {
	return new(Point).Set(generatorPoint)
}
