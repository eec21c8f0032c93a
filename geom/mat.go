package geom

import "math"

// Mat2 is a 2x2 matrix in row-major order:
//
//	| A  B |
//	| C  D |
type Mat2 struct {
	A, B float64
	C, D float64
}

// Rotation returns the rotation matrix for an angle in radians.
func Rotation(angle float64) Mat2 {
	cos := math.Cos(angle)
	sin := math.Sin(angle)
	return Mat2{
		A: cos, B: -sin,
		C: sin, D: cos,
	}
}

// Apply multiplies the matrix with a column vector.
func (m Mat2) Apply(v Vec2) Vec2 {
	return Vec2{
		X: m.A*v.X + m.B*v.Y,
		Y: m.C*v.X + m.D*v.Y,
	}
}

// Det returns the determinant.
func (m Mat2) Det() float64 {
	return m.A*m.D - m.B*m.C
}

// Inverse returns the inverse matrix. The second return value is false
// when the matrix is singular.
func (m Mat2) Inverse() (Mat2, bool) {
	det := m.Det()
	if math.Abs(det) < 1e-12 {
		return Mat2{}, false
	}
	inv := 1.0 / det
	return Mat2{
		A: m.D * inv, B: -m.B * inv,
		C: -m.C * inv, D: m.A * inv,
	}, true
}
