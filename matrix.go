package wireframe

import "math"

// Matrix is a 4x4 affine transformation matrix in row-major order.
//
// Points are column vectors, so a matrix M maps p to M·p:
//
//	| x' |   | m00 m01 m02 m03 |   | x |
//	| y' | = | m10 m11 m12 m13 | · | y |
//	| z' |   | m20 m21 m22 m23 |   | z |
//	| w' |   | m30 m31 m32 m33 |   | w |
//
// Translation lives in the last column.
type Matrix [4][4]float64

// Axis names a coordinate axis for rotation.
type Axis byte

// Rotation axes.
const (
	AxisX Axis = 'x'
	AxisY Axis = 'y'
	AxisZ Axis = 'z'
)

// Valid reports whether a is one of x, y or z.
func (a Axis) Valid() bool {
	return a == AxisX || a == AxisY || a == AxisZ
}

// String returns the axis letter.
func (a Axis) String() string {
	return string(rune(a))
}

// Identity returns the identity transformation matrix.
func Identity() Matrix {
	return Matrix{
		{1, 0, 0, 0},
		{0, 1, 0, 0},
		{0, 0, 1, 0},
		{0, 0, 0, 1},
	}
}

// Translate creates a translation matrix.
func Translate(x, y, z float64) Matrix {
	return Matrix{
		{1, 0, 0, x},
		{0, 1, 0, y},
		{0, 0, 1, z},
		{0, 0, 0, 1},
	}
}

// Scale creates a scaling matrix.
func Scale(x, y, z float64) Matrix {
	return Matrix{
		{x, 0, 0, 0},
		{0, y, 0, 0},
		{0, 0, z, 0},
		{0, 0, 0, 1},
	}
}

// RotateX creates a rotation about the x axis (angle in radians).
func RotateX(angle float64) Matrix {
	sin, cos := math.Sincos(angle)
	return Matrix{
		{1, 0, 0, 0},
		{0, cos, -sin, 0},
		{0, sin, cos, 0},
		{0, 0, 0, 1},
	}
}

// RotateY creates a rotation about the y axis (angle in radians).
func RotateY(angle float64) Matrix {
	sin, cos := math.Sincos(angle)
	return Matrix{
		{cos, 0, sin, 0},
		{0, 1, 0, 0},
		{-sin, 0, cos, 0},
		{0, 0, 0, 1},
	}
}

// RotateZ creates a rotation about the z axis (angle in radians).
func RotateZ(angle float64) Matrix {
	sin, cos := math.Sincos(angle)
	return Matrix{
		{cos, -sin, 0, 0},
		{sin, cos, 0, 0},
		{0, 0, 1, 0},
		{0, 0, 0, 1},
	}
}

// Rotate creates a rotation about the given axis (angle in radians).
// It returns false if the axis is not x, y or z.
func Rotate(axis Axis, angle float64) (Matrix, bool) {
	switch axis {
	case AxisX:
		return RotateX(angle), true
	case AxisY:
		return RotateY(angle), true
	case AxisZ:
		return RotateZ(angle), true
	default:
		return Matrix{}, false
	}
}

// Radians converts an angle in degrees to radians.
func Radians(degrees float64) float64 {
	return degrees * (math.Pi / 180)
}

// Multiply multiplies two matrices (m * other).
func (m Matrix) Multiply(other Matrix) Matrix {
	var r Matrix
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			r[i][j] = m[i][0]*other[0][j] +
				m[i][1]*other[1][j] +
				m[i][2]*other[2][j] +
				m[i][3]*other[3][j]
		}
	}
	return r
}

// Compose left-multiplies an elementary matrix into an existing transform,
// returning next · existing. A transform built by composing A, then B, then C
// maps p to C·B·A·p.
func Compose(next, existing Matrix) Matrix {
	return next.Multiply(existing)
}

// TransformPoint applies the transformation to a point (m · p).
func (m Matrix) TransformPoint(p Point) Point {
	return Point{
		X: m[0][0]*p.X + m[0][1]*p.Y + m[0][2]*p.Z + m[0][3]*p.W,
		Y: m[1][0]*p.X + m[1][1]*p.Y + m[1][2]*p.Z + m[1][3]*p.W,
		Z: m[2][0]*p.X + m[2][1]*p.Y + m[2][2]*p.Z + m[2][3]*p.W,
		W: m[3][0]*p.X + m[3][1]*p.Y + m[3][2]*p.Z + m[3][3]*p.W,
	}
}

// IsIdentity returns true if the matrix is the identity matrix.
func (m Matrix) IsIdentity() bool {
	return m == Identity()
}

// Approx reports whether every element of m is within epsilon of other.
func (m Matrix) Approx(other Matrix, epsilon float64) bool {
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			if math.Abs(m[i][j]-other[i][j]) > epsilon {
				return false
			}
		}
	}
	return true
}
