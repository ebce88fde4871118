package wireframe

import "math"

// Point is a homogeneous 3D point (x, y, z, w).
// Geometry generated by this package always has W = 1.
type Point struct {
	X, Y, Z, W float64
}

// Pt is a convenience function to create a Point with W = 1.
func Pt(x, y, z float64) Point {
	return Point{X: x, Y: y, Z: z, W: 1}
}

// Add returns the component-wise sum of the spatial parts of p and q.
// W is taken from p.
func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y, Z: p.Z + q.Z, W: p.W}
}

// Sub returns the vector from q to p. W is zero.
func (p Point) Sub(q Point) Point {
	return Point{X: p.X - q.X, Y: p.Y - q.Y, Z: p.Z - q.Z}
}

// Mul returns the spatial part of p scaled by s.
func (p Point) Mul(s float64) Point {
	return Point{X: p.X * s, Y: p.Y * s, Z: p.Z * s, W: p.W}
}

// Dot returns the 3D dot product of two vectors.
func (p Point) Dot(q Point) float64 {
	return p.X*q.X + p.Y*q.Y + p.Z*q.Z
}

// Cross returns the 3D cross product p × q.
func (p Point) Cross(q Point) Point {
	return Point{
		X: p.Y*q.Z - p.Z*q.Y,
		Y: p.Z*q.X - p.X*q.Z,
		Z: p.X*q.Y - p.Y*q.X,
	}
}

// Length returns the length of the vector.
func (p Point) Length() float64 {
	return math.Sqrt(p.Dot(p))
}

// Distance returns the distance between two points.
func (p Point) Distance(q Point) float64 {
	return p.Sub(q).Length()
}

// Lerp performs linear interpolation between two points.
// t=0 returns p, t=1 returns q, intermediate values interpolate.
func (p Point) Lerp(q Point, t float64) Point {
	return Point{
		X: p.X + (q.X-p.X)*t,
		Y: p.Y + (q.Y-p.Y)*t,
		Z: p.Z + (q.Z-p.Z)*t,
		W: p.W + (q.W-p.W)*t,
	}
}

// Approx reports whether p and q differ by at most epsilon in every component.
func (p Point) Approx(q Point, epsilon float64) bool {
	return math.Abs(p.X-q.X) <= epsilon &&
		math.Abs(p.Y-q.Y) <= epsilon &&
		math.Abs(p.Z-q.Z) <= epsilon &&
		math.Abs(p.W-q.W) <= epsilon
}
