package wireframe

import (
	"fmt"

	"honnef.co/go/curve"
)

// CurveKind selects how AddCurve interprets its control data.
type CurveKind int

const (
	// Hermite curves take two endpoints and the tangents at them.
	Hermite CurveKind = iota
	// Bezier curves take four control points.
	Bezier
)

// String returns the curve kind name.
func (k CurveKind) String() string {
	switch k {
	case Hermite:
		return "hermite"
	case Bezier:
		return "bezier"
	default:
		return fmt.Sprintf("CurveKind(%d)", int(k))
	}
}

// cubic converts the AddCurve arguments to a cubic Bézier.
//
// For Hermite data (x0, y0) and (x1, y1) are the endpoints and (x2, y2),
// (x3, y3) the tangents at them. A Hermite segment with tangents r0, r1 is
// the Bézier with inner control points p0 + r0/3 and p1 - r1/3.
func cubic(x0, y0, x1, y1, x2, y2, x3, y3 float64, kind CurveKind) curve.CubicBez {
	if kind == Hermite {
		return curve.CubicBez{
			P0: curve.Pt(x0, y0),
			P1: curve.Pt(x0+x2/3, y0+y2/3),
			P2: curve.Pt(x1-x3/3, y1-y3/3),
			P3: curve.Pt(x1, y1),
		}
	}
	return curve.CubicBez{
		P0: curve.Pt(x0, y0),
		P1: curve.Pt(x1, y1),
		P2: curve.Pt(x2, y2),
		P3: curve.Pt(x3, y3),
	}
}

// AddCurve appends a planar cubic curve (z = 0) approximated by steps
// segments.
func AddCurve(e *EdgeBuffer, x0, y0, x1, y1, x2, y2, x3, y3 float64, steps int, kind CurveKind) {
	if steps < 1 {
		steps = 1
	}
	c := cubic(x0, y0, x1, y1, x2, y2, x3, y3, kind)

	prev := c.P0
	for i := 1; i <= steps; i++ {
		var next curve.Point
		if i == steps {
			next = c.P3
		} else {
			next = c.Eval(float64(i) / float64(steps))
		}
		e.AppendPair(Pt(prev.X, prev.Y, 0), Pt(next.X, next.Y, 0))
		prev = next
	}
}
