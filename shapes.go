package wireframe

import "math"

// Default tessellation resolutions.
const (
	// SurfaceSteps is the step count used for spheres and tori.
	SurfaceSteps = 12

	// CurveSteps is the step count used for circles and parametric curves.
	CurveSteps = 100
)

// AddEdge appends the segment (x0, y0, z0)-(x1, y1, z1).
func AddEdge(e *EdgeBuffer, x0, y0, z0, x1, y1, z1 float64) {
	e.AppendPair(Pt(x0, y0, z0), Pt(x1, y1, z1))
}

// AddPolygon appends one triangular face.
func AddPolygon(p *PolygonBuffer, x0, y0, z0, x1, y1, z1, x2, y2, z2 float64) {
	p.AppendTriple(Pt(x0, y0, z0), Pt(x1, y1, z1), Pt(x2, y2, z2))
}

// AddCircle appends a closed circle of radius r around (cx, cy) in the plane
// z = cz, approximated by steps segments.
func AddCircle(e *EdgeBuffer, cx, cy, cz, r float64, steps int) {
	if steps < 3 {
		steps = 3
	}
	prev := Pt(cx+r, cy, cz)
	for i := 1; i <= steps; i++ {
		var next Point
		if i == steps {
			next = Pt(cx+r, cy, cz)
		} else {
			sin, cos := math.Sincos(2 * math.Pi * float64(i) / float64(steps))
			next = Pt(cx+r*cos, cy+r*sin, cz)
		}
		e.AppendPair(prev, next)
		prev = next
	}
}

// AddBox appends a rectangular prism. (x, y, z) is the upper-left-front
// corner; the box extends width along +x, height along -y and depth along -z.
func AddBox(p *PolygonBuffer, x, y, z, width, height, depth float64) {
	x1 := x + width
	y1 := y - height
	z1 := z - depth

	v := [8]Point{
		Pt(x, y, z), Pt(x1, y, z), Pt(x1, y1, z), Pt(x, y1, z), // front
		Pt(x, y, z1), Pt(x1, y, z1), Pt(x1, y1, z1), Pt(x, y1, z1), // back
	}
	faces := [12][3]int{
		{0, 3, 2}, {0, 2, 1}, // front
		{5, 6, 7}, {5, 7, 4}, // back
		{1, 2, 6}, {1, 6, 5}, // right
		{4, 7, 3}, {4, 3, 0}, // left
		{4, 0, 1}, {4, 1, 5}, // top
		{3, 7, 6}, {3, 6, 2}, // bottom
	}
	for _, f := range faces {
		p.AppendTriple(v[f[0]], v[f[1]], v[f[2]])
	}
}

// spherePoints returns the points of a sphere as steps semicircles of
// steps+1 points each, rotated about the x axis.
func spherePoints(cx, cy, cz, r float64, steps int) []Point {
	pts := make([]Point, 0, steps*(steps+1))
	for rot := 0; rot < steps; rot++ {
		sinPhi, cosPhi := math.Sincos(2 * math.Pi * float64(rot) / float64(steps))
		for circ := 0; circ <= steps; circ++ {
			sinTheta, cosTheta := math.Sincos(math.Pi * float64(circ) / float64(steps))
			pts = append(pts, Pt(
				cx+r*cosTheta,
				cy+r*sinTheta*cosPhi,
				cz+r*sinTheta*sinPhi,
			))
		}
	}
	return pts
}

// AddSphere appends a sphere of radius r centered at (cx, cy, cz).
// Faces are wound counter-clockwise seen from outside; the degenerate
// triangles at the poles are skipped.
func AddSphere(p *PolygonBuffer, cx, cy, cz, r float64, steps int) {
	if steps < 3 {
		steps = 3
	}
	pts := spherePoints(cx, cy, cz, r, steps)
	per := steps + 1
	total := len(pts)

	for lat := 0; lat < steps; lat++ {
		for lon := 0; lon < steps; lon++ {
			i := lat*per + lon
			n := (i + per) % total
			if lon != steps-1 {
				p.AppendTriple(pts[i], pts[i+1], pts[n+1])
			}
			if lon != 0 {
				p.AppendTriple(pts[i], pts[n+1], pts[n])
			}
		}
	}
}

// torusPoints returns the points of a torus as steps circles of steps
// points each, rotated about the y axis.
func torusPoints(cx, cy, cz, r1, r2 float64, steps int) []Point {
	pts := make([]Point, 0, steps*steps)
	for rot := 0; rot < steps; rot++ {
		sinPhi, cosPhi := math.Sincos(2 * math.Pi * float64(rot) / float64(steps))
		for circ := 0; circ < steps; circ++ {
			sinTheta, cosTheta := math.Sincos(2 * math.Pi * float64(circ) / float64(steps))
			ring := r1*cosTheta + r2
			pts = append(pts, Pt(
				cx+cosPhi*ring,
				cy+r1*sinTheta,
				cz-sinPhi*ring,
			))
		}
	}
	return pts
}

// AddTorus appends a torus centered at (cx, cy, cz) with tube radius r1 and
// distance r2 from the center to the middle of the tube.
func AddTorus(p *PolygonBuffer, cx, cy, cz, r1, r2 float64, steps int) {
	if steps < 3 {
		steps = 3
	}
	pts := torusPoints(cx, cy, cz, r1, r2, steps)

	for lat := 0; lat < steps; lat++ {
		nextLat := (lat + 1) % steps
		for lon := 0; lon < steps; lon++ {
			nextLon := (lon + 1) % steps
			p0 := pts[lat*steps+lon]
			p1 := pts[lat*steps+nextLon]
			pn := pts[nextLat*steps+lon]
			pn1 := pts[nextLat*steps+nextLon]
			p.AppendTriple(p0, pn, p1)
			p.AppendTriple(p1, pn, pn1)
		}
	}
}
