package wireframe

import "iter"

// Buffer is an ordered list of homogeneous points (columns) backed by
// contiguous storage and a live-length cursor.
//
// Only the first Len columns are valid. Clear resets the cursor without
// releasing storage, so later appends overwrite the stale columns in place.
type Buffer struct {
	cols []Point // allocated storage; cols[n:] is stale
	n    int     // used length
}

// NewBuffer creates an empty buffer with room for capacity columns.
func NewBuffer(capacity int) *Buffer {
	if capacity < 0 {
		capacity = 0
	}
	return &Buffer{cols: make([]Point, 0, capacity)}
}

// Len returns the number of valid columns.
func (b *Buffer) Len() int {
	return b.n
}

// Cap returns the number of columns the buffer can hold without growing.
func (b *Buffer) Cap() int {
	return cap(b.cols)
}

// Append adds a column after the last valid one.
func (b *Buffer) Append(p Point) {
	if b.n < len(b.cols) {
		b.cols[b.n] = p
	} else {
		b.cols = append(b.cols, p)
	}
	b.n++
}

// At returns column i. It panics if i is outside [0, Len).
func (b *Buffer) At(i int) Point {
	if i < 0 || i >= b.n {
		panic("wireframe: buffer index out of range")
	}
	return b.cols[i]
}

// Clear truncates the buffer to zero length. Storage is retained.
func (b *Buffer) Clear() {
	b.n = 0
}

// Columns returns a sequence over the valid columns and their indices.
func (b *Buffer) Columns() iter.Seq2[int, Point] {
	return func(yield func(int, Point) bool) {
		for i := 0; i < b.n; i++ {
			if !yield(i, b.cols[i]) {
				return
			}
		}
	}
}

// Transform replaces every valid column p with m·p.
func (b *Buffer) Transform(m Matrix) {
	for i := 0; i < b.n; i++ {
		b.cols[i] = m.TransformPoint(b.cols[i])
	}
}

// EdgeBuffer is a Buffer read as consecutive point pairs, one line segment
// per pair. Its length is always even.
type EdgeBuffer struct {
	buf Buffer
}

// NewEdgeBuffer creates an empty edge buffer.
func NewEdgeBuffer() *EdgeBuffer {
	return &EdgeBuffer{}
}

// AppendPair adds the segment p0-p1.
func (e *EdgeBuffer) AppendPair(p0, p1 Point) {
	e.buf.Append(p0)
	e.buf.Append(p1)
}

// Len returns the number of valid columns (twice the segment count).
func (e *EdgeBuffer) Len() int { return e.buf.Len() }

// Cap returns the allocated column capacity.
func (e *EdgeBuffer) Cap() int { return e.buf.Cap() }

// NumSegments returns the number of segments.
func (e *EdgeBuffer) NumSegments() int { return e.buf.Len() / 2 }

// At returns column i.
func (e *EdgeBuffer) At(i int) Point { return e.buf.At(i) }

// Clear discards all segments.
func (e *EdgeBuffer) Clear() { e.buf.Clear() }

// Transform replaces every valid column p with m·p.
func (e *EdgeBuffer) Transform(m Matrix) { e.buf.Transform(m) }

// Columns returns a sequence over the valid columns.
func (e *EdgeBuffer) Columns() iter.Seq2[int, Point] { return e.buf.Columns() }

// Segments returns a sequence over the segment endpoints.
func (e *EdgeBuffer) Segments() iter.Seq2[Point, Point] {
	return func(yield func(Point, Point) bool) {
		for i := 0; i+1 < e.buf.n; i += 2 {
			if !yield(e.buf.cols[i], e.buf.cols[i+1]) {
				return
			}
		}
	}
}

// Face is a triangle with vertices in counter-clockwise order when seen
// from its front side.
type Face [3]Point

// Normal returns the unnormalized face normal (p1-p0) × (p2-p0).
func (f Face) Normal() Point {
	return f[1].Sub(f[0]).Cross(f[2].Sub(f[0]))
}

// PolygonBuffer is a Buffer read as consecutive point triples, one
// triangular face per triple. Its length is always a multiple of three.
type PolygonBuffer struct {
	buf Buffer
}

// NewPolygonBuffer creates an empty polygon buffer.
func NewPolygonBuffer() *PolygonBuffer {
	return &PolygonBuffer{}
}

// AppendTriple adds the face p0, p1, p2.
func (p *PolygonBuffer) AppendTriple(p0, p1, p2 Point) {
	p.buf.Append(p0)
	p.buf.Append(p1)
	p.buf.Append(p2)
}

// Len returns the number of valid columns (three times the face count).
func (p *PolygonBuffer) Len() int { return p.buf.Len() }

// Cap returns the allocated column capacity.
func (p *PolygonBuffer) Cap() int { return p.buf.Cap() }

// NumFaces returns the number of faces.
func (p *PolygonBuffer) NumFaces() int { return p.buf.Len() / 3 }

// At returns column i.
func (p *PolygonBuffer) At(i int) Point { return p.buf.At(i) }

// Clear discards all faces.
func (p *PolygonBuffer) Clear() { p.buf.Clear() }

// Transform replaces every valid column q with m·q.
func (p *PolygonBuffer) Transform(m Matrix) { p.buf.Transform(m) }

// Columns returns a sequence over the valid columns.
func (p *PolygonBuffer) Columns() iter.Seq2[int, Point] { return p.buf.Columns() }

// Faces returns a sequence over the faces.
func (p *PolygonBuffer) Faces() iter.Seq[Face] {
	return func(yield func(Face) bool) {
		for i := 0; i+2 < p.buf.n; i += 3 {
			if !yield(Face{p.buf.cols[i], p.buf.cols[i+1], p.buf.cols[i+2]}) {
				return
			}
		}
	}
}
