package wireframe

import (
	"fmt"
	"image/color"

	"github.com/gogpu/wireframe/internal/raster"
)

// SoftwareRenderer is a CPU wireframe renderer drawing into a Pixmap.
//
// Geometry is projected orthographically: x and y map to pixel columns
// and rows with the origin at the bottom-left corner, z is ignored except
// for culling.
type SoftwareRenderer struct {
	pixmap     *Pixmap
	background RGBA
	cull       bool
	presenter  Presenter
}

var _ Renderer = (*SoftwareRenderer)(nil)

// NewSoftwareRenderer creates a renderer and clears its canvas.
func NewSoftwareRenderer(opts ...RendererOption) (*SoftwareRenderer, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	pm := o.pixmap
	if pm == nil {
		if o.width <= 0 || o.height <= 0 {
			return nil, fmt.Errorf("%w: %dx%d", ErrInvalidSize, o.width, o.height)
		}
		pm = NewPixmap(o.width, o.height)
	}

	r := &SoftwareRenderer{
		pixmap:     pm,
		background: o.background,
		cull:       o.cull,
		presenter:  o.presenter,
	}
	r.Clear()
	return r, nil
}

// Pixmap returns the render target.
func (r *SoftwareRenderer) Pixmap() *Pixmap {
	return r.pixmap
}

// Clear fills the canvas with the background color.
func (r *SoftwareRenderer) Clear() {
	r.pixmap.Clear(r.background)
}

// DrawLines draws every segment of e.
func (r *SoftwareRenderer) DrawLines(e *EdgeBuffer, c RGBA) {
	col := c.NRGBA()
	n := 0
	for p0, p1 := range e.Segments() {
		r.segment(p0, p1, col)
		n++
	}
	Logger().Debug("wireframe: drew lines", "segments", n)
}

// DrawPolygons draws the outline of every face of p. When culling is
// enabled, faces whose normal points away from the viewer are skipped.
func (r *SoftwareRenderer) DrawPolygons(p *PolygonBuffer, c RGBA) {
	col := c.NRGBA()
	drawn, culled := 0, 0
	for f := range p.Faces() {
		if r.cull && !raster.FrontFacing(f[0].X, f[0].Y, f[1].X, f[1].Y, f[2].X, f[2].Y) {
			culled++
			continue
		}
		r.segment(f[0], f[1], col)
		r.segment(f[1], f[2], col)
		r.segment(f[2], f[0], col)
		drawn++
	}
	Logger().Debug("wireframe: drew polygons", "faces", drawn, "culled", culled)
}

func (r *SoftwareRenderer) segment(p0, p1 Point, c color.NRGBA) {
	raster.ScreenLine(r.pixmap, p0.X, p0.Y, p1.X, p1.Y, c)
}

// Present hands a snapshot of the canvas to the presenter, if any.
func (r *SoftwareRenderer) Present() error {
	if r.presenter == nil {
		Logger().Debug("wireframe: present without presenter")
		return nil
	}
	if err := r.presenter.Present(r.pixmap.ToImage()); err != nil {
		return fmt.Errorf("wireframe: present: %w", err)
	}
	return nil
}

// Export writes the canvas to path. See Pixmap.Save for formats.
func (r *SoftwareRenderer) Export(path string) error {
	if err := r.pixmap.Save(path); err != nil {
		return err
	}
	Logger().Info("wireframe: saved image", "path", path,
		"width", r.pixmap.Width(), "height", r.pixmap.Height())
	return nil
}
