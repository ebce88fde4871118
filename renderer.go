package wireframe

import "image"

// Renderer is the sink that turns geometry buffers into pixels.
//
// The draw color is passed with every call so that one renderer can serve
// several runs with different colors.
type Renderer interface {
	// Clear resets the render target to its background.
	Clear()

	// DrawLines draws every segment of e.
	DrawLines(e *EdgeBuffer, c RGBA)

	// DrawPolygons draws every visible face of p as a triangle outline.
	DrawPolygons(p *PolygonBuffer, c RGBA)

	// Present shows the render target.
	Present() error

	// Export writes the render target to a file.
	Export(path string) error
}

// Presenter shows a finished frame, for example in a window.
type Presenter interface {
	Present(img image.Image) error
}

// PresenterFunc adapts a function to the Presenter interface.
type PresenterFunc func(img image.Image) error

// Present calls f(img).
func (f PresenterFunc) Present(img image.Image) error {
	return f(img)
}

// FilePresenter presents frames by writing them to a file.
// The format is chosen from the path extension as in Pixmap.Save.
type FilePresenter struct {
	Path string
}

// Present writes img to p.Path.
func (p FilePresenter) Present(img image.Image) error {
	return SaveImage(p.Path, img)
}
