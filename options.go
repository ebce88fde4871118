package wireframe

// RendererOption configures a SoftwareRenderer during creation.
// Use functional options to customize renderer behavior.
//
// Example:
//
//	// Default 500x500 white canvas
//	r, _ := wireframe.NewSoftwareRenderer()
//
//	// Larger canvas, no back-face culling, frames written to a file
//	r, _ := wireframe.NewSoftwareRenderer(
//	    wireframe.WithSize(800, 800),
//	    wireframe.WithCulling(false),
//	    wireframe.WithPresenter(wireframe.FilePresenter{Path: "frame.png"}),
//	)
type RendererOption func(*rendererOptions)

// rendererOptions holds optional configuration for renderer creation.
type rendererOptions struct {
	width      int
	height     int
	background RGBA
	cull       bool
	presenter  Presenter
	pixmap     *Pixmap
}

// Default canvas size.
const (
	DefaultWidth  = 500
	DefaultHeight = 500
)

// defaultOptions returns the default renderer options.
func defaultOptions() rendererOptions {
	return rendererOptions{
		width:      DefaultWidth,
		height:     DefaultHeight,
		background: White,
		cull:       true,
		presenter:  nil, // Present is a no-op
	}
}

// WithSize sets the canvas dimensions.
func WithSize(width, height int) RendererOption {
	return func(o *rendererOptions) {
		o.width = width
		o.height = height
	}
}

// WithBackground sets the color used by Clear.
func WithBackground(c RGBA) RendererOption {
	return func(o *rendererOptions) {
		o.background = c
	}
}

// WithCulling enables or disables back-face culling of polygon faces.
// Culling is enabled by default.
func WithCulling(enabled bool) RendererOption {
	return func(o *rendererOptions) {
		o.cull = enabled
	}
}

// WithPresenter sets where Present sends finished frames.
func WithPresenter(p Presenter) RendererOption {
	return func(o *rendererOptions) {
		o.presenter = p
	}
}

// WithPixmap sets a custom pixmap as the render target.
// The pixmap dimensions override WithSize.
func WithPixmap(pm *Pixmap) RendererOption {
	return func(o *rendererOptions) {
		o.pixmap = pm
	}
}
