package script

import (
	"io"

	"github.com/gogpu/wireframe"
)

// Option configures an Interpreter.
type Option func(*options)

type options struct {
	color        wireframe.RGBA
	trace        io.Writer
	diag         io.Writer
	surfaceSteps int
	curveSteps   int
}

func defaultOptions() options {
	return options{
		color:        wireframe.Black,
		trace:        io.Discard,
		diag:         io.Discard,
		surfaceSteps: wireframe.SurfaceSteps,
		curveSteps:   wireframe.CurveSteps,
	}
}

// WithColor sets the draw color passed to the renderer. The default is black.
func WithColor(c wireframe.RGBA) Option {
	return func(o *options) {
		o.color = c
	}
}

// WithTrace echoes every consumed line to w as ":line:".
func WithTrace(w io.Writer) Option {
	return func(o *options) {
		if w == nil {
			w = io.Discard
		}
		o.trace = w
	}
}

// WithDiagnostics sets where non-fatal diagnostics such as
// "foo: command not found" are written.
func WithDiagnostics(w io.Writer) Option {
	return func(o *options) {
		if w == nil {
			w = io.Discard
		}
		o.diag = w
	}
}

// WithResolution overrides the tessellation step counts for spheres and
// tori (surface) and for circles and curves (curve). Values below 1 keep
// the defaults.
func WithResolution(surface, curve int) Option {
	return func(o *options) {
		if surface > 0 {
			o.surfaceSteps = surface
		}
		if curve > 0 {
			o.curveSteps = curve
		}
	}
}
