package script

import (
	"fmt"

	"github.com/gogpu/wireframe"
)

// command is one entry of the keyword table.
type command struct {
	kind  argKind
	arity int
	run   func(it *Interpreter, a args) error
}

// commands maps each keyword to its handler. Keywords match exactly and
// case-sensitively.
var commands = map[string]command{
	"sphere":  {floatArgs, 4, (*Interpreter).sphere},
	"torus":   {floatArgs, 5, (*Interpreter).torus},
	"box":     {floatArgs, 6, (*Interpreter).box},
	"clear":   {noArgs, 0, (*Interpreter).clear},
	"circle":  {intArgs, 4, (*Interpreter).circle},
	"hermite": {intArgs, 8, (*Interpreter).hermite},
	"bezier":  {intArgs, 8, (*Interpreter).bezier},
	"line":    {intArgs, 6, (*Interpreter).line},
	"ident":   {noArgs, 0, (*Interpreter).ident},
	"scale":   {intArgs, 3, (*Interpreter).scale},
	"move":    {intArgs, 3, (*Interpreter).move},
	"rotate":  {axisArgs, 2, (*Interpreter).rotate},
	"apply":   {noArgs, 0, (*Interpreter).apply},
	"display": {noArgs, 0, (*Interpreter).display},
	"save":    {rawArg, 1, (*Interpreter).save},
	"quit":    {noArgs, 0, (*Interpreter).quit},
}

// Keywords returns the command keywords in table order of the script
// format description.
func Keywords() []string {
	return []string{
		"sphere", "torus", "box", "clear", "circle", "hermite", "bezier", "line",
		"ident", "scale", "move", "rotate", "apply", "display", "save", "quit",
	}
}

func (it *Interpreter) sphere(a args) error {
	n := a.nums
	wireframe.AddSphere(it.state.Polygons, n[0], n[1], n[2], n[3], it.surfaceSteps)
	return nil
}

func (it *Interpreter) torus(a args) error {
	n := a.nums
	wireframe.AddTorus(it.state.Polygons, n[0], n[1], n[2], n[3], n[4], it.surfaceSteps)
	return nil
}

func (it *Interpreter) box(a args) error {
	n := a.nums
	wireframe.AddBox(it.state.Polygons, n[0], n[1], n[2], n[3], n[4], n[5])
	return nil
}

func (it *Interpreter) clear(args) error {
	it.state.Edges.Clear()
	it.state.Polygons.Clear()
	return nil
}

func (it *Interpreter) circle(a args) error {
	n := a.nums
	wireframe.AddCircle(it.state.Edges, n[0], n[1], n[2], n[3], it.curveSteps)
	return nil
}

func (it *Interpreter) hermite(a args) error {
	n := a.nums
	wireframe.AddCurve(it.state.Edges, n[0], n[1], n[2], n[3], n[4], n[5], n[6], n[7],
		it.curveSteps, wireframe.Hermite)
	return nil
}

func (it *Interpreter) bezier(a args) error {
	n := a.nums
	wireframe.AddCurve(it.state.Edges, n[0], n[1], n[2], n[3], n[4], n[5], n[6], n[7],
		it.curveSteps, wireframe.Bezier)
	return nil
}

func (it *Interpreter) line(a args) error {
	n := a.nums
	wireframe.AddEdge(it.state.Edges, n[0], n[1], n[2], n[3], n[4], n[5])
	return nil
}

func (it *Interpreter) ident(args) error {
	it.state.Transform = wireframe.Identity()
	return nil
}

func (it *Interpreter) scale(a args) error {
	n := a.nums
	it.state.Transform = wireframe.Compose(wireframe.Scale(n[0], n[1], n[2]), it.state.Transform)
	return nil
}

func (it *Interpreter) move(a args) error {
	n := a.nums
	it.state.Transform = wireframe.Compose(wireframe.Translate(n[0], n[1], n[2]), it.state.Transform)
	return nil
}

func (it *Interpreter) rotate(a args) error {
	m, ok := wireframe.Rotate(a.axis, wireframe.Radians(a.nums[0]))
	if !ok {
		return ErrInvalidAxis
	}
	it.state.Transform = wireframe.Compose(m, it.state.Transform)
	return nil
}

// apply bakes the transform into both buffers. The transform is kept, so
// applying twice without ident transforms the geometry twice.
func (it *Interpreter) apply(args) error {
	it.state.Edges.Transform(it.state.Transform)
	it.state.Polygons.Transform(it.state.Transform)
	return nil
}

// draw clears the render target and draws whatever the buffers hold.
func (it *Interpreter) draw() {
	it.renderer.Clear()
	if it.state.Edges.Len() > 0 {
		it.renderer.DrawLines(it.state.Edges, it.color)
	}
	if it.state.Polygons.Len() > 0 {
		it.renderer.DrawPolygons(it.state.Polygons, it.color)
	}
}

func (it *Interpreter) display(args) error {
	it.draw()
	if err := it.renderer.Present(); err != nil {
		return fmt.Errorf("%w: %w", ErrRender, err)
	}
	return nil
}

func (it *Interpreter) save(a args) error {
	it.draw()
	if err := it.renderer.Export(a.raw); err != nil {
		return fmt.Errorf("%w: %w", ErrRender, err)
	}
	return nil
}

func (it *Interpreter) quit(args) error {
	return errQuit
}
