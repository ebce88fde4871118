package script

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/gogpu/wireframe"
)

// State is the mutable scene state a script operates on.
type State struct {
	Transform wireframe.Matrix
	Edges     *wireframe.EdgeBuffer
	Polygons  *wireframe.PolygonBuffer
}

// NewState returns an identity transform and two empty buffers.
func NewState() *State {
	return &State{
		Transform: wireframe.Identity(),
		Edges:     wireframe.NewEdgeBuffer(),
		Polygons:  wireframe.NewPolygonBuffer(),
	}
}

// Interpreter executes scene scripts against a State and a Renderer.
// An Interpreter is not safe for concurrent use.
type Interpreter struct {
	state    *State
	renderer wireframe.Renderer

	color        wireframe.RGBA
	trace        io.Writer
	diag         io.Writer
	surfaceSteps int
	curveSteps   int

	lines *lineReader
}

// New creates an interpreter with a fresh State drawing to r.
func New(r wireframe.Renderer, opts ...Option) *Interpreter {
	return newInterpreter(NewState(), r, opts)
}

func newInterpreter(st *State, r wireframe.Renderer, opts []Option) *Interpreter {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return &Interpreter{
		state:        st,
		renderer:     r,
		color:        o.color,
		trace:        o.trace,
		diag:         o.diag,
		surfaceSteps: o.surfaceSteps,
		curveSteps:   o.curveSteps,
	}
}

// Run executes the script read from src against st, drawing to r.
func Run(src io.Reader, st *State, r wireframe.Renderer, opts ...Option) error {
	return newInterpreter(st, r, opts).Run(src)
}

// State returns the interpreter's state.
func (it *Interpreter) State() *State {
	return it.state
}

// RunFile opens the named script (see Open) and runs it. The source is
// closed before RunFile returns.
func (it *Interpreter) RunFile(name string) error {
	rc, err := Open(name)
	if err != nil {
		return err
	}
	defer func() { _ = rc.Close() }()
	return it.Run(rc)
}

// Run executes the script read from src until quit or end of input.
//
// It returns nil on quit and at end of input. A malformed argument line,
// an invalid rotation axis or a renderer failure stops the run and is
// returned as a *CommandError; state changes made by earlier commands are
// kept, and the failing command changes nothing. Unknown commands are
// reported to the diagnostics writer and skipped.
func (it *Interpreter) Run(src io.Reader) error {
	log := wireframe.Logger()
	it.lines = newLineReader(src)
	defer func() { it.lines = nil }()

	log.Info("script: run started")
	for {
		text, ok := it.next()
		if !ok {
			break
		}
		err := it.exec(text)
		if errors.Is(err, errQuit) {
			log.Info("script: quit", "line", it.lines.line())
			return nil
		}
		if err != nil {
			log.Error("script: run aborted", "err", err)
			return err
		}
	}
	if err := it.lines.err(); err != nil {
		return fmt.Errorf("script: read: %w", err)
	}
	log.Info("script: run finished",
		"lines", it.lines.line(),
		"edges", it.state.Edges.Len(),
		"polygons", it.state.Polygons.Len())
	return nil
}

// next reads and echoes one line.
func (it *Interpreter) next() (string, bool) {
	text, ok := it.lines.next()
	if !ok {
		return "", false
	}
	_, _ = fmt.Fprintf(it.trace, ":%s:\n", text)
	wireframe.Logger().Debug("script: line", "n", it.lines.line(), "text", text)
	return text, true
}

// isComment reports whether a trimmed line is blank or a comment.
func isComment(s string) bool {
	return s == "" || strings.HasPrefix(s, "#") || strings.HasPrefix(s, "//")
}

// exec runs one command line, reading its argument line if it needs one.
func (it *Interpreter) exec(text string) error {
	name := strings.TrimSpace(text)
	if isComment(name) {
		return nil
	}

	cmd, ok := commands[name]
	if !ok {
		_, _ = fmt.Fprintf(it.diag, "%s: command not found\n", name)
		wireframe.Logger().Warn("script: command not found",
			"line", it.lines.line(), "text", name, "err", ErrUnknownCommand)
		return nil
	}

	lineNo := it.lines.line()
	var a args
	var argLine string
	if cmd.kind != noArgs {
		var ok bool
		argLine, ok = it.next()
		if !ok {
			if err := it.lines.err(); err != nil {
				return fmt.Errorf("script: read: %w", err)
			}
			return &CommandError{Line: lineNo, Command: name, Err: ErrArgumentArity}
		}
		// An argument line cut off by end of input is incomplete.
		if !it.lines.complete() {
			return &CommandError{Line: lineNo, Command: name, Args: argLine, Err: ErrArgumentArity}
		}
		var err error
		a, err = parseArgs(cmd.kind, cmd.arity, argLine)
		if err != nil {
			return &CommandError{Line: lineNo, Command: name, Args: argLine, Err: err}
		}
	}

	if err := cmd.run(it, a); err != nil {
		if errors.Is(err, errQuit) {
			return err
		}
		return &CommandError{Line: lineNo, Command: name, Args: argLine, Err: err}
	}
	return nil
}
