package script

import (
	"errors"
	"fmt"
)

// Script errors. Every error returned by Run other than a read failure
// unwraps to one of these.
var (
	// ErrUnknownCommand marks a line that is not a command keyword.
	// It is reported as a diagnostic and never stops a run.
	ErrUnknownCommand = errors.New("script: command not found")

	// ErrArgumentArity is returned when an argument line does not hold
	// exactly the values a command needs, or is missing.
	ErrArgumentArity = errors.New("script: invalid arguments")

	// ErrInvalidAxis is returned when rotate names an axis other than x, y or z.
	ErrInvalidAxis = errors.New("script: invalid axis argument for rotate; must be x, y, or z")

	// ErrSourceUnavailable is returned when the script source cannot be opened.
	ErrSourceUnavailable = errors.New("script: source unavailable")

	// ErrRender is returned when the renderer fails to present or export.
	ErrRender = errors.New("script: render failed")
)

// errQuit stops the run loop without error.
var errQuit = errors.New("script: quit")

// CommandError describes a fatal failure of one command.
type CommandError struct {
	Line    int    // 1-based line number of the command keyword
	Command string // command keyword
	Args    string // argument line as read, if any
	Err     error
}

func (e *CommandError) Error() string {
	if e.Args != "" {
		return fmt.Sprintf("%v: %s at line %d: %q", e.Err, e.Command, e.Line, e.Args)
	}
	return fmt.Sprintf("%v: %s at line %d", e.Err, e.Command, e.Line)
}

func (e *CommandError) Unwrap() error {
	return e.Err
}
