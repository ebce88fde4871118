package script

import (
	"math"
	"strconv"
	"strings"

	"github.com/gogpu/wireframe"
	"github.com/google/shlex"
)

// argKind says how a command's argument line is parsed.
type argKind int

const (
	noArgs    argKind = iota // no argument line
	intArgs                  // integers
	floatArgs                // floating-point numbers
	axisArgs                 // an axis letter and an angle in degrees
	rawArg                   // the whole trimmed line, e.g. a file name
)

// args holds a parsed argument line.
type args struct {
	nums []float64
	axis wireframe.Axis
	raw  string
}

// parseArgs parses an argument line for a command of the given kind and
// arity. Tokens are split on whitespace with shell-style quoting. Any
// count mismatch or unparsable token yields ErrArgumentArity.
func parseArgs(kind argKind, arity int, line string) (args, error) {
	if kind == rawArg {
		raw := strings.TrimSpace(line)
		if raw == "" {
			return args{}, ErrArgumentArity
		}
		return args{raw: raw}, nil
	}

	// '#' is never part of a number, and shlex would drop it and the rest
	// of the line as a comment.
	if strings.ContainsRune(line, '#') {
		return args{}, ErrArgumentArity
	}
	tokens, err := shlex.Split(line)
	if err != nil {
		return args{}, ErrArgumentArity
	}
	// The axis letter may be fused with the angle, as in "x90".
	if kind == axisArgs && len(tokens) == 1 && len(tokens[0]) > 1 {
		tokens = []string{tokens[0][:1], tokens[0][1:]}
	}
	if len(tokens) != arity {
		return args{}, ErrArgumentArity
	}

	switch kind {
	case intArgs:
		nums := make([]float64, len(tokens))
		for i, tok := range tokens {
			v, err := strconv.ParseInt(tok, 10, 64)
			if err != nil {
				return args{}, ErrArgumentArity
			}
			nums[i] = float64(v)
		}
		return args{nums: nums}, nil

	case floatArgs:
		nums, ok := parseFloats(tokens)
		if !ok {
			return args{}, ErrArgumentArity
		}
		return args{nums: nums}, nil

	case axisArgs:
		theta, ok := parseFloats(tokens[1:])
		if !ok {
			return args{}, ErrArgumentArity
		}
		if len(tokens[0]) != 1 {
			return args{}, ErrInvalidAxis
		}
		axis := wireframe.Axis(tokens[0][0])
		if !axis.Valid() {
			return args{}, ErrInvalidAxis
		}
		return args{axis: axis, nums: theta}, nil
	}

	return args{}, ErrArgumentArity
}

func parseFloats(tokens []string) ([]float64, bool) {
	nums := make([]float64, len(tokens))
	for i, tok := range tokens {
		v, err := strconv.ParseFloat(tok, 64)
		if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
			return nil, false
		}
		nums[i] = v
	}
	return nums, true
}
