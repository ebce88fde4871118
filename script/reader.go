package script

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// maxLineSize bounds a single script line.
const maxLineSize = 1 << 20

// Open opens a script source. The names "stdin" and "-" select standard
// input, which is not closed by the returned ReadCloser.
func Open(name string) (io.ReadCloser, error) {
	if name == "stdin" || name == "-" {
		return io.NopCloser(os.Stdin), nil
	}
	f, err := os.Open(filepath.Clean(name))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrSourceUnavailable, err)
	}
	return f, nil
}

// NewReader returns a reader yielding r as UTF-8. A leading UTF-8
// byte-order mark is dropped, and UTF-16 input with a byte-order mark is
// converted. Input without a BOM passes through unchanged.
func NewReader(r io.Reader) io.Reader {
	return transform.NewReader(r, unicode.BOMOverride(unicode.UTF8.NewDecoder()))
}

// lineReader yields script lines without their terminators and counts them.
type lineReader struct {
	sc         *bufio.Scanner
	n          int
	terminated bool
}

func newLineReader(r io.Reader) *lineReader {
	lr := &lineReader{sc: bufio.NewScanner(NewReader(r))}
	lr.sc.Buffer(make([]byte, 0, 4096), maxLineSize)
	lr.sc.Split(lr.split)
	return lr
}

// split is bufio.ScanLines that also records whether the token ended
// with a newline.
func (lr *lineReader) split(data []byte, atEOF bool) (int, []byte, error) {
	advance, token, err := bufio.ScanLines(data, atEOF)
	if token != nil {
		lr.terminated = advance > 0 && data[advance-1] == '\n'
	}
	return advance, token, err
}

// next returns the next line. ok is false at end of input or on error.
func (lr *lineReader) next() (line string, ok bool) {
	if !lr.sc.Scan() {
		return "", false
	}
	lr.n++
	return lr.sc.Text(), true
}

// line returns the number of the last line returned by next.
func (lr *lineReader) line() int {
	return lr.n
}

// complete reports whether the last line returned by next ended with a
// newline. Only the final line of an input can be unterminated.
func (lr *lineReader) complete() bool {
	return lr.terminated
}

func (lr *lineReader) err() error {
	return lr.sc.Err()
}
