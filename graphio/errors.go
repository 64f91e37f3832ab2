// SPDX-License-Identifier: MIT

package graphio

import (
	"errors"
	"fmt"
)

var (
	// ErrMalformedInput is wrapped by every parse failure.
	ErrMalformedInput = errors.New("graphio: malformed input")

	// ErrMissingInput is returned when the input file does not exist.
	ErrMissingInput = errors.New("graphio: missing input")
)

// IOError locates a load or write failure. Line is 1-based and 0 when the
// failure is not tied to a line.
type IOError struct {
	Op   string
	Path string
	Line int
	Err  error
}

func (e *IOError) Error() string {
	src := e.Path
	if src == "" {
		src = "<stream>"
	}
	if e.Line > 0 {
		return fmt.Sprintf("graphio: %s %s:%d: %v", e.Op, src, e.Line, e.Err)
	}

	return fmt.Sprintf("graphio: %s %s: %v", e.Op, src, e.Err)
}

func (e *IOError) Unwrap() error { return e.Err }

// malformedf builds an IOError wrapping ErrMalformedInput.
func malformedf(path string, line int, format string, args ...interface{}) error {
	return &IOError{
		Op:   opLoad,
		Path: path,
		Line: line,
		Err:  fmt.Errorf("%w: %s", ErrMalformedInput, fmt.Sprintf(format, args...)),
	}
}
