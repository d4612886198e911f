// Package formats provides pluggable level file format parsers.
// Each format registers itself with the level format registry on import.
package formats

import (
	"errors"
	"fmt"
	"strings"
)

// FormatError reports a level file that could not be read or parsed.
type FormatError struct {
	Path string // File path, empty when parsing in-memory data
	Line int    // 1-based line number, 0 when not tied to a line
	Msg  string
	Err  error // Underlying cause, may be nil
}

func (e *FormatError) Error() string {
	var b strings.Builder
	b.WriteString("invalid level")
	if e.Path != "" {
		b.WriteString(" ")
		b.WriteString(e.Path)
	}
	if e.Line > 0 {
		fmt.Fprintf(&b, " (line %d)", e.Line)
	}
	b.WriteString(": ")
	b.WriteString(e.Msg)
	if e.Err != nil {
		b.WriteString(": ")
		b.WriteString(e.Err.Error())
	}
	return b.String()
}

func (e *FormatError) Unwrap() error {
	return e.Err
}

// WithPath returns err with the file path attached when it is a FormatError,
// or a new FormatError wrapping err otherwise.
func WithPath(err error, path string) error {
	if err == nil {
		return nil
	}
	var fe *FormatError
	if errors.As(err, &fe) {
		cp := *fe
		cp.Path = path
		return &cp
	}
	return &FormatError{Path: path, Msg: "cannot load", Err: err}
}

func errorf(line int, format string, args ...any) *FormatError {
	return &FormatError{Line: line, Msg: fmt.Sprintf(format, args...)}
}
