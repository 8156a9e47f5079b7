package store

import (
	"errors"
	"fmt"
)

var (
	// ErrSourceNotFound indicates the source file does not exist
	ErrSourceNotFound = errors.New("source not found")

	// ErrEmptySource indicates the source has no header row
	ErrEmptySource = errors.New("empty source")

	// ErrMissingColumn indicates a required column is absent from the header
	ErrMissingColumn = errors.New("missing required column")

	// ErrInvalidDate indicates a date field failed to parse
	ErrInvalidDate = errors.New("invalid date")

	// ErrInvalidNumber indicates a numeric field failed to parse or is negative
	ErrInvalidNumber = errors.New("invalid number")

	// ErrMalformedRow indicates the delimited reader rejected a row
	ErrMalformedRow = errors.New("malformed row")
)

// LoadError reports why a source could not be turned into a Snapshot.
type LoadError struct {
	// Op is the loading step that failed (open, header, row)
	Op string

	// Path is the source location, empty when parsing a reader
	Path string

	// Line is the 1-based line in the source, 0 when not row-specific
	Line int

	// Column is the offending column, if any
	Column string

	// Err is the underlying error
	Err error
}

func (e *LoadError) Error() string {
	loc := e.Path
	if loc == "" {
		loc = "<input>"
	}
	if e.Line > 0 {
		loc = fmt.Sprintf("%s:%d", loc, e.Line)
	}
	if e.Column != "" {
		return fmt.Sprintf("load %s: %s: column %q: %v", e.Op, loc, e.Column, e.Err)
	}
	return fmt.Sprintf("load %s: %s: %v", e.Op, loc, e.Err)
}

func (e *LoadError) Unwrap() error {
	return e.Err
}

func newLoadError(op, path string, line int, column string, err error) *LoadError {
	return &LoadError{
		Op:     op,
		Path:   path,
		Line:   line,
		Column: column,
		Err:    err,
	}
}
