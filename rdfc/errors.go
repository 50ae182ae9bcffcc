package rdfc

import (
	"errors"
	"fmt"
)

// ErrorCode represents a programmatic error code for error handling.
type ErrorCode string

const (
	// ErrCodeParseError indicates a malformed N-Quads input.
	ErrCodeParseError ErrorCode = "PARSE_ERROR"
	// ErrCodeInvariantViolation indicates a bug in the canonicalizer: a
	// blank node present in the dataset was never issued a canonical
	// label. Never reached on conformant executions.
	ErrCodeInvariantViolation ErrorCode = "INVARIANT_VIOLATION"
)

var (
	// ErrInvalidNQuads is wrapped by parse failures from the N-Quads decoder.
	ErrInvalidNQuads = errors.New("rdfc: invalid N-Quads input")
)

// Code returns the error code for an error, or "" if err is nil or carries
// no known code.
func Code(err error) ErrorCode {
	if err == nil {
		return ""
	}
	var parseErr *ParseError
	if errors.As(err, &parseErr) {
		return ErrCodeParseError
	}
	var invErr *InvariantError
	if errors.As(err, &invErr) {
		return ErrCodeInvariantViolation
	}
	if errors.Is(err, ErrInvalidNQuads) {
		return ErrCodeParseError
	}
	return ""
}

// ParseError provides structured context for N-Quads parse failures.
type ParseError struct {
	Line      int    // 1-based line number (0 if unknown)
	Column    int    // 1-based column number (0 if unknown)
	Statement string // offending line
	Err       error
}

func (e *ParseError) Error() string {
	if e.Column > 0 {
		return fmt.Sprintf("rdfc: nquads:%d:%d: %v\n  %s", e.Line, e.Column, e.Err, e.Statement)
	}
	if e.Line > 0 {
		return fmt.Sprintf("rdfc: nquads:%d: %v\n  %s", e.Line, e.Err, e.Statement)
	}
	return fmt.Sprintf("rdfc: nquads: %v", e.Err)
}

func (e *ParseError) Unwrap() error { return errors.Join(e.Err, ErrInvalidNQuads) }

// InvariantError reports a canonicalizer bug: a blank node present in the
// input was never issued a canonical label by the driver. This is never
// reached on conformant executions; it is distinguishable from ParseError
// via errors.As so callers can tell a library defect from bad input.
type InvariantError struct {
	BlankNode  *BlankNode
	InputLabel string
}

func (e *InvariantError) Error() string {
	return fmt.Sprintf("rdfc: internal invariant violated: blank node %q was never issued a canonical label", e.InputLabel)
}
