package rdfc

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCodeNil(t *testing.T) {
	require.Equal(t, ErrorCode(""), Code(nil))
}

func TestCodeParseError(t *testing.T) {
	err := &ParseError{Line: 3, Statement: "bad", Err: errors.New("boom")}
	require.Equal(t, ErrCodeParseError, Code(err))
	require.ErrorIs(t, err, ErrInvalidNQuads)
	require.Contains(t, err.Error(), "nquads:3")
}

func TestCodeInvariantError(t *testing.T) {
	b := &BlankNode{Input: "x"}
	err := &InvariantError{BlankNode: b, InputLabel: "x"}
	require.Equal(t, ErrCodeInvariantViolation, Code(err))
	require.Contains(t, err.Error(), "x")
}

func TestParseErrorMessageWithoutColumn(t *testing.T) {
	err := &ParseError{Err: errors.New("boom")}
	require.Equal(t, "rdfc: nquads: boom", err.Error())
}
