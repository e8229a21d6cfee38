package core

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWrapNilInner(t *testing.T) {
	err := Wrap(ErrParseFailure, "could not parse", nil)
	var cliErr CLIError
	require.ErrorAs(t, err, &cliErr)
	assert.Equal(t, "could not parse", cliErr.Error())
	assert.Empty(t, cliErr.Detail)
}

func TestWrapWithInner(t *testing.T) {
	inner := errors.New("unexpected token")
	err := Wrap(ErrParseFailure, "could not parse", inner)
	assert.Equal(t, "could not parse: unexpected token", err.Error())
}

func TestCLIErrorUnwrapMatchesSentinel(t *testing.T) {
	err := Wrap(ErrTargetNotFound, "no such element", nil)
	assert.True(t, errors.Is(err, ErrTargetNotFoundSentinel))
	assert.False(t, errors.Is(err, ErrParseFailureSentinel))
}

func TestCLIErrorJSON(t *testing.T) {
	err := NewError(ErrMalformedXPath, "bad address")
	cliErr := err.(CLIError)
	assert.JSONEq(t, `{"code":"ERR_MALFORMED_XPATH","message":"bad address"}`, cliErr.JSON())
}
