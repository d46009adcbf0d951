package errors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWrap_PreservesChain(t *testing.T) {
	sentinel := errors.New("boundary not found")
	wrapped := Wrap(fmt.Errorf("updating changelog: %w", sentinel), Runtime)

	require.NotNil(t, wrapped)
	assert.ErrorIs(t, wrapped, sentinel)
	assert.Equal(t, Runtime, wrapped.Category)
}

func TestWrap_NilError(t *testing.T) {
	assert.Nil(t, Wrap(nil, Runtime))
	assert.Nil(t, WrapWithMessage(nil, Runtime, "ignored"))
}

func TestAsCLIError(t *testing.T) {
	cliErr := NewPrerequisiteError("version line not found")
	assert.Equal(t, cliErr, AsCLIError(cliErr))

	// Through a wrapping chain.
	chained := fmt.Errorf("bump failed: %w", cliErr)
	assert.Equal(t, cliErr, AsCLIError(chained))

	assert.Nil(t, AsCLIError(errors.New("plain")))
	assert.Nil(t, AsCLIError(nil))
}

func TestFormatErrorPlain(t *testing.T) {
	err := NewPrerequisiteError(
		"working tree has uncommitted changes",
		"Commit or stash your changes",
	)

	out := FormatErrorPlain(err)
	assert.Contains(t, out, "Error [Prerequisite Error]: working tree has uncommitted changes")
	assert.Contains(t, out, "To fix this:")
	assert.Contains(t, out, "• Commit or stash your changes")
}

func TestCategoryString(t *testing.T) {
	assert.Equal(t, "Argument Error", Argument.String())
	assert.Equal(t, "Configuration Error", Configuration.String())
	assert.Equal(t, "Prerequisite Error", Prerequisite.String())
	assert.Equal(t, "Runtime Error", Runtime.String())
}
