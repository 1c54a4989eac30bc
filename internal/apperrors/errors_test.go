// SPDX-License-Identifier: MIT
package apperrors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestErrorsMatchSentinels(t *testing.T) {
	cause := errors.New("boom")

	tests := []struct {
		name     string
		err      error
		sentinel error
		message  string
	}{
		{"unknown identifier", NewUnknownIdentifier("theme", "vaporwave"), ErrUnknownIdentifier, `unknown theme: "vaporwave"`},
		{"invalid color", NewInvalidColor("#12"), ErrInvalidColor, `invalid color "#12": want #rrggbb`},
		{"apply", NewApplyError("--radius", cause), ErrApply, "apply error on --radius: boom"},
		{"unsupported", NewUnsupportedFormat("xml", false), ErrUnsupportedFormat, `unsupported format "xml"`},
		{"reserved", NewUnsupportedFormat("scss", true), ErrUnsupportedFormat, `unsupported format "scss": reserved, not implemented`},
		{"decode", NewDecodeError(cause), ErrDecode, "decode failure: boom"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			wrapped := fmt.Errorf("outer: %w", tt.err)
			require.ErrorIs(t, wrapped, tt.sentinel)
			require.Equal(t, tt.message, tt.err.Error())
		})
	}
}

func TestApplyErrorUnwrapsCause(t *testing.T) {
	cause := errors.New("host rejected property")
	err := NewApplyError("", cause)

	require.ErrorIs(t, err, cause)
	require.Equal(t, "apply error: host rejected property", err.Error())

	var applyErr *ApplyError
	require.True(t, errors.As(err, &applyErr))
	require.Empty(t, applyErr.Key)
}

func TestSentinelsDoNotCrossMatch(t *testing.T) {
	err := NewInvalidColor("nope")
	require.False(t, errors.Is(err, ErrUnknownIdentifier))
	require.False(t, errors.Is(err, ErrApply))
}
