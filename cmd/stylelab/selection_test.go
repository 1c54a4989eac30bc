// SPDX-License-Identifier: MIT
package main

import (
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thatcatcamp/stylelab/internal/apperrors"
	"github.com/thatcatcamp/stylelab/internal/logging"
	"github.com/thatcatcamp/stylelab/internal/share"
	"github.com/thatcatcamp/stylelab/internal/themes"
	"github.com/thatcatcamp/stylelab/internal/tokens"
)

func parsedCmd(t *testing.T, args ...string) *cobra.Command {
	t.Helper()
	cmd := &cobra.Command{Use: "test"}
	addSelectionFlags(cmd)
	require.NoError(t, cmd.ParseFlags(args))
	return cmd
}

func TestSelectionFromFlagsDefaults(t *testing.T) {
	sel, err := selectionFromFlags(parsedCmd(t), logging.Nop())
	require.NoError(t, err)
	assert.Equal(t, tokens.DefaultSelection(), sel)
}

func TestSelectionFromFlagsLayering(t *testing.T) {
	code, err := share.Encode(share.Config{
		Theme: themes.ArtDeco, Palette: themes.PaletteArtDeco, Font: themes.FontGeorgia,
		BaseFontSize: 18, TypeScale: 1.5,
	})
	require.NoError(t, err)

	sel, err := selectionFromFlags(parsedCmd(t,
		"--config", code,
		"--palette", "ocean",
		"--dark",
		"--spacing", "relaxed",
	), logging.Nop())
	require.NoError(t, err)

	assert.Equal(t, themes.ArtDeco, sel.Theme, "from share code")
	assert.Equal(t, 18.0, sel.BaseFontSize, "from share code")
	assert.Equal(t, themes.PaletteOcean, sel.Palette, "flag wins")
	assert.True(t, sel.DarkMode)
	assert.Equal(t, 8.0, sel.SpacingUnit)
}

func TestSelectionFromFlagsPresetThenOverride(t *testing.T) {
	sel, err := selectionFromFlags(parsedCmd(t, "--preset", "dark-cyberpunk", "--dark=false"), logging.Nop())
	require.NoError(t, err)
	assert.Equal(t, themes.Cyberpunk, sel.Theme)
	assert.False(t, sel.DarkMode)
}

func TestSelectionFromFlagsRejectsUnknown(t *testing.T) {
	_, err := selectionFromFlags(parsedCmd(t, "--theme", "vaporwave"), logging.Nop())
	require.ErrorIs(t, err, apperrors.ErrUnknownIdentifier)

	_, err = selectionFromFlags(parsedCmd(t, "--base", "40"), logging.Nop())
	require.ErrorIs(t, err, tokens.ErrInvalidSelection)

	_, err = selectionFromFlags(parsedCmd(t, "--preset", "nope"), logging.Nop())
	require.ErrorIs(t, err, apperrors.ErrUnknownIdentifier)
}

func TestSelectionFromFlagsIgnoresBadShareCode(t *testing.T) {
	sel, err := selectionFromFlags(parsedCmd(t, "--config", "not-base64!!"), logging.Nop())
	require.NoError(t, err)
	assert.Equal(t, tokens.DefaultSelection(), sel)
}
