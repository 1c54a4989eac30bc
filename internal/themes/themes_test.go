// SPDX-License-Identifier: MIT
package themes

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thatcatcamp/stylelab/internal/apperrors"
)

func TestCatalogValidates(t *testing.T) {
	require.NoError(t, validateCatalog())
}

func TestListThemes(t *testing.T) {
	themes := ListThemes()
	require.Len(t, themes, 12)

	names := make(map[ThemeName]bool)
	for _, name := range themes {
		require.False(t, names[name], "duplicate theme name: %s", name)
		names[name] = true
		require.True(t, IsTheme(string(name)))
	}
}

func TestGetThemeHasStructuralTokens(t *testing.T) {
	for _, name := range ListThemes() {
		theme, err := GetTheme(name)
		require.NoError(t, err)
		for _, key := range StructuralKeys {
			v, ok := theme.Get(key)
			assert.True(t, ok, "%s missing %s", name, key)
			assert.NotEmpty(t, v)
		}
	}
}

func TestDecorativeTokensAreOptional(t *testing.T) {
	flat, err := GetTheme(FlatModern)
	require.NoError(t, err)
	_, ok := flat.Get("--scanline")
	assert.False(t, ok)
	assert.Len(t, flat.Tokens, len(StructuralKeys))

	cyber, err := GetTheme(Cyberpunk)
	require.NoError(t, err)
	scan, ok := cyber.Get("--scanline")
	assert.True(t, ok)
	assert.True(t, strings.HasPrefix(scan, "repeating-linear-gradient"))
}

func TestGetThemeReturnsCopy(t *testing.T) {
	theme, err := GetTheme(Material)
	require.NoError(t, err)
	theme.Tokens[0].Value = "999px"

	again, err := GetTheme(Material)
	require.NoError(t, err)
	radius, _ := again.Get(KeyRadius)
	assert.Equal(t, "4px", radius)
}

func TestGetThemeUnknown(t *testing.T) {
	_, err := GetTheme("vaporwave")
	require.ErrorIs(t, err, apperrors.ErrUnknownIdentifier)
}

func TestPalettesExistInBothModes(t *testing.T) {
	palettes := ListPalettes()
	require.Len(t, palettes, 10)

	for _, name := range palettes {
		light, err := GetPalette(name, Light)
		require.NoError(t, err)
		dark, err := GetPalette(name, Dark)
		require.NoError(t, err)

		for _, key := range ColorKeys {
			_, ok := light.Get(key)
			assert.True(t, ok, "%s/light missing %s", name, key)
			_, ok = dark.Get(key)
			assert.True(t, ok, "%s/dark missing %s", name, key)
		}
		assert.NotEqual(t, light.Tokens, dark.Tokens, "%s light and dark should differ", name)
	}
}

func TestCyberpunkPalette(t *testing.T) {
	p, err := GetPalette(PaletteCyberpunk, Dark)
	require.NoError(t, err)

	primary, _ := p.Get(KeyPrimary)
	assert.Equal(t, "#00ff9d", primary)
	glow, ok := p.Get("--neon-glow")
	assert.True(t, ok)
	assert.Equal(t, "#00ff9d", glow)
}

func TestGetPaletteUnknown(t *testing.T) {
	_, err := GetPalette("mauve", Light)
	require.ErrorIs(t, err, apperrors.ErrUnknownIdentifier)

	_, err = GetPalette(PaletteOcean, "dusk")
	require.ErrorIs(t, err, apperrors.ErrUnknownIdentifier)
}

func TestModeFor(t *testing.T) {
	assert.Equal(t, Dark, ModeFor(true))
	assert.Equal(t, Light, ModeFor(false))
}

func TestFontStacks(t *testing.T) {
	require.Len(t, ListFonts(), 8)
	stack, err := FontStack(FontJetBrainsMono)
	require.NoError(t, err)
	assert.Equal(t, `"JetBrains Mono", monospace`, stack)

	_, err = FontStack("comic-sans")
	require.ErrorIs(t, err, apperrors.ErrUnknownIdentifier)
}

func TestTransitionDurations(t *testing.T) {
	want := map[AnimationSpeed]string{SpeedFast: "150ms", SpeedNormal: "300ms", SpeedSlow: "500ms", SpeedNone: "0ms"}
	for _, speed := range ListSpeeds() {
		d, err := TransitionDuration(speed)
		require.NoError(t, err)
		assert.Equal(t, want[speed], d)
	}
	_, err := TransitionDuration("ludicrous")
	require.ErrorIs(t, err, apperrors.ErrUnknownIdentifier)
}

func TestSpacingScales(t *testing.T) {
	s, err := GetSpacing(SpacingRelaxed)
	require.NoError(t, err)
	assert.Equal(t, Spacing{Unit: 8, Scale: 2}, s)
	assert.Len(t, ListSpacingScales(), 3)
}

func TestPresets(t *testing.T) {
	presets := ListPresets()
	require.Len(t, presets, 4)
	assert.Equal(t, "material-ocean", presets[0].Name)

	p, err := GetPreset("dark-cyberpunk")
	require.NoError(t, err)
	assert.Equal(t, Cyberpunk, p.Theme)
	assert.True(t, p.DarkMode)

	_, err = GetPreset("nope")
	require.ErrorIs(t, err, apperrors.ErrUnknownIdentifier)
}

func TestCheckTokensRejectsBadDescriptors(t *testing.T) {
	required := []string{KeyRadius, KeyShadow}

	err := checkTokens("short", []Token{{KeyRadius, "1px"}}, required)
	assert.Error(t, err)

	err = checkTokens("order", []Token{{KeyShadow, "x"}, {KeyRadius, "1px"}}, required)
	assert.Error(t, err)

	err = checkTokens("empty", []Token{{KeyRadius, ""}, {KeyShadow, "x"}}, required)
	assert.Error(t, err)

	err = checkTokens("dup", []Token{{KeyRadius, "1px"}, {KeyShadow, "x"}, {KeyShadow, "y"}}, required)
	assert.Error(t, err)
}
