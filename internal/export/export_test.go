// SPDX-License-Identifier: MIT
package export

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thatcatcamp/stylelab/internal/apperrors"
	"github.com/thatcatcamp/stylelab/internal/themes"
	"github.com/thatcatcamp/stylelab/internal/tokens"
)

func resolve(t *testing.T, theme themes.ThemeName, palette themes.PaletteName, dark bool) tokens.Set {
	t.Helper()
	sel := tokens.DefaultSelection()
	sel.Theme, sel.Palette, sel.DarkMode = theme, palette, dark
	set, err := tokens.Resolve(sel)
	require.NoError(t, err)
	return set
}

func TestGenerateCSSCyberpunkDark(t *testing.T) {
	set := resolve(t, themes.Cyberpunk, themes.PaletteCyberpunk, true)

	css, err := Format(set, TargetCSS)
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(css, ":root {\n"))
	assert.True(t, strings.HasSuffix(css, "}"))
	assert.Contains(t, css, "  --primary: #00ff9d;\n")
	assert.Contains(t, css, "  --radius: 0px;\n")
	assert.Contains(t, css, "  --scanline: ")
	assert.NotContains(t, css, "--h1-size", "typography stays out of the css export")
	assert.NotContains(t, css, "--font-sans")

	// theme tokens precede palette tokens
	assert.Less(t, strings.Index(css, "--radius"), strings.Index(css, "--primary"))
}

func TestGenerateCSSLineCount(t *testing.T) {
	set := resolve(t, themes.FlatModern, themes.PaletteDefault, false)
	css := GenerateCSS(set)

	lines := strings.Split(css, "\n")
	// :root line, 5 structural, 10 colors, closing brace
	assert.Len(t, lines, 17)
}

func TestGenerateTailwindShape(t *testing.T) {
	set := resolve(t, themes.FlatModern, themes.PaletteDefault, false)
	primary, _ := set.Get(themes.KeyPrimary)

	out, err := Format(set, TargetTailwind)
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(out, "module.exports = {\n  theme: {\n    extend: {\n"))
	assert.True(t, strings.HasSuffix(out, "};"))
	assert.Contains(t, out, "        primary: '"+primary+"',\n")
	assert.Contains(t, out, "      borderRadius: {\n        DEFAULT: '8px',\n      },\n")
	assert.Contains(t, out, "        lg: '0 12px 32px rgba(0,0,0,0.12)',\n")
	assert.NotContains(t, out, "surface")
}

func TestJSEscape(t *testing.T) {
	assert.Equal(t, `it\'s`, jsEscape("it's"))
	assert.Equal(t, `a\\b`, jsEscape(`a\b`))
	assert.Equal(t, `x\ny`, jsEscape("x\ny"))
}

func TestGenerateFigmaAlwaysValidJSON(t *testing.T) {
	for _, themeName := range themes.ListThemes() {
		for _, paletteName := range themes.ListPalettes() {
			for _, dark := range []bool{false, true} {
				set := resolve(t, themeName, paletteName, dark)

				out, err := Format(set, TargetFigma)
				require.NoError(t, err)

				var doc struct {
					Name   string            `json:"name"`
					Colors map[string]string `json:"colors"`
					Radii  map[string]string `json:"radii"`
				}
				require.NoError(t, json.Unmarshal([]byte(out), &doc), "%s/%s dark=%v", themeName, paletteName, dark)
				assert.Equal(t, string(themeName)+"-"+string(paletteName), doc.Name)

				radius, _ := set.Get(themes.KeyRadius)
				assert.Equal(t, radius, doc.Radii["DEFAULT"])

				for _, e := range set.Group(tokens.GroupPalette) {
					assert.Equal(t, e.Value, doc.Colors[strings.TrimPrefix(e.Key, "--")])
				}
			}
		}
	}
}

func TestGenerateFigmaKeepsColorOrder(t *testing.T) {
	set := resolve(t, themes.ArtDeco, themes.PaletteArtDeco, false)
	out, err := GenerateFigma(set)
	require.NoError(t, err)

	assert.Less(t, strings.Index(out, `"primary"`), strings.Index(out, `"border"`))
	assert.Contains(t, out, `"gold-accent": "#D4AF37"`)
}

func TestParseTarget(t *testing.T) {
	cases := map[string]Target{
		"css":                      TargetCSS,
		"CSS":                      TargetCSS,
		"structural-stylesheet":    TargetCSS,
		"tailwind":                 TargetTailwind,
		"utility-framework-config": TargetTailwind,
		"figma":                    TargetFigma,
		" design-tool-tokens ":     TargetFigma,
	}
	for in, want := range cases {
		got, err := ParseTarget(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}
}

func TestReservedAndUnknownTargets(t *testing.T) {
	for _, name := range []string{"scss", "style-dictionary"} {
		_, err := ParseTarget(name)
		require.ErrorIs(t, err, apperrors.ErrUnsupportedFormat)
		assert.Contains(t, err.Error(), "reserved")
	}

	_, err := ParseTarget("pdf")
	require.ErrorIs(t, err, apperrors.ErrUnsupportedFormat)
	assert.NotContains(t, err.Error(), "reserved")

	set := resolve(t, themes.FlatModern, themes.PaletteDefault, false)
	_, err = Format(set, TargetSCSS)
	require.ErrorIs(t, err, apperrors.ErrUnsupportedFormat)
	_, err = Format(set, Target("xml"))
	require.ErrorIs(t, err, apperrors.ErrUnsupportedFormat)
}

func TestFileName(t *testing.T) {
	set := resolve(t, themes.Cyberpunk, themes.PaletteCyberpunk, true)
	assert.Equal(t, "cyberpunk-cyberpunk.css", FileName(set, TargetCSS))
	assert.Equal(t, "tailwind.config.js", FileName(set, TargetTailwind))
	assert.Equal(t, "cyberpunk-cyberpunk.tokens.json", FileName(set, TargetFigma))
}
