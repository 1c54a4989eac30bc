// SPDX-License-Identifier: MIT
package tokens

import (
	"strings"

	"github.com/thatcatcamp/stylelab/internal/colors"
	"github.com/thatcatcamp/stylelab/internal/themes"
)

// Resolve merges the selected theme, palette variant, typography and font
// stack into a fresh Set, in that order. It does not range-check numbers;
// callers validate at the input boundary. Catalog misses fail with an
// UnknownIdentifier error.
func Resolve(sel Selection) (Set, error) {
	theme, err := themes.GetTheme(sel.Theme)
	if err != nil {
		return Set{}, err
	}
	palette, err := themes.GetPalette(sel.Palette, sel.Mode())
	if err != nil {
		return Set{}, err
	}
	stack, err := themes.FontStack(sel.Font)
	if err != nil {
		return Set{}, err
	}

	set := newSet(sel.Theme, sel.Palette, sel.Mode(), len(theme.Tokens)+len(palette.Tokens)+12)
	for _, tok := range theme.Tokens {
		set.add(tok.Key, tok.Value, GroupTheme)
	}
	for _, tok := range palette.Tokens {
		set.add(tok.Key, tok.Value, GroupPalette)
	}
	if err := addTypography(set, sel); err != nil {
		return Set{}, err
	}
	set.add(themes.KeyFontSans, stack, GroupFont)

	return *set, nil
}

// PaletteContrast is one row of the accessibility panel.
type PaletteContrast struct {
	Key     string                `json:"key"`
	Color   string                `json:"color"`
	Against string                `json:"against"`
	Report  colors.ContrastReport `json:"report"`
}

// ContrastAgainst returns the text color palette colors are checked against:
// white in dark mode, black in light mode.
func ContrastAgainst(mode themes.Mode) string {
	if mode == themes.Dark {
		return "#ffffff"
	}
	return "#000000"
}

// PaletteContrastReport evaluates every palette color of set that is not a
// surface or text color against ContrastAgainst(set.Mode).
func PaletteContrastReport(set Set) ([]PaletteContrast, error) {
	against := ContrastAgainst(set.Mode)
	var rows []PaletteContrast
	for _, e := range set.Group(GroupPalette) {
		if strings.Contains(e.Key, "surface") || strings.Contains(e.Key, "text") {
			continue
		}
		report, err := colors.Contrast(e.Value, against)
		if err != nil {
			return nil, err
		}
		rows = append(rows, PaletteContrast{Key: e.Key, Color: e.Value, Against: against, Report: report})
	}
	return rows, nil
}
