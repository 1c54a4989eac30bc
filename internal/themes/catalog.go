// SPDX-License-Identifier: MIT
package themes

import (
	"fmt"

	"github.com/thatcatcamp/stylelab/internal/colors"
)

func init() {
	if err := validateCatalog(); err != nil {
		panic(fmt.Sprintf("themes: invalid catalog: %v", err))
	}
}

// validateCatalog checks the static tables once. A failure here is a
// programming error in the tables themselves.
func validateCatalog() error {
	if len(themeTable) != len(themeOrder) {
		return fmt.Errorf("theme order lists %d themes, table has %d", len(themeOrder), len(themeTable))
	}
	for _, name := range themeOrder {
		tokens, ok := themeTable[name]
		if !ok {
			return fmt.Errorf("theme %s has no descriptor", name)
		}
		if err := checkTokens(string(name), tokens, StructuralKeys); err != nil {
			return err
		}
	}

	if len(paletteTable) != 2*len(paletteOrder) {
		return fmt.Errorf("expected %d palette variants, have %d", 2*len(paletteOrder), len(paletteTable))
	}
	for _, name := range paletteOrder {
		for _, mode := range []Mode{Light, Dark} {
			tokens, ok := paletteTable[paletteKey{name, mode}]
			if !ok {
				return fmt.Errorf("palette %s has no %s variant", name, mode)
			}
			label := fmt.Sprintf("%s/%s", name, mode)
			if err := checkTokens(label, tokens, ColorKeys); err != nil {
				return err
			}
			for _, tok := range tokens {
				if _, err := colors.ParseHex(tok.Value); err != nil {
					return fmt.Errorf("palette %s %s: %w", label, tok.Key, err)
				}
			}
		}
	}

	for _, name := range fontOrder {
		if _, ok := fontStacks[name]; !ok {
			return fmt.Errorf("font %s has no stack", name)
		}
	}

	for _, name := range presetOrder {
		p, ok := presets[name]
		if !ok {
			return fmt.Errorf("preset %s missing", name)
		}
		if _, ok := themeTable[p.Theme]; !ok {
			return fmt.Errorf("preset %s: unknown theme %s", name, p.Theme)
		}
		if !IsPalette(string(p.Palette)) {
			return fmt.Errorf("preset %s: unknown palette %s", name, p.Palette)
		}
		if _, ok := fontStacks[p.Font]; !ok {
			return fmt.Errorf("preset %s: unknown font %s", name, p.Font)
		}
	}
	return nil
}

// checkTokens verifies required keys lead the list in order and no key repeats.
func checkTokens(label string, tokens []Token, required []string) error {
	if len(tokens) < len(required) {
		return fmt.Errorf("%s: %d tokens, need at least %d", label, len(tokens), len(required))
	}
	seen := make(map[string]bool, len(tokens))
	for i, tok := range tokens {
		if i < len(required) && tok.Key != required[i] {
			return fmt.Errorf("%s: token %d is %s, want %s", label, i, tok.Key, required[i])
		}
		if tok.Value == "" {
			return fmt.Errorf("%s: %s is empty", label, tok.Key)
		}
		if seen[tok.Key] {
			return fmt.Errorf("%s: duplicate key %s", label, tok.Key)
		}
		seen[tok.Key] = true
	}
	return nil
}
