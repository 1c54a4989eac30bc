// SPDX-License-Identifier: MIT

// Package themes holds the static token catalog: theme descriptors, light and
// dark palettes, font stacks, animation speeds, spacing scales and presets.
// Everything here is read-only after package initialization.
package themes

import "github.com/thatcatcamp/stylelab/internal/apperrors"

// ThemeName identifies a structural theme.
type ThemeName string

const (
	FlatModern    ThemeName = "flat-modern"
	NeoBrutalist  ThemeName = "neo-brutalist"
	Skeuomorphic  ThemeName = "skeuomorphic"
	Neumorphic    ThemeName = "neumorphic"
	Glassmorphism ThemeName = "glassmorphism"
	Material      ThemeName = "material"
	RetroVintage  ThemeName = "retro-vintage"
	Cyberpunk     ThemeName = "cyberpunk"
	OrganicModern ThemeName = "organic-modern"
	Minimalist    ThemeName = "minimalist"
	ArtDeco       ThemeName = "art-deco"
	Claymorphism  ThemeName = "claymorphism"
)

// Structural token keys every theme defines.
const (
	KeyRadius          = "--radius"
	KeyShadow          = "--shadow"
	KeyShadowLarge     = "--shadow-lg"
	KeyBorderWidth     = "--border-width"
	KeyButtonTransform = "--button-transform"
)

// StructuralKeys lists the tokens present in every theme, in merge order.
var StructuralKeys = []string{KeyRadius, KeyShadow, KeyShadowLarge, KeyBorderWidth, KeyButtonTransform}

// Token is a single named value. Descriptors keep tokens in a slice so the
// order they were declared in is the order they are merged and exported in.
type Token struct {
	Key   string
	Value string
}

// Theme is a structural descriptor: radius, shadows, border, pressed-state
// transform and any decorative extras the theme ships with.
type Theme struct {
	Name   ThemeName
	Tokens []Token
}

// Get returns the value for key, reporting whether the theme defines it.
func (t Theme) Get(key string) (string, bool) {
	return lookup(t.Tokens, key)
}

func lookup(tokens []Token, key string) (string, bool) {
	for _, tok := range tokens {
		if tok.Key == key {
			return tok.Value, true
		}
	}
	return "", false
}

var themeOrder = []ThemeName{
	FlatModern, NeoBrutalist, Skeuomorphic, Neumorphic, Glassmorphism, Material,
	RetroVintage, Cyberpunk, OrganicModern, Minimalist, ArtDeco, Claymorphism,
}

var themeTable = map[ThemeName][]Token{
	FlatModern: {
		{KeyRadius, "8px"},
		{KeyShadow, "0 2px 8px rgba(0,0,0,0.08)"},
		{KeyShadowLarge, "0 12px 32px rgba(0,0,0,0.12)"},
		{KeyBorderWidth, "1px"},
		{KeyButtonTransform, "scale(0.98)"},
	},
	NeoBrutalist: {
		{KeyRadius, "0px"},
		{KeyShadow, "4px 4px 0 rgba(0,0,0,1)"},
		{KeyShadowLarge, "8px 8px 0 rgba(0,0,0,1)"},
		{KeyBorderWidth, "3px"},
		{KeyButtonTransform, "translate(2px, 2px)"},
	},
	Skeuomorphic: {
		{KeyRadius, "12px"},
		{KeyShadow, "inset 0 1px 0 rgba(255,255,255,0.6), 0 2px 6px rgba(0,0,0,0.1)"},
		{KeyShadowLarge, "inset 0 1px 0 rgba(255,255,255,0.6), 0 12px 24px rgba(0,0,0,0.15)"},
		{KeyBorderWidth, "1px"},
		{KeyButtonTransform, "scale(0.97)"},
	},
	Neumorphic: {
		{KeyRadius, "20px"},
		{KeyShadow, "9px 9px 18px rgba(163,177,198,0.4), -9px -9px 18px rgba(255,255,255,0.8)"},
		{KeyShadowLarge, "18px 18px 36px rgba(163,177,198,0.4), -18px -18px 36px rgba(255,255,255,0.8)"},
		{KeyBorderWidth, "0px"},
		{KeyButtonTransform, "scale(0.98)"},
	},
	Glassmorphism: {
		{KeyRadius, "16px"},
		{KeyShadow, "0 8px 32px rgba(0,0,0,0.1)"},
		{KeyShadowLarge, "0 16px 48px rgba(0,0,0,0.15)"},
		{KeyBorderWidth, "1px"},
		{KeyButtonTransform, "scale(0.97)"},
	},
	Material: {
		{KeyRadius, "4px"},
		{KeyShadow, "0 2px 4px rgba(0,0,0,0.14), 0 3px 4px rgba(0,0,0,0.12)"},
		{KeyShadowLarge, "0 8px 10px rgba(0,0,0,0.14), 0 3px 14px rgba(0,0,0,0.12)"},
		{KeyBorderWidth, "0px"},
		{KeyButtonTransform, "scale(1)"},
	},
	RetroVintage: {
		{KeyRadius, "12px"},
		{KeyShadow, "0 4px 12px rgba(0, 0, 0, 0.3), inset 0 2px 0 rgba(255, 255, 255, 0.4)"},
		{KeyShadowLarge, "0 8px 24px rgba(0, 0, 0, 0.4), inset 0 4px 0 rgba(255, 255, 255, 0.3)"},
		{KeyBorderWidth, "2px"},
		{KeyButtonTransform, "scale(0.95) rotate(-1deg)"},
		{"--texture", `url("data:image/svg+xml,%3Csvg width='100' height='100' viewBox='0 0 100 100' xmlns='http://www.w3.org/2000/svg'%3E%3Cpath d='M0 0h100v100H0z' fill='none'/%3E%3Cpath d='M20 20h60v60H20z' stroke='rgba(0,0,0,0.1)' stroke-width='2' fill='none'/%3E%3C/svg%3E")`},
	},
	Cyberpunk: {
		{KeyRadius, "0px"},
		{KeyShadow, "0 0 15px var(--neon-glow, #00ff9d), 0 0 30px var(--neon-glow, #00ff9d), inset 0 0 10px rgba(0, 255, 157, 0.2)"},
		{KeyShadowLarge, "0 0 30px var(--neon-glow, #ff00ff), 0 0 60px var(--neon-glow, #ff00ff), inset 0 0 20px rgba(255, 0, 255, 0.3)"},
		{KeyBorderWidth, "2px"},
		{KeyButtonTransform, "translate(3px, 3px)"},
		{"--scanline", "repeating-linear-gradient(0deg, transparent, transparent 2px, rgba(0, 255, 157, 0.1) 2px, rgba(0, 255, 157, 0.1) 4px)"},
		{"--grid-bg", "linear-gradient(rgba(0, 255, 157, 0.1) 1px, transparent 1px), linear-gradient(90deg, rgba(0, 255, 157, 0.1) 1px, transparent 1px)"},
	},
	Claymorphism: {
		{KeyRadius, "30px"},
		{KeyShadow, "8px 8px 16px rgba(174,174,192,0.4), -8px -8px 16px rgba(255,255,255,0.8)"},
		{KeyShadowLarge, "12px 12px 24px rgba(174,174,192,0.4), -12px -12px 24px rgba(255,255,255,0.8)"},
		{KeyBorderWidth, "0px"},
		{KeyButtonTransform, "scale(0.98)"},
	},
	OrganicModern: {
		{KeyRadius, "24px"},
		{KeyShadow, "8px 8px 24px rgba(0, 0, 0, 0.08), -8px -8px 24px rgba(255, 255, 255, 0.8)"},
		{KeyShadowLarge, "16px 16px 48px rgba(0, 0, 0, 0.1), -16px -16px 48px rgba(255, 255, 255, 0.9)"},
		{KeyBorderWidth, "0px"},
		{KeyButtonTransform, "scale(0.96)"},
		{"--organic-wave", `url("data:image/svg+xml,%3Csvg viewBox="0 0 100 20" xmlns="http://www.w3.org/2000/svg"%3E%3Cpath d="M0,10 c20,-15 40,15 60,-5 c20,-15 40,15 60,-5 v10 h-120 z" fill="rgba(0,0,0,0.02)"/%3E%3C/svg%3E")`},
		{"--flow-gradient", "radial-gradient(circle at 30% 30%, rgba(255,255,255,0.8) 0%, transparent 70%)"},
	},
	Minimalist: {
		{KeyRadius, "2px"},
		{KeyShadow, "0 1px 3px rgba(0, 0, 0, 0.05)"},
		{KeyShadowLarge, "0 2px 6px rgba(0, 0, 0, 0.05)"},
		{KeyBorderWidth, "1px"},
		{KeyButtonTransform, "none"},
		{"--minimal-grid", "repeating-linear-gradient(0deg, transparent, transparent 8px, rgba(0,0,0,0.02) 8px, rgba(0,0,0,0.02) 16px)"},
	},
	ArtDeco: {
		{KeyRadius, "0px"},
		{KeyShadow, "8px 8px 0px rgba(0, 0, 0, 0.2), 16px 16px 0px rgba(0, 0, 0, 0.1)"},
		{KeyShadowLarge, "16px 16px 0px rgba(0, 0, 0, 0.25), 32px 32px 0px rgba(0, 0, 0, 0.15)"},
		{KeyBorderWidth, "4px"},
		{KeyButtonTransform, "translate(4px, 4px) rotate(1deg)"},
		{"--geometric-pattern", `url("data:image/svg+xml,%3Csvg width="40" height="40" viewBox="0 0 40 40" xmlns="http://www.w3.org/2000/svg"%3E%3Cg fill="rgba(0,0,0,0.05)" fill-rule="evenodd"%3E%3Cpath d="M0 40L40 0H20L0 20z"/%3E%3Cpath d="M40 40V20L20 40z"/%3E%3C/g%3E%3C/svg%3E")`},
		{"--gold-gradient", "linear-gradient(135deg, #D4AF37 0%, #FFD700 25%, #F5F5DC 50%, #FFD700 75%, #D4AF37 100%)"},
	},
}

// GetTheme returns the descriptor for name. The token slice is a copy.
func GetTheme(name ThemeName) (Theme, error) {
	tokens, ok := themeTable[name]
	if !ok {
		return Theme{}, apperrors.NewUnknownIdentifier("theme", string(name))
	}
	return Theme{Name: name, Tokens: append([]Token(nil), tokens...)}, nil
}

// ListThemes returns all theme names in display order.
func ListThemes() []ThemeName {
	return append([]ThemeName(nil), themeOrder...)
}

// IsTheme reports whether name is a catalog theme.
func IsTheme(name string) bool {
	_, ok := themeTable[ThemeName(name)]
	return ok
}
