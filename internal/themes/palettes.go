// SPDX-License-Identifier: MIT
package themes

import "github.com/thatcatcamp/stylelab/internal/apperrors"

// PaletteName identifies a color palette.
type PaletteName string

const (
	PaletteDefault   PaletteName = "default"
	PaletteOcean     PaletteName = "ocean"
	PaletteSunset    PaletteName = "sunset"
	PaletteForest    PaletteName = "forest"
	PalettePurple    PaletteName = "purple"
	PaletteCorporate PaletteName = "corporate"
	PaletteCyberpunk PaletteName = "cyberpunk"
	PalettePastel    PaletteName = "pastel"
	PaletteArtDeco   PaletteName = "art-deco"
	PaletteRetro     PaletteName = "retro"
)

// Mode selects the light or dark variant of a palette.
type Mode string

const (
	Light Mode = "light"
	Dark  Mode = "dark"
)

// ModeFor maps the dark-mode flag to a Mode.
func ModeFor(darkMode bool) Mode {
	if darkMode {
		return Dark
	}
	return Light
}

// Semantic color keys every palette defines.
const (
	KeyPrimary       = "--primary"
	KeySuccess       = "--success"
	KeyWarning       = "--warning"
	KeyError         = "--error"
	KeyInfo          = "--info"
	KeySurface       = "--surface"
	KeySurfaceAlt    = "--surface-alt"
	KeyText          = "--text"
	KeyTextSecondary = "--text-secondary"
	KeyBorder        = "--border"
)

// ColorKeys lists the semantic color tokens present in every palette.
var ColorKeys = []string{
	KeyPrimary, KeySuccess, KeyWarning, KeyError, KeyInfo,
	KeySurface, KeySurfaceAlt, KeyText, KeyTextSecondary, KeyBorder,
}

// Palette is one mode of a named palette. All values are #rrggbb.
type Palette struct {
	Name   PaletteName
	Mode   Mode
	Tokens []Token
}

// Get returns the color for key, reporting whether the palette defines it.
func (p Palette) Get(key string) (string, bool) {
	return lookup(p.Tokens, key)
}

type paletteKey struct {
	name PaletteName
	mode Mode
}

var paletteOrder = []PaletteName{
	PaletteDefault, PaletteOcean, PaletteSunset, PaletteForest, PalettePurple,
	PaletteCorporate, PaletteCyberpunk, PalettePastel, PaletteArtDeco, PaletteRetro,
}

// colorSet builds the ten semantic tokens in canonical order.
func colorSet(primary, success, warning, errorColor, info, surface, surfaceAlt, text, textSecondary, border string, accents ...Token) []Token {
	tokens := []Token{
		{KeyPrimary, primary},
		{KeySuccess, success},
		{KeyWarning, warning},
		{KeyError, errorColor},
		{KeyInfo, info},
		{KeySurface, surface},
		{KeySurfaceAlt, surfaceAlt},
		{KeyText, text},
		{KeyTextSecondary, textSecondary},
		{KeyBorder, border},
	}
	return append(tokens, accents...)
}

var paletteTable = map[paletteKey][]Token{
	{PaletteDefault, Light}:   colorSet("#3b82f6", "#10b981", "#f59e0b", "#ef4444", "#06b6d4", "#ffffff", "#f8fafc", "#0f172a", "#64748b", "#e2e8f0"),
	{PaletteOcean, Light}:     colorSet("#0891b2", "#06b6d4", "#fbbf24", "#dc2626", "#3b82f6", "#f0f9ff", "#e0f2fe", "#0c4a6e", "#0369a1", "#bae6fd"),
	{PaletteSunset, Light}:    colorSet("#f97316", "#84cc16", "#fbbf24", "#dc2626", "#8b5cf6", "#fff7ed", "#ffedd5", "#7c2d12", "#c2410c", "#fed7aa"),
	{PaletteForest, Light}:    colorSet("#059669", "#10b981", "#f59e0b", "#dc2626", "#0891b2", "#f0fdf4", "#dcfce7", "#14532d", "#166534", "#bbf7d0"),
	{PalettePurple, Light}:    colorSet("#7c3aed", "#10b981", "#f59e0b", "#ef4444", "#3b82f6", "#faf5ff", "#f3e8ff", "#581c87", "#7e22ce", "#e9d5ff"),
	{PaletteCorporate, Light}: colorSet("#1e3a8a", "#15803d", "#b45309", "#b91c1c", "#1d4ed8", "#ffffff", "#f1f5f9", "#172554", "#475569", "#cbd5e1"),
	{PaletteCyberpunk, Light}: colorSet("#00ff9d", "#00ffff", "#ff00ff", "#ff003c", "#9d00ff", "#0a0a0a", "#141414", "#ffffff", "#b0b0b0", "#333333",
		Token{"--neon-glow", "#00ff9d"}),
	{PalettePastel, Light}: colorSet("#a3d9b1", "#a3d9b1", "#ffd6a5", "#ffadad", "#caffbf", "#f9f7f7", "#f0ebeb", "#3f3f3f", "#7d7d7d", "#d9d9d9"),
	{PaletteArtDeco, Light}: colorSet("#003049", "#669bbc", "#f77f00", "#d62828", "#780000", "#ffffff", "#fdf0d5", "#2d3142", "#4a4e69", "#003049",
		Token{"--gold-accent", "#D4AF37"}),
	{PaletteRetro, Light}: colorSet("#ff6b6b", "#06d6a0", "#ffd166", "#ef476f", "#118ab2", "#f7f7f2", "#e9ecef", "#2d3142", "#4a4e69", "#c9ada7",
		Token{"--vintage-accent", "#d4a373"}),

	{PaletteDefault, Dark}:   colorSet("#60a5fa", "#34d399", "#fbbf24", "#f87171", "#22d3ee", "#1e293b", "#0f172a", "#f1f5f9", "#94a3b8", "#334155"),
	{PaletteOcean, Dark}:     colorSet("#22d3ee", "#4ade80", "#fbbf24", "#f87171", "#60a5fa", "#0c2d3a", "#051e2a", "#e0f2fe", "#38bdf8", "#164e63"),
	{PaletteSunset, Dark}:    colorSet("#fb923c", "#bef264", "#fbbf24", "#f87171", "#c084fc", "#3f2817", "#1f1409", "#fef3c7", "#fdba74", "#92400e"),
	{PaletteForest, Dark}:    colorSet("#34d399", "#34d399", "#fbbf24", "#f87171", "#22d3ee", "#064e3b", "#022c22", "#ecfdf5", "#6ee7b7", "#065f46"),
	{PalettePurple, Dark}:    colorSet("#a78bfa", "#34d399", "#fbbf24", "#f87171", "#60a5fa", "#2e1065", "#1e1b4b", "#f3e8ff", "#d8b4fe", "#5b21b6"),
	{PaletteCorporate, Dark}: colorSet("#60a5fa", "#4ade80", "#fbbf24", "#f87171", "#38bdf8", "#172554", "#0f172a", "#eff6ff", "#93c5fd", "#1e3a8a"),
	{PaletteCyberpunk, Dark}: colorSet("#00ff9d", "#00ffff", "#ff00ff", "#ff003c", "#9d00ff", "#000000", "#0a0a0a", "#ffffff", "#cccccc", "#00ff9d",
		Token{"--neon-glow", "#00ff9d"}),
	{PalettePastel, Dark}: colorSet("#a3d9b1", "#a3d9b1", "#ffd6a5", "#ffadad", "#caffbf", "#2d2d2d", "#3f3f3f", "#f9f7f7", "#d0d0d0", "#555555"),
	{PaletteArtDeco, Dark}: colorSet("#669bbc", "#94d2bd", "#f77f00", "#e63946", "#a8dadc", "#0d1b2a", "#1b263b", "#e0e1dd", "#778da9", "#415a77",
		Token{"--gold-accent", "#D4AF37"}),
	{PaletteRetro, Dark}: colorSet("#ff8fa3", "#56cfe1", "#ffd166", "#ff6b6b", "#118ab2", "#2d3142", "#4a4e69", "#f7f7f2", "#c9ada7", "#8d99ae",
		Token{"--vintage-accent", "#d4a373"}),
}

// GetPalette returns the palette for (name, mode). The token slice is a copy.
func GetPalette(name PaletteName, mode Mode) (Palette, error) {
	if mode != Light && mode != Dark {
		return Palette{}, apperrors.NewUnknownIdentifier("mode", string(mode))
	}
	tokens, ok := paletteTable[paletteKey{name, mode}]
	if !ok {
		return Palette{}, apperrors.NewUnknownIdentifier("palette", string(name))
	}
	return Palette{Name: name, Mode: mode, Tokens: append([]Token(nil), tokens...)}, nil
}

// ListPalettes returns all palette names in display order.
func ListPalettes() []PaletteName {
	return append([]PaletteName(nil), paletteOrder...)
}

// IsPalette reports whether name is a catalog palette.
func IsPalette(name string) bool {
	_, ok := paletteTable[paletteKey{PaletteName(name), Light}]
	return ok
}
