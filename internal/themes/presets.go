// SPDX-License-Identifier: MIT
package themes

import "github.com/thatcatcamp/stylelab/internal/apperrors"

// Preset is a named starting point. Zero BaseFontSize or TypeScale means the
// preset leaves the current value alone.
type Preset struct {
	Name         string      `json:"name"`
	Theme        ThemeName   `json:"theme"`
	Palette      PaletteName `json:"palette"`
	Font         FontName    `json:"font"`
	DarkMode     bool        `json:"darkMode"`
	BaseFontSize float64     `json:"baseFontSize,omitempty"`
	TypeScale    float64     `json:"typeScale,omitempty"`
}

var presetOrder = []string{"material-ocean", "dark-cyberpunk", "retro-vintage", "minimalist-clean"}

var presets = map[string]Preset{
	"material-ocean": {
		Name: "material-ocean", Theme: Material, Palette: PaletteOcean, Font: FontRoboto,
		DarkMode: false, BaseFontSize: 16, TypeScale: 1.25,
	},
	"dark-cyberpunk": {
		Name: "dark-cyberpunk", Theme: Cyberpunk, Palette: PaletteCyberpunk, Font: FontJetBrainsMono,
		DarkMode: true, BaseFontSize: 16, TypeScale: 1.25,
	},
	"retro-vintage": {
		Name: "retro-vintage", Theme: RetroVintage, Palette: PaletteRetro, Font: FontCourier,
		DarkMode: false, BaseFontSize: 16, TypeScale: 1.25,
	},
	"minimalist-clean": {
		Name: "minimalist-clean", Theme: Minimalist, Palette: PaletteDefault, Font: FontInter,
		DarkMode: false, BaseFontSize: 16, TypeScale: 1.2,
	},
}

// GetPreset returns the preset called name.
func GetPreset(name string) (Preset, error) {
	p, ok := presets[name]
	if !ok {
		return Preset{}, apperrors.NewUnknownIdentifier("preset", name)
	}
	return p, nil
}

// ListPresets returns every preset in display order.
func ListPresets() []Preset {
	out := make([]Preset, 0, len(presetOrder))
	for _, name := range presetOrder {
		out = append(out, presets[name])
	}
	return out
}
