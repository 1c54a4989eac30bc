// SPDX-License-Identifier: MIT
package themes

import "github.com/thatcatcamp/stylelab/internal/apperrors"

// FontName identifies a font stack.
type FontName string

const (
	FontInter         FontName = "inter"
	FontRoboto        FontName = "roboto"
	FontPoppins       FontName = "poppins"
	FontGeorgia       FontName = "georgia"
	FontCourier       FontName = "courier"
	FontSpaceMono     FontName = "space-mono"
	FontJetBrainsMono FontName = "jetbrains-mono"
	FontSpaceGrotesk  FontName = "space-grotesk"
)

// KeyFontSans is the token the font stack is applied under.
const KeyFontSans = "--font-sans"

var fontOrder = []FontName{
	FontInter, FontRoboto, FontPoppins, FontGeorgia,
	FontCourier, FontSpaceMono, FontJetBrainsMono, FontSpaceGrotesk,
}

var fontStacks = map[FontName]string{
	FontInter:         `"Inter", system-ui, sans-serif`,
	FontRoboto:        `"Roboto", sans-serif`,
	FontPoppins:       `"Poppins", sans-serif`,
	FontGeorgia:       `"Georgia", serif`,
	FontCourier:       `"Courier Prime", monospace`,
	FontSpaceMono:     `"Space Mono", monospace`,
	FontJetBrainsMono: `"JetBrains Mono", monospace`,
	FontSpaceGrotesk:  `"Space Grotesk", sans-serif`,
}

// FontStack returns the CSS font-family stack for name.
func FontStack(name FontName) (string, error) {
	stack, ok := fontStacks[name]
	if !ok {
		return "", apperrors.NewUnknownIdentifier("font", string(name))
	}
	return stack, nil
}

// ListFonts returns all font names in display order.
func ListFonts() []FontName {
	return append([]FontName(nil), fontOrder...)
}

// AnimationSpeed is a transition duration class.
type AnimationSpeed string

const (
	SpeedFast   AnimationSpeed = "fast"
	SpeedNormal AnimationSpeed = "normal"
	SpeedSlow   AnimationSpeed = "slow"
	SpeedNone   AnimationSpeed = "none"
)

var speedDurations = map[AnimationSpeed]string{
	SpeedFast:   "150ms",
	SpeedNormal: "300ms",
	SpeedSlow:   "500ms",
	SpeedNone:   "0ms",
}

// TransitionDuration returns the CSS duration for speed.
func TransitionDuration(speed AnimationSpeed) (string, error) {
	d, ok := speedDurations[speed]
	if !ok {
		return "", apperrors.NewUnknownIdentifier("animation speed", string(speed))
	}
	return d, nil
}

// ListSpeeds returns the animation speed classes.
func ListSpeeds() []AnimationSpeed {
	return []AnimationSpeed{SpeedFast, SpeedNormal, SpeedSlow, SpeedNone}
}

// SpacingScale names a density preset for spacing.
type SpacingScale string

const (
	SpacingCompact SpacingScale = "compact"
	SpacingDefault SpacingScale = "default"
	SpacingRelaxed SpacingScale = "relaxed"
)

// Spacing is the unit (px) and growth factor of a spacing scale.
type Spacing struct {
	Unit  float64
	Scale float64
}

var spacingScales = map[SpacingScale]Spacing{
	SpacingCompact: {Unit: 2, Scale: 1.25},
	SpacingDefault: {Unit: 4, Scale: 1.5},
	SpacingRelaxed: {Unit: 8, Scale: 2},
}

// GetSpacing returns the spacing definition for scale.
func GetSpacing(scale SpacingScale) (Spacing, error) {
	s, ok := spacingScales[scale]
	if !ok {
		return Spacing{}, apperrors.NewUnknownIdentifier("spacing scale", string(scale))
	}
	return s, nil
}

// ListSpacingScales returns the spacing scales, densest first.
func ListSpacingScales() []SpacingScale {
	return []SpacingScale{SpacingCompact, SpacingDefault, SpacingRelaxed}
}
