// SPDX-License-Identifier: MIT

// Package colors implements the color math behind the token engine: WCAG
// contrast ratios and tint ramps derived from a single base color.
package colors

import (
	"github.com/lucasb-eyer/go-colorful"

	"github.com/thatcatcamp/stylelab/internal/apperrors"
)

// RGB is an 8-bit per channel color.
type RGB struct {
	R, G, B uint8
}

// ParseHex parses a #rrggbb color (either case). Short forms, missing '#'
// and non-hex digits are rejected with an InvalidColor error.
func ParseHex(s string) (RGB, error) {
	if len(s) != 7 || s[0] != '#' {
		return RGB{}, apperrors.NewInvalidColor(s)
	}
	for i := 1; i < len(s); i++ {
		if !isHexDigit(s[i]) {
			return RGB{}, apperrors.NewInvalidColor(s)
		}
	}
	c, err := colorful.Hex(s)
	if err != nil {
		return RGB{}, apperrors.NewInvalidColor(s)
	}
	r, g, b := c.RGB255()
	return RGB{R: r, G: g, B: b}, nil
}

// Hex formats the color as lowercase, zero-padded #rrggbb.
func (c RGB) Hex() string {
	return c.colorful().Hex()
}

func (c RGB) colorful() colorful.Color {
	return colorful.Color{R: float64(c.R) / 255, G: float64(c.G) / 255, B: float64(c.B) / 255}
}

// Lightness returns the CIE L* lightness of the color in [0,1]. Used to order
// shades perceptually rather than by raw channel sums.
func (c RGB) Lightness() float64 {
	l, _, _ := c.colorful().Lab()
	return l
}

func isHexDigit(b byte) bool {
	return ('0' <= b && b <= '9') || ('a' <= b && b <= 'f') || ('A' <= b && b <= 'F')
}
