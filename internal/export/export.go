// SPDX-License-Identifier: MIT

// Package export renders a resolved token set into the formats downstream
// tools import: a CSS custom-property block, a Tailwind config and a Figma
// token document.
package export

import (
	"strings"

	"github.com/thatcatcamp/stylelab/internal/apperrors"
	"github.com/thatcatcamp/stylelab/internal/tokens"
)

// Target is an export format.
type Target string

const (
	// TargetCSS is the structural stylesheet: one :root block.
	TargetCSS Target = "css"
	// TargetTailwind is the utility-framework config module.
	TargetTailwind Target = "tailwind"
	// TargetFigma is the design-tool token JSON document.
	TargetFigma Target = "figma"

	// Reserved: advertised names without a defined shape.
	TargetSCSS            Target = "scss"
	TargetStyleDictionary Target = "style-dictionary"
)

// Targets returns the implemented targets.
func Targets() []Target {
	return []Target{TargetCSS, TargetTailwind, TargetFigma}
}

// ParseTarget maps a user-supplied name (or its long alias) to a Target.
// Reserved and unknown names fail with UnsupportedFormat.
func ParseTarget(s string) (Target, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "css", "structural-stylesheet":
		return TargetCSS, nil
	case "tailwind", "utility-framework-config":
		return TargetTailwind, nil
	case "figma", "design-tool-tokens":
		return TargetFigma, nil
	case string(TargetSCSS), string(TargetStyleDictionary):
		return "", apperrors.NewUnsupportedFormat(s, true)
	default:
		return "", apperrors.NewUnsupportedFormat(s, false)
	}
}

// Format renders set for target.
func Format(set tokens.Set, target Target) (string, error) {
	switch target {
	case TargetCSS:
		return GenerateCSS(set), nil
	case TargetTailwind:
		return GenerateTailwind(set), nil
	case TargetFigma:
		return GenerateFigma(set)
	case TargetSCSS, TargetStyleDictionary:
		return "", apperrors.NewUnsupportedFormat(string(target), true)
	default:
		return "", apperrors.NewUnsupportedFormat(string(target), false)
	}
}

// FileName suggests a download name for target.
func FileName(set tokens.Set, target Target) string {
	base := string(set.Theme) + "-" + string(set.Palette)
	switch target {
	case TargetCSS:
		return base + ".css"
	case TargetTailwind:
		return "tailwind.config.js"
	case TargetFigma:
		return base + ".tokens.json"
	default:
		return base + ".txt"
	}
}
