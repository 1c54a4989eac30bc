// SPDX-License-Identifier: MIT
package tokens

import (
	"math"
	"strconv"

	"github.com/thatcatcamp/stylelab/internal/themes"
)

// Typography tokens produced by the calculator.
const (
	KeyH1Size          = "--h1-size"
	KeyH2Size          = "--h2-size"
	KeyH3Size          = "--h3-size"
	KeyBodySize        = "--body-size"
	KeyTransitionSpeed = "--transition-speed"
)

// spacingMultipliers are the factors behind --spacing-1 .. --spacing-6.
var spacingMultipliers = [6]float64{1, 2, 3, 4, 6, 8}

// Sizes are the computed font sizes in pixels.
type Sizes struct {
	H1   float64 `json:"h1"`
	H2   float64 `json:"h2"`
	H3   float64 `json:"h3"`
	Body float64 `json:"body"`
}

// HeadingSizes derives heading sizes geometrically from base and scale, so
// ratios between levels stay fixed whatever the base size.
func HeadingSizes(base, scale float64) Sizes {
	return Sizes{
		H1:   base * math.Pow(scale, 3),
		H2:   base * math.Pow(scale, 2),
		H3:   base * scale,
		Body: base,
	}
}

// SpacingSteps returns the six spacing steps for unit.
func SpacingSteps(unit float64) [6]float64 {
	var steps [6]float64
	for i, m := range spacingMultipliers {
		steps[i] = unit * m
	}
	return steps
}

// SpacingKey names spacing step n (1-based).
func SpacingKey(n int) string {
	return "--spacing-" + strconv.Itoa(n)
}

func px(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64) + "px"
}

func addTypography(set *Set, sel Selection) error {
	duration, err := themes.TransitionDuration(sel.AnimationSpeed)
	if err != nil {
		return err
	}

	sizes := HeadingSizes(sel.BaseFontSize, sel.TypeScale)
	set.add(KeyH1Size, px(sizes.H1), GroupTypography)
	set.add(KeyH2Size, px(sizes.H2), GroupTypography)
	set.add(KeyH3Size, px(sizes.H3), GroupTypography)
	set.add(KeyBodySize, px(sizes.Body), GroupTypography)
	for i, step := range SpacingSteps(sel.SpacingUnit) {
		set.add(SpacingKey(i+1), px(step), GroupTypography)
	}
	set.add(KeyTransitionSpeed, duration, GroupTypography)
	return nil
}
