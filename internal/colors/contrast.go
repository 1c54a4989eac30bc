// SPDX-License-Identifier: MIT
package colors

import "math"

// WCAG normal-text thresholds.
const (
	AAThreshold  = 4.5
	AAAThreshold = 7.0
)

// ContrastReport classifies the contrast ratio between two colors.
type ContrastReport struct {
	Ratio float64 `json:"ratio"`
	AA    bool    `json:"aa"`
	AAA   bool    `json:"aaa"`
	Fail  bool    `json:"fail"`
}

// RelativeLuminance returns the WCAG relative luminance of c.
func RelativeLuminance(c RGB) float64 {
	return 0.2126*linearize(c.R) + 0.7152*linearize(c.G) + 0.0722*linearize(c.B)
}

func linearize(channel uint8) float64 {
	v := float64(channel) / 255
	if v <= 0.03928 {
		return v / 12.92
	}
	return math.Pow((v+0.055)/1.055, 2.4)
}

// Ratio returns the contrast ratio of two already parsed colors; always >= 1.
func Ratio(a, b RGB) float64 {
	l1 := RelativeLuminance(a)
	l2 := RelativeLuminance(b)
	lighter := math.Max(l1, l2)
	darker := math.Min(l1, l2)
	return (lighter + 0.05) / (darker + 0.05)
}

// Contrast evaluates the contrast between two #rrggbb colors.
func Contrast(hexA, hexB string) (ContrastReport, error) {
	a, err := ParseHex(hexA)
	if err != nil {
		return ContrastReport{}, err
	}
	b, err := ParseHex(hexB)
	if err != nil {
		return ContrastReport{}, err
	}
	return Classify(Ratio(a, b)), nil
}

// Classify applies the AA/AAA thresholds to ratio.
func Classify(ratio float64) ContrastReport {
	return ContrastReport{
		Ratio: ratio,
		AA:    ratio >= AAThreshold,
		AAA:   ratio >= AAAThreshold,
		Fail:  ratio < AAThreshold,
	}
}
