// SPDX-License-Identifier: MIT
package colors

import (
	"fmt"
	"math"
)

// Shade is one step of a ramp.
type Shade struct {
	Step int    `json:"step"`
	Hex  string `json:"hex"`
}

// Ramp holds steps 100 through 900 in ascending order. Step 100 is the
// palest tint, step 900 the closest to the base color.
type Ramp [9]Shade

// Get returns the color at step (100, 200, ... 900).
func (r Ramp) Get(step int) (string, bool) {
	if step < 100 || step > 900 || step%100 != 0 {
		return "", false
	}
	return r[step/100-1].Hex, true
}

// Map returns the ramp keyed by step.
func (r Ramp) Map() map[int]string {
	out := make(map[int]string, len(r))
	for _, s := range r {
		out[s.Step] = s.Hex
	}
	return out
}

// Tokens names the ramp as custom properties, e.g. --primary-100.
func (r Ramp) Tokens(prefix string) map[string]string {
	out := make(map[string]string, len(r))
	for _, s := range r {
		out[fmt.Sprintf("%s-%d", prefix, s.Step)] = s.Hex
	}
	return out
}

// Shades derives the 9-step tint ramp of base. Step i moves each channel
// toward white by (1 - i/10).
func Shades(base string) (Ramp, error) {
	c, err := ParseHex(base)
	if err != nil {
		return Ramp{}, err
	}

	var ramp Ramp
	for i := 1; i <= 9; i++ {
		toWhite := 1 - float64(i)/10
		tint := RGB{
			R: tintChannel(c.R, toWhite),
			G: tintChannel(c.G, toWhite),
			B: tintChannel(c.B, toWhite),
		}
		ramp[i-1] = Shade{Step: i * 100, Hex: tint.Hex()}
	}
	return ramp, nil
}

func tintChannel(channel uint8, toWhite float64) uint8 {
	v := float64(channel)
	return uint8(math.Round(v + (255-v)*toWhite))
}
