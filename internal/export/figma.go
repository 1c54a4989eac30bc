// SPDX-License-Identifier: MIT
package export

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/thatcatcamp/stylelab/internal/themes"
	"github.com/thatcatcamp/stylelab/internal/tokens"
)

type figmaDocument struct {
	Name   string       `json:"name"`
	Colors orderedColor `json:"colors"`
	Radii  figmaRadii   `json:"radii"`
}

type figmaRadii struct {
	Default string `json:"DEFAULT"`
}

// orderedColor keeps palette keys in catalog order in the JSON output.
type orderedColor []tokens.Entry

func (o orderedColor) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, e := range o {
		if i > 0 {
			buf.WriteByte(',')
		}
		k, err := json.Marshal(strings.TrimPrefix(e.Key, "--"))
		if err != nil {
			return nil, err
		}
		v, err := json.Marshal(e.Value)
		if err != nil {
			return nil, err
		}
		buf.Write(k)
		buf.WriteByte(':')
		buf.Write(v)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// GenerateFigma writes the design-tool token document: a name of
// "<theme>-<palette>", every palette color without its "--" prefix, and the
// theme radius under radii.DEFAULT.
func GenerateFigma(set tokens.Set) (string, error) {
	radius, _ := set.Get(themes.KeyRadius)
	doc := figmaDocument{
		Name:   fmt.Sprintf("%s-%s", set.Theme, set.Palette),
		Colors: orderedColor(set.Group(tokens.GroupPalette)),
		Radii:  figmaRadii{Default: radius},
	}

	out, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to encode figma tokens: %w", err)
	}
	return string(out), nil
}
