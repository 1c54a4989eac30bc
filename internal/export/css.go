// SPDX-License-Identifier: MIT
package export

import (
	"strings"

	"github.com/thatcatcamp/stylelab/internal/tokens"
)

// GenerateCSS writes the theme and palette tokens as one :root block, in
// merge order. Typography and font tokens are not part of this export.
func GenerateCSS(set tokens.Set) string {
	var b strings.Builder
	b.WriteString(":root {\n")
	for _, group := range []tokens.Group{tokens.GroupTheme, tokens.GroupPalette} {
		for _, e := range set.Group(group) {
			b.WriteString("  ")
			b.WriteString(e.Key)
			b.WriteString(": ")
			b.WriteString(e.Value)
			b.WriteString(";\n")
		}
	}
	b.WriteString("}")
	return b.String()
}
