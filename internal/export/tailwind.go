// SPDX-License-Identifier: MIT
package export

import (
	"strings"

	"github.com/thatcatcamp/stylelab/internal/themes"
	"github.com/thatcatcamp/stylelab/internal/tokens"
)

type jsProp struct {
	name string
	key  string
}

var tailwindColors = []jsProp{
	{"primary", themes.KeyPrimary},
	{"success", themes.KeySuccess},
	{"warning", themes.KeyWarning},
	{"error", themes.KeyError},
	{"info", themes.KeyInfo},
}

var tailwindRadius = []jsProp{{"DEFAULT", themes.KeyRadius}}

var tailwindShadow = []jsProp{
	{"DEFAULT", themes.KeyShadow},
	{"lg", themes.KeyShadowLarge},
}

// GenerateTailwind writes a tailwind.config.js module extending colors,
// borderRadius and boxShadow. Tokens the set does not define are left out.
func GenerateTailwind(set tokens.Set) string {
	var b strings.Builder
	b.WriteString("module.exports = {\n")
	b.WriteString("  theme: {\n")
	b.WriteString("    extend: {\n")
	writeJSObject(&b, set, "colors", tailwindColors, true)
	writeJSObject(&b, set, "borderRadius", tailwindRadius, true)
	writeJSObject(&b, set, "boxShadow", tailwindShadow, false)
	b.WriteString("    }\n")
	b.WriteString("  }\n")
	b.WriteString("};")
	return b.String()
}

func writeJSObject(b *strings.Builder, set tokens.Set, name string, props []jsProp, trailingComma bool) {
	b.WriteString("      ")
	b.WriteString(name)
	b.WriteString(": {\n")
	for _, p := range props {
		v, ok := set.Get(p.key)
		if !ok {
			continue
		}
		b.WriteString("        ")
		b.WriteString(p.name)
		b.WriteString(": '")
		b.WriteString(jsEscape(v))
		b.WriteString("',\n")
	}
	b.WriteString("      }")
	if trailingComma {
		b.WriteString(",")
	}
	b.WriteString("\n")
}

var jsReplacer = strings.NewReplacer(`\`, `\\`, `'`, `\'`, "\n", `\n`)

func jsEscape(s string) string {
	return jsReplacer.Replace(s)
}
