// SPDX-License-Identifier: MIT
package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/thatcatcamp/stylelab/internal/colors"
	"github.com/thatcatcamp/stylelab/internal/tokens"
)

// withHash accepts colors with or without the leading '#', since a bare '#'
// in a URL starts the fragment.
func withHash(s string) string {
	s = strings.TrimSpace(s)
	if strings.HasPrefix(s, "#") {
		return s
	}
	return "#" + s
}

// Contrast compares ?a= and ?b=.
func (h *Handlers) Contrast(c *gin.Context) {
	a, b := withHash(c.Query("a")), withHash(c.Query("b"))
	report, err := colors.Contrast(a, b)
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"a": a, "b": b, "report": report})
}

// PaletteContrast checks the current palette against the mode's text color.
func (h *Handlers) PaletteContrast(c *gin.Context) {
	set, err := h.session.Current()
	if err != nil {
		h.writeError(c, err)
		return
	}
	rows, err := tokens.PaletteContrastReport(set)
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"against": tokens.ContrastAgainst(set.Mode), "colors": rows})
}

// Shades returns the ramp of a hex color, or of a palette key such as
// "primary".
func (h *Handlers) Shades(c *gin.Context) {
	base := c.Param("hex")
	if set, err := h.session.Current(); err == nil {
		if v, ok := set.Get("--" + base); ok {
			base = v
		}
	}

	ramp, err := colors.Shades(withHash(base))
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"base": withHash(base), "shades": ramp})
}
