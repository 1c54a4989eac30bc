// SPDX-License-Identifier: MIT
package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/thatcatcamp/stylelab/internal/export"
	"github.com/thatcatcamp/stylelab/internal/share"
	"github.com/thatcatcamp/stylelab/internal/themes"
	"github.com/thatcatcamp/stylelab/internal/tokens"
)

type tokensResponse struct {
	Theme     themes.ThemeName   `json:"theme"`
	Palette   themes.PaletteName `json:"palette"`
	Mode      themes.Mode        `json:"mode"`
	Tokens    tokens.Set         `json:"tokens"`
	Selection tokens.Selection   `json:"selection"`
	Degraded  bool               `json:"degraded"`
	Error     string             `json:"error,omitempty"`
}

func (h *Handlers) tokensBody() (tokensResponse, error) {
	set, err := h.session.Current()
	if err != nil {
		return tokensResponse{}, err
	}
	degraded, cause := h.session.Degraded()
	resp := tokensResponse{
		Theme:     set.Theme,
		Palette:   set.Palette,
		Mode:      set.Mode,
		Tokens:    set,
		Selection: h.session.Selection(),
		Degraded:  degraded,
	}
	if cause != nil {
		resp.Error = cause.Error()
	}
	return resp, nil
}

// respondApplied writes the outcome of a selection change.
func (h *Handlers) respondApplied(c *gin.Context, err error) {
	recordApply(err)
	if err != nil {
		h.writeError(c, err)
		return
	}
	h.GetTokens(c)
}

// GetTokens returns the current resolved token set.
func (h *Handlers) GetTokens(c *gin.Context) {
	body, err := h.tokensBody()
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, body)
}

// GetSelection returns the selection behind the current tokens.
func (h *Handlers) GetSelection(c *gin.Context) {
	c.JSON(http.StatusOK, h.session.Selection())
}

// PostSelection applies a selection. Fields missing from the body keep their
// current values.
func (h *Handlers) PostSelection(c *gin.Context) {
	sel := h.session.Selection()
	if err := c.ShouldBindJSON(&sel); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "invalid selection body: " + err.Error()})
		return
	}
	if scale := c.Query("spacing"); scale != "" {
		next, err := sel.WithSpacingScale(themes.SpacingScale(scale))
		if err != nil {
			h.writeError(c, err)
			return
		}
		sel = next
	}

	_, err := h.session.Select(sel)
	h.respondApplied(c, err)
}

// ToggleDarkMode flips light/dark and persists the preference.
func (h *Handlers) ToggleDarkMode(c *gin.Context) {
	_, err := h.session.ToggleDarkMode()
	h.respondApplied(c, err)
}

// GetCatalog lists every selectable name.
func (h *Handlers) GetCatalog(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"themes":        themes.ListThemes(),
		"palettes":      themes.ListPalettes(),
		"fonts":         themes.ListFonts(),
		"speeds":        themes.ListSpeeds(),
		"spacingScales": themes.ListSpacingScales(),
		"presets":       themes.ListPresets(),
		"exports":       export.Targets(),
	})
}

// GetPresets lists the presets.
func (h *Handlers) GetPresets(c *gin.Context) {
	c.JSON(http.StatusOK, themes.ListPresets())
}

// ApplyPreset selects a preset by name.
func (h *Handlers) ApplyPreset(c *gin.Context) {
	_, err := h.session.ApplyPreset(c.Param("name"))
	h.respondApplied(c, err)
}

// GetHistory lists recorded configurations, newest first.
func (h *Handlers) GetHistory(c *gin.Context) {
	c.JSON(http.StatusOK, h.session.History())
}

// RestoreHistory re-applies an entry addressed by index or id.
func (h *Handlers) RestoreHistory(c *gin.Context) {
	ref := c.Param("ref")
	var err error
	if i, convErr := strconv.Atoi(ref); convErr == nil {
		_, err = h.session.RestoreHistory(i)
	} else {
		_, err = h.session.RestoreHistoryID(ref)
	}
	h.respondApplied(c, err)
}

// Share returns the share code and link for the current selection.
func (h *Handlers) Share(c *gin.Context) {
	cfg := share.ConfigOf(h.session.Selection())
	code, err := share.Encode(cfg)
	if err != nil {
		h.writeError(c, err)
		return
	}
	link, err := share.ShareURL(h.publicURL, cfg)
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"code": code, "url": link, "config": cfg})
}
