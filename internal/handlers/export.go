// SPDX-License-Identifier: MIT
package handlers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/thatcatcamp/stylelab/internal/export"
	"github.com/thatcatcamp/stylelab/internal/share"
)

var contentTypes = map[export.Target]string{
	export.TargetCSS:      "text/css; charset=utf-8",
	export.TargetTailwind: "application/javascript; charset=utf-8",
	export.TargetFigma:    "application/json; charset=utf-8",
}

// Export renders the current tokens in the requested format. Add
// ?download=1 for an attachment.
func (h *Handlers) Export(c *gin.Context) {
	target, err := export.ParseTarget(c.Param("format"))
	if err != nil {
		h.writeError(c, err)
		return
	}

	set, err := h.session.Current()
	if err != nil {
		h.writeError(c, err)
		return
	}

	// The share code pins theme, palette and mode, which is all any
	// export depends on.
	code, err := share.Encode(share.ConfigOf(h.session.Selection()))
	if err != nil {
		h.writeError(c, err)
		return
	}
	key := string(target) + "|" + code

	out, cached := h.cachedExport(key)
	if !cached {
		out, err = export.Format(set, target)
		if err != nil {
			h.writeError(c, err)
			return
		}
		h.exports.SetDefault(key, out)
	}
	recordExport(string(target), cached)

	if c.Query("download") != "" {
		c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", export.FileName(set, target)))
	}
	c.Data(http.StatusOK, contentTypes[target], []byte(out))
}

func (h *Handlers) cachedExport(key string) (string, bool) {
	v, ok := h.exports.Get(key)
	if !ok {
		return "", false
	}
	s, ok := v.(string)
	if !ok {
		h.log.Warn(nil, "wrong type in export cache")
		return "", false
	}
	return s, true
}
