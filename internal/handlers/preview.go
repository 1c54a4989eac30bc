// SPDX-License-Identifier: MIT
package handlers

import (
	"bytes"
	"html/template"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/thatcatcamp/stylelab/internal/colors"
	"github.com/thatcatcamp/stylelab/internal/export"
	"github.com/thatcatcamp/stylelab/internal/history"
	"github.com/thatcatcamp/stylelab/internal/share"
	"github.com/thatcatcamp/stylelab/internal/themes"
	"github.com/thatcatcamp/stylelab/internal/tokens"
)

var previewTemplate = template.Must(template.New("preview").Parse(`<!DOCTYPE html>
<html lang="en">
<head>
	<meta charset="utf-8">
	<meta name="viewport" content="width=device-width, initial-scale=1">
	<title>stylelab: {{.Set.Theme}} / {{.Set.Palette}}</title>
	<link rel="stylesheet" href="/tokens.css">
	<style>{{.BaseCSS}}</style>
</head>
<body>
<div class="page">
	{{if .Degraded}}<div class="banner">Styles could not be applied: {{.Degraded}}</div>{{end}}

	<div class="card">
		<h1>{{.Set.Theme}} with {{.Set.Palette}}</h1>
		<h2>Second level heading</h2>
		<h3>Third level heading</h3>
		<p>Body text set in {{.Selection.Font}} at {{.Selection.BaseFontSize}}px with a type scale of {{.Selection.TypeScale}}. Mode: {{.Set.Mode}}.</p>
		<button class="btn">Primary</button>
		<button class="btn btn-success">Success</button>
		<button class="btn btn-warning">Warning</button>
		<button class="btn btn-error">Error</button>
		<button class="btn btn-info">Info</button>
	</div>

	<div class="card">
		<h2>Palette contrast against {{.Against}}</h2>
		<div class="grid">
		{{range .Contrast}}
			<div class="swatch">
				<div class="swatch-color" style="background: {{.Color}}"></div>
				<div class="swatch-label">
					{{.Key}}<br>{{.Color}} &middot; {{printf "%.2f" .Report.Ratio}}:1
					{{if .Report.AAA}}<span class="badge">AAA</span>{{else if .Report.AA}}<span class="badge">AA</span>{{else}}<span class="badge">Fail</span>{{end}}
				</div>
			</div>
		{{end}}
		</div>
	</div>

	<div class="card">
		<h2>Primary shades</h2>
		<div class="ramp">{{range .Ramp}}<div title="{{.Step}} {{.Hex}}" style="background: {{.Hex}}"></div>{{end}}</div>
	</div>

	<div class="card">
		<h2>History</h2>
		<table class="data-table">
			<tr><th>#</th><th>When</th><th>Theme</th><th>Palette</th><th>Font</th><th>Mode</th></tr>
			{{range $i, $e := .History}}
			<tr><td>{{$i}}</td><td>{{$e.Timestamp.Format "15:04:05"}}</td><td>{{$e.Theme}}</td><td>{{$e.Palette}}</td><td>{{$e.Font}}</td><td>{{if $e.DarkMode}}dark{{else}}light{{end}}</td></tr>
			{{end}}
		</table>
	</div>

	<div class="card">
		<h2>Share</h2>
		<p><a href="{{.ShareURL}}">{{.ShareURL}}</a></p>
		<h2>CSS export</h2>
		<pre>{{.CSS}}</pre>
		<small>Also available: {{range .Targets}}<a href="/api/export/{{.}}?download=1">{{.}}</a> {{end}}</small>
	</div>
</div>
</body>
</html>
`))

type previewData struct {
	BaseCSS   template.CSS
	Set       tokens.Set
	Selection tokens.Selection
	Degraded  string
	Against   string
	Contrast  []tokens.PaletteContrast
	Ramp      colors.Ramp
	History   []history.Entry
	ShareURL  string
	CSS       string
	Targets   []export.Target
}

// Preview renders the token preview page. A ?config= share code is merged
// into the session first; malformed codes fall back silently.
func (h *Handlers) Preview(c *gin.Context) {
	if code := c.Query(share.QueryParam); code != "" {
		h.session.LoadShared(share.NormalizeCode(code))
	}

	set, err := h.session.Current()
	if err != nil {
		h.writeError(c, err)
		return
	}
	sel := h.session.Selection()

	data := previewData{
		BaseCSS:   template.CSS(GetPreviewCSS()),
		Set:       set,
		Selection: sel,
		Against:   tokens.ContrastAgainst(set.Mode),
		History:   h.session.History(),
		CSS:       export.GenerateCSS(set),
		Targets:   export.Targets(),
	}
	if _, cause := h.session.Degraded(); cause != nil {
		data.Degraded = cause.Error()
	}
	if data.Contrast, err = tokens.PaletteContrastReport(set); err != nil {
		h.writeError(c, err)
		return
	}
	primary, _ := set.Get(themes.KeyPrimary)
	if data.Ramp, err = colors.Shades(primary); err != nil {
		h.writeError(c, err)
		return
	}
	if data.ShareURL, err = share.ShareURL(h.publicURL, share.ConfigOf(sel)); err != nil {
		h.writeError(c, err)
		return
	}

	var buf bytes.Buffer
	if err := previewTemplate.Execute(&buf, data); err != nil {
		h.writeError(c, err)
		return
	}
	c.Data(http.StatusOK, "text/html; charset=utf-8", buf.Bytes())
}

// TokensCSS serves the global scope the session applies tokens into.
func (h *Handlers) TokensCSS(c *gin.Context) {
	c.Header("Cache-Control", "no-store")
	c.Data(http.StatusOK, "text/css; charset=utf-8", []byte(h.sheet.CSS()))
}
