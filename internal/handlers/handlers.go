// SPDX-License-Identifier: MIT

// Package handlers exposes a session over HTTP: a JSON API for the token
// engine and a preview page styled by the applied tokens.
package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	gocache "github.com/patrickmn/go-cache"

	"github.com/thatcatcamp/stylelab/internal/apperrors"
	"github.com/thatcatcamp/stylelab/internal/history"
	"github.com/thatcatcamp/stylelab/internal/logging"
	"github.com/thatcatcamp/stylelab/internal/session"
	"github.com/thatcatcamp/stylelab/internal/sink"
	"github.com/thatcatcamp/stylelab/internal/tokens"
)

// Deps are the collaborators the handlers need.
type Deps struct {
	Session    *session.Session
	Stylesheet *sink.Stylesheet
	Logger     *logging.Logger
	// PublicURL is the base of generated share links.
	PublicURL string
	// ExportTTL bounds how long rendered exports are cached.
	ExportTTL time.Duration
}

// Handlers serves one session.
type Handlers struct {
	session   *session.Session
	sheet     *sink.Stylesheet
	log       *logging.Logger
	publicURL string
	exports   *gocache.Cache
}

// New builds the handlers. A zero ExportTTL uses 10 minutes.
func New(deps Deps) *Handlers {
	ttl := deps.ExportTTL
	if ttl <= 0 {
		ttl = 10 * time.Minute
	}
	publicURL := deps.PublicURL
	if publicURL == "" {
		publicURL = "http://localhost:8080/"
	}
	return &Handlers{
		session:   deps.Session,
		sheet:     deps.Stylesheet,
		log:       deps.Logger,
		publicURL: publicURL,
		exports:   gocache.New(ttl, 3*ttl),
	}
}

// Register mounts every route on r.
func (h *Handlers) Register(r gin.IRouter) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "ok",
			"service": "stylelab",
		})
	})
	r.GET("/metrics", gin.WrapH(metricsHandler()))

	r.GET("/", h.Preview)
	r.GET("/tokens.css", h.TokensCSS)

	api := r.Group("/api")
	{
		api.GET("/tokens", h.GetTokens)
		api.GET("/selection", h.GetSelection)
		api.POST("/selection", h.PostSelection)
		api.POST("/dark-mode/toggle", h.ToggleDarkMode)
		api.GET("/catalog", h.GetCatalog)
		api.GET("/presets", h.GetPresets)
		api.POST("/presets/:name", h.ApplyPreset)
		api.GET("/export/:format", h.Export)
		api.GET("/contrast", h.Contrast)
		api.GET("/contrast/palette", h.PaletteContrast)
		api.GET("/shades/:hex", h.Shades)
		api.GET("/history", h.GetHistory)
		api.POST("/history/:ref/restore", h.RestoreHistory)
		api.GET("/share", h.Share)
	}
}

// statusFor maps engine errors onto HTTP statuses.
func statusFor(err error) int {
	var idxErr *history.IndexError
	switch {
	case errors.Is(err, apperrors.ErrApply), errors.Is(err, session.ErrNotResolved):
		return http.StatusServiceUnavailable
	case errors.As(err, &idxErr):
		return http.StatusNotFound
	case errors.Is(err, apperrors.ErrUnknownIdentifier),
		errors.Is(err, apperrors.ErrInvalidColor),
		errors.Is(err, apperrors.ErrUnsupportedFormat),
		errors.Is(err, apperrors.ErrDecode),
		errors.Is(err, tokens.ErrInvalidSelection):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func (h *Handlers) writeError(c *gin.Context, err error) {
	status := statusFor(err)
	body := gin.H{"error": err.Error()}
	if errors.Is(err, apperrors.ErrApply) {
		body["degraded"] = true
	}
	if status >= http.StatusInternalServerError {
		h.log.WithFields(map[string]any{"path": c.FullPath(), "status": status}).Error(err, "request failed")
	}
	c.AbortWithStatusJSON(status, body)
}
