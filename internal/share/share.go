// SPDX-License-Identifier: MIT

// Package share encodes a configuration into the opaque text carried by a
// share link's ?config= parameter, and decodes it back.
package share

import (
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/thatcatcamp/stylelab/internal/apperrors"
	"github.com/thatcatcamp/stylelab/internal/logging"
	"github.com/thatcatcamp/stylelab/internal/themes"
	"github.com/thatcatcamp/stylelab/internal/tokens"
)

// QueryParam is the URL parameter holding a share code.
const QueryParam = "config"

// Config is the shareable subset of a selection.
type Config struct {
	Theme        themes.ThemeName   `json:"theme"`
	Palette      themes.PaletteName `json:"palette"`
	Font         themes.FontName    `json:"font"`
	DarkMode     bool               `json:"darkMode"`
	BaseFontSize float64            `json:"baseFontSize"`
	TypeScale    float64            `json:"typeScale"`
}

// ConfigOf extracts the shareable fields of sel.
func ConfigOf(sel tokens.Selection) Config {
	return Config{
		Theme:        sel.Theme,
		Palette:      sel.Palette,
		Font:         sel.Font,
		DarkMode:     sel.DarkMode,
		BaseFontSize: sel.BaseFontSize,
		TypeScale:    sel.TypeScale,
	}
}

// Partial is a decoded configuration. A nil field was absent (or of the
// wrong type) in the encoded text.
type Partial struct {
	Theme        *themes.ThemeName   `json:"theme,omitempty"`
	Palette      *themes.PaletteName `json:"palette,omitempty"`
	Font         *themes.FontName    `json:"font,omitempty"`
	DarkMode     *bool               `json:"darkMode,omitempty"`
	BaseFontSize *float64            `json:"baseFontSize,omitempty"`
	TypeScale    *float64            `json:"typeScale,omitempty"`
}

// Empty reports whether no field was recovered.
func (p Partial) Empty() bool {
	return p == Partial{}
}

// Merge applies the present fields onto sel. Absent fields keep sel's value.
func (p Partial) Merge(sel tokens.Selection) tokens.Selection {
	if p.Theme != nil {
		sel.Theme = *p.Theme
	}
	if p.Palette != nil {
		sel.Palette = *p.Palette
	}
	if p.Font != nil {
		sel.Font = *p.Font
	}
	if p.DarkMode != nil {
		sel.DarkMode = *p.DarkMode
	}
	if p.BaseFontSize != nil {
		sel.BaseFontSize = *p.BaseFontSize
	}
	if p.TypeScale != nil {
		sel.TypeScale = *p.TypeScale
	}
	return sel
}

// Encode returns the standard base64 of cfg's JSON form.
func Encode(cfg Config) (string, error) {
	raw, err := json.Marshal(cfg)
	if err != nil {
		return "", fmt.Errorf("failed to encode share config: %w", err)
	}
	return base64.StdEncoding.EncodeToString(raw), nil
}

// Parse decodes text, failing with a DecodeError when it is not base64 of a
// JSON object. Individual fields of the wrong type are dropped.
func Parse(text string) (Partial, error) {
	raw, err := base64.StdEncoding.DecodeString(strings.TrimSpace(text))
	if err != nil {
		return Partial{}, apperrors.NewDecodeError(err)
	}

	var fields map[string]json.RawMessage
	if err := json.Unmarshal(raw, &fields); err != nil {
		return Partial{}, apperrors.NewDecodeError(err)
	}
	if fields == nil {
		return Partial{}, apperrors.NewDecodeError(errors.New("config is not an object"))
	}

	var p Partial
	p.Theme = field[themes.ThemeName](fields, "theme")
	p.Palette = field[themes.PaletteName](fields, "palette")
	p.Font = field[themes.FontName](fields, "font")
	p.DarkMode = field[bool](fields, "darkMode")
	p.BaseFontSize = field[float64](fields, "baseFontSize")
	p.TypeScale = field[float64](fields, "typeScale")
	return p, nil
}

func field[T any](fields map[string]json.RawMessage, key string) *T {
	raw, ok := fields[key]
	if !ok || string(raw) == "null" {
		return nil
	}
	var v T
	if err := json.Unmarshal(raw, &v); err != nil {
		return nil
	}
	return &v
}

// Decode is Parse for callers that fall back to their current
// configuration: malformed text yields an empty Partial and a warning.
func Decode(text string, log *logging.Logger) Partial {
	p, err := Parse(text)
	if err != nil {
		log.Warn(err, "ignoring malformed share code")
		return Partial{}
	}
	return p
}

// ShareURL returns base with the encoded cfg set as its config parameter.
func ShareURL(base string, cfg Config) (string, error) {
	u, err := url.Parse(base)
	if err != nil {
		return "", fmt.Errorf("invalid base url: %w", err)
	}
	code, err := Encode(cfg)
	if err != nil {
		return "", err
	}
	q := u.Query()
	q.Set(QueryParam, code)
	u.RawQuery = q.Encode()
	return u.String(), nil
}

// FromQuery decodes the config parameter of q. A missing parameter is an
// empty Partial without a warning.
func FromQuery(q url.Values, log *logging.Logger) Partial {
	code := q.Get(QueryParam)
	if code == "" {
		return Partial{}
	}
	return Decode(NormalizeCode(code), log)
}

// NormalizeCode repairs a code taken from an unescaped link, where query
// parsing turned every '+' into a space.
func NormalizeCode(code string) string {
	return strings.ReplaceAll(code, " ", "+")
}
