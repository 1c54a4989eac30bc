// SPDX-License-Identifier: MIT
package share

import (
	"bytes"
	"encoding/base64"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/thatcatcamp/stylelab/internal/apperrors"
	"github.com/thatcatcamp/stylelab/internal/logging"
	"github.com/thatcatcamp/stylelab/internal/themes"
	"github.com/thatcatcamp/stylelab/internal/tokens"
)

func TestEncodeMatchesLinkFormat(t *testing.T) {
	cfg := ConfigOf(tokens.DefaultSelection())
	code, err := Encode(cfg)
	require.NoError(t, err)

	raw, err := base64.StdEncoding.DecodeString(code)
	require.NoError(t, err)
	assert.Equal(t,
		`{"theme":"flat-modern","palette":"default","font":"inter","darkMode":false,"baseFontSize":16,"typeScale":1.25}`,
		string(raw))
}

func TestRoundTripProperty(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		cfg := Config{
			Theme:        rapid.SampledFrom(themes.ListThemes()).Draw(t, "theme"),
			Palette:      rapid.SampledFrom(themes.ListPalettes()).Draw(t, "palette"),
			Font:         rapid.SampledFrom(themes.ListFonts()).Draw(t, "font"),
			DarkMode:     rapid.Bool().Draw(t, "dark"),
			BaseFontSize: rapid.Float64Range(12, 24).Draw(t, "base"),
			TypeScale:    rapid.Float64Range(1.1, 1.6).Draw(t, "scale"),
		}
		code, err := Encode(cfg)
		if err != nil {
			t.Fatal(err)
		}
		p, err := Parse(code)
		if err != nil {
			t.Fatal(err)
		}
		got := ConfigOf(p.Merge(tokens.DefaultSelection()))
		if got != cfg {
			t.Fatalf("round trip: got %+v, want %+v", got, cfg)
		}
	})
}

func TestDecodeMalformedFallsBack(t *testing.T) {
	var buf bytes.Buffer
	log, err := logging.New(logging.Options{Writer: &buf})
	require.NoError(t, err)

	p := Decode("not-base64!!", log)
	assert.True(t, p.Empty())
	assert.Contains(t, buf.String(), "decode failure")

	sel := tokens.DefaultSelection()
	assert.Equal(t, sel, p.Merge(sel))
}

func TestParseErrors(t *testing.T) {
	_, err := Parse("not-base64!!")
	require.ErrorIs(t, err, apperrors.ErrDecode)

	notJSON := base64.StdEncoding.EncodeToString([]byte("hello"))
	_, err = Parse(notJSON)
	require.ErrorIs(t, err, apperrors.ErrDecode)

	array := base64.StdEncoding.EncodeToString([]byte(`[1,2]`))
	_, err = Parse(array)
	require.ErrorIs(t, err, apperrors.ErrDecode)

	null := base64.StdEncoding.EncodeToString([]byte(`null`))
	_, err = Parse(null)
	require.ErrorIs(t, err, apperrors.ErrDecode)
}

func TestParseKeepsPresentFieldsOnly(t *testing.T) {
	code := base64.StdEncoding.EncodeToString([]byte(`{"theme":"cyberpunk","darkMode":true,"typeScale":"big"}`))
	p, err := Parse(code)
	require.NoError(t, err)

	require.NotNil(t, p.Theme)
	assert.Equal(t, themes.Cyberpunk, *p.Theme)
	require.NotNil(t, p.DarkMode)
	assert.True(t, *p.DarkMode)
	assert.Nil(t, p.Palette)
	assert.Nil(t, p.TypeScale, "wrong type is dropped")

	sel := p.Merge(tokens.DefaultSelection())
	assert.Equal(t, themes.Cyberpunk, sel.Theme)
	assert.Equal(t, themes.PaletteDefault, sel.Palette)
	assert.Equal(t, 1.25, sel.TypeScale)
}

func TestExplicitFalseDarkModeIsPresent(t *testing.T) {
	code := base64.StdEncoding.EncodeToString([]byte(`{"darkMode":false}`))
	p, err := Parse(code)
	require.NoError(t, err)

	base := tokens.DefaultSelection()
	base.DarkMode = true
	assert.False(t, p.Merge(base).DarkMode)
}

func TestShareURLAndFromQuery(t *testing.T) {
	sel := tokens.DefaultSelection()
	sel.Theme = themes.ArtDeco
	cfg := ConfigOf(sel)

	link, err := ShareURL("http://localhost:8080/?x=1", cfg)
	require.NoError(t, err)

	u, err := url.Parse(link)
	require.NoError(t, err)
	assert.Equal(t, "1", u.Query().Get("x"))

	p := FromQuery(u.Query(), logging.Nop())
	assert.Equal(t, cfg, ConfigOf(p.Merge(tokens.DefaultSelection())))

	assert.True(t, FromQuery(url.Values{}, logging.Nop()).Empty())

	_, err = ShareURL("://bad", cfg)
	require.Error(t, err)
}

func TestFromQueryRepairsUnescapedPlus(t *testing.T) {
	code, err := Encode(ConfigOf(tokens.DefaultSelection()))
	require.NoError(t, err)

	q := url.Values{QueryParam: {code}}
	spaced := url.Values{QueryParam: {replacePlus(code)}}
	assert.Equal(t, FromQuery(q, logging.Nop()), FromQuery(spaced, logging.Nop()))
}

func replacePlus(s string) string {
	b := []byte(s)
	for i := range b {
		if b[i] == '+' {
			b[i] = ' '
		}
	}
	return string(b)
}
