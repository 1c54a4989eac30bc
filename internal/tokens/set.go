// SPDX-License-Identifier: MIT

// Package tokens turns a Selection into the single resolved token set the
// rest of stylelab consumes.
package tokens

import (
	"bytes"
	"encoding/json"

	"github.com/thatcatcamp/stylelab/internal/themes"
)

// Group records which namespace contributed a token.
type Group int

const (
	GroupTheme Group = iota
	GroupPalette
	GroupTypography
	GroupFont
)

func (g Group) String() string {
	switch g {
	case GroupTheme:
		return "theme"
	case GroupPalette:
		return "palette"
	case GroupTypography:
		return "typography"
	case GroupFont:
		return "font"
	default:
		return "unknown"
	}
}

// Entry is one resolved token.
type Entry struct {
	Key   string
	Value string
	Group Group
}

// Set is an immutable, insertion-ordered token set. Copies share storage
// safely because nothing mutates a Set after Resolve returns it.
type Set struct {
	Theme   themes.ThemeName
	Palette themes.PaletteName
	Mode    themes.Mode

	entries []Entry
	index   map[string]int
}

func newSet(theme themes.ThemeName, palette themes.PaletteName, mode themes.Mode, capacity int) *Set {
	return &Set{
		Theme:   theme,
		Palette: palette,
		Mode:    mode,
		entries: make([]Entry, 0, capacity),
		index:   make(map[string]int, capacity),
	}
}

// add appends a token. Namespaces are disjoint, so a repeated key only
// happens on a catalog bug; the later value wins in place.
func (s *Set) add(key, value string, group Group) {
	if i, ok := s.index[key]; ok {
		s.entries[i] = Entry{Key: key, Value: value, Group: group}
		return
	}
	s.index[key] = len(s.entries)
	s.entries = append(s.entries, Entry{Key: key, Value: value, Group: group})
}

// Get returns the value for key.
func (s Set) Get(key string) (string, bool) {
	i, ok := s.index[key]
	if !ok {
		return "", false
	}
	return s.entries[i].Value, true
}

// Len returns the number of tokens.
func (s Set) Len() int {
	return len(s.entries)
}

// Keys returns token keys in merge order.
func (s Set) Keys() []string {
	keys := make([]string, len(s.entries))
	for i, e := range s.entries {
		keys[i] = e.Key
	}
	return keys
}

// Entries returns a copy of the tokens in merge order.
func (s Set) Entries() []Entry {
	return append([]Entry(nil), s.entries...)
}

// Group returns the tokens contributed by one namespace, in merge order.
func (s Set) Group(g Group) []Entry {
	var out []Entry
	for _, e := range s.entries {
		if e.Group == g {
			out = append(out, e)
		}
	}
	return out
}

// Map returns a fresh key/value copy of the set.
func (s Set) Map() map[string]string {
	out := make(map[string]string, len(s.entries))
	for _, e := range s.entries {
		out[e.Key] = e.Value
	}
	return out
}

// Equal reports whether both sets hold the same tokens in the same order.
func (s Set) Equal(other Set) bool {
	if s.Theme != other.Theme || s.Palette != other.Palette || s.Mode != other.Mode {
		return false
	}
	if len(s.entries) != len(other.entries) {
		return false
	}
	for i := range s.entries {
		if s.entries[i] != other.entries[i] {
			return false
		}
	}
	return true
}

// MarshalJSON writes the tokens as a JSON object preserving merge order.
func (s Set) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, e := range s.entries {
		if i > 0 {
			buf.WriteByte(',')
		}
		k, err := json.Marshal(e.Key)
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
