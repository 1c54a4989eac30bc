// SPDX-License-Identifier: MIT

// Package history keeps the last few applied configurations, newest first.
// It lives only as long as the session that owns it.
package history

import (
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/thatcatcamp/stylelab/internal/themes"
	"github.com/thatcatcamp/stylelab/internal/tokens"
)

// Capacity is the maximum number of entries kept.
const Capacity = 10

// Entry is a snapshot of one applied configuration.
type Entry struct {
	ID           string             `json:"id"`
	Timestamp    time.Time          `json:"timestamp"`
	Theme        themes.ThemeName   `json:"theme"`
	Palette      themes.PaletteName `json:"palette"`
	Font         themes.FontName    `json:"font"`
	DarkMode     bool               `json:"darkMode"`
	BaseFontSize float64            `json:"baseFontSize"`
	TypeScale    float64            `json:"typeScale"`
}

// NewEntry snapshots sel at now.
func NewEntry(sel tokens.Selection, now time.Time) Entry {
	return Entry{
		ID:           uuid.NewString(),
		Timestamp:    now,
		Theme:        sel.Theme,
		Palette:      sel.Palette,
		Font:         sel.Font,
		DarkMode:     sel.DarkMode,
		BaseFontSize: sel.BaseFontSize,
		TypeScale:    sel.TypeScale,
	}
}

// Apply copies the entry's fields onto sel. Spacing and animation speed are
// not part of a snapshot and stay as they are.
func (e Entry) Apply(sel tokens.Selection) tokens.Selection {
	sel.Theme = e.Theme
	sel.Palette = e.Palette
	sel.Font = e.Font
	sel.DarkMode = e.DarkMode
	sel.BaseFontSize = e.BaseFontSize
	sel.TypeScale = e.TypeScale
	return sel
}

// IndexError reports a restore position outside the history.
type IndexError struct {
	Index int
	Len   int
}

func (e *IndexError) Error() string {
	return fmt.Sprintf("history index %d out of range [0,%d)", e.Index, e.Len)
}

// History is a bounded, newest-first list of entries. It is safe for
// concurrent use.
type History struct {
	mu      sync.RWMutex
	entries []Entry
}

// New returns an empty history.
func New() *History {
	return &History{entries: make([]Entry, 0, Capacity)}
}

// Record inserts e at the front, evicting the oldest entry beyond Capacity.
func (h *History) Record(e Entry) {
	h.mu.Lock()
	defer h.mu.Unlock()

	next := make([]Entry, 0, Capacity)
	next = append(next, e)
	next = append(next, h.entries...)
	if len(next) > Capacity {
		next = next[:Capacity]
	}
	h.entries = next
}

// Restore returns the entry at i unchanged. Restoring does not reorder the
// history; the caller records the re-applied configuration as usual.
func (h *History) Restore(i int) (Entry, error) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	if i < 0 || i >= len(h.entries) {
		return Entry{}, &IndexError{Index: i, Len: len(h.entries)}
	}
	return h.entries[i], nil
}

// Find returns the entry with the given id.
func (h *History) Find(id string) (Entry, bool) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	for _, e := range h.entries {
		if e.ID == id {
			return e, true
		}
	}
	return Entry{}, false
}

// Entries returns a copy, newest first.
func (h *History) Entries() []Entry {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return append([]Entry(nil), h.entries...)
}

// Len returns the number of entries.
func (h *History) Len() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.entries)
}
