// SPDX-License-Identifier: MIT

// Package session owns the current selection of one user and drives every
// change through validate, resolve, apply and record, in that order.
package session

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/thatcatcamp/stylelab/internal/apperrors"
	"github.com/thatcatcamp/stylelab/internal/export"
	"github.com/thatcatcamp/stylelab/internal/history"
	"github.com/thatcatcamp/stylelab/internal/logging"
	"github.com/thatcatcamp/stylelab/internal/prefs"
	"github.com/thatcatcamp/stylelab/internal/share"
	"github.com/thatcatcamp/stylelab/internal/sink"
	"github.com/thatcatcamp/stylelab/internal/tokens"
)

// ErrNotResolved is returned by queries made before any selection applied.
var ErrNotResolved = errors.New("no resolved token set yet")

// Options configures a Session. Sink is required.
type Options struct {
	Sink    sink.StyleSink
	Prefs   prefs.Store
	Logger  *logging.Logger
	Initial *tokens.Selection
	Now     func() time.Time
}

// Session is safe for concurrent use; changes are serialized.
type Session struct {
	mu       sync.Mutex
	sel      tokens.Selection
	current  tokens.Set
	resolved bool
	degraded error

	history *history.History
	sink    sink.StyleSink
	prefs   prefs.Store
	log     *logging.Logger
	now     func() time.Time
}

// New creates a session and applies its initial selection. A stored
// dark-mode preference overrides the initial one.
func New(opts Options) (*Session, error) {
	if opts.Sink == nil {
		return nil, fmt.Errorf("session requires a style sink")
	}

	s := &Session{
		history: history.New(),
		sink:    opts.Sink,
		prefs:   opts.Prefs,
		log:     opts.Logger,
		now:     opts.Now,
	}
	if s.now == nil {
		s.now = time.Now
	}

	initial := tokens.DefaultSelection()
	if opts.Initial != nil {
		initial = *opts.Initial
	}
	if s.prefs != nil {
		dark, ok, err := s.prefs.DarkMode()
		switch {
		case err != nil:
			s.log.Warn(err, "failed to load dark mode preference")
		case ok:
			initial.DarkMode = dark
		}
	}

	if _, err := s.Select(initial); err != nil && !errors.Is(err, apperrors.ErrApply) {
		return nil, err
	}
	return s, nil
}

// Select makes sel current. Validation and catalog errors leave the session
// untouched. An apply failure marks the session degraded and keeps the last
// good token set.
func (s *Session) Select(sel tokens.Selection) (tokens.Set, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.selectLocked(sel)
}

func (s *Session) selectLocked(sel tokens.Selection) (tokens.Set, error) {
	if err := sel.Validate(); err != nil {
		return tokens.Set{}, err
	}
	set, err := tokens.Resolve(sel)
	if err != nil {
		return tokens.Set{}, err
	}

	if err := sink.Apply(s.sink, set); err != nil {
		s.degraded = err
		s.log.WithFields(map[string]any{
			"theme":   sel.Theme,
			"palette": sel.Palette,
		}).Error(err, "failed to apply tokens")
		return tokens.Set{}, err
	}

	s.degraded = nil
	s.sel = sel
	s.current = set
	s.resolved = true
	s.history.Record(history.NewEntry(sel, s.now()))

	s.log.WithFields(map[string]any{
		"theme":   sel.Theme,
		"palette": sel.Palette,
		"mode":    set.Mode,
	}).Debug("selection applied")
	return set, nil
}

// Selection returns the selection behind Current.
func (s *Session) Selection() tokens.Selection {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.sel
}

// Current returns the last fully applied token set.
func (s *Session) Current() (tokens.Set, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.resolved {
		return tokens.Set{}, ErrNotResolved
	}
	return s.current, nil
}

// Degraded reports the last apply failure, if the most recent change failed.
func (s *Session) Degraded() (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.degraded != nil, s.degraded
}

// Update applies fn to a copy of the current selection and selects the
// result.
func (s *Session) Update(fn func(tokens.Selection) tokens.Selection) (tokens.Set, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.selectLocked(fn(s.sel))
}

// SetDarkMode switches the palette variant and persists the choice. A
// persistence failure is logged, not returned.
func (s *Session) SetDarkMode(dark bool) (tokens.Set, error) {
	set, err := s.Update(func(sel tokens.Selection) tokens.Selection {
		sel.DarkMode = dark
		return sel
	})
	if err != nil {
		return set, err
	}
	s.persistDarkMode(dark)
	return set, nil
}

// ToggleDarkMode flips the palette variant.
func (s *Session) ToggleDarkMode() (tokens.Set, error) {
	return s.SetDarkMode(!s.Selection().DarkMode)
}

func (s *Session) persistDarkMode(dark bool) {
	if s.prefs == nil {
		return
	}
	if err := s.prefs.SetDarkMode(dark); err != nil {
		s.log.Warn(err, "failed to persist dark mode preference")
	}
}

// ApplyPreset selects the named preset on top of the current selection.
func (s *Session) ApplyPreset(name string) (tokens.Set, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	next, err := s.sel.WithPreset(name)
	if err != nil {
		return tokens.Set{}, err
	}
	return s.selectLocked(next)
}

// History returns the recorded configurations, newest first.
func (s *Session) History() []history.Entry {
	return s.history.Entries()
}

// RestoreHistory re-selects the entry at index i.
func (s *Session) RestoreHistory(i int) (tokens.Set, error) {
	entry, err := s.history.Restore(i)
	if err != nil {
		return tokens.Set{}, err
	}
	return s.restore(entry)
}

// RestoreHistoryID re-selects the entry with the given id.
func (s *Session) RestoreHistoryID(id string) (tokens.Set, error) {
	entry, ok := s.history.Find(id)
	if !ok {
		return tokens.Set{}, apperrors.NewUnknownIdentifier("history entry", id)
	}
	return s.restore(entry)
}

func (s *Session) restore(entry history.Entry) (tokens.Set, error) {
	return s.Update(entry.Apply)
}

// ShareCode encodes the current selection for a share link.
func (s *Session) ShareCode() (string, error) {
	return share.Encode(share.ConfigOf(s.Selection()))
}

// LoadShared merges a decoded share code over the current selection.
// Malformed codes are ignored and leave the session unchanged; a decoded
// configuration that fails validation is logged and also ignored.
func (s *Session) LoadShared(code string) tokens.Set {
	p := share.Decode(code, s.log)
	if !p.Empty() {
		set, err := s.Update(p.Merge)
		if err == nil {
			return set
		}
		s.log.Warn(err, "ignoring shared configuration")
	}
	set, _ := s.Current()
	return set
}

// Export formats the current token set.
func (s *Session) Export(target export.Target) (string, error) {
	set, err := s.Current()
	if err != nil {
		return "", err
	}
	return export.Format(set, target)
}
