// SPDX-License-Identifier: MIT

// Package prefs persists the dark-mode preference across sessions.
package prefs

import (
	"errors"
	"fmt"
	"strconv"
	"sync"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/thatcatcamp/stylelab/internal/models"
)

// Store reads and writes the dark-mode preference. DarkMode reports
// ok=false when nothing has been stored yet.
type Store interface {
	DarkMode() (dark bool, ok bool, err error)
	SetDarkMode(dark bool) error
}

// GormStore keeps preferences in the preferences table.
type GormStore struct {
	db *gorm.DB
}

// NewGormStore returns a store over an already migrated database.
func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{db: db}
}

// DarkMode implements Store.
func (s *GormStore) DarkMode() (bool, bool, error) {
	var pref models.Preference
	err := s.db.Where("name = ?", models.PreferenceDarkMode).First(&pref).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return false, false, nil
	}
	if err != nil {
		return false, false, fmt.Errorf("failed to load preference: %w", err)
	}

	dark, err := strconv.ParseBool(pref.Value)
	if err != nil {
		return false, false, fmt.Errorf("corrupt %s preference %q: %w", models.PreferenceDarkMode, pref.Value, err)
	}
	return dark, true, nil
}

// SetDarkMode implements Store.
func (s *GormStore) SetDarkMode(dark bool) error {
	pref := models.Preference{Name: models.PreferenceDarkMode, Value: strconv.FormatBool(dark)}
	err := s.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "name"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
	}).Create(&pref).Error
	if err != nil {
		return fmt.Errorf("failed to save preference: %w", err)
	}
	return nil
}

// MemoryStore is a Store that forgets everything on exit.
type MemoryStore struct {
	mu   sync.Mutex
	dark *bool
}

// NewMemoryStore returns an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

// DarkMode implements Store.
func (m *MemoryStore) DarkMode() (bool, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.dark == nil {
		return false, false, nil
	}
	return *m.dark, true, nil
}

// SetDarkMode implements Store.
func (m *MemoryStore) SetDarkMode(dark bool) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.dark = &dark
	return nil
}
