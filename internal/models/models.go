package models

import (
	"time"
)

// PreferenceDarkMode is the only preference stylelab persists.
const PreferenceDarkMode = "design-system-dark-mode"

// Preference is a persisted key/value setting that survives restarts
type Preference struct {
	Name      string `gorm:"primaryKey;size:128"`
	Value     string `gorm:"not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName overrides for consistent naming
func (Preference) TableName() string {
	return "preferences"
}
