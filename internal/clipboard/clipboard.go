// SPDX-License-Identifier: MIT

// Package clipboard copies text to the host clipboard.
package clipboard

import (
	"fmt"

	"github.com/atotto/clipboard"
)

// Clipboard writes text to a clipboard.
type Clipboard interface {
	Copy(text string) error
}

// System uses the operating system clipboard.
type System struct{}

// Copy implements Clipboard.
func (System) Copy(text string) error {
	if err := clipboard.WriteAll(text); err != nil {
		return fmt.Errorf("failed to copy to clipboard: %w", err)
	}
	return nil
}

// Noop discards text.
type Noop struct{}

// Copy implements Clipboard.
func (Noop) Copy(string) error { return nil }

// Memory keeps the last copied text. Used by tests and headless runs.
type Memory struct {
	Text string
	Err  error
}

// Copy implements Clipboard.
func (m *Memory) Copy(text string) error {
	if m.Err != nil {
		return m.Err
	}
	m.Text = text
	return nil
}
