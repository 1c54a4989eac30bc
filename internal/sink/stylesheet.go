// SPDX-License-Identifier: MIT
package sink

import (
	"errors"
	"fmt"
	"strings"
	"sync"
)

// ErrInvalidProperty is returned for keys or values a stylesheet cannot hold.
var ErrInvalidProperty = errors.New("invalid property")

// Stylesheet is an in-memory global scope. Properties keep the position of
// their first insertion; later writes replace the value in place.
type Stylesheet struct {
	mu     sync.RWMutex
	keys   []string
	values map[string]string
}

// NewStylesheet returns an empty scope.
func NewStylesheet() *Stylesheet {
	return &Stylesheet{values: make(map[string]string)}
}

// SetProperty implements StyleSink.
func (s *Stylesheet) SetProperty(key, value string) error {
	if !strings.HasPrefix(key, "--") || len(key) == 2 {
		return fmt.Errorf("%w: key %q is not a custom property", ErrInvalidProperty, key)
	}
	if strings.ContainsAny(value, ";{}\n\r") {
		return fmt.Errorf("%w: value for %s would break the declaration block", ErrInvalidProperty, key)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.values[key]; !ok {
		s.keys = append(s.keys, key)
	}
	s.values[key] = value
	return nil
}

// Property returns the current value of key.
func (s *Stylesheet) Property(key string) (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.values[key]
	return v, ok
}

// Len returns the number of properties held.
func (s *Stylesheet) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.keys)
}

// CSS renders the scope as a :root block.
func (s *Stylesheet) CSS() string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var b strings.Builder
	b.WriteString(":root {\n")
	for _, k := range s.keys {
		fmt.Fprintf(&b, "  %s: %s;\n", k, s.values[k])
	}
	b.WriteString("}\n")
	return b.String()
}
