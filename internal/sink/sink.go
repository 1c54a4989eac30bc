// SPDX-License-Identifier: MIT

// Package sink applies a resolved token set to a style scope.
package sink

import (
	"github.com/thatcatcamp/stylelab/internal/apperrors"
	"github.com/thatcatcamp/stylelab/internal/tokens"
)

// StyleSink is a scope that holds custom properties. SetProperty upserts.
type StyleSink interface {
	SetProperty(key, value string) error
}

// Apply writes every non-empty token of set into s. Keys already present in
// s but absent from set are left alone. The first sink failure aborts the
// call and is returned as an ApplyError.
func Apply(s StyleSink, set tokens.Set) error {
	for _, e := range set.Entries() {
		if e.Value == "" {
			continue
		}
		if err := s.SetProperty(e.Key, e.Value); err != nil {
			return apperrors.NewApplyError(e.Key, err)
		}
	}
	return nil
}
