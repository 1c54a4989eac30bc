// SPDX-License-Identifier: MIT
package history

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/thatcatcamp/stylelab/internal/themes"
	"github.com/thatcatcamp/stylelab/internal/tokens"
)

func entryWithSize(size float64) Entry {
	sel := tokens.DefaultSelection()
	sel.BaseFontSize = size
	return NewEntry(sel, time.Unix(int64(size), 0))
}

func TestRecordNewestFirst(t *testing.T) {
	h := New()
	h.Record(entryWithSize(12))
	h.Record(entryWithSize(13))

	entries := h.Entries()
	require.Len(t, entries, 2)
	assert.Equal(t, 13.0, entries[0].BaseFontSize)
	assert.Equal(t, 12.0, entries[1].BaseFontSize)
}

func TestRecordEvictsOldest(t *testing.T) {
	h := New()
	for i := 0; i < 11; i++ {
		h.Record(entryWithSize(float64(i + 1)))
	}

	require.Equal(t, Capacity, h.Len())
	entries := h.Entries()
	assert.Equal(t, 11.0, entries[0].BaseFontSize)
	assert.Equal(t, 2.0, entries[Capacity-1].BaseFontSize, "first entry evicted")
}

func TestRestore(t *testing.T) {
	h := New()
	first := entryWithSize(14)
	h.Record(first)
	h.Record(entryWithSize(18))

	got, err := h.Restore(1)
	require.NoError(t, err)
	assert.Equal(t, first, got)
	assert.Equal(t, 2, h.Len(), "restore does not mutate history")

	_, err = h.Restore(2)
	var idxErr *IndexError
	require.True(t, errors.As(err, &idxErr))
	assert.Equal(t, 2, idxErr.Len)

	_, err = h.Restore(-1)
	require.Error(t, err)
}

func TestFind(t *testing.T) {
	h := New()
	e := entryWithSize(20)
	h.Record(e)

	got, ok := h.Find(e.ID)
	require.True(t, ok)
	assert.Equal(t, e, got)

	_, ok = h.Find("nope")
	assert.False(t, ok)
}

func TestEntriesIsACopy(t *testing.T) {
	h := New()
	h.Record(entryWithSize(16))

	entries := h.Entries()
	entries[0].Theme = themes.Cyberpunk

	got, err := h.Restore(0)
	require.NoError(t, err)
	assert.Equal(t, themes.FlatModern, got.Theme)
}

func TestEntryApplyKeepsSpacingAndSpeed(t *testing.T) {
	sel := tokens.DefaultSelection()
	sel.Theme = themes.Glassmorphism
	sel.DarkMode = true
	e := NewEntry(sel, time.Now())

	base := tokens.DefaultSelection()
	base.SpacingUnit = 8
	base.AnimationSpeed = themes.SpeedFast

	out := e.Apply(base)
	assert.Equal(t, themes.Glassmorphism, out.Theme)
	assert.True(t, out.DarkMode)
	assert.Equal(t, 8.0, out.SpacingUnit)
	assert.Equal(t, themes.SpeedFast, out.AnimationSpeed)
	assert.NotEmpty(t, e.ID)
}

func TestHistoryNeverExceedsCapacity(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		n := rapid.IntRange(0, 40).Draw(t, "records")
		h := New()
		for i := 0; i < n; i++ {
			h.Record(entryWithSize(float64(i)))
		}
		want := n
		if want > Capacity {
			want = Capacity
		}
		if h.Len() != want {
			t.Fatalf("len = %d, want %d", h.Len(), want)
		}
		if n > 0 {
			newest, err := h.Restore(0)
			if err != nil {
				t.Fatal(err)
			}
			if newest.BaseFontSize != float64(n-1) {
				t.Fatalf("newest = %v, want %v", newest.BaseFontSize, n-1)
			}
		}
	})
}
