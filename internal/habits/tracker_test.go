package habits

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/deenlife/deenlife/internal/store"
)

func newTestTracker(t *testing.T) *Tracker {
	t.Helper()
	s, err := store.Open(store.DefaultConfig(filepath.Join(t.TempDir(), "deenlife.db")))
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	return NewTracker(s)
}

func TestAdd(t *testing.T) {
	tr := newTestTracker(t)

	h, err := tr.Add("  Pray Duha  ")
	require.NoError(t, err)
	assert.Equal(t, "Pray Duha", h.Name)
	assert.NotEmpty(t, h.ID)
	assert.Empty(t, h.CompletedDates)
	assert.Equal(t, DefaultTargetPerWeek, h.TargetPerWeek)

	list := tr.List()
	require.Len(t, list, 1)
	assert.Equal(t, h, list[0])
}

func TestAdd_RejectsBlankNames(t *testing.T) {
	tr := newTestTracker(t)

	for _, name := range []string{"", "   ", "\t\n"} {
		_, err := tr.Add(name)
		assert.ErrorIs(t, err, ErrEmptyName)
	}
	assert.Empty(t, tr.List())
}

func TestAdd_UniqueIDs(t *testing.T) {
	tr := newTestTracker(t)

	a, err := tr.Add("Morning Adhkar")
	require.NoError(t, err)
	b, err := tr.Add("Evening Adhkar")
	require.NoError(t, err)
	assert.NotEqual(t, a.ID, b.ID)
}

func TestRemove(t *testing.T) {
	tr := newTestTracker(t)

	h, err := tr.Add("Give Sadaqah")
	require.NoError(t, err)

	require.NoError(t, tr.Remove(h.ID))
	assert.Empty(t, tr.List())

	// Removing again is a no-op.
	require.NoError(t, tr.Remove(h.ID))
	assert.Empty(t, tr.List())
}

func TestToggleOn_OddEvenParity(t *testing.T) {
	tr := newTestTracker(t)

	h, err := tr.Add("Fast Mondays/Thursdays")
	require.NoError(t, err)

	const date = "2026-08-31"
	for i := 1; i <= 5; i++ {
		require.NoError(t, tr.ToggleOn(h.ID, date))
		got := tr.List()[0]
		if i%2 == 1 {
			assert.True(t, got.CompletedOn(date), "after %d toggles", i)
			assert.Len(t, got.CompletedDates, 1)
		} else {
			assert.False(t, got.CompletedOn(date), "after %d toggles", i)
			assert.Empty(t, got.CompletedDates)
		}
	}
}

func TestToggleOn_UnknownIDIsNoOp(t *testing.T) {
	tr := newTestTracker(t)

	_, err := tr.Add("Morning Adhkar")
	require.NoError(t, err)

	require.NoError(t, tr.ToggleOn("nope", "2026-08-31"))
	assert.Empty(t, tr.List()[0].CompletedDates)
}

func TestToggleOn_DatesAreIndependent(t *testing.T) {
	tr := newTestTracker(t)

	h, err := tr.Add("Morning Adhkar")
	require.NoError(t, err)

	require.NoError(t, tr.ToggleOn(h.ID, "2026-08-30"))
	require.NoError(t, tr.ToggleOn(h.ID, "2026-08-31"))
	require.NoError(t, tr.ToggleOn(h.ID, "2026-08-30"))

	got := tr.List()[0]
	assert.False(t, got.CompletedOn("2026-08-30"))
	assert.True(t, got.CompletedOn("2026-08-31"))
}

func TestToggle_UsesLocalCalendarDate(t *testing.T) {
	tr := newTestTracker(t)

	// 23:50 local on Aug 30 must land on Aug 30 even though the UTC
	// instant may already be Aug 31.
	loc := time.FixedZone("UTC-5", -5*60*60)
	tr.now = func() time.Time {
		return time.Date(2026, 8, 30, 23, 50, 0, 0, loc)
	}

	h, err := tr.Add("Read Surah Al-Mulk before sleep")
	require.NoError(t, err)
	require.NoError(t, tr.Toggle(h.ID))

	got := tr.List()[0]
	assert.True(t, got.CompletedOn("2026-08-30"))
	assert.False(t, got.CompletedOn("2026-08-31"))
}

func TestWeeklyHistogram(t *testing.T) {
	tr := newTestTracker(t)

	a, err := tr.Add("Morning Adhkar")
	require.NoError(t, err)
	b, err := tr.Add("Pray Duha")
	require.NoError(t, err)

	ref := time.Date(2026, 8, 31, 12, 0, 0, 0, time.Local)

	// Two completions on the reference day, one three days before,
	// one outside the window.
	require.NoError(t, tr.ToggleOn(a.ID, "2026-08-31"))
	require.NoError(t, tr.ToggleOn(b.ID, "2026-08-31"))
	require.NoError(t, tr.ToggleOn(a.ID, "2026-08-28"))
	require.NoError(t, tr.ToggleOn(a.ID, "2026-08-01"))

	hist := tr.WeeklyHistogram(ref)
	require.Len(t, hist, 7)

	// Chronologically ascending, ending at the reference date.
	assert.Equal(t, "2026-08-25", hist[0].Date)
	assert.Equal(t, "2026-08-31", hist[6].Date)
	for i := 1; i < len(hist); i++ {
		assert.Less(t, hist[i-1].Date, hist[i].Date)
	}

	// Counts sum to in-window completions only.
	total := 0
	for _, dc := range hist {
		total += dc.Count
	}
	assert.Equal(t, 3, total)
	assert.Equal(t, 2, hist[6].Count)

	byDate := map[string]int{}
	for _, dc := range hist {
		byDate[dc.Date] = dc.Count
	}
	assert.Equal(t, 1, byDate["2026-08-28"])
}

func TestWeeklyHistogram_EmptyCollection(t *testing.T) {
	tr := newTestTracker(t)

	hist := tr.WeeklyHistogram(time.Now())
	require.Len(t, hist, 7)
	for _, dc := range hist {
		assert.Zero(t, dc.Count)
	}
}

func TestTodayStats(t *testing.T) {
	tr := newTestTracker(t)

	h, err := tr.Add("Pray Duha")
	require.NoError(t, err)

	done, total := tr.TodayStats()
	assert.Equal(t, 0, done)
	assert.Equal(t, 1, total)

	require.NoError(t, tr.Toggle(h.ID))
	done, total = tr.TodayStats()
	assert.Equal(t, 1, done)
	assert.Equal(t, 1, total)

	require.NoError(t, tr.Remove(h.ID))
	done, total = tr.TodayStats()
	assert.Zero(t, done)
	assert.Zero(t, total)
}
