// Package habits implements habit tracking: CRUD over the habit
// collection, daily completion toggling, and the weekly completion
// histogram derived from it.
package habits

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/deenlife/deenlife/internal/models"
	"github.com/deenlife/deenlife/internal/store"
)

// DateLayout is the calendar-date format used for completions. Dates
// are local calendar days, never UTC instants: a completion recorded
// at 23:50 local must land on the local day.
const DateLayout = "2006-01-02"

// DefaultTargetPerWeek is assigned to newly created habits.
const DefaultTargetPerWeek = 7

// ErrEmptyName is returned when adding a habit with a blank name.
var ErrEmptyName = errors.New("habits: name is empty")

// Suggested holds starter habits offered when the list is empty.
var Suggested = []string{
	"Read Surah Al-Mulk before sleep",
	"Pray Duha",
	"Morning Adhkar",
	"Evening Adhkar",
	"Fast Mondays/Thursdays",
	"Give Sadaqah",
}

// Tracker owns the habit collection in the store.
type Tracker struct {
	store *store.Store
	now   func() time.Time
}

// NewTracker creates a tracker backed by s.
func NewTracker(s *store.Store) *Tracker {
	return &Tracker{store: s, now: time.Now}
}

// List returns the current habit collection. An absent or corrupt
// record yields an empty collection.
func (t *Tracker) List() []models.Habit {
	habits, _ := store.Get[[]models.Habit](t.store, store.KeyHabits)
	return habits
}

// Add creates a habit with a fresh id and appends it to the
// collection. Blank names (after trimming) are rejected.
func (t *Tracker) Add(name string) (models.Habit, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return models.Habit{}, ErrEmptyName
	}

	habit := models.Habit{
		ID:             uuid.NewString(),
		Name:           name,
		CompletedDates: []string{},
		TargetPerWeek:  DefaultTargetPerWeek,
	}

	err := store.Update(t.store, store.KeyHabits, func(cur []models.Habit) []models.Habit {
		return append(cur, habit)
	})
	if err != nil {
		return models.Habit{}, err
	}
	return habit, nil
}

// Remove deletes the habit with the given id. Unknown ids are a no-op.
func (t *Tracker) Remove(id string) error {
	return store.Update(t.store, store.KeyHabits, func(cur []models.Habit) []models.Habit {
		kept := cur[:0]
		for _, h := range cur {
			if h.ID != id {
				kept = append(kept, h)
			}
		}
		return kept
	})
}

// Toggle flips today's completion for the habit with the given id.
func (t *Tracker) Toggle(id string) error {
	return t.ToggleOn(id, t.now().Format(DateLayout))
}

// ToggleOn flips the completion of the given calendar date: present
// dates are removed, absent ones added. Two calls with the same date
// cancel out. Unknown ids are a no-op.
func (t *Tracker) ToggleOn(id, date string) error {
	return store.Update(t.store, store.KeyHabits, func(cur []models.Habit) []models.Habit {
		for i, h := range cur {
			if h.ID != id {
				continue
			}
			if h.CompletedOn(date) {
				kept := make([]string, 0, len(h.CompletedDates)-1)
				for _, d := range h.CompletedDates {
					if d != date {
						kept = append(kept, d)
					}
				}
				cur[i].CompletedDates = kept
			} else {
				cur[i].CompletedDates = append(h.CompletedDates, date)
			}
			break
		}
		return cur
	})
}

// DayCount is one bar of the weekly histogram.
type DayCount struct {
	Date  string // YYYY-MM-DD
	Label string // short weekday name
	Count int    // habits completed that day
}

// WeeklyHistogram derives completion counts for the seven calendar
// days ending at ref, chronologically ascending. It is recomputed from
// current state on every call.
func (t *Tracker) WeeklyHistogram(ref time.Time) []DayCount {
	habits := t.List()
	out := make([]DayCount, 0, 7)
	for i := 6; i >= 0; i-- {
		day := ref.AddDate(0, 0, -i)
		date := day.Format(DateLayout)
		count := 0
		for _, h := range habits {
			if h.CompletedOn(date) {
				count++
			}
		}
		out = append(out, DayCount{Date: date, Label: day.Format("Mon"), Count: count})
	}
	return out
}

// TodayStats reports how many habits are completed today out of the
// total tracked.
func (t *Tracker) TodayStats() (done, total int) {
	today := t.now().Format(DateLayout)
	habits := t.List()
	for _, h := range habits {
		if h.CompletedOn(today) {
			done++
		}
	}
	return done, len(habits)
}
