// Package quran tracks the user's reading state: per-surah completion,
// the last-read pointer, verse bookmarks, and the cached surah index.
package quran

import (
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/deenlife/deenlife/internal/models"
	"github.com/deenlife/deenlife/internal/store"
)

// TotalSurahs is the number of chapters in the Quran.
const TotalSurahs = 114

// JuzCount is the number of juz' divisions (display grouping only).
const JuzCount = 30

// bookmarkPreviewLimit bounds the preview snippet stored with a
// bookmark. Truncation happens once at creation, never re-derived.
const bookmarkPreviewLimit = 50

// Tracker owns Quran reading state in the store.
type Tracker struct {
	store *store.Store
	now   func() time.Time
}

// NewTracker creates a tracker backed by s.
func NewTracker(s *store.Store) *Tracker {
	return &Tracker{store: s, now: time.Now}
}

// Completed returns the completed surah numbers, ascending.
func (t *Tracker) Completed() []int {
	completed, _ := store.Get[[]int](t.store, store.KeyQuranProgress)
	sort.Ints(completed)
	return completed
}

// IsCompleted reports whether the surah is marked completed.
func (t *Tracker) IsCompleted(surahNumber int) bool {
	for _, n := range t.Completed() {
		if n == surahNumber {
			return true
		}
	}
	return false
}

// ToggleCompleted flips the surah's membership in the completed set.
// It is its own inverse: two calls with the same number restore the
// prior state. Callers are trusted to pass numbers from the canonical
// surah list.
func (t *Tracker) ToggleCompleted(surahNumber int) error {
	return store.Update(t.store, store.KeyQuranProgress, func(cur []int) []int {
		for i, n := range cur {
			if n == surahNumber {
				return append(cur[:i], cur[i+1:]...)
			}
		}
		return append(cur, surahNumber)
	})
}

// ProgressPercent derives completion as a percentage of all 114
// surahs. It is computed, never stored.
func (t *Tracker) ProgressPercent() float64 {
	return float64(len(t.Completed())) / float64(TotalSurahs) * 100
}

// RecordLastRead unconditionally overwrites the resume pointer with
// the current timestamp. There is no undo and no history.
func (t *Tracker) RecordLastRead(surahNumber int, surahName string) error {
	return store.Set(t.store, store.KeyLastRead, models.LastRead{
		SurahNumber: surahNumber,
		SurahName:   surahName,
		Timestamp:   t.now().UnixMilli(),
	})
}

// LastRead returns the resume pointer if one has been recorded.
func (t *Tracker) LastRead() (models.LastRead, bool) {
	return store.Get[models.LastRead](t.store, store.KeyLastRead)
}

// Bookmarks returns all verse bookmarks.
func (t *Tracker) Bookmarks() []models.Bookmark {
	bms, _ := store.Get[[]models.Bookmark](t.store, store.KeyBookmarks)
	return bms
}

// IsBookmarked reports whether the exact (surah, ayah) pair is
// bookmarked.
func (t *Tracker) IsBookmarked(surahNumber, ayahNumber int) bool {
	for _, b := range t.Bookmarks() {
		if b.SurahNumber == surahNumber && b.AyahNumber == ayahNumber {
			return true
		}
	}
	return false
}

// ToggleBookmark toggles the bookmark keyed on the exact (surah, ayah)
// pair, storing a truncated preview of the given text when adding.
func (t *Tracker) ToggleBookmark(surahNumber, ayahNumber int, previewText string) error {
	return store.Update(t.store, store.KeyBookmarks, func(cur []models.Bookmark) []models.Bookmark {
		for i, b := range cur {
			if b.SurahNumber == surahNumber && b.AyahNumber == ayahNumber {
				return append(cur[:i], cur[i+1:]...)
			}
		}
		return append(cur, models.Bookmark{
			SurahNumber: surahNumber,
			AyahNumber:  ayahNumber,
			Text:        truncatePreview(previewText),
			Timestamp:   t.now().UnixMilli(),
		})
	})
}

// truncatePreview bounds the snippet to bookmarkPreviewLimit runes
// with a trailing ellipsis.
func truncatePreview(text string) string {
	runes := []rune(text)
	if len(runes) <= bookmarkPreviewLimit {
		return text
	}
	return string(runes[:bookmarkPreviewLimit]) + "..."
}

// CachedSurahs returns the surah index cached from a prior fetch.
func (t *Tracker) CachedSurahs() ([]models.Surah, bool) {
	surahs, ok := store.Get[[]models.Surah](t.store, store.KeySurahList)
	if !ok || len(surahs) == 0 {
		return nil, false
	}
	return surahs, true
}

// CacheSurahs stores the fetched surah index. The list is immutable
// once cached and never expires automatically.
func (t *Tracker) CacheSurahs(surahs []models.Surah) error {
	return store.Set(t.store, store.KeySurahList, surahs)
}

// SearchSurahs filters the index by number, english name
// (case-insensitive) or Arabic name (exact substring).
func SearchSurahs(surahs []models.Surah, term string) []models.Surah {
	if term == "" {
		return surahs
	}
	lower := strings.ToLower(term)
	var out []models.Surah
	for _, s := range surahs {
		if strings.Contains(strings.ToLower(s.EnglishName), lower) ||
			strings.Contains(s.Name, term) ||
			strings.Contains(strconv.Itoa(s.Number), term) {
			out = append(out, s)
		}
	}
	return out
}
