package quran

import (
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/deenlife/deenlife/internal/models"
	"github.com/deenlife/deenlife/internal/store"
)

func newTestTracker(t *testing.T) *Tracker {
	t.Helper()
	s, err := store.Open(store.DefaultConfig(filepath.Join(t.TempDir(), "deenlife.db")))
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	return NewTracker(s)
}

func TestToggleCompleted_IsItsOwnInverse(t *testing.T) {
	tr := newTestTracker(t)

	require.NoError(t, tr.ToggleCompleted(67))
	assert.True(t, tr.IsCompleted(67))
	assert.Equal(t, []int{67}, tr.Completed())

	require.NoError(t, tr.ToggleCompleted(67))
	assert.False(t, tr.IsCompleted(67))
	assert.Empty(t, tr.Completed())
}

func TestToggleCompleted_OtherMembersUntouched(t *testing.T) {
	tr := newTestTracker(t)

	require.NoError(t, tr.ToggleCompleted(1))
	require.NoError(t, tr.ToggleCompleted(114))
	require.NoError(t, tr.ToggleCompleted(1))

	assert.Equal(t, []int{114}, tr.Completed())
}

func TestProgressPercent(t *testing.T) {
	tr := newTestTracker(t)

	assert.Zero(t, tr.ProgressPercent())

	require.NoError(t, tr.ToggleCompleted(1))
	assert.InDelta(t, 100.0/114, tr.ProgressPercent(), 1e-9)

	for n := 2; n <= TotalSurahs; n++ {
		require.NoError(t, tr.ToggleCompleted(n))
	}
	assert.InDelta(t, 100.0, tr.ProgressPercent(), 1e-9)
}

func TestRecordLastRead_Overwrites(t *testing.T) {
	tr := newTestTracker(t)
	tr.now = func() time.Time { return time.UnixMilli(1000) }

	_, ok := tr.LastRead()
	assert.False(t, ok)

	require.NoError(t, tr.RecordLastRead(2, "Al-Baqara"))
	tr.now = func() time.Time { return time.UnixMilli(2000) }
	require.NoError(t, tr.RecordLastRead(67, "Al-Mulk"))

	lr, ok := tr.LastRead()
	require.True(t, ok)
	assert.Equal(t, models.LastRead{SurahNumber: 67, SurahName: "Al-Mulk", Timestamp: 2000}, lr)
}

func TestToggleBookmark_KeyedOnExactPair(t *testing.T) {
	tr := newTestTracker(t)

	require.NoError(t, tr.ToggleBookmark(2, 5, "And when We said"))
	require.NoError(t, tr.ToggleBookmark(3, 5, "Indeed, those who disbelieve"))

	assert.True(t, tr.IsBookmarked(2, 5))
	assert.True(t, tr.IsBookmarked(3, 5))

	// Toggling ayah 5 of surah 2 never affects ayah 5 of surah 3.
	require.NoError(t, tr.ToggleBookmark(2, 5, ""))
	assert.False(t, tr.IsBookmarked(2, 5))
	assert.True(t, tr.IsBookmarked(3, 5))
}

func TestToggleBookmark_PreviewTruncatedAtCreation(t *testing.T) {
	tr := newTestTracker(t)

	long := strings.Repeat("a", 80)
	require.NoError(t, tr.ToggleBookmark(2, 255, long))

	bms := tr.Bookmarks()
	require.Len(t, bms, 1)
	assert.Equal(t, strings.Repeat("a", 50)+"...", bms[0].Text)

	// Short previews are stored untouched.
	require.NoError(t, tr.ToggleBookmark(2, 256, "short"))
	bms = tr.Bookmarks()
	require.Len(t, bms, 2)
	assert.Equal(t, "short", bms[1].Text)
}

func TestTruncatePreview_RuneSafe(t *testing.T) {
	arabic := strings.Repeat("ب", 60) // 60 Arabic letters, multibyte
	got := truncatePreview(arabic)
	assert.Equal(t, strings.Repeat("ب", 50)+"...", got)
}

func TestSurahCache(t *testing.T) {
	tr := newTestTracker(t)

	_, ok := tr.CachedSurahs()
	assert.False(t, ok)

	list := []models.Surah{
		{Number: 1, Name: "سورة الفاتحة", EnglishName: "Al-Faatiha", NumberOfAyahs: 7, RevelationType: "Meccan"},
		{Number: 2, EnglishName: "Al-Baqara", NumberOfAyahs: 286, RevelationType: "Medinan"},
	}
	require.NoError(t, tr.CacheSurahs(list))

	got, ok := tr.CachedSurahs()
	require.True(t, ok)
	assert.Equal(t, list, got)
}

func TestSearchSurahs(t *testing.T) {
	list := []models.Surah{
		{Number: 1, Name: "الفاتحة", EnglishName: "Al-Faatiha"},
		{Number: 2, Name: "البقرة", EnglishName: "Al-Baqara"},
		{Number: 67, Name: "الملك", EnglishName: "Al-Mulk"},
	}

	assert.Len(t, SearchSurahs(list, ""), 3)
	assert.Len(t, SearchSurahs(list, "baqara"), 1)
	assert.Len(t, SearchSurahs(list, "67"), 1)
	assert.Len(t, SearchSurahs(list, "الملك"), 1)
	assert.Empty(t, SearchSurahs(list, "zzz"))
}

func TestAudioURL(t *testing.T) {
	r, ok := ReciterByID("mishary")
	require.True(t, ok)
	assert.Equal(t, "https://server8.mp3quran.net/afs/001.mp3", AudioURL(r, 1))
	assert.Equal(t, "https://server8.mp3quran.net/afs/067.mp3", AudioURL(r, 67))
	assert.Equal(t, "https://server8.mp3quran.net/afs/114.mp3", AudioURL(r, 114))

	_, ok = ReciterByID("nobody")
	assert.False(t, ok)
}
