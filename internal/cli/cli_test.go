package cli

import (
	"fmt"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/deenlife/deenlife/internal/config"
	"github.com/deenlife/deenlife/internal/dua"
	"github.com/deenlife/deenlife/internal/habits"
	"github.com/deenlife/deenlife/internal/models"
	"github.com/deenlife/deenlife/internal/prayer"
	"github.com/deenlife/deenlife/internal/store"
)

func TestParseSurahNumber(t *testing.T) {
	n, err := parseSurahNumber("114")
	require.NoError(t, err)
	assert.Equal(t, 114, n)

	for _, bad := range []string{"0", "115", "-3", "abc", ""} {
		_, err := parseSurahNumber(bad)
		assert.Error(t, err, "input %q", bad)
	}
}

func TestLookupHadith(t *testing.T) {
	found, text, arabic, source := lookupHadith("intentions", "INT-1000")
	require.True(t, found)
	assert.NotEmpty(t, text)
	assert.NotEmpty(t, arabic)
	assert.NotEmpty(t, source)

	found, _, _, _ = lookupHadith("intentions", "INT-9999")
	assert.False(t, found)
}

func TestLookupDua(t *testing.T) {
	all := dua.All()

	d, err := lookupDua("1")
	require.NoError(t, err)
	assert.Equal(t, all[0].Category, d.Category)

	d, err = lookupDua(fmt.Sprint(len(all)))
	require.NoError(t, err)
	assert.Equal(t, all[len(all)-1].Category, d.Category)

	for _, bad := range []string{"0", fmt.Sprint(len(all) + 1), "x", ""} {
		_, err := lookupDua(bad)
		assert.Error(t, err, "input %q", bad)
	}
}

func TestNormalizeDuaLanguage(t *testing.T) {
	lang, err := normalizeDuaLanguage("urdu")
	require.NoError(t, err)
	assert.Equal(t, "Urdu", lang)

	_, err = normalizeDuaLanguage("klingon")
	assert.Error(t, err)
}

func TestRunResetClearsEverything(t *testing.T) {
	t.Setenv("DEENLIFE_HOME", t.TempDir())

	_, s, err := openStore()
	require.NoError(t, err)
	_, err = habits.NewTracker(s).Add("Read Quran")
	require.NoError(t, err)
	require.NoError(t, s.Close())

	origForce := resetForce
	defer func() { resetForce = origForce }()

	// Without --force nothing is touched.
	resetForce = false
	require.Error(t, runReset(resetCmd, nil))

	_, s, err = openStore()
	require.NoError(t, err)
	assert.Len(t, habits.NewTracker(s).List(), 1)
	require.NoError(t, s.Close())

	resetForce = true
	require.NoError(t, runReset(resetCmd, nil))

	_, s, err = openStore()
	require.NoError(t, err)
	defer func() { _ = s.Close() }()
	assert.Empty(t, habits.NewTracker(s).List())
}

func TestResolveLocationPriority(t *testing.T) {
	s, err := store.Open(store.DefaultConfig(filepath.Join(t.TempDir(), "test.db")))
	require.NoError(t, err)
	defer func() { _ = s.Close() }()

	saved := models.Coordinates{Latitude: 24.71, Longitude: 46.67}
	require.NoError(t, prayer.SaveLocation(s, saved))

	// Environment override wins over the saved location.
	cfg := &config.Config{
		Location: config.LocationConfig{Latitude: 51.5, Longitude: -0.12, Set: true},
	}
	loc := resolveLocation(cfg, s)
	assert.Equal(t, 51.5, loc.Coords.Latitude)
	assert.False(t, loc.UsingDefault)

	// Without the override the saved location is used.
	loc = resolveLocation(&config.Config{}, s)
	assert.Equal(t, saved, loc.Coords)
	assert.False(t, loc.UsingDefault)
}
