package prayer

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/deenlife/deenlife/internal/models"
	"github.com/deenlife/deenlife/internal/store"
)

func openStore(t *testing.T) *store.Store {
	t.Helper()
	s, err := store.Open(store.DefaultConfig(filepath.Join(t.TempDir(), "test.db")))
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func TestResolveLocationUsesResolver(t *testing.T) {
	want := models.Coordinates{Latitude: 51.5, Longitude: -0.12}
	loc := ResolveLocation(ResolverFunc(func() (models.Coordinates, bool) {
		return want, true
	}))
	assert.Equal(t, want, loc.Coords)
	assert.False(t, loc.UsingDefault)
}

func TestResolveLocationFallsBackToKaaba(t *testing.T) {
	loc := ResolveLocation(ResolverFunc(func() (models.Coordinates, bool) {
		return models.Coordinates{}, false
	}))
	assert.Equal(t, KaabaCoordinates, loc.Coords)
	assert.True(t, loc.UsingDefault)
}

func TestResolveLocationNilResolver(t *testing.T) {
	loc := ResolveLocation(nil)
	assert.Equal(t, KaabaCoordinates, loc.Coords)
	assert.True(t, loc.UsingDefault)
}

func TestStoredResolverRoundTrip(t *testing.T) {
	s := openStore(t)

	_, ok := StoredResolver{Store: s}.Resolve()
	assert.False(t, ok, "empty store should not resolve")

	want := models.Coordinates{Latitude: 24.71, Longitude: 46.67}
	require.NoError(t, SaveLocation(s, want))

	got, ok := StoredResolver{Store: s}.Resolve()
	require.True(t, ok)
	assert.Equal(t, want, got)

	loc := ResolveLocation(StoredResolver{Store: s})
	assert.Equal(t, want, loc.Coords)
	assert.False(t, loc.UsingDefault)
}
