package dua

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAllReturnsCopy(t *testing.T) {
	first := All()
	require.NotEmpty(t, first)

	first[0].Category = "mutated"

	again := All()
	assert.Equal(t, "General Good", again[0].Category)
}

func TestSearchEmptyQueryReturnsEverything(t *testing.T) {
	assert.Len(t, Search(""), len(All()))
	assert.Len(t, Search("   "), len(All()))
}

func TestSearchMatchesCategory(t *testing.T) {
	got := Search("parents")
	require.Len(t, got, 1)
	assert.Equal(t, "Surah Al-Isra 17:24", got[0].Source)
}

func TestSearchMatchesTranslation(t *testing.T) {
	got := Search("increase me in knowledge")
	require.Len(t, got, 1)
	assert.Equal(t, "Knowledge", got[0].Category)
}

func TestSearchIsCaseInsensitive(t *testing.T) {
	assert.Equal(t, Search("MORNING"), Search("morning"))
	assert.NotEmpty(t, Search("MORNING"))
}

func TestSearchNoMatch(t *testing.T) {
	assert.Empty(t, Search("zzz-no-such-dua"))
}
