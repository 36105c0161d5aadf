package quran

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJuzsShape(t *testing.T) {
	require.Len(t, Juzs, JuzCount)

	prev := Juzs[0]
	for _, j := range Juzs[1:] {
		after := j.StartSurah > prev.StartSurah ||
			(j.StartSurah == prev.StartSurah && j.StartAyah > prev.StartAyah)
		assert.True(t, after, "juz %d does not start after juz %d", j.Number, prev.Number)
		prev = j
	}
}

func TestJuzForSurah(t *testing.T) {
	tests := []struct {
		surah int
		juz   int
	}{
		{1, 1},
		{2, 1},  // surah 2 opens inside juz 1; juz 2 starts at 2:142
		{3, 3},  // 3:1 lives in juz 3 (starts 2:253)
		{18, 15},
		{67, 29},
		{114, 30},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.juz, JuzForSurah(tt.surah).Number, "surah %d", tt.surah)
	}
}
