package tui

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWindowKeepsCursorVisible(t *testing.T) {
	tests := []struct {
		name      string
		cursor    int
		length    int
		size      int
		wantStart int
		wantEnd   int
	}{
		{"fits entirely", 3, 5, 10, 0, 5},
		{"cursor at top", 0, 100, 10, 0, 10},
		{"cursor centered", 50, 100, 10, 45, 55},
		{"cursor at bottom", 99, 100, 10, 90, 100},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			start, end := window(tt.cursor, tt.length, tt.size)
			assert.Equal(t, tt.wantStart, start)
			assert.Equal(t, tt.wantEnd, end)
			assert.GreaterOrEqual(t, tt.cursor, start)
			assert.Less(t, tt.cursor, end)
		})
	}
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "short", truncate("short", 20))
	assert.Equal(t, "aaaaaaaaaa...", truncate("aaaaaaaaaaaaaaa", 10))
	// Floor keeps degenerate widths readable.
	assert.Equal(t, "aaaaaaaaaa...", truncate("aaaaaaaaaaaaaaa", 2))
}

func TestCompassLine(t *testing.T) {
	assert.Equal(t, "Face N", compassLine(0))
	assert.Equal(t, "Face E", compassLine(90))
	assert.Equal(t, "Face ESE", compassLine(119))
	assert.Equal(t, "Face N", compassLine(355))
}

func TestRenderMarkdownFallsBackToRaw(t *testing.T) {
	out := RenderMarkdown("plain text", 0)
	assert.Contains(t, out, "plain text")
}
