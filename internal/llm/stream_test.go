package llm

import (
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func feed(sr *StreamReader, chunks ...StreamChunk) {
	go func() {
		for _, c := range chunks {
			sr.Send(c)
		}
		sr.Close()
	}()
}

func TestStreamReaderIteration(t *testing.T) {
	sr := NewStreamReader()
	feed(sr,
		StreamChunk{Text: "bismillah "},
		StreamChunk{Text: "ar-rahman"},
		StreamChunk{Text: " ar-rahim", Done: true},
	)

	var got string
	for sr.Next() {
		got += sr.Current().Text
	}
	assert.Equal(t, "bismillah ar-rahman ar-rahim", got)
}

func TestStreamReaderCollect(t *testing.T) {
	sr := NewStreamReader()
	feed(sr,
		StreamChunk{Text: "two "},
		StreamChunk{Text: "parts", Done: true},
	)

	got, err := sr.Collect()
	require.NoError(t, err)
	assert.Equal(t, "two parts", got)
}

func TestStreamReaderCollectKeepsPartialOnError(t *testing.T) {
	sr := NewStreamReader()
	streamErr := errors.New("stream interrupted")
	feed(sr,
		StreamChunk{Text: "before "},
		StreamChunk{Error: streamErr},
		StreamChunk{Text: "after", Done: true},
	)

	got, err := sr.Collect()
	assert.Equal(t, streamErr, err)
	assert.Equal(t, "before after", got)
}

func TestStreamReaderCollectWithCallback(t *testing.T) {
	sr := NewStreamReader()
	feed(sr,
		StreamChunk{Text: "a"},
		StreamChunk{Text: "b"},
		StreamChunk{Text: "c", Done: true},
	)

	var seen []string
	got, err := sr.CollectWithCallback(func(c StreamChunk) {
		seen = append(seen, c.Text)
	})
	require.NoError(t, err)
	assert.Equal(t, "abc", got)
	assert.Equal(t, []string{"a", "b", "c"}, seen)
}

func TestStreamReaderCloseIsIdempotent(t *testing.T) {
	sr := NewStreamReader()
	sr.Close()
	sr.Close()

	// Sends after close are dropped, not panics.
	sr.Send(StreamChunk{Text: "dropped"})
	_, ok := <-sr.chunks
	assert.False(t, ok)
}

func TestStreamReaderConcurrentSendAndRead(t *testing.T) {
	sr := NewStreamReader()

	var wg sync.WaitGroup
	wg.Add(2)

	go func() {
		defer wg.Done()
		for i := 0; i < 100; i++ {
			sr.Send(StreamChunk{Text: "x"})
		}
		sr.Send(StreamChunk{Done: true})
		sr.Close()
	}()

	var count int
	go func() {
		defer wg.Done()
		for sr.Next() {
			count++
		}
	}()

	wg.Wait()
	assert.Equal(t, 101, count)
}

func TestStreamReaderEmpty(t *testing.T) {
	sr := NewStreamReader()
	go sr.Close()

	assert.False(t, sr.Next())
}

func TestStreamReaderDoneTerminatesCollect(t *testing.T) {
	sr := NewStreamReader()
	go func() {
		sr.Send(StreamChunk{Text: "kept "})
		sr.Send(StreamChunk{Text: "also kept", Done: true})
		time.Sleep(10 * time.Millisecond)
		sr.Send(StreamChunk{Text: " late straggler"})
		sr.Close()
	}()

	got, err := sr.Collect()
	require.NoError(t, err)
	assert.Equal(t, "kept also kept", got)
}
