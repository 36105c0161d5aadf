package alquran

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fastConfig(baseURL string) Config {
	return Config{
		BaseURL:        baseURL,
		MaxRetries:     3,
		InitialBackoff: time.Millisecond,
		Timeout:        2 * time.Second,
	}
}

func TestListSurahs(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/surah", r.URL.Path)
		fmt.Fprint(w, `{"code":200,"status":"OK","data":[
			{"number":1,"name":"سورة الفاتحة","englishName":"Al-Faatiha","englishNameTranslation":"The Opening","numberOfAyahs":7,"revelationType":"Meccan"},
			{"number":2,"name":"سورة البقرة","englishName":"Al-Baqara","englishNameTranslation":"The Cow","numberOfAyahs":286,"revelationType":"Medinan"}
		]}`)
	}))
	defer srv.Close()

	c := NewClient(fastConfig(srv.URL))
	surahs, err := c.ListSurahs(context.Background())
	require.NoError(t, err)
	require.Len(t, surahs, 2)
	assert.Equal(t, 1, surahs[0].Number)
	assert.Equal(t, "Al-Faatiha", surahs[0].EnglishName)
	assert.Equal(t, 286, surahs[1].NumberOfAyahs)
}

func TestGetSurah(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/surah/1/editions/quran-uthmani,en.sahih", r.URL.Path)
		fmt.Fprint(w, `{"code":200,"status":"OK","data":[
			{"number":1,"name":"سورة الفاتحة","englishName":"Al-Faatiha","numberOfAyahs":2,"revelationType":"Meccan",
			 "ayahs":[{"number":1,"text":"بِسْمِ اللَّهِ","numberInSurah":1},{"number":2,"text":"الْحَمْدُ لِلَّهِ","numberInSurah":2}]},
			{"number":1,"name":"سورة الفاتحة","englishName":"Al-Faatiha","numberOfAyahs":2,"revelationType":"Meccan",
			 "ayahs":[{"number":1,"text":"In the name of Allah","numberInSurah":1},{"number":2,"text":"All praise is due to Allah","numberInSurah":2}]}
		]}`)
	}))
	defer srv.Close()

	c := NewClient(fastConfig(srv.URL))
	content, err := c.GetSurah(context.Background(), 1)
	require.NoError(t, err)

	assert.Equal(t, "Al-Faatiha", content.EnglishName)
	require.Len(t, content.Arabic, 2)
	require.Len(t, content.Translation, 2)
	// Index-aligned by ayah position.
	assert.Equal(t, content.Arabic[1].NumberInSurah, content.Translation[1].NumberInSurah)
}

func TestGetSurah_SingleEditionRejected(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"code":200,"status":"OK","data":[{"number":1,"ayahs":[]}]}`)
	}))
	defer srv.Close()

	c := NewClient(fastConfig(srv.URL))
	_, err := c.GetSurah(context.Background(), 1)
	assert.ErrorIs(t, err, ErrUnavailable)
}

func TestGetJSON_RetriesThenSucceeds(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) <= 2 {
			w.WriteHeader(http.StatusBadGateway)
			return
		}
		fmt.Fprint(w, `{"code":200,"status":"OK","data":[{"number":1,"englishName":"Al-Faatiha"}]}`)
	}))
	defer srv.Close()

	c := NewClient(fastConfig(srv.URL))
	surahs, err := c.ListSurahs(context.Background())
	require.NoError(t, err)
	assert.Len(t, surahs, 1)
	assert.Equal(t, int32(3), calls.Load())
}

func TestGetJSON_RetryCountBounded(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	c := NewClient(fastConfig(srv.URL))
	_, err := c.ListSurahs(context.Background())

	// Ends in a retryable error state: no infinite retry, no panic.
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnavailable)
	assert.Equal(t, int32(4), calls.Load()) // 1 try + 3 retries
}

func TestGetJSON_ClientErrorIsPermanent(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	c := NewClient(fastConfig(srv.URL))
	_, err := c.ListSurahs(context.Background())
	require.Error(t, err)
	assert.Equal(t, int32(1), calls.Load())
}

func TestGetJSON_ContextCancellation(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	c := NewClient(fastConfig(srv.URL))
	_, err := c.ListSurahs(ctx)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUnavailable) || errors.Is(err, context.Canceled))
}

func TestNewClient_Defaults(t *testing.T) {
	c := NewClient(Config{})
	assert.Equal(t, DefaultBaseURL, c.baseURL)
	assert.Equal(t, uint64(3), c.maxRetries)
}
