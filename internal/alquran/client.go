// Package alquran is a narrow client for the alquran.cloud v1 API:
// the surah index and per-surah editions (Arabic text plus an English
// translation, index-aligned by ayah position).
package alquran

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/cenkalti/backoff/v4"
	"golang.org/x/time/rate"

	"github.com/deenlife/deenlife/internal/models"
)

// DefaultBaseURL is the public alquran.cloud endpoint.
const DefaultBaseURL = "https://api.alquran.cloud/v1"

// Editions requested for reading: Uthmani Arabic plus Sahih
// International English, fetched together so the ayah arrays align.
const (
	ArabicEdition      = "quran-uthmani"
	TranslationEdition = "en.sahih"
)

// ErrUnavailable wraps a fetch that failed after all retries. Callers
// surface it as a dismissible error with a manual retry action.
var ErrUnavailable = errors.New("alquran: content unavailable")

// Config holds client options.
type Config struct {
	BaseURL string
	// MaxRetries bounds retry attempts after the first try.
	MaxRetries int
	// InitialBackoff is the first retry delay; it doubles per attempt.
	InitialBackoff time.Duration
	// Timeout bounds a single HTTP request.
	Timeout time.Duration
}

// DefaultConfig returns sensible defaults.
func DefaultConfig() Config {
	return Config{
		BaseURL:        DefaultBaseURL,
		MaxRetries:     3,
		InitialBackoff: time.Second,
		Timeout:        15 * time.Second,
	}
}

// Client fetches Quran content with bounded retries and a politeness
// rate limit.
type Client struct {
	baseURL    string
	httpClient *http.Client
	limiter    *rate.Limiter
	maxRetries uint64
	initial    time.Duration
}

// NewClient creates a client from cfg, filling in defaults for zero
// fields.
func NewClient(cfg Config) *Client {
	def := DefaultConfig()
	if cfg.BaseURL == "" {
		cfg.BaseURL = def.BaseURL
	}
	if cfg.MaxRetries <= 0 {
		cfg.MaxRetries = def.MaxRetries
	}
	if cfg.InitialBackoff <= 0 {
		cfg.InitialBackoff = def.InitialBackoff
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = def.Timeout
	}
	return &Client{
		baseURL:    cfg.BaseURL,
		httpClient: &http.Client{Timeout: cfg.Timeout},
		limiter:    rate.NewLimiter(rate.Limit(4), 4),
		maxRetries: uint64(cfg.MaxRetries),
		initial:    cfg.InitialBackoff,
	}
}

// SurahContent is the reading payload for one surah: metadata plus the
// two parallel ayah arrays.
type SurahContent struct {
	Number         int
	Name           string // Arabic name
	EnglishName    string
	NumberOfAyahs  int
	RevelationType string
	Arabic         []models.Ayah
	Translation    []models.Ayah
}

type surahListResponse struct {
	Code   int            `json:"code"`
	Status string         `json:"status"`
	Data   []models.Surah `json:"data"`
}

type editionData struct {
	Number         int           `json:"number"`
	Name           string        `json:"name"`
	EnglishName    string        `json:"englishName"`
	NumberOfAyahs  int           `json:"numberOfAyahs"`
	RevelationType string        `json:"revelationType"`
	Ayahs          []models.Ayah `json:"ayahs"`
}

type editionsResponse struct {
	Code   int           `json:"code"`
	Status string        `json:"status"`
	Data   []editionData `json:"data"`
}

// ListSurahs fetches the ordered surah index.
func (c *Client) ListSurahs(ctx context.Context) ([]models.Surah, error) {
	var resp surahListResponse
	if err := c.getJSON(ctx, c.baseURL+"/surah", &resp); err != nil {
		return nil, err
	}
	if resp.Code != http.StatusOK || len(resp.Data) == 0 {
		return nil, fmt.Errorf("%w: unexpected surah list response (code %d)", ErrUnavailable, resp.Code)
	}
	return resp.Data, nil
}

// GetSurah fetches one surah in both editions. Both must be present
// and index-aligned or the response is rejected.
func (c *Client) GetSurah(ctx context.Context, number int) (*SurahContent, error) {
	url := fmt.Sprintf("%s/surah/%d/editions/%s,%s", c.baseURL, number, ArabicEdition, TranslationEdition)

	var resp editionsResponse
	if err := c.getJSON(ctx, url, &resp); err != nil {
		return nil, err
	}
	if resp.Code != http.StatusOK || len(resp.Data) < 2 {
		return nil, fmt.Errorf("%w: unexpected editions response (code %d, %d editions)", ErrUnavailable, resp.Code, len(resp.Data))
	}

	arabic, translation := resp.Data[0], resp.Data[1]
	if len(arabic.Ayahs) != len(translation.Ayahs) {
		return nil, fmt.Errorf("%w: editions misaligned (%d vs %d ayahs)", ErrUnavailable, len(arabic.Ayahs), len(translation.Ayahs))
	}

	return &SurahContent{
		Number:         arabic.Number,
		Name:           arabic.Name,
		EnglishName:    arabic.EnglishName,
		NumberOfAyahs:  arabic.NumberOfAyahs,
		RevelationType: arabic.RevelationType,
		Arabic:         arabic.Ayahs,
		Translation:    translation.Ayahs,
	}, nil
}

// getJSON performs a GET with exponential backoff. Retries stop after
// maxRetries additional attempts; the final error wraps ErrUnavailable
// so the UI knows the failure is retryable by hand, not automatically.
func (c *Client) getJSON(ctx context.Context, url string, out any) error {
	op := func() error {
		if err := c.limiter.Wait(ctx); err != nil {
			return backoff.Permanent(err)
		}

		req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
		if err != nil {
			return backoff.Permanent(err)
		}

		resp, err := c.httpClient.Do(req)
		if err != nil {
			return err
		}
		defer func() { _ = resp.Body.Close() }()

		if resp.StatusCode != http.StatusOK {
			err := fmt.Errorf("http status %d", resp.StatusCode)
			// Client errors other than rate limiting won't heal on
			// retry.
			if resp.StatusCode >= 400 && resp.StatusCode < 500 && resp.StatusCode != http.StatusTooManyRequests {
				return backoff.Permanent(err)
			}
			return err
		}

		body, err := io.ReadAll(resp.Body)
		if err != nil {
			return err
		}
		if err := json.Unmarshal(body, out); err != nil {
			return backoff.Permanent(fmt.Errorf("decode response: %w", err))
		}
		return nil
	}

	bo := backoff.NewExponentialBackOff()
	bo.InitialInterval = c.initial
	bo.Multiplier = 2
	bo.RandomizationFactor = 0
	bo.MaxInterval = 30 * time.Second

	err := backoff.Retry(op, backoff.WithContext(backoff.WithMaxRetries(bo, c.maxRetries), ctx))
	if err != nil {
		return fmt.Errorf("%w: %s: %v", ErrUnavailable, url, err)
	}
	return nil
}
