// Package store provides the persistent key-value layer that owns all
// user state. Each record kind lives under one namespaced key as a
// single JSON document in SQLite, accessed through GORM with the
// pure-Go driver.
package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/gorm/logger"

	"github.com/deenlife/deenlife/internal/log"
)

// SchemaVersion is stamped on every record so a future format change
// has something to dispatch on.
const SchemaVersion = 1

// Keys for every record kind. All user state lives under one of these;
// each key is logically owned by a single feature area.
const (
	KeyHabits          = "deenlife_habits"
	KeyQuranProgress   = "deenlife_quran_progress"
	KeyLastRead        = "deenlife_last_read"
	KeyBookmarks       = "deenlife_bookmarks"
	KeyFavoriteHadiths = "deenlife_favorite_hadiths"
	KeySurahList       = "deenlife_surah_list"
	KeyLocation        = "deenlife_location"
)

// AllKeys enumerates every record kind, for whole-store operations
// like a reset.
var AllKeys = []string{
	KeyHabits,
	KeyQuranProgress,
	KeyLastRead,
	KeyBookmarks,
	KeyFavoriteHadiths,
	KeySurahList,
	KeyLocation,
}

// Record is a single persisted JSON document.
type Record struct {
	Key           string    `gorm:"primaryKey;size:100"`
	Value         string    `gorm:"type:text"`
	SchemaVersion int       `gorm:"column:schema_version"`
	UpdatedAt     time.Time `gorm:"autoUpdateTime"`
}

// TableName specifies the table name for GORM.
func (Record) TableName() string {
	return "kv_records"
}

// Config holds store configuration options.
type Config struct {
	Path  string
	Debug bool
}

// DefaultConfig returns sensible defaults.
func DefaultConfig(path string) Config {
	return Config{Path: path}
}

// Store wraps the GORM connection. Writes are serialized: the CLI is
// single-threaded by construction, but bubbletea commands run on
// goroutines, so every mutation is a full read-modify-write under mu.
type Store struct {
	db   *gorm.DB
	mu   sync.Mutex
	path string
}

// Open creates the store, its directory, and the schema.
func Open(cfg Config) (*Store, error) {
	dir := filepath.Dir(cfg.Path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("create store directory: %w", err)
	}

	logLevel := logger.Silent
	if cfg.Debug {
		logLevel = logger.Info
	}

	// DELETE journal mode: WAL has visibility issues with the pure-Go
	// SQLite driver.
	dsn := fmt.Sprintf("%s?_pragma=journal_mode(DELETE)&_pragma=busy_timeout(5000)", cfg.Path)

	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger:                 logger.Default.LogMode(logLevel),
		SkipDefaultTransaction: true,
	})
	if err != nil {
		return nil, fmt.Errorf("open store: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("get sql.DB: %w", err)
	}
	sqlDB.SetMaxIdleConns(1)
	sqlDB.SetMaxOpenConns(1)
	sqlDB.SetConnMaxLifetime(time.Hour)

	if err := db.AutoMigrate(&Record{}); err != nil {
		return nil, fmt.Errorf("migrate store: %w", err)
	}

	return &Store{db: db, path: cfg.Path}, nil
}

// Close closes the underlying database connection.
func (s *Store) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// Path returns the database file path.
func (s *Store) Path() string {
	return s.path
}

// read returns the raw JSON under key. Missing keys report absence;
// unexpected database errors are logged and also report absence, per
// the soft-fail contract.
func (s *Store) read(key string) (string, bool) {
	var rec Record
	err := s.db.Where("key = ?", key).First(&rec).Error
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			log.Errorf("store: read %q: %v", key, err)
		}
		return "", false
	}
	return rec.Value, true
}

// write upserts the full JSON value under key. On error nothing is
// written and the prior record stays authoritative.
func (s *Store) write(key, value string) error {
	rec := Record{Key: key, Value: value, SchemaVersion: SchemaVersion}
	err := s.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "schema_version", "updated_at"}),
	}).Create(&rec).Error
	if err != nil {
		return fmt.Errorf("store: write %q: %w", key, err)
	}
	return nil
}

// Get returns the value stored under key. A missing key or a value
// that fails to decode yields the type's zero value and false; decode
// failures are logged, never surfaced as errors.
func Get[T any](s *Store, key string) (T, bool) {
	var zero T

	s.mu.Lock()
	raw, ok := s.read(key)
	s.mu.Unlock()
	if !ok {
		return zero, false
	}

	var v T
	if err := json.Unmarshal([]byte(raw), &v); err != nil {
		log.Errorf("store: corrupt record %q: %v", key, err)
		return zero, false
	}
	return v, true
}

// Set serializes value and fully replaces whatever is stored under key.
func Set[T any](s *Store, key string, value T) error {
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("store: encode %q: %w", key, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	return s.write(key, string(data))
}

// Update applies fn to the current value under key and writes the
// result back, all under the store lock. fn receives the zero value
// when the key is absent or corrupt.
func Update[T any](s *Store, key string, fn func(T) T) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	var v T
	if raw, ok := s.read(key); ok {
		if err := json.Unmarshal([]byte(raw), &v); err != nil {
			log.Errorf("store: corrupt record %q: %v", key, err)
			var zero T
			v = zero
		}
	}

	data, err := json.Marshal(fn(v))
	if err != nil {
		return fmt.Errorf("store: encode %q: %w", key, err)
	}
	return s.write(key, string(data))
}

// Delete removes the record under key. Missing keys are a no-op.
func (s *Store) Delete(key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.db.Where("key = ?", key).Delete(&Record{}).Error
}
