// Package store persists an element-hash cache and the upsert/remove
// history behind the CLI's `history` command. The CLI records history on
// `patch --write`; its `--if-match` check recomputes the hash from source
// and does not read or write the cache. It runs on a pure-Go sqlite driver
// so the CLI never needs cgo.
package store

import (
	"fmt"
	"time"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
)

// ElementHash caches the last known content hash of an xpath-addressed
// element within a file, keyed by the file's own digest so a stale cache
// row is detected the moment the file changes underneath it.
type ElementHash struct {
	ID          uint   `gorm:"primaryKey"`
	FilePath    string `gorm:"type:text;index:idx_hash_lookup,priority:1"`
	XPath       string `gorm:"type:text;index:idx_hash_lookup,priority:2"`
	FileDigest  string `gorm:"type:varchar(64)"`
	ElementHash string `gorm:"type:varchar(64)"`
	UpdatedAt   time.Time
}

// TableName gives the cache table a name distinct from its Go identifier.
func (ElementHash) TableName() string { return "element_hashes" }

// HistoryEntry records one committed Upsert or Remove call, so a caller
// can list or diff past manipulations.
type HistoryEntry struct {
	ID        uint   `gorm:"primaryKey"`
	FilePath  string `gorm:"type:text;index"`
	XPath     string `gorm:"type:text"`
	Operation string `gorm:"type:varchar(20)"` // "upsert" or "remove"
	BaseHash  string `gorm:"type:varchar(64)"`
	AfterHash string `gorm:"type:varchar(64)"`
	Diff      string `gorm:"type:text"`
	AppliedAt time.Time `gorm:"autoCreateTime"`
}

// TableName gives the history table a name distinct from its Go identifier.
func (HistoryEntry) TableName() string { return "history_entries" }

// Open connects to the sqlite database at dsn and migrates its schema.
func Open(dsn string) (*gorm.DB, error) {
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("opening store at %s: %w", dsn, err)
	}
	if err := db.AutoMigrate(&ElementHash{}, &HistoryEntry{}); err != nil {
		return nil, fmt.Errorf("migrating store schema: %w", err)
	}
	return db, nil
}

// Store wraps a *gorm.DB with the cache/history operations the CLI needs.
type Store struct {
	db *gorm.DB
}

// New wraps an already-open database connection.
func New(db *gorm.DB) *Store {
	return &Store{db: db}
}

// LookupHash returns the cached element hash for (filePath, xpath) if the
// file's current digest still matches what was cached, reporting a miss
// otherwise so the caller re-extracts from source.
func (s *Store) LookupHash(filePath, xpath, fileDigest string) (string, bool) {
	var row ElementHash
	err := s.db.Where("file_path = ? AND x_path = ?", filePath, xpath).First(&row).Error
	if err != nil || row.FileDigest != fileDigest {
		return "", false
	}
	return row.ElementHash, true
}

// SaveHash upserts the cached hash for (filePath, xpath).
func (s *Store) SaveHash(filePath, xpath, fileDigest, elementHash string) error {
	var row ElementHash
	err := s.db.Where("file_path = ? AND x_path = ?", filePath, xpath).First(&row).Error
	if err == gorm.ErrRecordNotFound {
		return s.db.Create(&ElementHash{
			FilePath:    filePath,
			XPath:       xpath,
			FileDigest:  fileDigest,
			ElementHash: elementHash,
			UpdatedAt:   time.Now(),
		}).Error
	}
	if err != nil {
		return err
	}
	row.FileDigest = fileDigest
	row.ElementHash = elementHash
	row.UpdatedAt = time.Now()
	return s.db.Save(&row).Error
}

// RecordHistory appends an entry to the manipulation history.
func (s *Store) RecordHistory(entry HistoryEntry) error {
	return s.db.Create(&entry).Error
}

// History returns every recorded manipulation of filePath, most recent first.
func (s *Store) History(filePath string) ([]HistoryEntry, error) {
	var entries []HistoryEntry
	err := s.db.Where("file_path = ?", filePath).Order("applied_at desc").Find(&entries).Error
	return entries, err
}
