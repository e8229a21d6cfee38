package store

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	dsn := filepath.Join(t.TempDir(), "codehem_test.db")
	db, err := Open(dsn)
	require.NoError(t, err)
	return New(db)
}

func TestSaveAndLookupHash(t *testing.T) {
	s := openTestStore(t)

	require.NoError(t, s.SaveHash("widget.py", "Widget.render[method]", "digest-a", "hash-1"))

	got, ok := s.LookupHash("widget.py", "Widget.render[method]", "digest-a")
	require.True(t, ok)
	assert.Equal(t, "hash-1", got)
}

func TestLookupHashMissesOnDigestChange(t *testing.T) {
	s := openTestStore(t)
	require.NoError(t, s.SaveHash("widget.py", "Widget.render[method]", "digest-a", "hash-1"))

	_, ok := s.LookupHash("widget.py", "Widget.render[method]", "digest-b")
	assert.False(t, ok)
}

func TestSaveHashOverwritesExisting(t *testing.T) {
	s := openTestStore(t)
	require.NoError(t, s.SaveHash("widget.py", "Widget.render[method]", "digest-a", "hash-1"))
	require.NoError(t, s.SaveHash("widget.py", "Widget.render[method]", "digest-b", "hash-2"))

	got, ok := s.LookupHash("widget.py", "Widget.render[method]", "digest-b")
	require.True(t, ok)
	assert.Equal(t, "hash-2", got)
}

func TestRecordAndListHistory(t *testing.T) {
	s := openTestStore(t)

	require.NoError(t, s.RecordHistory(HistoryEntry{
		FilePath:  "widget.py",
		XPath:     "Widget.render[method]",
		Operation: "upsert",
		BaseHash:  "base",
		AfterHash: "after",
	}))

	entries, err := s.History("widget.py")
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "upsert", entries[0].Operation)
}

func TestHistoryEmptyForUnknownFile(t *testing.T) {
	s := openTestStore(t)
	entries, err := s.History("missing.py")
	require.NoError(t, err)
	assert.Empty(t, entries)
}
