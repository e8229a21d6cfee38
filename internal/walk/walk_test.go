package walk

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTree(t *testing.T, root string, files map[string]string) {
	t.Helper()
	for rel, content := range files {
		full := filepath.Join(root, rel)
		require.NoError(t, os.MkdirAll(filepath.Dir(full), 0o755))
		require.NoError(t, os.WriteFile(full, []byte(content), 0o644))
	}
}

func TestWalkFiltersByExtension(t *testing.T) {
	root := t.TempDir()
	writeTree(t, root, map[string]string{
		"a.py":          "pass",
		"b.ts":          "export const x = 1",
		"c.txt":         "ignored",
		"sub/d.py":      "pass",
		"node_modules/e.py": "pass",
	})

	w := NewWalker()
	paths, err := w.Collect(context.Background(), Scope{
		Root:       root,
		Extensions: []string{".py"},
		Exclude:    []string{"**/node_modules/**"},
	})
	require.NoError(t, err)

	var rels []string
	for _, p := range paths {
		rel, _ := filepath.Rel(root, p)
		rels = append(rels, rel)
	}
	assert.ElementsMatch(t, []string{"a.py", filepath.Join("sub", "d.py")}, rels)
}

func TestWalkRejectsNonDirectory(t *testing.T) {
	root := t.TempDir()
	file := filepath.Join(root, "f.py")
	require.NoError(t, os.WriteFile(file, []byte("pass"), 0o644))

	w := NewWalker()
	_, err := w.Walk(context.Background(), Scope{Root: file})
	assert.Error(t, err)
}

func TestWriteFileAtomicReplace(t *testing.T) {
	root := t.TempDir()
	path := filepath.Join(root, "f.py")
	require.NoError(t, os.WriteFile(path, []byte("old"), 0o644))

	require.NoError(t, WriteFile(path, []byte("new content")))

	got, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "new content", string(got))

	// No leftover temp file.
	entries, err := os.ReadDir(root)
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}

func TestWriteFileCreatesNew(t *testing.T) {
	root := t.TempDir()
	path := filepath.Join(root, "new.py")

	require.NoError(t, WriteFile(path, []byte("hello")))

	got, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "hello", string(got))
}
