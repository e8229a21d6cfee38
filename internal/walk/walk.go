// Package walk discovers source files in a directory tree and writes
// manipulated content back to disk atomically. Discovery is a parallel
// worker pool over os.ReadDir, matching candidate paths against
// doublestar glob patterns; writes go through a temp-file-plus-rename
// sequence so a crash mid-write never leaves a half-written file.
package walk

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"runtime"
	"sync"

	"github.com/bmatcuk/doublestar/v4"
)

// Scope bounds a directory walk.
type Scope struct {
	Root       string
	Extensions []string // e.g. ".py", ".ts"; empty means accept any file
	Exclude    []string // doublestar patterns, matched against the path relative to Root
	MaxDepth   int      // 0 means unlimited
}

// Result is one discovered file, or an error encountered reaching it.
type Result struct {
	Path string
	Info fs.FileInfo
	Err  error
}

// Walker performs parallel directory traversal with glob-based filtering.
type Walker struct {
	Workers int
}

// NewWalker returns a Walker with twice the host's CPU count as workers.
func NewWalker() *Walker {
	return &Walker{Workers: runtime.NumCPU() * 2}
}

// Walk streams every file under scope.Root that survives the extension and
// exclude filters. The returned channel is closed once traversal completes
// or ctx is cancelled.
func (w *Walker) Walk(ctx context.Context, scope Scope) (<-chan Result, error) {
	info, err := os.Stat(scope.Root)
	if err != nil {
		return nil, fmt.Errorf("accessing %s: %w", scope.Root, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%s is not a directory", scope.Root)
	}

	workers := w.Workers
	if workers < 1 {
		workers = 1
	}

	paths := make(chan string, 256)
	results := make(chan Result, 256)

	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for {
				select {
				case <-ctx.Done():
					return
				case path, ok := <-paths:
					if !ok {
						return
					}
					stat, err := os.Stat(path)
					select {
					case <-ctx.Done():
						return
					case results <- Result{Path: path, Info: stat, Err: err}:
					}
				}
			}
		}()
	}

	go func() {
		defer close(paths)
		w.scan(ctx, scope.Root, scope, paths, 0)
	}()

	go func() {
		wg.Wait()
		close(results)
	}()

	return results, nil
}

// Collect drains Walk into a plain slice of paths, discarding per-file
// stat errors.
func (w *Walker) Collect(ctx context.Context, scope Scope) ([]string, error) {
	results, err := w.Walk(ctx, scope)
	if err != nil {
		return nil, err
	}
	var paths []string
	for r := range results {
		if r.Err != nil {
			continue
		}
		paths = append(paths, r.Path)
	}
	return paths, nil
}

func (w *Walker) scan(ctx context.Context, dir string, scope Scope, paths chan<- string, depth int) {
	select {
	case <-ctx.Done():
		return
	default:
	}
	if scope.MaxDepth > 0 && depth > scope.MaxDepth {
		return
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return
	}

	for _, entry := range entries {
		select {
		case <-ctx.Done():
			return
		default:
		}

		full := filepath.Join(dir, entry.Name())
		rel, err := filepath.Rel(scope.Root, full)
		if err != nil {
			rel = full
		}

		if w.excluded(rel, scope.Exclude) {
			continue
		}

		if entry.IsDir() {
			w.scan(ctx, full, scope, paths, depth+1)
			continue
		}

		if !entry.Type().IsRegular() {
			continue
		}
		if !w.hasWantedExtension(full, scope.Extensions) {
			continue
		}

		select {
		case <-ctx.Done():
			return
		case paths <- full:
		}
	}
}

func (w *Walker) excluded(relPath string, patterns []string) bool {
	for _, pattern := range patterns {
		if matched, err := doublestar.Match(pattern, relPath); err == nil && matched {
			return true
		}
		if matched, err := doublestar.Match(pattern, filepath.Base(relPath)); err == nil && matched {
			return true
		}
	}
	return false
}

func (w *Walker) hasWantedExtension(path string, extensions []string) bool {
	if len(extensions) == 0 {
		return true
	}
	ext := filepath.Ext(path)
	for _, want := range extensions {
		if ext == want {
			return true
		}
	}
	return false
}

// WriteFile atomically replaces path's content: it writes to a sibling
// temp file in the same directory and renames it over path, so readers
// never observe a partially written file.
func WriteFile(path string, content []byte) error {
	info, err := os.Stat(path)
	mode := os.FileMode(0o644)
	if err == nil {
		mode = info.Mode()
	}

	tempPath := path + ".codehem.tmp"
	f, err := os.OpenFile(tempPath, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, mode)
	if err != nil {
		return fmt.Errorf("creating temp file for %s: %w", path, err)
	}
	if _, err := f.Write(content); err != nil {
		f.Close()
		os.Remove(tempPath)
		return fmt.Errorf("writing temp file for %s: %w", path, err)
	}
	if err := f.Sync(); err != nil {
		f.Close()
		os.Remove(tempPath)
		return fmt.Errorf("syncing temp file for %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		os.Remove(tempPath)
		return fmt.Errorf("closing temp file for %s: %w", path, err)
	}
	if err := os.Rename(tempPath, path); err != nil {
		os.Remove(tempPath)
		return fmt.Errorf("replacing %s: %w", path, err)
	}
	return nil
}
