// Package walker traverses a repository and reads eligible files into memory.
// Filtering (ignore rules, include globs, size and depth limits) happens here,
// so downstream consumers only ever see decoded text or an explicit
// content-absent marker.
package walker

import (
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"unicode/utf8"

	"github.com/itsatony/project2md/ignore"
	"github.com/itsatony/project2md/language"
)

// FileUnit is one file selected for the document. Content is nil when the
// file was skipped (binary, too large, or not valid text); such files still
// count in statistics but never reach the signature engine.
type FileUnit struct {
	RelPath string
	AbsPath string
	Size    int64
	Content *string
}

// Walker collects files under a root directory.
type Walker struct {
	rootDir  string
	matcher  *ignore.Matcher
	maxDepth int
	logger   *slog.Logger
}

// New creates a walker. maxDepth limits directory nesting below the root;
// a maxDepth of 1 descends at most one directory level below the root.
func New(rootDir string, matcher *ignore.Matcher, maxDepth int, logger *slog.Logger) *Walker {
	return &Walker{
		rootDir:  rootDir,
		matcher:  matcher,
		maxDepth: maxDepth,
		logger:   logger,
	}
}

// Collect walks the tree and returns all selected files, sorted by relative
// path for deterministic output. File contents are read with a bounded
// worker pool.
func (w *Walker) Collect() ([]FileUnit, error) {
	var units []FileUnit
	var mu sync.Mutex

	const workerCount = 8
	type readJob struct {
		absPath string
		relPath string
		size    int64
	}
	jobs := make(chan readJob, 100)

	var wg sync.WaitGroup
	for i := 0; i < workerCount; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for job := range jobs {
				unit := FileUnit{
					RelPath: job.relPath,
					AbsPath: job.absPath,
					Size:    job.size,
				}
				if content, ok := w.readText(job.absPath, job.size); ok {
					unit.Content = &content
				}
				mu.Lock()
				units = append(units, unit)
				mu.Unlock()
			}
		}()
	}

	err := filepath.WalkDir(w.rootDir, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			w.logger.Warn("skipping unreadable entry", "path", path, "error", err)
			return nil
		}

		relPath, relErr := filepath.Rel(w.rootDir, path)
		if relErr != nil {
			return nil
		}
		relPath = filepath.ToSlash(relPath)

		if d.IsDir() {
			if path == w.rootDir {
				return nil
			}
			if w.matcher.ShouldIgnoreDir(path) {
				return filepath.SkipDir
			}
			if depthOf(relPath) >= w.maxDepth {
				w.logger.Debug("max depth reached", "path", relPath)
				return filepath.SkipDir
			}
			return nil
		}

		if w.matcher.ShouldIgnore(path) {
			return nil
		}
		if !w.matcher.ShouldInclude(relPath) {
			return nil
		}

		info, infoErr := d.Info()
		if infoErr != nil {
			return nil
		}

		jobs <- readJob{absPath: path, relPath: relPath, size: info.Size()}
		return nil
	})

	close(jobs)
	wg.Wait()

	if err != nil {
		return nil, err
	}

	sort.Slice(units, func(i, j int) bool {
		return units[i].RelPath < units[j].RelPath
	})

	w.logger.Info("collected files", "count", len(units))
	return units, nil
}

// readText reads a file and reports whether its content is usable text.
// Oversized, binary, and non-UTF-8 files yield (_, false).
func (w *Walker) readText(absPath string, size int64) (string, bool) {
	if w.matcher.IsFileTooLarge(size) {
		w.logger.Debug("skipping oversized file", "path", absPath, "size", size)
		return "", false
	}

	data, err := os.ReadFile(absPath)
	if err != nil {
		w.logger.Warn("failed to read file", "path", absPath, "error", err)
		return "", false
	}

	if language.IsBinaryContent(data) {
		return "", false
	}
	if !utf8.Valid(data) {
		w.logger.Debug("skipping non-UTF-8 file", "path", absPath)
		return "", false
	}

	return string(data), true
}

// depthOf returns the nesting depth of a relative forward-slash path.
// Entries directly under the root have depth 0.
func depthOf(relPath string) int {
	return strings.Count(relPath, "/")
}
