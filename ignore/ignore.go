// Package ignore decides which files and directories the walker skips.
// It combines built-in defaults, .gitignore rules, and the include/exclude
// globs from config and CLI.
package ignore

import (
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/bmatcuk/doublestar/v4"
	gitignore "github.com/denormal/go-gitignore"
)

// Matcher filters paths during repository traversal.
// Thread-safe: Reload() takes a write lock, the query methods a read lock.
type Matcher struct {
	mu               sync.RWMutex
	rootDir          string
	gitIgnore        gitignore.GitIgnore
	includePatterns  []string
	excludePatterns  []string
	maxFileSizeBytes int64
}

// MatcherOptions configures the matcher. Include and Exclude are doublestar
// globs matched against root-relative forward-slash paths.
type MatcherOptions struct {
	RootDir          string
	IncludePatterns  []string
	ExcludePatterns  []string
	MaxFileSizeBytes int64
}

// NewMatcher creates a matcher that checks default patterns, .gitignore, and
// the configured include/exclude globs.
func NewMatcher(options MatcherOptions) *Matcher {
	matcher := &Matcher{
		rootDir:          options.RootDir,
		includePatterns:  options.IncludePatterns,
		excludePatterns:  options.ExcludePatterns,
		maxFileSizeBytes: options.MaxFileSizeBytes,
	}

	if matcher.maxFileSizeBytes <= 0 {
		matcher.maxFileSizeBytes = 1024 * 1024 // 1MB default
	}

	matcher.gitIgnore = loadIgnoreFile(filepath.Join(options.RootDir, ".gitignore"), options.RootDir)

	return matcher
}

// ShouldIgnore returns true if the given path should be excluded from the
// generated document. The path may be absolute or relative to the root.
func (m *Matcher) ShouldIgnore(absolutePath string) bool {
	m.mu.RLock()
	defer m.mu.RUnlock()

	relativePath, err := filepath.Rel(m.rootDir, absolutePath)
	if err != nil {
		relativePath = absolutePath
	}
	relativePath = filepath.ToSlash(relativePath)

	if m.matchesDefaultPatterns(relativePath, absolutePath) {
		return true
	}

	isDir := false
	if info, err := os.Stat(absolutePath); err == nil {
		isDir = info.IsDir()
	}

	// .gitignore matching via Relative(), which doesn't require the file to
	// exist on disk.
	if m.gitIgnore != nil {
		match := m.gitIgnore.Relative(relativePath, isDir)
		if match != nil && match.Ignore() {
			return true
		}
	}

	if matchesAnyGlob(m.excludePatterns, relativePath) {
		return true
	}

	return false
}

// ShouldInclude applies the include patterns to a file path. With no include
// patterns configured every file passes; otherwise only matching files do.
func (m *Matcher) ShouldInclude(relativePath string) bool {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if len(m.includePatterns) == 0 {
		return true
	}
	return matchesAnyGlob(m.includePatterns, filepath.ToSlash(relativePath))
}

// ShouldIgnoreDir returns true if a directory should be skipped entirely.
func (m *Matcher) ShouldIgnoreDir(absolutePath string) bool {
	dirName := filepath.Base(absolutePath)

	// Fast check: directories that are never worth documenting.
	switch dirName {
	case ".git", ".svn", ".hg", "node_modules", "__pycache__",
		".idea", ".vscode", ".vs", ".next", ".nuxt",
		".cache", ".parcel-cache", "coverage", ".nyc_output", "htmlcov",
		".venv", "venv":
		return true
	}

	return m.ShouldIgnore(absolutePath)
}

// IsFileTooLarge returns true if the file exceeds the max file size limit.
func (m *Matcher) IsFileTooLarge(fileSize int64) bool {
	return fileSize > m.maxFileSizeBytes
}

// MaxFileSizeBytes returns the configured maximum file size.
func (m *Matcher) MaxFileSizeBytes() int64 {
	return m.maxFileSizeBytes
}

// Reload re-reads the .gitignore file from disk. Used by watch mode when the
// file changes between generations.
func (m *Matcher) Reload() {
	newGitIgnore := loadIgnoreFile(filepath.Join(m.rootDir, ".gitignore"), m.rootDir)

	m.mu.Lock()
	defer m.mu.Unlock()
	m.gitIgnore = newGitIgnore
}

// matchesDefaultPatterns checks the built-in ignore list.
func (m *Matcher) matchesDefaultPatterns(relativePath string, absolutePath string) bool {
	baseName := strings.ToLower(filepath.Base(absolutePath))

	for _, pattern := range DefaultIgnorePatterns {
		// Plain names match any path component.
		if !strings.ContainsAny(pattern, "*?[") {
			if baseName == strings.ToLower(pattern) {
				return true
			}
			for _, part := range strings.Split(relativePath, "/") {
				if strings.EqualFold(part, pattern) {
					return true
				}
			}
			continue
		}

		// Glob patterns match the basename or the whole relative path.
		matched, err := filepath.Match(strings.ToLower(pattern), baseName)
		if err == nil && matched {
			return true
		}
		matched, err = filepath.Match(strings.ToLower(pattern), strings.ToLower(relativePath))
		if err == nil && matched {
			return true
		}
	}
	return false
}

// matchesAnyGlob matches a relative path against doublestar globs, falling
// back to a basename match so bare patterns like "*.lock" work anywhere.
func matchesAnyGlob(patterns []string, relativePath string) bool {
	for _, pattern := range patterns {
		pattern = strings.ReplaceAll(pattern, "\\", "/")
		if matched, err := doublestar.Match(pattern, relativePath); err == nil && matched {
			return true
		}
		if matched, err := doublestar.Match(pattern, filepath.Base(relativePath)); err == nil && matched {
			return true
		}
	}
	return false
}

// loadIgnoreFile reads an ignore file and creates a GitIgnore matcher from it.
// Uses io.Reader so the file handle is closed promptly on Windows.
func loadIgnoreFile(filePath string, baseDir string) gitignore.GitIgnore {
	f, err := os.Open(filePath)
	if err != nil {
		return nil
	}
	defer f.Close()

	return gitignore.New(f, baseDir, nil)
}
