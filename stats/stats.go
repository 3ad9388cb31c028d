// Package stats aggregates repository statistics for the generated document.
package stats

import (
	"fmt"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"github.com/itsatony/project2md/language"
)

// TypeCount is one entry of a count breakdown (file extension or language).
type TypeCount struct {
	Name  string `json:"name" yaml:"name"`
	Count int    `json:"count" yaml:"count"`
}

// FileSize names a file together with its size in bytes.
type FileSize struct {
	Path      string `json:"path" yaml:"path"`
	SizeBytes int64  `json:"size_bytes" yaml:"size_bytes"`
}

// Summary is the aggregated view rendered into the document.
type Summary struct {
	TotalFiles            int         `json:"total_files" yaml:"total_files"`
	TextFiles             int         `json:"text_files" yaml:"text_files"`
	BinaryFiles           int         `json:"binary_files" yaml:"binary_files"`
	TextFilesPercentage   float64     `json:"text_files_percentage" yaml:"text_files_percentage"`
	BinaryFilesPercentage float64     `json:"binary_files_percentage" yaml:"binary_files_percentage"`
	RepoSizeBytes         int64       `json:"repo_size_bytes" yaml:"repo_size_bytes"`
	RepoSize              string      `json:"repo_size" yaml:"repo_size"`
	Branch                string      `json:"branch" yaml:"branch"`
	FileTypes             []TypeCount `json:"file_types" yaml:"file_types"`
	Languages             []TypeCount `json:"languages" yaml:"languages"`
	LargestFiles          []FileSize  `json:"largest_files" yaml:"largest_files"`
}

// fileRecord is what the collector remembers about one file.
type fileRecord struct {
	size int64
	text bool
	ext  string
	lang string
}

// Collector ingests files one at a time and produces a Summary.
// Re-ingesting the same path overwrites the previous record, so processing a
// file twice never double-counts. Safe for concurrent use.
type Collector struct {
	mu    sync.Mutex
	files map[string]fileRecord
}

// NewCollector creates an empty statistics collector.
func NewCollector() *Collector {
	return &Collector{files: make(map[string]fileRecord)}
}

// ProcessFile records one file. hasContent distinguishes text files from
// binary or otherwise unreadable ones.
func (c *Collector) ProcessFile(relPath string, size int64, hasContent bool) {
	ext := strings.ToLower(filepath.Ext(relPath))
	if ext == "" {
		ext = "(none)"
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	c.files[relPath] = fileRecord{
		size: size,
		text: hasContent,
		ext:  ext,
		lang: language.Detect(relPath),
	}
}

// Merge folds another collector's records into this one. Records for paths
// seen by both collectors are taken from the other.
func (c *Collector) Merge(other *Collector) {
	other.mu.Lock()
	records := make(map[string]fileRecord, len(other.files))
	for path, rec := range other.files {
		records[path] = rec
	}
	other.mu.Unlock()

	c.mu.Lock()
	defer c.mu.Unlock()
	for path, rec := range records {
		c.files[path] = rec
	}
}

// largestFilesLimit caps the "largest files" list in the summary.
const largestFilesLimit = 5

// Summarize computes the aggregate view. branch may be empty when the target
// is not a git repository.
func (c *Collector) Summarize(branch string) Summary {
	c.mu.Lock()
	defer c.mu.Unlock()

	summary := Summary{
		TotalFiles: len(c.files),
		Branch:     branch,
	}

	extCounts := make(map[string]int)
	langCounts := make(map[string]int)
	sizes := make([]FileSize, 0, len(c.files))

	for path, rec := range c.files {
		if rec.text {
			summary.TextFiles++
		} else {
			summary.BinaryFiles++
		}
		summary.RepoSizeBytes += rec.size
		extCounts[rec.ext]++
		if rec.lang != "Unknown" {
			langCounts[rec.lang]++
		}
		sizes = append(sizes, FileSize{Path: path, SizeBytes: rec.size})
	}

	if summary.TotalFiles > 0 {
		summary.TextFilesPercentage = roundPercent(summary.TextFiles, summary.TotalFiles)
		summary.BinaryFilesPercentage = roundPercent(summary.BinaryFiles, summary.TotalFiles)
	}
	summary.RepoSize = FormatSize(summary.RepoSizeBytes)
	summary.FileTypes = sortedCounts(extCounts)
	summary.Languages = sortedCounts(langCounts)

	sort.Slice(sizes, func(i, j int) bool {
		if sizes[i].SizeBytes != sizes[j].SizeBytes {
			return sizes[i].SizeBytes > sizes[j].SizeBytes
		}
		return sizes[i].Path < sizes[j].Path
	})
	if len(sizes) > largestFilesLimit {
		sizes = sizes[:largestFilesLimit]
	}
	summary.LargestFiles = sizes

	return summary
}

// sortedCounts converts a count map to a slice sorted by count descending,
// name ascending for equal counts.
func sortedCounts(counts map[string]int) []TypeCount {
	entries := make([]TypeCount, 0, len(counts))
	for name, count := range counts {
		entries = append(entries, TypeCount{Name: name, Count: count})
	}
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].Count != entries[j].Count {
			return entries[i].Count > entries[j].Count
		}
		return entries[i].Name < entries[j].Name
	})
	return entries
}

// roundPercent returns part/total as a percentage with one decimal.
func roundPercent(part, total int) float64 {
	percent := float64(part) / float64(total) * 100
	return float64(int(percent*10+0.5)) / 10
}

// FormatSize converts bytes to a human-readable string.
func FormatSize(bytes int64) string {
	switch {
	case bytes >= 1024*1024*1024:
		return fmt.Sprintf("%.1f GB", float64(bytes)/(1024*1024*1024))
	case bytes >= 1024*1024:
		return fmt.Sprintf("%.1f MB", float64(bytes)/(1024*1024))
	case bytes >= 1024:
		return fmt.Sprintf("%.1f KB", float64(bytes)/1024)
	default:
		return fmt.Sprintf("%d B", bytes)
	}
}
