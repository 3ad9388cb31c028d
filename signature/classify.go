package signature

import (
	"path/filepath"
	"strings"
)

// Category describes how a file's content is condensed in signatures mode.
type Category int

const (
	// CategoryPassthrough leaves content untouched (unknown formats).
	CategoryPassthrough Category = iota
	// CategoryLineCountOnly replaces content with its total line count (config/data formats).
	CategoryLineCountOnly
	// CategoryMarkdown reduces content to its ATX headers with per-section line counts.
	CategoryMarkdown
	// CategoryCode reduces content to declaration lines with per-block line counts.
	CategoryCode
)

// lineCountOnlyExtensions are flat data/text formats whose structure is not
// worth outlining. Their signature is just the total line count.
var lineCountOnlyExtensions = map[string]bool{
	"yml":        true,
	"yaml":       true,
	"json":       true,
	"toml":       true,
	"ini":        true,
	"cfg":        true,
	"conf":       true,
	"config":     true,
	"txt":        true,
	"log":        true,
	"csv":        true,
	"xml":        true,
	"properties": true,
}

// markdownExtensions map to CategoryMarkdown.
var markdownExtensions = map[string]bool{
	"md":       true,
	"markdown": true,
}

// Classify maps a file path to its signature processing category based on the
// lowercase extension without the leading dot. Unknown extensions (and files
// without one) are passed through unmodified.
func Classify(path string) Category {
	ext := extensionOf(path)
	if ext == "" {
		return CategoryPassthrough
	}
	if lineCountOnlyExtensions[ext] {
		return CategoryLineCountOnly
	}
	if markdownExtensions[ext] {
		return CategoryMarkdown
	}
	if _, ok := languageTables[ext]; ok {
		return CategoryCode
	}
	return CategoryPassthrough
}

// extensionOf returns the lowercase extension of a path without the dot.
func extensionOf(path string) string {
	return strings.ToLower(strings.TrimPrefix(filepath.Ext(path), "."))
}
