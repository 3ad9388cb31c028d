// Package format renders collected repository data into the final document.
// Three formats are supported: markdown (the default), JSON, and YAML.
package format

import (
	"fmt"
	"path"
	"strings"
	"time"

	"github.com/itsatony/project2md/config"
	"github.com/itsatony/project2md/stats"
	"github.com/itsatony/project2md/walker"
)

// Input carries everything a formatter needs to render a document.
type Input struct {
	// RootName is the repository directory name shown at the tree root.
	RootName string
	// Files are the collected files, sorted by relative path. Entries with
	// nil Content (binary, oversized) appear in the tree but contribute no
	// content section.
	Files []walker.FileUnit
	// Summary holds the aggregated statistics.
	Summary stats.Summary
	// IncludeStats controls whether the statistics section is emitted.
	IncludeStats bool
	// Signatures marks the document as containing signature views instead of
	// full file contents.
	Signatures bool
	// GeneratedAt is the generation timestamp. The zero value means now.
	GeneratedAt time.Time
}

// Formatter renders an Input into a complete document.
type Formatter interface {
	Render(in Input) (string, error)
}

// New returns the formatter for the configured output format.
func New(outputFormat config.OutputFormat) (Formatter, error) {
	switch outputFormat {
	case config.FormatMarkdown:
		return &markdownFormatter{}, nil
	case config.FormatJSON:
		return &jsonFormatter{}, nil
	case config.FormatYAML:
		return &yamlFormatter{}, nil
	default:
		return nil, fmt.Errorf("no formatter available for format %q", outputFormat)
	}
}

// findReadme returns the content of the top-level README.md, or "".
func findReadme(files []walker.FileUnit) string {
	for _, f := range files {
		if strings.EqualFold(f.RelPath, "readme.md") && f.Content != nil {
			return *f.Content
		}
	}
	return ""
}

// isReadme reports whether a file is a README.md at any level. Such files are
// skipped in the file-contents section since the top-level one is embedded in
// the overview.
func isReadme(relPath string) bool {
	return strings.EqualFold(path.Base(relPath), "readme.md")
}

// timestamp normalizes the generation time, defaulting to the current time.
func timestamp(in Input) time.Time {
	if in.GeneratedAt.IsZero() {
		return time.Now()
	}
	return in.GeneratedAt
}
