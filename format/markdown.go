package format

import (
	"fmt"
	"strings"

	"github.com/itsatony/project2md/language"
	"github.com/itsatony/project2md/stats"
)

// markdownFormatter renders the default human-readable document.
type markdownFormatter struct{}

func (m *markdownFormatter) Render(in Input) (string, error) {
	var sections []string

	sections = append(sections, "# Project Overview\n")

	if in.Signatures {
		sections = append(sections, "> Signature mode: code files are reduced to declaration signatures with line counts.\n")
	}

	if readme := findReadme(in.Files); readme != "" {
		sections = append(sections, fmt.Sprintf("## README.md Content\n\n````markdown\n%s\n````\n", readme))
	}

	tree := renderTree(in.RootName, in.Files)
	sections = append(sections, fmt.Sprintf("## Project Structure\n\n```tree\n%s\n```\n", tree))

	if in.IncludeStats {
		sections = append(sections, formatStats(in))
	}

	sections = append(sections, "## File Contents\n")
	for _, f := range in.Files {
		if f.Content == nil || isReadme(f.RelPath) {
			continue
		}
		sections = append(sections, fileSection(f.RelPath, *f.Content))
	}

	sections = append(sections, fmt.Sprintf("---\nGenerated by project2md on %s\n",
		timestamp(in).Format("2006-01-02 15:04:05")))

	return strings.Join(sections, "\n"), nil
}

// fileSection renders one file as a fenced code block. Markdown content gets a
// four-backtick fence so embedded fences survive.
func fileSection(relPath, content string) string {
	tag := language.FenceTag(relPath)
	fence := "```"
	if tag == "markdown" {
		fence = "````"
	}
	return fmt.Sprintf("### filepath %s\n\n%s%s\n%s\n%s\n", relPath, fence, tag, content, fence)
}

// formatStats renders the statistics section.
func formatStats(in Input) string {
	var b strings.Builder
	s := in.Summary

	b.WriteString("## Project Statistics\n\n")
	fmt.Fprintf(&b, "- Total Files: %d\n", s.TotalFiles)
	fmt.Fprintf(&b, "- Text Files: %d (%.1f%%)\n", s.TextFiles, s.TextFilesPercentage)
	fmt.Fprintf(&b, "- Binary Files: %d (%.1f%%)\n", s.BinaryFiles, s.BinaryFilesPercentage)
	fmt.Fprintf(&b, "- Repository Size: %s\n", s.RepoSize)
	if s.Branch != "" {
		fmt.Fprintf(&b, "- Current Branch: %s\n", s.Branch)
	}

	if len(s.FileTypes) > 0 {
		b.WriteString("- Most Common File Types:\n")
		for _, ft := range s.FileTypes {
			fmt.Fprintf(&b, "  - %s: %d\n", ft.Name, ft.Count)
		}
	}
	if len(s.Languages) > 0 {
		b.WriteString("- Languages:\n")
		for _, lang := range s.Languages {
			fmt.Fprintf(&b, "  - %s: %d\n", lang.Name, lang.Count)
		}
	}
	if len(s.LargestFiles) > 0 {
		b.WriteString("- Largest Files:\n")
		for _, lf := range s.LargestFiles {
			fmt.Fprintf(&b, "  - %s (%s)\n", lf.Path, stats.FormatSize(lf.SizeBytes))
		}
	}

	return b.String()
}
