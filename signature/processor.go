// Package signature condenses source files into structural outlines.
//
// In signatures mode the generated document replaces full file bodies with
// declaration lines annotated by the number of source lines they span, e.g.
// "func Walk(root string) error { [lines:24]". The engine is heuristic:
// line-anchored pattern checks plus brace or indentation counting, never a
// real parser. It is a pure function of (extension, content) with no I/O and
// no shared state, so callers may process files in parallel freely.
package signature

import (
	"fmt"
	"regexp"
	"strings"
)

// Processor converts file content into its condensed signature view.
// The zero value is ready to use.
type Processor struct{}

// NewProcessor returns a signature processor.
func NewProcessor() *Processor {
	return &Processor{}
}

// ProcessFile returns the condensed representation of content for the file at
// path. It is total: it always returns a string and never fails. Outcomes:
//
//   - empty content returns ""
//   - line-count-only formats return "[lines:N]"
//   - markdown returns one "{header} [lines:{span}]" entry per ATX header,
//     or "" when the document has no headers
//   - code returns one "{declaration} [lines:{span}]" entry per match, or the
//     literal "empty" when the file has no structural content at all
//   - unknown formats are returned unchanged
//
// Any internal fault is recovered and the original content returned, so one
// odd file can never abort a whole run.
func (p *Processor) ProcessFile(path string, content string) (result string) {
	defer func() {
		if r := recover(); r != nil {
			result = content
		}
	}()

	if content == "" {
		return ""
	}

	switch Classify(path) {
	case CategoryLineCountOnly:
		return fmt.Sprintf("[lines:%d]", len(strings.Split(content, "\n")))
	case CategoryMarkdown:
		return processMarkdown(strings.Split(content, "\n"))
	case CategoryCode:
		return processCode(extensionOf(path), strings.Split(content, "\n"))
	default:
		return content
	}
}

// processMarkdown emits one entry per ATX header, in document order. The span
// counts the section's content lines after the header, up to the next header
// at any level or end of file, and is never reported below 1.
func processMarkdown(lines []string) string {
	var entries []string
	for i, line := range lines {
		if !isATXHeader(line) {
			continue
		}
		end := len(lines)
		for j := i + 1; j < len(lines); j++ {
			if isATXHeader(lines[j]) {
				end = j
				break
			}
		}
		span := end - i - 1
		if span < 1 {
			span = 1
		}
		entries = append(entries, fmt.Sprintf("%s [lines:%d]", line, span))
	}
	if len(entries) == 0 {
		return ""
	}
	return strings.Join(entries, "\n")
}

// isATXHeader reports whether a line is an ATX-style markdown heading: one or
// more '#' characters followed by a space and text.
func isATXHeader(line string) bool {
	if !strings.HasPrefix(line, "#") {
		return false
	}
	rest := strings.TrimLeft(line, "#")
	return strings.HasPrefix(rest, " ") && strings.TrimSpace(rest) != ""
}

// processCode scans for declaration lines using the language's pattern table
// and annotates each with its block span. A file with content but no matches
// (imports, comments, whitespace only) yields the literal "empty".
func processCode(ext string, lines []string) string {
	table := languageTables[ext]
	if table == nil {
		return strings.Join(lines, "\n")
	}

	var entries []string
	for i, line := range lines {
		if !isCandidateLine(line) {
			continue
		}
		if !matchesAny(table.matchers, line) {
			continue
		}

		var span int
		if table.strategy == spanByIndent {
			span = countLinesByIndent(lines, i, indentWidth(line))
		} else {
			span = countLinesByBraces(lines, i)
		}
		entries = append(entries, fmt.Sprintf("%s [lines:%d]", line, span))
	}

	if len(entries) == 0 {
		return "empty"
	}
	return strings.Join(entries, "\n")
}

func matchesAny(matchers []*regexp.Regexp, line string) bool {
	for _, m := range matchers {
		if m.MatchString(line) {
			return true
		}
	}
	return false
}
