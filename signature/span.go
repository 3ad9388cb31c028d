package signature

import "strings"

// countLinesByBraces measures the block starting at start by tracking brace
// depth. The span ends on the line where depth returns to zero after having
// opened. Declaration-only lines with no body (e.g. interface method stubs
// ending in ";") span a single line, as does any line whose block never opens.
// Running off the end of the file returns the number of lines consumed.
func countLinesByBraces(lines []string, start int) int {
	if start < 0 || start >= len(lines) {
		return 1
	}

	first := strings.TrimSpace(lines[start])
	if !strings.Contains(first, "{") && strings.HasSuffix(first, ";") {
		return 1
	}

	depth := 0
	opened := false
	for i := start; i < len(lines); i++ {
		for _, ch := range lines[i] {
			switch ch {
			case '{':
				depth++
				opened = true
			case '}':
				depth--
			}
		}
		if opened && depth <= 0 {
			return i - start + 1
		}
	}

	if !opened {
		return 1
	}
	// Unbalanced braces: the scan stopped at end of file.
	return len(lines) - start
}

// countLinesByIndent measures the block starting at start for
// indentation-delimited languages. A line continues the block if it is blank
// or indented strictly deeper than baseIndent; the block ends before the
// first non-blank line at or below baseIndent, or at end of file. Trailing
// blank lines at true end of file are included in the span.
func countLinesByIndent(lines []string, start int, baseIndent int) int {
	if start < 0 || start >= len(lines) {
		return 1
	}

	end := len(lines)
	for i := start + 1; i < len(lines); i++ {
		if strings.TrimSpace(lines[i]) == "" {
			continue
		}
		if indentWidth(lines[i]) <= baseIndent {
			end = i
			break
		}
	}
	return end - start
}

// indentWidth returns the leading-whitespace width of a line, counting tabs
// and spaces as one column each.
func indentWidth(line string) int {
	return len(line) - len(strings.TrimLeft(line, " \t"))
}
