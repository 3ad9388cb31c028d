package signature

import (
	"regexp"
	"strings"
)

// spanStrategy selects how a declaration's block length is measured.
type spanStrategy int

const (
	spanByBraces spanStrategy = iota
	spanByIndent
)

// languageTable holds the line-shape patterns for one language family.
// Matching is line-local: a pattern decides whether a line is a declaration,
// only the span computation looks ahead.
type languageTable struct {
	strategy spanStrategy
	matchers []*regexp.Regexp
}

// Pattern tables per extension. These are deliberately shallow heuristics:
// declaration outlines, not grammar. Keyed by lowercase extension without dot.
var languageTables = map[string]*languageTable{}

func init() {
	python := &languageTable{
		strategy: spanByIndent,
		matchers: []*regexp.Regexp{
			regexp.MustCompile(`^\s*(async\s+)?def\s+\w+`),
			regexp.MustCompile(`^\s*class\s+\w+`),
		},
	}
	ruby := &languageTable{
		strategy: spanByIndent,
		matchers: []*regexp.Regexp{
			regexp.MustCompile(`^\s*def\s+\w+`),
			regexp.MustCompile(`^\s*(class|module)\s+[A-Z]\w*`),
		},
	}
	javascript := &languageTable{
		strategy: spanByBraces,
		matchers: []*regexp.Regexp{
			regexp.MustCompile(`^\s*(export\s+)?(default\s+)?(async\s+)?function\s*\*?\s*\w*\s*\(`),
			regexp.MustCompile(`^\s*(export\s+)?(default\s+)?(abstract\s+)?class\s+\w+`),
			regexp.MustCompile(`^\s*(export\s+)?(const|let|var)\s+\w+\s*=\s*(async\s+)?\([^)]*\)\s*=>`),
			regexp.MustCompile(`^\s*(export\s+)?(const|let|var)\s+\w+\s*=\s*(async\s+)?\w+\s*=>`),
		},
	}
	typescript := &languageTable{
		strategy: spanByBraces,
		matchers: append(append([]*regexp.Regexp{}, javascript.matchers...),
			regexp.MustCompile(`^\s*(export\s+)?(declare\s+)?interface\s+\w+`),
			regexp.MustCompile(`^\s*(export\s+)?(declare\s+)?type\s+\w+\s*=`),
			regexp.MustCompile(`^\s*(export\s+)?(declare\s+)?enum\s+\w+`),
		),
	}
	golang := &languageTable{
		strategy: spanByBraces,
		matchers: []*regexp.Regexp{
			regexp.MustCompile(`^func\s`),
			regexp.MustCompile(`^type\s+\w+\s+(struct|interface)\b`),
		},
	}
	rust := &languageTable{
		strategy: spanByBraces,
		matchers: []*regexp.Regexp{
			regexp.MustCompile(`^\s*(pub(\([^)]*\))?\s+)?(async\s+)?(unsafe\s+)?fn\s+\w+`),
			regexp.MustCompile(`^\s*(pub(\([^)]*\))?\s+)?(struct|enum|trait|union)\s+\w+`),
			regexp.MustCompile(`^\s*impl\b`),
		},
	}
	java := &languageTable{
		strategy: spanByBraces,
		matchers: []*regexp.Regexp{
			regexp.MustCompile(`^\s*(public\s+|private\s+|protected\s+|static\s+|final\s+|abstract\s+)*(class|interface|enum|record)\s+\w+`),
			regexp.MustCompile(`^\s*(public|private|protected)[\w\s<>\[\],]*\s+\w+\s*\([^;]*$`),
		},
	}
	cfamily := &languageTable{
		strategy: spanByBraces,
		matchers: []*regexp.Regexp{
			regexp.MustCompile(`^\s*(typedef\s+)?(struct|class|enum|union)\s+\w+`),
			regexp.MustCompile(`^[A-Za-z_][\w:<>,\s\*&]*\s+\**[A-Za-z_]\w*\s*\([^;]*$`),
			regexp.MustCompile(`^\s*(static\s+|inline\s+|extern\s+)+[\w\*\s]+\s+\**[A-Za-z_]\w*\s*\([^;]*$`),
		},
	}
	php := &languageTable{
		strategy: spanByBraces,
		matchers: []*regexp.Regexp{
			regexp.MustCompile(`^\s*(public\s+|private\s+|protected\s+|static\s+|abstract\s+|final\s+)*function\s+\w+`),
			regexp.MustCompile(`^\s*(abstract\s+|final\s+)?(class|interface|trait)\s+\w+`),
		},
	}

	for ext, table := range map[string]*languageTable{
		"py": python, "pyw": python,
		"rb": ruby,
		"js": javascript, "jsx": javascript, "mjs": javascript, "cjs": javascript,
		"ts": typescript, "tsx": typescript,
		"go":   golang,
		"rs":   rust,
		"java": java,
		"c": cfamily, "h": cfamily,
		"cpp": cfamily, "cc": cfamily, "cxx": cfamily, "hpp": cfamily, "hxx": cfamily,
		"cs":    java,
		"kt":    java,
		"scala": java,
		"php":   php,
	} {
		languageTables[ext] = table
	}
}

// commentPrefixes mark lines that are never declaration candidates.
var commentPrefixes = []string{"#", "//", "/*", "*", "--", "<!--", "'''", `"""`}

// importPrefixes mark pure import/include lines, which are counted inside
// spans but never matched themselves.
var importPrefixes = []string{
	"import ",
	"from ",
	"#include",
	"package ",
	"using ",
	"require ",
	"require(",
	"use ",
}

// isCandidateLine reports whether a line may be matched against the pattern
// table. Blank, comment-only, and import lines are excluded.
func isCandidateLine(line string) bool {
	trimmed := strings.TrimSpace(line)
	if trimmed == "" {
		return false
	}
	for _, prefix := range commentPrefixes {
		if strings.HasPrefix(trimmed, prefix) {
			return false
		}
	}
	for _, prefix := range importPrefixes {
		if strings.HasPrefix(trimmed, prefix) {
			return false
		}
	}
	return true
}
