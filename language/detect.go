// Package language maps files to languages, markdown fence tags, and
// text-vs-binary decisions for the document generator.
package language

import (
	"path/filepath"
	"strings"
)

// info describes one language: its display name (used in statistics) and the
// tag placed on markdown code fences for syntax highlighting. An empty fence
// tag produces a plain fence.
type info struct {
	Name     string
	FenceTag string
}

// byExtension maps file extensions (without dot) to language info.
var byExtension = map[string]info{
	// Go
	"go": {"Go", "go"},
	// JavaScript / TypeScript
	"js": {"JavaScript", "javascript"}, "jsx": {"JavaScript", "jsx"},
	"mjs": {"JavaScript", "javascript"}, "cjs": {"JavaScript", "javascript"},
	"ts": {"TypeScript", "typescript"}, "tsx": {"TypeScript", "tsx"},
	// Python
	"py": {"Python", "python"}, "pyi": {"Python", "python"}, "pyw": {"Python", "python"},
	// Rust
	"rs": {"Rust", "rust"},
	// Java / Kotlin
	"java": {"Java", "java"}, "kt": {"Kotlin", "kotlin"}, "kts": {"Kotlin", "kotlin"},
	// C / C++
	"c": {"C", "c"}, "h": {"C", "c"},
	"cpp": {"C++", "cpp"}, "cc": {"C++", "cpp"}, "cxx": {"C++", "cpp"},
	"hpp": {"C++", "cpp"}, "hxx": {"C++", "cpp"},
	// C#
	"cs": {"C#", "csharp"},
	// Ruby
	"rb": {"Ruby", "ruby"}, "erb": {"Ruby", "erb"},
	// PHP
	"php": {"PHP", "php"},
	// Swift / Dart / Scala
	"swift": {"Swift", "swift"}, "dart": {"Dart", "dart"}, "scala": {"Scala", "scala"},
	// Shell
	"sh": {"Shell", "bash"}, "bash": {"Shell", "bash"}, "zsh": {"Shell", "bash"},
	"fish": {"Shell", "fish"}, "ps1": {"PowerShell", "powershell"},
	// Web
	"html": {"HTML", "html"}, "htm": {"HTML", "html"},
	"css": {"CSS", "css"}, "scss": {"SCSS", "scss"}, "sass": {"Sass", "sass"}, "less": {"Less", "less"},
	// Data / Config
	"json": {"JSON", "json"}, "jsonc": {"JSON", "json"},
	"yaml": {"YAML", "yaml"}, "yml": {"YAML", "yaml"},
	"toml": {"TOML", "toml"},
	"xml":  {"XML", "xml"},
	"ini":  {"INI", "ini"}, "cfg": {"INI", "ini"}, "conf": {"INI", ""},
	"env": {"Env", ""}, "properties": {"Properties", "properties"},
	// Markup
	"md": {"Markdown", "markdown"}, "markdown": {"Markdown", "markdown"},
	"rst": {"reStructuredText", "rst"}, "tex": {"LaTeX", "latex"},
	// SQL / GraphQL / Protobuf
	"sql": {"SQL", "sql"}, "graphql": {"GraphQL", "graphql"}, "gql": {"GraphQL", "graphql"},
	"proto": {"Protobuf", "protobuf"},
	// Infra
	"tf": {"Terraform", "hcl"}, "tfvars": {"Terraform", "hcl"},
	"dockerfile": {"Dockerfile", "dockerfile"},
	// Misc scripting
	"lua": {"Lua", "lua"}, "r": {"R", "r"},
	"ex": {"Elixir", "elixir"}, "exs": {"Elixir", "elixir"},
	"erl": {"Erlang", "erlang"}, "hs": {"Haskell", "haskell"}, "zig": {"Zig", "zig"},
	"vue": {"Vue", "vue"}, "svelte": {"Svelte", "svelte"},
	// Plain text
	"txt": {"Text", ""}, "log": {"Text", ""}, "csv": {"CSV", "csv"},
	"bat": {"Batch", "batch"}, "cmd": {"Batch", "batch"},
}

// byFilename maps extension-less filenames to language info.
var byFilename = map[string]info{
	"makefile":       {"Makefile", "makefile"},
	"gnumakefile":    {"Makefile", "makefile"},
	"dockerfile":     {"Dockerfile", "dockerfile"},
	"cmakelists.txt": {"CMake", "cmake"},
	"gemfile":        {"Ruby", "ruby"},
	"rakefile":       {"Ruby", "ruby"},
	".gitignore":     {"Git Config", ""},
	".gitattributes": {"Git Config", ""},
	".env":           {"Env", ""},
}

// Detect returns the language name for a file path based on its extension,
// falling back to well-known filenames (Makefile, Dockerfile). Returns
// "Unknown" if nothing matches.
func Detect(filePath string) string {
	return lookup(filePath).Name
}

// FenceTag returns the markdown code-fence tag for syntax highlighting of the
// given file, or "" when no tag applies.
func FenceTag(filePath string) string {
	return lookup(filePath).FenceTag
}

func lookup(filePath string) info {
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(filePath), "."))
	if ext != "" {
		if li, ok := byExtension[ext]; ok {
			return li
		}
		return info{Name: "Unknown"}
	}

	base := strings.ToLower(filepath.Base(filePath))
	if li, ok := byFilename[base]; ok {
		return li
	}
	return info{Name: "Unknown"}
}
