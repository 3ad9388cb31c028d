// Package config loads, validates, and merges project2md configuration from
// the .project2md.yml file and CLI flags. CLI values win over file values.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"gopkg.in/yaml.v3"
)

// DefaultFileName is the config file looked up in the target directory when
// no --config flag is given.
const DefaultFileName = ".project2md.yml"

// ErrInvalid marks configuration validation failures.
var ErrInvalid = errors.New("invalid configuration")

// OutputFormat selects the document serialization.
type OutputFormat string

const (
	FormatMarkdown OutputFormat = "markdown"
	FormatJSON     OutputFormat = "json"
	FormatYAML     OutputFormat = "yaml"
)

// General holds traversal and size limits.
type General struct {
	MaxDepth          int    `yaml:"max_depth"`
	MaxFileSize       string `yaml:"max_file_size"`
	StatsInOutput     bool   `yaml:"stats_in_output"`
	CollapseEmptyDirs bool   `yaml:"collapse_empty_dirs"`

	// MaxFileSizeBytes is derived from MaxFileSize during validation.
	MaxFileSizeBytes int64 `yaml:"-"`
}

// Output holds document generation options.
type Output struct {
	Format OutputFormat `yaml:"format"`
	Stats  bool         `yaml:"stats"`
}

// PathPatterns holds glob patterns for files and directories.
type PathPatterns struct {
	Files []string `yaml:"files"`
	Dirs  []string `yaml:"dirs"`
}

// All returns the file and directory patterns as one slice.
func (p PathPatterns) All() []string {
	return append(append([]string{}, p.Files...), p.Dirs...)
}

// Config is the merged tool configuration.
type Config struct {
	General General      `yaml:"general"`
	Output  Output       `yaml:"output"`
	Include PathPatterns `yaml:"include"`
	Exclude PathPatterns `yaml:"exclude"`

	// Runtime settings supplied by the CLI, never persisted.
	RepoURL        string `yaml:"-"`
	Branch         string `yaml:"-"`
	TargetDir      string `yaml:"-"`
	OutputFile     string `yaml:"-"`
	SignaturesMode bool   `yaml:"-"`
	Force          bool   `yaml:"-"`
}

// Default returns the configuration used when no file and no flags are given.
func Default() *Config {
	return &Config{
		General: General{
			MaxDepth:          10,
			MaxFileSize:       "1MB",
			StatsInOutput:     true,
			CollapseEmptyDirs: true,
		},
		Output: Output{
			Format: FormatMarkdown,
			Stats:  true,
		},
		TargetDir:  ".",
		OutputFile: "project_summary.md",
	}
}

// Load reads a YAML config file and overlays it on the defaults.
// A missing file is not an error: defaults are returned.
func Load(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("reading config %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config %s: %w", path, err)
	}
	return cfg, nil
}

// CLIArgs carries flag values to merge into a loaded config.
// Zero values mean "flag not set" and leave the config untouched.
type CLIArgs struct {
	RepoURL    string
	Branch     string
	TargetDir  string
	OutputFile string
	Format     string
	Include    []string
	Exclude    []string
	Signatures bool
	Force      bool
}

// MergeCLI applies CLI arguments on top of the file configuration.
func (c *Config) MergeCLI(args CLIArgs) {
	if args.RepoURL != "" {
		c.RepoURL = args.RepoURL
	}
	if args.Branch != "" {
		c.Branch = args.Branch
	}
	if args.TargetDir != "" {
		c.TargetDir = args.TargetDir
	}
	if args.OutputFile != "" {
		c.OutputFile = args.OutputFile
	}
	if args.Format != "" {
		c.Output.Format = OutputFormat(args.Format)
	}
	c.Include.Files = append(c.Include.Files, args.Include...)
	c.Exclude.Files = append(c.Exclude.Files, args.Exclude...)
	if args.Signatures {
		c.SignaturesMode = true
	}
	if args.Force {
		c.Force = true
	}
}

// Validate checks limits, the output format, and every glob pattern.
// It also derives MaxFileSizeBytes from the human-readable size.
func (c *Config) Validate() error {
	if c.General.MaxDepth < 1 {
		return fmt.Errorf("%w: max_depth must be greater than 0", ErrInvalid)
	}

	sizeBytes, err := ParseSize(c.General.MaxFileSize)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	if sizeBytes < 1 {
		return fmt.Errorf("%w: max_file_size must be greater than 0", ErrInvalid)
	}
	c.General.MaxFileSizeBytes = sizeBytes

	switch c.Output.Format {
	case FormatMarkdown, FormatJSON, FormatYAML:
	default:
		return fmt.Errorf("%w: unsupported output format %q", ErrInvalid, c.Output.Format)
	}

	for _, group := range []struct {
		name     string
		patterns []string
	}{
		{"include.files", c.Include.Files},
		{"include.dirs", c.Include.Dirs},
		{"exclude.files", c.Exclude.Files},
		{"exclude.dirs", c.Exclude.Dirs},
	} {
		for _, pattern := range group.patterns {
			if !doublestar.ValidatePattern(pattern) {
				return fmt.Errorf("%w: bad glob pattern %q in %s", ErrInvalid, pattern, group.name)
			}
		}
	}

	return nil
}

// sizePattern matches "<number><unit>" with optional whitespace, e.g. "1MB".
var sizePattern = regexp.MustCompile(`^(\d+)\s*([A-Za-z]+)$`)

// sizeUnits maps size suffixes to byte multipliers.
var sizeUnits = map[string]int64{
	"B":  1,
	"KB": 1024,
	"MB": 1024 * 1024,
	"GB": 1024 * 1024 * 1024,
}

// ParseSize converts a human-readable size string such as "1MB" to bytes.
func ParseSize(size string) (int64, error) {
	match := sizePattern.FindStringSubmatch(strings.TrimSpace(size))
	if match == nil {
		return 0, fmt.Errorf("invalid size format: %q", size)
	}

	unit, ok := sizeUnits[strings.ToUpper(match[2])]
	if !ok {
		return 0, fmt.Errorf("invalid size unit: %q", match[2])
	}

	number, err := strconv.ParseInt(match[1], 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid size number: %q", match[1])
	}
	return number * unit, nil
}

// Save writes the persistent part of the configuration as YAML.
func (c *Config) Save(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config %s: %w", path, err)
	}
	return nil
}

// WriteDefault creates a default config file at path if none exists yet.
// Returns true when a file was created.
func WriteDefault(path string) (bool, error) {
	if _, err := os.Stat(path); err == nil {
		return false, nil
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return false, fmt.Errorf("creating config directory: %w", err)
	}
	if err := Default().Save(path); err != nil {
		return false, err
	}
	return true, nil
}
