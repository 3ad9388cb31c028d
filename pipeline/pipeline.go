// Package pipeline runs the full document generation flow: resolve the source
// (clone or local directory), walk and read files, optionally reduce code to
// signatures, collect statistics, and render the configured output format.
// Both the CLI and the MCP tools drive this package.
package pipeline

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/itsatony/project2md/config"
	"github.com/itsatony/project2md/format"
	"github.com/itsatony/project2md/gitrepo"
	"github.com/itsatony/project2md/ignore"
	"github.com/itsatony/project2md/signature"
	"github.com/itsatony/project2md/stats"
	"github.com/itsatony/project2md/walker"
)

// Result is the outcome of one generation run.
type Result struct {
	// Document is the rendered output.
	Document string
	// Summary holds the collected statistics.
	Summary stats.Summary
	// RootDir is the directory that was processed (clone target or local).
	RootDir string
	// FileCount is the number of files included in the document.
	FileCount int
}

// Run executes the pipeline for the given configuration and returns the
// rendered document. The configuration must already be validated.
func Run(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*Result, error) {
	rootDir, branch, err := resolveSource(ctx, cfg, logger)
	if err != nil {
		return nil, err
	}

	// The generated document must never feed back into itself on a re-run.
	excludes := cfg.Exclude.All()
	if cfg.OutputFile != "" {
		excludes = append(excludes, filepath.Base(cfg.OutputFile))
	}

	matcher := ignore.NewMatcher(ignore.MatcherOptions{
		RootDir:          rootDir,
		IncludePatterns:  cfg.Include.All(),
		ExcludePatterns:  excludes,
		MaxFileSizeBytes: cfg.General.MaxFileSizeBytes,
	})

	files, err := walker.New(rootDir, matcher, cfg.General.MaxDepth, logger).Collect()
	if err != nil {
		return nil, fmt.Errorf("walking %s: %w", rootDir, err)
	}

	collector := stats.NewCollector()
	for _, f := range files {
		collector.ProcessFile(f.RelPath, f.Size, f.Content != nil)
	}

	if cfg.SignaturesMode {
		applySignatures(files, logger)
	}

	summary := collector.Summarize(branch)

	formatter, err := format.New(cfg.Output.Format)
	if err != nil {
		return nil, err
	}

	document, err := formatter.Render(format.Input{
		RootName:     rootName(rootDir),
		Files:        files,
		Summary:      summary,
		IncludeStats: cfg.Output.Stats,
		Signatures:   cfg.SignaturesMode,
	})
	if err != nil {
		return nil, fmt.Errorf("rendering document: %w", err)
	}

	return &Result{
		Document:  document,
		Summary:   summary,
		RootDir:   rootDir,
		FileCount: len(files),
	}, nil
}

// RunToFile runs the pipeline and writes the document to cfg.OutputFile,
// resolved against the processed root directory when relative.
func RunToFile(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*Result, error) {
	result, err := Run(ctx, cfg, logger)
	if err != nil {
		return nil, err
	}

	outputPath := cfg.OutputFile
	if !filepath.IsAbs(outputPath) {
		outputPath = filepath.Join(result.RootDir, outputPath)
	}
	if err := os.MkdirAll(filepath.Dir(outputPath), 0o755); err != nil {
		return nil, fmt.Errorf("creating output directory: %w", err)
	}
	if err := os.WriteFile(outputPath, []byte(result.Document), 0o644); err != nil {
		return nil, fmt.Errorf("writing %s: %w", outputPath, err)
	}

	logger.Info("document written", "path", outputPath, "files", result.FileCount)
	return result, nil
}

// resolveSource determines the directory to process. With a repo URL the
// repository is cloned first; otherwise the target must be an existing
// directory and, unless forced, a git repository.
func resolveSource(ctx context.Context, cfg *config.Config, logger *slog.Logger) (rootDir, branch string, err error) {
	if cfg.RepoURL != "" {
		branch, err = gitrepo.Clone(ctx, gitrepo.CloneOptions{
			URL:       cfg.RepoURL,
			Branch:    cfg.Branch,
			TargetDir: cfg.TargetDir,
			Force:     cfg.Force,
		}, logger)
		if err != nil {
			return "", "", err
		}
		return cfg.TargetDir, branch, nil
	}

	rootDir = cfg.TargetDir
	if rootDir == "" {
		rootDir = "."
	}
	info, statErr := os.Stat(rootDir)
	if statErr != nil || !info.IsDir() {
		return "", "", fmt.Errorf("target is not a directory: %s", rootDir)
	}

	if !gitrepo.IsRepository(rootDir) {
		if !cfg.Force {
			return "", "", fmt.Errorf("%s is not a git repository (use force to process anyway)", rootDir)
		}
		logger.Warn("processing non-git directory", "target", rootDir)
		return rootDir, "", nil
	}

	return rootDir, gitrepo.CurrentBranch(rootDir), nil
}

// applySignatures replaces each readable file's content with its signature
// view in place.
func applySignatures(files []walker.FileUnit, logger *slog.Logger) {
	processor := signature.NewProcessor()
	for i := range files {
		if files[i].Content == nil {
			continue
		}
		reduced := processor.ProcessFile(files[i].RelPath, *files[i].Content)
		files[i].Content = &reduced
	}
	logger.Debug("signature mode applied", "files", len(files))
}

// rootName returns the display name of the processed directory.
func rootName(rootDir string) string {
	abs, err := filepath.Abs(rootDir)
	if err != nil {
		return filepath.Base(rootDir)
	}
	return filepath.Base(abs)
}
