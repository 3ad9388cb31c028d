package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/itsatony/project2md/config"
	"github.com/itsatony/project2md/ignore"
	"github.com/itsatony/project2md/pipeline"
	"github.com/itsatony/project2md/watcher"
)

// watchLoop regenerates the document after each debounced batch of changes
// until interrupted.
func watchLoop(ctx context.Context, cfg *config.Config, logger *slog.Logger) error {
	matcher := ignore.NewMatcher(ignore.MatcherOptions{
		RootDir:          cfg.TargetDir,
		IncludePatterns:  cfg.Include.All(),
		ExcludePatterns:  cfg.Exclude.All(),
		MaxFileSizeBytes: cfg.General.MaxFileSizeBytes,
	})

	outputPath := cfg.OutputFile
	if !filepath.IsAbs(outputPath) {
		outputPath = filepath.Join(cfg.TargetDir, outputPath)
	}

	w, err := watcher.New(cfg.TargetDir, outputPath, matcher, logger)
	if err != nil {
		return fmt.Errorf("starting watcher: %w", err)
	}
	defer w.Close()
	go w.Start()

	interrupt := make(chan os.Signal, 1)
	signal.Notify(interrupt, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(interrupt)

	fmt.Printf("Watching %s for changes (Ctrl-C to stop)\n", cfg.TargetDir)

	for {
		select {
		case changes := <-w.Changes():
			logger.Info("changes detected", "paths", len(changes))
			// .gitignore edits take effect on the next run.
			matcher.Reload()
			result, err := pipeline.RunToFile(ctx, cfg, logger)
			if err != nil {
				logger.Error("regeneration failed", "error", err)
				continue
			}
			fmt.Printf("Regenerated %s (%d files)\n", cfg.OutputFile, result.FileCount)

		case <-interrupt:
			logger.Info("watch mode stopped")
			return nil

		case <-ctx.Done():
			return ctx.Err()
		}
	}
}
