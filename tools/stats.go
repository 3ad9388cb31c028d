package tools

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/itsatony/project2md/pipeline"
	"github.com/itsatony/project2md/stats"
)

// StatsArgs defines the input parameters for the project2md_stats tool.
type StatsArgs struct {
	Root    string   `json:"root" jsonschema:"Absolute path of the directory to analyze"`
	Include []string `json:"include,omitempty" jsonschema:"Glob patterns; when set only matching files are counted"`
	Exclude []string `json:"exclude,omitempty" jsonschema:"Glob patterns for files to exclude"`
}

// StatsHandler holds the dependencies for the stats tool.
type StatsHandler struct {
	Logger *slog.Logger
}

// Handle processes a project2md_stats request.
func (h *StatsHandler) Handle(ctx context.Context, req *mcp.CallToolRequest, args StatsArgs) (*mcp.CallToolResult, any, error) {
	start := time.Now()

	cfg, errResult := buildConfig(args.Root, "", args.Include, args.Exclude, h.Logger)
	if errResult != nil {
		return errResult, nil, nil
	}

	result, err := pipeline.Run(ctx, cfg, h.Logger)
	if err != nil {
		h.Logger.Error("project2md_stats failed", "root", args.Root, "error", err)
		return errorResult(fmt.Sprintf("Analysis error: %v", err)), nil, nil
	}

	h.Logger.Info("project2md_stats",
		"root", args.Root,
		"files", result.FileCount,
		"elapsed", time.Since(start),
	)

	return &mcp.CallToolResult{
		Content: []mcp.Content{&mcp.TextContent{Text: formatSummary(args.Root, result.Summary)}},
	}, nil, nil
}

// formatSummary renders the statistics as plain text for tool output.
func formatSummary(root string, s stats.Summary) string {
	var builder strings.Builder

	builder.WriteString("=== project2md Statistics ===\n\n")
	builder.WriteString(fmt.Sprintf("Root directory: %s\n", root))
	builder.WriteString(fmt.Sprintf("Total files: %d\n", s.TotalFiles))
	builder.WriteString(fmt.Sprintf("Text files: %d (%.1f%%)\n", s.TextFiles, s.TextFilesPercentage))
	builder.WriteString(fmt.Sprintf("Binary files: %d (%.1f%%)\n", s.BinaryFiles, s.BinaryFilesPercentage))
	builder.WriteString(fmt.Sprintf("Repository size: %s\n", s.RepoSize))
	if s.Branch != "" {
		builder.WriteString(fmt.Sprintf("Current branch: %s\n", s.Branch))
	}

	if len(s.Languages) > 0 {
		builder.WriteString("\nLanguages:\n")
		for _, entry := range s.Languages {
			builder.WriteString(fmt.Sprintf("  %-20s %d files\n", entry.Name, entry.Count))
		}
	}

	if len(s.LargestFiles) > 0 {
		builder.WriteString("\nLargest files:\n")
		for _, f := range s.LargestFiles {
			builder.WriteString(fmt.Sprintf("  %s (%s)\n", f.Path, stats.FormatSize(f.SizeBytes)))
		}
	}

	return builder.String()
}
