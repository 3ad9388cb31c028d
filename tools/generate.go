package tools

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/itsatony/project2md/config"
	"github.com/itsatony/project2md/pipeline"
)

// GenerateArgs defines the input parameters for the project2md_generate tool.
type GenerateArgs struct {
	Root       string   `json:"root" jsonschema:"Absolute path of the directory to document"`
	Format     string   `json:"format,omitempty" jsonschema:"Output format: markdown (default), json, or yaml"`
	Signatures bool     `json:"signatures,omitempty" jsonschema:"If true reduce code files to declaration signatures with line counts"`
	Include    []string `json:"include,omitempty" jsonschema:"Glob patterns; when set only matching files are included"`
	Exclude    []string `json:"exclude,omitempty" jsonschema:"Glob patterns for files to exclude"`
}

// GenerateHandler holds the dependencies for the generate tool.
type GenerateHandler struct {
	Logger *slog.Logger
}

// Handle processes a project2md_generate request. The rendered document is
// returned as tool output instead of being written to disk.
func (h *GenerateHandler) Handle(ctx context.Context, req *mcp.CallToolRequest, args GenerateArgs) (*mcp.CallToolResult, any, error) {
	start := time.Now()

	cfg, errResult := buildConfig(args.Root, args.Format, args.Include, args.Exclude, h.Logger)
	if errResult != nil {
		return errResult, nil, nil
	}
	cfg.SignaturesMode = args.Signatures

	result, err := pipeline.Run(ctx, cfg, h.Logger)
	if err != nil {
		h.Logger.Error("project2md_generate failed", "root", args.Root, "error", err)
		return errorResult(fmt.Sprintf("Generation error: %v", err)), nil, nil
	}

	h.Logger.Info("project2md_generate",
		"root", args.Root,
		"format", cfg.Output.Format,
		"files", result.FileCount,
		"elapsed", time.Since(start),
	)

	return &mcp.CallToolResult{
		Content: []mcp.Content{&mcp.TextContent{Text: result.Document}},
	}, nil, nil
}

// buildConfig loads the per-project config file from the root directory and
// overlays the tool arguments. Returns a ready error result on failure.
func buildConfig(root, outputFormat string, include, exclude []string, logger *slog.Logger) (*config.Config, *mcp.CallToolResult) {
	if root == "" {
		logger.Warn("tool called with empty root")
		return nil, errorResult("Error: root parameter is required")
	}

	cfg, err := config.Load(filepath.Join(root, config.DefaultFileName))
	if err != nil {
		return nil, errorResult(fmt.Sprintf("Config error: %v", err))
	}

	cfg.MergeCLI(config.CLIArgs{
		TargetDir: root,
		Format:    outputFormat,
		Include:   include,
		Exclude:   exclude,
		// MCP callers point at arbitrary directories; git is not required.
		Force: true,
	})
	if err := cfg.Validate(); err != nil {
		return nil, errorResult(fmt.Sprintf("Config error: %v", err))
	}

	return cfg, nil
}

// errorResult wraps a message as an MCP error result.
func errorResult(message string) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		Content: []mcp.Content{&mcp.TextContent{Text: message}},
		IsError: true,
	}
}
