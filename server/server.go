package server

import (
	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/itsatony/project2md/tools"
)

// Setup creates and configures the MCP server with all tool registrations.
func Setup(generateHandler *tools.GenerateHandler, statsHandler *tools.StatsHandler) *mcp.Server {
	mcpServer := mcp.NewServer(
		&mcp.Implementation{
			Name:    "project2md",
			Version: "1.0.0",
		},
		&mcp.ServerOptions{
			Instructions: `This server converts a source directory into a single structured document.

Use these tools to get an overview of an unfamiliar codebase:
- Use project2md_generate to produce a full document (tree, statistics, file contents). With signatures=true, code files are reduced to declaration signatures with line counts, which is far cheaper to read for large projects.
- Use project2md_stats for a quick statistical profile (file counts, languages, largest files) without the file contents.`,
		},
	)

	mcp.AddTool(mcpServer, &mcp.Tool{
		Name: "project2md_generate",
		Description: `Generate a single document describing a directory: project tree, statistics, and file contents.

Options:
  - format: markdown (default), json, or yaml
  - signatures: reduce code files to declaration signatures annotated with line counts
  - include / exclude: doublestar glob patterns (e.g. "src/**/*.go")`,
	}, generateHandler.Handle)

	mcp.AddTool(mcpServer, &mcp.Tool{
		Name:        "project2md_stats",
		Description: "Analyze a directory and report statistics: file counts, text/binary split, languages, file types, and largest files.",
	}, statsHandler.Handle)

	return mcpServer
}
