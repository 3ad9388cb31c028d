// Package main provides the project2md CLI.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/spf13/cobra"

	"github.com/itsatony/project2md/config"
	"github.com/itsatony/project2md/pipeline"
	"github.com/itsatony/project2md/register"
	"github.com/itsatony/project2md/server"
	"github.com/itsatony/project2md/tools"
)

// Version is the current project2md version.
var Version = "1.0.0"

var (
	flagRepo       string
	flagRootDir    string
	flagBranch     string
	flagTarget     string
	flagOutput     string
	flagFormat     string
	flagConfig     string
	flagInclude    []string
	flagExclude    []string
	flagSignatures bool
	flagForce      bool
	flagWatch      bool
	flagLogLevel   string
	flagLogFile    string
)

var rootCmd = &cobra.Command{
	Use:   "project2md",
	Short: "Convert a repository into a single document",
	Long: `project2md converts a Git repository or local directory into a single
document (Markdown, JSON, or YAML) containing the project tree, statistics,
and file contents. With --signatures, code files are reduced to declaration
signatures annotated with line counts.`,
	Version:       Version,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runGenerate,
}

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Create a default .project2md.yml in the current directory",
	RunE: func(cmd *cobra.Command, args []string) error {
		created, err := config.WriteDefault(config.DefaultFileName)
		if err != nil {
			return err
		}
		if !created {
			fmt.Printf("%s already exists\n", config.DefaultFileName)
			return nil
		}
		fmt.Printf("Created %s\n", config.DefaultFileName)
		return nil
	},
}

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Run as an MCP stdio server",
	RunE:  runMCP,
}

var registerCmd = &cobra.Command{
	Use:   "register project|user [directory]",
	Short: "Register the MCP server in a client configuration file",
	Long: `Register the project2md MCP server.

  project2md register project [directory]  writes <directory>/.mcp.json (default: .)
  project2md register user                 writes the user-level client config`,
	Args: cobra.RangeArgs(1, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		directory := ""
		if len(args) > 1 {
			directory = args[1]
		}
		configPath, err := register.Register(args[0], directory, nil)
		if err != nil {
			return err
		}
		fmt.Printf("Registered %q in %s\n", register.ServerName, configPath)
		return nil
	},
}

func init() {
	rootCmd.Flags().StringVar(&flagRepo, "repo", "", "Git repository URL to clone and process")
	rootCmd.Flags().StringVar(&flagRootDir, "root-dir", "", "Local directory to process (default: current directory)")
	rootCmd.Flags().StringVar(&flagBranch, "branch", "", "Branch to check out when cloning")
	rootCmd.Flags().StringVar(&flagTarget, "target", "", "Clone destination directory (default: .)")
	rootCmd.Flags().StringVar(&flagOutput, "output", "", "Output file path (default: project_summary.md)")
	rootCmd.Flags().StringVar(&flagFormat, "format", "", "Output format: markdown|json|yaml")
	rootCmd.Flags().StringVar(&flagConfig, "config", "", "Config file path (default: .project2md.yml in the target)")
	rootCmd.Flags().StringArrayVar(&flagInclude, "include", nil, "Include glob pattern (repeatable)")
	rootCmd.Flags().StringArrayVar(&flagExclude, "exclude", nil, "Exclude glob pattern (repeatable)")
	rootCmd.Flags().BoolVar(&flagSignatures, "signatures", false, "Reduce code files to declaration signatures")
	rootCmd.Flags().BoolVar(&flagForce, "force", false, "Process non-git directories and overwrite clone targets")
	rootCmd.Flags().BoolVar(&flagWatch, "watch", false, "Regenerate the document whenever files change")

	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug|info|warn|error")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Log file path (default: stderr)")

	rootCmd.AddCommand(initCmd, mcpCmd, registerCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// runGenerate is the default command: generate the document once, or keep
// regenerating in watch mode.
func runGenerate(cmd *cobra.Command, args []string) error {
	logger := setupLogger(flagLogLevel, flagLogFile)

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	result, err := pipeline.RunToFile(ctx, cfg, logger)
	if err != nil {
		return err
	}
	fmt.Printf("Processed %d files into %s\n", result.FileCount, cfg.OutputFile)

	if flagWatch {
		// Cloning already happened; subsequent runs process the checkout.
		cfg.RepoURL = ""
		cfg.TargetDir = result.RootDir
		return watchLoop(ctx, cfg, logger)
	}
	return nil
}

// loadConfig assembles the effective configuration from the config file and
// CLI flags.
func loadConfig() (*config.Config, error) {
	targetDir := flagRootDir
	if targetDir == "" {
		targetDir = flagTarget
	}
	if targetDir == "" {
		targetDir = "."
	}

	configPath := flagConfig
	if configPath == "" {
		configPath = filepath.Join(targetDir, config.DefaultFileName)
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}

	cfg.MergeCLI(config.CLIArgs{
		RepoURL:    flagRepo,
		Branch:     flagBranch,
		TargetDir:  targetDir,
		OutputFile: flagOutput,
		Format:     flagFormat,
		Include:    flagInclude,
		Exclude:    flagExclude,
		Signatures: flagSignatures,
		Force:      flagForce,
	})

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// runMCP starts the MCP stdio server. Logging goes to a file or stderr,
// never stdout: stdout carries the MCP protocol.
func runMCP(cmd *cobra.Command, args []string) error {
	logFile := flagLogFile
	if logFile == "" {
		logFile = "project2md.log"
	}
	logger := setupLogger(flagLogLevel, logFile)

	generateHandler := &tools.GenerateHandler{Logger: logger}
	statsHandler := &tools.StatsHandler{Logger: logger}

	mcpServer := server.Setup(generateHandler, statsHandler)

	logger.Info("MCP server starting on stdio", "version", Version)
	if err := mcpServer.Run(context.Background(), &mcp.StdioTransport{}); err != nil {
		logger.Error("MCP server error", "error", err)
		return err
	}
	return nil
}

// setupLogger creates an slog.Logger writing to stderr or a file.
func setupLogger(level string, logFile string) *slog.Logger {
	var logLevel slog.Level
	switch strings.ToLower(level) {
	case "debug":
		logLevel = slog.LevelDebug
	case "warn":
		logLevel = slog.LevelWarn
	case "error":
		logLevel = slog.LevelError
	default:
		logLevel = slog.LevelInfo
	}

	var writer *os.File
	if logFile != "" {
		f, err := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Warning: cannot open log file %s: %v, falling back to stderr\n", logFile, err)
			writer = os.Stderr
		} else {
			writer = f
		}
	} else {
		writer = os.Stderr
	}

	handler := slog.NewTextHandler(writer, &slog.HandlerOptions{Level: logLevel})
	return slog.New(handler)
}
