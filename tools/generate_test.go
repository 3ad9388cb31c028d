package tools

import (
	"context"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func writeFile(t *testing.T, root, rel, content string) {
	t.Helper()
	path := filepath.Join(root, filepath.FromSlash(rel))
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}

func resultText(t *testing.T, result *mcp.CallToolResult) string {
	t.Helper()
	if len(result.Content) == 0 {
		t.Fatal("expected tool result content")
	}
	return result.Content[0].(*mcp.TextContent).Text
}

func Test_GenerateHandler_EmptyRoot(t *testing.T) {
	h := &GenerateHandler{Logger: testLogger()}

	result, _, err := h.Handle(context.Background(), nil, GenerateArgs{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !result.IsError {
		t.Fatal("expected IsError=true for empty root")
	}
	if !strings.Contains(resultText(t, result), "root parameter is required") {
		t.Error("expected error message about missing root")
	}
}

func Test_GenerateHandler_MarkdownDocument(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "main.go", "package main\n\nfunc main() {}\n")

	h := &GenerateHandler{Logger: testLogger()}
	result, _, err := h.Handle(context.Background(), nil, GenerateArgs{Root: root})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.IsError {
		t.Fatalf("expected success, got: %s", resultText(t, result))
	}

	text := resultText(t, result)
	if !strings.Contains(text, "# Project Overview") {
		t.Error("expected markdown document in tool output")
	}
	if !strings.Contains(text, "### filepath main.go") {
		t.Error("expected file content section")
	}
}

func Test_GenerateHandler_SignatureMode(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "app.go", "func Handler() {\n\treturn\n}\n")

	h := &GenerateHandler{Logger: testLogger()}
	result, _, err := h.Handle(context.Background(), nil, GenerateArgs{Root: root, Signatures: true})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	text := resultText(t, result)
	if !strings.Contains(text, "[lines:3]") {
		t.Errorf("expected signature annotations, got:\n%s", text)
	}
}

func Test_GenerateHandler_InvalidFormat(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "main.go", "package main\n")

	h := &GenerateHandler{Logger: testLogger()}
	result, _, err := h.Handle(context.Background(), nil, GenerateArgs{Root: root, Format: "pdf"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !result.IsError {
		t.Fatal("expected IsError=true for unsupported format")
	}
}

func Test_GenerateHandler_ExcludePatterns(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "main.go", "package main\n")
	writeFile(t, root, "docs/notes.md", "# Notes\n")

	h := &GenerateHandler{Logger: testLogger()}
	result, _, err := h.Handle(context.Background(), nil, GenerateArgs{
		Root:    root,
		Exclude: []string{"docs/**"},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	text := resultText(t, result)
	if strings.Contains(text, "notes.md") {
		t.Error("expected excluded file to be absent from document")
	}
}
