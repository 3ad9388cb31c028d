package tools

import (
	"context"
	"strings"
	"testing"
)

func Test_StatsHandler_EmptyRoot(t *testing.T) {
	h := &StatsHandler{Logger: testLogger()}

	result, _, err := h.Handle(context.Background(), nil, StatsArgs{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !result.IsError {
		t.Fatal("expected IsError=true for empty root")
	}
}

func Test_StatsHandler_ReportsCounts(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "main.go", "package main\n")
	writeFile(t, root, "app.py", "print('hi')\n")

	h := &StatsHandler{Logger: testLogger()}
	result, _, err := h.Handle(context.Background(), nil, StatsArgs{Root: root})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.IsError {
		t.Fatalf("expected success, got: %s", resultText(t, result))
	}

	text := resultText(t, result)
	if !strings.Contains(text, "Total files: 2") {
		t.Errorf("expected total file count, got:\n%s", text)
	}
	if !strings.Contains(text, "Go") || !strings.Contains(text, "Python") {
		t.Errorf("expected language breakdown, got:\n%s", text)
	}
}

func Test_StatsHandler_IncludePatterns(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "main.go", "package main\n")
	writeFile(t, root, "app.py", "print('hi')\n")

	h := &StatsHandler{Logger: testLogger()}
	result, _, err := h.Handle(context.Background(), nil, StatsArgs{
		Root:    root,
		Include: []string{"**/*.go"},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	text := resultText(t, result)
	if !strings.Contains(text, "Total files: 1") {
		t.Errorf("expected only go files counted, got:\n%s", text)
	}
}
