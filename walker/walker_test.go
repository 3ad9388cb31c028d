package walker

import (
	"bytes"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/itsatony/project2md/ignore"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func writeFile(t *testing.T, root string, rel string, content []byte) {
	t.Helper()
	path := filepath.Join(root, filepath.FromSlash(rel))
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, content, 0o644); err != nil {
		t.Fatal(err)
	}
}

func collect(t *testing.T, root string, options ignore.MatcherOptions, maxDepth int) []FileUnit {
	t.Helper()
	options.RootDir = root
	w := New(root, ignore.NewMatcher(options), maxDepth, testLogger())
	units, err := w.Collect()
	if err != nil {
		t.Fatalf("Collect failed: %v", err)
	}
	return units
}

func relPaths(units []FileUnit) []string {
	paths := make([]string, len(units))
	for i, u := range units {
		paths[i] = u.RelPath
	}
	return paths
}

func Test_Collect_SortedRelativePaths(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "zeta.go", []byte("package main\n"))
	writeFile(t, root, "alpha.go", []byte("package main\n"))
	writeFile(t, root, "src/beta.go", []byte("package src\n"))

	units := collect(t, root, ignore.MatcherOptions{}, 10)

	want := []string{"alpha.go", "src/beta.go", "zeta.go"}
	got := relPaths(units)
	if len(got) != len(want) {
		t.Fatalf("expected %d files, got %v", len(want), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("position %d: expected %s, got %s", i, want[i], got[i])
		}
	}
}

func Test_Collect_ReadsTextContent(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "main.go", []byte("package main\n\nfunc main() {}\n"))

	units := collect(t, root, ignore.MatcherOptions{}, 10)

	if len(units) != 1 {
		t.Fatalf("expected 1 file, got %d", len(units))
	}
	if units[0].Content == nil {
		t.Fatal("expected content to be read")
	}
	if *units[0].Content != "package main\n\nfunc main() {}\n" {
		t.Errorf("unexpected content: %q", *units[0].Content)
	}
}

func Test_Collect_BinaryFileHasNilContent(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "data.bin", []byte{0x00, 0x01, 0x02, 0x03})

	units := collect(t, root, ignore.MatcherOptions{}, 10)

	if len(units) != 1 {
		t.Fatalf("expected binary file to be listed, got %d files", len(units))
	}
	if units[0].Content != nil {
		t.Error("expected binary file content to be nil")
	}
}

func Test_Collect_OversizedFileHasNilContent(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "big.txt", bytes.Repeat([]byte("x"), 2048))

	units := collect(t, root, ignore.MatcherOptions{MaxFileSizeBytes: 1024}, 10)

	if len(units) != 1 {
		t.Fatalf("expected oversized file to be listed, got %d files", len(units))
	}
	if units[0].Content != nil {
		t.Error("expected oversized file content to be nil")
	}
}

func Test_Collect_SkipsIgnoredDirectories(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "main.go", []byte("package main\n"))
	writeFile(t, root, "node_modules/lib/index.js", []byte("module.exports = {}\n"))

	units := collect(t, root, ignore.MatcherOptions{}, 10)

	for _, u := range units {
		if u.RelPath == "node_modules/lib/index.js" {
			t.Error("expected node_modules to be skipped")
		}
	}
}

func Test_Collect_HonorsGitignore(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, ".gitignore", []byte("*.generated.go\n"))
	writeFile(t, root, "models.generated.go", []byte("package models\n"))
	writeFile(t, root, "main.go", []byte("package main\n"))

	units := collect(t, root, ignore.MatcherOptions{}, 10)

	for _, u := range units {
		if u.RelPath == "models.generated.go" {
			t.Error("expected gitignored file to be skipped")
		}
	}
}

func Test_Collect_IncludePatternsFilter(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "src/app.go", []byte("package app\n"))
	writeFile(t, root, "docs/guide.txt", []byte("guide\n"))

	units := collect(t, root, ignore.MatcherOptions{
		IncludePatterns: []string{"src/**"},
	}, 10)

	got := relPaths(units)
	if len(got) != 1 || got[0] != "src/app.go" {
		t.Errorf("expected only src/app.go, got %v", got)
	}
}

func Test_Collect_MaxDepth(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "top.txt", []byte("top\n"))
	writeFile(t, root, "a/one.txt", []byte("one\n"))
	writeFile(t, root, "a/b/two.txt", []byte("two\n"))

	units := collect(t, root, ignore.MatcherOptions{}, 1)

	got := relPaths(units)
	for _, p := range got {
		if p == "a/b/two.txt" {
			t.Errorf("expected deep file to be skipped, got %v", got)
		}
	}
	found := map[string]bool{}
	for _, p := range got {
		found[p] = true
	}
	if !found["top.txt"] || !found["a/one.txt"] {
		t.Errorf("expected shallow files to be present, got %v", got)
	}
}
