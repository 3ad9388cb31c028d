package format

import (
	"encoding/json"
	"strings"
	"testing"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/itsatony/project2md/config"
	"github.com/itsatony/project2md/stats"
	"github.com/itsatony/project2md/walker"
)

func textFile(relPath, content string) walker.FileUnit {
	return walker.FileUnit{
		RelPath: relPath,
		Size:    int64(len(content)),
		Content: &content,
	}
}

func binaryFile(relPath string, size int64) walker.FileUnit {
	return walker.FileUnit{RelPath: relPath, Size: size}
}

func sampleInput() Input {
	files := []walker.FileUnit{
		textFile("README.md", "# Demo Project\n\nA demo.\n"),
		textFile("main.go", "package main\n\nfunc main() {}\n"),
		textFile("docs/guide.md", "# Guide\n"),
		binaryFile("assets/logo.png", 2048),
	}
	collector := stats.NewCollector()
	for _, f := range files {
		collector.ProcessFile(f.RelPath, f.Size, f.Content != nil)
	}
	return Input{
		RootName:     "demo",
		Files:        files,
		Summary:      collector.Summarize("main"),
		IncludeStats: true,
		GeneratedAt:  time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC),
	}
}

func Test_New_SelectsFormatter(t *testing.T) {
	for _, outputFormat := range []config.OutputFormat{config.FormatMarkdown, config.FormatJSON, config.FormatYAML} {
		if _, err := New(outputFormat); err != nil {
			t.Errorf("expected formatter for %s, got error: %v", outputFormat, err)
		}
	}
	if _, err := New(config.OutputFormat("pdf")); err == nil {
		t.Error("expected error for unsupported format")
	}
}

func Test_Markdown_ContainsCoreSections(t *testing.T) {
	f, _ := New(config.FormatMarkdown)
	out, err := f.Render(sampleInput())
	if err != nil {
		t.Fatalf("render failed: %v", err)
	}

	for _, want := range []string{
		"# Project Overview",
		"## README.md Content",
		"## Project Structure",
		"## Project Statistics",
		"## File Contents",
		"Generated by project2md on 2025-06-01 12:00:00",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("expected output to contain %q", want)
		}
	}
}

func Test_Markdown_EmbedsReadmeOnce(t *testing.T) {
	f, _ := New(config.FormatMarkdown)
	out, err := f.Render(sampleInput())
	if err != nil {
		t.Fatalf("render failed: %v", err)
	}

	if !strings.Contains(out, "````markdown\n# Demo Project") {
		t.Error("expected README embedded in a four-backtick fence")
	}
	if strings.Contains(out, "### filepath README.md") {
		t.Error("expected README to be skipped in the file contents section")
	}
}

func Test_Markdown_FenceTags(t *testing.T) {
	f, _ := New(config.FormatMarkdown)
	out, err := f.Render(sampleInput())
	if err != nil {
		t.Fatalf("render failed: %v", err)
	}

	if !strings.Contains(out, "### filepath main.go\n\n```go\npackage main") {
		t.Error("expected go file in a go-tagged fence")
	}
	if !strings.Contains(out, "### filepath docs/guide.md\n\n````markdown\n# Guide") {
		t.Error("expected markdown file in a four-backtick fence")
	}
}

func Test_Markdown_BinaryFilesOnlyInTree(t *testing.T) {
	f, _ := New(config.FormatMarkdown)
	out, err := f.Render(sampleInput())
	if err != nil {
		t.Fatalf("render failed: %v", err)
	}

	if !strings.Contains(out, "logo.png") {
		t.Error("expected binary file to appear in the tree")
	}
	if strings.Contains(out, "### filepath assets/logo.png") {
		t.Error("expected binary file to have no content section")
	}
}

func Test_Markdown_StatsDisabled(t *testing.T) {
	in := sampleInput()
	in.IncludeStats = false

	f, _ := New(config.FormatMarkdown)
	out, err := f.Render(in)
	if err != nil {
		t.Fatalf("render failed: %v", err)
	}
	if strings.Contains(out, "## Project Statistics") {
		t.Error("expected statistics section to be omitted")
	}
}

func Test_Markdown_SignatureBanner(t *testing.T) {
	in := sampleInput()
	in.Signatures = true

	f, _ := New(config.FormatMarkdown)
	out, err := f.Render(in)
	if err != nil {
		t.Fatalf("render failed: %v", err)
	}
	if !strings.Contains(out, "Signature mode") {
		t.Error("expected signature mode banner")
	}
}

func Test_JSON_Structure(t *testing.T) {
	f, _ := New(config.FormatJSON)
	out, err := f.Render(sampleInput())
	if err != nil {
		t.Fatalf("render failed: %v", err)
	}

	var doc map[string]any
	if err := json.Unmarshal([]byte(out), &doc); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}

	overview, ok := doc["project_overview"].(map[string]any)
	if !ok {
		t.Fatal("expected project_overview object")
	}
	if readme, _ := overview["readme"].(string); !strings.Contains(readme, "Demo Project") {
		t.Error("expected readme in project_overview")
	}
	if tree, _ := overview["tree"].(string); !strings.Contains(tree, "└── ") {
		t.Error("expected tree rendering in project_overview")
	}

	files, ok := doc["files"].([]any)
	if !ok || len(files) != 3 {
		t.Errorf("expected 3 text files in output, got %v", doc["files"])
	}

	meta, ok := doc["metadata"].(map[string]any)
	if !ok || meta["generator"] != "project2md" {
		t.Error("expected generator metadata")
	}
	if _, ok := doc["statistics"]; !ok {
		t.Error("expected statistics in output")
	}
}

func Test_YAML_RoundTrips(t *testing.T) {
	f, _ := New(config.FormatYAML)
	out, err := f.Render(sampleInput())
	if err != nil {
		t.Fatalf("render failed: %v", err)
	}

	var doc map[string]any
	if err := yaml.Unmarshal([]byte(out), &doc); err != nil {
		t.Fatalf("output is not valid YAML: %v", err)
	}
	if _, ok := doc["project_overview"]; !ok {
		t.Error("expected project_overview in YAML output")
	}
	if _, ok := doc["metadata"]; !ok {
		t.Error("expected metadata in YAML output")
	}
}

func Test_RenderTree_Layout(t *testing.T) {
	files := []walker.FileUnit{
		textFile("main.go", "x"),
		textFile("src/app.go", "x"),
		textFile("src/util.go", "x"),
	}

	tree := renderTree("demo", files)
	lines := strings.Split(tree, "\n")

	if lines[0] != "└── demo" {
		t.Errorf("expected root line, got %q", lines[0])
	}
	// Files sort before directories.
	if !strings.Contains(lines[1], "├── main.go") {
		t.Errorf("expected main.go before src, got %q", lines[1])
	}
	if !strings.Contains(lines[2], "└── src") {
		t.Errorf("expected src directory last, got %q", lines[2])
	}
	if !strings.Contains(lines[3], "├── app.go") || !strings.Contains(lines[4], "└── util.go") {
		t.Errorf("expected nested files under src, got %v", lines[3:])
	}
}
