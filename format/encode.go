package format

import (
	"encoding/json"
	"fmt"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/itsatony/project2md/stats"
)

// document is the structured form shared by the JSON and YAML formatters.
type document struct {
	ProjectOverview overview       `json:"project_overview" yaml:"project_overview"`
	Statistics      *stats.Summary `json:"statistics,omitempty" yaml:"statistics,omitempty"`
	Files           []fileEntry    `json:"files" yaml:"files"`
	Metadata        metadata       `json:"metadata" yaml:"metadata"`
}

type overview struct {
	Readme string `json:"readme" yaml:"readme"`
	Tree   string `json:"tree" yaml:"tree"`
}

type fileEntry struct {
	Path    string `json:"path" yaml:"path"`
	Content string `json:"content" yaml:"content"`
}

type metadata struct {
	GeneratedAt string `json:"generated_at" yaml:"generated_at"`
	Generator   string `json:"generator" yaml:"generator"`
	Signatures  bool   `json:"signatures" yaml:"signatures"`
}

// buildDocument assembles the structured document from the formatter input.
func buildDocument(in Input) document {
	doc := document{
		ProjectOverview: overview{
			Readme: findReadme(in.Files),
			Tree:   renderTree(in.RootName, in.Files),
		},
		Files: make([]fileEntry, 0, len(in.Files)),
		Metadata: metadata{
			GeneratedAt: timestamp(in).Format(time.RFC3339),
			Generator:   "project2md",
			Signatures:  in.Signatures,
		},
	}
	if in.IncludeStats {
		summary := in.Summary
		doc.Statistics = &summary
	}
	for _, f := range in.Files {
		if f.Content == nil {
			continue
		}
		doc.Files = append(doc.Files, fileEntry{Path: f.RelPath, Content: *f.Content})
	}
	return doc
}

type jsonFormatter struct{}

func (j *jsonFormatter) Render(in Input) (string, error) {
	data, err := json.MarshalIndent(buildDocument(in), "", "  ")
	if err != nil {
		return "", fmt.Errorf("encoding JSON document: %w", err)
	}
	return string(data) + "\n", nil
}

type yamlFormatter struct{}

func (y *yamlFormatter) Render(in Input) (string, error) {
	data, err := yaml.Marshal(buildDocument(in))
	if err != nil {
		return "", fmt.Errorf("encoding YAML document: %w", err)
	}
	return string(data), nil
}
