// Package report renders baseline and comparison output. Renderers consume
// the engine's records and metadata as-is; nothing here affects
// classification.
package report

import (
	"encoding/json"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/kmaras/veritree/internal/baseline"
	"github.com/kmaras/veritree/internal/compare"
	"github.com/kmaras/veritree/pkg/veritree"
)

// Format selects an output renderer.
type Format string

const (
	FormatJSON  Format = "json"
	FormatYAML  Format = "yaml"
	FormatTable Format = "table"
	FormatHTML  Format = "html"
)

// ParseFormat validates a --format flag value.
func ParseFormat(s string) (Format, error) {
	switch Format(s) {
	case FormatJSON, FormatYAML, FormatTable, FormatHTML:
		return Format(s), nil
	}
	return "", fmt.Errorf("unknown format '%s' (expected json, yaml, table, or html)", s)
}

// Comparison is the full compare-mode output document.
type Comparison struct {
	Metadata veritree.Metadata           `yaml:"metadata" json:"metadata"`
	Results  []veritree.ComparisonResult `yaml:"results" json:"results"`
	Summary  compare.Summary             `yaml:"summary" json:"summary"`
}

// NewComparison bundles results with their run metadata and summary.
func NewComparison(meta veritree.Metadata, results []veritree.ComparisonResult) *Comparison {
	return &Comparison{
		Metadata: meta,
		Results:  results,
		Summary:  compare.Summarize(results),
	}
}

// WriteBaseline renders a baseline document in the given format.
func WriteBaseline(w io.Writer, f Format, b *baseline.Baseline) error {
	switch f {
	case FormatJSON:
		return writeJSON(w, baselineDoc{Metadata: b.Metadata, Files: b.Files})
	case FormatYAML:
		return writeYAML(w, b)
	case FormatTable:
		return writeBaselineTable(w, b)
	case FormatHTML:
		return writeBaselineHTML(w, b)
	}
	return fmt.Errorf("unknown format '%s'", f)
}

// WriteComparison renders compare-mode output in the given format.
func WriteComparison(w io.Writer, f Format, c *Comparison) error {
	switch f {
	case FormatJSON:
		return writeJSON(w, c)
	case FormatYAML:
		return writeYAML(w, c)
	case FormatTable:
		return writeComparisonTable(w, c)
	case FormatHTML:
		return writeComparisonHTML(w, c)
	}
	return fmt.Errorf("unknown format '%s'", f)
}

// baselineDoc mirrors baseline.Baseline with json tags; the persisted
// document itself stays yaml.
type baselineDoc struct {
	Metadata veritree.Metadata     `json:"metadata"`
	Files    []veritree.FileRecord `json:"files"`
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func writeYAML(w io.Writer, v any) error {
	enc := yaml.NewEncoder(w)
	defer enc.Close()
	return enc.Encode(v)
}
