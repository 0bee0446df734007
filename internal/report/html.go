package report

import (
	"embed"
	"fmt"
	"html/template"
	"io"

	"github.com/kmaras/veritree/internal/baseline"
	"github.com/kmaras/veritree/pkg/veritree"
)

//go:embed templates/report.html
var templateFS embed.FS

var reportTemplate = template.Must(template.ParseFS(templateFS, "templates/report.html"))

// htmlPage feeds the shared report template. Rows carry a Status field only
// so the template can attach a per-status CSS class; baseline pages leave it
// empty.
type htmlPage struct {
	Title    string
	Metadata veritree.Metadata
	Summary  string
	Columns  []string
	Rows     []htmlRow
}

type htmlRow struct {
	Status veritree.Status
	Cells  []htmlCell
}

type htmlCell struct {
	Class string
	Text  string
}

func writeBaselineHTML(w io.Writer, b *baseline.Baseline) error {
	page := htmlPage{
		Title:    "Baseline: " + b.Metadata.Root,
		Metadata: b.Metadata,
		Columns:  []string{"Name", "Path", "SHA256"},
	}
	for _, f := range b.Files {
		digest := f.Digest
		if digest == "" {
			digest = absentDigest
		}
		page.Rows = append(page.Rows, htmlRow{
			Cells: []htmlCell{
				{Text: f.Name},
				{Text: f.Path},
				{Class: "digest", Text: digest},
			},
		})
	}
	return reportTemplate.Execute(w, page)
}

func writeComparisonHTML(w io.Writer, c *Comparison) error {
	page := htmlPage{
		Title:    "Comparison: " + c.Metadata.Root,
		Metadata: c.Metadata,
		Summary: fmt.Sprintf("%d correct, %d suspicious, %d missing, %d unknown",
			c.Summary.Correct, c.Summary.Suspicious, c.Summary.Missing, c.Summary.Unknown),
		Columns: []string{"Status", "Name", "Path", "Baseline SHA256", "Current SHA256"},
	}
	for _, r := range c.Results {
		baselineDigest := r.BaselineDigest
		if baselineDigest == "" {
			baselineDigest = "-"
		}
		currentDigest := r.CurrentDigest
		if currentDigest == "" {
			currentDigest = "-"
		}
		page.Rows = append(page.Rows, htmlRow{
			Status: r.Status,
			Cells: []htmlCell{
				{Class: "status", Text: string(r.Status)},
				{Text: r.Name},
				{Text: r.Path},
				{Class: "digest", Text: baselineDigest},
				{Class: "digest", Text: currentDigest},
			},
		})
	}
	return reportTemplate.Execute(w, page)
}
