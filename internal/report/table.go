package report

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/kmaras/veritree/internal/baseline"
)

// absentDigest is how an unhashable file shows up in human-readable output.
const absentDigest = "(unavailable)"

func writeBaselineTable(w io.Writer, b *baseline.Baseline) error {
	fmt.Fprintf(w, "Baseline of %s (%s, %s)\n",
		b.Metadata.Root, b.Metadata.Algorithm, b.Metadata.GeneratedAt.Format("2006-01-02 15:04:05 MST"))
	fmt.Fprintf(w, "Host %s, user %s, %s\n\n", b.Metadata.Hostname, b.Metadata.Username, b.Metadata.OS)

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "PATH\tSHA256")
	for _, f := range b.Files {
		digest := f.Digest
		if digest == "" {
			digest = absentDigest
		}
		fmt.Fprintf(tw, "%s\t%s\n", f.Path, digest)
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	fmt.Fprintf(w, "\n%d file(s)\n", len(b.Files))
	return nil
}

func writeComparisonTable(w io.Writer, c *Comparison) error {
	fmt.Fprintf(w, "Comparison of %s (%s, %s)\n",
		c.Metadata.Root, c.Metadata.Algorithm, c.Metadata.GeneratedAt.Format("2006-01-02 15:04:05 MST"))
	fmt.Fprintf(w, "Host %s, user %s, %s\n\n", c.Metadata.Hostname, c.Metadata.Username, c.Metadata.OS)

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "STATUS\tPATH\tBASELINE\tCURRENT")
	for _, r := range c.Results {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n",
			r.Status, r.Path, shortDigest(r.BaselineDigest), shortDigest(r.CurrentDigest))
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	fmt.Fprintf(w, "\n%d correct, %d suspicious, %d missing, %d unknown\n",
		c.Summary.Correct, c.Summary.Suspicious, c.Summary.Missing, c.Summary.Unknown)
	return nil
}

func shortDigest(digest string) string {
	if digest == "" {
		return "-"
	}
	if len(digest) > 12 {
		return digest[:12]
	}
	return digest
}
