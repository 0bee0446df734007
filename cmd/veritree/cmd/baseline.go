package cmd

import (
	"github.com/spf13/cobra"

	"github.com/kmaras/veritree/internal/baseline"
	"github.com/kmaras/veritree/internal/report"
	"github.com/kmaras/veritree/internal/scan"
)

var (
	baselineFile   string
	baselineFormat string
	baselineOut    string
)

var baselineCmd = &cobra.Command{
	Use:   "baseline <root>",
	Short: "Fingerprint a directory tree and save the baseline",
	Long: `Recursively hashes every regular file under <root> (hidden files
included) and writes the records plus run metadata to the baseline file.
Files that cannot be read are recorded without a digest; unreadable
subdirectories are skipped. With --format, additionally renders the baseline
as a report.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		root, err := scan.ResolveRoot(args[0])
		if err != nil {
			return err
		}

		meta := newMetadata("baseline", root)
		records, err := newScanner().Scan(cmd.Context(), root)
		if err != nil {
			return err
		}

		b := baseline.New(meta, records)
		if err := baseline.Save(baselineFile, b); err != nil {
			return err
		}

		hashed := 0
		for _, r := range records {
			if r.Digest != "" {
				hashed++
			} else {
				detail("no digest: %s", r.Path)
			}
		}
		info("Baseline written to %s: %d file(s), %d hashed.", baselineFile, len(records), hashed)

		if baselineFormat == "" {
			return nil
		}
		format, err := report.ParseFormat(baselineFormat)
		if err != nil {
			return err
		}
		out, closeOut, err := openOutput(baselineOut)
		if err != nil {
			return err
		}
		defer closeOut()
		return report.WriteBaseline(out, format, b)
	},
}

func init() {
	baselineCmd.Flags().StringVar(&baselineFile, "baseline", "veritree.baseline", "path of the baseline file to write")
	baselineCmd.Flags().StringVar(&baselineFormat, "format", "", "additionally render the baseline (json, yaml, table, html)")
	baselineCmd.Flags().StringVar(&baselineOut, "output", "", "report destination (default stdout)")
	rootCmd.AddCommand(baselineCmd)
}
