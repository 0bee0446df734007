package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/kmaras/veritree/internal/baseline"
	"github.com/kmaras/veritree/internal/compare"
	"github.com/kmaras/veritree/internal/report"
	"github.com/kmaras/veritree/internal/scan"
)

var (
	compareFile   string
	compareFormat string
	compareOut    string
)

var compareCmd = &cobra.Command{
	Use:   "compare <root>",
	Short: "Re-scan a tree and classify every file against the baseline",
	Long: `Loads the baseline, re-scans <root>, and reconciles the two: CORRECT
for unchanged files, SUSPICIOUS for changed or unreadable files, MISSING for
baseline files no longer present, UNKNOWN for new files.
Exit 0 when everything is CORRECT, 1 on any deviation, 2 on fatal errors.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		root, err := scan.ResolveRoot(args[0])
		if err != nil {
			return err
		}

		b, err := baseline.Load(compareFile)
		if err != nil {
			return err
		}

		format, err := report.ParseFormat(compareFormat)
		if err != nil {
			return err
		}

		eng := &compare.Engine{Scanner: newScanner()}
		results, err := eng.Compare(cmd.Context(), root, b)
		if err != nil {
			return err
		}

		out, closeOut, err := openOutput(compareOut)
		if err != nil {
			return err
		}
		defer closeOut()

		meta := newMetadata("compare", root)
		if err := report.WriteComparison(out, format, report.NewComparison(meta, results)); err != nil {
			return err
		}

		if n := compare.Summarize(results).Deviations(); n > 0 {
			return fmt.Errorf("%w: %d file(s)", ErrDeviation, n)
		}
		return nil
	},
}

func init() {
	compareCmd.Flags().StringVar(&compareFile, "baseline", "veritree.baseline", "path of the baseline file to load")
	compareCmd.Flags().StringVar(&compareFormat, "format", "table", "output format (json, yaml, table, html)")
	compareCmd.Flags().StringVar(&compareOut, "output", "", "report destination (default stdout)")
	rootCmd.AddCommand(compareCmd)
}
