package cmd

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
)

// Build-time variables set via -ldflags.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// Global flags.
var (
	verbose     bool
	quiet       bool
	workers     int
	fileTimeout time.Duration
)

// ErrDeviation marks a compare run that completed but found files deviating
// from the baseline. It maps to exit code 1; fatal errors map to exit code 2.
var ErrDeviation = errors.New("baseline deviation detected")

var rootCmd = &cobra.Command{
	Use:   "veritree",
	Short: "File-integrity baselining and tamper detection",
	Long: `veritree fingerprints every regular file under a directory tree with
SHA-256 and stores the result as a baseline. A later compare re-scans the
tree and classifies each file against the baseline: CORRECT (unchanged),
SUSPICIOUS (content changed or unreadable), MISSING (deleted), or UNKNOWN
(new). The tool is read-only and advisory.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("veritree %s\n", version)
		fmt.Printf("  commit:  %s\n", commit)
		fmt.Printf("  built:   %s\n", date)
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&verbose, "verbose", false, "detailed output, including skipped files")
	rootCmd.PersistentFlags().BoolVar(&quiet, "quiet", false, "minimal output (errors only)")
	rootCmd.PersistentFlags().IntVar(&workers, "workers", 0, "concurrent hashing workers (0 = auto, 1 = sequential)")
	rootCmd.PersistentFlags().DurationVar(&fileTimeout, "file-timeout", 30*time.Second, "per-file hashing timeout; a timed-out file is recorded without a digest")

	rootCmd.AddCommand(versionCmd)
}

// Execute runs the root command and returns the process exit code:
// 0 clean, 1 baseline deviation, 2 fatal error.
func Execute() int {
	err := rootCmd.Execute()
	if err == nil {
		return 0
	}
	fmt.Fprintln(os.Stderr, err)
	if errors.Is(err, ErrDeviation) {
		return 1
	}
	return 2
}
