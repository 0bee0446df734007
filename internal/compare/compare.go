// Package compare reconciles a fresh scan against a stored baseline and
// classifies every known path as CORRECT, SUSPICIOUS, MISSING, or UNKNOWN.
package compare

import (
	"context"
	"sort"

	"github.com/kmaras/veritree/internal/baseline"
	"github.com/kmaras/veritree/internal/scan"
	"github.com/kmaras/veritree/pkg/veritree"
)

// Engine runs a compare pass: re-scan the tree, then reconcile against the
// loaded baseline.
type Engine struct {
	Scanner *scan.Scanner
}

// Compare scans root and reconciles the result against b.
// Fails only if the root does not exist or the context is cancelled; every
// per-file failure degrades to a SUSPICIOUS or UNKNOWN record.
func (e *Engine) Compare(ctx context.Context, root string, b *baseline.Baseline) ([]veritree.ComparisonResult, error) {
	current, err := e.Scanner.Scan(ctx, root)
	if err != nil {
		return nil, err
	}
	return Reconcile(b, current), nil
}

// Reconcile classifies every path in baseline ∪ current:
//
//   - in both, digests present and byte-equal        → CORRECT
//   - in both, digests differ or either side absent  → SUSPICIOUS
//   - baseline only                                  → MISSING
//   - current only                                   → UNKNOWN
//
// Matched and unknown results keep current-scan traversal order; missing
// results are appended afterward, sorted by path. Every known path appears
// exactly once. Path matching is byte-exact and case-sensitive; digest
// comparison is exact, and two absent digests never compare equal — a file
// unreadable in both scans is still SUSPICIOUS.
func Reconcile(b *baseline.Baseline, current []veritree.FileRecord) []veritree.ComparisonResult {
	idx := b.Index()
	results := make([]veritree.ComparisonResult, 0, len(current)+len(idx))

	for _, cur := range current {
		base, matched := idx[cur.Path]
		if !matched {
			results = append(results, veritree.ComparisonResult{
				Name:          cur.Name,
				Path:          cur.Path,
				CurrentDigest: cur.Digest,
				Status:        veritree.StatusUnknown,
			})
			continue
		}

		status := veritree.StatusSuspicious
		if cur.Digest != "" && base.Digest != "" && cur.Digest == base.Digest {
			status = veritree.StatusCorrect
		}
		results = append(results, veritree.ComparisonResult{
			Name:           cur.Name,
			Path:           cur.Path,
			CurrentDigest:  cur.Digest,
			BaselineDigest: base.Digest,
			Status:         status,
		})
		delete(idx, cur.Path)
	}

	// Whatever was never matched is missing from the current scan. Sorted by
	// path so compare output is reproducible.
	remaining := make([]string, 0, len(idx))
	for path := range idx {
		remaining = append(remaining, path)
	}
	sort.Strings(remaining)

	for _, path := range remaining {
		base := idx[path]
		results = append(results, veritree.ComparisonResult{
			Name:           base.Name,
			Path:           base.Path,
			BaselineDigest: base.Digest,
			Status:         veritree.StatusMissing,
		})
	}

	return results
}

// Clean reports whether every result is CORRECT.
func Clean(results []veritree.ComparisonResult) bool {
	for _, r := range results {
		if r.Status != veritree.StatusCorrect {
			return false
		}
	}
	return true
}

// Summary counts results per status.
type Summary struct {
	Correct    int `yaml:"correct" json:"correct"`
	Suspicious int `yaml:"suspicious" json:"suspicious"`
	Missing    int `yaml:"missing" json:"missing"`
	Unknown    int `yaml:"unknown" json:"unknown"`
}

// Summarize tallies results per status.
func Summarize(results []veritree.ComparisonResult) Summary {
	var s Summary
	for _, r := range results {
		switch r.Status {
		case veritree.StatusCorrect:
			s.Correct++
		case veritree.StatusSuspicious:
			s.Suspicious++
		case veritree.StatusMissing:
			s.Missing++
		case veritree.StatusUnknown:
			s.Unknown++
		}
	}
	return s
}

// Deviations counts results that are not CORRECT.
func (s Summary) Deviations() int {
	return s.Suspicious + s.Missing + s.Unknown
}
