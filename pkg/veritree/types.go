// Package veritree defines the data model shared between the scan engine,
// the baseline store, the comparator, and the report renderers.
package veritree

import "time"

// Status classifies one path after reconciling a scan against a baseline.
type Status string

const (
	// StatusCorrect: the file exists in both scans with byte-identical digests.
	StatusCorrect Status = "CORRECT"
	// StatusSuspicious: the file exists in both scans but the digests differ,
	// or either side could not be hashed.
	StatusSuspicious Status = "SUSPICIOUS"
	// StatusMissing: the file is in the baseline but absent from the current scan.
	StatusMissing Status = "MISSING"
	// StatusUnknown: the file is in the current scan but absent from the baseline.
	StatusUnknown Status = "UNKNOWN"
)

// FileRecord is one file observed during a single scan pass.
//
// Path is the absolute, symlink-resolved filesystem path and is the identity
// key for all matching: two records describe the same file iff their paths
// are byte-equal. Comparison is case-sensitive on every platform so that a
// baseline written on one filesystem stays meaningful on another.
//
// Digest is the lowercase hex SHA-256 of the file content. An empty digest
// means the file could not be hashed; the record is still kept, since the
// file's existence is itself meaningful for later comparison.
type FileRecord struct {
	Name   string `yaml:"name" json:"name"`
	Path   string `yaml:"path" json:"path"`
	Digest string `yaml:"sha256,omitempty" json:"sha256,omitempty"`
}

// ComparisonResult is the classification of one path after reconciliation.
// CurrentDigest is empty when the file is missing from the current scan or
// could not be hashed; BaselineDigest is empty when the path is absent from
// the baseline or was recorded there without a digest.
type ComparisonResult struct {
	Name           string `yaml:"name" json:"name"`
	Path           string `yaml:"path" json:"path"`
	CurrentDigest  string `yaml:"current_sha256,omitempty" json:"current_sha256,omitempty"`
	BaselineDigest string `yaml:"baseline_sha256,omitempty" json:"baseline_sha256,omitempty"`
	Status         Status `yaml:"status" json:"status"`
}

// Metadata describes one run. It is constructed once at run start, attached
// unmodified to every output document, and has no bearing on classification.
type Metadata struct {
	GeneratedAt time.Time `yaml:"generated_at" json:"generated_at"`
	Hostname    string    `yaml:"hostname" json:"hostname"`
	Username    string    `yaml:"username" json:"username"`
	OS          string    `yaml:"os" json:"os"`
	Root        string    `yaml:"root" json:"root"`
	Algorithm   string    `yaml:"algorithm" json:"algorithm"`
	Mode        string    `yaml:"mode" json:"mode"`
}
