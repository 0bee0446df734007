// Package baseline defines the persisted baseline document and its store.
package baseline

import "github.com/kmaras/veritree/pkg/veritree"

// Baseline is the persisted snapshot of a directory tree: one FileRecord per
// regular file, in scan traversal order, plus the run's Metadata. It is
// immutable once built.
type Baseline struct {
	Version  int                   `yaml:"version"`
	Metadata veritree.Metadata     `yaml:"metadata"`
	Files    []veritree.FileRecord `yaml:"files"`
}

// Index maps path to record for O(1) lookup and deletion. The comparator
// consumes an Index destructively: matched entries are deleted, and whatever
// remains afterward is missing from the current scan.
type Index map[string]veritree.FileRecord

// New assembles a Baseline from one scan pass.
func New(meta veritree.Metadata, files []veritree.FileRecord) *Baseline {
	return &Baseline{
		Version:  1,
		Metadata: meta,
		Files:    files,
	}
}

// Index builds the path lookup. Duplicate paths are last-write-wins; a valid
// baseline never contains them (Validate reports duplicates at load time).
func (b *Baseline) Index() Index {
	idx := make(Index, len(b.Files))
	for _, f := range b.Files {
		idx[f.Path] = f
	}
	return idx
}
