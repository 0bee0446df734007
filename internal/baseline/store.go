package baseline

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/kmaras/veritree/pkg/veritree"
)

// Load reads and validates a baseline document.
// Returns PathNotFoundError if the file does not exist and BaselineLoadError
// if it cannot be read, parsed, or validated.
func Load(path string) (*Baseline, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil, &veritree.PathNotFoundError{Path: path}
	}
	if err != nil {
		return nil, &veritree.BaselineLoadError{Path: path, Err: err}
	}

	var b Baseline
	if err := yaml.Unmarshal(data, &b); err != nil {
		return nil, &veritree.BaselineLoadError{Path: path, Err: err}
	}

	if errs := Validate(&b); len(errs) > 0 {
		return nil, &veritree.BaselineLoadError{Path: path, Err: &ValidationError{Errors: errs}}
	}

	return &b, nil
}

// Save writes a baseline atomically using a temp file and rename.
func Save(path string, b *Baseline) error {
	data, err := yaml.Marshal(b)
	if err != nil {
		return fmt.Errorf("marshaling baseline: %w", err)
	}

	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0644); err != nil {
		return fmt.Errorf("writing temp baseline %s: %w", tmp, err)
	}

	if err := os.Rename(tmp, path); err != nil {
		_ = os.Remove(tmp)
		return fmt.Errorf("renaming temp baseline to %s: %w", path, err)
	}

	return nil
}

// ValidationError holds multiple validation failures.
type ValidationError struct {
	Errors []string
}

func (e *ValidationError) Error() string {
	msg := "baseline validation failed:"
	for _, s := range e.Errors {
		msg += "\n  - " + s
	}
	return msg
}

// Validate checks a loaded baseline for semantic correctness.
// Returns a list of validation error messages (empty if valid).
// Records without a digest are valid: they mark files that existed but could
// not be hashed.
func Validate(b *Baseline) []string {
	var errs []string

	if b.Version != 1 {
		errs = append(errs, fmt.Sprintf("unsupported version %d (only version 1 is supported)", b.Version))
	}

	seen := make(map[string]bool, len(b.Files))
	for i, f := range b.Files {
		if f.Path == "" {
			errs = append(errs, fmt.Sprintf("file[%d]: 'path' is required", i))
			continue
		}
		if seen[f.Path] {
			errs = append(errs, fmt.Sprintf("file[%d]: duplicate path '%s'", i, f.Path))
		}
		seen[f.Path] = true
	}

	return errs
}
