package veritree

import "fmt"

// PathNotFoundError reports that a scan root or baseline file does not exist
// (or the root is not a directory). It is fatal: the run aborts before
// producing any output.
type PathNotFoundError struct {
	Path string
}

func (e *PathNotFoundError) Error() string {
	return fmt.Sprintf("path not found: %s", e.Path)
}

// BaselineLoadError reports that a baseline document could not be read or
// parsed. It is fatal: the run aborts before producing any output.
type BaselineLoadError struct {
	Path string
	Err  error
}

func (e *BaselineLoadError) Error() string {
	return fmt.Sprintf("loading baseline %s: %v", e.Path, e.Err)
}

func (e *BaselineLoadError) Unwrap() error {
	return e.Err
}
