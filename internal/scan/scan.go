// Package scan enumerates and hashes the regular files under a directory
// tree. A scan tolerates every per-file failure: unreadable subtrees are
// skipped, unhashable files keep their record with an empty digest. Only a
// missing root or context cancellation aborts a scan.
package scan

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"runtime"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/kmaras/veritree/pkg/veritree"
)

// Algorithm is the content digest algorithm used for every record.
const Algorithm = "sha256"

// DefaultFileTimeout bounds the hashing of a single file. A file that cannot
// be read within the timeout is recorded with an empty digest, the same as
// any other per-file I/O failure.
const DefaultFileTimeout = 30 * time.Second

// Scanner walks a directory tree and produces one FileRecord per regular
// file, in traversal order. The zero value scans sequentially with the
// default timeout and no logging.
type Scanner struct {
	// Workers bounds concurrent hashing. Zero selects min(GOMAXPROCS, 8);
	// one reproduces strictly sequential behavior.
	Workers int

	// FileTimeout bounds hashing of a single file. Zero selects
	// DefaultFileTimeout.
	FileTimeout time.Duration

	Logger *zap.Logger
}

// Scan enumerates every regular file under root, including hidden files, and
// hashes each one. Records are returned in traversal order; a record whose
// file could not be hashed has an empty Digest. Returns PathNotFoundError if
// root does not exist or is not a directory, or ctx.Err() on cancellation.
func (s *Scanner) Scan(ctx context.Context, root string) ([]veritree.FileRecord, error) {
	abs, err := ResolveRoot(root)
	if err != nil {
		return nil, err
	}

	paths, err := s.enumerate(ctx, abs)
	if err != nil {
		return nil, err
	}

	return s.hashAll(ctx, paths)
}

// ResolveRoot turns root into an absolute, symlink-resolved directory path.
// Returns PathNotFoundError if the path does not exist or is not a directory.
func ResolveRoot(root string) (string, error) {
	abs, err := filepath.Abs(root)
	if err != nil {
		return "", &veritree.PathNotFoundError{Path: root}
	}
	resolved, err := filepath.EvalSymlinks(abs)
	if err != nil {
		return "", &veritree.PathNotFoundError{Path: root}
	}
	info, err := os.Stat(resolved)
	if err != nil || !info.IsDir() {
		return "", &veritree.PathNotFoundError{Path: root}
	}
	return resolved, nil
}

// enumerate collects absolute paths of regular files in traversal order.
// Unreadable entries are logged and skipped; the walk itself never fails.
func (s *Scanner) enumerate(ctx context.Context, root string) ([]string, error) {
	var paths []string

	walkErr := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if cerr := ctx.Err(); cerr != nil {
			return cerr
		}
		if err != nil {
			s.logger().Debug("skipping unreadable entry",
				zap.String("path", path), zap.Error(err))
			return nil
		}
		if !d.Type().IsRegular() {
			return nil
		}
		paths = append(paths, path)
		return nil
	})
	if walkErr != nil {
		// Only cancellation escapes the walk callback.
		return nil, walkErr
	}

	return paths, nil
}

// hashAll fans the paths out over a bounded worker pool. Each worker writes
// into its preallocated slot, so the result preserves traversal order
// without a post-sort.
func (s *Scanner) hashAll(ctx context.Context, paths []string) ([]veritree.FileRecord, error) {
	records := make([]veritree.FileRecord, len(paths))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.workers())

	for i, path := range paths {
		i, path := i, path
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			digest, err := s.hashOne(gctx, path)
			if err != nil {
				if gctx.Err() != nil {
					return gctx.Err()
				}
				s.logger().Warn("file unreadable, recording without digest",
					zap.String("path", path), zap.Error(err))
				digest = ""
			}
			records[i] = veritree.FileRecord{
				Name:   filepath.Base(path),
				Path:   path,
				Digest: digest,
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return records, nil
}

// hashOne hashes a single file under the per-file timeout. A deadline error
// from a slow read surfaces as an ordinary hash failure unless the parent
// context was cancelled.
func (s *Scanner) hashOne(ctx context.Context, path string) (string, error) {
	fileCtx, cancel := context.WithTimeout(ctx, s.fileTimeout())
	defer cancel()

	digest, err := HashFile(fileCtx, path)
	if err != nil && errors.Is(err, context.DeadlineExceeded) && ctx.Err() == nil {
		return "", &timeoutError{path: path}
	}
	return digest, err
}

type timeoutError struct {
	path string
}

func (e *timeoutError) Error() string {
	return "hashing timed out: " + e.path
}

func (s *Scanner) workers() int {
	if s.Workers > 0 {
		return s.Workers
	}
	return min(runtime.GOMAXPROCS(0), 8)
}

func (s *Scanner) fileTimeout() time.Duration {
	if s.FileTimeout > 0 {
		return s.FileTimeout
	}
	return DefaultFileTimeout
}

func (s *Scanner) logger() *zap.Logger {
	if s.Logger != nil {
		return s.Logger
	}
	return zap.NewNop()
}
