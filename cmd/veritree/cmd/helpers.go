package cmd

import (
	"fmt"
	"os"
	"os/user"
	"runtime"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/kmaras/veritree/internal/scan"
	"github.com/kmaras/veritree/pkg/veritree"
)

// newScanner builds a Scanner from the global flags.
func newScanner() *scan.Scanner {
	return &scan.Scanner{
		Workers:     workers,
		FileTimeout: fileTimeout,
		Logger:      newLogger(),
	}
}

// newLogger maps the verbosity flags onto a console zap logger.
// Default shows per-file warnings; --verbose adds skip details; --quiet
// silences everything.
func newLogger() *zap.Logger {
	if quiet {
		return zap.NewNop()
	}
	level := zapcore.WarnLevel
	if verbose {
		level = zapcore.DebugLevel
	}
	cfg := zap.NewDevelopmentConfig()
	cfg.Level = zap.NewAtomicLevelAt(level)
	cfg.OutputPaths = []string{"stderr"}
	logger, err := cfg.Build()
	if err != nil {
		return zap.NewNop()
	}
	return logger
}

// newMetadata captures the run environment once at run start. The engine
// passes it through untouched; only reporters read it.
func newMetadata(mode, root string) veritree.Metadata {
	hostname, err := os.Hostname()
	if err != nil {
		hostname = "unknown"
	}
	username := "unknown"
	if u, err := user.Current(); err == nil && u.Username != "" {
		username = u.Username
	}
	return veritree.Metadata{
		GeneratedAt: time.Now().UTC(),
		Hostname:    hostname,
		Username:    username,
		OS:          runtime.GOOS + "/" + runtime.GOARCH,
		Root:        root,
		Algorithm:   scan.Algorithm,
		Mode:        mode,
	}
}

// openOutput returns the report destination. Empty path means stdout; the
// returned close func is a no-op in that case.
func openOutput(path string) (*os.File, func(), error) {
	if path == "" {
		return os.Stdout, func() {}, nil
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, nil, fmt.Errorf("creating output file %s: %w", path, err)
	}
	return f, func() { _ = f.Close() }, nil
}

// info prints a line unless quiet mode is active.
func info(format string, args ...any) {
	if !quiet {
		fmt.Printf(format+"\n", args...)
	}
}

// detail prints a line only in verbose mode.
func detail(format string, args ...any) {
	if verbose {
		fmt.Printf("  "+format+"\n", args...)
	}
}
