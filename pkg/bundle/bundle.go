// Package bundle collects source files from a directory tree, filters them
// by language, orders them, and concatenates them into a single file.
package bundle

import (
	"path/filepath"
	"time"

	"codebundle/pkg/registry"

	"go.uber.org/zap"
)

// Status is the non-error outcome of a run.
type Status int

const (
	StatusCreated Status = iota // The bundle was written.
	StatusNoFiles               // Nothing matched; the output was not touched.
)

// Result describes a completed run.
type Result struct {
	Status Status
	Output string // Absolute path of the bundle.
	Files  int    // Number of files written.
}

// Run bundles the files under root according to cfg. Fatal failures are
// returned as *SourceNotFoundError, *SourceReadError or *OutputWriteError.
func Run(root string, cfg Config, reg *registry.Registry, logger *zap.Logger) (Result, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	if reg == nil {
		reg = registry.Default()
	}
	startTime := time.Now()

	output, err := filepath.Abs(cfg.Output())
	if err != nil {
		return Result{}, &OutputWriteError{Path: cfg.Output(), Err: err}
	}
	cfg.output = output
	result := Result{Output: output}

	logger.Debug("Starting bundle",
		zap.String("root", root),
		zap.Strings("languages", cfg.Languages()),
		zap.Stringer("sort", cfg.Sort()))

	for _, lang := range cfg.Languages() {
		if !reg.IsValidToken(lang) {
			logger.Debug("Ignoring unknown language token", zap.String("token", lang))
		}
	}

	candidates, err := Collect(root, logger)
	if err != nil {
		return Result{}, err
	}
	candidates = withoutPath(candidates, output)

	selected := Select(candidates, cfg.Languages(), reg)
	if len(selected) == 0 {
		logger.Info("No code files found for the specified languages",
			zap.Int("candidates", len(candidates)))
		result.Status = StatusNoFiles
		return result, nil
	}

	ordered := Order(selected, cfg.Sort())

	written, err := Write(ordered, cfg, logger)
	if err != nil {
		return Result{}, err
	}

	result.Status = StatusCreated
	result.Files = written
	logger.Info("Bundle created",
		zap.String("outputFile", output),
		zap.Int("totalFiles", written),
		zap.Duration("elapsed", time.Since(startTime)))
	return result, nil
}

// withoutPath drops target from paths so an earlier bundle is never re-read.
func withoutPath(paths []string, target string) []string {
	kept := paths[:0:0]
	for _, p := range paths {
		if filepath.Clean(p) != filepath.Clean(target) {
			kept = append(kept, p)
		}
	}
	return kept
}
