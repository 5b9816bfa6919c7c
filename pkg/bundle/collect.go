// File: pkg/bundle/collect.go
package bundle

import (
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"
)

// excludedDirs holds directory names that hold build output and are never bundled.
var excludedDirs = []string{"bin", "debug"}

// isExcludedDir reports whether a directory name is a build-output directory.
func isExcludedDir(name string) bool {
	for _, dir := range excludedDirs {
		if strings.EqualFold(name, dir) {
			return true
		}
	}
	return false
}

// isLinkToRegularFile reports whether d is a symlink that resolves to a regular file.
func isLinkToRegularFile(path string, d fs.DirEntry) bool {
	if d.Type()&fs.ModeSymlink == 0 {
		return false
	}
	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular()
}

// hasExcludedSegment reports whether any directory segment of path is a
// build-output directory.
func hasExcludedSegment(path string) bool {
	for _, segment := range strings.Split(filepath.ToSlash(path), "/") {
		if isExcludedDir(segment) {
			return true
		}
	}
	return false
}

// Collect walks root recursively and returns the absolute paths of all
// regular files, skipping any directory named bin or debug (any case).
// A root that itself lies under such a directory yields no files.
// The order of the result is the walk order.
func Collect(root string, logger *zap.Logger) ([]string, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	absRoot, err := filepath.Abs(root)
	if err != nil {
		return nil, &SourceNotFoundError{Path: root}
	}
	info, err := os.Stat(absRoot)
	if err != nil || !info.IsDir() {
		logger.Error("Source folder not found", zap.String("root", absRoot), zap.Error(err))
		return nil, &SourceNotFoundError{Path: absRoot}
	}

	if hasExcludedSegment(absRoot) {
		logger.Debug("Source folder is inside a build output directory", zap.String("root", absRoot))
		return nil, nil
	}

	logger.Debug("Starting file collection", zap.String("root", absRoot))

	var files []string
	err = filepath.WalkDir(absRoot, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			logger.Warn("Error accessing path during traversal", zap.String("path", path), zap.Error(err))
			if d != nil && d.IsDir() && path != absRoot {
				return filepath.SkipDir
			}
			if path == absRoot {
				return err
			}
			return nil
		}

		if d.IsDir() {
			if isExcludedDir(d.Name()) {
				logger.Debug("Skipping build output directory", zap.String("directory", path))
				return filepath.SkipDir
			}
			return nil
		}

		if !d.Type().IsRegular() && !isLinkToRegularFile(path, d) {
			logger.Debug("Skipping non-regular file", zap.String("path", path))
			return nil
		}

		files = append(files, path)
		return nil
	})
	if err != nil {
		logger.Error("Error during file traversal", zap.String("root", absRoot), zap.Error(err))
		return nil, &SourceNotFoundError{Path: absRoot}
	}

	logger.Debug("Completed file collection", zap.Int("files", len(files)))
	return files, nil
}
