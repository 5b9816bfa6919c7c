// File: pkg/bundle/writer.go
package bundle

import (
	"bufio"
	"bytes"
	"os"
	"strings"

	"go.uber.org/zap"
)

// Separator is the line written after each bundled file.
const Separator = "*****************************************************************"

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// Write streams paths, in order, into cfg.Output(), truncating any existing
// content. It stops at the first unreadable source and returns the number
// of files written. The output file is closed on every path; after an
// error its content is incomplete.
func Write(paths []string, cfg Config, logger *zap.Logger) (written int, err error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	outputPath := cfg.Output()
	logger.Debug("Writing bundle", zap.String("output", outputPath), zap.Int("files", len(paths)))

	outFile, err := os.Create(outputPath)
	if err != nil {
		logger.Error("Failed to create output file", zap.String("file", outputPath), zap.Error(err))
		return 0, &OutputWriteError{Path: outputPath, Err: err}
	}
	defer func() {
		if closeErr := outFile.Close(); closeErr != nil {
			logger.Error("Failed to close output file", zap.String("file", outputPath), zap.Error(closeErr))
			if err == nil {
				err = &OutputWriteError{Path: outputPath, Err: closeErr}
			}
		}
	}()

	bw := &lineWriter{w: bufio.NewWriter(outFile)}

	if author := cfg.Author(); strings.TrimSpace(author) != "" {
		bw.line("// Author: " + author)
	}

	for _, path := range paths {
		if cfg.IncludeNote() {
			bw.line("// Source: " + path)
		}

		content, readErr := os.ReadFile(path)
		if readErr != nil {
			logger.Error("Failed to read source file", zap.String("filePath", path), zap.Error(readErr))
			return written, &SourceReadError{Path: path, Err: readErr}
		}

		lines := SplitLines(string(bytes.TrimPrefix(content, utf8BOM)))
		if cfg.RemoveEmptyLines() {
			lines = RemoveBlank(lines)
		}
		for _, l := range lines {
			bw.line(l)
		}

		bw.line("")
		bw.line(Separator)
		bw.line("")

		if bw.err != nil {
			logger.Error("Failed to write content to bundle",
				zap.String("file", outputPath),
				zap.String("contentPath", path),
				zap.Error(bw.err))
			return written, &OutputWriteError{Path: outputPath, Err: bw.err}
		}
		written++
		logger.Debug("Bundled file", zap.String("filePath", path), zap.Int("lines", len(lines)))
	}

	if err := bw.w.Flush(); err != nil {
		logger.Error("Failed to flush output file", zap.String("file", outputPath), zap.Error(err))
		return written, &OutputWriteError{Path: outputPath, Err: err}
	}
	return written, nil
}

// lineWriter writes newline-terminated lines and keeps the first error.
type lineWriter struct {
	w   *bufio.Writer
	err error
}

func (lw *lineWriter) line(s string) {
	if lw.err != nil {
		return
	}
	if _, err := lw.w.WriteString(s); err != nil {
		lw.err = err
		return
	}
	lw.err = lw.w.WriteByte('\n')
}

// SplitLines splits text on "\r\n", "\n" or "\r". A trailing line break
// does not produce an extra empty line.
func SplitLines(text string) []string {
	var lines []string
	for len(text) > 0 {
		i := strings.IndexAny(text, "\r\n")
		if i < 0 {
			lines = append(lines, text)
			break
		}
		lines = append(lines, text[:i])
		if text[i] == '\r' && i+1 < len(text) && text[i+1] == '\n' {
			i++
		}
		text = text[i+1:]
	}
	return lines
}

// RemoveBlank drops lines that are empty or contain only whitespace.
func RemoveBlank(lines []string) []string {
	kept := lines[:0:0]
	for _, l := range lines {
		if strings.TrimSpace(l) != "" {
			kept = append(kept, l)
		}
	}
	return kept
}
