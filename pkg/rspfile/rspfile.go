// Package rspfile reads and writes response files: a saved line of
// shell-style command-line arguments that can be replayed with @path.
package rspfile

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"mvdan.cc/sh/v3/shell"
	"mvdan.cc/sh/v3/syntax"
)

// Prefix marks a command-line argument as a response file reference.
const Prefix = "@"

// Encode quotes each argument so that Decode returns it unchanged, and
// joins them into a single line.
func Encode(args []string) (string, error) {
	quoted := make([]string, len(args))
	for i, arg := range args {
		q, err := syntax.Quote(arg, syntax.LangBash)
		if err != nil {
			return "", fmt.Errorf("cannot quote argument %q: %w", arg, err)
		}
		quoted[i] = q
	}
	return strings.Join(quoted, " "), nil
}

// Decode splits response file content into arguments using shell quoting
// rules. Variables are never read from the environment.
func Decode(content string) ([]string, error) {
	fields, err := shell.Fields(content, func(string) string { return "" })
	if err != nil {
		return nil, fmt.Errorf("failed to parse response file: %w", err)
	}
	return fields, nil
}

// Write encodes args and stores them in path as one line.
func Write(path string, args []string) error {
	line, err := Encode(args)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, []byte(line), 0o644); err != nil {
		return fmt.Errorf("failed to write response file: %w", err)
	}
	return nil
}

// Read loads and decodes the response file at path.
func Read(path string) ([]string, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read response file: %w", err)
	}
	return Decode(string(content))
}

// Expand replaces every "@path" argument with the arguments stored in that
// response file. Relative paths resolve against baseDir. Arguments coming
// from a response file are not expanded again.
func Expand(args []string, baseDir string) ([]string, error) {
	var out []string
	for _, arg := range args {
		if !strings.HasPrefix(arg, Prefix) || len(arg) == len(Prefix) {
			out = append(out, arg)
			continue
		}
		path := strings.TrimPrefix(arg, Prefix)
		if !filepath.IsAbs(path) {
			path = filepath.Join(baseDir, path)
		}
		expanded, err := Read(path)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", arg, err)
		}
		out = append(out, expanded...)
	}
	return out, nil
}
