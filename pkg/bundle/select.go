package bundle

import (
	"path/filepath"
	"strings"

	"codebundle/pkg/registry"
)

// extensionOf returns the lowercased extension of path, including the dot.
func extensionOf(path string) string {
	return strings.ToLower(filepath.Ext(path))
}

// extensionMatcher resolves language tokens to a predicate over extensions.
// A single "all" token matches every extension in reg; unknown tokens,
// including "all" mixed with other tokens, are dropped. It returns nil
// when no token maps to an extension.
func extensionMatcher(languages []string, reg *registry.Registry) func(ext string) bool {
	if len(languages) == 1 && registry.Normalize(languages[0]) == registry.AllToken {
		return reg.HasExtension
	}

	exts := make(map[string]struct{})
	for _, lang := range languages {
		if ext, ok := reg.ExtensionFor(lang); ok {
			exts[ext] = struct{}{}
		}
	}
	if len(exts) == 0 {
		return nil
	}
	return func(ext string) bool {
		_, ok := exts[ext]
		return ok
	}
}

// Select returns the paths whose extension is selected by languages,
// preserving input order. An empty result is not an error.
func Select(paths, languages []string, reg *registry.Registry) []string {
	matches := extensionMatcher(languages, reg)
	if matches == nil {
		return nil
	}

	var selected []string
	for _, path := range paths {
		if matches(extensionOf(path)) {
			selected = append(selected, path)
		}
	}
	return selected
}
