// File: pkg/wizard/validate.go
package wizard

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"codebundle/pkg/bundle"
	"codebundle/pkg/registry"
)

// ValidateOutputPath checks that input names a file whose directory exists,
// and returns its absolute path. Relative paths resolve against baseDir.
func ValidateOutputPath(input, baseDir string) (string, error) {
	input = strings.TrimSpace(input)
	if input == "" {
		return "", errors.New("output file name cannot be empty")
	}
	path := input
	if !filepath.IsAbs(path) {
		path = filepath.Join(baseDir, path)
	}
	path = filepath.Clean(path)

	info, err := os.Stat(filepath.Dir(path))
	if err != nil || !info.IsDir() {
		return "", fmt.Errorf("directory %s does not exist", filepath.Dir(path))
	}
	return path, nil
}

// ParseLanguages splits a comma-separated list of language tokens and checks
// every token against reg. "all" is accepted.
func ParseLanguages(input string, reg *registry.Registry) ([]string, error) {
	if strings.TrimSpace(input) == "" {
		return nil, errors.New("languages cannot be empty")
	}
	languages := bundle.NormalizeLanguages([]string{input})
	if len(languages) == 0 {
		return nil, errors.New("no language tokens found")
	}
	for _, lang := range languages {
		if !reg.IsValidToken(lang) {
			return nil, fmt.Errorf("%q is not a valid language (valid languages are: %s, or all)",
				lang, strings.Join(reg.Tokens(), ", "))
		}
	}
	return languages, nil
}

// ParseYesNo accepts "y" or "n" in any case.
func ParseYesNo(input string) (bool, error) {
	switch strings.ToLower(strings.TrimSpace(input)) {
	case "y":
		return true, nil
	case "n":
		return false, nil
	default:
		return false, errors.New("please enter 'y' or 'n'")
	}
}

// ParseSort accepts "name" or "type"; empty input selects name.
func ParseSort(input string) (bundle.SortKey, error) {
	if strings.TrimSpace(input) == "" {
		return bundle.SortByName, nil
	}
	key, err := bundle.ParseSortKey(input)
	if err != nil {
		return 0, errors.New("please enter 'name' or 'type'")
	}
	return key, nil
}

// ValidateResponseFileName requires a non-empty name and resolves it against baseDir.
func ValidateResponseFileName(input, baseDir string) (string, error) {
	input = strings.TrimSpace(input)
	if input == "" {
		return "", errors.New("response file name cannot be empty")
	}
	if filepath.IsAbs(input) {
		return input, nil
	}
	return filepath.Join(baseDir, input), nil
}
