// File: pkg/bundle/config.go
package bundle

import (
	"errors"
	"fmt"
	"strings"

	"codebundle/pkg/registry"
)

// SortKey selects the ordering applied to files before they are bundled.
type SortKey int

const (
	SortByName SortKey = iota // Full path, ascending.
	SortByType                // Extension, then full path.
)

// String returns the command-line spelling of the key.
func (k SortKey) String() string {
	switch k {
	case SortByName:
		return "name"
	case SortByType:
		return "type"
	default:
		return fmt.Sprintf("SortKey(%d)", int(k))
	}
}

// ParseSortKey converts "name" or "type" (any case, surrounding space ignored) to a SortKey.
func ParseSortKey(s string) (SortKey, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "name":
		return SortByName, nil
	case "type":
		return SortByType, nil
	default:
		return 0, fmt.Errorf("%w %q: must be 'name' or 'type'", ErrInvalidSortOption, s)
	}
}

// Options is the raw input for NewConfig, as read from flags or a response file.
type Options struct {
	Languages        []string // Language tokens, or the single token "all".
	Output           string   // Destination path for the bundle.
	IncludeNote      bool     // Write a "// Source:" line before each file.
	Sort             string   // "name" or "type"; empty means "name".
	RemoveEmptyLines bool     // Drop blank and whitespace-only lines.
	Author           string   // Optional author written once at the top.
}

// Config is a validated, read-only bundle configuration.
type Config struct {
	languages        []string
	output           string
	includeNote      bool
	sort             SortKey
	removeEmptyLines bool
	author           string
}

// NewConfig validates opts and builds a Config.
// Language tokens are trimmed and lowercased; comma-separated values are split.
// Unknown tokens are kept here and dropped during selection.
func NewConfig(opts Options) (Config, error) {
	sortKey := SortByName
	if strings.TrimSpace(opts.Sort) != "" {
		k, err := ParseSortKey(opts.Sort)
		if err != nil {
			return Config{}, err
		}
		sortKey = k
	}

	languages := NormalizeLanguages(opts.Languages)
	if len(languages) == 0 {
		return Config{}, ErrNoLanguages
	}

	output := strings.TrimSpace(opts.Output)
	if output == "" {
		return Config{}, errors.New("output path cannot be empty")
	}

	return Config{
		languages:        languages,
		output:           output,
		includeNote:      opts.IncludeNote,
		sort:             sortKey,
		removeEmptyLines: opts.RemoveEmptyLines,
		author:           opts.Author,
	}, nil
}

// NormalizeLanguages splits comma-separated tokens, trims and lowercases
// them, and drops empty entries.
func NormalizeLanguages(tokens []string) []string {
	var out []string
	for _, t := range tokens {
		for _, part := range strings.Split(t, ",") {
			if part = registry.Normalize(part); part != "" {
				out = append(out, part)
			}
		}
	}
	return out
}

func (c Config) Languages() []string {
	return append([]string(nil), c.languages...)
}

func (c Config) Output() string { return c.output }
func (c Config) IncludeNote() bool { return c.includeNote }
func (c Config) Sort() SortKey { return c.sort }
func (c Config) RemoveEmptyLines() bool { return c.removeEmptyLines }
func (c Config) Author() string { return c.author }

// Args renders the configuration as bundle command-line arguments,
// excluding the subcommand name.
func (c Config) Args() []string {
	args := []string{
		"--output", c.output,
		"--language", strings.Join(c.languages, ","),
	}
	if c.includeNote {
		args = append(args, "--note")
	}
	args = append(args, "--sort", c.sort.String())
	if c.removeEmptyLines {
		args = append(args, "--remove-empty-lines")
	}
	if strings.TrimSpace(c.author) != "" {
		args = append(args, "--author", c.author)
	}
	return args
}
