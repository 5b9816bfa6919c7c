// Package registry maps language tokens to the file extensions they select.
package registry

import (
	_ "embed"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// AllToken selects every extension known to the registry.
const AllToken = "all"

//go:embed languages.yaml
var defaultTable []byte

// Language is a single token-to-extension mapping.
type Language struct {
	Token     string `yaml:"token"`
	Extension string `yaml:"extension"`
}

type table struct {
	Languages []Language `yaml:"languages"`
}

// Registry is a closed, read-only set of language mappings.
type Registry struct {
	languages []Language
	byToken   map[string]string
	byExt     map[string]struct{}
}

var defaultRegistry = mustLoad(defaultTable)

// Default returns the registry built from the embedded language table.
func Default() *Registry {
	return defaultRegistry
}

func mustLoad(data []byte) *Registry {
	r, err := Load(data)
	if err != nil {
		panic(fmt.Sprintf("registry: invalid embedded language table: %v", err))
	}
	return r
}

// Load parses a YAML language table and validates it.
func Load(data []byte) (*Registry, error) {
	var t table
	if err := yaml.Unmarshal(data, &t); err != nil {
		return nil, fmt.Errorf("failed to parse language table: %w", err)
	}
	if len(t.Languages) == 0 {
		return nil, fmt.Errorf("language table is empty")
	}

	r := &Registry{
		byToken: make(map[string]string, len(t.Languages)),
		byExt:   make(map[string]struct{}, len(t.Languages)),
	}
	for i, lang := range t.Languages {
		token := Normalize(lang.Token)
		ext := strings.ToLower(strings.TrimSpace(lang.Extension))
		switch {
		case token == "":
			return nil, fmt.Errorf("entry %d: empty token", i+1)
		case token == AllToken:
			return nil, fmt.Errorf("entry %d: token %q is reserved", i+1, AllToken)
		case len(ext) < 2 || !strings.HasPrefix(ext, "."):
			return nil, fmt.Errorf("entry %d: extension %q must start with '.'", i+1, lang.Extension)
		}
		if _, dup := r.byToken[token]; dup {
			return nil, fmt.Errorf("entry %d: duplicate token %q", i+1, token)
		}
		r.byToken[token] = ext
		r.byExt[ext] = struct{}{}
		r.languages = append(r.languages, Language{Token: token, Extension: ext})
	}
	return r, nil
}

// Normalize trims and lowercases a language token.
func Normalize(token string) string {
	return strings.ToLower(strings.TrimSpace(token))
}

// ExtensionFor returns the extension for token. Unknown tokens report false.
func (r *Registry) ExtensionFor(token string) (string, bool) {
	ext, ok := r.byToken[Normalize(token)]
	return ext, ok
}

// IsValidToken reports whether token is a known language or the "all" sentinel.
func (r *Registry) IsValidToken(token string) bool {
	token = Normalize(token)
	if token == AllToken {
		return true
	}
	_, ok := r.byToken[token]
	return ok
}

// HasExtension reports whether ext (with leading dot) is recognized, ignoring case.
func (r *Registry) HasExtension(ext string) bool {
	_, ok := r.byExt[strings.ToLower(ext)]
	return ok
}

// Tokens returns the recognized tokens in table order.
func (r *Registry) Tokens() []string {
	tokens := make([]string, len(r.languages))
	for i, lang := range r.languages {
		tokens[i] = lang.Token
	}
	return tokens
}
