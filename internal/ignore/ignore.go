// Package ignore applies .gitignore semantics as an optional post-filter
// on resolved file sets.
package ignore

import (
	"os"
	"path/filepath"
	"strings"

	gitignore "github.com/sabhiram/go-gitignore"
)

// Matcher evaluates whether a resolved path should be dropped according to
// the root's .gitignore plus any extra patterns.
type Matcher struct {
	enabled bool
	gi      *gitignore.GitIgnore
}

// Config configures the Matcher.
type Config struct {
	// Root is the directory whose .gitignore (if any) is honored.
	Root string
	// Patterns is a list of extra gitignore-style patterns.
	Patterns []string
	// Enabled toggles matching on or off.
	Enabled bool
}

// New creates a new Matcher with the provided config. A missing .gitignore
// is not an error; the matcher then only applies cfg.Patterns.
func New(cfg Config) (*Matcher, error) {
	if !cfg.Enabled {
		return &Matcher{}, nil
	}

	var lines []string
	if cfg.Root != "" {
		data, err := os.ReadFile(filepath.Join(cfg.Root, ".gitignore"))
		if err == nil {
			lines = strings.Split(string(data), "\n")
		} else if !os.IsNotExist(err) {
			return nil, err
		}
	}
	lines = append(lines, cfg.Patterns...)

	return &Matcher{
		enabled: true,
		gi:      gitignore.CompileIgnoreLines(lines...),
	}, nil
}

// Match reports whether the root-relative path should be dropped.
func (m *Matcher) Match(rel string) bool {
	if !m.enabled || m.gi == nil {
		return false
	}
	return m.gi.MatchesPath(rel)
}

// Filter returns files with ignored paths removed, preserving order.
func (m *Matcher) Filter(files []string) []string {
	if !m.enabled {
		return files
	}
	out := make([]string, 0, len(files))
	for _, f := range files {
		if !m.Match(f) {
			out = append(out, f)
		}
	}
	return out
}

// Enabled reports whether matching is active.
func (m *Matcher) Enabled() bool { return m.enabled }
