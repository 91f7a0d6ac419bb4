// Package rules loads ignore-rule files and splits exception overrides
// from plain ignore rules.
package rules

import (
	"bufio"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"regexp"
	"strings"

	"github.com/globscope/globscope/internal/logging"
	"github.com/globscope/globscope/internal/paths"
)

// IgnoreFileError reports that the configured ignore-rule file does not
// exist. It is distinguishable from other filesystem errors so callers can
// choose to proceed with no extra ignore rules.
type IgnoreFileError struct {
	Path string
	Err  error
}

func (e *IgnoreFileError) Error() string {
	return fmt.Sprintf("ignore file %s: %v", e.Path, e.Err)
}

func (e *IgnoreFileError) Unwrap() error { return e.Err }

// A "#" marks a comment line even when indented.
var hashComment = regexp.MustCompile(`^\s*#`)

// Load reads one rule per line from the file at path, which may start with
// the "~" home shorthand. Lines are trimmed; blank lines, lines starting
// with "//", and "#" comment lines are skipped. Everything else is kept
// verbatim and in file order, including "!"-prefixed exception rules;
// splitting those off is the resolver's job.
func Load(path string) ([]string, error) {
	f, err := os.Open(paths.ExpandHome(path))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, &IgnoreFileError{Path: path, Err: err}
		}
		return nil, err
	}
	defer func() { _ = f.Close() }()

	var out []string
	s := bufio.NewScanner(f)
	for s.Scan() {
		line := strings.TrimSpace(s.Text())
		if line == "" || strings.HasPrefix(line, "//") || hashComment.MatchString(line) {
			continue
		}
		out = append(out, line)
	}
	if err := s.Err(); err != nil {
		return nil, fmt.Errorf("read ignore file %s: %w", path, err)
	}

	log := logging.GetLogger("rules")
	log.Debug().
		Str("path", path).
		Int("rules", len(out)).
		Msg("loaded ignore rules")
	return out, nil
}

// SplitExceptions partitions ignore rules by their sign: rules prefixed
// with "!" become exception rules (prefix stripped) that restore files the
// remaining ignore rules would exclude.
func SplitExceptions(all []string) (ignore, exceptions []string) {
	for _, r := range all {
		if strings.HasPrefix(r, "!") {
			exceptions = append(exceptions, r[1:])
		} else {
			ignore = append(ignore, r)
		}
	}
	return ignore, exceptions
}
