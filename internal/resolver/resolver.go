// Package resolver executes normalized rule globs against a directory tree
// and computes the final in-scope file set.
package resolver

import (
	"fmt"
	"io/fs"
	"os"
	"sort"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/globscope/globscope/internal/logging"
	"github.com/globscope/globscope/internal/paths"
	"github.com/globscope/globscope/internal/pattern"
	"github.com/globscope/globscope/internal/rules"
)

// GlobError reports a normalized glob expression that the filesystem
// globber rejected. Set names the rule set that produced the pattern:
// "include", "ignore" or "exception-ignore".
type GlobError struct {
	Set     string
	Pattern string
	Err     error
}

func (e *GlobError) Error() string {
	return fmt.Sprintf("%s glob %q: %v", e.Set, e.Pattern, e.Err)
}

func (e *GlobError) Unwrap() error { return e.Err }

// fileSet is a set of root-relative file paths.
type fileSet map[string]struct{}

// Resolve returns the sorted, deduplicated set of root-relative file paths
// selected by includeRules and not excluded by ignoreRules. An ignore rule
// prefixed with "!" is an exception that overrides every other ignore rule
// for the files it matches. Root may start with the "~" home shorthand.
//
// Each call reads the filesystem as it is at that moment; there is no
// snapshot isolation between the include and ignore passes.
func Resolve(root string, includeRules, ignoreRules []string) ([]string, error) {
	root = paths.ExpandHome(root)
	ignore, exceptions := rules.SplitExceptions(ignoreRules)

	log := logging.GetLogger("resolver")
	log.Debug().
		Str("root", root).
		Int("includeRules", len(includeRules)).
		Int("ignoreRules", len(ignore)).
		Int("exceptionRules", len(exceptions)).
		Msg("resolving file set")

	fsys := os.DirFS(root)
	included, err := globSet(fsys, "include", pattern.Normalize(includeRules))
	if err != nil {
		return nil, err
	}
	ignored, err := globSet(fsys, "ignore", pattern.Normalize(ignore))
	if err != nil {
		return nil, err
	}
	excepted, err := globSet(fsys, "exception-ignore", pattern.Normalize(exceptions))
	if err != nil {
		return nil, err
	}

	selected := keep(included, ignored, excepted)
	sort.Strings(selected)

	log.Debug().
		Int("included", len(included)).
		Int("ignored", len(ignored)).
		Int("selected", len(selected)).
		Msg("resolved file set")
	return selected, nil
}

// globSet runs every glob against fsys and unions the regular-file matches.
// Matches are slash-separated paths relative to the fsys root.
func globSet(fsys fs.FS, set string, globs []string) (fileSet, error) {
	files := make(fileSet)
	for _, g := range globs {
		matches, err := doublestar.Glob(fsys, g, doublestar.WithFilesOnly())
		if err != nil {
			return nil, &GlobError{Set: set, Pattern: g, Err: err}
		}
		for _, m := range matches {
			files[m] = struct{}{}
		}
	}
	return files, nil
}

// keep applies the exclusion algebra: a file survives when it is included
// and either not ignored at all, or ignored but restored by an exception
// rule. Exceptions strictly override ignores.
func keep(included, ignored, excepted fileSet) []string {
	out := make([]string, 0, len(included))
	for f := range included {
		if _, ig := ignored[f]; ig {
			if _, ex := excepted[f]; !ex {
				continue
			}
		}
		out = append(out, f)
	}
	return out
}
