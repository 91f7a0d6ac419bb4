// Package rg renders rule sets as ripgrep -g flags so the host tool can
// hand scope decisions to ripgrep natively.
package rg

import (
	"fmt"
	"os"
	"strings"
)

// ignoreLines collects the unique non-blank lines without a "#" from the
// given ignore files, in first-seen order. The files are in ripgrep's own
// ignore format, so no rule normalization is applied. Missing files are
// silently skipped.
func ignoreLines(paths []string) []string {
	seen := make(map[string]struct{})
	var lines []string
	for _, p := range paths {
		data, err := os.ReadFile(p)
		if err != nil {
			continue
		}
		for _, line := range strings.Split(string(data), "\n") {
			if strings.TrimSpace(line) == "" || strings.Contains(line, "#") {
				continue
			}
			if _, dup := seen[line]; dup {
				continue
			}
			seen[line] = struct{}{}
			lines = append(lines, line)
		}
	}
	return lines
}

// IgnoreGlobsString renders the patterns of the given ignore files as
// negated glob flags joined by spaces, e.g. `-g "!build/"`.
func IgnoreGlobsString(paths []string) string {
	var flags []string
	for _, l := range ignoreLines(paths) {
		flags = append(flags, fmt.Sprintf(`-g "!%s"`, l))
	}
	return strings.Join(flags, " ")
}

// IgnoreGlobsArgs renders the same flags as a flat argument list suitable
// for exec: ["-g", "!build/", ...].
func IgnoreGlobsArgs(paths []string) []string {
	var args []string
	for _, l := range ignoreLines(paths) {
		args = append(args, "-g", "!"+l)
	}
	return args
}

// isEverything reports whether a glob matches all files. Ripgrep already
// matches everything by default, and passing these explicitly makes it stop
// applying its built-in ignore files, so they are never forwarded.
func isEverything(glob string) bool {
	return glob == "*" || glob == "**/*"
}

// RuleGlobsString renders normalized include globs as positive glob flags
// joined by spaces, e.g. `-g "src/**/*"`. Match-everything globs are
// dropped (see isEverything).
func RuleGlobsString(globs []string) string {
	var flags []string
	for _, g := range globs {
		if isEverything(g) {
			continue
		}
		flags = append(flags, fmt.Sprintf(`-g "%s"`, g))
	}
	return strings.Join(flags, " ")
}

// RuleGlobsArgs renders the same flags as a flat argument list.
func RuleGlobsArgs(globs []string) []string {
	var args []string
	for _, g := range globs {
		if isEverything(g) {
			continue
		}
		args = append(args, "-g", g)
	}
	return args
}
