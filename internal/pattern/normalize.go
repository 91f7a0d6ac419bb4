package pattern

import "strings"

// tailShape classifies the trailing directory shorthand of a rule.
type tailShape int

const (
	tailFile      tailShape = iota // "xx": names a file, no rewrite
	tailDir                        // "xx/": all files under the directory
	tailTree                       // "xx/**": same, via explicit doublestar
	tailTreeSlash                  // "xx/**/": same, trailing slash variant
)

func classifyTail(rule string) tailShape {
	switch {
	case strings.HasSuffix(rule, "/**/"):
		return tailTreeSlash
	case strings.HasSuffix(rule, "/**"):
		return tailTree
	case strings.HasSuffix(rule, "/"):
		return tailDir
	}
	return tailFile
}

// rewriteTail completes directory shorthands so that every shape resolves
// to "<dir>/**/*" (all files recursively below the directory).
func rewriteTail(rule string) string {
	switch classifyTail(rule) {
	case tailDir:
		return rule + "**/*"
	case tailTree:
		return rule + "/*"
	case tailTreeSlash:
		return rule + "*"
	}
	return rule
}

// Normalize expands alternations and rewrites each rule into canonical
// recursive glob expressions.
//
// A rule with a leading "/" is root-relative: the slash is stripped and the
// rule matches only from the root. Any other rule matches anywhere below
// the root and may name either a file or a directory, so it produces two
// globs: "**/<rule>/**/*" (files below a directory of that name) followed
// by "**/<rule>" itself. Empty rewrites are dropped.
func Normalize(rules []string) []string {
	expanded := Expand(rules)
	globs := make([]string, 0, len(expanded)*2)
	for _, rule := range expanded {
		if rule == "" {
			continue
		}
		rule = rewriteTail(rule)

		if strings.HasPrefix(rule, "/") {
			rule = rule[1:]
		} else {
			rule = "**/" + rule
			globs = append(globs, rule+"/**/*")
		}

		if rule != "" {
			globs = append(globs, rule)
		}
	}
	return globs
}
