// Package pattern implements the rule mini-language used to select files:
// bash-style alternation expansion and normalization of shorthand rules
// into recursive glob expressions.
package pattern

import (
	"regexp"
	"strings"
)

// orGroup matches a single non-nested alternation group "(a|b|c)" of
// word-character alternatives. The prefix capture is greedy, so the
// rightmost group in a rule is resolved first on each pass; that ordering
// is part of the contract (see Expand). Nested groups are unsupported.
var orGroup = regexp.MustCompile(`^(?P<pre>.*)\((?P<body>(?:\w+\|)*\w+)\)(?P<post>.*)$`)

// Expand replaces alternation groups with the cross-product of their
// alternatives, e.g. ".*(cpp|hpp).(c|h)" becomes
// ".*cpp.c", ".*hpp.c", ".*cpp.h", ".*hpp.h".
//
// One group is resolved per rule per pass, and passes repeat until no rule
// contains a group. Passes are bounded by the number of "(" runes in the
// input; each productive pass consumes at least one group per affected
// rule, so well-formed input always reaches the fixed point inside the
// bound, while pathological input stops cleanly instead of looping.
func Expand(rules []string) []string {
	bound := 0
	for _, r := range rules {
		bound += strings.Count(r, "(")
	}

	out := rules
	for pass := 0; pass <= bound; pass++ {
		next := make([]string, 0, len(out))
		expanded := false
		for _, rule := range out {
			m := orGroup.FindStringSubmatch(rule)
			if m == nil {
				next = append(next, rule)
				continue
			}
			pre, body, post := m[1], m[2], m[3]
			for _, alt := range strings.Split(body, "|") {
				next = append(next, pre+alt+post)
			}
			expanded = true
		}
		out = next
		if !expanded {
			break
		}
	}
	return out
}
