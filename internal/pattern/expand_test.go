package pattern_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/globscope/globscope/internal/pattern"
)

func TestExpand_NoGroupIsIdentity(t *testing.T) {
	in := []string{"*.go", "src/", "/README.md", "a?b"}
	assert.Equal(t, in, pattern.Expand(in))
}

func TestExpand_EmptyInput(t *testing.T) {
	assert.Empty(t, pattern.Expand(nil))
	assert.Empty(t, pattern.Expand([]string{}))
}

func TestExpand_SingleGroup(t *testing.T) {
	got := pattern.Expand([]string{"*.(go|md)"})
	assert.Equal(t, []string{"*.go", "*.md"}, got)
}

func TestExpand_TwoGroupsCrossProduct(t *testing.T) {
	// The rightmost group resolves first, which fixes the output order.
	got := pattern.Expand([]string{".*(cpp|hpp).(c|h)"})
	assert.Equal(t, []string{".*cpp.c", ".*hpp.c", ".*cpp.h", ".*hpp.h"}, got)
}

func TestExpand_ThreeWayAlternatives(t *testing.T) {
	got := pattern.Expand([]string{"src/(a|b|c).go"})
	assert.Equal(t, []string{"src/a.go", "src/b.go", "src/c.go"}, got)
}

func TestExpand_MixedRules(t *testing.T) {
	got := pattern.Expand([]string{"plain.txt", "(x|y)/"})
	assert.Equal(t, []string{"plain.txt", "x/", "y/"}, got)
}
