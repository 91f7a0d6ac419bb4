package rules_test

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/globscope/globscope/internal/rules"
)

func writeRuleFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "scopeignore")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad_SkipsCommentsAndBlanks(t *testing.T) {
	path := writeRuleFile(t, "  # comment\n\n//old-rule\nvalid.txt\n")

	got, err := rules.Load(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"valid.txt"}, got)
}

func TestLoad_KeepsExceptionLinesVerbatim(t *testing.T) {
	path := writeRuleFile(t, "build/\n!build/keep.txt\n")

	got, err := rules.Load(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"build/", "!build/keep.txt"}, got)
}

func TestLoad_TrimsSurroundingWhitespace(t *testing.T) {
	path := writeRuleFile(t, "  *.log  \n")

	got, err := rules.Load(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"*.log"}, got)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := rules.Load(filepath.Join(t.TempDir(), "nope"))
	require.Error(t, err)

	var ifErr *rules.IgnoreFileError
	assert.True(t, errors.As(err, &ifErr), "want *IgnoreFileError, got %T", err)
	assert.True(t, errors.Is(err, fs.ErrNotExist), "should wrap the underlying not-exist error")
}

func TestLoad_ExpandsHomeInPath(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	require.NoError(t, os.WriteFile(filepath.Join(home, "scopeignore"), []byte("*.tmp\n"), 0o644))

	got, err := rules.Load("~/scopeignore")
	require.NoError(t, err)
	assert.Equal(t, []string{"*.tmp"}, got)
}

func TestSplitExceptions(t *testing.T) {
	ignore, exceptions := rules.SplitExceptions([]string{"build/", "!build/keep.txt", "*.log"})
	assert.Equal(t, []string{"build/", "*.log"}, ignore)
	assert.Equal(t, []string{"build/keep.txt"}, exceptions)
}

func TestSplitExceptions_Empty(t *testing.T) {
	ignore, exceptions := rules.SplitExceptions(nil)
	assert.Empty(t, ignore)
	assert.Empty(t, exceptions)
}
