package paths_test

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/globscope/globscope/internal/paths"
)

func TestExpandHome(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	assert.Equal(t, home, paths.ExpandHome("~"))
	assert.Equal(t, filepath.Join(home, "src"), paths.ExpandHome("~/src"))
}

func TestExpandHome_PassThrough(t *testing.T) {
	assert.Equal(t, "/abs/path", paths.ExpandHome("/abs/path"))
	assert.Equal(t, "rel/path", paths.ExpandHome("rel/path"))
	assert.Equal(t, "~user/x", paths.ExpandHome("~user/x"))
	assert.Equal(t, "", paths.ExpandHome(""))
}
