package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/globscope/globscope/internal/config"
)

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yml")
	content := `root: ~/src
rules:
  - "*.go"
  - src/
ignore:
  - vendor/
ignore_file: ~/.scopeignore
respect_gitignore: true
output: table
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, "~/src", cfg.Root)
	assert.Equal(t, []string{"*.go", "src/"}, cfg.Rules)
	assert.Equal(t, []string{"vendor/"}, cfg.Ignore)
	assert.Equal(t, "~/.scopeignore", cfg.IgnoreFile)
	assert.True(t, cfg.RespectGitignore)
	assert.Equal(t, "table", cfg.Output)
}

func TestLoad_MissingFileIsZeroConfig(t *testing.T) {
	cfg, err := config.Load(filepath.Join(t.TempDir(), "nope.yml"))
	require.NoError(t, err)
	assert.Equal(t, config.Config{}, cfg)
}

func TestLoad_Malformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(path, []byte(":\n\t-"), 0o644))

	_, err := config.Load(path)
	assert.Error(t, err)
}

func TestDefaultPaths(t *testing.T) {
	assert.True(t, filepath.IsAbs(config.DefaultPath()))
	assert.Contains(t, config.DefaultPath(), "globscope")
	assert.Contains(t, config.DefaultIgnoreFile(), "globscope")
}
