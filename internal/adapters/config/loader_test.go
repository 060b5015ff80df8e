package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/scribibble/dpnd/internal/adapters/config"
	"github.com/scribibble/dpnd/internal/core/domain"
)

func TestLoader_Load_NoFileReturnsDefaults(t *testing.T) {
	loader := config.NewLoader()

	settings, err := loader.Load(t.TempDir())
	require.NoError(t, err)
	assert.Equal(t, "git", settings.GitBinary)
	assert.False(t, settings.Quiet)
	assert.False(t, settings.JSONLogs)
}

func TestLoader_Load_ParsesFile(t *testing.T) {
	dir := t.TempDir()
	content := `
git:
  binary: /usr/local/bin/git
  quiet: true
log:
  json: true
`
	createFile(t, dir, domain.ConfigFileName, content)

	loader := config.NewLoader()
	settings, err := loader.Load(dir)
	require.NoError(t, err)
	assert.Equal(t, "/usr/local/bin/git", settings.GitBinary)
	assert.True(t, settings.Quiet)
	assert.True(t, settings.JSONLogs)
}

func TestLoader_Load_WalksUpToLayoutRoot(t *testing.T) {
	rootDir := t.TempDir()
	createFile(t, rootDir, domain.ConfigFileName, "git:\n  quiet: true\n")

	// Component version directory two levels below the root.
	componentDir := filepath.Join(rootDir, "app", "latest")
	require.NoError(t, os.MkdirAll(componentDir, domain.DirPerm))

	loader := config.NewLoader()
	settings, err := loader.Load(componentDir)
	require.NoError(t, err)
	assert.True(t, settings.Quiet, "config at the layout root applies to components below")
}

func TestLoader_Load_Malformed(t *testing.T) {
	dir := t.TempDir()
	createFile(t, dir, domain.ConfigFileName, "git: [not a mapping")

	loader := config.NewLoader()
	_, err := loader.Load(dir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), domain.ErrConfigParseFailed.Error())
}

func createFile(t *testing.T, dir, name, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), domain.FilePerm))
}
