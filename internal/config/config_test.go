package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	assert.Equal(t, "text", cfg.Format)
	assert.Empty(t, cfg.Kind)
	assert.False(t, cfg.Interactive)
}

func TestLoadFromCLIArgs(t *testing.T) {
	args := []string{"--kind", "completion", "--format", "markdown", "a.json", "b.json"}
	cfg, err := Load(args)
	require.NoError(t, err)
	assert.Equal(t, "completion", cfg.Kind)
	assert.Equal(t, "markdown", cfg.Format)
	assert.Equal(t, []string{"a.json", "b.json"}, cfg.Files)
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("CHATLINT_KIND", "embedding")
	t.Setenv("CHATLINT_FORMAT", "markdown")
	cfg, err := Load(nil)
	require.NoError(t, err)
	assert.Equal(t, "embedding", cfg.Kind)
	assert.Equal(t, "markdown", cfg.Format)
}

func TestCLIOverridesEnv(t *testing.T) {
	t.Setenv("CHATLINT_KIND", "embedding")
	cfg, err := Load([]string{"--kind", "message"})
	require.NoError(t, err)
	assert.Equal(t, "message", cfg.Kind)
}

func TestLoadRejectsUnknownFormat(t *testing.T) {
	_, err := Load([]string{"--format", "xml"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown format")
}

func TestLoadYAML(t *testing.T) {
	dir := t.TempDir()
	yamlContent := []byte("kind: completion\nformat: markdown\n")
	path := filepath.Join(dir, "config.yml")
	require.NoError(t, os.WriteFile(path, yamlContent, 0644))

	cfg := DefaultConfig()
	require.NoError(t, cfg.loadYAML(path))
	assert.Equal(t, "completion", cfg.Kind)
	assert.Equal(t, "markdown", cfg.Format)
}

func TestLoadYAMLMissing(t *testing.T) {
	cfg := DefaultConfig()
	err := cfg.loadYAML("/nonexistent/path.yml")
	assert.Error(t, err)
}
