package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/codetidy/decomment/internal/config"
)

// chdir is t.Chdir from Go 1.24, inlined for older toolchains.
func chdir(t *testing.T, dir string) {
	t.Helper()
	old, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(old) })
}

func TestLoadDefaults(t *testing.T) {
	chdir(t, t.TempDir())

	s, err := config.Load("")
	require.NoError(t, err)
	assert.Equal(t, "", s.RulesPath)
	assert.False(t, s.NoColor)
	assert.True(t, s.Backups)
}

func TestLoadConfigFile(t *testing.T) {
	dir := t.TempDir()
	cfgFile := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(cfgFile, []byte(`
rules_path: /etc/decomment/rules
no_color: true
backups: false
`), 0o644))

	s, err := config.Load(cfgFile)
	require.NoError(t, err)
	assert.Equal(t, "/etc/decomment/rules", s.RulesPath)
	assert.True(t, s.NoColor)
	assert.False(t, s.Backups)
}

func TestLoadMissingExplicitFile(t *testing.T) {
	_, err := config.Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
}

func TestLoadEnvironmentOverride(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv("DECOMMENT_NO_COLOR", "true")
	t.Setenv("DECOMMENT_RULES_PATH", "/tmp/rules.yaml")

	s, err := config.Load("")
	require.NoError(t, err)
	assert.True(t, s.NoColor)
	assert.Equal(t, "/tmp/rules.yaml", s.RulesPath)
}
