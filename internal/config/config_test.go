package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Default(t *testing.T) {
	// Run from a directory without a default config file.
	chdir(t, t.TempDir())

	cfg, err := Load(Options{})
	require.NoError(t, err)
	assert.Equal(t, DefaultDatabase, cfg.Database)
}

func TestLoad_FromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "shopkeeper.yaml")
	require.NoError(t, os.WriteFile(path, []byte("database: /var/lib/shop/shop.db\n"), 0644))

	cfg, err := Load(Options{File: path})
	require.NoError(t, err)
	assert.Equal(t, "/var/lib/shop/shop.db", cfg.Database)
}

func TestLoad_DefaultFilePickedUpWhenPresent(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, DefaultFile), []byte("database: from-file.db\n"), 0644))
	chdir(t, dir)

	cfg, err := Load(Options{})
	require.NoError(t, err)
	assert.Equal(t, "from-file.db", cfg.Database)
}

func TestLoad_FlagWins(t *testing.T) {
	path := filepath.Join(t.TempDir(), "shopkeeper.yaml")
	require.NoError(t, os.WriteFile(path, []byte("database: from-file.db\n"), 0644))
	t.Setenv(EnvDatabase, "from-env.db")

	cfg, err := Load(Options{File: path, FlagDB: "from-flag.db"})
	require.NoError(t, err)
	assert.Equal(t, "from-flag.db", cfg.Database)
}

func TestLoad_EnvBeatsFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "shopkeeper.yaml")
	require.NoError(t, os.WriteFile(path, []byte("database: from-file.db\n"), 0644))
	t.Setenv(EnvDatabase, "from-env.db")

	cfg, err := Load(Options{File: path})
	require.NoError(t, err)
	assert.Equal(t, "from-env.db", cfg.Database)
}

func TestLoad_ExplicitMissingFileErrors(t *testing.T) {
	_, err := Load(Options{File: filepath.Join(t.TempDir(), "nope.yaml")})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "read config")
}

func TestLoad_MissingDefaultFileIgnored(t *testing.T) {
	chdir(t, t.TempDir())

	cfg, err := Load(Options{})
	require.NoError(t, err)
	assert.Equal(t, DefaultDatabase, cfg.Database)
}

func TestLoad_MalformedYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "shopkeeper.yaml")
	require.NoError(t, os.WriteFile(path, []byte("database: [unclosed\n"), 0644))

	_, err := Load(Options{File: path})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse config")
}

func TestLoad_EmptyFileFallsBackToDefault(t *testing.T) {
	path := filepath.Join(t.TempDir(), "shopkeeper.yaml")
	require.NoError(t, os.WriteFile(path, []byte(""), 0644))

	cfg, err := Load(Options{File: path})
	require.NoError(t, err)
	assert.Equal(t, DefaultDatabase, cfg.Database)
}

// chdir switches the working directory for the test and restores it after.
func chdir(t *testing.T, dir string) {
	t.Helper()
	old, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { os.Chdir(old) })
}
