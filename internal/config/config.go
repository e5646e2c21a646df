// Package config resolves the storage location for every command.
// The resolved Config is threaded explicitly through the CLI; nothing
// in the system reads a process-wide default.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"
)

// DefaultDatabase is used when no flag, env var, or config file
// provides a database path.
const DefaultDatabase = "shop.db"

// DefaultFile is the config file consulted when --config is not given.
// Its absence is not an error.
const DefaultFile = "shopkeeper.yaml"

// EnvDatabase overrides the config file but yields to the --db flag.
const EnvDatabase = "SHOPKEEPER_DB"

// Config holds resolved configuration for a single command invocation.
type Config struct {
	// Database is the path to the SQLite database file.
	Database string `yaml:"database"`
}

// Options carries the raw configuration inputs gathered from flags.
type Options struct {
	// File is the --config flag value. Empty means look for DefaultFile
	// and silently skip it if missing; non-empty files must exist.
	File string

	// FlagDB is the --db flag value. Highest precedence when non-empty.
	FlagDB string
}

// Load resolves configuration with precedence, highest first:
// --db flag, SHOPKEEPER_DB env var, config file, built-in default.
func Load(opts Options) (Config, error) {
	cfg := Config{Database: DefaultDatabase}

	path := opts.File
	explicit := path != ""
	if !explicit {
		path = DefaultFile
	}

	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("parse config %s: %w", path, err)
		}
		if cfg.Database == "" {
			cfg.Database = DefaultDatabase
		}
	case explicit || !errors.Is(err, fs.ErrNotExist):
		return Config{}, fmt.Errorf("read config %s: %w", path, err)
	}

	if env := os.Getenv(EnvDatabase); env != "" {
		cfg.Database = env
	}
	if opts.FlagDB != "" {
		cfg.Database = opts.FlagDB
	}

	return cfg, nil
}
