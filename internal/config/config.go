// Package config handles loading and managing mates configuration.
//
// Configuration comes from an optional TOML file plus environment
// variables. The environment wins: MATES_DIR, MATES_INDEX, MATES_GREP
// and MATES_EDITOR override the file, and EDITOR is the fallback editor
// when nothing else names one.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
)

// Config represents the mates configuration.
type Config struct {
	Data   DataConfig   `toml:"data"`
	Query  QueryConfig  `toml:"query"`
	Editor EditorConfig `toml:"editor"`

	// Computed path (not from config file)
	HomeDir string `toml:"-"`
}

// DataConfig holds contact storage locations.
type DataConfig struct {
	ContactsDir string `toml:"contacts_dir"` // vdir of .vcf files
	IndexFile   string `toml:"index_file"`   // flat rebuildable index
}

// QueryConfig holds the external filter configuration.
type QueryConfig struct {
	Filter string `toml:"filter"` // filter command, e.g. "grep" or "grep -i"
}

// EditorConfig holds the contact editor configuration.
type EditorConfig struct {
	Command string `toml:"command"`
}

// DefaultHome returns the default mates home directory.
// Respects the MATES_HOME environment variable.
func DefaultHome() string {
	if h := os.Getenv("MATES_HOME"); h != "" {
		return h
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ".mates"
	}
	return filepath.Join(home, ".mates")
}

// Load reads the configuration from the specified file.
// If path is empty, uses the default location (~/.mates/config.toml).
// A missing config file is fine; defaults and environment apply.
func Load(path string) (*Config, error) {
	homeDir := DefaultHome()

	if path == "" {
		path = filepath.Join(homeDir, "config.toml")
	}

	cfg := &Config{
		HomeDir: homeDir,
		// Defaults
		Data: DataConfig{
			ContactsDir: filepath.Join(homeDir, "contacts"),
			IndexFile:   filepath.Join(homeDir, "index"),
		},
		Query: QueryConfig{
			Filter: "grep",
		},
	}

	if _, err := os.Stat(path); err == nil {
		if _, err := toml.DecodeFile(path, cfg); err != nil {
			return nil, fmt.Errorf("decode config: %w", err)
		}
	}

	// Environment overrides, the original tool's configuration surface.
	if v := os.Getenv("MATES_DIR"); v != "" {
		cfg.Data.ContactsDir = v
	}
	if v := os.Getenv("MATES_INDEX"); v != "" {
		cfg.Data.IndexFile = v
	}
	if v := os.Getenv("MATES_GREP"); v != "" {
		cfg.Query.Filter = v
	}
	if v := os.Getenv("MATES_EDITOR"); v != "" {
		cfg.Editor.Command = v
	} else if cfg.Editor.Command == "" {
		cfg.Editor.Command = os.Getenv("EDITOR")
	}

	cfg.Data.ContactsDir = expandPath(cfg.Data.ContactsDir)
	cfg.Data.IndexFile = expandPath(cfg.Data.IndexFile)

	return cfg, nil
}

// ConfigFilePath returns the path of the config file in use.
func (c *Config) ConfigFilePath() string {
	return filepath.Join(c.HomeDir, "config.toml")
}

// FilterArgv splits the filter command into an argv slice for the
// query engine. The query string is appended by the engine, so flags in
// the command ("grep -i") keep working.
func (c *Config) FilterArgv() []string {
	return strings.Fields(c.Query.Filter)
}

// EnsureDirs creates the contacts directory and the index file's parent
// directory on first use.
func (c *Config) EnsureDirs() error {
	if err := os.MkdirAll(c.Data.ContactsDir, 0o755); err != nil {
		return err
	}
	return os.MkdirAll(filepath.Dir(c.Data.IndexFile), 0o755)
}

// RequireEditor returns the configured editor command, or an error
// telling the user how to set one.
func (c *Config) RequireEditor() (string, error) {
	if c.Editor.Command == "" {
		return "", fmt.Errorf("no editor configured: set editor.command in %s, or MATES_EDITOR, or EDITOR", c.ConfigFilePath())
	}
	return c.Editor.Command, nil
}

// expandPath expands ~ to the user's home directory.
func expandPath(path string) string {
	if path == "" {
		return path
	}
	if path[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return path
		}
		return filepath.Join(home, path[1:])
	}
	return path
}
