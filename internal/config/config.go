package config

import (
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

type Config struct {
	// Database settings
	Database DatabaseConfig `yaml:"database"`

	// Session snapshot storage
	Storage StorageConfig `yaml:"storage"`

	// Invoice text and numbering
	Invoice InvoiceConfig `yaml:"invoice"`

	// System share integration
	Share ShareConfig `yaml:"share"`

	// Logging
	Log LogConfig `yaml:"log"`
}

type DatabaseConfig struct {
	Path string `yaml:"path"` // Path to SQLite database
}

// Storage backends
const (
	BackendSQLite = "sqlite"
	BackendPebble = "pebble"
)

type StorageConfig struct {
	Backend       string        `yaml:"backend"`         // sqlite or pebble
	PebbleDir     string        `yaml:"pebble_dir"`      // Directory for the pebble store
	SnapshotKey   string        `yaml:"snapshot_key"`    // Fixed key the price list is stored under
	SessionMaxAge time.Duration `yaml:"session_max_age"` // Idle sessions older than this are purged
}

type InvoiceConfig struct {
	NumberPrefix string `yaml:"number_prefix"` // Invoice number prefix (e.g., "PZ")
	Currency     string `yaml:"currency"`      // Symbol appended to amounts
	Header       string `yaml:"header"`        // First line of the shared text
	Contact      string `yaml:"contact"`       // Contact phone numbers
	Note         string `yaml:"note"`          // Footer note
	OutputDir    string `yaml:"output_dir"`    // Directory for printable invoices
}

type ShareConfig struct {
	Command string `yaml:"command"` // System share command; empty means clipboard only
}

type LogConfig struct {
	Level  string `yaml:"level"`  // trace, debug, info, warn, error
	Format string `yaml:"format"` // console or json
	Output string `yaml:"output"` // stdout, stderr, or file path
}

// baseDir returns ~/.config/pizzabill
func baseDir() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		// Fallback to current directory if home dir unavailable
		homeDir = "."
	}
	return filepath.Join(homeDir, ".config", "pizzabill")
}

// DefaultConfigPath returns ~/.config/pizzabill/config.yaml
func DefaultConfigPath() string {
	return filepath.Join(baseDir(), "config.yaml")
}

// DefaultConfig returns sensible defaults
func DefaultConfig() *Config {
	dir := baseDir()

	return &Config{
		Database: DatabaseConfig{
			Path: filepath.Join(dir, "pizzabill.db"),
		},
		Storage: StorageConfig{
			Backend:       BackendSQLite,
			PebbleDir:     filepath.Join(dir, "pebble"),
			SnapshotKey:   "pizza-ingredients",
			SessionMaxAge: 12 * time.Hour,
		},
		Invoice: InvoiceConfig{
			NumberPrefix: "PZ",
			Currency:     "៛",
			Header:       "KH ផ្គត់ផ្គង់ភីហ្សា",
			Contact:      "098 828 128 | 086 828 128 | 071 828 128",
			Note:         "Purchased items are non-refundable",
			OutputDir:    filepath.Join(dir, "invoices"),
		},
		Log: LogConfig{
			Level:  "info",
			Format: "console",
			Output: filepath.Join(dir, "pizzabill.log"),
		},
	}
}

// Load loads config from the given path, or returns defaults if file doesn't exist
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	if _, err := os.Stat(path); os.IsNotExist(err) {
		cfg.applyEnv()
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}

	cfg.applyEnv()
	return cfg, nil
}

// applyEnv lets the environment override a few settings
func (c *Config) applyEnv() {
	if v := os.Getenv("PIZZABILL_LOG_LEVEL"); v != "" {
		c.Log.Level = v
	}
	if v := os.Getenv("PIZZABILL_SHARE_COMMAND"); v != "" {
		c.Share.Command = v
	}
}

// Save writes the config to the given path
func (c *Config) Save(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}

// EnsureDirectories creates all necessary directories (for database, invoices, etc.)
func (c *Config) EnsureDirectories() error {
	dirs := []string{
		filepath.Dir(c.Database.Path),
		c.Invoice.OutputDir,
	}
	if c.Storage.Backend == BackendPebble {
		dirs = append(dirs, c.Storage.PebbleDir)
	}

	for _, dir := range dirs {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return err
		}
	}

	return nil
}
