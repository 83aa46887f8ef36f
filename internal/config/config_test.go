package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_MissingFileReturnsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)

	assert.Equal(t, BackendSQLite, cfg.Storage.Backend)
	assert.Equal(t, "pizza-ingredients", cfg.Storage.SnapshotKey)
	assert.Equal(t, 12*time.Hour, cfg.Storage.SessionMaxAge)
	assert.Equal(t, "PZ", cfg.Invoice.NumberPrefix)
	assert.Equal(t, "៛", cfg.Invoice.Currency)
}

func TestLoad_OverridesFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	data := `
storage:
  backend: pebble
  session_max_age: 30m
invoice:
  number_prefix: INV
share:
  command: termux-share
`
	require.NoError(t, os.WriteFile(path, []byte(data), 0644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, BackendPebble, cfg.Storage.Backend)
	assert.Equal(t, 30*time.Minute, cfg.Storage.SessionMaxAge)
	assert.Equal(t, "INV", cfg.Invoice.NumberPrefix)
	assert.Equal(t, "termux-share", cfg.Share.Command)
	// untouched keys keep their defaults
	assert.Equal(t, "pizza-ingredients", cfg.Storage.SnapshotKey)
	assert.Equal(t, "Purchased items are non-refundable", cfg.Invoice.Note)
}

func TestLoad_InvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("storage: [oops"), 0644))

	_, err := Load(path)
	assert.Error(t, err)
}

func TestSave_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")
	cfg := DefaultConfig()
	cfg.Invoice.Contact = "012 345 678"

	require.NoError(t, cfg.Save(path))

	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "012 345 678", loaded.Invoice.Contact)
	assert.Equal(t, cfg.Storage.SessionMaxAge, loaded.Storage.SessionMaxAge)
}

func TestLoad_EnvOverride(t *testing.T) {
	t.Setenv("PIZZABILL_LOG_LEVEL", "debug")

	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)
	assert.Equal(t, "debug", cfg.Log.Level)
}
