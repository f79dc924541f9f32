package main

import (
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"linetrack.dev/internal/appconf"
)

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := loadConfig(nil, io.Discard)
	require.NoError(t, err)
	assert.Equal(t, appconf.Default(), cfg)
}

func TestLoadConfigFlagsOverrideFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("port: 8080\napiKeys: [file-key]\n"), 0o600))

	cfg, err := loadConfig([]string{
		"-config", path,
		"-port", "9090",
		"-catalog", "gtfs",
		"-gtfs-url", "feed.zip",
	}, io.Discard)
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Port, "flag wins over file")
	assert.Equal(t, []string{"file-key"}, cfg.ApiKeys, "unset flags keep file values")
	assert.Equal(t, appconf.SourceGTFS, cfg.Catalog.Source)
	assert.Equal(t, "feed.zip", cfg.Catalog.GtfsURL)
}

func TestLoadConfigRejectsInvalid(t *testing.T) {
	_, err := loadConfig([]string{"-catalog", "gtfs"}, io.Discard)
	assert.ErrorIs(t, err, appconf.ErrInvalidConfig)

	_, err = loadConfig([]string{"-port", "nope"}, io.Discard)
	assert.Error(t, err)

	_, err = loadConfig([]string{"-api-keys", ""}, io.Discard)
	assert.ErrorIs(t, err, appconf.ErrInvalidConfig)
}
