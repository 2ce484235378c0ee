package cmd

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/corsair-sc/corsair/internal/config"
	"github.com/corsair-sc/corsair/internal/infrastructure/sqlite"
)

// withConfig swaps the package config for the duration of a test.
func withConfig(t *testing.T, c config.Config) {
	t.Helper()
	old := cfg
	cfg = c
	t.Cleanup(func() {
		cfg = old
		if snapshotDB != nil {
			_ = snapshotDB.Close()
			snapshotDB = nil
		}
		dataSource = nil
	})
}

func TestBuildServices_DefaultsSucceed(t *testing.T) {
	dir := t.TempDir()
	c := config.Defaults()
	// Point the items file somewhere that does not exist; a missing user
	// file is not an error, the builtin dataset still loads.
	c.Data.ItemsFile = filepath.Join(dir, "items.yaml")
	c.Data.SnapshotDB = filepath.Join(dir, "snapshots.db")
	withConfig(t, c)

	services, err := buildServices()
	require.NoError(t, err)
	assert.NotNil(t, services.Items)
	assert.NotNil(t, services.Fleet)
	assert.NotNil(t, services.Analyzer)
	assert.Positive(t, services.Items.Len())
	// Trade data goes through the snapshot store, not the bare client.
	assert.NotNil(t, snapshotDB)
	assert.IsType(t, &sqlite.FallbackSource{}, dataSource)
}

func TestBuildServices_InvalidConfigFails(t *testing.T) {
	c := config.Defaults()
	c.UEX.BaseURL = ""
	withConfig(t, c)

	_, err := buildServices()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid configuration")
}

func TestBuildServices_BadItemsFileFails(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "items.yaml")
	require.NoError(t, os.WriteFile(path, []byte("items: [not a mapping"), 0o600))

	c := config.Defaults()
	c.Data.ItemsFile = path
	withConfig(t, c)

	_, err := buildServices()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "loading item registry")
}

func TestFormatAUEC(t *testing.T) {
	assert.Equal(t, "500", formatAUEC(500))
	assert.Equal(t, "12K", formatAUEC(12_300))
	assert.Equal(t, "2.5M", formatAUEC(2_500_000))
}
