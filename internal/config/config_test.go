package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("MONEYTRACK_CONFIG", filepath.Join(t.TempDir(), "missing.toml"))

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, "http://127.0.0.1:8080/", cfg.Server.BaseURL)
	require.Equal(t, 30, cfg.Server.PageSize)
	require.Equal(t, "2 Jan 2006", cfg.UI.DateFormat)
	require.Equal(t, "UTC", cfg.UI.Timezone)
	require.Equal(t, "info", cfg.Log.Level)
}

func TestLoadFromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	data := `
[server]
base_url = "https://money.example.com/"
page_size = 50

[ui]
timezone = "Europe/Zurich"

[log]
level = "debug"
`
	require.NoError(t, os.WriteFile(path, []byte(data), 0o644))
	t.Setenv("MONEYTRACK_CONFIG", path)

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, "https://money.example.com/", cfg.Server.BaseURL)
	require.Equal(t, 50, cfg.Server.PageSize)
	require.Equal(t, "Europe/Zurich", cfg.UI.Timezone)
	require.Equal(t, "debug", cfg.Log.Level)
}

func TestEnvOverridesFile(t *testing.T) {
	t.Setenv("MONEYTRACK_CONFIG", filepath.Join(t.TempDir(), "missing.toml"))
	t.Setenv("MONEYTRACK_SERVER_PAGE_SIZE", "10")

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, 10, cfg.Server.PageSize)
}
