package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load(t.TempDir())
	require.NoError(t, err)
	assert.Empty(t, cfg.RPCURL)
	assert.Empty(t, cfg.DefaultWallet)
	assert.Equal(t, 5, cfg.WatchInterval)
}

func TestLoad_CreatesDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", ".vaultctl")
	_, err := Load(dir)
	require.NoError(t, err)
	info, err := os.Stat(dir)
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}

func TestSaveAndReload(t *testing.T) {
	dir := t.TempDir()
	cfg, err := Load(dir)
	require.NoError(t, err)

	cfg.RPCURL = "https://rpc.example"
	cfg.DefaultWallet = "main"
	cfg.WatchInterval = 9
	require.NoError(t, cfg.Save())

	reloaded, err := Load(dir)
	require.NoError(t, err)
	assert.Equal(t, "https://rpc.example", reloaded.RPCURL)
	assert.Equal(t, "main", reloaded.DefaultWallet)
	assert.Equal(t, 9, reloaded.WatchInterval)
}

func TestLoad_BadInterval(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.json"),
		[]byte(`{"watch_interval": -3}`), 0o600))

	cfg, err := Load(dir)
	require.NoError(t, err)
	assert.Equal(t, 5, cfg.WatchInterval, "non-positive interval resets to default")
}

func TestLoad_CorruptFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.json"),
		[]byte("{not json"), 0o600))

	_, err := Load(dir)
	assert.Error(t, err)
}

func TestProjectID_FromEnv(t *testing.T) {
	t.Setenv("VAULT_PROJECT_ID", "pid-123")
	cfg, err := Load(t.TempDir())
	require.NoError(t, err)
	assert.Equal(t, "pid-123", cfg.ProjectID)
	assert.False(t, cfg.HasPlaceholderProjectID())
}

func TestProjectID_PlaceholderFallback(t *testing.T) {
	t.Setenv("VAULT_PROJECT_ID", "")
	cfg, err := Load(t.TempDir())
	require.NoError(t, err)
	assert.Equal(t, PlaceholderProjectID, cfg.ProjectID)
	assert.True(t, cfg.HasPlaceholderProjectID())
}

func TestProjectID_NeverPersisted(t *testing.T) {
	t.Setenv("VAULT_PROJECT_ID", "pid-123")
	dir := t.TempDir()
	cfg, err := Load(dir)
	require.NoError(t, err)
	require.NoError(t, cfg.Save())

	data, err := os.ReadFile(filepath.Join(dir, "config.json"))
	require.NoError(t, err)
	assert.NotContains(t, string(data), "pid-123")
}

func TestWalletsPath(t *testing.T) {
	dir := t.TempDir()
	cfg, err := Load(dir)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "wallets.json"), cfg.WalletsPath())
}
