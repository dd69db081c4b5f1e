package main

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "signetd.toml")
	blob := `
listen_addr = "0.0.0.0:9000"
wallet_addr = "aabbccddeeff00112233445566778899aabbccdd"
log_format = "json"
shutdown_timeout = "3s"
`
	require.NoError(t, os.WriteFile(path, []byte(blob), 0o600))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "0.0.0.0:9000", cfg.ListenAddr)
	assert.Equal(t, "aabbccddeeff00112233445566778899aabbccdd", cfg.WalletAddr)
	assert.Equal(t, "json", cfg.LogFormat)
	assert.Equal(t, 3*time.Second, cfg.ShutdownTimeout)

	// Keys absent from the file keep their defaults.
	def := DefaultConfig()
	assert.Equal(t, def.GenesisPath, cfg.GenesisPath)
	assert.Equal(t, def.LogLevel, cfg.LogLevel)
	assert.Equal(t, def.RunMode, cfg.RunMode)
}

func TestLoadConfigErrors(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "missing.toml"))
	assert.Error(t, err)

	path := filepath.Join(t.TempDir(), "signetd.toml")
	require.NoError(t, os.WriteFile(path, []byte(`shutdown_timeout = "not a duration"`), 0o600))
	_, err = LoadConfig(path)
	assert.Error(t, err)
}
