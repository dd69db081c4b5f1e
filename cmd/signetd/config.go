package main

import (
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/signet-labs/signet/errors"
)

// Config carries all daemon settings.
type Config struct {
	// ListenAddr is the address the HTTP API binds to.
	ListenAddr string
	// GenesisPath points to the genesis file applied on first start.
	GenesisPath string
	// WalletAddr is the hex address of the shared wallet executed
	// proposals spend from.
	WalletAddr string
	// LogLevel is a logrus level name.
	LogLevel string
	// LogFormat is either "text" or "json".
	LogFormat string
	// RunMode is a gin mode, "debug" or "release".
	RunMode string
	// ShutdownTimeout bounds the graceful shutdown.
	ShutdownTimeout time.Duration
}

// DefaultConfig returns the configuration used when no file overwrites
// it.
func DefaultConfig() Config {
	return Config{
		ListenAddr:      "localhost:8545",
		GenesisPath:     "genesis.json",
		LogLevel:        "info",
		LogFormat:       "text",
		RunMode:         "release",
		ShutdownTimeout: 10 * time.Second,
	}
}

type fileConfig struct {
	ListenAddr      string `toml:"listen_addr"`
	GenesisPath     string `toml:"genesis_path"`
	WalletAddr      string `toml:"wallet_addr"`
	LogLevel        string `toml:"log_level"`
	LogFormat       string `toml:"log_format"`
	RunMode         string `toml:"run_mode"`
	ShutdownTimeout string `toml:"shutdown_timeout"`
}

// LoadConfig overlays the TOML file at path over the defaults. Only keys
// present in the file overwrite the default values.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()

	var raw fileConfig
	meta, err := toml.DecodeFile(path, &raw)
	if err != nil {
		return Config{}, errors.Wrap(err, "load config")
	}

	if meta.IsDefined("listen_addr") {
		cfg.ListenAddr = strings.TrimSpace(raw.ListenAddr)
	}
	if meta.IsDefined("genesis_path") {
		cfg.GenesisPath = strings.TrimSpace(raw.GenesisPath)
	}
	if meta.IsDefined("wallet_addr") {
		cfg.WalletAddr = strings.TrimSpace(raw.WalletAddr)
	}
	if meta.IsDefined("log_level") {
		cfg.LogLevel = strings.TrimSpace(raw.LogLevel)
	}
	if meta.IsDefined("log_format") {
		cfg.LogFormat = strings.TrimSpace(raw.LogFormat)
	}
	if meta.IsDefined("run_mode") {
		cfg.RunMode = strings.TrimSpace(raw.RunMode)
	}
	if meta.IsDefined("shutdown_timeout") {
		d, err := time.ParseDuration(strings.TrimSpace(raw.ShutdownTimeout))
		if err != nil {
			return Config{}, errors.Wrap(err, "parse shutdown_timeout")
		}
		cfg.ShutdownTimeout = d
	}

	return cfg, nil
}
