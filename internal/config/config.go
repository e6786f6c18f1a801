package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
)

const (
	defaultInterval = 5 // seconds between event polls

	configFile  = "config.json"
	walletsFile = "wallets.json"

	// PlaceholderProjectID is used when VAULT_PROJECT_ID is unset. Running
	// with it is a deployment misconfiguration, not a silent success — the
	// caller logs a warning.
	PlaceholderProjectID = "YOUR_PROJECT_ID"

	projectIDEnv = "VAULT_PROJECT_ID"
)

// Config holds all vaultctl configuration.
type Config struct {
	RPCURL        string `json:"rpc_url,omitempty"` // override for the chain's default RPC
	DefaultWallet string `json:"default_wallet"`
	WatchInterval int    `json:"watch_interval"` // seconds

	// ProjectID identifies this deployment to the RPC provider. Read from
	// the environment at startup, never persisted.
	ProjectID string `json:"-"`

	// internal: config dir path used for Save()
	configDir string
}

// Load reads config from dir (or creates defaults). dir defaults to
// ~/.vaultctl. A .env file in the working directory is honored.
func Load(dir string) (*Config, error) {
	godotenv.Load() //nolint:errcheck — .env is optional

	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("could not determine home dir: %w", err)
		}
		dir = filepath.Join(home, ".vaultctl")
	}

	if err := os.MkdirAll(dir, 0o700); err != nil {
		return nil, fmt.Errorf("could not create config dir: %w", err)
	}

	cfg := defaults(dir)

	path := filepath.Join(dir, configFile)
	data, err := os.ReadFile(path)
	if err == nil {
		if err := json.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config: %w", err)
		}
		cfg.configDir = dir
	} else if !os.IsNotExist(err) {
		return nil, fmt.Errorf("reading config: %w", err)
	}

	cfg.ProjectID = projectIDFromEnv()
	if cfg.WatchInterval <= 0 {
		cfg.WatchInterval = defaultInterval
	}

	return cfg, nil
}

// Save writes the config to disk.
func (c *Config) Save() error {
	if err := os.MkdirAll(c.configDir, 0o700); err != nil {
		return err
	}
	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(filepath.Join(c.configDir, configFile), data, 0o600)
}

// Dir returns the config directory.
func (c *Config) Dir() string {
	return c.configDir
}

// WalletsPath returns the path of the wallets file.
func (c *Config) WalletsPath() string {
	return filepath.Join(c.configDir, walletsFile)
}

// HasPlaceholderProjectID reports whether the provider project id fell back
// to the placeholder.
func (c *Config) HasPlaceholderProjectID() bool {
	return c.ProjectID == PlaceholderProjectID
}

// --- helpers ---

func defaults(dir string) *Config {
	return &Config{
		WatchInterval: defaultInterval,
		configDir:     dir,
	}
}

func projectIDFromEnv() string {
	if v := os.Getenv(projectIDEnv); v != "" {
		return v
	}
	return PlaceholderProjectID
}
