package config

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// DefaultPath returns ~/.discordop/config.json.
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(home, ".discordop", "config.json"), nil
}

// Load loads config from the default path (~/.discordop/config.json).
func Load() (*Config, error) {
	path, err := DefaultPath()
	if err != nil {
		return nil, err
	}
	return LoadFromFile(path)
}

// LoadFromFile loads config from a specific file path.
func LoadFromFile(path string) (*Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open config file %s: %w", path, err)
	}
	defer f.Close()
	return LoadFromReader(f)
}

// LoadFromReader loads config from an io.Reader, applying defaults and env overrides.
func LoadFromReader(r io.Reader) (*Config, error) {
	cfg := DefaultConfig()

	if err := json.NewDecoder(r).Decode(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	ApplyEnvOverrides(cfg)

	return cfg, nil
}

// ApplyEnvOverrides applies DISCORDOP_-prefixed environment variable overrides.
func ApplyEnvOverrides(cfg *Config) {
	envMap := map[string]*string{
		"DISCORDOP_DISCORD_TOKEN":     &cfg.Discord.Token,
		"DISCORDOP_DISCORD_APIBASE":   &cfg.Discord.APIBase,
		"DISCORDOP_DISCORD_USERAGENT": &cfg.Discord.UserAgent,
		"DISCORDOP_LOG_LEVEL":         &cfg.Log.Level,
	}

	for env, ptr := range envMap {
		if val := os.Getenv(env); val != "" {
			*ptr = val
		}
	}
}
