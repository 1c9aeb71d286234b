package config

import (
	"log/slog"
	"strings"
)

// Config is the top-level configuration
type Config struct {
	Discord DiscordConfig `json:"discord"`
	Log     LogConfig     `json:"log"`
}

// DiscordConfig holds the REST endpoint settings and an optional default bot token.
type DiscordConfig struct {
	Token     string `json:"token"`
	APIBase   string `json:"apiBase"`
	UserAgent string `json:"userAgent"`
}

type LogConfig struct {
	Level string `json:"level"` // debug, info, warn, error
}

// SlogLevel parses Level, falling back to info for unknown values.
func (c LogConfig) SlogLevel() slog.Level {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(strings.TrimSpace(c.Level))); err != nil {
		return slog.LevelInfo
	}
	return lvl
}

// DefaultConfig returns a Config with sensible defaults applied.
func DefaultConfig() *Config {
	return &Config{
		Discord: DiscordConfig{
			APIBase: "https://discord.com/api/v10",
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}
