package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// Config is the on-disk configuration loaded from framesmith.toml.
// Flags override file values; every field has a working zero value so
// running without a config file needs no setup.
type Config struct {
	Output OutputConfig `toml:"output"`
	Fonts  FontsConfig  `toml:"fonts"`
	Cache  CacheConfig  `toml:"cache"`
	Server ServerConfig `toml:"server"`
}

// OutputConfig controls where compiled units land.
type OutputConfig struct {
	// Dir is the target project directory for compile output.
	Dir string `toml:"dir"`

	// Target is the output target (only "react" for now).
	Target string `toml:"target"`
}

// FontsConfig controls remote font resolution.
type FontsConfig struct {
	// Provider overrides the font CSS endpoint base URL.
	Provider string `toml:"provider"`

	// Disable turns remote font resolution off entirely.
	Disable bool `toml:"disable"`
}

// CacheConfig controls the compiled-unit and HTTP response caches.
type CacheConfig struct {
	// Dir overrides the cache directory.
	Dir string `toml:"dir"`

	// Disable turns caching off.
	Disable bool `toml:"disable"`

	// RedisAddr switches the unit cache to a redis backend
	// (e.g. "redis://localhost:6379/0").
	RedisAddr string `toml:"redis_addr"`
}

// ServerConfig controls the serve command.
type ServerConfig struct {
	// Addr is the listen address (default ":8080").
	Addr string `toml:"addr"`

	// HistoryURI is a MongoDB connection string for compilation
	// history. Empty keeps history in memory.
	HistoryURI string `toml:"history_uri"`
}

// LoadConfig reads the config file at path. When path is empty, it
// searches ./framesmith.toml and ~/.config/framesmith/config.toml in
// that order. A missing file is not an error; a file that exists but
// fails to parse is.
func LoadConfig(path string) (Config, error) {
	var cfg Config

	if path != "" {
		if _, err := toml.DecodeFile(path, &cfg); err != nil {
			return Config{}, fmt.Errorf("load config %s: %w", path, err)
		}
		return cfg, nil
	}

	for _, candidate := range configCandidates() {
		if _, err := os.Stat(candidate); err != nil {
			continue
		}
		if _, err := toml.DecodeFile(candidate, &cfg); err != nil {
			return Config{}, fmt.Errorf("load config %s: %w", candidate, err)
		}
		return cfg, nil
	}
	return cfg, nil
}

// configCandidates lists the default config locations in precedence
// order.
func configCandidates() []string {
	candidates := []string{appName + ".toml"}
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		candidates = append(candidates, filepath.Join(configHome, appName, "config.toml"))
	} else if home, err := os.UserHomeDir(); err == nil {
		candidates = append(candidates, filepath.Join(home, ".config", appName, "config.toml"))
	}
	return candidates
}
