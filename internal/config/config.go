package config

import (
	"os"
	"path/filepath"
	"time"

	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

type Config struct {
	Playlist string `koanf:"playlist"` // path to the playlist TOML document

	// Playback tick settings
	Playback PlaybackConfig `koanf:"playback"`

	// Rotating ticker bar settings
	Ticker TickerConfig `koanf:"ticker"`
}

// PlaybackConfig holds the boundary-enforcement tick settings.
type PlaybackConfig struct {
	TickMillis int `koanf:"tick_millis"` // enforcement cadence (50-5000, default: 500)
}

// TickerConfig holds the rotating message bar configuration.
type TickerConfig struct {
	Messages       []string `koanf:"messages"`        // messages to rotate through
	IntervalMillis int      `koanf:"interval_millis"` // rotation interval (default: 5000)
}

func Load() (*Config, error) {
	k := koanf.New(".")

	// Try config files in order of priority (last wins)
	configPaths := getConfigPaths()

	for _, path := range configPaths {
		if _, err := os.Stat(path); err == nil {
			if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
				return nil, err
			}
		}
	}

	cfg := &Config{
		Playlist: "playlist.toml",
	}

	if err := k.Unmarshal("", cfg); err != nil {
		return nil, err
	}

	// Expand ~ in the playlist path
	if cfg.Playlist != "" {
		cfg.Playlist = expandPath(cfg.Playlist)
	}

	return cfg, nil
}

func getConfigPaths() []string {
	paths := []string{}

	// 1. ~/.config/streamradio/config.toml
	if home, err := os.UserHomeDir(); err == nil {
		paths = append(paths, filepath.Join(home, ".config", "streamradio", "config.toml"))
	}

	// 2. ./config.toml (pwd, highest priority)
	paths = append(paths, "config.toml")

	return paths
}

func expandPath(path string) string {
	if path != "" && path[0] == '~' {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, path[1:])
		}
	}
	return path
}

// TickInterval returns the boundary-enforcement cadence with defaults
// applied.
func (c *Config) TickInterval() time.Duration {
	ms := c.Playback.TickMillis
	if ms < 50 || ms > 5000 {
		ms = 500
	}
	return time.Duration(ms) * time.Millisecond
}

// TickerInterval returns the message rotation interval with defaults
// applied.
func (c *Config) TickerInterval() time.Duration {
	ms := c.Ticker.IntervalMillis
	if ms <= 0 {
		ms = 5000
	}
	return time.Duration(ms) * time.Millisecond
}
