package config

import "time"

// Config holds runtime settings for the MindSync CLI.
//
// Fields:
//   - DatabasePath: filesystem path of the local SQLite vault.
//   - ChatDelay: simulated per-message analysis latency in the chat analyzer.
//   - VoiceDelay: simulated analysis latency in the voice analyzer.
type Config struct {
	DatabasePath string
	ChatDelay    time.Duration
	VoiceDelay   time.Duration
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.DatabasePath = "mindsync.db"
	c.ChatDelay = 2 * time.Second
	c.VoiceDelay = 3 * time.Second
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// JSON (if present) and command-line flags (if present). Later sources take
// precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
