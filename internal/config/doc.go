// Package config loads runtime configuration for the MindSync CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file (see parseJson) selected via flags: -c or -config.
//  3. Command-line flags (see parseFlags), which override earlier values.
//
// Supported flags
//
//	-d string   path to the local vault database
//	-t int      simulated chat analysis delay (seconds)
//	-v int      simulated voice analysis delay (seconds)
//
// # JSON schema
//
// The JSON loader uses timex.Duration for delays, so values can be either
// strings like "2s" or integer nanoseconds:
//
//	{
//	  "database_path": "mindsync.db",
//	  "chat_delay": "2s",
//	  "voice_delay": "3s"
//	}
//
// Primary API
//
//   - type Config                     — holds DatabasePath, ChatDelay, VoiceDelay
//   - func LoadConfig() *Config      — builds Config by applying defaults, JSON, then flags
//   - func (*Config) LoadDefaults()  — sets sensible defaults
//
// Note: This package does not read environment variables directly; use the
// JSON file or flags to configure values.
package config
