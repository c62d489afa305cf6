package config

import (
	"encoding/json"
	"os"
	"time"

	"github.com/dhairyaaprajapati/mindsync/internal/flagx"
	"github.com/dhairyaaprajapati/mindsync/internal/timex"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling.
// It relies on timex.Duration so JSON can specify delays either as
// strings like "2s" or as integer nanoseconds. After parsing, values
// are copied into the runtime Config (which uses time.Duration).
type JsonConfig struct {
	DatabasePath string         `json:"database_path"`
	ChatDelay    timex.Duration `json:"chat_delay"`
	VoiceDelay   timex.Duration `json:"voice_delay"`
}

// parseJson overlays Config with values loaded from a JSON file.
//
// Lookup order for the JSON file path:
//  1. Command-line flags (-c or -config) via flagx.JsonConfigFlags().
//  2. If empty, no JSON is loaded and the function returns.
//
// Intended usage is: defaults -> parseJson -> parseFlags, where later stages
// override earlier ones. Panics on read or unmarshal errors.
func parseJson(cfg *Config) {
	jsonConfigFile := flagx.JsonConfigFlags()
	if jsonConfigFile == "" {
		return
	}

	var jc JsonConfig

	data, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	if jc.DatabasePath != "" {
		cfg.DatabasePath = jc.DatabasePath
	}
	if jc.ChatDelay.Duration != 0 {
		cfg.ChatDelay = time.Duration(jc.ChatDelay.Duration)
	}
	if jc.VoiceDelay.Duration != 0 {
		cfg.VoiceDelay = time.Duration(jc.VoiceDelay.Duration)
	}
}
