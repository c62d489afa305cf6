package config

import (
	"flag"
	"os"
	"time"

	"github.com/dhairyaaprajapati/mindsync/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-d string   path to the local vault database (default from Config)
//	-t int      simulated chat analysis delay in seconds (default from Config)
//	-v int      simulated voice analysis delay in seconds (default from Config)
//
// The function filters os.Args to only include the flags it knows about,
// using flagx.FilterArgs, to avoid interference with other components.
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-d", "-t", "-v"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.DatabasePath, "d", cfg.DatabasePath, "path to the local vault database")
	chatDelay := fs.Int("t", int(cfg.ChatDelay.Seconds()), "chat analysis delay (in seconds)")
	voiceDelay := fs.Int("v", int(cfg.VoiceDelay.Seconds()), "voice analysis delay (in seconds)")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	cfg.ChatDelay = time.Duration(*chatDelay) * time.Second
	cfg.VoiceDelay = time.Duration(*voiceDelay) * time.Second
}
