package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/dhairyaaprajapati/mindsync/internal/buildinfo"
	"github.com/dhairyaaprajapati/mindsync/internal/cli"
	"github.com/dhairyaaprajapati/mindsync/internal/config"
	"github.com/dhairyaaprajapati/mindsync/internal/logging"
)

func main() {

	buildinfo.PrintBuildData(os.Stdout)

	ctx := context.Background()
	cfg := config.LoadConfig()
	log := logging.NewSlogLogger(slog.New(slog.NewTextHandler(os.Stderr, nil)))

	app, err := cli.NewApp(ctx, cfg, log)
	if err != nil {
		log.Error(ctx, "failed to start", "error", err)
		os.Exit(1)
	}

	app.Run(ctx)

}
