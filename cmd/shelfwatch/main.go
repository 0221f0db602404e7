package main

import (
	"context"
	"log"
	"log/slog"
	"os"

	"github.com/meheralimeer/shelfwatch/internal/buildinfo"
	"github.com/meheralimeer/shelfwatch/internal/cli"
	"github.com/meheralimeer/shelfwatch/internal/config"
	"github.com/meheralimeer/shelfwatch/internal/logging"
)

func main() {

	buildinfo.PrintBuildData(os.Stdout)

	ctx := context.Background()
	cfg := config.LoadConfig()

	logger := logging.NewSlogLogger(slog.New(slog.NewTextHandler(os.Stderr, nil)))

	app, err := cli.NewApp(ctx, cfg, logger)
	if err != nil {
		log.Fatalf("%v", err)
		return
	}

	app.Run(ctx)

}
