package main

import (
	"context"
	"log"
	"log/slog"
	"os"

	"github.com/imarchenko/stockroom/internal/buildinfo"
	"github.com/imarchenko/stockroom/internal/client/cli"
	"github.com/imarchenko/stockroom/internal/client/config"
	"github.com/imarchenko/stockroom/internal/logging"
)

func main() {

	buildinfo.PrintBuildData(os.Stdout)

	ctx := context.Background()

	cfg := config.LoadConfig()

	logger := logging.NewSlogLogger(slog.New(slog.NewTextHandler(os.Stderr, nil)))

	app, err := cli.NewApp(ctx, cfg, logger)
	if err != nil {
		log.Fatalf("%v", err)
	}

	app.Run(ctx)
}
