package main

import (
	"context"
	"log"
	"log/slog"
	"os"

	"github.com/castpro/console/internal/client/cli"
	"github.com/castpro/console/internal/client/config"
	"github.com/castpro/console/internal/logging"
)

func main() {
	ctx := context.Background()

	cfg := config.LoadConfig()
	logger := logging.NewTextLogger(os.Stderr, slog.LevelWarn)

	app, err := cli.NewApp(ctx, cfg, logger)
	if err != nil {
		log.Fatalf("%v", err)
		return
	}

	app.Run(ctx)
}
