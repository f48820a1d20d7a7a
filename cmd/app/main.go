package main

import (
	"context"
	"hotel/config"
	"hotel/di"
	"hotel/shared/logger"
	"os"
	"time"

	"github.com/rs/zerolog/log"
)

const closeTimeout = 5 * time.Second

func main() {
	cfg := config.Get()

	logger.InitLogger()

	logger.SetLogLevel(cfg)

	logger.UseJSON(cfg, os.Stdout)

	app, err := di.InitializeService()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize service")
	}

	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), closeTimeout)
		defer cancel()

		app.Close(ctx)
	}()

	if err := app.HTTP.Serve(); err != nil {
		log.Error().Err(err).Msg("HTTP server stopped")
	}
}
