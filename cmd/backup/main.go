package main

import (
	"context"
	"hotel/config"
	"hotel/di"
	"hotel/shared/logger"
	"time"

	"github.com/rs/zerolog/log"
)

const snapshotTimeout = time.Minute

func main() {
	cfg := config.Get()

	logger.InitLogger()

	logger.SetLogLevel(cfg)

	job, err := di.InitializeBackup()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize backup")
	}

	ctx, cancel := context.WithTimeout(context.Background(), snapshotTimeout)
	defer cancel()

	res, err := job.Backup.Snapshot(ctx)

	if shutdownErr := job.Otel.Shutdown(ctx); shutdownErr != nil {
		log.Error().Err(shutdownErr).Msg("Failed to shut down tracer provider")
	}

	if err != nil {
		log.Fatal().Err(err).Msg("Backup failed")
	}

	log.Info().
		Str("prefix", res.Prefix).
		Str("catalog", res.CatalogURL).
		Str("ledger", res.LedgerURL).
		Msg("Backup completed")
}
