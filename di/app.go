package di

import (
	"context"
	"hotel/infras/kafka"
	"hotel/infras/otel"
	"hotel/internal/domains/backup/service"
	"hotel/transport/http"

	"github.com/rs/zerolog/log"
)

// App is the HTTP server together with the clients that must be flushed when it stops.
type App struct {
	HTTP  *http.HTTP
	Kafka kafka.Client
	Otel  otel.Otel
}

// Close flushes pending events and spans.
func (a *App) Close(ctx context.Context) {
	if err := a.Kafka.Close(); err != nil {
		log.Error().Err(err).Msg("Failed to close Kafka client")
	}

	if err := a.Otel.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("Failed to shut down tracer provider")
	}
}

type BackupJob struct {
	Backup service.Backup
	Otel   otel.Otel
}
