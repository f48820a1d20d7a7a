package service

import (
	"context"
	"fmt"
	"hotel/config"
	"hotel/infras/otel"
	"hotel/infras/s3"
	"hotel/internal/domains/backup/model/dto"
	"hotel/internal/domains/booking/repository"
	"hotel/shared/constant"
	"hotel/shared/failure"
	"hotel/shared/timezone"
	"os"
	"path"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

const snapshotTimeFormat = "20060102T150405"

// Backup copies the catalog and ledger files to object storage.
type Backup interface {
	Snapshot(ctx context.Context) (dto.SnapshotResponse, error)
}

type serviceImpl struct {
	ledger repository.Ledger
	s3     s3.S3
	cfg    *config.Config
	otel   otel.Otel
}

func New(ledger repository.Ledger, s3 s3.S3, cfg *config.Config, otel otel.Otel) Backup {
	return &serviceImpl{
		ledger: ledger,
		s3:     s3,
		cfg:    cfg,
		otel:   otel,
	}
}

// Snapshot uploads both files under a fresh prefix. The ledger is read under its own lock so the copy
// is never a half-written file.
func (s *serviceImpl) Snapshot(ctx context.Context) (res dto.SnapshotResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Snapshot")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	catalog, err := os.ReadFile(s.cfg.Storage.CatalogFile)
	if err != nil {
		log.Error().Err(err).Str("path", s.cfg.Storage.CatalogFile).Msg("failed to read room catalog")

		return res, failure.Persistence(fmt.Errorf("failed to read room catalog: %w", err)) // nolint:wrapcheck
	}

	ledger, err := s.ledger.Export(ctx)
	if err != nil {
		log.Error().Err(err).Msg("failed to export booking ledger")

		return res, fmt.Errorf("failed to export booking ledger: %w", err)
	}

	res.TakenAt = timezone.Now()
	res.Prefix = path.Join(s.cfg.External.S3.BackupDirectory, res.TakenAt.Format(snapshotTimeFormat)+"-"+uuid.NewString())

	scope.SetAttribute("backup.prefix", res.Prefix)

	res.CatalogURL, err = s.upload(ctx, res.Prefix, s.cfg.Storage.CatalogFile, catalog)
	if err != nil {
		return res, err
	}

	res.LedgerURL, err = s.upload(ctx, res.Prefix, s.cfg.Storage.LedgerFile, ledger)
	if err != nil {
		return res, err
	}

	log.Info().Str("prefix", res.Prefix).Msg("backup snapshot uploaded")

	return res, nil
}

func (s *serviceImpl) upload(ctx context.Context, prefix, source string, data []byte) (string, error) {
	url, err := s.s3.UploadFileBytes(ctx, constant.Empty, prefix, filepath.Base(source), constant.ContentTypeJSON, data)
	if err != nil {
		log.Error().Err(err).Str("file", source).Msg("failed to upload backup file")

		return constant.Empty, fmt.Errorf("failed to upload %s: %w", filepath.Base(source), err)
	}

	return url, nil
}
