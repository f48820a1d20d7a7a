package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"hotel/config"
	"hotel/infras/otel"
	"hotel/internal/domains/booking/model"
	"hotel/shared/constant"
	"hotel/shared/failure"
	"io/fs"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/rs/zerolog/log"
)

const (
	ledgerIndent = "  "
	filePerm     = 0o644
	dirPerm      = 0o755
)

// Ledger is the durable per-room list of confirmed stays, stored as one JSON file.
type Ledger interface {
	// LoadAll decodes the whole ledger. The result is never shared with other callers.
	LoadAll(ctx context.Context) (model.Ledger, error)
	// Append adds the booking under the room, creating the room's entry when needed.
	Append(ctx context.Context, roomNumber int, booking model.Booking) error
	// Export returns the encoded ledger as it is stored.
	Export(ctx context.Context) ([]byte, error)
}

type repositoryImpl struct {
	path     string
	maxRetry int
	wait     time.Duration
	mu       sync.RWMutex
	otel     otel.Otel
}

func New(cfg *config.Config, otel otel.Otel) Ledger {
	maxRetry := max(cfg.Storage.WriteRetry, 1)

	return &repositoryImpl{
		path:     cfg.Storage.LedgerFile,
		maxRetry: maxRetry,
		wait:     time.Duration(cfg.Storage.RetryWaitTime) * time.Millisecond,
		otel:     otel,
	}
}

func (r *repositoryImpl) LoadAll(ctx context.Context) (res model.Ledger, err error) {
	_, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".LoadAll")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.read()
}

// Append holds the write lock across read, mutate and write so appends to different rooms never drop
// each other's updates.
func (r *repositoryImpl) Append(ctx context.Context, roomNumber int, booking model.Booking) (err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".Append")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	scope.SetAttribute("room.number", roomNumber)

	r.mu.Lock()
	defer r.mu.Unlock()

	ledger, err := r.read()
	if err != nil {
		return err
	}

	ledger.Add(roomNumber, booking)

	data, err := json.MarshalIndent(ledger, "", ledgerIndent)
	if err != nil {
		log.Error().Err(err).Msg("failed to encode booking ledger")

		return failure.Persistence(fmt.Errorf("failed to encode booking ledger: %w", err)) // nolint:wrapcheck
	}

	return r.write(ctx, data)
}

func (r *repositoryImpl) Export(ctx context.Context) (res []byte, err error) {
	_, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".Export")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	r.mu.RLock()
	defer r.mu.RUnlock()

	res, err = os.ReadFile(r.path)
	if errors.Is(err, fs.ErrNotExist) {
		return json.MarshalIndent(emptyLedger(), "", ledgerIndent) //nolint:wrapcheck
	}

	if err != nil {
		log.Error().Err(err).Str("path", r.path).Msg("failed to read booking ledger")

		return nil, failure.Persistence(fmt.Errorf("failed to read booking ledger: %w", err)) // nolint:wrapcheck
	}

	return res, nil
}

// read decodes the ledger file. A missing or empty file is an empty ledger.
func (r *repositoryImpl) read() (model.Ledger, error) {
	data, err := os.ReadFile(r.path)
	if errors.Is(err, fs.ErrNotExist) {
		return emptyLedger(), nil
	}

	if err != nil {
		log.Error().Err(err).Str("path", r.path).Msg("failed to read booking ledger")

		return model.Ledger{}, failure.Persistence(fmt.Errorf("failed to read booking ledger: %w", err)) // nolint:wrapcheck
	}

	if len(bytes.TrimSpace(data)) == 0 {
		return emptyLedger(), nil
	}

	var ledger model.Ledger
	if err = json.Unmarshal(data, &ledger); err != nil {
		log.Error().Err(err).Str("path", r.path).Msg("failed to decode booking ledger")

		return model.Ledger{}, failure.Persistence(fmt.Errorf("failed to decode booking ledger: %w", err)) // nolint:wrapcheck
	}

	if ledger.Rooms == nil {
		ledger.Rooms = []model.RoomLedgerEntry{}
	}

	return ledger, nil
}

// write replaces the ledger file, retrying transient failures a bounded number of times.
func (r *repositoryImpl) write(ctx context.Context, data []byte) error {
	var err error

	for retry := range r.maxRetry {
		err = r.replace(data)
		if err == nil {
			return nil
		}

		log.Warn().
			Err(err).
			Str("path", r.path).
			Int("attempt", retry+1).
			Int("maxRetry", r.maxRetry).
			Msg("failed to write booking ledger, retrying")

		if retry == r.maxRetry-1 {
			break
		}

		select {
		case <-ctx.Done():
			err = errors.Join(err, ctx.Err())

			log.Error().Err(err).Msg("booking ledger write cancelled")

			return failure.Persistence(fmt.Errorf("failed to write booking ledger: %w", err)) // nolint:wrapcheck
		case <-time.After(r.wait):
		}
	}

	log.Error().Err(err).Str("path", r.path).Msg("failed to write booking ledger")

	return failure.Persistence(fmt.Errorf("failed to write booking ledger: %w", err)) // nolint:wrapcheck
}

// replace writes to a temporary file in the same directory and renames it over the ledger, so a crash
// leaves either the old or the new ledger on disk.
func (r *repositoryImpl) replace(data []byte) (err error) {
	dir := filepath.Dir(r.path)

	if err = os.MkdirAll(dir, dirPerm); err != nil {
		return fmt.Errorf("failed to create ledger directory: %w", err)
	}

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(r.path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("failed to create temporary ledger file: %w", err)
	}

	defer func() {
		if err != nil {
			_ = os.Remove(tmp.Name())
		}
	}()

	if _, err = tmp.Write(data); err != nil {
		_ = tmp.Close()

		return fmt.Errorf("failed to write temporary ledger file: %w", err)
	}

	if err = tmp.Sync(); err != nil {
		_ = tmp.Close()

		return fmt.Errorf("failed to sync temporary ledger file: %w", err)
	}

	if err = tmp.Close(); err != nil {
		return fmt.Errorf("failed to close temporary ledger file: %w", err)
	}

	if err = os.Chmod(tmp.Name(), filePerm); err != nil {
		return fmt.Errorf("failed to set ledger file mode: %w", err)
	}

	if err = os.Rename(tmp.Name(), r.path); err != nil {
		return fmt.Errorf("failed to replace ledger file: %w", err)
	}

	return nil
}

func emptyLedger() model.Ledger {
	return model.Ledger{Rooms: []model.RoomLedgerEntry{}}
}
