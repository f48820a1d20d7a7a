package repository_test

import (
	"context"
	"encoding/json"
	"hotel/config"
	"hotel/infras/otel/mocks"
	"hotel/internal/domains/booking/model"
	"hotel/internal/domains/booking/repository"
	"hotel/shared/failure"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newLedger(t *testing.T, path string) repository.Ledger {
	t.Helper()

	cfg := &config.Config{}
	cfg.Storage.LedgerFile = path
	cfg.Storage.WriteRetry = 2
	cfg.Storage.RetryWaitTime = 1

	return repository.New(cfg, mocks.NewOtel())
}

func TestLedger_LoadAll(t *testing.T) {
	ctx := context.Background()

	t.Run("missing file is empty", func(t *testing.T) {
		ledger := newLedger(t, filepath.Join(t.TempDir(), "bookings.json"))

		res, err := ledger.LoadAll(ctx)

		require.NoError(t, err)
		assert.Empty(t, res.Rooms)
		assert.NotNil(t, res.Rooms)
	})

	t.Run("empty file is empty", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "bookings.json")
		require.NoError(t, os.WriteFile(path, []byte("\n"), 0o600))

		res, err := newLedger(t, path).LoadAll(ctx)

		require.NoError(t, err)
		assert.Empty(t, res.Rooms)
	})

	t.Run("malformed file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "bookings.json")
		require.NoError(t, os.WriteFile(path, []byte(`{"rooms": [`), 0o600))

		_, err := newLedger(t, path).LoadAll(ctx)

		require.Error(t, err)
		assert.True(t, failure.IsKind(err, failure.KindPersistence))
	})

	t.Run("snapshots are independent", func(t *testing.T) {
		ledger := newLedger(t, filepath.Join(t.TempDir(), "bookings.json"))
		require.NoError(t, ledger.Append(ctx, 101, model.Booking{Name: "Ada", CheckIn: "2024-06-01", CheckOut: "2024-06-05"}))

		first, err := ledger.LoadAll(ctx)
		require.NoError(t, err)

		first.Rooms[0].Bookings[0].Name = "changed"

		second, err := ledger.LoadAll(ctx)
		require.NoError(t, err)
		assert.Equal(t, "Ada", second.Rooms[0].Bookings[0].Name)
	})
}

func TestLedger_AppendRoundTrip(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "bookings.json")
	ledger := newLedger(t, path)

	existing := model.Booking{Name: "Grace", Phone: "555-0100", Email: "grace@example.com", CheckIn: "2024-05-01", CheckOut: "2024-05-03"}
	require.NoError(t, ledger.Append(ctx, 102, existing))

	booking := model.Booking{Name: "Ada", Phone: "555-0101", Email: "ada@example.com", CheckIn: "2024-06-01", CheckOut: "2024-06-05"}
	require.NoError(t, ledger.Append(ctx, 101, booking))

	res, err := ledger.LoadAll(ctx)
	require.NoError(t, err)

	entry, ok := res.Entry(101)
	require.True(t, ok)
	assert.Equal(t, []model.Booking{booking}, entry.Bookings)

	other, ok := res.Entry(102)
	require.True(t, ok)
	assert.Equal(t, []model.Booking{existing}, other.Bookings)
}

func TestLedger_FileFormat(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "data", "bookings.json")
	ledger := newLedger(t, path)

	require.NoError(t, ledger.Append(ctx, 101, model.Booking{Name: "Ada", CheckIn: "2024-06-01", CheckOut: "2024-06-05"}))

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	assert.Contains(t, string(data), "\n  \"rooms\": [")
	assert.Contains(t, string(data), `"room_number": 101`)
	assert.Contains(t, string(data), `"checkIn": "2024-06-01"`)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Contains(t, decoded, "rooms")

	exported, err := ledger.Export(ctx)
	require.NoError(t, err)
	assert.Equal(t, data, exported)

	leftovers, err := filepath.Glob(filepath.Join(filepath.Dir(path), "*.tmp"))
	require.NoError(t, err)
	assert.Empty(t, leftovers)
}

func TestLedger_ExportMissingFile(t *testing.T) {
	ledger := newLedger(t, filepath.Join(t.TempDir(), "bookings.json"))

	data, err := ledger.Export(context.Background())

	require.NoError(t, err)
	assert.JSONEq(t, `{"rooms": []}`, string(data))
}

func TestLedger_AppendUnwritable(t *testing.T) {
	dir := t.TempDir()
	blocker := filepath.Join(dir, "blocker")
	require.NoError(t, os.WriteFile(blocker, nil, 0o600))

	// the parent of the ledger path is a regular file, so every attempt fails
	ledger := newLedger(t, filepath.Join(blocker, "bookings.json"))

	err := ledger.Append(context.Background(), 101, model.Booking{Name: "Ada"})

	require.Error(t, err)
	assert.True(t, failure.IsKind(err, failure.KindPersistence))
}

func TestLedger_ConcurrentAppendsKeepEveryBooking(t *testing.T) {
	ctx := context.Background()
	ledger := newLedger(t, filepath.Join(t.TempDir(), "bookings.json"))

	const workers = 20

	var wg sync.WaitGroup
	for i := range workers {
		wg.Add(1)

		go func() {
			defer wg.Done()

			assert.NoError(t, ledger.Append(ctx, 100+i%4, model.Booking{Name: "guest"}))
		}()
	}

	wg.Wait()

	res, err := ledger.LoadAll(ctx)
	require.NoError(t, err)

	total := 0
	for _, entry := range res.Rooms {
		total += len(entry.Bookings)
	}

	assert.Equal(t, workers, total)
	assert.Len(t, res.Rooms, 4)
}
