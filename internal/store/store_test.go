package store_test

import (
	"context"
	"path/filepath"
	"runtime"
	"testing"
	"time"

	"github.com/harithravi/talklens/internal/store"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
)

// migrationsDir returns the absolute path to the migrations directory.
func migrationsDir() string {
	_, filename, _, _ := runtime.Caller(0)
	return filepath.Join(filepath.Dir(filename), "..", "..", "migrations")
}

// setupTestDB spins up a Postgres container, runs migrations, and returns a pool + cleanup.
func setupTestDB(t *testing.T) *pgxpool.Pool {
	t.Helper()
	ctx := context.Background()

	pgContainer, err := postgres.Run(ctx,
		"postgres:16-alpine",
		postgres.WithDatabase("talklens_test"),
		postgres.WithUsername("test"),
		postgres.WithPassword("test"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(60*time.Second)),
	)
	require.NoError(t, err)

	t.Cleanup(func() {
		require.NoError(t, pgContainer.Terminate(ctx))
	})

	connStr, err := pgContainer.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	// Run migrations
	err = store.RunMigrations(connStr, migrationsDir())
	require.NoError(t, err)

	pool, err := pgxpool.New(ctx, connStr)
	require.NoError(t, err)
	t.Cleanup(func() { pool.Close() })

	return pool
}

// --- Report Tests ---

func TestReport_SaveAndGet(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}
	pool := setupTestDB(t)
	s := store.NewPostgresStore(pool)
	ctx := context.Background()

	body := []byte(`{"overallSummary": "the call went well", "overallPerformance": 0.8}`)
	err := s.SaveReport(ctx, "conversation-analysis", body)
	require.NoError(t, err)

	got, err := s.GetReport(ctx, "conversation-analysis")
	require.NoError(t, err)
	assert.JSONEq(t, string(body), string(got))
}

func TestReport_SaveReplacesPrevious(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}
	pool := setupTestDB(t)
	s := store.NewPostgresStore(pool)
	ctx := context.Background()

	first := []byte(`{"overallSummary": "first run"}`)
	second := []byte(`{"overallSummary": "second run"}`)

	require.NoError(t, s.SaveReport(ctx, "conversation-analysis", first))
	require.NoError(t, s.SaveReport(ctx, "conversation-analysis", second))

	got, err := s.GetReport(ctx, "conversation-analysis")
	require.NoError(t, err)
	assert.JSONEq(t, string(second), string(got))
}

func TestReport_GetNotFound(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}
	pool := setupTestDB(t)
	s := store.NewPostgresStore(pool)

	_, err := s.GetReport(context.Background(), "no-such-report")
	assert.ErrorIs(t, err, store.ErrNotFound)
}

func TestReport_NamesAreIndependent(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}
	pool := setupTestDB(t)
	s := store.NewPostgresStore(pool)
	ctx := context.Background()

	require.NoError(t, s.SaveReport(ctx, "report-a", []byte(`{"overallSummary": "a"}`)))
	require.NoError(t, s.SaveReport(ctx, "report-b", []byte(`{"overallSummary": "b"}`)))

	gotA, err := s.GetReport(ctx, "report-a")
	require.NoError(t, err)
	assert.JSONEq(t, `{"overallSummary": "a"}`, string(gotA))

	gotB, err := s.GetReport(ctx, "report-b")
	require.NoError(t, err)
	assert.JSONEq(t, `{"overallSummary": "b"}`, string(gotB))
}

// --- Ping Test ---

func TestPing(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}
	pool := setupTestDB(t)
	s := store.NewPostgresStore(pool)

	err := s.Ping(context.Background())
	assert.NoError(t, err)
}
