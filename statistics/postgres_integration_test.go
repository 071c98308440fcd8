//go:build integration

package statistics

import (
	"context"
	"fmt"
	"os"
	"sync"
	"testing"
	"time"

	"github.com/rubenv/pgtest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
)

const (
	postgresImage    = "postgres:16-alpine"
	postgresUser     = "postgres"
	postgresPassword = "postgres"
	postgresDB       = "badge_statistics"
)

// startPostgresContainer starts a PostgreSQL container and returns its DSN. Set
// STATISTICS_POSTGRES_DSN to run against an existing database instead.
func startPostgresContainer(t *testing.T) string {
	t.Helper()

	if dsn := os.Getenv("STATISTICS_POSTGRES_DSN"); dsn != "" {
		return dsn
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	container, err := postgres.Run(ctx,
		postgresImage,
		postgres.WithDatabase(postgresDB),
		postgres.WithUsername(postgresUser),
		postgres.WithPassword(postgresPassword),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	require.NoError(t, err)
	t.Cleanup(func() {
		if terminateErr := container.Terminate(context.Background()); terminateErr != nil {
			t.Logf("failed to terminate postgres container: %v", terminateErr)
		}
	})

	port, err := container.MappedPort(ctx, "5432")
	require.NoError(t, err)

	return fmt.Sprintf("postgres://%s:%s@localhost:%d/%s?sslmode=disable",
		postgresUser, postgresPassword, port.Int(), postgresDB)
}

func TestPostgresStore_Container(t *testing.T) {
	dsn := startPostgresContainer(t)

	store, err := Open(t.Context(), Config{Driver: DriverPostgres, DSN: dsn})
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })

	// Opening twice must not fail on the existing schema.
	again, err := Open(t.Context(), Config{Driver: DriverPostgres, DSN: dsn})
	require.NoError(t, err)
	require.NoError(t, again.Close())

	before, err := store.Summary(t.Context())
	require.NoError(t, err)

	txCtx, tx, err := store.BeginTransaction(t.Context())
	require.NoError(t, err)
	require.NoError(t, store.AddRequestEntry(txCtx))
	require.NoError(t, tx.Rollback())

	require.NoError(t, WithTransaction(t.Context(), store, store.AddRequestEntry))

	_, err = store.RegisterBadge(t.Context(), "acme", "widgets")
	require.NoError(t, err)
	_, err = store.RegisterBadge(t.Context(), "acme", "widgets")
	require.NoError(t, err)

	after, err := store.Summary(t.Context())
	require.NoError(t, err)
	assert.Equal(t, before.Requests+1, after.Requests)
	assert.Equal(t, before.Badges+2, after.Badges)
}

// TestPostgresStore_InProcess runs against a throwaway postgres started from the local binaries.
func TestPostgresStore_InProcess(t *testing.T) {
	pg, err := pgtest.New().Start()
	if err != nil {
		t.Skipf("postgres binaries unavailable: %v", err)
	}
	t.Cleanup(func() { _ = pg.Stop() })

	store := &sqlStore{db: pg.DB, dialect: dialectPostgres}
	require.NoError(t, migrate(t.Context(), pg.DB, dialectPostgres))

	require.NoError(t, store.AddRequestEntry(t.Context()))
	reg, err := store.RegisterBadge(t.Context(), "acme", "widgets")
	require.NoError(t, err)
	assert.NotEmpty(t, reg.BadgeIdentifier)

	summary, err := store.Summary(t.Context())
	require.NoError(t, err)
	assert.Equal(t, Summary{Requests: 1, Badges: 1, Projects: 1}, summary)
}

func TestPostgresStore_ConcurrentRegistrationOfNewProject(t *testing.T) {
	dsn := startPostgresContainer(t)

	store, err := Open(t.Context(), Config{Driver: DriverPostgres, DSN: dsn})
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })

	before, err := store.Summary(t.Context())
	require.NoError(t, err)

	const workers = 8
	project := "concurrent-" + t.Name()

	var wg sync.WaitGroup
	errs := make([]error, workers)
	for i := range workers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, errs[i] = store.RegisterBadge(context.Background(), "acme", project)
		}()
	}
	wg.Wait()

	for _, err := range errs {
		require.NoError(t, err)
	}

	after, err := store.Summary(t.Context())
	require.NoError(t, err)
	assert.Equal(t, before.Projects+1, after.Projects)
	assert.Equal(t, before.Badges+workers, after.Badges)
}
