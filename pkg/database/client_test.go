package database

import (
	"context"
	stdsql "database/sql"
	"os"
	"testing"
	"time"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/moodle-tools/simwatch/ent"
)

// newTestClient creates a test database client with CI/local environment detection.
// In CI (when CI_DATABASE_URL is set): connects to external PostgreSQL service container.
// In local dev: spins up a testcontainer with PostgreSQL.
func newTestClient(t *testing.T) *Client {
	ctx := context.Background()

	var connStr string
	if ciDatabaseURL := os.Getenv("CI_DATABASE_URL"); ciDatabaseURL != "" {
		t.Log("Using external PostgreSQL from CI_DATABASE_URL")
		connStr = ciDatabaseURL
	} else {
		t.Log("Using testcontainers for PostgreSQL")
		pgContainer, err := postgres.Run(ctx,
			"postgres:17-alpine",
			postgres.WithDatabase("test"),
			postgres.WithUsername("test"),
			postgres.WithPassword("test"),
			testcontainers.WithWaitStrategy(
				wait.ForLog("database system is ready to accept connections").
					WithOccurrence(2).
					WithStartupTimeout(30*time.Second)),
		)
		require.NoError(t, err)

		t.Cleanup(func() {
			if err := testcontainers.TerminateContainer(pgContainer); err != nil {
				t.Logf("failed to terminate container: %v", err)
			}
		})

		connStr, err = pgContainer.ConnectionString(ctx, "sslmode=disable")
		require.NoError(t, err)
	}

	db, err := stdsql.Open("pgx", connStr)
	require.NoError(t, err)
	db.SetMaxOpenConns(10)
	db.SetMaxIdleConns(5)

	drv := entsql.OpenDB(dialect.Postgres, db)
	entClient := ent.NewClient(ent.Driver(drv))

	// Auto-migration for tests; production applies the embedded SQL.
	require.NoError(t, entClient.Schema.Create(ctx))

	client := NewClientFromEnt(entClient, db)
	t.Cleanup(func() {
		if err := client.Close(); err != nil {
			t.Logf("failed to close client: %v", err)
		}
	})
	return client
}

func TestHealth(t *testing.T) {
	client := newTestClient(t)
	ctx := context.Background()

	status, err := Health(ctx, client.DB())
	require.NoError(t, err)
	assert.Equal(t, "healthy", status.Status)
	assert.GreaterOrEqual(t, status.OpenConnections, 1)
	assert.Equal(t, 10, status.MaxOpenConns)

	t.Run("reports unreachable database", func(t *testing.T) {
		broken, err := stdsql.Open("pgx", "host=127.0.0.1 port=1 user=x dbname=x sslmode=disable")
		require.NoError(t, err)
		defer func() { _ = broken.Close() }()

		shortCtx, cancel := context.WithTimeout(ctx, 2*time.Second)
		defer cancel()

		status, err := Health(shortCtx, broken)
		require.Error(t, err)
		assert.Equal(t, "unhealthy", status.Status)
	})
}

func TestConfigDSN(t *testing.T) {
	cfg := Config{
		Host: "db.internal", Port: 5433,
		User: "simwatch", Password: "secret",
		Database: "simwatch", SSLMode: "require",
	}
	assert.Equal(t,
		"host=db.internal port=5433 user=simwatch password=secret dbname=simwatch sslmode=require",
		cfg.DSN())
}

func TestLoadConfigFromEnv(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		cfg, err := LoadConfigFromEnv()
		require.NoError(t, err)
		assert.Equal(t, "localhost", cfg.Host)
		assert.Equal(t, 5432, cfg.Port)
		assert.Equal(t, "simwatch", cfg.User)
		assert.Equal(t, "simwatch", cfg.Database)
		assert.Equal(t, "disable", cfg.SSLMode)
		assert.Equal(t, 10, cfg.MaxOpenConns)
	})

	t.Run("env overrides", func(t *testing.T) {
		t.Setenv("DB_HOST", "pg.example.org")
		t.Setenv("DB_PORT", "6432")
		t.Setenv("DB_MAX_OPEN_CONNS", "25")

		cfg, err := LoadConfigFromEnv()
		require.NoError(t, err)
		assert.Equal(t, "pg.example.org", cfg.Host)
		assert.Equal(t, 6432, cfg.Port)
		assert.Equal(t, 25, cfg.MaxOpenConns)
	})

	t.Run("invalid port", func(t *testing.T) {
		t.Setenv("DB_PORT", "not-a-port")
		_, err := LoadConfigFromEnv()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "DB_PORT")
	})
}
