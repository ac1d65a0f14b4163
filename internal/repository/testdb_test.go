package repository

import (
	"context"
	"testing"
	"time"

	"simuweb/internal/config"
	"simuweb/internal/database"
	"simuweb/internal/model"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
)

// setupTestDB creates a PostgreSQL testcontainer with the storefront schema applied.
func setupTestDB(t *testing.T) (*pgxpool.Pool, func()) {
	if testing.Short() {
		t.Skip("skipping database test in short mode")
	}

	ctx := context.Background()

	pgContainer, err := postgres.Run(ctx,
		"postgres:16-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("postgres"),
		postgres.WithPassword("postgres"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(60*time.Second)),
	)
	require.NoError(t, err)

	connStr, err := pgContainer.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	pool, err := database.NewPoolFromURL(ctx, connStr, config.DatabaseConfig{MaxConnections: 5}, zerolog.Nop())
	require.NoError(t, err)

	require.NoError(t, database.EnsureSchema(ctx, pool, zerolog.Nop()))

	cleanup := func() {
		pool.Close()
		_ = pgContainer.Terminate(ctx)
	}

	return pool, cleanup
}

func testProducts() []model.Product {
	return []model.Product{
		{ID: 1, Name: "Gitar Akustik", Price: decimal.NewFromInt(1500000), Description: "Acoustic guitar"},
		{ID: 2, Name: "Drum Elektrik", Price: decimal.NewFromInt(7800000), Description: "Electric drum kit"},
		{ID: 3, Name: "Keyboard Synth", Price: decimal.RequireFromString("3250000.50"), Description: "Synthesizer"},
	}
}

// seedProducts inserts test products into the database.
func seedProducts(t *testing.T, pool *pgxpool.Pool, products []model.Product) {
	_, err := NewProductRepository(pool, zerolog.Nop()).Seed(context.Background(), products)
	require.NoError(t, err)
}

// createUser inserts an account and returns its id.
func createUser(t *testing.T, pool *pgxpool.Pool, email string) int64 {
	account := &model.Account{Email: email, Name: "Test User"}
	require.NoError(t, NewUserRepository(pool, zerolog.Nop()).Create(context.Background(), account))
	return account.ID
}
