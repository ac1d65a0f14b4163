package repository

import (
	"context"
	"testing"

	"simuweb/internal/model"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProductRepository_Seed(t *testing.T) {
	pool, cleanup := setupTestDB(t)
	defer cleanup()

	repo := NewProductRepository(pool, zerolog.Nop())
	ctx := context.Background()

	t.Run("Empty seed inserts nothing", func(t *testing.T) {
		inserted, err := repo.Seed(ctx, nil)

		require.NoError(t, err)
		assert.Equal(t, int64(0), inserted)
	})

	t.Run("First seed inserts every product", func(t *testing.T) {
		inserted, err := repo.Seed(ctx, testProducts())

		require.NoError(t, err)
		assert.Equal(t, int64(3), inserted)

		count, err := repo.Count(ctx)
		require.NoError(t, err)
		assert.Equal(t, int64(3), count)
	})

	t.Run("Reseeding keeps existing rows", func(t *testing.T) {
		products := testProducts()
		products[0].Name = "Renamed"
		products = append(products, model.Product{ID: 4, Name: "Biola", Price: decimal.NewFromInt(2100000)})

		inserted, err := repo.Seed(ctx, products)

		require.NoError(t, err)
		assert.Equal(t, int64(1), inserted)

		var name string
		require.NoError(t, pool.QueryRow(ctx, "SELECT name FROM products WHERE id = 1").Scan(&name))
		assert.Equal(t, "Gitar Akustik", name)
	})

	t.Run("Prices keep their decimal precision", func(t *testing.T) {
		var price decimal.Decimal
		require.NoError(t, pool.QueryRow(ctx, "SELECT price FROM products WHERE id = 3").Scan(&price))
		assert.True(t, decimal.RequireFromString("3250000.50").Equal(price))
	})
}

func TestProductRepository_ErrorPaths(t *testing.T) {
	pool, cleanup := setupTestDB(t)
	defer cleanup()

	repo := NewProductRepository(pool, zerolog.Nop())

	// Close the pool to simulate database errors
	pool.Close()

	t.Run("Seed with closed pool", func(t *testing.T) {
		inserted, err := repo.Seed(context.Background(), testProducts())

		require.Error(t, err)
		assert.Equal(t, int64(0), inserted)
	})

	t.Run("Count with closed pool", func(t *testing.T) {
		_, err := repo.Count(context.Background())

		require.Error(t, err)
	})
}
