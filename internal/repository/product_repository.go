package repository

import (
	"context"
	"fmt"

	"simuweb/internal/model"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
)

// productRepository implements the ProductRepository interface using PostgreSQL.
type productRepository struct {
	pool   *pgxpool.Pool
	logger zerolog.Logger
}

// NewProductRepository creates a new PostgreSQL-backed product repository.
func NewProductRepository(pool *pgxpool.Pool, logger zerolog.Logger) ProductRepository {
	return &productRepository{
		pool:   pool,
		logger: logger.With().Str("repository", "product").Logger(),
	}
}

// Seed inserts the products that are not stored yet. Existing rows are left untouched.
func (r *productRepository) Seed(ctx context.Context, products []model.Product) (int64, error) {
	if len(products) == 0 {
		return 0, nil
	}

	query := `
		INSERT INTO products (id, name, price, description, long_description, image, data_ai_hint)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (id) DO NOTHING
	`

	var inserted int64
	err := inTx(ctx, r.pool, func(tx pgx.Tx) error {
		batch := &pgx.Batch{}
		for _, p := range products {
			batch.Queue(query, p.ID, p.Name, p.Price, p.Description, p.LongDescription, p.Image, p.DataAIHint)
		}

		results := tx.SendBatch(ctx, batch)
		defer results.Close()

		for i := range products {
			tag, err := results.Exec()
			if err != nil {
				r.logger.Error().
					Err(err).
					Int64("product_id", products[i].ID).
					Msg("failed to seed product")
				return fmt.Errorf("failed to seed product %d: %w", products[i].ID, err)
			}
			inserted += tag.RowsAffected()
		}
		return results.Close()
	})
	if err != nil {
		return 0, err
	}

	r.logger.Info().
		Int("seed_size", len(products)).
		Int64("inserted", inserted).
		Msg("products seeded")

	return inserted, nil
}

func (r *productRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM products`).Scan(&count); err != nil {
		r.logger.Error().Err(err).Msg("failed to count products")
		return 0, fmt.Errorf("failed to count products: %w", err)
	}
	return count, nil
}
