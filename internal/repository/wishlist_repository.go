package repository

import (
	"context"
	"fmt"

	"simuweb/internal/model"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
)

const (
	listWishlistQuery = `
		SELECT product_id
		FROM wishlist_items
		WHERE user_id = $1
		ORDER BY created_at, product_id
	`

	addWishlistItemQuery = `
		INSERT INTO wishlist_items (user_id, product_id)
		VALUES ($1, $2)
		ON CONFLICT (user_id, product_id) DO NOTHING
	`
)

// wishlistRepository implements the WishlistRepository interface using PostgreSQL.
type wishlistRepository struct {
	pool   *pgxpool.Pool
	logger zerolog.Logger
}

// NewWishlistRepository creates a new PostgreSQL-backed wishlist repository.
func NewWishlistRepository(pool *pgxpool.Pool, logger zerolog.Logger) WishlistRepository {
	return &wishlistRepository{
		pool:   pool,
		logger: logger.With().Str("repository", "wishlist").Logger(),
	}
}

func (r *wishlistRepository) List(ctx context.Context, userID int64) ([]int64, error) {
	ids, err := r.list(ctx, r.pool, userID)
	if err != nil {
		r.logger.Error().Err(err).Int64("user_id", userID).Msg("failed to list wishlist")
		return nil, err
	}
	return ids, nil
}

func (r *wishlistRepository) Add(ctx context.Context, userID, productID int64) ([]int64, error) {
	return r.mutate(ctx, "add wishlist item", userID, productID, addWishlistItemQuery)
}

func (r *wishlistRepository) Remove(ctx context.Context, userID, productID int64) ([]int64, error) {
	query := `DELETE FROM wishlist_items WHERE user_id = $1 AND product_id = $2`
	return r.mutate(ctx, "remove wishlist item", userID, productID, query)
}

func (r *wishlistRepository) Merge(ctx context.Context, userID int64, productIDs []int64) error {
	if len(productIDs) == 0 {
		return nil
	}

	err := inTx(ctx, r.pool, func(tx pgx.Tx) error {
		batch := &pgx.Batch{}
		for _, id := range productIDs {
			batch.Queue(addWishlistItemQuery, userID, id)
		}

		results := tx.SendBatch(ctx, batch)
		defer results.Close()

		for _, id := range productIDs {
			if _, err := results.Exec(); err != nil {
				if pgErrorCode(err) == foreignKeyViolation {
					return model.ErrProductNotFound
				}
				return fmt.Errorf("failed to merge wishlist item %d: %w", id, err)
			}
		}
		return results.Close()
	})
	if err != nil {
		r.logger.Error().Err(err).Int64("user_id", userID).Msg("failed to merge guest wishlist")
		return err
	}

	r.logger.Debug().
		Int64("user_id", userID).
		Int("items", len(productIDs)).
		Msg("guest wishlist merged")
	return nil
}

func (r *wishlistRepository) mutate(ctx context.Context, op string, userID, productID int64, query string) ([]int64, error) {
	var ids []int64
	err := inTx(ctx, r.pool, func(tx pgx.Tx) error {
		if _, err := tx.Exec(ctx, query, userID, productID); err != nil {
			if pgErrorCode(err) == foreignKeyViolation {
				return model.ErrProductNotFound
			}
			return fmt.Errorf("failed to %s: %w", op, err)
		}

		var err error
		ids, err = r.list(ctx, tx, userID)
		return err
	})
	if err != nil {
		r.logger.Error().
			Err(err).
			Int64("user_id", userID).
			Int64("product_id", productID).
			Msgf("failed to %s", op)
		return nil, err
	}
	return ids, nil
}

func (r *wishlistRepository) list(ctx context.Context, q querier, userID int64) ([]int64, error) {
	rows, err := q.Query(ctx, listWishlistQuery, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to query wishlist: %w", err)
	}

	ids, err := pgx.CollectRows(rows, pgx.RowTo[int64])
	if err != nil {
		return nil, fmt.Errorf("failed to scan wishlist: %w", err)
	}
	if ids == nil {
		ids = []int64{}
	}
	return ids, nil
}
