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
	listCartQuery = `
		SELECT product_id, quantity
		FROM cart_items
		WHERE user_id = $1
		ORDER BY created_at, product_id
	`

	addCartLineQuery = `
		INSERT INTO cart_items (user_id, product_id, quantity)
		VALUES ($1, $2, $3)
		ON CONFLICT (user_id, product_id)
		DO UPDATE SET quantity = cart_items.quantity + EXCLUDED.quantity
	`

	// Merged quantities saturate at the column maximum instead of failing the login.
	mergeCartLineQuery = `
		INSERT INTO cart_items (user_id, product_id, quantity)
		VALUES ($1, $2, $3)
		ON CONFLICT (user_id, product_id)
		DO UPDATE SET quantity = LEAST(cart_items.quantity::BIGINT + EXCLUDED.quantity, 2147483647)
	`
)

// cartRepository implements the CartRepository interface using PostgreSQL.
type cartRepository struct {
	pool   *pgxpool.Pool
	logger zerolog.Logger
}

// NewCartRepository creates a new PostgreSQL-backed cart repository.
func NewCartRepository(pool *pgxpool.Pool, logger zerolog.Logger) CartRepository {
	return &cartRepository{
		pool:   pool,
		logger: logger.With().Str("repository", "cart").Logger(),
	}
}

func (r *cartRepository) List(ctx context.Context, userID int64) ([]model.CartLine, error) {
	lines, err := r.list(ctx, r.pool, userID)
	if err != nil {
		r.logger.Error().Err(err).Int64("user_id", userID).Msg("failed to list cart")
		return nil, err
	}
	return lines, nil
}

func (r *cartRepository) Add(ctx context.Context, userID, productID int64, quantity int) ([]model.CartLine, error) {
	return r.mutate(ctx, "add cart line", userID, productID, addCartLineQuery, userID, productID, quantity)
}

func (r *cartRepository) SetQuantity(ctx context.Context, userID, productID int64, quantity int) ([]model.CartLine, error) {
	query := `
		INSERT INTO cart_items (user_id, product_id, quantity)
		VALUES ($1, $2, $3)
		ON CONFLICT (user_id, product_id)
		DO UPDATE SET quantity = EXCLUDED.quantity
	`
	return r.mutate(ctx, "set cart quantity", userID, productID, query, userID, productID, quantity)
}

func (r *cartRepository) Remove(ctx context.Context, userID, productID int64) ([]model.CartLine, error) {
	query := `DELETE FROM cart_items WHERE user_id = $1 AND product_id = $2`
	return r.mutate(ctx, "remove cart line", userID, productID, query, userID, productID)
}

func (r *cartRepository) Clear(ctx context.Context, userID int64) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM cart_items WHERE user_id = $1`, userID)
	if err != nil {
		r.logger.Error().Err(err).Int64("user_id", userID).Msg("failed to clear cart")
		return fmt.Errorf("failed to clear cart: %w", err)
	}

	r.logger.Debug().
		Int64("user_id", userID).
		Int64("removed", tag.RowsAffected()).
		Msg("cart cleared")
	return nil
}

// Merge records mergeKey and adds every line in the same transaction, so a
// retried merge of the same guest cart revision never doubles quantities.
func (r *cartRepository) Merge(ctx context.Context, userID int64, mergeKey string, lines []model.CartLine) (bool, error) {
	markerQuery := `
		INSERT INTO cart_merges (merge_key, user_id)
		VALUES ($1, $2)
		ON CONFLICT (merge_key) DO NOTHING
	`

	merged := false
	err := inTx(ctx, r.pool, func(tx pgx.Tx) error {
		tag, err := tx.Exec(ctx, markerQuery, mergeKey, userID)
		if err != nil {
			return fmt.Errorf("failed to record cart merge: %w", err)
		}
		if tag.RowsAffected() == 0 {
			return nil
		}

		batch := &pgx.Batch{}
		for _, line := range lines {
			batch.Queue(mergeCartLineQuery, userID, line.ProductID, line.Quantity)
		}

		results := tx.SendBatch(ctx, batch)
		defer results.Close()

		for _, line := range lines {
			if _, err := results.Exec(); err != nil {
				if pgErrorCode(err) == foreignKeyViolation {
					return model.ErrProductNotFound
				}
				return fmt.Errorf("failed to merge cart line %d: %w", line.ProductID, err)
			}
		}
		if err := results.Close(); err != nil {
			return fmt.Errorf("failed to merge cart lines: %w", err)
		}

		merged = true
		return nil
	})
	if err != nil {
		r.logger.Error().
			Err(err).
			Int64("user_id", userID).
			Str("merge_key", mergeKey).
			Msg("failed to merge guest cart")
		return false, err
	}

	r.logger.Debug().
		Int64("user_id", userID).
		Str("merge_key", mergeKey).
		Bool("merged", merged).
		Int("lines", len(lines)).
		Msg("guest cart merge finished")

	return merged, nil
}

// mutate applies one statement and reads back the cart inside the same transaction.
func (r *cartRepository) mutate(ctx context.Context, op string, userID, productID int64, query string, args ...any) ([]model.CartLine, error) {
	var lines []model.CartLine
	err := inTx(ctx, r.pool, func(tx pgx.Tx) error {
		if _, err := tx.Exec(ctx, query, args...); err != nil {
			switch pgErrorCode(err) {
			case foreignKeyViolation:
				return model.ErrProductNotFound
			case numericOutOfRange:
				return model.ErrInvalidQuantity
			}
			return fmt.Errorf("failed to %s: %w", op, err)
		}

		var err error
		lines, err = r.list(ctx, tx, userID)
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

	return lines, nil
}

func (r *cartRepository) list(ctx context.Context, q querier, userID int64) ([]model.CartLine, error) {
	rows, err := q.Query(ctx, listCartQuery, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to query cart: %w", err)
	}
	defer rows.Close()

	lines := []model.CartLine{}
	for rows.Next() {
		var line model.CartLine
		if err := rows.Scan(&line.ProductID, &line.Quantity); err != nil {
			return nil, fmt.Errorf("failed to scan cart line: %w", err)
		}
		lines = append(lines, line)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating cart lines: %w", err)
	}

	return lines, nil
}
