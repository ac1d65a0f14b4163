package repository

import (
	"context"
	"errors"
	"fmt"

	"simuweb/internal/model"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
)

// orderRepository implements the OrderRepository interface using PostgreSQL.
type orderRepository struct {
	pool   *pgxpool.Pool
	logger zerolog.Logger
}

// NewOrderRepository creates a new PostgreSQL-backed order repository.
func NewOrderRepository(pool *pgxpool.Pool, logger zerolog.Logger) OrderRepository {
	return &orderRepository{
		pool:   pool,
		logger: logger.With().Str("repository", "order").Logger(),
	}
}

// BeginTx starts a new database transaction.
func (r *orderRepository) BeginTx(ctx context.Context) (pgx.Tx, error) {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		r.logger.Error().Err(err).Msg("failed to begin transaction")
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	return tx, nil
}

// CreateOrder inserts the order header. The generated id and order date are written back to order.
func (r *orderRepository) CreateOrder(ctx context.Context, tx pgx.Tx, order *model.Order) error {
	query := `
		INSERT INTO orders (transaction_id, user_id, total_amount,
			shipping_name, shipping_address, shipping_city, shipping_zip)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, order_date
	`

	err := tx.QueryRow(ctx, query,
		order.TransactionID,
		order.UserID,
		order.TotalAmount,
		order.Shipping.Name,
		order.Shipping.Address,
		order.Shipping.City,
		order.Shipping.Zip,
	).Scan(&order.ID, &order.OrderDate)
	if err != nil {
		r.logger.Error().
			Err(err).
			Str("transaction_id", order.TransactionID).
			Msg("failed to create order")
		return fmt.Errorf("failed to create order: %w", err)
	}

	r.logger.Debug().
		Str("transaction_id", order.TransactionID).
		Int64("order_id", order.ID).
		Msg("order created successfully")

	return nil
}

// CreateOrderLines inserts multiple order lines within the provided transaction.
func (r *orderRepository) CreateOrderLines(ctx context.Context, tx pgx.Tx, lines []model.OrderLine) error {
	if len(lines) == 0 {
		return nil
	}

	query := `
		INSERT INTO order_items (order_id, product_id, quantity, price_per_unit)
		VALUES ($1, $2, $3, $4)
	`

	batch := &pgx.Batch{}
	for _, line := range lines {
		batch.Queue(query, line.OrderID, line.ProductID, line.Quantity, line.PricePerUnit)
	}

	results := tx.SendBatch(ctx, batch)
	defer results.Close()

	for i := 0; i < len(lines); i++ {
		_, err := results.Exec()
		if err != nil {
			r.logger.Error().
				Err(err).
				Int64("order_id", lines[i].OrderID).
				Int64("product_id", lines[i].ProductID).
				Msg("failed to create order line")
			if pgErrorCode(err) == foreignKeyViolation {
				return model.ErrProductNotFound
			}
			return fmt.Errorf("failed to create order line: %w", err)
		}
	}

	r.logger.Debug().
		Int("count", len(lines)).
		Msg("order lines created successfully")

	return nil
}

// GetByTransactionID retrieves an order by its transaction id along with its lines.
func (r *orderRepository) GetByTransactionID(ctx context.Context, transactionID string) (*model.OrderDetail, error) {
	orderQuery := `
		SELECT id, transaction_id, user_id, total_amount,
			shipping_name, shipping_address, shipping_city, shipping_zip, order_date
		FROM orders
		WHERE transaction_id = $1
	`

	var order model.Order
	err := r.pool.QueryRow(ctx, orderQuery, transactionID).Scan(
		&order.ID,
		&order.TransactionID,
		&order.UserID,
		&order.TotalAmount,
		&order.Shipping.Name,
		&order.Shipping.Address,
		&order.Shipping.City,
		&order.Shipping.Zip,
		&order.OrderDate,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			r.logger.Debug().Str("transaction_id", transactionID).Msg("order not found")
			return nil, nil
		}
		r.logger.Error().Err(err).Str("transaction_id", transactionID).Msg("failed to query order")
		return nil, fmt.Errorf("failed to query order: %w", err)
	}

	linesQuery := `
		SELECT id, order_id, product_id, quantity, price_per_unit
		FROM order_items
		WHERE order_id = $1
		ORDER BY id
	`

	rows, err := r.pool.Query(ctx, linesQuery, order.ID)
	if err != nil {
		r.logger.Error().
			Err(err).
			Int64("order_id", order.ID).
			Msg("failed to query order lines")
		return nil, fmt.Errorf("failed to query order lines: %w", err)
	}
	defer rows.Close()

	lines := []model.OrderLine{}
	for rows.Next() {
		var line model.OrderLine
		err := rows.Scan(&line.ID, &line.OrderID, &line.ProductID, &line.Quantity, &line.PricePerUnit)
		if err != nil {
			r.logger.Error().Err(err).Msg("failed to scan order line row")
			return nil, fmt.Errorf("failed to scan order line: %w", err)
		}
		lines = append(lines, line)
	}

	if err := rows.Err(); err != nil {
		r.logger.Error().Err(err).Msg("error iterating order line rows")
		return nil, fmt.Errorf("error iterating order lines: %w", err)
	}

	return &model.OrderDetail{Order: order, Lines: lines}, nil
}
