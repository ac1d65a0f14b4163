package repository

import (
	"context"
	"errors"
	"fmt"

	"simuweb/internal/model"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// PostgreSQL SQLSTATE codes the repositories translate into domain errors.
const (
	uniqueViolation     = "23505"
	foreignKeyViolation = "23503"
	numericOutOfRange   = "22003"
)

// UserRepository defines the interface for account data access operations.
type UserRepository interface {
	// Create inserts a new account and fills in its ID and CreatedAt.
	// Returns model.ErrEmailTaken when the email is already registered.
	Create(ctx context.Context, account *model.Account) error

	// GetByEmail retrieves an account by its normalised email.
	// Returns nil, nil when no account exists.
	GetByEmail(ctx context.Context, email string) (*model.Account, error)
}

// ProductRepository defines the interface for product data access operations.
type ProductRepository interface {
	// Seed inserts the products that are not stored yet and returns how many rows were added.
	Seed(ctx context.Context, products []model.Product) (int64, error)

	// Count returns the number of stored products.
	Count(ctx context.Context) (int64, error)
}

// CartRepository defines the interface for account cart data access operations.
// Every mutation returns the cart lines as they are after the change.
type CartRepository interface {
	// List retrieves the lines of an account's cart in insertion order.
	List(ctx context.Context, userID int64) ([]model.CartLine, error)

	// Add increases the quantity of a line, creating it when absent.
	Add(ctx context.Context, userID, productID int64, quantity int) ([]model.CartLine, error)

	// SetQuantity replaces the quantity of a line, creating it when absent.
	SetQuantity(ctx context.Context, userID, productID int64, quantity int) ([]model.CartLine, error)

	// Remove deletes a line. Removing an absent line is not an error.
	Remove(ctx context.Context, userID, productID int64) ([]model.CartLine, error)

	// Clear deletes every line of an account's cart.
	Clear(ctx context.Context, userID int64) error

	// Merge adds lines into the account cart once per mergeKey, in a single transaction.
	// It reports false when the key was already merged and nothing changed.
	Merge(ctx context.Context, userID int64, mergeKey string, lines []model.CartLine) (bool, error)
}

// WishlistRepository defines the interface for account wishlist data access operations.
type WishlistRepository interface {
	// List retrieves the product IDs of an account's wishlist in insertion order.
	List(ctx context.Context, userID int64) ([]int64, error)

	// Add inserts a product when absent and returns the resulting wishlist.
	Add(ctx context.Context, userID, productID int64) ([]int64, error)

	// Remove deletes a product when present and returns the resulting wishlist.
	Remove(ctx context.Context, userID, productID int64) ([]int64, error)

	// Merge inserts every product not yet present in a single transaction.
	Merge(ctx context.Context, userID int64, productIDs []int64) error
}

// OrderRepository defines the interface for order data access operations.
type OrderRepository interface {
	// BeginTx starts a new database transaction.
	BeginTx(ctx context.Context) (pgx.Tx, error)

	// CreateOrder inserts a new order within the provided transaction and sets its ID and OrderDate.
	CreateOrder(ctx context.Context, tx pgx.Tx, order *model.Order) error

	// CreateOrderLines inserts the order lines within the provided transaction.
	CreateOrderLines(ctx context.Context, tx pgx.Tx, lines []model.OrderLine) error

	// GetByTransactionID retrieves an order with its lines.
	// Returns nil, nil when the order does not exist.
	GetByTransactionID(ctx context.Context, transactionID string) (*model.OrderDetail, error)
}

// querier is satisfied by both *pgxpool.Pool and pgx.Tx.
type querier interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
}

// txStarter is satisfied by *pgxpool.Pool.
type txStarter interface {
	Begin(ctx context.Context) (pgx.Tx, error)
}

// inTx runs fn inside a transaction, committing on success and rolling back otherwise.
func inTx(ctx context.Context, db txStarter, fn func(tx pgx.Tx) error) (err error) {
	tx, err := db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback(ctx)
		}
	}()

	if err = fn(tx); err != nil {
		return err
	}
	if err = tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

func pgErrorCode(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code
	}
	return ""
}
