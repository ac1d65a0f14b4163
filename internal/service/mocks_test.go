package service

import (
	"context"
	"testing"

	"simuweb/internal/catalog"
	"simuweb/internal/model"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const (
	testGuestKey = "5f0c7d36-0b56-4b5e-8d55-7a8b7c1e9f01"
	otherKey     = "9a1d2b3c-4e5f-4a6b-8c7d-0e1f2a3b4c5d"
)

func testCatalog(t *testing.T) *catalog.Catalog {
	t.Helper()
	c, err := catalog.New(catalog.DefaultProducts())
	require.NoError(t, err)
	return c
}

func testAccount() *model.Account {
	return &model.Account{ID: 7, Email: "rina@example.com", Name: "Rina"}
}

func accountIdentity() model.Identity {
	return model.AccountIdentity(testGuestKey, testAccount())
}

// MockProductRepository is a mock implementation of ProductRepository.
type MockProductRepository struct {
	mock.Mock
}

func (m *MockProductRepository) Seed(ctx context.Context, products []model.Product) (int64, error) {
	args := m.Called(ctx, products)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockProductRepository) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

// MockUserRepository is a mock implementation of UserRepository.
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, account *model.Account) error {
	args := m.Called(ctx, account)
	return args.Error(0)
}

func (m *MockUserRepository) GetByEmail(ctx context.Context, email string) (*model.Account, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Account), args.Error(1)
}

// MockCartRepository is a mock implementation of CartRepository.
type MockCartRepository struct {
	mock.Mock
}

func (m *MockCartRepository) lines(args mock.Arguments) ([]model.CartLine, error) {
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.CartLine), args.Error(1)
}

func (m *MockCartRepository) List(ctx context.Context, userID int64) ([]model.CartLine, error) {
	return m.lines(m.Called(ctx, userID))
}

func (m *MockCartRepository) Add(ctx context.Context, userID, productID int64, quantity int) ([]model.CartLine, error) {
	return m.lines(m.Called(ctx, userID, productID, quantity))
}

func (m *MockCartRepository) SetQuantity(ctx context.Context, userID, productID int64, quantity int) ([]model.CartLine, error) {
	return m.lines(m.Called(ctx, userID, productID, quantity))
}

func (m *MockCartRepository) Remove(ctx context.Context, userID, productID int64) ([]model.CartLine, error) {
	return m.lines(m.Called(ctx, userID, productID))
}

func (m *MockCartRepository) Clear(ctx context.Context, userID int64) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}

func (m *MockCartRepository) Merge(ctx context.Context, userID int64, mergeKey string, lines []model.CartLine) (bool, error) {
	args := m.Called(ctx, userID, mergeKey, lines)
	return args.Bool(0), args.Error(1)
}

// MockWishlistRepository is a mock implementation of WishlistRepository.
type MockWishlistRepository struct {
	mock.Mock
}

func (m *MockWishlistRepository) ids(args mock.Arguments) ([]int64, error) {
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]int64), args.Error(1)
}

func (m *MockWishlistRepository) List(ctx context.Context, userID int64) ([]int64, error) {
	return m.ids(m.Called(ctx, userID))
}

func (m *MockWishlistRepository) Add(ctx context.Context, userID, productID int64) ([]int64, error) {
	return m.ids(m.Called(ctx, userID, productID))
}

func (m *MockWishlistRepository) Remove(ctx context.Context, userID, productID int64) ([]int64, error) {
	return m.ids(m.Called(ctx, userID, productID))
}

func (m *MockWishlistRepository) Merge(ctx context.Context, userID int64, productIDs []int64) error {
	args := m.Called(ctx, userID, productIDs)
	return args.Error(0)
}

// MockOrderRepository is a mock implementation of OrderRepository.
type MockOrderRepository struct {
	mock.Mock
}

func (m *MockOrderRepository) BeginTx(ctx context.Context) (pgx.Tx, error) {
	args := m.Called(ctx)
	// Return a MockTx interface value, not a pointer
	if tx, ok := args.Get(0).(pgx.Tx); ok {
		return tx, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockOrderRepository) CreateOrder(ctx context.Context, tx pgx.Tx, order *model.Order) error {
	args := m.Called(ctx, tx, order)
	return args.Error(0)
}

func (m *MockOrderRepository) CreateOrderLines(ctx context.Context, tx pgx.Tx, lines []model.OrderLine) error {
	args := m.Called(ctx, tx, lines)
	return args.Error(0)
}

func (m *MockOrderRepository) GetByTransactionID(ctx context.Context, transactionID string) (*model.OrderDetail, error) {
	args := m.Called(ctx, transactionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.OrderDetail), args.Error(1)
}

// MockTx is a minimal mock implementation of pgx.Tx for testing.
type MockTx struct {
	mock.Mock
}

func (m *MockTx) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockTx) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

// Stub methods to satisfy pgx.Tx interface - these are not used in our tests
func (m *MockTx) Begin(ctx context.Context) (pgx.Tx, error) { return nil, nil }
func (m *MockTx) CopyFrom(ctx context.Context, tableName pgx.Identifier, columnNames []string, rowSrc pgx.CopyFromSource) (int64, error) {
	return 0, nil
}
func (m *MockTx) SendBatch(ctx context.Context, b *pgx.Batch) pgx.BatchResults { return nil }
func (m *MockTx) LargeObjects() pgx.LargeObjects                               { return pgx.LargeObjects{} }
func (m *MockTx) Prepare(ctx context.Context, name, sql string) (*pgconn.StatementDescription, error) {
	return nil, nil
}
func (m *MockTx) Exec(ctx context.Context, sql string, arguments ...any) (commandTag pgconn.CommandTag, err error) {
	return
}
func (m *MockTx) Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error) {
	return nil, nil
}
func (m *MockTx) QueryRow(ctx context.Context, sql string, args ...any) pgx.Row { return nil }
func (m *MockTx) Conn() *pgx.Conn                                               { return nil }

// MockLoginObserver is a mock implementation of LoginObserver.
type MockLoginObserver struct {
	mock.Mock
}

func (m *MockLoginObserver) OnLogin(ctx context.Context, guestKey string, account *model.Account) error {
	args := m.Called(ctx, guestKey, account)
	return args.Error(0)
}

// failingStore is a guest.Store whose every call fails.
type failingStore struct {
	err error
}

func (s failingStore) Get(ctx context.Context, key string, v any) (bool, error) { return false, s.err }
func (s failingStore) Put(ctx context.Context, key string, v any) error         { return s.err }
func (s failingStore) Delete(ctx context.Context, key string) error             { return s.err }
