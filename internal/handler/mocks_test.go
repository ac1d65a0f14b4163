package handler

import (
	"context"
	"net/http"
	"time"

	"simuweb/internal/middleware"
	"simuweb/internal/model"
	"simuweb/internal/service"

	"github.com/stretchr/testify/mock"
)

const testSessionKey = "5f0c7d36-0b56-4b5e-8d55-7a8b7c1e9f01"

func testAccount() *model.Account {
	return &model.Account{ID: 7, Email: "rina@example.com", Name: "Rina"}
}

func guestSession() model.Session {
	return model.Session{Key: testSessionKey, State: model.SessionAnonymous}
}

func accountSession() model.Session {
	return model.Session{Key: testSessionKey, State: model.SessionAuthenticated, Account: testAccount()}
}

// withSession attaches sess to req the way the identity middleware does.
func withSession(req *http.Request, sess model.Session) *http.Request {
	return req.WithContext(middleware.WithSession(req.Context(), sess))
}

// MockCatalogService is a mock implementation of CatalogService.
type MockCatalogService struct {
	mock.Mock
}

func (m *MockCatalogService) Query(ctx context.Context, q model.CatalogQuery) model.ProductPage {
	args := m.Called(ctx, q)
	return args.Get(0).(model.ProductPage)
}

func (m *MockCatalogService) GetByID(ctx context.Context, id int64) (*model.Product, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Product), args.Error(1)
}

func (m *MockCatalogService) SeedStore(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

// MockCartService is a mock implementation of CartService.
type MockCartService struct {
	mock.Mock
}

func (m *MockCartService) lines(args mock.Arguments) ([]model.CartLine, error) {
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.CartLine), args.Error(1)
}

func (m *MockCartService) Lines(ctx context.Context, id model.Identity) ([]model.CartLine, error) {
	return m.lines(m.Called(ctx, id))
}

func (m *MockCartService) Add(ctx context.Context, id model.Identity, productID int64, quantity int) ([]model.CartLine, error) {
	return m.lines(m.Called(ctx, id, productID, quantity))
}

func (m *MockCartService) Remove(ctx context.Context, id model.Identity, productID int64) ([]model.CartLine, error) {
	return m.lines(m.Called(ctx, id, productID))
}

func (m *MockCartService) SetQuantity(ctx context.Context, id model.Identity, productID int64, quantity int) ([]model.CartLine, error) {
	return m.lines(m.Called(ctx, id, productID, quantity))
}

func (m *MockCartService) Clear(ctx context.Context, id model.Identity) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockCartService) Summary(ctx context.Context, id model.Identity) (*model.CartSummary, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.CartSummary), args.Error(1)
}

func (m *MockCartService) Summarize(lines []model.CartLine) *model.CartSummary {
	args := m.Called(lines)
	return args.Get(0).(*model.CartSummary)
}

func (m *MockCartService) MergeGuestIntoAccount(ctx context.Context, guestKey string, accountID int64) error {
	args := m.Called(ctx, guestKey, accountID)
	return args.Error(0)
}

func (m *MockCartService) OnLogin(ctx context.Context, guestKey string, account *model.Account) error {
	args := m.Called(ctx, guestKey, account)
	return args.Error(0)
}

// MockWishlistService is a mock implementation of WishlistService.
type MockWishlistService struct {
	mock.Mock
}

func (m *MockWishlistService) ids(args mock.Arguments) ([]int64, error) {
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]int64), args.Error(1)
}

func (m *MockWishlistService) Items(ctx context.Context, id model.Identity) ([]int64, error) {
	return m.ids(m.Called(ctx, id))
}

func (m *MockWishlistService) Summary(ctx context.Context, id model.Identity) (*model.WishlistSummary, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.WishlistSummary), args.Error(1)
}

func (m *MockWishlistService) Summarize(ids []int64) *model.WishlistSummary {
	args := m.Called(ids)
	return args.Get(0).(*model.WishlistSummary)
}

func (m *MockWishlistService) Add(ctx context.Context, id model.Identity, productID int64) ([]int64, error) {
	return m.ids(m.Called(ctx, id, productID))
}

func (m *MockWishlistService) Remove(ctx context.Context, id model.Identity, productID int64) ([]int64, error) {
	return m.ids(m.Called(ctx, id, productID))
}

func (m *MockWishlistService) Has(ctx context.Context, id model.Identity, productID int64) (bool, error) {
	args := m.Called(ctx, id, productID)
	return args.Bool(0), args.Error(1)
}

func (m *MockWishlistService) Count(ctx context.Context, id model.Identity) (int, error) {
	args := m.Called(ctx, id)
	return args.Int(0), args.Error(1)
}

func (m *MockWishlistService) MergeGuestIntoAccount(ctx context.Context, guestKey string, accountID int64) error {
	args := m.Called(ctx, guestKey, accountID)
	return args.Error(0)
}

func (m *MockWishlistService) OnLogin(ctx context.Context, guestKey string, account *model.Account) error {
	args := m.Called(ctx, guestKey, account)
	return args.Error(0)
}

// MockOrderService is a mock implementation of OrderService.
type MockOrderService struct {
	mock.Mock
}

func (m *MockOrderService) CreateOrder(ctx context.Context, id model.Identity, snapshot []model.CartLine, shipping model.ShippingDetails) (string, error) {
	args := m.Called(ctx, id, snapshot, shipping)
	return args.String(0), args.Error(1)
}

func (m *MockOrderService) GetByTransactionID(ctx context.Context, id model.Identity, transactionID string) (*model.OrderDetail, error) {
	args := m.Called(ctx, id, transactionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.OrderDetail), args.Error(1)
}

// MockIdentityService is a mock implementation of IdentityService.
type MockIdentityService struct {
	mock.Mock
}

func (m *MockIdentityService) Current(ctx context.Context, sessionKey string) (model.Session, error) {
	args := m.Called(ctx, sessionKey)
	return args.Get(0).(model.Session), args.Error(1)
}

func (m *MockIdentityService) Login(ctx context.Context, sessionKey, email string) (*model.Account, error) {
	args := m.Called(ctx, sessionKey, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Account), args.Error(1)
}

func (m *MockIdentityService) Register(ctx context.Context, sessionKey, name, email string) (*model.Account, error) {
	args := m.Called(ctx, sessionKey, name, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Account), args.Error(1)
}

func (m *MockIdentityService) Logout(ctx context.Context, sessionKey string) error {
	args := m.Called(ctx, sessionKey)
	return args.Error(0)
}

func (m *MockIdentityService) Subscribe(observer service.LoginObserver) {
	m.Called(observer)
}

// MockTokenIssuer is a mock implementation of TokenIssuer.
type MockTokenIssuer struct {
	mock.Mock
}

func (m *MockTokenIssuer) Issue(sessionKey string, accountID int64, now time.Time) (string, time.Time, error) {
	args := m.Called(sessionKey, accountID, now)
	return args.String(0), args.Get(1).(time.Time), args.Error(2)
}
