package service

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"simuweb/internal/model"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func testShipping() model.ShippingDetails {
	return model.ShippingDetails{Name: "Rina", Address: "Jl. Merdeka 1", City: "Bandung", Zip: "40111"}
}

func TestOrderService_CreateOrder_Success(t *testing.T) {
	ctx := context.Background()

	mockOrderRepo := new(MockOrderRepository)
	mockTx := new(MockTx)
	service := NewOrderService(mockOrderRepo, testCatalog(t), zerolog.Nop())

	snapshot := []model.CartLine{{ProductID: 1, Quantity: 3}, {ProductID: 3, Quantity: 1}}

	var created *model.Order
	var createdLines []model.OrderLine

	mockOrderRepo.On("BeginTx", ctx).Return(mockTx, nil)
	mockOrderRepo.On("CreateOrder", ctx, mockTx, mock.AnythingOfType("*model.Order")).
		Run(func(args mock.Arguments) {
			created = args.Get(2).(*model.Order)
			created.ID = 99
		}).
		Return(nil)
	mockOrderRepo.On("CreateOrderLines", ctx, mockTx, mock.AnythingOfType("[]model.OrderLine")).
		Run(func(args mock.Arguments) {
			createdLines = args.Get(2).([]model.OrderLine)
		}).
		Return(nil)
	mockTx.On("Commit", ctx).Return(nil)

	txID, err := service.CreateOrder(ctx, accountIdentity(), snapshot, testShipping())

	require.NoError(t, err)
	assert.Regexp(t, regexp.MustCompile(`^SW-\d+-[0-9a-f]{12}$`), txID)

	require.NotNil(t, created)
	assert.Equal(t, txID, created.TransactionID)
	assert.Equal(t, int64(7), created.UserID)
	assert.Equal(t, testShipping(), created.Shipping)

	require.Len(t, createdLines, 2)
	sum := decimal.Zero
	for _, line := range createdLines {
		assert.Equal(t, int64(99), line.OrderID)
		sum = sum.Add(line.Subtotal())
	}
	assert.True(t, decimal.NewFromInt(4799000*3).Equal(createdLines[0].Subtotal()))
	assert.True(t, sum.Equal(created.TotalAmount))
	assert.True(t, decimal.NewFromInt(4799000*3+2399000).Equal(created.TotalAmount))

	mockOrderRepo.AssertExpectations(t)
	mockTx.AssertExpectations(t)
	mockTx.AssertNotCalled(t, "Rollback", mock.Anything)
}

func TestOrderService_CreateOrder_Preconditions(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name     string
		identity model.Identity
		snapshot []model.CartLine
		shipping model.ShippingDetails
		wantErr  error
	}{
		{
			name:     "Guest cannot check out",
			identity: model.GuestIdentity(testGuestKey),
			snapshot: []model.CartLine{{ProductID: 1, Quantity: 1}},
			shipping: testShipping(),
			wantErr:  model.ErrGuestCheckout,
		},
		{
			name:     "Empty snapshot",
			identity: accountIdentity(),
			shipping: testShipping(),
			wantErr:  model.ErrEmptyCart,
		},
		{
			name:     "Non-positive quantity",
			identity: accountIdentity(),
			snapshot: []model.CartLine{{ProductID: 1, Quantity: 0}},
			shipping: testShipping(),
			wantErr:  model.ErrInvalidQuantity,
		},
		{
			name:     "Unknown product",
			identity: accountIdentity(),
			snapshot: []model.CartLine{{ProductID: 1, Quantity: 1}, {ProductID: 999, Quantity: 1}},
			shipping: testShipping(),
			wantErr:  model.ErrProductNotFound,
		},
		{
			name:     "Blank shipping field",
			identity: accountIdentity(),
			snapshot: []model.CartLine{{ProductID: 1, Quantity: 1}},
			shipping: model.ShippingDetails{Name: "Rina", Address: "  ", City: "Bandung", Zip: "40111"},
			wantErr:  model.ErrShippingRequired,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockOrderRepo := new(MockOrderRepository)
			service := NewOrderService(mockOrderRepo, testCatalog(t), zerolog.Nop())

			txID, err := service.CreateOrder(ctx, tt.identity, tt.snapshot, tt.shipping)

			assert.ErrorIs(t, err, tt.wantErr)
			assert.Empty(t, txID)
			mockOrderRepo.AssertNotCalled(t, "BeginTx", mock.Anything)
		})
	}
}

func TestOrderService_CreateOrder_RollbackOnLineFailure(t *testing.T) {
	ctx := context.Background()

	mockOrderRepo := new(MockOrderRepository)
	mockTx := new(MockTx)
	service := NewOrderService(mockOrderRepo, testCatalog(t), zerolog.Nop())

	mockOrderRepo.On("BeginTx", ctx).Return(mockTx, nil)
	mockOrderRepo.On("CreateOrder", ctx, mockTx, mock.AnythingOfType("*model.Order")).Return(nil)
	mockOrderRepo.On("CreateOrderLines", ctx, mockTx, mock.AnythingOfType("[]model.OrderLine")).
		Return(errors.New("insert failed"))
	mockTx.On("Rollback", ctx).Return(nil)

	txID, err := service.CreateOrder(ctx, accountIdentity(), []model.CartLine{{ProductID: 2, Quantity: 1}}, testShipping())

	require.Error(t, err)
	assert.Empty(t, txID)
	assert.Equal(t, model.ErrCodePersistenceFailure, model.Code(err))

	mockTx.AssertCalled(t, "Rollback", ctx)
	mockTx.AssertNotCalled(t, "Commit", mock.Anything)
}

func TestOrderService_CreateOrder_BeginTxError(t *testing.T) {
	ctx := context.Background()

	mockOrderRepo := new(MockOrderRepository)
	service := NewOrderService(mockOrderRepo, testCatalog(t), zerolog.Nop())

	mockOrderRepo.On("BeginTx", ctx).Return(nil, errors.New("pool exhausted"))

	_, err := service.CreateOrder(ctx, accountIdentity(), []model.CartLine{{ProductID: 2, Quantity: 1}}, testShipping())

	assert.Equal(t, model.ErrCodePersistenceFailure, model.Code(err))
	mockOrderRepo.AssertNotCalled(t, "CreateOrder", mock.Anything, mock.Anything, mock.Anything)
}

func TestOrderService_CreateOrder_CommitError(t *testing.T) {
	ctx := context.Background()

	mockOrderRepo := new(MockOrderRepository)
	mockTx := new(MockTx)
	service := NewOrderService(mockOrderRepo, testCatalog(t), zerolog.Nop())

	mockOrderRepo.On("BeginTx", ctx).Return(mockTx, nil)
	mockOrderRepo.On("CreateOrder", ctx, mockTx, mock.AnythingOfType("*model.Order")).Return(nil)
	mockOrderRepo.On("CreateOrderLines", ctx, mockTx, mock.AnythingOfType("[]model.OrderLine")).Return(nil)
	mockTx.On("Commit", ctx).Return(errors.New("serialization failure"))
	mockTx.On("Rollback", ctx).Return(nil)

	_, err := service.CreateOrder(ctx, accountIdentity(), []model.CartLine{{ProductID: 2, Quantity: 1}}, testShipping())

	assert.Equal(t, model.ErrCodePersistenceFailure, model.Code(err))
	mockTx.AssertCalled(t, "Rollback", ctx)
}

func TestOrderService_CreateOrder_NotConfigured(t *testing.T) {
	service := NewOrderService(nil, testCatalog(t), zerolog.Nop())

	_, err := service.CreateOrder(context.Background(), accountIdentity(), []model.CartLine{{ProductID: 1, Quantity: 1}}, testShipping())

	assert.ErrorIs(t, err, model.ErrNotConfigured)
}

func TestOrderService_GetByTransactionID(t *testing.T) {
	ctx := context.Background()

	detail := &model.OrderDetail{
		Order: model.Order{ID: 1, TransactionID: "SW-1-aaaaaaaaaaaa", UserID: 7},
		Lines: []model.OrderLine{{ProductID: 1, Quantity: 1, PricePerUnit: decimal.NewFromInt(4799000)}},
	}

	tests := []struct {
		name     string
		identity model.Identity
		setup    func(*MockOrderRepository)
		wantErr  error
	}{
		{
			name:     "Owner reads the order",
			identity: accountIdentity(),
			setup: func(m *MockOrderRepository) {
				m.On("GetByTransactionID", ctx, "SW-1-aaaaaaaaaaaa").Return(detail, nil)
			},
		},
		{
			name:     "Other account sees not found",
			identity: model.AccountIdentity(testGuestKey, &model.Account{ID: 8, Email: "x@example.com"}),
			setup: func(m *MockOrderRepository) {
				m.On("GetByTransactionID", ctx, "SW-1-aaaaaaaaaaaa").Return(detail, nil)
			},
			wantErr: model.ErrOrderNotFound,
		},
		{
			name:     "Missing order",
			identity: accountIdentity(),
			setup: func(m *MockOrderRepository) {
				m.On("GetByTransactionID", ctx, "SW-1-aaaaaaaaaaaa").Return(nil, nil)
			},
			wantErr: model.ErrOrderNotFound,
		},
		{
			name:     "Guest is rejected",
			identity: model.GuestIdentity(testGuestKey),
			setup:    func(m *MockOrderRepository) {},
			wantErr:  model.ErrGuestCheckout,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockOrderRepo := new(MockOrderRepository)
			tt.setup(mockOrderRepo)
			service := NewOrderService(mockOrderRepo, testCatalog(t), zerolog.Nop())

			got, err := service.GetByTransactionID(ctx, tt.identity, "SW-1-aaaaaaaaaaaa")

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, got)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, detail, got)
		})
	}
}

func TestNewTransactionID(t *testing.T) {
	now := time.UnixMilli(1700000000123)

	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		id := newTransactionID(now)
		assert.Regexp(t, `^SW-1700000000123-[0-9a-f]{12}$`, id)
		assert.False(t, seen[id], "duplicate transaction id %s", id)
		seen[id] = true
	}
}
