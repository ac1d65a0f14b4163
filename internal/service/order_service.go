package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"simuweb/internal/catalog"
	"simuweb/internal/model"
	"simuweb/internal/repository"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

// orderService implements OrderService.
type orderService struct {
	orderRepo repository.OrderRepository
	catalog   *catalog.Catalog
	now       func() time.Time
	logger    zerolog.Logger
}

// NewOrderService creates a new order service. orderRepo may be nil when no
// database is configured.
func NewOrderService(
	orderRepo repository.OrderRepository,
	c *catalog.Catalog,
	logger zerolog.Logger,
) OrderService {
	return &orderService{
		orderRepo: orderRepo,
		catalog:   c,
		now:       time.Now,
		logger:    logger.With().Str("service", "order").Logger(),
	}
}

// CreateOrder prices the snapshot at current catalogue prices and stores the
// order header and lines in one transaction.
func (s *orderService) CreateOrder(
	ctx context.Context,
	id model.Identity,
	snapshot []model.CartLine,
	shipping model.ShippingDetails,
) (transactionID string, err error) {
	if id.IsGuest() {
		s.logger.Warn().Msg("checkout attempted by guest")
		return "", model.ErrGuestCheckout
	}
	if s.orderRepo == nil {
		return "", model.ErrNotConfigured
	}

	lines, total, err := s.priceSnapshot(snapshot, shipping)
	if err != nil {
		return "", err
	}

	order := &model.Order{
		TransactionID: newTransactionID(s.now()),
		UserID:        id.AccountID(),
		TotalAmount:   total,
		Shipping:      shipping,
	}

	// Start transaction
	tx, err := s.orderRepo.BeginTx(ctx)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to begin transaction")
		return "", model.Persistence("create order", err)
	}

	// Ensure transaction is rolled back on error
	defer func() {
		if err != nil {
			if rbErr := tx.Rollback(ctx); rbErr != nil {
				s.logger.Error().Err(rbErr).Msg("failed to rollback transaction")
			}
		}
	}()

	if err = s.orderRepo.CreateOrder(ctx, tx, order); err != nil {
		s.logger.Error().Err(err).Str("transaction_id", order.TransactionID).Msg("failed to create order")
		return "", model.Persistence("create order", err)
	}

	for i := range lines {
		lines[i].OrderID = order.ID
	}

	if err = s.orderRepo.CreateOrderLines(ctx, tx, lines); err != nil {
		s.logger.Error().
			Err(err).
			Str("transaction_id", order.TransactionID).
			Int("line_count", len(lines)).
			Msg("failed to create order lines")
		return "", model.Persistence("create order lines", err)
	}

	// Commit transaction
	if err = tx.Commit(ctx); err != nil {
		s.logger.Error().Err(err).Str("transaction_id", order.TransactionID).Msg("failed to commit transaction")
		return "", model.Persistence("create order", err)
	}

	s.logger.Info().
		Str("transaction_id", order.TransactionID).
		Int64("user_id", order.UserID).
		Int("line_count", len(lines)).
		Str("total", total.StringFixed(2)).
		Msg("order created successfully")

	return order.TransactionID, nil
}

func (s *orderService) GetByTransactionID(ctx context.Context, id model.Identity, transactionID string) (*model.OrderDetail, error) {
	if id.IsGuest() {
		return nil, model.ErrGuestCheckout
	}
	if s.orderRepo == nil {
		return nil, model.ErrNotConfigured
	}

	detail, err := s.orderRepo.GetByTransactionID(ctx, transactionID)
	if err != nil {
		s.logger.Error().Err(err).Str("transaction_id", transactionID).Msg("failed to get order")
		return nil, model.Persistence("get order", err)
	}

	// Orders of other accounts are reported as missing.
	if detail == nil || detail.Order.UserID != id.AccountID() {
		s.logger.Debug().Str("transaction_id", transactionID).Msg("order not found")
		return nil, model.ErrOrderNotFound
	}

	return detail, nil
}

// priceSnapshot validates the checkout input and builds order lines at the current catalogue prices.
func (s *orderService) priceSnapshot(snapshot []model.CartLine, shipping model.ShippingDetails) ([]model.OrderLine, decimal.Decimal, error) {
	if len(snapshot) == 0 {
		s.logger.Warn().Msg("checkout of empty cart")
		return nil, decimal.Zero, model.ErrEmptyCart
	}
	if blank(shipping.Name) || blank(shipping.Address) || blank(shipping.City) || blank(shipping.Zip) {
		return nil, decimal.Zero, model.ErrShippingRequired
	}

	lines := make([]model.OrderLine, 0, len(snapshot))
	total := decimal.Zero
	for i, item := range snapshot {
		if item.Quantity <= 0 {
			s.logger.Warn().
				Int("item_index", i).
				Int64("product_id", item.ProductID).
				Int("quantity", item.Quantity).
				Msg("invalid quantity")
			return nil, decimal.Zero, model.ErrInvalidQuantity
		}

		p, ok := s.catalog.Get(item.ProductID)
		if !ok {
			s.logger.Warn().Int64("product_id", item.ProductID).Msg("order line references unknown product")
			return nil, decimal.Zero, fmt.Errorf("product %d: %w", item.ProductID, model.ErrProductNotFound)
		}

		line := model.OrderLine{
			ProductID:    item.ProductID,
			Quantity:     item.Quantity,
			PricePerUnit: p.Price,
		}
		lines = append(lines, line)
		total = total.Add(line.Subtotal())
	}

	return lines, total, nil
}

// newTransactionID combines the creation time with 48 random bits.
func newTransactionID(now time.Time) string {
	random := strings.ReplaceAll(uuid.NewString(), "-", "")[:12]
	return fmt.Sprintf("SW-%d-%s", now.UnixMilli(), random)
}

func blank(s string) bool {
	return strings.TrimSpace(s) == ""
}
