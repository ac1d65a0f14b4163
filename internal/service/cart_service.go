package service

import (
	"context"

	"simuweb/internal/catalog"
	"simuweb/internal/guest"
	"simuweb/internal/model"
	"simuweb/internal/repository"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

// cartService implements CartService. Guest carts live in the blob store,
// account carts in the cart repository.
type cartService struct {
	catalog  *catalog.Catalog
	store    guest.Store
	cartRepo repository.CartRepository
	logger   zerolog.Logger
}

// NewCartService creates a new cart service. cartRepo may be nil when no
// database is configured; account carts then report model.ErrNotConfigured.
func NewCartService(
	c *catalog.Catalog,
	store guest.Store,
	cartRepo repository.CartRepository,
	logger zerolog.Logger,
) CartService {
	return &cartService{
		catalog:  c,
		store:    store,
		cartRepo: cartRepo,
		logger:   logger.With().Str("service", "cart").Logger(),
	}
}

func (s *cartService) Lines(ctx context.Context, id model.Identity) ([]model.CartLine, error) {
	if id.IsGuest() {
		blob, _, err := s.readGuest(ctx, id.GuestKey)
		if err != nil {
			return nil, err
		}
		return blob.Lines, nil
	}

	if s.cartRepo == nil {
		return nil, model.ErrNotConfigured
	}
	lines, err := s.cartRepo.List(ctx, id.AccountID())
	if err != nil {
		return nil, model.Persistence("list cart", err)
	}
	return lines, nil
}

func (s *cartService) Add(ctx context.Context, id model.Identity, productID int64, quantity int) ([]model.CartLine, error) {
	if quantity == 0 {
		quantity = 1
	}
	if quantity < 0 || quantity > model.MaxLineQuantity {
		s.logger.Warn().Int64("product_id", productID).Int("quantity", quantity).Msg("invalid quantity")
		return nil, model.ErrInvalidQuantity
	}
	if _, ok := s.catalog.Get(productID); !ok {
		s.logger.Warn().Int64("product_id", productID).Msg("add of unknown product")
		return nil, model.ErrProductNotFound
	}

	if id.IsGuest() {
		return s.updateGuest(ctx, id.GuestKey, func(lines []model.CartLine) ([]model.CartLine, error) {
			if i := indexOfLine(lines, productID); i >= 0 {
				if lines[i].Quantity > model.MaxLineQuantity-quantity {
					s.logger.Warn().
						Int64("product_id", productID).
						Int("quantity", lines[i].Quantity).
						Int("added", quantity).
						Msg("cart line quantity limit exceeded")
					return nil, model.ErrInvalidQuantity
				}
				lines[i].Quantity += quantity
				return lines, nil
			}
			return append(lines, model.CartLine{ProductID: productID, Quantity: quantity}), nil
		})
	}

	if s.cartRepo == nil {
		return nil, model.ErrNotConfigured
	}
	lines, err := s.cartRepo.Add(ctx, id.AccountID(), productID, quantity)
	if err != nil {
		return nil, model.Persistence("add cart line", err)
	}
	return lines, nil
}

func (s *cartService) Remove(ctx context.Context, id model.Identity, productID int64) ([]model.CartLine, error) {
	if id.IsGuest() {
		blob, _, err := s.readGuest(ctx, id.GuestKey)
		if err != nil {
			return nil, err
		}
		if indexOfLine(blob.Lines, productID) < 0 {
			return blob.Lines, nil
		}
		return s.updateGuest(ctx, id.GuestKey, func(lines []model.CartLine) ([]model.CartLine, error) {
			kept := lines[:0]
			for _, line := range lines {
				if line.ProductID != productID {
					kept = append(kept, line)
				}
			}
			return kept, nil
		})
	}

	if s.cartRepo == nil {
		return nil, model.ErrNotConfigured
	}
	lines, err := s.cartRepo.Remove(ctx, id.AccountID(), productID)
	if err != nil {
		return nil, model.Persistence("remove cart line", err)
	}
	return lines, nil
}

// SetQuantity replaces a line's quantity. A quantity of zero or less removes the line.
func (s *cartService) SetQuantity(ctx context.Context, id model.Identity, productID int64, quantity int) ([]model.CartLine, error) {
	if quantity <= 0 {
		return s.Remove(ctx, id, productID)
	}
	if quantity > model.MaxLineQuantity {
		s.logger.Warn().Int64("product_id", productID).Int("quantity", quantity).Msg("invalid quantity")
		return nil, model.ErrInvalidQuantity
	}
	if _, ok := s.catalog.Get(productID); !ok {
		s.logger.Warn().Int64("product_id", productID).Msg("update of unknown product")
		return nil, model.ErrProductNotFound
	}

	if id.IsGuest() {
		return s.updateGuest(ctx, id.GuestKey, func(lines []model.CartLine) ([]model.CartLine, error) {
			if i := indexOfLine(lines, productID); i >= 0 {
				lines[i].Quantity = quantity
				return lines, nil
			}
			return append(lines, model.CartLine{ProductID: productID, Quantity: quantity}), nil
		})
	}

	if s.cartRepo == nil {
		return nil, model.ErrNotConfigured
	}
	lines, err := s.cartRepo.SetQuantity(ctx, id.AccountID(), productID, quantity)
	if err != nil {
		return nil, model.Persistence("set cart quantity", err)
	}
	return lines, nil
}

func (s *cartService) Clear(ctx context.Context, id model.Identity) error {
	if id.IsGuest() {
		if err := s.store.Delete(ctx, guest.CartKey(id.GuestKey)); err != nil {
			return model.Persistence("clear guest cart", err)
		}
		return nil
	}

	if s.cartRepo == nil {
		return model.ErrNotConfigured
	}
	if err := s.cartRepo.Clear(ctx, id.AccountID()); err != nil {
		return model.Persistence("clear cart", err)
	}
	return nil
}

func (s *cartService) Summary(ctx context.Context, id model.Identity) (*model.CartSummary, error) {
	lines, err := s.Lines(ctx, id)
	if err != nil {
		return nil, err
	}
	return s.Summarize(lines), nil
}

// Summarize prices every line at the current catalogue price. Lines whose
// product is no longer in the catalogue are left out.
func (s *cartService) Summarize(lines []model.CartLine) *model.CartSummary {
	summary := &model.CartSummary{Items: make([]model.CartItem, 0, len(lines)), Total: decimal.Zero}
	for _, line := range lines {
		p, ok := s.catalog.Get(line.ProductID)
		if !ok {
			s.logger.Warn().Int64("product_id", line.ProductID).Msg("cart line references unknown product")
			continue
		}
		subtotal := p.Price.Mul(decimal.NewFromInt(int64(line.Quantity)))
		summary.Items = append(summary.Items, model.CartItem{Product: p, Quantity: line.Quantity, Subtotal: subtotal})
		summary.Count += line.Quantity
		summary.Total = summary.Total.Add(subtotal)
	}

	return summary
}

// MergeGuestIntoAccount is idempotent per guest cart revision: the repository
// records the revision together with the upsert, and the guest blob is deleted
// only after that commit.
func (s *cartService) MergeGuestIntoAccount(ctx context.Context, guestKey string, accountID int64) error {
	if s.cartRepo == nil {
		return model.ErrNotConfigured
	}

	blob, found, err := s.readGuest(ctx, guestKey)
	if err != nil {
		return err
	}
	if !found {
		return nil
	}

	lines := make([]model.CartLine, 0, len(blob.Lines))
	for _, line := range blob.Lines {
		if _, ok := s.catalog.Get(line.ProductID); !ok || line.Quantity <= 0 || line.Quantity > model.MaxLineQuantity {
			s.logger.Warn().
				Int64("product_id", line.ProductID).
				Int("quantity", line.Quantity).
				Msg("dropping invalid guest cart line")
			continue
		}
		lines = append(lines, line)
	}

	if len(lines) > 0 {
		merged, err := s.cartRepo.Merge(ctx, accountID, guestKey+":"+blob.Revision, lines)
		if err != nil {
			s.logger.Error().Err(err).Int64("user_id", accountID).Msg("failed to merge guest cart")
			return model.Persistence("merge guest cart", err)
		}
		s.logger.Info().
			Int64("user_id", accountID).
			Int("lines", len(lines)).
			Bool("applied", merged).
			Msg("guest cart merged into account")
	}

	if err := s.store.Delete(ctx, guest.CartKey(guestKey)); err != nil {
		s.logger.Error().Err(err).Int64("user_id", accountID).Msg("failed to delete merged guest cart")
		return model.Persistence("delete merged guest cart", err)
	}
	return nil
}

// OnLogin merges the session's guest cart into the account that just logged in.
func (s *cartService) OnLogin(ctx context.Context, guestKey string, account *model.Account) error {
	return s.MergeGuestIntoAccount(ctx, guestKey, account.ID)
}

func (s *cartService) readGuest(ctx context.Context, guestKey string) (guest.CartBlob, bool, error) {
	var blob guest.CartBlob
	found, err := s.store.Get(ctx, guest.CartKey(guestKey), &blob)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to read guest cart")
		return guest.CartBlob{}, false, model.Persistence("read guest cart", err)
	}
	if blob.Lines == nil {
		blob.Lines = []model.CartLine{}
	}
	return blob, found, nil
}

// updateGuest applies fn to the guest cart and stores it under a new revision.
// The blob is left untouched when fn fails.
func (s *cartService) updateGuest(ctx context.Context, guestKey string, fn func([]model.CartLine) ([]model.CartLine, error)) ([]model.CartLine, error) {
	blob, _, err := s.readGuest(ctx, guestKey)
	if err != nil {
		return nil, err
	}

	lines, err := fn(blob.Lines)
	if err != nil {
		return nil, err
	}
	blob.Lines = lines
	blob.Revision = uuid.NewString()

	if err := s.store.Put(ctx, guest.CartKey(guestKey), blob); err != nil {
		s.logger.Error().Err(err).Msg("failed to write guest cart")
		return nil, model.Persistence("write guest cart", err)
	}
	return blob.Lines, nil
}

func indexOfLine(lines []model.CartLine, productID int64) int {
	for i, line := range lines {
		if line.ProductID == productID {
			return i
		}
	}
	return -1
}
