package service

import (
	"context"
	"slices"

	"simuweb/internal/catalog"
	"simuweb/internal/guest"
	"simuweb/internal/model"
	"simuweb/internal/repository"

	"github.com/rs/zerolog"
)

// wishlistService implements WishlistService.
type wishlistService struct {
	catalog      *catalog.Catalog
	store        guest.Store
	wishlistRepo repository.WishlistRepository
	logger       zerolog.Logger
}

// NewWishlistService creates a new wishlist service. wishlistRepo may be nil
// when no database is configured.
func NewWishlistService(
	c *catalog.Catalog,
	store guest.Store,
	wishlistRepo repository.WishlistRepository,
	logger zerolog.Logger,
) WishlistService {
	return &wishlistService{
		catalog:      c,
		store:        store,
		wishlistRepo: wishlistRepo,
		logger:       logger.With().Str("service", "wishlist").Logger(),
	}
}

func (s *wishlistService) Items(ctx context.Context, id model.Identity) ([]int64, error) {
	if id.IsGuest() {
		blob, _, err := s.readGuest(ctx, id.GuestKey)
		if err != nil {
			return nil, err
		}
		return blob.ProductIDs, nil
	}

	if s.wishlistRepo == nil {
		return nil, model.ErrNotConfigured
	}
	ids, err := s.wishlistRepo.List(ctx, id.AccountID())
	if err != nil {
		return nil, model.Persistence("list wishlist", err)
	}
	return ids, nil
}

func (s *wishlistService) Summary(ctx context.Context, id model.Identity) (*model.WishlistSummary, error) {
	ids, err := s.Items(ctx, id)
	if err != nil {
		return nil, err
	}
	return s.Summarize(ids), nil
}

func (s *wishlistService) Summarize(ids []int64) *model.WishlistSummary {
	summary := &model.WishlistSummary{Products: make([]model.Product, 0, len(ids))}
	for _, productID := range ids {
		if p, ok := s.catalog.Get(productID); ok {
			summary.Products = append(summary.Products, p)
		}
	}
	summary.Count = len(summary.Products)
	return summary
}

// Add inserts productID if it is not already on the wishlist.
func (s *wishlistService) Add(ctx context.Context, id model.Identity, productID int64) ([]int64, error) {
	if _, ok := s.catalog.Get(productID); !ok {
		s.logger.Warn().Int64("product_id", productID).Msg("wishlist add of unknown product")
		return nil, model.ErrProductNotFound
	}

	if id.IsGuest() {
		blob, _, err := s.readGuest(ctx, id.GuestKey)
		if err != nil {
			return nil, err
		}
		if slices.Contains(blob.ProductIDs, productID) {
			return blob.ProductIDs, nil
		}
		return s.writeGuest(ctx, id.GuestKey, append(blob.ProductIDs, productID))
	}

	if s.wishlistRepo == nil {
		return nil, model.ErrNotConfigured
	}
	ids, err := s.wishlistRepo.Add(ctx, id.AccountID(), productID)
	if err != nil {
		return nil, model.Persistence("add wishlist item", err)
	}
	return ids, nil
}

// Remove deletes productID from the wishlist. Removing an absent product is a no-op.
func (s *wishlistService) Remove(ctx context.Context, id model.Identity, productID int64) ([]int64, error) {
	if id.IsGuest() {
		blob, _, err := s.readGuest(ctx, id.GuestKey)
		if err != nil {
			return nil, err
		}
		if !slices.Contains(blob.ProductIDs, productID) {
			return blob.ProductIDs, nil
		}
		kept := slices.DeleteFunc(blob.ProductIDs, func(pid int64) bool { return pid == productID })
		return s.writeGuest(ctx, id.GuestKey, kept)
	}

	if s.wishlistRepo == nil {
		return nil, model.ErrNotConfigured
	}
	ids, err := s.wishlistRepo.Remove(ctx, id.AccountID(), productID)
	if err != nil {
		return nil, model.Persistence("remove wishlist item", err)
	}
	return ids, nil
}

func (s *wishlistService) Has(ctx context.Context, id model.Identity, productID int64) (bool, error) {
	ids, err := s.Items(ctx, id)
	if err != nil {
		return false, err
	}
	return slices.Contains(ids, productID), nil
}

func (s *wishlistService) Count(ctx context.Context, id model.Identity) (int, error) {
	ids, err := s.Items(ctx, id)
	if err != nil {
		return 0, err
	}
	return len(ids), nil
}

func (s *wishlistService) MergeGuestIntoAccount(ctx context.Context, guestKey string, accountID int64) error {
	if s.wishlistRepo == nil {
		return model.ErrNotConfigured
	}

	blob, found, err := s.readGuest(ctx, guestKey)
	if err != nil {
		return err
	}
	if !found {
		return nil
	}

	ids := make([]int64, 0, len(blob.ProductIDs))
	for _, productID := range blob.ProductIDs {
		if _, ok := s.catalog.Get(productID); ok {
			ids = append(ids, productID)
		}
	}

	if err := s.wishlistRepo.Merge(ctx, accountID, ids); err != nil {
		s.logger.Error().Err(err).Int64("user_id", accountID).Msg("failed to merge guest wishlist")
		return model.Persistence("merge guest wishlist", err)
	}

	if err := s.store.Delete(ctx, guest.WishlistKey(guestKey)); err != nil {
		s.logger.Error().Err(err).Int64("user_id", accountID).Msg("failed to delete merged guest wishlist")
		return model.Persistence("delete merged guest wishlist", err)
	}

	s.logger.Info().
		Int64("user_id", accountID).
		Int("items", len(ids)).
		Msg("guest wishlist merged into account")
	return nil
}

// OnLogin merges the session's guest wishlist into the account that just logged in.
func (s *wishlistService) OnLogin(ctx context.Context, guestKey string, account *model.Account) error {
	return s.MergeGuestIntoAccount(ctx, guestKey, account.ID)
}

func (s *wishlistService) readGuest(ctx context.Context, guestKey string) (guest.WishlistBlob, bool, error) {
	var blob guest.WishlistBlob
	found, err := s.store.Get(ctx, guest.WishlistKey(guestKey), &blob)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to read guest wishlist")
		return guest.WishlistBlob{}, false, model.Persistence("read guest wishlist", err)
	}
	if blob.ProductIDs == nil {
		blob.ProductIDs = []int64{}
	}
	return blob, found, nil
}

func (s *wishlistService) writeGuest(ctx context.Context, guestKey string, ids []int64) ([]int64, error) {
	blob := guest.WishlistBlob{ProductIDs: ids}
	if err := s.store.Put(ctx, guest.WishlistKey(guestKey), blob); err != nil {
		s.logger.Error().Err(err).Msg("failed to write guest wishlist")
		return nil, model.Persistence("write guest wishlist", err)
	}
	return ids, nil
}
