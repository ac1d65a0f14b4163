package service

import (
	"context"

	"simuweb/internal/model"
)

// CatalogService defines read access to the product catalogue.
type CatalogService interface {
	// Query filters, sorts and paginates the catalogue.
	Query(ctx context.Context, q model.CatalogQuery) model.ProductPage

	// GetByID retrieves a single product by ID.
	GetByID(ctx context.Context, id int64) (*model.Product, error)

	// SeedStore inserts the catalogue products missing from the database
	// and returns how many were added.
	SeedStore(ctx context.Context) (int64, error)
}

// CartService defines cart operations for either a guest or an account.
// Mutations return the cart lines as they are after the change.
type CartService interface {
	Lines(ctx context.Context, id model.Identity) ([]model.CartLine, error)
	Add(ctx context.Context, id model.Identity, productID int64, quantity int) ([]model.CartLine, error)
	Remove(ctx context.Context, id model.Identity, productID int64) ([]model.CartLine, error)
	SetQuantity(ctx context.Context, id model.Identity, productID int64, quantity int) ([]model.CartLine, error)
	Clear(ctx context.Context, id model.Identity) error

	// Summary joins the cart lines with the catalogue and computes count and total.
	Summary(ctx context.Context, id model.Identity) (*model.CartSummary, error)

	// Summarize joins lines already in hand with the catalogue.
	Summarize(lines []model.CartLine) *model.CartSummary

	// MergeGuestIntoAccount moves the guest cart into the account cart, summing
	// quantities. Merging the same guest cart twice has no further effect.
	MergeGuestIntoAccount(ctx context.Context, guestKey string, accountID int64) error

	LoginObserver
}

// WishlistService defines wishlist operations for either a guest or an account.
type WishlistService interface {
	Items(ctx context.Context, id model.Identity) ([]int64, error)
	Summary(ctx context.Context, id model.Identity) (*model.WishlistSummary, error)
	Summarize(ids []int64) *model.WishlistSummary
	Add(ctx context.Context, id model.Identity, productID int64) ([]int64, error)
	Remove(ctx context.Context, id model.Identity, productID int64) ([]int64, error)
	Has(ctx context.Context, id model.Identity, productID int64) (bool, error)
	Count(ctx context.Context, id model.Identity) (int, error)

	// MergeGuestIntoAccount adds the guest wishlist to the account wishlist as a set union.
	MergeGuestIntoAccount(ctx context.Context, guestKey string, accountID int64) error

	LoginObserver
}

// OrderService defines operations for recording orders.
type OrderService interface {
	// CreateOrder records the snapshot as an order and returns its transaction id.
	// It does not clear the cart.
	CreateOrder(ctx context.Context, id model.Identity, snapshot []model.CartLine, shipping model.ShippingDetails) (string, error)

	// GetByTransactionID retrieves an order owned by the identity's account.
	GetByTransactionID(ctx context.Context, id model.Identity, transactionID string) (*model.OrderDetail, error)
}

// IdentityService tracks the authentication state of client sessions.
type IdentityService interface {
	// Current returns the session for sessionKey, Anonymous when unknown.
	Current(ctx context.Context, sessionKey string) (model.Session, error)

	// Login authenticates the session as the account registered for email.
	Login(ctx context.Context, sessionKey, email string) (*model.Account, error)

	// Register creates an account and authenticates the session as it.
	Register(ctx context.Context, sessionKey, name, email string) (*model.Account, error)

	// Logout returns the session to Anonymous.
	Logout(ctx context.Context, sessionKey string) error

	// Subscribe registers an observer of Anonymous to Authenticated transitions.
	Subscribe(observer LoginObserver)
}

// LoginObserver is notified once per Anonymous to Authenticated transition,
// and again when an authenticated session logs in as the same account.
// guestKey is the session key whose guest scope should be taken over by account.
type LoginObserver interface {
	OnLogin(ctx context.Context, guestKey string, account *model.Account) error
}
