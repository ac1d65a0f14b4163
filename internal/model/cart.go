package model

import (
	"math"

	"github.com/shopspring/decimal"
)

// MaxLineQuantity is the largest quantity a single cart line may hold. It
// matches the range of the cart_items.quantity INTEGER column.
const MaxLineQuantity = math.MaxInt32

// CartLine is a quantity of one product held in a cart.
type CartLine struct {
	ProductID int64 `json:"productId" db:"product_id"`
	Quantity  int   `json:"quantity" db:"quantity"`
}

// CartItem is a cart line joined with its catalogue product.
type CartItem struct {
	Product  Product         `json:"product"`
	Quantity int             `json:"quantity"`
	Subtotal decimal.Decimal `json:"subtotal"`
}

// CartSummary is the derived read view of a cart.
type CartSummary struct {
	Items []CartItem      `json:"items"`
	Count int             `json:"count"`
	Total decimal.Decimal `json:"total"`
}

// CartItemRequest represents the request payload for adding or updating a cart line.
type CartItemRequest struct {
	ProductID int64 `json:"productId"`
	Quantity  int   `json:"quantity"`
}

// WishlistSummary is the derived read view of a wishlist.
type WishlistSummary struct {
	Products []Product `json:"products"`
	Count    int       `json:"count"`
}

// WishlistItemRequest represents the request payload for adding to a wishlist.
type WishlistItemRequest struct {
	ProductID int64 `json:"productId"`
}
