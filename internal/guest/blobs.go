package guest

import "simuweb/internal/model"

// CartBlob is the persisted guest cart. Revision changes on every write.
type CartBlob struct {
	Revision string           `json:"revision"`
	Lines    []model.CartLine `json:"lines"`
}

// WishlistBlob is the persisted guest wishlist.
type WishlistBlob struct {
	ProductIDs []int64 `json:"productIds"`
}

// CartKey returns the blob key of a guest cart.
func CartKey(guestKey string) string {
	return "cart:" + guestKey
}

// WishlistKey returns the blob key of a guest wishlist.
func WishlistKey(guestKey string) string {
	return "wishlist:" + guestKey
}

// UserKey returns the blob key of a session's cached account.
func UserKey(sessionKey string) string {
	return "user:" + sessionKey
}
