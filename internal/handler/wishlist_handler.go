package handler

import (
	"net/http"

	"simuweb/internal/model"
	"simuweb/internal/service"

	"github.com/rs/zerolog"
)

// WishlistHandler handles wishlist HTTP requests for the current session.
type WishlistHandler struct {
	wishlist service.WishlistService
	logger   zerolog.Logger
}

// NewWishlistHandler creates a new wishlist handler.
func NewWishlistHandler(wishlist service.WishlistService, logger zerolog.Logger) *WishlistHandler {
	return &WishlistHandler{
		wishlist: wishlist,
		logger:   logger.With().Str("handler", "wishlist").Logger(),
	}
}

// Get handles GET /api/wishlist requests.
func (h *WishlistHandler) Get(w http.ResponseWriter, r *http.Request) {
	sess, err := sessionOf(r)
	if err != nil {
		writeError(w, err, h.logger)
		return
	}

	summary, err := h.wishlist.Summary(r.Context(), sess.Identity())
	if err != nil {
		writeError(w, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, summary)
}

// AddItem handles POST /api/wishlist/items requests.
func (h *WishlistHandler) AddItem(w http.ResponseWriter, r *http.Request) {
	sess, err := sessionOf(r)
	if err != nil {
		writeError(w, err, h.logger)
		return
	}

	var req model.WishlistItemRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, err, h.logger)
		return
	}

	ids, err := h.wishlist.Add(r.Context(), sess.Identity(), req.ProductID)
	if err != nil {
		writeError(w, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, h.wishlist.Summarize(ids))
}

// RemoveItem handles DELETE /api/wishlist/items/{productId} requests.
func (h *WishlistHandler) RemoveItem(w http.ResponseWriter, r *http.Request) {
	sess, err := sessionOf(r)
	if err != nil {
		writeError(w, err, h.logger)
		return
	}

	productID, err := pathID(r, "productId")
	if err != nil {
		writeError(w, err, h.logger)
		return
	}

	ids, err := h.wishlist.Remove(r.Context(), sess.Identity(), productID)
	if err != nil {
		writeError(w, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, h.wishlist.Summarize(ids))
}
