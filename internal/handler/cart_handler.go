package handler

import (
	"net/http"

	"simuweb/internal/model"
	"simuweb/internal/service"

	"github.com/rs/zerolog"
)

// CartHandler handles cart HTTP requests for the current session.
type CartHandler struct {
	cart   service.CartService
	logger zerolog.Logger
}

// NewCartHandler creates a new cart handler.
func NewCartHandler(cart service.CartService, logger zerolog.Logger) *CartHandler {
	return &CartHandler{
		cart:   cart,
		logger: logger.With().Str("handler", "cart").Logger(),
	}
}

// Get handles GET /api/cart requests.
func (h *CartHandler) Get(w http.ResponseWriter, r *http.Request) {
	sess, err := sessionOf(r)
	if err != nil {
		writeError(w, err, h.logger)
		return
	}

	summary, err := h.cart.Summary(r.Context(), sess.Identity())
	if err != nil {
		writeError(w, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, summary)
}

// AddItem handles POST /api/cart/items requests.
func (h *CartHandler) AddItem(w http.ResponseWriter, r *http.Request) {
	sess, err := sessionOf(r)
	if err != nil {
		writeError(w, err, h.logger)
		return
	}

	var req model.CartItemRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, err, h.logger)
		return
	}

	lines, err := h.cart.Add(r.Context(), sess.Identity(), req.ProductID, req.Quantity)
	h.respond(w, lines, err)
}

// UpdateItem handles PUT /api/cart/items/{productId} requests.
func (h *CartHandler) UpdateItem(w http.ResponseWriter, r *http.Request) {
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

	var req model.CartItemRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, err, h.logger)
		return
	}

	lines, err := h.cart.SetQuantity(r.Context(), sess.Identity(), productID, req.Quantity)
	h.respond(w, lines, err)
}

// RemoveItem handles DELETE /api/cart/items/{productId} requests.
func (h *CartHandler) RemoveItem(w http.ResponseWriter, r *http.Request) {
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

	lines, err := h.cart.Remove(r.Context(), sess.Identity(), productID)
	h.respond(w, lines, err)
}

// Clear handles DELETE /api/cart requests.
func (h *CartHandler) Clear(w http.ResponseWriter, r *http.Request) {
	sess, err := sessionOf(r)
	if err != nil {
		writeError(w, err, h.logger)
		return
	}

	if err := h.cart.Clear(r.Context(), sess.Identity()); err != nil {
		writeError(w, err, h.logger)
		return
	}

	h.respond(w, []model.CartLine{}, nil)
}

// respond writes the summary of the lines returned by a mutation.
func (h *CartHandler) respond(w http.ResponseWriter, lines []model.CartLine, err error) {
	if err != nil {
		writeError(w, err, h.logger)
		return
	}
	writeJSON(w, http.StatusOK, h.cart.Summarize(lines))
}
