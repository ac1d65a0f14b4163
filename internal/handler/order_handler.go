package handler

import (
	"context"
	"net/http"

	"simuweb/internal/model"
	"simuweb/internal/service"

	"github.com/rs/zerolog"
)

// OrderHandler handles checkout and order HTTP requests.
type OrderHandler struct {
	orders service.OrderService
	cart   service.CartService
	logger zerolog.Logger
}

// NewOrderHandler creates a new order handler.
func NewOrderHandler(orders service.OrderService, cart service.CartService, logger zerolog.Logger) *OrderHandler {
	return &OrderHandler{
		orders: orders,
		cart:   cart,
		logger: logger.With().Str("handler", "order").Logger(),
	}
}

// Checkout handles POST /api/checkout requests. The current cart becomes an
// order; the cart is cleared only once the order is stored.
func (h *OrderHandler) Checkout(w http.ResponseWriter, r *http.Request) {
	sess, err := sessionOf(r)
	if err != nil {
		writeError(w, err, h.logger)
		return
	}

	var req model.CheckoutRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, err, h.logger)
		return
	}

	id := sess.Identity()
	if id.IsGuest() {
		writeError(w, model.ErrGuestCheckout, h.logger)
		return
	}

	snapshot, err := h.cart.Lines(r.Context(), id)
	if err != nil {
		writeError(w, err, h.logger)
		return
	}

	transactionID, err := h.orders.CreateOrder(r.Context(), id, snapshot, req.Shipping)
	if err != nil {
		writeError(w, err, h.logger)
		return
	}

	// The order stands even if the cart cannot be cleared.
	if err := h.cart.Clear(context.WithoutCancel(r.Context()), id); err != nil {
		h.logger.Error().
			Err(err).
			Str("transaction_id", transactionID).
			Msg("failed to clear cart after checkout")
	}

	writeJSON(w, http.StatusCreated, model.CheckoutResponse{TransactionID: transactionID})
}

// GetByTransactionID handles GET /api/orders/{transactionId} requests.
func (h *OrderHandler) GetByTransactionID(w http.ResponseWriter, r *http.Request) {
	sess, err := sessionOf(r)
	if err != nil {
		writeError(w, err, h.logger)
		return
	}

	transactionID := r.PathValue("transactionId")
	if transactionID == "" {
		writeError(w, model.NewDomainError(model.ErrCodeInvalidInput, "transaction ID is required"), h.logger)
		return
	}

	detail, err := h.orders.GetByTransactionID(r.Context(), sess.Identity(), transactionID)
	if err != nil {
		writeError(w, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, detail)
}
