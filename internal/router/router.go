package router

import (
	"net/http"

	"simuweb/internal/handler"
	"simuweb/internal/middleware"

	"github.com/rs/zerolog"
)

// Handlers groups the HTTP handlers served by the router.
type Handlers struct {
	Catalog  *handler.CatalogHandler
	Cart     *handler.CartHandler
	Wishlist *handler.WishlistHandler
	Auth     *handler.AuthHandler
	Orders   *handler.OrderHandler
	UTM      *handler.UTMHandler
}

// New creates a new HTTP router with all routes and middleware configured.
// The admin seed route is only registered when apiKey is set.
func New(
	h Handlers,
	apiKey string,
	sessions middleware.SessionResolver,
	tokens middleware.TokenParser,
	logger zerolog.Logger,
) http.Handler {
	mux := http.NewServeMux()

	// Health check endpoint (no session required)
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status": "healthy"}`))
	})

	mux.HandleFunc("POST /api/session", h.Auth.NewSession)
	mux.HandleFunc("POST /api/auth/register", h.Auth.Register)
	mux.HandleFunc("POST /api/auth/login", h.Auth.Login)
	mux.HandleFunc("POST /api/auth/logout", h.Auth.Logout)
	mux.HandleFunc("GET /api/auth/me", h.Auth.Me)

	mux.HandleFunc("GET /api/products", h.Catalog.List)
	mux.HandleFunc("GET /api/products/{id}", h.Catalog.GetByID)

	mux.HandleFunc("GET /api/cart", h.Cart.Get)
	mux.HandleFunc("DELETE /api/cart", h.Cart.Clear)
	mux.HandleFunc("POST /api/cart/items", h.Cart.AddItem)
	mux.HandleFunc("PUT /api/cart/items/{productId}", h.Cart.UpdateItem)
	mux.HandleFunc("DELETE /api/cart/items/{productId}", h.Cart.RemoveItem)

	mux.HandleFunc("GET /api/wishlist", h.Wishlist.Get)
	mux.HandleFunc("POST /api/wishlist/items", h.Wishlist.AddItem)
	mux.HandleFunc("DELETE /api/wishlist/items/{productId}", h.Wishlist.RemoveItem)

	mux.HandleFunc("POST /api/checkout", h.Orders.Checkout)
	mux.HandleFunc("GET /api/orders/{transactionId}", h.Orders.GetByTransactionID)

	mux.HandleFunc("POST /api/utm", h.UTM.Build)
	mux.HandleFunc("GET /api/utm/random", h.UTM.Random)

	if apiKey != "" {
		mux.Handle("POST /api/admin/seed", middleware.APIKeyAuth(apiKey, logger)(http.HandlerFunc(h.Catalog.Seed)))
	} else {
		logger.Info().Msg("API_KEY not set, admin routes disabled")
	}

	// Apply middleware in order: Recovery -> Logging -> CORS -> Identity
	var handler http.Handler = mux
	handler = middleware.Identity(sessions, tokens, logger)(handler)
	handler = middleware.CORS(handler)
	handler = middleware.Logging(logger)(handler)
	handler = middleware.Recovery(logger)(handler)

	return handler
}
