package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"simuweb/internal/auth"
	"simuweb/internal/catalog"
	"simuweb/internal/config"
	"simuweb/internal/database"
	"simuweb/internal/guest"
	"simuweb/internal/handler"
	"simuweb/internal/repository"
	"simuweb/internal/router"
	"simuweb/internal/service"

	"github.com/rs/zerolog"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	// Initialize logger
	logger := config.NewLogger(cfg.Logger)
	logger.Info().Msg("starting simuweb API server")

	// Create context for application lifecycle
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	c, err := loadCatalog(ctx, cfg, logger)
	if err != nil {
		return fmt.Errorf("failed to load catalog: %w", err)
	}

	store, err := newGuestStore(cfg.Guest, logger)
	if err != nil {
		return fmt.Errorf("failed to initialize guest store: %w", err)
	}

	// Repositories stay nil without a database; the services then answer
	// account operations with NOT_CONFIGURED.
	var (
		userRepo     repository.UserRepository
		productRepo  repository.ProductRepository
		cartRepo     repository.CartRepository
		wishlistRepo repository.WishlistRepository
		orderRepo    repository.OrderRepository
	)

	if cfg.Database.Enabled {
		pool, err := database.NewPool(ctx, cfg.Database, logger)
		if err != nil {
			return fmt.Errorf("failed to initialize database: %w", err)
		}
		defer pool.Close()

		if err := database.EnsureSchema(ctx, pool, logger); err != nil {
			return fmt.Errorf("failed to apply schema: %w", err)
		}

		userRepo = repository.NewUserRepository(pool, logger)
		productRepo = repository.NewProductRepository(pool, logger)
		cartRepo = repository.NewCartRepository(pool, logger)
		wishlistRepo = repository.NewWishlistRepository(pool, logger)
		orderRepo = repository.NewOrderRepository(pool, logger)
	} else {
		logger.Warn().Msg("database disabled, account features are not configured")
	}

	// Initialize services
	catalogService := service.NewCatalogService(c, productRepo, logger)
	cartService := service.NewCartService(c, store, cartRepo, logger)
	wishlistService := service.NewWishlistService(c, store, wishlistRepo, logger)
	orderService := service.NewOrderService(orderRepo, c, logger)
	identityService := service.NewIdentityService(userRepo, store, logger)
	identityService.Subscribe(cartService)
	identityService.Subscribe(wishlistService)

	if productRepo != nil {
		inserted, err := catalogService.SeedStore(ctx)
		if err != nil {
			return fmt.Errorf("failed to seed products: %w", err)
		}
		logger.Info().Int64("inserted", inserted).Msg("product table seeded")
	}

	tokens := auth.NewTokenIssuer(cfg.Auth.JWTSecret, cfg.Auth.JWTTTL)

	// Initialize HTTP handlers
	handlers := router.Handlers{
		Catalog:  handler.NewCatalogHandler(catalogService, logger),
		Cart:     handler.NewCartHandler(cartService, logger),
		Wishlist: handler.NewWishlistHandler(wishlistService, logger),
		Auth:     handler.NewAuthHandler(identityService, tokens, logger),
		Orders:   handler.NewOrderHandler(orderService, cartService, logger),
		UTM:      handler.NewUTMHandler(logger),
	}

	// Initialize router
	mux := router.New(handlers, cfg.Auth.APIKey, identityService, tokens, logger)

	// Create HTTP server
	server := &http.Server{
		Addr:         cfg.Server.Address(),
		Handler:      mux,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Channel to listen for errors from the server
	serverErrors := make(chan error, 1)

	go func() {
		logger.Info().
			Str("address", cfg.Server.Address()).
			Msg("HTTP server started")
		serverErrors <- server.ListenAndServe()
	}()

	// Channel to listen for interrupt signals
	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		return fmt.Errorf("server error: %w", err)

	case sig := <-shutdown:
		logger.Info().
			Str("signal", sig.String()).
			Msg("shutdown signal received, starting graceful shutdown")

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer shutdownCancel()

		if err := server.Shutdown(shutdownCtx); err != nil {
			logger.Error().Err(err).Msg("failed to shutdown server gracefully")
			if closeErr := server.Close(); closeErr != nil {
				logger.Error().Err(closeErr).Msg("failed to close server")
			}
			return fmt.Errorf("server shutdown failed: %w", err)
		}

		logger.Info().Msg("server shutdown completed")
	}

	return nil
}

// loadCatalog reads the product seed, trying S3 first when it is enabled.
func loadCatalog(ctx context.Context, cfg *config.Config, logger zerolog.Logger) (*catalog.Catalog, error) {
	fileLoader := catalog.NewFileLoader(logger)

	var s3Loader catalog.Loader
	if cfg.S3.Enabled {
		l, err := catalog.NewS3Loader(ctx, cfg.S3.Bucket, cfg.S3.Region, logger)
		if err != nil {
			logger.Warn().
				Err(err).
				Msg("failed to initialise S3 loader, falling back to local file system only")
		} else {
			s3Loader = l
		}
	} else if cfg.Catalog.SeedPath != "" {
		logger.Info().Msg("using local file system for catalog seed (S3 disabled)")
	}

	loader := catalog.NewFallbackLoader(s3Loader, fileLoader, cfg.S3.Prefix, logger)
	return catalog.LoadCatalog(ctx, loader, cfg.Catalog.SeedPath)
}

func newGuestStore(cfg config.GuestConfig, logger zerolog.Logger) (guest.Store, error) {
	if cfg.Dir == "" {
		return guest.NewMemoryStore(), nil
	}
	return guest.NewFileStore(cfg.Dir, logger)
}
