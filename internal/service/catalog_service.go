package service

import (
	"context"

	"simuweb/internal/catalog"
	"simuweb/internal/model"
	"simuweb/internal/repository"

	"github.com/rs/zerolog"
)

// catalogService implements CatalogService over an in-memory catalogue.
type catalogService struct {
	catalog     *catalog.Catalog
	productRepo repository.ProductRepository
	logger      zerolog.Logger
}

// NewCatalogService creates a new catalogue service. productRepo may be nil
// when no database is configured.
func NewCatalogService(c *catalog.Catalog, productRepo repository.ProductRepository, logger zerolog.Logger) CatalogService {
	return &catalogService{
		catalog:     c,
		productRepo: productRepo,
		logger:      logger.With().Str("service", "catalog").Logger(),
	}
}

func (s *catalogService) Query(ctx context.Context, q model.CatalogQuery) model.ProductPage {
	page := s.catalog.Query(q)

	s.logger.Debug().
		Str("search", q.SearchTerm).
		Str("sort_by", q.SortBy).
		Int("page", page.PageInfo.CurrentPage).
		Int("results", len(page.Products)).
		Msg("catalog queried")

	return page
}

// GetByID retrieves a single product by ID.
func (s *catalogService) GetByID(ctx context.Context, id int64) (*model.Product, error) {
	p, ok := s.catalog.Get(id)
	if !ok {
		s.logger.Debug().Int64("product_id", id).Msg("product not found")
		return nil, model.ErrProductNotFound
	}
	return &p, nil
}

func (s *catalogService) SeedStore(ctx context.Context) (int64, error) {
	if s.productRepo == nil {
		return 0, model.ErrNotConfigured
	}

	inserted, err := s.productRepo.Seed(ctx, s.catalog.All())
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to seed products")
		return 0, model.Persistence("seed products", err)
	}

	s.logger.Info().
		Int("catalog_size", s.catalog.Len()).
		Int64("inserted", inserted).
		Msg("product store seeded")

	return inserted, nil
}
