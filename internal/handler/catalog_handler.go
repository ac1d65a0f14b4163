package handler

import (
	"net/http"
	"strconv"

	"simuweb/internal/model"
	"simuweb/internal/service"

	"github.com/rs/zerolog"
)

// CatalogHandler handles product-related HTTP requests.
type CatalogHandler struct {
	service service.CatalogService
	logger  zerolog.Logger
}

// NewCatalogHandler creates a new catalogue handler.
func NewCatalogHandler(service service.CatalogService, logger zerolog.Logger) *CatalogHandler {
	return &CatalogHandler{
		service: service,
		logger:  logger.With().Str("handler", "catalog").Logger(),
	}
}

// List handles GET /api/products?search=&sortBy=&page= requests.
func (h *CatalogHandler) List(w http.ResponseWriter, r *http.Request) {
	query := model.CatalogQuery{
		SearchTerm: r.URL.Query().Get("search"),
		SortBy:     r.URL.Query().Get("sortBy"),
	}

	if pageStr := r.URL.Query().Get("page"); pageStr != "" {
		page, err := strconv.Atoi(pageStr)
		if err != nil || page < 1 {
			writeError(w, model.NewDomainError(model.ErrCodeInvalidInput, "invalid page parameter"), h.logger)
			return
		}
		query.Page = page
	}

	writeJSON(w, http.StatusOK, h.service.Query(r.Context(), query))
}

// GetByID handles GET /api/products/{id} requests.
func (h *CatalogHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, err, h.logger)
		return
	}

	product, err := h.service.GetByID(r.Context(), id)
	if err != nil {
		writeError(w, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, product)
}

// SeedResponse reports the result of seeding the product store.
type SeedResponse struct {
	Inserted int64 `json:"inserted"`
}

// Seed handles POST /api/admin/seed requests.
func (h *CatalogHandler) Seed(w http.ResponseWriter, r *http.Request) {
	inserted, err := h.service.SeedStore(r.Context())
	if err != nil {
		writeError(w, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, SeedResponse{Inserted: inserted})
}
