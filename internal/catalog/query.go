package catalog

import (
	"sort"
	"strings"

	"simuweb/internal/model"
)

// PageSize is the number of products on one catalogue page.
const PageSize = 8

// DefaultSortBy is used when a query does not name a sort key.
const DefaultSortBy = "name-asc"

// Query filters products by name, sorts them and returns the requested page.
// It has no side effects and never fails: a malformed sort key falls back to
// name ordering, a page below 1 is read as the first page and a page past the
// end yields no products.
func Query(products []model.Product, q model.CatalogQuery) model.ProductPage {
	term := strings.ToLower(q.SearchTerm)
	sortBy := q.SortBy
	if sortBy == "" {
		sortBy = DefaultSortBy
	}
	page := q.Page
	if page < 1 {
		page = 1
	}

	filtered := make([]model.Product, 0, len(products))
	for _, p := range products {
		if term == "" || strings.Contains(strings.ToLower(p.Name), term) {
			filtered = append(filtered, p)
		}
	}

	field, desc := parseSortKey(sortBy)
	sort.SliceStable(filtered, func(i, j int) bool {
		c := compare(filtered[i], filtered[j], field)
		if desc {
			return c > 0
		}
		return c < 0
	})

	total := len(filtered)
	totalPages := (total + PageSize - 1) / PageSize

	items := []model.Product{}
	if page >= 1 {
		start := (page - 1) * PageSize
		if start < total {
			end := min(start+PageSize, total)
			items = filtered[start:end]
		}
	}

	return model.ProductPage{
		Products: items,
		PageInfo: model.PageInfo{
			CurrentPage:   page,
			TotalPages:    totalPages,
			TotalProducts: total,
		},
	}
}

// parseSortKey splits "field-direction". Unknown fields sort by name and any
// direction other than "desc" is ascending.
func parseSortKey(sortBy string) (field string, desc bool) {
	field, dir, _ := strings.Cut(sortBy, "-")
	if field != "price" {
		field = "name"
	}
	return field, dir == "desc"
}

func compare(a, b model.Product, field string) int {
	if field == "price" {
		return a.Price.Cmp(b.Price)
	}
	return strings.Compare(strings.ToLower(a.Name), strings.ToLower(b.Name))
}
