package catalog

import (
	"fmt"

	"simuweb/internal/model"
)

// Catalog is an immutable, id-indexed set of products.
type Catalog struct {
	products []model.Product
	byID     map[int64]int
}

// New builds a catalog from a seed list. Duplicate ids are rejected.
func New(products []model.Product) (*Catalog, error) {
	c := &Catalog{
		products: make([]model.Product, len(products)),
		byID:     make(map[int64]int, len(products)),
	}
	copy(c.products, products)

	for i, p := range c.products {
		if _, exists := c.byID[p.ID]; exists {
			return nil, fmt.Errorf("duplicate product id %d in catalog seed", p.ID)
		}
		if p.Price.IsNegative() {
			return nil, fmt.Errorf("product %d has a negative price", p.ID)
		}
		c.byID[p.ID] = i
	}

	return c, nil
}

// All returns a copy of the products in seed order.
func (c *Catalog) All() []model.Product {
	out := make([]model.Product, len(c.products))
	copy(out, c.products)
	return out
}

// Get looks up a product by id.
func (c *Catalog) Get(id int64) (model.Product, bool) {
	i, ok := c.byID[id]
	if !ok {
		return model.Product{}, false
	}
	return c.products[i], true
}

// Len returns the number of products.
func (c *Catalog) Len() int {
	return len(c.products)
}

// Query runs Query over the whole catalog.
func (c *Catalog) Query(q model.CatalogQuery) model.ProductPage {
	return Query(c.products, q)
}
