package catalog

import (
	"testing"

	"simuweb/internal/model"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_DefaultProducts(t *testing.T) {
	c, err := New(DefaultProducts())
	require.NoError(t, err)

	assert.Equal(t, 16, c.Len())

	p, ok := c.Get(5)
	require.True(t, ok)
	assert.Equal(t, "DJ Turntable", p.Name)
	assert.True(t, decimal.NewFromInt(11199000).Equal(p.Price))

	_, ok = c.Get(999)
	assert.False(t, ok)
}

func TestNew_RejectsInvalidSeed(t *testing.T) {
	tests := []struct {
		name     string
		products []model.Product
		errMatch string
	}{
		{
			name: "duplicate id",
			products: []model.Product{
				{ID: 1, Name: "a", Price: decimal.NewFromInt(1)},
				{ID: 1, Name: "b", Price: decimal.NewFromInt(2)},
			},
			errMatch: "duplicate product id 1",
		},
		{
			name: "negative price",
			products: []model.Product{
				{ID: 7, Name: "a", Price: decimal.NewFromInt(-1)},
			},
			errMatch: "negative price",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := New(tt.products)
			assert.Nil(t, c)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errMatch)
		})
	}
}

func TestCatalog_AllReturnsCopy(t *testing.T) {
	c, err := New(DefaultProducts())
	require.NoError(t, err)

	all := c.All()
	all[0].Name = "changed"

	p, _ := c.Get(all[0].ID)
	assert.NotEqual(t, "changed", p.Name)
}

func TestCatalog_Query(t *testing.T) {
	c, err := New(DefaultProducts())
	require.NoError(t, err)

	page := c.Query(model.CatalogQuery{SortBy: "price-desc", Page: 1})

	require.Len(t, page.Products, PageSize)
	assert.Equal(t, "Mixer Digital", page.Products[0].Name)
	assert.Equal(t, model.PageInfo{CurrentPage: 1, TotalPages: 2, TotalProducts: 16}, page.PageInfo)
}
