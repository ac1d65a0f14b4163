package model

import "github.com/shopspring/decimal"

// Product represents an item in the storefront catalogue.
// Products are seeded once at startup and never mutated at runtime.
type Product struct {
	ID              int64           `json:"id" db:"id"`
	Name            string          `json:"name" db:"name"`
	Price           decimal.Decimal `json:"price" db:"price"`
	Description     string          `json:"description" db:"description"`
	LongDescription string          `json:"longDescription" db:"long_description"`
	Image           string          `json:"image" db:"image"`
	DataAIHint      string          `json:"dataAiHint" db:"data_ai_hint"`
}

// CatalogQuery holds the filter, sort and page parameters of a catalogue listing.
type CatalogQuery struct {
	SearchTerm string `json:"searchTerm"`
	SortBy     string `json:"sortBy"`
	Page       int    `json:"page"`
}

// PageInfo describes where a page sits in the filtered product set.
type PageInfo struct {
	CurrentPage   int `json:"currentPage"`
	TotalPages    int `json:"totalPages"`
	TotalProducts int `json:"totalProducts"`
}

// ProductPage is one page of a catalogue listing.
type ProductPage struct {
	Products []Product `json:"products"`
	PageInfo PageInfo  `json:"pageInfo"`
}
