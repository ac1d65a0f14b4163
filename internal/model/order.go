package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// ShippingDetails holds the delivery fields captured at checkout.
type ShippingDetails struct {
	Name    string `json:"name"`
	Address string `json:"address"`
	City    string `json:"city"`
	Zip     string `json:"zip"`
}

// Order represents a recorded checkout.
type Order struct {
	ID            int64           `json:"-" db:"id"`
	TransactionID string          `json:"transactionId" db:"transaction_id"`
	UserID        int64           `json:"userId" db:"user_id"`
	TotalAmount   decimal.Decimal `json:"totalAmount" db:"total_amount"`
	Shipping      ShippingDetails `json:"shipping"`
	OrderDate     time.Time       `json:"orderDate" db:"order_date"`
}

// OrderLine is one product of an order with its price captured at purchase time.
type OrderLine struct {
	ID           int64           `json:"-" db:"id"`
	OrderID      int64           `json:"-" db:"order_id"`
	ProductID    int64           `json:"productId" db:"product_id"`
	Quantity     int             `json:"quantity" db:"quantity"`
	PricePerUnit decimal.Decimal `json:"pricePerUnit" db:"price_per_unit"`
}

// Subtotal returns quantity times the captured unit price.
func (l OrderLine) Subtotal() decimal.Decimal {
	return l.PricePerUnit.Mul(decimal.NewFromInt(int64(l.Quantity)))
}

// OrderDetail is an order together with its lines.
type OrderDetail struct {
	Order Order       `json:"order"`
	Lines []OrderLine `json:"lines"`
}

// CheckoutRequest represents the request payload for checking out the current cart.
type CheckoutRequest struct {
	Shipping ShippingDetails `json:"shipping"`
}

// CheckoutResponse is returned after a successful checkout.
type CheckoutResponse struct {
	TransactionID string `json:"transactionId"`
}
