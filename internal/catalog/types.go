package catalog

import "github.com/shopspring/decimal"

// Product is a sellable item tracked by the catalog.
//
// Price is an exact decimal, never a float; it persists as a decimal
// string in storage. Stock is the quantity currently available for sale
// and is never negative (enforced both by the storage CHECK constraint
// and by the order engine's conditional decrement).
type Product struct {
	ID    int64           `json:"id"`
	Name  string          `json:"name"`
	Price decimal.Decimal `json:"price"`
	Stock int64           `json:"stock"`
}

// PriceText renders a price at its own scale, keeping trailing zeros:
// "12.50" stays "12.50" rather than collapsing to "12.5" the way
// decimal.String does. This is the canonical form prices persist in.
func PriceText(p decimal.Decimal) string {
	if p.Exponent() < 0 {
		return p.StringFixed(-p.Exponent())
	}
	return p.String()
}

// Customer is an order owner. Customers are immutable after creation;
// there is no update or delete operation for them.
type Customer struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}
