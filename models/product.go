package models

import "github.com/shopspring/decimal"

type Product struct {
	ID       int             `json:"id"`
	Name     string          `json:"name"`
	Category string          `json:"category"`
	Price    decimal.Decimal `json:"price"`
	Icon     string          `json:"icon"`
}

// CategoryCard is one tile of the "Shop by Category" strip on the storefront.
type CategoryCard struct {
	Icon        string `json:"icon"`
	Title       string `json:"title"`
	Description string `json:"description"`
}
