package models

import (
	"math"

	"github.com/shopspring/decimal"
)

type CartItem struct {
	Product
	Quantity int `json:"quantity"`
}

// Subtotal is price * quantity for the line.
func (i CartItem) Subtotal() decimal.Decimal {
	return i.Price.Mul(decimal.NewFromInt(int64(i.Quantity)))
}

// Cart keeps line items in insertion order with at most one line per product ID.
// Every line has Quantity >= 1; a line that would drop to zero is removed instead.
type Cart struct {
	Items []CartItem `json:"items"`
}

func (c *Cart) indexOf(productID int) int {
	for i := range c.Items {
		if c.Items[i].ID == productID {
			return i
		}
	}
	return -1
}

// Add merges product into the cart: an existing line gains one unit in place,
// otherwise a new line with quantity 1 is appended.
func (c *Cart) Add(product Product) {
	if i := c.indexOf(product.ID); i >= 0 {
		c.Items[i].Quantity = addQuantity(c.Items[i].Quantity, 1)
		return
	}
	c.Items = append(c.Items, CartItem{Product: product, Quantity: 1})
}

// UpdateQuantity shifts the line's quantity by delta. Unknown IDs are ignored.
// Quantities saturate at math.MaxInt instead of wrapping.
func (c *Cart) UpdateQuantity(productID, delta int) {
	i := c.indexOf(productID)
	if i < 0 {
		return
	}
	c.Items[i].Quantity = addQuantity(c.Items[i].Quantity, delta)
	if c.Items[i].Quantity <= 0 {
		c.removeAt(i)
	}
}

func (c *Cart) Remove(productID int) {
	if i := c.indexOf(productID); i >= 0 {
		c.removeAt(i)
	}
}

func (c *Cart) removeAt(i int) {
	items := make([]CartItem, 0, len(c.Items)-1)
	items = append(items, c.Items[:i]...)
	c.Items = append(items, c.Items[i+1:]...)
}

func (c Cart) Total() decimal.Decimal {
	total := decimal.Zero
	for _, item := range c.Items {
		total = total.Add(item.Subtotal())
	}
	return total
}

// TotalPrice is Total rendered with exactly two decimals, e.g. "139.97".
func (c Cart) TotalPrice() string {
	return c.Total().StringFixed(2)
}

func (c Cart) TotalItems() int {
	n := 0
	for _, item := range c.Items {
		n = addQuantity(n, item.Quantity)
	}
	return n
}

// addQuantity adds a and b, clamping to [math.MinInt, math.MaxInt].
func addQuantity(a, b int) int {
	if b > 0 && a > math.MaxInt-b {
		return math.MaxInt
	}
	if b < 0 && a < math.MinInt-b {
		return math.MinInt
	}
	return a + b
}

func (c Cart) IsEmpty() bool {
	return len(c.Items) == 0
}

// Snapshot returns a copy that shares no backing array with c.
func (c Cart) Snapshot() Cart {
	items := make([]CartItem, len(c.Items))
	copy(items, c.Items)
	return Cart{Items: items}
}
