package entity

// Cart is the ordered list of products a visitor intends to purchase.
// Each cart is scoped to a single visitor session; items are full product
// records, and duplicates are permitted.
type Cart struct {
	ID    string    `json:"id"`
	Items []Product `json:"items"`
}

// Count returns the number of items currently in the cart.
func (c Cart) Count() int {
	return len(c.Items)
}

// Total returns the sum of item prices. An empty cart totals zero.
func (c Cart) Total() float64 {
	var total float64
	for _, item := range c.Items {
		total += item.Price
	}

	return total
}
