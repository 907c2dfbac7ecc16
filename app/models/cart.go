package models

// CartItem is one line of the session cart. Price is the unit price
// captured at add time; the API re-prices on checkout.
type CartItem struct {
	ProductID int     `json:"product_id"`
	Name      string  `json:"name"`
	Price     float64 `json:"price"`
	Image     string  `json:"image"`
	Quantity  int     `json:"quantity"`
}

// Cart is the whole session cart.
type Cart struct {
	Items []CartItem `json:"items"`
}

// Total sums price × quantity over all lines.
func (c Cart) Total() float64 {
	var total float64
	for _, it := range c.Items {
		total += it.Price * float64(it.Quantity)
	}
	return total
}

// Count is the number of units across all lines.
func (c Cart) Count() int {
	var n int
	for _, it := range c.Items {
		n += it.Quantity
	}
	return n
}
