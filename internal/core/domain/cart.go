package domain

// IVARate is the fixed value-added-tax rate applied at checkout (Chilean IVA).
const IVARate = 0.19

// CartLine is one row in a shopping cart. Name, image and price are snapshotted
// from the catalog at the moment the product is added; later catalog edits do
// not affect existing lines.
type CartLine struct {
	ID       int    `json:"id"`
	Name     string `json:"name"`
	Image    string `json:"image"`
	Price    int    `json:"price"`
	Quantity int    `json:"quantity"`
}

// CartTotals is the on-demand checkout breakdown for a cart.
type CartTotals struct {
	Total int     `json:"total"`
	IVA   float64 `json:"iva"`
	Neto  float64 `json:"neto"`
}

// TotalsOf computes the checkout breakdown for a set of cart lines.
// The IVA split approximates the tax on the gross total rather than per line.
func TotalsOf(lines []CartLine) CartTotals {
	total := 0
	for _, l := range lines {
		total += l.Price * l.Quantity
	}
	iva := float64(total) * IVARate
	return CartTotals{
		Total: total,
		IVA:   iva,
		Neto:  float64(total) - iva,
	}
}
