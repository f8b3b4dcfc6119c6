package domain

// GuestLine is one persisted guest cart entry. The guest cart holds at most
// one line per ProductID.
type GuestLine struct {
	ProductID int64 `json:"productId"`
	Quantity  int   `json:"quantity"`
}

// CartLine is a cart line enriched with live product data. Quantity is the
// requested quantity clamped to the stock at load time.
type CartLine struct {
	// ID is the server line id, or the ProductID for guest lines.
	ID           int64   `json:"id"`
	ProductID    int64   `json:"productId"`
	Quantity     int     `json:"quantity"`
	ProductName  string  `json:"productName"`
	ProductPrice float64 `json:"productPrice"`
	ProductImage string  `json:"productImage"`
	TotalPrice   float64 `json:"totalPrice"`

	// Unavailable marks a line whose product could not be fetched. Price
	// and total are zero and Error carries the reason.
	Unavailable bool   `json:"unavailable,omitempty"`
	Error       string `json:"error,omitempty"`
}

// Cart is a snapshot of the enriched cart.
type Cart struct {
	Lines    []CartLine `json:"items"`
	Subtotal float64    `json:"subtotal"`
	Guest    bool       `json:"guest"`
}

// Subtotal sums the totals of lines.
func Subtotal(lines []CartLine) float64 {
	var sum float64
	for _, l := range lines {
		sum += l.TotalPrice
	}
	return sum
}

// EnrichmentPolicy decides what a cart load does when some product lookups
// fail.
type EnrichmentPolicy string

const (
	// EnrichPartial keeps every line and marks failed ones Unavailable.
	EnrichPartial EnrichmentPolicy = "partial"
	// EnrichStrict fails the whole load.
	EnrichStrict EnrichmentPolicy = "strict"
)

// Valid reports whether p is a known policy.
func (p EnrichmentPolicy) Valid() bool {
	return p == EnrichPartial || p == EnrichStrict
}
