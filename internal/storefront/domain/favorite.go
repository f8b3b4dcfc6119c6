package domain

// Favorite is a favorited product summary.
type Favorite struct {
	ProductID    int64   `json:"productId"`
	ProductName  string  `json:"productName"`
	ProductPrice float64 `json:"productPrice"`
	ProductImage string  `json:"productImage"`
}
