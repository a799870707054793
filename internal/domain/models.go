package domain

import "time"

type Product struct {
	ID      int64    `json:"id"`
	Name    string   `json:"name"`
	Price   float64  `json:"price"`
	Reviews []Review `json:"reviews"`
}

type Review struct {
	Username string    `json:"username"`
	Text     string    `json:"text"`
	Rating   int       `json:"rating"` // 1..5
	Date     time.Time `json:"date"`
}

// CartLine references a product by id. The id may dangle after the product
// is deleted; lookups skip dangling lines instead of erasing them.
type CartLine struct {
	ProductID int64 `json:"productId"`
	Qty       int   `json:"qty"`
}

// Order is an append-only snapshot of a checkout. Items are copied by value
// from the cart, so later cart mutations never touch history.
type Order struct {
	ID    int64      `json:"id"`
	User  string     `json:"user"`
	Items []CartLine `json:"items"`
	Date  time.Time  `json:"date"`
}
