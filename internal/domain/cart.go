package domain

// CartLine is one line of the register's in-progress order. Carts are
// transient and never persisted; they hold quantities only, prices are
// resolved against the live catalog when a total is needed.
type CartLine struct {
	ProductID string `json:"productId"`
	Quantity  int64  `json:"quantity"`
}
