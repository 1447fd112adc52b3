package domain

type Product struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	PriceCents Cents  `json:"priceCents"`
	CategoryID string `json:"categoryId"`
	Available  bool   `json:"available"`
}
