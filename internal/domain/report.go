package domain

// ProductSales aggregates every line item ever sold for one product.
// ProductName is the snapshot from the most recent sale of that product.
type ProductSales struct {
	ProductID     string `json:"productId"`
	ProductName   string `json:"productName"`
	TotalQuantity int64  `json:"totalQuantity"`
	TotalRevenue  Cents  `json:"totalRevenue"`
}

type PaymentMethodSales struct {
	PaymentMethod    PaymentMethod `json:"paymentMethod"`
	TransactionCount int64         `json:"transactionCount"`
	TotalRevenue     Cents         `json:"totalRevenue"`
}

type Summary struct {
	TotalRevenue      Cents                `json:"totalRevenue"`
	TotalTransactions int64                `json:"totalTransactions"`
	PerProduct        []ProductSales       `json:"perProduct"`
	PerPaymentMethod  []PaymentMethodSales `json:"perPaymentMethod"`
}
