package domain

import "time"

// Transaction is one finalized sale. The store is append-only: once a
// transaction is committed neither it nor its line items ever change.
type Transaction struct {
	ID            string        `json:"id"`
	Seq           int64         `json:"-"`
	CreatedAt     time.Time     `json:"createdAt"`
	PaymentMethod PaymentMethod `json:"paymentMethod"`
	TotalCents    Cents         `json:"total"`
	CashReceived  *Cents        `json:"cashReceived,omitempty"`
	ChangeGiven   *Cents        `json:"changeGiven,omitempty"`
	Items         []LineItem    `json:"items"`
}

// LineItem carries the product name and unit price as they were at the
// moment of sale. Later catalog edits do not reach back into it.
type LineItem struct {
	ID            string `json:"id"`
	TransactionID string `json:"-"`
	ProductID     string `json:"productId"`
	ProductName   string `json:"productName"`
	UnitPrice     Cents  `json:"unitPrice"`
	Quantity      int64  `json:"quantity"`
	LineTotal     Cents  `json:"lineTotal"`
}
