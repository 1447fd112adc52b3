package sales

import (
	"context"
	"time"

	"buvette-pos/internal/domain"
)

// InsertInput is a fully validated order ready to become a transaction.
// CreatedAt is a candidate: the store clamps it so committed timestamps
// never decrease, and reports the value it actually wrote.
type InsertInput struct {
	CreatedAt     time.Time
	PaymentMethod domain.PaymentMethod
	TotalCents    domain.Cents
	CashReceived  *domain.Cents
	ChangeGiven   *domain.Cents
	Lines         []InsertLine
}

// InsertLine is the immutable snapshot of one sold line.
type InsertLine struct {
	ProductID   string
	ProductName string
	UnitPrice   domain.Cents
	Quantity    int64
	LineTotal   domain.Cents
}

// Repository is the append-only transaction store. It deliberately has
// no update or delete operations.
type Repository interface {
	// Insert writes the transaction and all of its line items in one
	// storage transaction, assigning ids and the final CreatedAt inside
	// it. Either everything lands or nothing does.
	Insert(ctx context.Context, in InsertInput) (*domain.Transaction, error)
	// List returns every transaction with its line items, oldest first
	// (created_at, then insertion sequence), line items in the order
	// they were written.
	List(ctx context.Context) ([]domain.Transaction, error)
}
