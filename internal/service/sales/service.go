package sales

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"buvette-pos/internal/domain"
	"buvette-pos/internal/order"
	salesrepo "buvette-pos/internal/repository/sales"
)

// Service runs the commit protocol: validate everything up front, then
// hand the finished order to the store as one atomic write. A mutex
// serializes commits; there is a single register.
type Service struct {
	mu      sync.Mutex
	repo    salesRepo
	catalog catalogSource
}

type salesRepo interface {
	Insert(ctx context.Context, in salesrepo.InsertInput) (*domain.Transaction, error)
	List(ctx context.Context) ([]domain.Transaction, error)
}

type catalogSource interface {
	Product(ctx context.Context, id string) (*domain.Product, error)
}

func New(repo salesrepo.Repository, catalog catalogSource) *Service {
	return &Service{repo: repo, catalog: catalog}
}

// CommitLine is one order line as supplied by the caller, carrying the
// product name and unit price resolved at checkout time. Both are
// stored verbatim as the sale's snapshot.
type CommitLine struct {
	ProductID string       `json:"productId"`
	Name      string       `json:"name"`
	UnitPrice domain.Cents `json:"unitPrice"`
	Quantity  int64        `json:"quantity"`
}

type CommitInput struct {
	Lines         []CommitLine  `json:"lines"`
	PaymentMethod string        `json:"paymentMethod"`
	CashReceived  *domain.Cents `json:"cashReceived,omitempty"`
}

// Commit validates in, computes totals in integer cents, and appends
// exactly one transaction. On any error nothing has been written and
// the caller's input is untouched.
func (s *Service) Commit(ctx context.Context, in CommitInput) (*domain.Transaction, error) {
	if len(in.Lines) == 0 {
		return nil, domain.ErrEmptyOrder
	}
	method, err := domain.ParsePaymentMethod(in.PaymentMethod)
	if err != nil {
		return nil, err
	}

	lines := make([]salesrepo.InsertLine, 0, len(in.Lines))
	var total domain.Cents
	for i, l := range in.Lines {
		if strings.TrimSpace(l.ProductID) == "" || strings.TrimSpace(l.Name) == "" {
			return nil, fmt.Errorf("%w: line %d needs a product id and name", domain.ErrInvalidLine, i)
		}
		lineTotal, err := domain.LineTotal(l.UnitPrice, l.Quantity)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", i, err)
		}
		total += lineTotal
		if total > domain.MaxOrderTotalCents {
			return nil, fmt.Errorf("%w: order total above %d", domain.ErrInvalidLine, domain.MaxOrderTotalCents)
		}
		lines = append(lines, salesrepo.InsertLine{
			ProductID:   l.ProductID,
			ProductName: l.Name,
			UnitPrice:   l.UnitPrice,
			Quantity:    l.Quantity,
			LineTotal:   lineTotal,
		})
	}

	var cashReceived, changeGiven *domain.Cents
	switch method {
	case domain.PaymentCash:
		if in.CashReceived == nil {
			return nil, fmt.Errorf("%w: cash received required", domain.ErrInsufficientCash)
		}
		if *in.CashReceived < total {
			return nil, fmt.Errorf("%w: received %d of %d", domain.ErrInsufficientCash, *in.CashReceived, total)
		}
		received := *in.CashReceived
		change := received - total
		cashReceived, changeGiven = &received, &change
	case domain.PaymentCard:
		if in.CashReceived != nil {
			return nil, domain.ErrCashOnCardPayment
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	return s.repo.Insert(ctx, salesrepo.InsertInput{
		CreatedAt:     time.Now().UTC(),
		PaymentMethod: method,
		TotalCents:    total,
		CashReceived:  cashReceived,
		ChangeGiven:   changeGiven,
		Lines:         lines,
	})
}

// Checkout commits the register's current order. Each line is resolved
// against the catalog at this instant, so the snapshots carry the name
// and price in effect when the sale closed, and products switched off
// since they were added are rejected. The builder is cleared only after
// the commit succeeded; any failure leaves it untouched for correction.
func (s *Service) Checkout(ctx context.Context, b *order.Builder, paymentMethod string, cashReceived *domain.Cents) (*domain.Transaction, error) {
	in := CommitInput{PaymentMethod: paymentMethod, CashReceived: cashReceived}
	for _, l := range b.Lines() {
		p, err := s.catalog.Product(ctx, l.ProductID)
		if err != nil {
			return nil, fmt.Errorf("resolve product %s: %w", l.ProductID, err)
		}
		if !p.Available {
			return nil, fmt.Errorf("%w: %s", domain.ErrProductUnavailable, p.ID)
		}
		in.Lines = append(in.Lines, CommitLine{
			ProductID: p.ID,
			Name:      p.Name,
			UnitPrice: p.PriceCents,
			Quantity:  l.Quantity,
		})
	}

	tx, err := s.Commit(ctx, in)
	if err != nil {
		return nil, err
	}
	b.Clear()
	return tx, nil
}

// List returns the full sale history, oldest first.
func (s *Service) List(ctx context.Context) ([]domain.Transaction, error) {
	return s.repo.List(ctx)
}
