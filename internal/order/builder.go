package order

import (
	"context"
	"fmt"
	"sync"

	"buvette-pos/internal/domain"
)

// MaxLineQuantity caps a single line. Registers sell by the unit; a
// four-digit quantity is a stuck key.
const MaxLineQuantity = 9999

// PriceSource resolves current catalog products when the builder needs
// a total.
type PriceSource interface {
	Product(ctx context.Context, id string) (*domain.Product, error)
}

// Builder accumulates the in-progress order of one register. It is
// purely in memory: nothing touches storage until checkout commits the
// lines, and an abandoned builder leaves no trace. Safe for concurrent
// use.
type Builder struct {
	mu    sync.Mutex
	order []string // product ids in first-added sequence
	qty   map[string]int64
}

func NewBuilder() *Builder {
	return &Builder{qty: make(map[string]int64)}
}

// AddUnit puts one unit of p on the order, creating the line at
// quantity one or bumping an existing one.
func (b *Builder) AddUnit(p domain.Product) error {
	if !p.Available {
		return fmt.Errorf("%w: %s", domain.ErrProductUnavailable, p.ID)
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.bump(p.ID)
}

// Increase bumps an existing line by one unit. Product ids not on the
// order are ignored, mirroring Decrease.
func (b *Builder) Increase(productID string) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	if _, ok := b.qty[productID]; !ok {
		return nil
	}
	return b.bump(productID)
}

// Decrease removes one unit; at quantity one the line disappears from
// the order. Product ids not on the order are ignored.
func (b *Builder) Decrease(productID string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	q, ok := b.qty[productID]
	if !ok {
		return
	}
	if q <= 1 {
		delete(b.qty, productID)
		for i, id := range b.order {
			if id == productID {
				b.order = append(b.order[:i], b.order[i+1:]...)
				break
			}
		}
		return
	}
	b.qty[productID] = q - 1
}

// Clear empties the order. Clearing an already empty builder is a no-op.
func (b *Builder) Clear() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.order = nil
	b.qty = make(map[string]int64)
}

// Lines returns a copy of the order in the sequence products were first
// added.
func (b *Builder) Lines() []domain.CartLine {
	b.mu.Lock()
	defer b.mu.Unlock()
	lines := make([]domain.CartLine, 0, len(b.order))
	for _, id := range b.order {
		lines = append(lines, domain.CartLine{ProductID: id, Quantity: b.qty[id]})
	}
	return lines
}

func (b *Builder) Empty() bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.order) == 0
}

// Total prices the order against the current catalog. Snapshots are not
// taken here; checkout does that when it commits.
func (b *Builder) Total(ctx context.Context, src PriceSource) (domain.Cents, error) {
	var total domain.Cents
	for _, l := range b.Lines() {
		p, err := src.Product(ctx, l.ProductID)
		if err != nil {
			return 0, fmt.Errorf("price product %s: %w", l.ProductID, err)
		}
		lineTotal, err := domain.LineTotal(p.PriceCents, l.Quantity)
		if err != nil {
			return 0, err
		}
		total += lineTotal
	}
	return total, nil
}

// bump adds one unit to the line, creating it when absent. Callers hold
// b.mu.
func (b *Builder) bump(productID string) error {
	q := b.qty[productID]
	if q >= MaxLineQuantity {
		return fmt.Errorf("%w: quantity above %d", domain.ErrInvalidLine, MaxLineQuantity)
	}
	if q == 0 {
		b.order = append(b.order, productID)
	}
	b.qty[productID] = q + 1
	return nil
}
