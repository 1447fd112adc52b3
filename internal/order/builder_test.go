package order

import (
	"context"
	"errors"
	"testing"

	"buvette-pos/internal/domain"
)

type stubCatalog struct {
	products map[string]domain.Product
}

func (s *stubCatalog) Product(_ context.Context, id string) (*domain.Product, error) {
	p, ok := s.products[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &p, nil
}

func available(id, name string, price domain.Cents) domain.Product {
	return domain.Product{ID: id, Name: name, PriceCents: price, CategoryID: "cat", Available: true}
}

func TestBuilderAddUnit(t *testing.T) {
	b := NewBuilder()
	coffee := available("p-coffee", "Café", 100)
	beer := available("p-beer", "Bière", 300)

	if err := b.AddUnit(coffee); err != nil {
		t.Fatalf("add coffee: %v", err)
	}
	if err := b.AddUnit(beer); err != nil {
		t.Fatalf("add beer: %v", err)
	}
	if err := b.AddUnit(coffee); err != nil {
		t.Fatalf("add coffee again: %v", err)
	}

	lines := b.Lines()
	if len(lines) != 2 {
		t.Fatalf("expected 2 lines, got %d", len(lines))
	}
	if lines[0].ProductID != "p-coffee" || lines[0].Quantity != 2 {
		t.Fatalf("unexpected first line: %+v", lines[0])
	}
	if lines[1].ProductID != "p-beer" || lines[1].Quantity != 1 {
		t.Fatalf("unexpected second line: %+v", lines[1])
	}
}

func TestBuilderAddUnitUnavailable(t *testing.T) {
	b := NewBuilder()
	p := available("p-soup", "Soupe", 350)
	p.Available = false

	err := b.AddUnit(p)
	if !errors.Is(err, domain.ErrProductUnavailable) {
		t.Fatalf("expected ErrProductUnavailable, got %v", err)
	}
	if !b.Empty() {
		t.Fatalf("builder should stay empty after a rejected add")
	}
}

func TestBuilderIncreaseDecrease(t *testing.T) {
	b := NewBuilder()
	coffee := available("p-coffee", "Café", 100)
	if err := b.AddUnit(coffee); err != nil {
		t.Fatalf("add: %v", err)
	}

	if err := b.Increase("p-coffee"); err != nil {
		t.Fatalf("increase: %v", err)
	}
	if got := b.Lines()[0].Quantity; got != 2 {
		t.Fatalf("expected quantity 2, got %d", got)
	}

	// Unknown ids are ignored by both adjustments.
	if err := b.Increase("p-ghost"); err != nil {
		t.Fatalf("increase unknown: %v", err)
	}
	b.Decrease("p-ghost")
	if got := len(b.Lines()); got != 1 {
		t.Fatalf("expected 1 line, got %d", got)
	}

	b.Decrease("p-coffee")
	if got := b.Lines()[0].Quantity; got != 1 {
		t.Fatalf("expected quantity 1, got %d", got)
	}

	// Decreasing a one-unit line removes it entirely.
	b.Decrease("p-coffee")
	if !b.Empty() {
		t.Fatalf("expected empty builder, got %+v", b.Lines())
	}
}

func TestBuilderReAddGoesToEnd(t *testing.T) {
	b := NewBuilder()
	coffee := available("p-coffee", "Café", 100)
	beer := available("p-beer", "Bière", 300)
	if err := b.AddUnit(coffee); err != nil {
		t.Fatalf("add coffee: %v", err)
	}
	if err := b.AddUnit(beer); err != nil {
		t.Fatalf("add beer: %v", err)
	}

	b.Decrease("p-coffee")
	if err := b.AddUnit(coffee); err != nil {
		t.Fatalf("re-add coffee: %v", err)
	}

	lines := b.Lines()
	if lines[0].ProductID != "p-beer" || lines[1].ProductID != "p-coffee" {
		t.Fatalf("expected re-added line at the end, got %+v", lines)
	}
}

func TestBuilderClear(t *testing.T) {
	b := NewBuilder()
	if err := b.AddUnit(available("p-soda", "Soda", 200)); err != nil {
		t.Fatalf("add: %v", err)
	}

	b.Clear()
	if !b.Empty() {
		t.Fatalf("expected empty builder after clear")
	}
	b.Clear() // idempotent
	if !b.Empty() {
		t.Fatalf("expected empty builder after second clear")
	}
}

func TestBuilderQuantityCap(t *testing.T) {
	b := NewBuilder()
	tea := available("p-tea", "Thé", 100)
	for i := 0; i < MaxLineQuantity; i++ {
		if err := b.AddUnit(tea); err != nil {
			t.Fatalf("add %d: %v", i, err)
		}
	}

	if err := b.AddUnit(tea); !errors.Is(err, domain.ErrInvalidLine) {
		t.Fatalf("expected ErrInvalidLine past the cap, got %v", err)
	}
	if got := b.Lines()[0].Quantity; got != MaxLineQuantity {
		t.Fatalf("expected quantity %d, got %d", MaxLineQuantity, got)
	}
}

func TestBuilderTotal(t *testing.T) {
	src := &stubCatalog{products: map[string]domain.Product{
		"p-a": available("p-a", "A", 150),
		"p-b": available("p-b", "B", 200),
	}}
	b := NewBuilder()
	if err := b.AddUnit(src.products["p-a"]); err != nil {
		t.Fatalf("add: %v", err)
	}
	if err := b.AddUnit(src.products["p-a"]); err != nil {
		t.Fatalf("add: %v", err)
	}
	if err := b.AddUnit(src.products["p-b"]); err != nil {
		t.Fatalf("add: %v", err)
	}

	total, err := b.Total(context.Background(), src)
	if err != nil {
		t.Fatalf("total: %v", err)
	}
	if total != 500 {
		t.Fatalf("expected total 500, got %d", total)
	}
}

func TestBuilderTotalMissingProduct(t *testing.T) {
	b := NewBuilder()
	if err := b.AddUnit(available("p-gone", "Gone", 100)); err != nil {
		t.Fatalf("add: %v", err)
	}

	_, err := b.Total(context.Background(), &stubCatalog{products: map[string]domain.Product{}})
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestBuilderTotalCeiling(t *testing.T) {
	src := &stubCatalog{products: map[string]domain.Product{
		"p-big": available("p-big", "Big", domain.MaxLineTotalCents),
	}}
	b := NewBuilder()
	if err := b.AddUnit(src.products["p-big"]); err != nil {
		t.Fatalf("add: %v", err)
	}
	if err := b.Increase("p-big"); err != nil {
		t.Fatalf("increase: %v", err)
	}

	_, err := b.Total(context.Background(), src)
	if !errors.Is(err, domain.ErrInvalidLine) {
		t.Fatalf("expected ErrInvalidLine, got %v", err)
	}
}
