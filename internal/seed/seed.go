package seed

import (
	"context"
	"fmt"

	"buvette-pos/internal/domain"
	catalogrepo "buvette-pos/internal/repository/catalog"
)

// Apply inserts the default booth catalog. It is idempotent via
// ON CONFLICT DO NOTHING, so rows edited since the first run are left
// alone.
func Apply(ctx context.Context, repo catalogrepo.Repository) error {
	categories := []domain.Category{
		{ID: "snack", Label: "Snack", Color: "#e8a735"},
		{ID: "boisson-sans-alcool", Label: "Boisson sans alcool", Color: "#3b82f6"},
		{ID: "alcool", Label: "Alcool", Color: "#8b5cf6"},
		{ID: "sucreries", Label: "Sucreries", Color: "#e84393"},
		{ID: "autre", Label: "Autre", Color: "#6b7280"},
	}
	for _, c := range categories {
		if err := repo.UpsertCategory(ctx, c); err != nil {
			return fmt.Errorf("upsert category %s: %w", c.ID, err)
		}
	}

	products := []domain.Product{
		{ID: "the", Name: "Thé", PriceCents: 100, CategoryID: "boisson-sans-alcool"},
		{ID: "cafe", Name: "Café", PriceCents: 100, CategoryID: "boisson-sans-alcool"},
		{ID: "soda", Name: "Soda", PriceCents: 200, CategoryID: "boisson-sans-alcool"},
		{ID: "jus-de-fruit", Name: "Jus de fruit", PriceCents: 200, CategoryID: "boisson-sans-alcool"},
		{ID: "biere-pichet", Name: "Bière (pichet)", PriceCents: 1200, CategoryID: "alcool"},
		{ID: "biere-25cl", Name: "Bière (25cl)", PriceCents: 300, CategoryID: "alcool"},
		{ID: "cidre-doux", Name: "Cidre (doux)", PriceCents: 300, CategoryID: "alcool"},
		{ID: "cidre-brut", Name: "Cidre (brut)", PriceCents: 300, CategoryID: "alcool"},
		{ID: "consigne-verre", Name: "Consigne verre", PriceCents: 100, CategoryID: "autre"},
		{ID: "consigne-pichet", Name: "Consigne pichet", PriceCents: 500, CategoryID: "autre"},
		{ID: "bonbon", Name: "Bonbon/M&Ms/Twix", PriceCents: 100, CategoryID: "sucreries"},
		{ID: "part-de-gateau", Name: "Part de gâteau", PriceCents: 100, CategoryID: "sucreries"},
		{ID: "crepe-nature", Name: "Crêpe nature", PriceCents: 200, CategoryID: "sucreries"},
		{ID: "crepe-sucre", Name: "Crêpe au sucre", PriceCents: 250, CategoryID: "sucreries"},
		{ID: "crepe-confiture", Name: "Crêpe à la confiture", PriceCents: 350, CategoryID: "sucreries"},
		{ID: "crepe-caramel", Name: "Crêpe au caramel", PriceCents: 350, CategoryID: "sucreries"},
		{ID: "crepe-nutella", Name: "Crêpe au Nutella", PriceCents: 350, CategoryID: "sucreries"},
		{ID: "cake-sale", Name: "Cake salé", PriceCents: 100, CategoryID: "snack"},
		{ID: "sandwich", Name: "Sandwich", PriceCents: 400, CategoryID: "snack"},
		{ID: "panini", Name: "Panini", PriceCents: 400, CategoryID: "snack"},
	}
	for _, p := range products {
		p.Available = true
		if err := repo.UpsertProduct(ctx, p); err != nil {
			return fmt.Errorf("upsert product %s: %w", p.ID, err)
		}
	}

	return nil
}
