package catalog

import (
	"context"

	"buvette-pos/internal/domain"
)

// Repository stores the live catalog: categories and the products sold
// from them. Catalog rows are mutable reference data; committed sales
// keep their own snapshots and never read back through here.
type Repository interface {
	ListCategories(ctx context.Context) ([]domain.Category, error)
	CreateCategory(ctx context.Context, c domain.Category) (*domain.Category, error)
	UpdateCategory(ctx context.Context, c domain.Category) error
	// DeleteCategory refuses with domain.ErrInUse while products still
	// point at the category.
	DeleteCategory(ctx context.Context, id string) error

	ListProducts(ctx context.Context) ([]domain.Product, error)
	GetProduct(ctx context.Context, id string) (*domain.Product, error)
	CreateProduct(ctx context.Context, p domain.Product) (*domain.Product, error)
	UpdateProduct(ctx context.Context, p domain.Product) error
	// ToggleProductAvailability flips the flag and returns the new value.
	ToggleProductAvailability(ctx context.Context, id string) (bool, error)
	// DeleteProduct refuses with domain.ErrInUse when past sales
	// reference the product.
	DeleteProduct(ctx context.Context, id string) error

	// Seeding upserts. Existing rows win over seed data.
	UpsertCategory(ctx context.Context, c domain.Category) error
	UpsertProduct(ctx context.Context, p domain.Product) error
}
