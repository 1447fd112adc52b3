package catalog

import (
	"context"
	"fmt"
	"strings"

	"buvette-pos/internal/domain"
	catalogrepo "buvette-pos/internal/repository/catalog"
)

// Service owns catalog writes and the read path the register uses to
// price orders. Catalog edits never touch committed sales; those carry
// their own snapshots.
type Service struct {
	repo catalogRepo
}

type catalogRepo interface {
	ListCategories(ctx context.Context) ([]domain.Category, error)
	CreateCategory(ctx context.Context, c domain.Category) (*domain.Category, error)
	UpdateCategory(ctx context.Context, c domain.Category) error
	DeleteCategory(ctx context.Context, id string) error
	ListProducts(ctx context.Context) ([]domain.Product, error)
	GetProduct(ctx context.Context, id string) (*domain.Product, error)
	CreateProduct(ctx context.Context, p domain.Product) (*domain.Product, error)
	UpdateProduct(ctx context.Context, p domain.Product) error
	ToggleProductAvailability(ctx context.Context, id string) (bool, error)
	DeleteProduct(ctx context.Context, id string) error
}

func New(repo catalogrepo.Repository) *Service {
	return &Service{repo: repo}
}

type CategoryInput struct {
	Label string `json:"label"`
	Color string `json:"color"`
}

type ProductInput struct {
	Name       string       `json:"name"`
	PriceCents domain.Cents `json:"priceCents"`
	CategoryID string       `json:"categoryId"`
	Available  *bool        `json:"available,omitempty"`
}

func (s *Service) Categories(ctx context.Context) ([]domain.Category, error) {
	return s.repo.ListCategories(ctx)
}

func (s *Service) CreateCategory(ctx context.Context, in CategoryInput) (*domain.Category, error) {
	if err := validateCategory(in); err != nil {
		return nil, err
	}
	return s.repo.CreateCategory(ctx, domain.Category{Label: in.Label, Color: in.Color})
}

func (s *Service) UpdateCategory(ctx context.Context, id string, in CategoryInput) (*domain.Category, error) {
	if err := validateCategory(in); err != nil {
		return nil, err
	}
	c := domain.Category{ID: id, Label: in.Label, Color: in.Color}
	if err := s.repo.UpdateCategory(ctx, c); err != nil {
		return nil, err
	}
	return &c, nil
}

func (s *Service) DeleteCategory(ctx context.Context, id string) error {
	return s.repo.DeleteCategory(ctx, id)
}

func (s *Service) Products(ctx context.Context) ([]domain.Product, error) {
	return s.repo.ListProducts(ctx)
}

func (s *Service) Product(ctx context.Context, id string) (*domain.Product, error) {
	return s.repo.GetProduct(ctx, id)
}

func (s *Service) CreateProduct(ctx context.Context, in ProductInput) (*domain.Product, error) {
	if err := validateProduct(in); err != nil {
		return nil, err
	}
	available := true
	if in.Available != nil {
		available = *in.Available
	}
	return s.repo.CreateProduct(ctx, domain.Product{
		Name:       in.Name,
		PriceCents: in.PriceCents,
		CategoryID: in.CategoryID,
		Available:  available,
	})
}

func (s *Service) UpdateProduct(ctx context.Context, id string, in ProductInput) (*domain.Product, error) {
	if err := validateProduct(in); err != nil {
		return nil, err
	}
	current, err := s.repo.GetProduct(ctx, id)
	if err != nil {
		return nil, err
	}
	p := domain.Product{
		ID:         id,
		Name:       in.Name,
		PriceCents: in.PriceCents,
		CategoryID: in.CategoryID,
		Available:  current.Available,
	}
	if in.Available != nil {
		p.Available = *in.Available
	}
	if err := s.repo.UpdateProduct(ctx, p); err != nil {
		return nil, err
	}
	return &p, nil
}

func (s *Service) ToggleAvailability(ctx context.Context, id string) (bool, error) {
	return s.repo.ToggleProductAvailability(ctx, id)
}

func (s *Service) DeleteProduct(ctx context.Context, id string) error {
	return s.repo.DeleteProduct(ctx, id)
}

func validateCategory(in CategoryInput) error {
	if strings.TrimSpace(in.Label) == "" {
		return fmt.Errorf("%w: label required", domain.ErrInvalidInput)
	}
	if strings.TrimSpace(in.Color) == "" {
		return fmt.Errorf("%w: color required", domain.ErrInvalidInput)
	}
	return nil
}

func validateProduct(in ProductInput) error {
	if strings.TrimSpace(in.Name) == "" {
		return fmt.Errorf("%w: name required", domain.ErrInvalidInput)
	}
	if in.PriceCents < 0 {
		return fmt.Errorf("%w: price must not be negative", domain.ErrInvalidInput)
	}
	if strings.TrimSpace(in.CategoryID) == "" {
		return fmt.Errorf("%w: category id required", domain.ErrInvalidInput)
	}
	return nil
}
