package report

import (
	"context"

	"buvette-pos/internal/domain"
	reportrepo "buvette-pos/internal/repository/report"
)

// Service assembles sales reports. Aggregates are recomputed from the
// stored transactions on every call; a commit is reflected by the very
// next read.
type Service struct {
	repo reportRepo
}

type reportRepo interface {
	PerProduct(ctx context.Context) ([]domain.ProductSales, error)
	PerPaymentMethod(ctx context.Context) ([]domain.PaymentMethodSales, error)
	GrandTotal(ctx context.Context) (domain.Cents, error)
	TransactionCount(ctx context.Context) (int64, error)
}

func New(repo reportrepo.Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) PerProduct(ctx context.Context) ([]domain.ProductSales, error) {
	return s.repo.PerProduct(ctx)
}

func (s *Service) PerPaymentMethod(ctx context.Context) ([]domain.PaymentMethodSales, error) {
	return s.repo.PerPaymentMethod(ctx)
}

func (s *Service) GrandTotal(ctx context.Context) (domain.Cents, error) {
	return s.repo.GrandTotal(ctx)
}

func (s *Service) TransactionCount(ctx context.Context) (int64, error) {
	return s.repo.TransactionCount(ctx)
}

// Summary builds the dashboard document: grand totals plus the
// per-product and per-payment-method breakdowns.
func (s *Service) Summary(ctx context.Context) (*domain.Summary, error) {
	total, err := s.repo.GrandTotal(ctx)
	if err != nil {
		return nil, err
	}
	count, err := s.repo.TransactionCount(ctx)
	if err != nil {
		return nil, err
	}
	perProduct, err := s.repo.PerProduct(ctx)
	if err != nil {
		return nil, err
	}
	perMethod, err := s.repo.PerPaymentMethod(ctx)
	if err != nil {
		return nil, err
	}
	return &domain.Summary{
		TotalRevenue:      total,
		TotalTransactions: count,
		PerProduct:        perProduct,
		PerPaymentMethod:  perMethod,
	}, nil
}
