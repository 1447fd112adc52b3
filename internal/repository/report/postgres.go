package report

import (
	"context"

	"buvette-pos/internal/domain"
	"github.com/jackc/pgx/v5/pgxpool"
)

type postgresRepo struct {
	pool *pgxpool.Pool
}

func NewPostgres(pool *pgxpool.Pool) Repository {
	return &postgresRepo{pool: pool}
}

func (r *postgresRepo) PerProduct(ctx context.Context) ([]domain.ProductSales, error) {
	rows, err := r.pool.Query(ctx, perProductQuery)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	result := []domain.ProductSales{}
	for rows.Next() {
		var s domain.ProductSales
		if err := rows.Scan(&s.ProductID, &s.ProductName, &s.TotalQuantity, &s.TotalRevenue); err != nil {
			return nil, err
		}
		result = append(result, s)
	}
	return result, rows.Err()
}

func (r *postgresRepo) PerPaymentMethod(ctx context.Context) ([]domain.PaymentMethodSales, error) {
	rows, err := r.pool.Query(ctx, perPaymentMethodQuery)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	result := []domain.PaymentMethodSales{}
	for rows.Next() {
		var s domain.PaymentMethodSales
		if err := rows.Scan(&s.PaymentMethod, &s.TransactionCount, &s.TotalRevenue); err != nil {
			return nil, err
		}
		result = append(result, s)
	}
	return result, rows.Err()
}

func (r *postgresRepo) GrandTotal(ctx context.Context) (domain.Cents, error) {
	var total domain.Cents
	err := r.pool.QueryRow(ctx, grandTotalQuery).Scan(&total)
	return total, err
}

func (r *postgresRepo) TransactionCount(ctx context.Context) (int64, error) {
	var count int64
	err := r.pool.QueryRow(ctx, transactionCountQuery).Scan(&count)
	return count, err
}
