package report

import (
	"context"
	"database/sql"

	"buvette-pos/internal/domain"
)

type sqliteRepo struct {
	db *sql.DB
}

func NewSQLite(db *sql.DB) Repository {
	return &sqliteRepo{db: db}
}

func (r *sqliteRepo) PerProduct(ctx context.Context) ([]domain.ProductSales, error) {
	rows, err := r.db.QueryContext(ctx, perProductQuery)
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

func (r *sqliteRepo) PerPaymentMethod(ctx context.Context) ([]domain.PaymentMethodSales, error) {
	rows, err := r.db.QueryContext(ctx, perPaymentMethodQuery)
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

func (r *sqliteRepo) GrandTotal(ctx context.Context) (domain.Cents, error) {
	var total domain.Cents
	err := r.db.QueryRowContext(ctx, grandTotalQuery).Scan(&total)
	return total, err
}

func (r *sqliteRepo) TransactionCount(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.QueryRowContext(ctx, transactionCountQuery).Scan(&count)
	return count, err
}
