package report

import (
	"context"

	"buvette-pos/internal/domain"
)

// Repository computes sales aggregates. Every call recomputes from the
// stored rows; nothing is cached between reads.
type Repository interface {
	// PerProduct groups all line items ever sold by product id. The
	// reported name is the snapshot from the most recent sale, and rows
	// come back ordered by revenue descending, product id ascending.
	PerProduct(ctx context.Context) ([]domain.ProductSales, error)
	// PerPaymentMethod groups transactions by settlement method,
	// ordered by method ascending.
	PerPaymentMethod(ctx context.Context) ([]domain.PaymentMethodSales, error)
	GrandTotal(ctx context.Context) (domain.Cents, error)
	TransactionCount(ctx context.Context) (int64, error)
}

// The aggregation SQL is dialect-neutral; both engines run the same
// statements. Aggregates read line item snapshots only, never the live
// catalog.
const (
	perProductQuery = `
SELECT li.product_id,
       (SELECT l2.product_name
        FROM line_items l2
        WHERE l2.product_id = li.product_id
        ORDER BY l2.seq DESC
        LIMIT 1) AS product_name,
       CAST(SUM(li.quantity) AS BIGINT) AS total_quantity,
       CAST(SUM(li.line_total_cents) AS BIGINT) AS total_revenue
FROM line_items li
GROUP BY li.product_id
ORDER BY total_revenue DESC, li.product_id ASC
`

	perPaymentMethodQuery = `
SELECT payment_method,
       COUNT(*) AS transaction_count,
       CAST(SUM(total_cents) AS BIGINT) AS total_revenue
FROM transactions
GROUP BY payment_method
ORDER BY payment_method ASC
`

	grandTotalQuery = `
SELECT COALESCE(CAST(SUM(total_cents) AS BIGINT), 0)
FROM transactions
`

	transactionCountQuery = `
SELECT COUNT(*)
FROM transactions
`
)
