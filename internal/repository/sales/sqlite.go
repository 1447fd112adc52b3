package sales

import (
	"context"
	"database/sql"
	"fmt"
	"io"
	"log"
	"time"

	"buvette-pos/internal/domain"
	"github.com/google/uuid"
)

// createdAtLayout is the stored timestamp shape: fixed-width UTC, so
// lexicographic order equals chronological order.
const createdAtLayout = "2006-01-02T15:04:05Z"

type sqliteRepo struct {
	db     *sql.DB
	logger *log.Logger
}

func NewSQLite(db *sql.DB, logger *log.Logger) Repository {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return &sqliteRepo{db: db, logger: logger}
}

func (r *sqliteRepo) Insert(ctx context.Context, in InsertInput) (*domain.Transaction, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	createdAt := in.CreatedAt.UTC().Truncate(time.Second)
	var last sql.NullString
	if err := tx.QueryRowContext(ctx, `SELECT MAX(created_at) FROM transactions`).Scan(&last); err != nil {
		r.logger.Printf("sales repo: read last created_at error=%v", err)
		return nil, err
	}
	if last.Valid {
		prev, err := time.Parse(createdAtLayout, last.String)
		if err != nil {
			return nil, fmt.Errorf("stored created_at %q: %w", last.String, err)
		}
		if createdAt.Before(prev) {
			createdAt = prev
		}
	}

	result := &domain.Transaction{
		ID:            uuid.NewString(),
		CreatedAt:     createdAt,
		PaymentMethod: in.PaymentMethod,
		TotalCents:    in.TotalCents,
		CashReceived:  in.CashReceived,
		ChangeGiven:   in.ChangeGiven,
		Items:         []domain.LineItem{},
	}

	const insertTransaction = `
INSERT INTO transactions (id, created_at, payment_method, total_cents, cash_received_cents, change_given_cents)
VALUES (?, ?, ?, ?, ?, ?)
`
	res, err := tx.ExecContext(ctx, insertTransaction,
		result.ID,
		createdAt.Format(createdAtLayout),
		result.PaymentMethod,
		result.TotalCents,
		result.CashReceived,
		result.ChangeGiven,
	)
	if err != nil {
		r.logger.Printf("sales repo: insert transaction error=%v", err)
		return nil, err
	}
	if result.Seq, err = res.LastInsertId(); err != nil {
		return nil, err
	}

	const insertLine = `
INSERT INTO line_items (id, transaction_id, product_id, product_name, unit_price_cents, quantity, line_total_cents)
VALUES (?, ?, ?, ?, ?, ?, ?)
`
	for _, l := range in.Lines {
		item := domain.LineItem{
			ID:            uuid.NewString(),
			TransactionID: result.ID,
			ProductID:     l.ProductID,
			ProductName:   l.ProductName,
			UnitPrice:     l.UnitPrice,
			Quantity:      l.Quantity,
			LineTotal:     l.LineTotal,
		}
		if _, err := tx.ExecContext(ctx, insertLine,
			item.ID, item.TransactionID, item.ProductID, item.ProductName, item.UnitPrice, item.Quantity, item.LineTotal,
		); err != nil {
			r.logger.Printf("sales repo: insert line product_id=%s error=%v", l.ProductID, err)
			return nil, err
		}
		result.Items = append(result.Items, item)
	}

	if err := tx.Commit(); err != nil {
		r.logger.Printf("sales repo: commit error=%v", err)
		return nil, err
	}
	r.logger.Printf("sales repo: committed id=%s lines=%d total=%d", result.ID, len(result.Items), result.TotalCents)
	return result, nil
}

func (r *sqliteRepo) List(ctx context.Context) ([]domain.Transaction, error) {
	const q = `
SELECT id, seq, created_at, payment_method, total_cents, cash_received_cents, change_given_cents
FROM transactions
ORDER BY created_at ASC, seq ASC
`
	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		r.logger.Printf("sales repo: list error=%v", err)
		return nil, err
	}
	defer rows.Close()

	result := []domain.Transaction{}
	index := make(map[string]int)
	for rows.Next() {
		var t domain.Transaction
		var created string
		if err := rows.Scan(&t.ID, &t.Seq, &created, &t.PaymentMethod, &t.TotalCents, &t.CashReceived, &t.ChangeGiven); err != nil {
			return nil, err
		}
		if t.CreatedAt, err = time.Parse(createdAtLayout, created); err != nil {
			return nil, fmt.Errorf("stored created_at %q: %w", created, err)
		}
		t.Items = []domain.LineItem{}
		index[t.ID] = len(result)
		result = append(result, t)
	}
	if err := rows.Err(); err != nil {
		r.logger.Printf("sales repo: list rows error=%v", err)
		return nil, err
	}

	const itemsQuery = `
SELECT id, transaction_id, product_id, product_name, unit_price_cents, quantity, line_total_cents
FROM line_items
ORDER BY seq ASC
`
	items, err := r.db.QueryContext(ctx, itemsQuery)
	if err != nil {
		r.logger.Printf("sales repo: list items error=%v", err)
		return nil, err
	}
	defer items.Close()

	for items.Next() {
		var li domain.LineItem
		if err := items.Scan(&li.ID, &li.TransactionID, &li.ProductID, &li.ProductName, &li.UnitPrice, &li.Quantity, &li.LineTotal); err != nil {
			return nil, err
		}
		if i, ok := index[li.TransactionID]; ok {
			result[i].Items = append(result[i].Items, li)
		}
	}
	if err := items.Err(); err != nil {
		r.logger.Printf("sales repo: list items rows error=%v", err)
		return nil, err
	}
	r.logger.Printf("sales repo: list count=%d", len(result))
	return result, nil
}
