package catalog

import (
	"context"
	"database/sql"
	"errors"

	"buvette-pos/internal/domain"
	"github.com/google/uuid"
)

type sqliteRepo struct {
	db *sql.DB
}

func NewSQLite(db *sql.DB) Repository {
	return &sqliteRepo{db: db}
}

func (r *sqliteRepo) ListCategories(ctx context.Context) ([]domain.Category, error) {
	const q = `
SELECT id, label, color
FROM categories
ORDER BY label ASC
`
	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	result := []domain.Category{}
	for rows.Next() {
		var c domain.Category
		if err := rows.Scan(&c.ID, &c.Label, &c.Color); err != nil {
			return nil, err
		}
		result = append(result, c)
	}
	return result, rows.Err()
}

func (r *sqliteRepo) CreateCategory(ctx context.Context, c domain.Category) (*domain.Category, error) {
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	const q = `
INSERT INTO categories (id, label, color)
VALUES (?, ?, ?)
`
	if _, err := r.db.ExecContext(ctx, q, c.ID, c.Label, c.Color); err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *sqliteRepo) UpdateCategory(ctx context.Context, c domain.Category) error {
	const q = `
UPDATE categories
SET label = ?, color = ?
WHERE id = ?
`
	res, err := r.db.ExecContext(ctx, q, c.Label, c.Color, c.ID)
	if err != nil {
		return err
	}
	return requireRow(res)
}

func (r *sqliteRepo) DeleteCategory(ctx context.Context, id string) error {
	var refs int64
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM products WHERE category_id = ?`, id).Scan(&refs); err != nil {
		return err
	}
	if refs > 0 {
		return domain.ErrInUse
	}
	res, err := r.db.ExecContext(ctx, `DELETE FROM categories WHERE id = ?`, id)
	if err != nil {
		return err
	}
	return requireRow(res)
}

func (r *sqliteRepo) ListProducts(ctx context.Context) ([]domain.Product, error) {
	const q = `
SELECT id, name, price_cents, category_id, available
FROM products
ORDER BY name ASC
`
	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	result := []domain.Product{}
	for rows.Next() {
		var p domain.Product
		if err := rows.Scan(&p.ID, &p.Name, &p.PriceCents, &p.CategoryID, &p.Available); err != nil {
			return nil, err
		}
		result = append(result, p)
	}
	return result, rows.Err()
}

func (r *sqliteRepo) GetProduct(ctx context.Context, id string) (*domain.Product, error) {
	const q = `
SELECT id, name, price_cents, category_id, available
FROM products
WHERE id = ?
`
	var p domain.Product
	err := r.db.QueryRowContext(ctx, q, id).Scan(&p.ID, &p.Name, &p.PriceCents, &p.CategoryID, &p.Available)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &p, nil
}

func (r *sqliteRepo) CreateProduct(ctx context.Context, p domain.Product) (*domain.Product, error) {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	const q = `
INSERT INTO products (id, name, price_cents, category_id, available)
VALUES (?, ?, ?, ?, ?)
`
	if _, err := r.db.ExecContext(ctx, q, p.ID, p.Name, p.PriceCents, p.CategoryID, p.Available); err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *sqliteRepo) UpdateProduct(ctx context.Context, p domain.Product) error {
	const q = `
UPDATE products
SET name = ?, price_cents = ?, category_id = ?, available = ?
WHERE id = ?
`
	res, err := r.db.ExecContext(ctx, q, p.Name, p.PriceCents, p.CategoryID, p.Available, p.ID)
	if err != nil {
		return err
	}
	return requireRow(res)
}

func (r *sqliteRepo) ToggleProductAvailability(ctx context.Context, id string) (bool, error) {
	const q = `
UPDATE products
SET available = NOT available
WHERE id = ?
RETURNING available
`
	var available bool
	err := r.db.QueryRowContext(ctx, q, id).Scan(&available)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return false, domain.ErrNotFound
		}
		return false, err
	}
	return available, nil
}

func (r *sqliteRepo) DeleteProduct(ctx context.Context, id string) error {
	var refs int64
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM line_items WHERE product_id = ?`, id).Scan(&refs); err != nil {
		return err
	}
	if refs > 0 {
		return domain.ErrInUse
	}
	res, err := r.db.ExecContext(ctx, `DELETE FROM products WHERE id = ?`, id)
	if err != nil {
		return err
	}
	return requireRow(res)
}

func (r *sqliteRepo) UpsertCategory(ctx context.Context, c domain.Category) error {
	const q = `
INSERT INTO categories (id, label, color)
VALUES (?, ?, ?)
ON CONFLICT (id) DO NOTHING
`
	_, err := r.db.ExecContext(ctx, q, c.ID, c.Label, c.Color)
	return err
}

func (r *sqliteRepo) UpsertProduct(ctx context.Context, p domain.Product) error {
	const q = `
INSERT INTO products (id, name, price_cents, category_id, available)
VALUES (?, ?, ?, ?, ?)
ON CONFLICT (id) DO NOTHING
`
	_, err := r.db.ExecContext(ctx, q, p.ID, p.Name, p.PriceCents, p.CategoryID, p.Available)
	return err
}

// requireRow maps zero affected rows onto domain.ErrNotFound.
func requireRow(res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return domain.ErrNotFound
	}
	return nil
}
