package catalog

import (
	"context"
	"errors"

	"buvette-pos/internal/domain"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type postgresRepo struct {
	pool *pgxpool.Pool
}

func NewPostgres(pool *pgxpool.Pool) Repository {
	return &postgresRepo{pool: pool}
}

func (r *postgresRepo) ListCategories(ctx context.Context) ([]domain.Category, error) {
	const q = `
SELECT id, label, color
FROM categories
ORDER BY label ASC
`
	rows, err := r.pool.Query(ctx, q)
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

func (r *postgresRepo) CreateCategory(ctx context.Context, c domain.Category) (*domain.Category, error) {
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	const q = `
INSERT INTO categories (id, label, color)
VALUES ($1, $2, $3)
`
	if _, err := r.pool.Exec(ctx, q, c.ID, c.Label, c.Color); err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *postgresRepo) UpdateCategory(ctx context.Context, c domain.Category) error {
	const q = `
UPDATE categories
SET label = $1, color = $2
WHERE id = $3
`
	tag, err := r.pool.Exec(ctx, q, c.Label, c.Color, c.ID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *postgresRepo) DeleteCategory(ctx context.Context, id string) error {
	var refs int64
	if err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM products WHERE category_id = $1`, id).Scan(&refs); err != nil {
		return err
	}
	if refs > 0 {
		return domain.ErrInUse
	}
	tag, err := r.pool.Exec(ctx, `DELETE FROM categories WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *postgresRepo) ListProducts(ctx context.Context) ([]domain.Product, error) {
	const q = `
SELECT id, name, price_cents, category_id, available
FROM products
ORDER BY name ASC
`
	rows, err := r.pool.Query(ctx, q)
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

func (r *postgresRepo) GetProduct(ctx context.Context, id string) (*domain.Product, error) {
	const q = `
SELECT id, name, price_cents, category_id, available
FROM products
WHERE id = $1
`
	var p domain.Product
	err := r.pool.QueryRow(ctx, q, id).Scan(&p.ID, &p.Name, &p.PriceCents, &p.CategoryID, &p.Available)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &p, nil
}

func (r *postgresRepo) CreateProduct(ctx context.Context, p domain.Product) (*domain.Product, error) {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	const q = `
INSERT INTO products (id, name, price_cents, category_id, available)
VALUES ($1, $2, $3, $4, $5)
`
	if _, err := r.pool.Exec(ctx, q, p.ID, p.Name, p.PriceCents, p.CategoryID, p.Available); err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *postgresRepo) UpdateProduct(ctx context.Context, p domain.Product) error {
	const q = `
UPDATE products
SET name = $1, price_cents = $2, category_id = $3, available = $4
WHERE id = $5
`
	tag, err := r.pool.Exec(ctx, q, p.Name, p.PriceCents, p.CategoryID, p.Available, p.ID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *postgresRepo) ToggleProductAvailability(ctx context.Context, id string) (bool, error) {
	const q = `
UPDATE products
SET available = NOT available
WHERE id = $1
RETURNING available
`
	var available bool
	err := r.pool.QueryRow(ctx, q, id).Scan(&available)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return false, domain.ErrNotFound
		}
		return false, err
	}
	return available, nil
}

func (r *postgresRepo) DeleteProduct(ctx context.Context, id string) error {
	var refs int64
	if err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM line_items WHERE product_id = $1`, id).Scan(&refs); err != nil {
		return err
	}
	if refs > 0 {
		return domain.ErrInUse
	}
	tag, err := r.pool.Exec(ctx, `DELETE FROM products WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *postgresRepo) UpsertCategory(ctx context.Context, c domain.Category) error {
	const q = `
INSERT INTO categories (id, label, color)
VALUES ($1, $2, $3)
ON CONFLICT (id) DO NOTHING
`
	_, err := r.pool.Exec(ctx, q, c.ID, c.Label, c.Color)
	return err
}

func (r *postgresRepo) UpsertProduct(ctx context.Context, p domain.Product) error {
	const q = `
INSERT INTO products (id, name, price_cents, category_id, available)
VALUES ($1, $2, $3, $4, $5)
ON CONFLICT (id) DO NOTHING
`
	_, err := r.pool.Exec(ctx, q, p.ID, p.Name, p.PriceCents, p.CategoryID, p.Available)
	return err
}
