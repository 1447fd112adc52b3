// Package maintenance clears the register between events. The sale
// history is append-only during operation; wiping it is an explicit
// administrative act, never part of the selling flow.
package maintenance

import (
	"context"
	"database/sql"
	"fmt"

	catalogrepo "buvette-pos/internal/repository/catalog"
	"buvette-pos/internal/seed"
	"github.com/jackc/pgx/v5/pgxpool"
)

// ResetPostgres empties every sale and catalog table, then reseeds the
// default catalog. Schema and migration bookkeeping stay in place.
func ResetPostgres(ctx context.Context, pool *pgxpool.Pool, repo catalogrepo.Repository) error {
	if _, err := pool.Exec(ctx, `TRUNCATE line_items, transactions, products, categories`); err != nil {
		return fmt.Errorf("truncate: %w", err)
	}
	return seed.Apply(ctx, repo)
}

// ResetSQLite is ResetPostgres for the file-backed register database.
func ResetSQLite(ctx context.Context, sqlDB *sql.DB, repo catalogrepo.Repository) error {
	for _, table := range []string{"line_items", "transactions", "products", "categories"} {
		if _, err := sqlDB.ExecContext(ctx, "DELETE FROM "+table); err != nil {
			return fmt.Errorf("clear %s: %w", table, err)
		}
	}
	return seed.Apply(ctx, repo)
}
