package report

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"buvette-pos/internal/db"
	"buvette-pos/internal/domain"
	"buvette-pos/internal/migrate"
	catalogrepo "buvette-pos/internal/repository/catalog"
	salesrepo "buvette-pos/internal/repository/sales"

	"github.com/stretchr/testify/require"
)

type sqliteFixture struct {
	report Repository
	sales  salesrepo.Repository
}

func newSQLiteFixture(t *testing.T) sqliteFixture {
	t.Helper()
	ctx := context.Background()

	sqlDB, err := db.OpenSQLite(ctx, filepath.Join(t.TempDir(), "report.db"))
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })
	require.NoError(t, migrate.ApplySQLite(sqlDB))

	cat := catalogrepo.NewSQLite(sqlDB)
	require.NoError(t, cat.UpsertCategory(ctx, domain.Category{ID: "boisson", Label: "Boissons", Color: "#3b82f6"}))
	for _, p := range []domain.Product{
		{ID: "the", Name: "Thé", PriceCents: 100, CategoryID: "boisson", Available: true},
		{ID: "cafe", Name: "Café", PriceCents: 100, CategoryID: "boisson", Available: true},
		{ID: "soda", Name: "Soda", PriceCents: 200, CategoryID: "boisson", Available: true},
	} {
		require.NoError(t, cat.UpsertProduct(ctx, p))
	}

	return sqliteFixture{
		report: NewSQLite(sqlDB),
		sales:  salesrepo.NewSQLite(sqlDB, nil),
	}
}

func (f sqliteFixture) sell(t *testing.T, method domain.PaymentMethod, lines ...salesrepo.InsertLine) {
	t.Helper()
	var total domain.Cents
	for _, l := range lines {
		total += l.LineTotal
	}
	in := salesrepo.InsertInput{
		CreatedAt:     time.Date(2026, 6, 21, 18, 0, 0, 0, time.UTC),
		PaymentMethod: method,
		TotalCents:    total,
		Lines:         lines,
	}
	if method == domain.PaymentCash {
		received := total
		change := domain.Cents(0)
		in.CashReceived = &received
		in.ChangeGiven = &change
	}
	_, err := f.sales.Insert(context.Background(), in)
	require.NoError(t, err)
}

func line(productID, name string, unitPrice domain.Cents, qty int64) salesrepo.InsertLine {
	return salesrepo.InsertLine{
		ProductID:   productID,
		ProductName: name,
		UnitPrice:   unitPrice,
		Quantity:    qty,
		LineTotal:   unitPrice * domain.Cents(qty),
	}
}

func TestSQLitePerProductGroupsAcrossTransactions(t *testing.T) {
	f := newSQLiteFixture(t)
	ctx := context.Background()

	f.sell(t, domain.PaymentCash, line("the", "Thé", 100, 2))
	f.sell(t, domain.PaymentCard, line("the", "Thé", 100, 1), line("cafe", "Café", 100, 1))

	rows, err := f.report.PerProduct(ctx)
	require.NoError(t, err)
	require.Len(t, rows, 2)

	require.Equal(t, "the", rows[0].ProductID)
	require.Equal(t, int64(3), rows[0].TotalQuantity)
	require.Equal(t, domain.Cents(300), rows[0].TotalRevenue)
	require.Equal(t, "cafe", rows[1].ProductID)
	require.Equal(t, int64(1), rows[1].TotalQuantity)
	require.Equal(t, domain.Cents(100), rows[1].TotalRevenue)

	// Re-reads recompute the same figures.
	again, err := f.report.PerProduct(ctx)
	require.NoError(t, err)
	require.Equal(t, rows, again)
}

func TestSQLitePerProductReportsLatestSnapshotName(t *testing.T) {
	f := newSQLiteFixture(t)

	f.sell(t, domain.PaymentCard, line("the", "Thé", 100, 1))
	f.sell(t, domain.PaymentCard, line("the", "Thé vert", 150, 1))

	rows, err := f.report.PerProduct(context.Background())
	require.NoError(t, err)
	require.Len(t, rows, 1)
	require.Equal(t, "Thé vert", rows[0].ProductName)
	require.Equal(t, int64(2), rows[0].TotalQuantity)
	require.Equal(t, domain.Cents(250), rows[0].TotalRevenue)
}

func TestSQLitePerProductTieBreaksOnProductID(t *testing.T) {
	f := newSQLiteFixture(t)

	// Equal revenue on both products; ids decide the order.
	f.sell(t, domain.PaymentCard, line("the", "Thé", 100, 2))
	f.sell(t, domain.PaymentCard, line("cafe", "Café", 100, 2))

	rows, err := f.report.PerProduct(context.Background())
	require.NoError(t, err)
	require.Len(t, rows, 2)
	require.Equal(t, "cafe", rows[0].ProductID)
	require.Equal(t, "the", rows[1].ProductID)
}

func TestSQLitePerPaymentMethod(t *testing.T) {
	f := newSQLiteFixture(t)

	f.sell(t, domain.PaymentCash, line("the", "Thé", 100, 1))
	f.sell(t, domain.PaymentCash, line("soda", "Soda", 200, 1))
	f.sell(t, domain.PaymentCard, line("cafe", "Café", 100, 1))

	rows, err := f.report.PerPaymentMethod(context.Background())
	require.NoError(t, err)
	require.Len(t, rows, 2)

	require.Equal(t, domain.PaymentCard, rows[0].PaymentMethod)
	require.Equal(t, int64(1), rows[0].TransactionCount)
	require.Equal(t, domain.Cents(100), rows[0].TotalRevenue)

	require.Equal(t, domain.PaymentCash, rows[1].PaymentMethod)
	require.Equal(t, int64(2), rows[1].TransactionCount)
	require.Equal(t, domain.Cents(300), rows[1].TotalRevenue)
}

func TestSQLiteGrandTotalMatchesBreakdowns(t *testing.T) {
	f := newSQLiteFixture(t)
	ctx := context.Background()

	f.sell(t, domain.PaymentCash, line("the", "Thé", 100, 2))
	f.sell(t, domain.PaymentCard, line("soda", "Soda", 200, 3))
	f.sell(t, domain.PaymentCard, line("cafe", "Café", 100, 1), line("the", "Thé", 100, 1))

	grand, err := f.report.GrandTotal(ctx)
	require.NoError(t, err)
	require.Equal(t, domain.Cents(1000), grand)

	count, err := f.report.TransactionCount(ctx)
	require.NoError(t, err)
	require.Equal(t, int64(3), count)

	perProduct, err := f.report.PerProduct(ctx)
	require.NoError(t, err)
	var productSum domain.Cents
	for _, row := range perProduct {
		productSum += row.TotalRevenue
	}
	require.Equal(t, grand, productSum)

	perMethod, err := f.report.PerPaymentMethod(ctx)
	require.NoError(t, err)
	var methodSum domain.Cents
	var methodCount int64
	for _, row := range perMethod {
		methodSum += row.TotalRevenue
		methodCount += row.TransactionCount
	}
	require.Equal(t, grand, methodSum)
	require.Equal(t, count, methodCount)
}

func TestSQLiteEmptyStoreYieldsZeroes(t *testing.T) {
	f := newSQLiteFixture(t)
	ctx := context.Background()

	grand, err := f.report.GrandTotal(ctx)
	require.NoError(t, err)
	require.Zero(t, grand)

	count, err := f.report.TransactionCount(ctx)
	require.NoError(t, err)
	require.Zero(t, count)

	perProduct, err := f.report.PerProduct(ctx)
	require.NoError(t, err)
	require.NotNil(t, perProduct)
	require.Empty(t, perProduct)

	perMethod, err := f.report.PerPaymentMethod(ctx)
	require.NoError(t, err)
	require.NotNil(t, perMethod)
	require.Empty(t, perMethod)
}
