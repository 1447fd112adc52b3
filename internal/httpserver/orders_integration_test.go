package httpserver

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"buvette-pos/internal/db"
	"buvette-pos/internal/domain"
	"buvette-pos/internal/migrate"
	"buvette-pos/internal/order"
	catalogrepo "buvette-pos/internal/repository/catalog"
	reportrepo "buvette-pos/internal/repository/report"
	salesrepo "buvette-pos/internal/repository/sales"
	catalogsvc "buvette-pos/internal/service/catalog"
	reportsvc "buvette-pos/internal/service/report"
	salessvc "buvette-pos/internal/service/sales"

	"github.com/gin-gonic/gin"
)

// registerFixture is the full stack over a throwaway sqlite file: real
// repositories, real services, one register cart.
func registerFixture(t *testing.T) *gin.Engine {
	t.Helper()
	ctx := context.Background()

	sqlDB, err := db.OpenSQLite(ctx, filepath.Join(t.TempDir(), "pos.db"))
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	t.Cleanup(func() { sqlDB.Close() })
	if err := migrate.ApplySQLite(sqlDB); err != nil {
		t.Fatalf("apply migrations: %v", err)
	}

	catRepo := catalogrepo.NewSQLite(sqlDB)
	if err := catRepo.UpsertCategory(ctx, domain.Category{ID: "boisson", Label: "Boissons", Color: "#3b82f6"}); err != nil {
		t.Fatalf("seed category: %v", err)
	}
	for _, p := range []domain.Product{
		{ID: "prod-a", Name: "Thé", PriceCents: 150, CategoryID: "boisson", Available: true},
		{ID: "prod-b", Name: "Soda", PriceCents: 200, CategoryID: "boisson", Available: true},
	} {
		if err := catRepo.UpsertProduct(ctx, p); err != nil {
			t.Fatalf("seed product %s: %v", p.ID, err)
		}
	}

	catalogService := catalogsvc.New(catRepo)
	salesService := salessvc.New(salesrepo.NewSQLite(sqlDB, logDiscard()), catalogService)
	reportService := reportsvc.New(reportrepo.NewSQLite(sqlDB))

	gin.SetMode(gin.TestMode)
	router, err := buildRouter(logDiscard(), db.SQLPinger(sqlDB), Deps{
		CatalogSvc: catalogService,
		SalesSvc:   salesService,
		ReportSvc:  reportService,
		Register:   order.NewBuilder(),
	})
	if err != nil {
		t.Fatalf("build router: %v", err)
	}
	return router
}

func doJSON(t *testing.T, router *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var reader *strings.Reader
	if body == "" {
		reader = strings.NewReader("")
	} else {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestRegisterFlow_CardCheckout(t *testing.T) {
	router := registerFixture(t)

	rec := doJSON(t, router, http.MethodPost, "/api/v1/register/cart/items", `{"productId":"prod-a"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("add prod-a: expected 200, got %d body=%s", rec.Code, rec.Body.String())
	}
	rec = doJSON(t, router, http.MethodPost, "/api/v1/register/cart/items/prod-a/increase", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("increase prod-a: expected 200, got %d body=%s", rec.Code, rec.Body.String())
	}
	rec = doJSON(t, router, http.MethodPost, "/api/v1/register/cart/items", `{"productId":"prod-b"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("add prod-b: expected 200, got %d body=%s", rec.Code, rec.Body.String())
	}

	var view cartView
	if err := json.Unmarshal(rec.Body.Bytes(), &view); err != nil {
		t.Fatalf("unmarshal cart view: %v", err)
	}
	if view.Total != 500 {
		t.Fatalf("expected cart total 500, got %d", view.Total)
	}
	if len(view.Lines) != 2 || view.Lines[0].ProductID != "prod-a" || view.Lines[0].Quantity != 2 {
		t.Fatalf("unexpected cart lines: %+v", view.Lines)
	}

	rec = doJSON(t, router, http.MethodPost, "/api/v1/register/checkout", `{"paymentMethod":"card"}`)
	if rec.Code != http.StatusCreated {
		t.Fatalf("checkout: expected 201, got %d body=%s", rec.Code, rec.Body.String())
	}
	var tx domain.Transaction
	if err := json.Unmarshal(rec.Body.Bytes(), &tx); err != nil {
		t.Fatalf("unmarshal transaction: %v", err)
	}
	if tx.TotalCents != 500 || tx.PaymentMethod != domain.PaymentCard {
		t.Fatalf("unexpected transaction: %+v", tx)
	}
	if len(tx.Items) != 2 || tx.Items[0].LineTotal != 300 || tx.Items[1].LineTotal != 200 {
		t.Fatalf("unexpected items: %+v", tx.Items)
	}

	// Cart cleared by the successful checkout.
	rec = doJSON(t, router, http.MethodGet, "/api/v1/register/cart", "")
	if !strings.Contains(rec.Body.String(), `"lines":[]`) {
		t.Fatalf("expected empty cart, got %s", rec.Body.String())
	}

	rec = doJSON(t, router, http.MethodGet, "/api/v1/orders", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("list orders: expected 200, got %d", rec.Code)
	}
	var txs []domain.Transaction
	if err := json.Unmarshal(rec.Body.Bytes(), &txs); err != nil {
		t.Fatalf("unmarshal orders: %v", err)
	}
	if len(txs) != 1 || txs[0].ID != tx.ID {
		t.Fatalf("expected the committed order back, got %+v", txs)
	}
}

func TestRegisterFlow_CashChange(t *testing.T) {
	router := registerFixture(t)

	body := `{"lines":[{"productId":"prod-a","name":"Thé","unitPrice":150,"quantity":2},{"productId":"prod-b","name":"Soda","unitPrice":200,"quantity":1}],"paymentMethod":"cash","cashReceived":1000}`
	rec := doJSON(t, router, http.MethodPost, "/api/v1/orders", body)
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d body=%s", rec.Code, rec.Body.String())
	}

	var tx domain.Transaction
	if err := json.Unmarshal(rec.Body.Bytes(), &tx); err != nil {
		t.Fatalf("unmarshal transaction: %v", err)
	}
	if tx.TotalCents != 500 {
		t.Fatalf("expected total 500, got %d", tx.TotalCents)
	}
	if tx.CashReceived == nil || *tx.CashReceived != 1000 {
		t.Fatalf("unexpected cashReceived: %+v", tx.CashReceived)
	}
	if tx.ChangeGiven == nil || *tx.ChangeGiven != 500 {
		t.Fatalf("unexpected changeGiven: %+v", tx.ChangeGiven)
	}
}

func TestRegisterFlow_RepeatedCommitsStayDistinct(t *testing.T) {
	router := registerFixture(t)

	body := `{"lines":[{"productId":"prod-a","name":"Thé","unitPrice":150,"quantity":1}],"paymentMethod":"card"}`
	ids := make(map[string]bool)
	for i := 0; i < 2; i++ {
		rec := doJSON(t, router, http.MethodPost, "/api/v1/orders", body)
		if rec.Code != http.StatusCreated {
			t.Fatalf("commit %d: expected 201, got %d body=%s", i, rec.Code, rec.Body.String())
		}
		var tx domain.Transaction
		if err := json.Unmarshal(rec.Body.Bytes(), &tx); err != nil {
			t.Fatalf("unmarshal transaction: %v", err)
		}
		ids[tx.ID] = true
	}
	if len(ids) != 2 {
		t.Fatalf("expected two distinct transactions, got %v", ids)
	}

	rec := doJSON(t, router, http.MethodGet, "/api/v1/summary", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("summary: expected 200, got %d", rec.Code)
	}
	var summary domain.Summary
	if err := json.Unmarshal(rec.Body.Bytes(), &summary); err != nil {
		t.Fatalf("unmarshal summary: %v", err)
	}
	if summary.TotalTransactions != 2 || summary.TotalRevenue != 300 {
		t.Fatalf("unexpected summary: %+v", summary)
	}
}

func TestRegisterFlow_InsufficientCashKeepsCart(t *testing.T) {
	router := registerFixture(t)

	rec := doJSON(t, router, http.MethodPost, "/api/v1/register/cart/items", `{"productId":"prod-b"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("add: expected 200, got %d", rec.Code)
	}

	rec = doJSON(t, router, http.MethodPost, "/api/v1/register/checkout", `{"paymentMethod":"cash","cashReceived":100}`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d body=%s", rec.Code, rec.Body.String())
	}
	if !strings.Contains(rec.Body.String(), `"code":"validation"`) {
		t.Fatalf("unexpected body: %s", rec.Body.String())
	}

	// Nothing was written and the cart still holds the line.
	rec = doJSON(t, router, http.MethodGet, "/api/v1/orders", "")
	if strings.TrimSpace(rec.Body.String()) != "[]" {
		t.Fatalf("expected no orders, got %s", rec.Body.String())
	}
	rec = doJSON(t, router, http.MethodGet, "/api/v1/register/cart", "")
	if !strings.Contains(rec.Body.String(), `"productId":"prod-b"`) {
		t.Fatalf("expected cart preserved, got %s", rec.Body.String())
	}
}

func TestRegisterFlow_ExportAfterSales(t *testing.T) {
	router := registerFixture(t)

	body := `{"lines":[{"productId":"prod-a","name":"Thé","unitPrice":150,"quantity":2}],"paymentMethod":"card"}`
	if rec := doJSON(t, router, http.MethodPost, "/api/v1/orders", body); rec.Code != http.StatusCreated {
		t.Fatalf("commit: expected 201, got %d", rec.Code)
	}

	rec := doJSON(t, router, http.MethodGet, "/api/v1/exports/orders.csv", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("export: expected 200, got %d", rec.Code)
	}
	lines := strings.Split(strings.TrimRight(rec.Body.String(), "\n"), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected header plus one row, got %d lines: %q", len(lines), rec.Body.String())
	}
	if !strings.Contains(lines[1], `"card";3.00`) {
		t.Fatalf("unexpected export row: %q", lines[1])
	}

	rec = doJSON(t, router, http.MethodGet, "/api/v1/exports/products.csv", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("products export: expected 200, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), `"prod-a";"Thé";2;3.00`) {
		t.Fatalf("unexpected products export: %q", rec.Body.String())
	}
}
