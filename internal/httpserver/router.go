package httpserver

import (
	"context"
	"errors"
	"log"

	"buvette-pos/internal/db"
	"buvette-pos/internal/domain"
	"buvette-pos/internal/order"
	catalogsvc "buvette-pos/internal/service/catalog"
	salessvc "buvette-pos/internal/service/sales"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// CatalogService covers the product and category commands the API exposes.
type CatalogService interface {
	Categories(ctx context.Context) ([]domain.Category, error)
	CreateCategory(ctx context.Context, in catalogsvc.CategoryInput) (*domain.Category, error)
	UpdateCategory(ctx context.Context, id string, in catalogsvc.CategoryInput) (*domain.Category, error)
	DeleteCategory(ctx context.Context, id string) error
	Products(ctx context.Context) ([]domain.Product, error)
	Product(ctx context.Context, id string) (*domain.Product, error)
	CreateProduct(ctx context.Context, in catalogsvc.ProductInput) (*domain.Product, error)
	UpdateProduct(ctx context.Context, id string, in catalogsvc.ProductInput) (*domain.Product, error)
	ToggleAvailability(ctx context.Context, id string) (bool, error)
	DeleteProduct(ctx context.Context, id string) error
}

// SalesService commits and lists orders.
type SalesService interface {
	Commit(ctx context.Context, in salessvc.CommitInput) (*domain.Transaction, error)
	Checkout(ctx context.Context, b *order.Builder, paymentMethod string, cashReceived *domain.Cents) (*domain.Transaction, error)
	List(ctx context.Context) ([]domain.Transaction, error)
}

// ReportService serves the dashboard aggregates.
type ReportService interface {
	PerProduct(ctx context.Context) ([]domain.ProductSales, error)
	PerPaymentMethod(ctx context.Context) ([]domain.PaymentMethodSales, error)
	Summary(ctx context.Context) (*domain.Summary, error)
}

// Deps carries the services the handlers dispatch to. Register is the
// one cart this register drives; Reset wipes and reseeds storage.
type Deps struct {
	CatalogSvc CatalogService
	SalesSvc   SalesService
	ReportSvc  ReportService
	Register   *order.Builder
	Reset      func(ctx context.Context) error
}

// buildRouter wires routes for the API.
func buildRouter(logger *log.Logger, pinger db.Pinger, deps Deps) (*gin.Engine, error) {
	if deps.CatalogSvc == nil || deps.SalesSvc == nil || deps.ReportSvc == nil {
		return nil, errors.New("httpserver: missing service dependency")
	}
	if deps.Register == nil {
		return nil, errors.New("httpserver: missing register cart")
	}

	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.LoggerWithWriter(logger.Writer()), gin.Recovery(), requestMetrics(), cors.Default())

	router.GET("/healthz", healthHandler)
	router.GET("/readyz", readyHandler(pinger))
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	v1 := router.Group("/api/v1")
	{
		v1.GET("/categories", listCategoriesHandler(deps.CatalogSvc))
		v1.POST("/categories", createCategoryHandler(deps.CatalogSvc))
		v1.PUT("/categories/:id", updateCategoryHandler(deps.CatalogSvc))
		v1.DELETE("/categories/:id", deleteCategoryHandler(deps.CatalogSvc))

		v1.GET("/products", listProductsHandler(deps.CatalogSvc))
		v1.POST("/products", createProductHandler(deps.CatalogSvc))
		v1.PUT("/products/:id", updateProductHandler(deps.CatalogSvc))
		v1.POST("/products/:id/toggle", toggleProductHandler(deps.CatalogSvc))
		v1.DELETE("/products/:id", deleteProductHandler(deps.CatalogSvc))

		v1.POST("/orders", commitOrderHandler(deps.SalesSvc))
		v1.GET("/orders", listOrdersHandler(deps.SalesSvc))
		v1.GET("/summary", summaryHandler(deps.ReportSvc))

		v1.GET("/exports/orders.csv", exportOrdersHandler(deps.SalesSvc))
		v1.GET("/exports/products.csv", exportProductsHandler(deps.ReportSvc))
		v1.GET("/exports/payments.csv", exportPaymentsHandler(deps.ReportSvc))

		v1.GET("/register/cart", cartViewHandler(deps.Register, deps.CatalogSvc))
		v1.POST("/register/cart/items", addCartItemHandler(deps.Register, deps.CatalogSvc))
		v1.POST("/register/cart/items/:productId/increase", increaseCartItemHandler(deps.Register, deps.CatalogSvc))
		v1.POST("/register/cart/items/:productId/decrease", decreaseCartItemHandler(deps.Register, deps.CatalogSvc))
		v1.DELETE("/register/cart", clearCartHandler(deps.Register))
		v1.POST("/register/checkout", checkoutHandler(deps.Register, deps.SalesSvc))

		v1.POST("/admin/reset", resetHandler(deps.Reset))
	}

	return router, nil
}
