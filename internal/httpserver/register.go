package httpserver

import (
	"context"
	"net/http"
	"strings"

	"buvette-pos/internal/domain"
	"buvette-pos/internal/order"

	"github.com/gin-gonic/gin"
)

type cartViewLine struct {
	ProductID string       `json:"productId"`
	Name      string       `json:"name"`
	UnitPrice domain.Cents `json:"unitPrice"`
	Quantity  int64        `json:"quantity"`
	LineTotal domain.Cents `json:"lineTotal"`
}

type cartView struct {
	Lines []cartViewLine `json:"lines"`
	Total domain.Cents   `json:"total"`
}

type addItemRequest struct {
	ProductID string `json:"productId"`
}

type checkoutRequest struct {
	PaymentMethod string        `json:"paymentMethod"`
	CashReceived  *domain.Cents `json:"cashReceived"`
}

// buildCartView resolves the cart against the current catalog. Prices
// shown here are live; they become snapshots only at checkout.
func buildCartView(ctx context.Context, b *order.Builder, catalog CatalogService) (*cartView, error) {
	view := &cartView{Lines: []cartViewLine{}}
	for _, l := range b.Lines() {
		p, err := catalog.Product(ctx, l.ProductID)
		if err != nil {
			return nil, err
		}
		lineTotal, err := domain.LineTotal(p.PriceCents, l.Quantity)
		if err != nil {
			return nil, err
		}
		view.Lines = append(view.Lines, cartViewLine{
			ProductID: p.ID,
			Name:      p.Name,
			UnitPrice: p.PriceCents,
			Quantity:  l.Quantity,
			LineTotal: lineTotal,
		})
		view.Total += lineTotal
	}
	return view, nil
}

func respondCartView(c *gin.Context, b *order.Builder, catalog CatalogService) {
	view, err := buildCartView(c.Request.Context(), b, catalog)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

func cartViewHandler(b *order.Builder, catalog CatalogService) gin.HandlerFunc {
	return func(c *gin.Context) {
		respondCartView(c, b, catalog)
	}
}

func addCartItemHandler(b *order.Builder, catalog CatalogService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req addItemRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			writeBindError(c)
			return
		}
		id := strings.TrimSpace(req.ProductID)
		if id == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "productId is required", "code": "validation"})
			return
		}
		p, err := catalog.Product(c.Request.Context(), id)
		if err != nil {
			writeError(c, err)
			return
		}
		if err := b.AddUnit(*p); err != nil {
			writeError(c, err)
			return
		}
		respondCartView(c, b, catalog)
	}
}

func increaseCartItemHandler(b *order.Builder, catalog CatalogService) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := b.Increase(c.Param("productId")); err != nil {
			writeError(c, err)
			return
		}
		respondCartView(c, b, catalog)
	}
}

func decreaseCartItemHandler(b *order.Builder, catalog CatalogService) gin.HandlerFunc {
	return func(c *gin.Context) {
		b.Decrease(c.Param("productId"))
		respondCartView(c, b, catalog)
	}
}

func clearCartHandler(b *order.Builder) gin.HandlerFunc {
	return func(c *gin.Context) {
		b.Clear()
		c.Status(http.StatusNoContent)
	}
}

func checkoutHandler(b *order.Builder, svc SalesService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req checkoutRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			writeBindError(c)
			return
		}
		tx, err := svc.Checkout(c.Request.Context(), b, req.PaymentMethod, req.CashReceived)
		if err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusCreated, tx)
	}
}
