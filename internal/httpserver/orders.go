package httpserver

import (
	"context"
	"net/http"

	salessvc "buvette-pos/internal/service/sales"

	"github.com/gin-gonic/gin"
)

func commitOrderHandler(svc SalesService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var in salessvc.CommitInput
		if err := c.ShouldBindJSON(&in); err != nil {
			writeBindError(c)
			return
		}
		tx, err := svc.Commit(c.Request.Context(), in)
		if err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusCreated, tx)
	}
}

func listOrdersHandler(svc SalesService) gin.HandlerFunc {
	return func(c *gin.Context) {
		txs, err := svc.List(c.Request.Context())
		if err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusOK, txs)
	}
}

func summaryHandler(svc ReportService) gin.HandlerFunc {
	return func(c *gin.Context) {
		summary, err := svc.Summary(c.Request.Context())
		if err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusOK, summary)
	}
}

func resetHandler(reset func(ctx context.Context) error) gin.HandlerFunc {
	return func(c *gin.Context) {
		if reset == nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"error": "reset not configured", "code": "storage"})
			return
		}
		if err := reset(c.Request.Context()); err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "reset"})
	}
}
