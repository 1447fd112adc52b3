package httpserver

import (
	"bytes"
	"fmt"
	"net/http"

	"buvette-pos/internal/export"

	"github.com/gin-gonic/gin"
)

const csvContentType = "text/csv; charset=utf-8"

// sendCSV buffers the whole document before writing so a failed export
// still gets a proper error response instead of a truncated download.
func sendCSV(c *gin.Context, filename string, buf *bytes.Buffer) {
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, csvContentType, buf.Bytes())
}

func exportOrdersHandler(svc SalesService) gin.HandlerFunc {
	return func(c *gin.Context) {
		txs, err := svc.List(c.Request.Context())
		if err != nil {
			writeError(c, err)
			return
		}
		var buf bytes.Buffer
		if err := export.Transactions(&buf, txs); err != nil {
			writeError(c, err)
			return
		}
		sendCSV(c, "orders.csv", &buf)
	}
}

func exportProductsHandler(svc ReportService) gin.HandlerFunc {
	return func(c *gin.Context) {
		rows, err := svc.PerProduct(c.Request.Context())
		if err != nil {
			writeError(c, err)
			return
		}
		var buf bytes.Buffer
		if err := export.ProductSummary(&buf, rows); err != nil {
			writeError(c, err)
			return
		}
		sendCSV(c, "products.csv", &buf)
	}
}

func exportPaymentsHandler(svc ReportService) gin.HandlerFunc {
	return func(c *gin.Context) {
		rows, err := svc.PerPaymentMethod(c.Request.Context())
		if err != nil {
			writeError(c, err)
			return
		}
		var buf bytes.Buffer
		if err := export.PaymentSummary(&buf, rows); err != nil {
			writeError(c, err)
			return
		}
		sendCSV(c, "payments.csv", &buf)
	}
}
