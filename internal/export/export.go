// Package export renders sales data as spreadsheet-friendly delimited
// text: semicolon separators, text fields always quoted with doubled
// quotes inside, money as fixed two-decimal strings. Each call writes
// one self-contained document including the header row.
package export

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"buvette-pos/internal/domain"
)

type field struct {
	value  string
	quoted bool
}

func text(v string) field {
	return field{value: v, quoted: true}
}

func money(c domain.Cents) field {
	return field{value: c.Decimal()}
}

func optMoney(c *domain.Cents) field {
	if c == nil {
		return field{}
	}
	return money(*c)
}

func number(n int64) field {
	return field{value: strconv.FormatInt(n, 10)}
}

// Transactions writes one row per transaction, oldest first as given,
// with the line items flattened into a single text column.
func Transactions(w io.Writer, txs []domain.Transaction) error {
	if err := writeRow(w,
		text("id"), text("created_at"), text("payment_method"),
		text("total"), text("cash_received"), text("change_given"), text("items"),
	); err != nil {
		return err
	}
	for _, tx := range txs {
		if err := writeRow(w,
			text(tx.ID),
			text(tx.CreatedAt.UTC().Format(time.RFC3339)),
			text(string(tx.PaymentMethod)),
			money(tx.TotalCents),
			optMoney(tx.CashReceived),
			optMoney(tx.ChangeGiven),
			text(flattenItems(tx.Items)),
		); err != nil {
			return err
		}
	}
	return nil
}

// ProductSummary writes one row per product aggregate.
func ProductSummary(w io.Writer, rows []domain.ProductSales) error {
	if err := writeRow(w,
		text("product_id"), text("product_name"), text("total_quantity"), text("total_revenue"),
	); err != nil {
		return err
	}
	for _, r := range rows {
		if err := writeRow(w,
			text(r.ProductID), text(r.ProductName), number(r.TotalQuantity), money(r.TotalRevenue),
		); err != nil {
			return err
		}
	}
	return nil
}

// PaymentSummary writes one row per payment method aggregate.
func PaymentSummary(w io.Writer, rows []domain.PaymentMethodSales) error {
	if err := writeRow(w,
		text("payment_method"), text("transaction_count"), text("total_revenue"),
	); err != nil {
		return err
	}
	for _, r := range rows {
		if err := writeRow(w,
			text(string(r.PaymentMethod)), number(r.TransactionCount), money(r.TotalRevenue),
		); err != nil {
			return err
		}
	}
	return nil
}

func flattenItems(items []domain.LineItem) string {
	parts := make([]string, 0, len(items))
	for _, it := range items {
		parts = append(parts, fmt.Sprintf("%d x %s", it.Quantity, it.ProductName))
	}
	return strings.Join(parts, ", ")
}

func writeRow(w io.Writer, fields ...field) error {
	var b strings.Builder
	for i, f := range fields {
		if i > 0 {
			b.WriteByte(';')
		}
		if f.quoted {
			b.WriteByte('"')
			b.WriteString(strings.ReplaceAll(f.value, `"`, `""`))
			b.WriteByte('"')
		} else {
			b.WriteString(f.value)
		}
	}
	b.WriteByte('\n')
	_, err := io.WriteString(w, b.String())
	return err
}
