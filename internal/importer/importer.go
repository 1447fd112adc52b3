package importer

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"buvette-pos/internal/domain"
)

// CatalogWriter is the subset of the catalog repository the importer
// needs. Upserts keep re-imports idempotent.
type CatalogWriter interface {
	UpsertCategory(ctx context.Context, c domain.Category) error
	UpsertProduct(ctx context.Context, p domain.Product) error
}

// CSVImporter reads a semicolon-separated price list and loads it into
// the catalog. One row per product, carrying its category; repeated
// category columns are collapsed into a single upsert.
type CSVImporter struct {
	reader  *csv.Reader
	catalog CatalogWriter
}

func NewCSVImporter(r io.Reader, catalog CatalogWriter) *CSVImporter {
	csvr := csv.NewReader(r)
	csvr.Comma = ';'
	csvr.FieldsPerRecord = -1 // rows may omit trailing columns
	return &CSVImporter{reader: csvr, catalog: catalog}
}

type csvRow struct {
	ProductID     string
	ProductName   string
	PriceCents    int64
	Available     bool
	CategoryID    string
	CategoryLabel string
	CategoryColor string
}

// Run parses rows and upserts categories and products. It returns the
// number of products imported.
func (i *CSVImporter) Run(ctx context.Context) (int, error) {
	headers, err := i.reader.Read()
	if err != nil {
		return 0, fmt.Errorf("read headers: %w", err)
	}
	index := headerIndex(headers)

	seenCategories := make(map[string]bool)
	imported := 0

	for {
		record, err := i.reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return imported, fmt.Errorf("read row: %w", err)
		}

		row, err := parseRow(record, index)
		if err != nil {
			return imported, err
		}
		if row == nil {
			continue
		}

		if !seenCategories[row.CategoryID] {
			label := row.CategoryLabel
			if label == "" {
				label = row.CategoryID
			}
			if err := i.catalog.UpsertCategory(ctx, domain.Category{
				ID:    row.CategoryID,
				Label: label,
				Color: row.CategoryColor,
			}); err != nil {
				return imported, fmt.Errorf("upsert category %q: %w", row.CategoryID, err)
			}
			seenCategories[row.CategoryID] = true
		}

		if err := i.catalog.UpsertProduct(ctx, domain.Product{
			ID:         row.ProductID,
			Name:       row.ProductName,
			PriceCents: domain.Cents(row.PriceCents),
			CategoryID: row.CategoryID,
			Available:  row.Available,
		}); err != nil {
			return imported, fmt.Errorf("upsert product %q: %w", row.ProductID, err)
		}
		imported++
	}

	return imported, nil
}

func parseRow(record []string, index map[string]int) (*csvRow, error) {
	id := pick(record, index, "product_id")
	name := pick(record, index, "product_name")
	priceStr := pick(record, index, "price_cents")
	availableStr := pick(record, index, "available")
	categoryID := pick(record, index, "category_id")

	if id == "" && name == "" && categoryID == "" {
		return nil, nil
	}
	if id == "" || name == "" || categoryID == "" {
		return nil, fmt.Errorf("invalid row (product_id, product_name and category_id are required): %v", record)
	}

	price, err := strconv.ParseInt(priceStr, 10, 64)
	if err != nil || price < 0 {
		return nil, fmt.Errorf("invalid price %q for product %q", priceStr, id)
	}

	available := true
	if availableStr != "" {
		available, err = strconv.ParseBool(availableStr)
		if err != nil {
			return nil, fmt.Errorf("invalid available flag %q for product %q", availableStr, id)
		}
	}

	return &csvRow{
		ProductID:     id,
		ProductName:   name,
		PriceCents:    price,
		Available:     available,
		CategoryID:    categoryID,
		CategoryLabel: pick(record, index, "category_label"),
		CategoryColor: pick(record, index, "category_color"),
	}, nil
}

func headerIndex(headers []string) map[string]int {
	idx := make(map[string]int, len(headers))
	for i, h := range headers {
		idx[strings.TrimSpace(h)] = i
	}
	return idx
}

func pick(record []string, index map[string]int, key string) string {
	pos, ok := index[key]
	if !ok || pos >= len(record) {
		return ""
	}
	return strings.TrimSpace(record[pos])
}
