package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"time"

	"buvette-pos/internal/config"
	"buvette-pos/internal/db"
	"buvette-pos/internal/domain"
	"buvette-pos/internal/export"
	reportrepo "buvette-pos/internal/repository/report"
	salesrepo "buvette-pos/internal/repository/sales"
)

func main() {
	var (
		doc     string
		outPath string
	)
	flag.StringVar(&doc, "doc", "orders", "Document to export: orders, products or payments")
	flag.StringVar(&outPath, "out", "", "Output file (default stdout)")
	flag.Parse()

	cfg := config.FromEnv()
	ctx := context.Background()

	var (
		salesRepo  salesrepo.Repository
		reportRepo reportrepo.Repository
	)
	switch cfg.StorageDriver {
	case config.DriverPostgres:
		pool, err := db.Connect(ctx, cfg.DBConnString)
		if err != nil {
			log.Fatalf("connect db: %v", err)
		}
		defer pool.Close()
		salesRepo = salesrepo.NewPostgres(pool, nil)
		reportRepo = reportrepo.NewPostgres(pool)

	case config.DriverSQLite:
		sqlDB, err := db.OpenSQLite(ctx, cfg.SQLitePath)
		if err != nil {
			log.Fatalf("open sqlite at %s: %v", cfg.SQLitePath, err)
		}
		defer sqlDB.Close()
		salesRepo = salesrepo.NewSQLite(sqlDB, nil)
		reportRepo = reportrepo.NewSQLite(sqlDB)

	default:
		log.Fatalf("unknown storage driver %q", cfg.StorageDriver)
	}

	out := io.Writer(os.Stdout)
	if outPath != "" {
		f, err := os.Create(outPath)
		if err != nil {
			log.Fatalf("create %s: %v", outPath, err)
		}
		defer f.Close()
		out = f
	}

	start := time.Now()
	var (
		rows int
		err  error
	)
	switch doc {
	case "orders":
		var txs []domain.Transaction
		if txs, err = salesRepo.List(ctx); err == nil {
			rows = len(txs)
			err = export.Transactions(out, txs)
		}
	case "products":
		var per []domain.ProductSales
		if per, err = reportRepo.PerProduct(ctx); err == nil {
			rows = len(per)
			err = export.ProductSummary(out, per)
		}
	case "payments":
		var per []domain.PaymentMethodSales
		if per, err = reportRepo.PerPaymentMethod(ctx); err == nil {
			rows = len(per)
			err = export.PaymentSummary(out, per)
		}
	default:
		log.Fatalf("unknown document %q", doc)
	}
	if err != nil {
		log.Fatalf("export failed: %v", err)
	}

	if outPath != "" {
		fmt.Printf("Exported %d rows to %s in %s\n", rows, outPath, time.Since(start).Truncate(time.Millisecond))
	}
}
