package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"buvette-pos/internal/config"
	"buvette-pos/internal/db"
	"buvette-pos/internal/importer"
	catalogrepo "buvette-pos/internal/repository/catalog"
)

func main() {
	var filePath string
	flag.StringVar(&filePath, "file", "", "Path to a semicolon-separated price list")
	flag.Parse()

	if filePath == "" {
		flag.Usage()
		os.Exit(2)
	}

	cfg := config.FromEnv()
	ctx := context.Background()

	var repo catalogrepo.Repository
	switch cfg.StorageDriver {
	case config.DriverPostgres:
		pool, err := db.Connect(ctx, cfg.DBConnString)
		if err != nil {
			log.Fatalf("connect db: %v", err)
		}
		defer pool.Close()
		repo = catalogrepo.NewPostgres(pool)

	case config.DriverSQLite:
		sqlDB, err := db.OpenSQLite(ctx, cfg.SQLitePath)
		if err != nil {
			log.Fatalf("open sqlite at %s: %v", cfg.SQLitePath, err)
		}
		defer sqlDB.Close()
		repo = catalogrepo.NewSQLite(sqlDB)

	default:
		log.Fatalf("unknown storage driver %q", cfg.StorageDriver)
	}

	f, err := os.Open(filePath)
	if err != nil {
		log.Fatalf("open file: %v", err)
	}
	defer f.Close()

	imp := importer.NewCSVImporter(f, repo)

	start := time.Now()
	count, err := imp.Run(ctx)
	if err != nil {
		log.Fatalf("import failed: %v", err)
	}

	fmt.Printf("Imported %d products in %s\n", count, time.Since(start).Truncate(time.Millisecond))
}
