package main

import (
	"context"
	"log"
	"os"

	"buvette-pos/internal/config"
	"buvette-pos/internal/db"
	catalogrepo "buvette-pos/internal/repository/catalog"
	"buvette-pos/internal/seed"
)

func main() {
	cfg := config.FromEnv()
	logger := log.New(os.Stdout, "[seed] ", log.LstdFlags|log.LUTC|log.Lshortfile)

	ctx := context.Background()

	var repo catalogrepo.Repository
	switch cfg.StorageDriver {
	case config.DriverPostgres:
		pool, err := db.Connect(ctx, cfg.DBConnString)
		if err != nil {
			logger.Fatalf("connect db: %v", err)
		}
		defer pool.Close()
		repo = catalogrepo.NewPostgres(pool)

	case config.DriverSQLite:
		sqlDB, err := db.OpenSQLite(ctx, cfg.SQLitePath)
		if err != nil {
			logger.Fatalf("open sqlite at %s: %v", cfg.SQLitePath, err)
		}
		defer sqlDB.Close()
		repo = catalogrepo.NewSQLite(sqlDB)

	default:
		logger.Fatalf("unknown storage driver %q", cfg.StorageDriver)
	}

	if err := seed.Apply(ctx, repo); err != nil {
		logger.Fatalf("seed apply: %v", err)
	}

	logger.Println("seed applied")
}
