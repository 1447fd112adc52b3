package main

import (
	"context"
	"log"
	"os"

	"buvette-pos/internal/config"
	"buvette-pos/internal/db"
	"buvette-pos/internal/migrate"
)

func main() {
	cfg := config.FromEnv()
	logger := log.New(os.Stdout, "[migrate] ", log.LstdFlags|log.LUTC|log.Lshortfile)

	ctx := context.Background()

	switch cfg.StorageDriver {
	case config.DriverPostgres:
		pool, err := db.Connect(ctx, cfg.DBConnString)
		if err != nil {
			logger.Fatalf("connect db: %v", err)
		}
		defer pool.Close()

		if err := migrate.Apply(ctx, pool); err != nil {
			logger.Fatalf("apply migrations: %v", err)
		}

	case config.DriverSQLite:
		sqlDB, err := db.OpenSQLite(ctx, cfg.SQLitePath)
		if err != nil {
			logger.Fatalf("open sqlite at %s: %v", cfg.SQLitePath, err)
		}
		defer sqlDB.Close()

		if err := migrate.ApplySQLite(sqlDB); err != nil {
			logger.Fatalf("apply migrations: %v", err)
		}

	default:
		logger.Fatalf("unknown storage driver %q", cfg.StorageDriver)
	}

	logger.Println("migrations applied")
}
