package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"buvette-pos/internal/config"
	"buvette-pos/internal/db"
	"buvette-pos/internal/httpserver"
	"buvette-pos/internal/maintenance"
	"buvette-pos/internal/migrate"
	"buvette-pos/internal/order"
	catalogrepo "buvette-pos/internal/repository/catalog"
	reportrepo "buvette-pos/internal/repository/report"
	salesrepo "buvette-pos/internal/repository/sales"
	"buvette-pos/internal/seed"
	catalogsvc "buvette-pos/internal/service/catalog"
	reportsvc "buvette-pos/internal/service/report"
	salessvc "buvette-pos/internal/service/sales"
)

func main() {
	cfg := config.FromEnv()
	logger := log.New(os.Stdout, "[api] ", log.LstdFlags|log.LUTC|log.Lshortfile)

	ctx := context.Background()

	var (
		pinger      db.Pinger
		catalogRepo catalogrepo.Repository
		salesRepo   salesrepo.Repository
		reportRepo  reportrepo.Repository
		reset       func(ctx context.Context) error
	)

	switch cfg.StorageDriver {
	case config.DriverPostgres:
		pool, err := db.Connect(ctx, cfg.DBConnString)
		if err != nil {
			logger.Fatalf("connect to db: %v", err)
		}
		defer pool.Close()

		pinger = pool
		catalogRepo = catalogrepo.NewPostgres(pool)
		salesRepo = salesrepo.NewPostgres(pool, logger)
		reportRepo = reportrepo.NewPostgres(pool)
		reset = func(ctx context.Context) error {
			return maintenance.ResetPostgres(ctx, pool, catalogRepo)
		}

	case config.DriverSQLite:
		sqlDB, err := db.OpenSQLite(ctx, cfg.SQLitePath)
		if err != nil {
			logger.Fatalf("open sqlite at %s: %v", cfg.SQLitePath, err)
		}
		defer sqlDB.Close()

		// The standalone register owns its file, so it prepares it on
		// boot: schema first, then the default booth catalog.
		if err := migrate.ApplySQLite(sqlDB); err != nil {
			logger.Fatalf("apply migrations: %v", err)
		}
		catalogRepo = catalogrepo.NewSQLite(sqlDB)
		if err := seed.Apply(ctx, catalogRepo); err != nil {
			logger.Fatalf("seed catalog: %v", err)
		}

		pinger = db.SQLPinger(sqlDB)
		salesRepo = salesrepo.NewSQLite(sqlDB, logger)
		reportRepo = reportrepo.NewSQLite(sqlDB)
		reset = func(ctx context.Context) error {
			return maintenance.ResetSQLite(ctx, sqlDB, catalogRepo)
		}

	default:
		logger.Fatalf("unknown storage driver %q", cfg.StorageDriver)
	}

	catalogService := catalogsvc.New(catalogRepo)
	salesService := salessvc.New(salesRepo, catalogService)
	reportService := reportsvc.New(reportRepo)

	srv, err := httpserver.New(cfg.HTTPAddr, logger, pinger, httpserver.Deps{
		CatalogSvc: catalogService,
		SalesSvc:   salesService,
		ReportSvc:  reportService,
		Register:   order.NewBuilder(),
		Reset:      reset,
	})
	if err != nil {
		logger.Fatalf("init server: %v", err)
	}

	serverErr := make(chan error, 1)
	go func() {
		logger.Printf("starting http server on %s (storage=%s)", cfg.HTTPAddr, cfg.StorageDriver)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	stopCh := make(chan os.Signal, 1)
	signal.Notify(stopCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-stopCh:
		logger.Printf("received signal %s, shutting down", sig)
	case err := <-serverErr:
		logger.Printf("server error: %v", err)
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Printf("graceful shutdown failed: %v", err)
	} else {
		logger.Printf("server stopped")
	}
}
