package main

import (
	"context"
	"errors"
	"flag"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/maxviazov/product-pagination-service/internal/catalog"
	"github.com/maxviazov/product-pagination-service/internal/config"
	"github.com/maxviazov/product-pagination-service/internal/handler"
	"github.com/maxviazov/product-pagination-service/internal/logger"
	"github.com/maxviazov/product-pagination-service/internal/pagination"
	"github.com/maxviazov/product-pagination-service/internal/service"
)

func main() {
	configPath := flag.String("config", "config.yaml", "path to YAML config; empty uses defaults and APP_* env")
	flag.Parse()

	// Load application config
	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("❌ Config loading failed: %v", err)
	}

	// Initialize logger
	appLogger, err := logger.New(&cfg.Logger)
	if err != nil {
		log.Fatalf("❌ Logger initialization failed: %v", err)
	}

	// Build the catalog once; it is shared read-only for the process lifetime
	products, err := catalog.New(catalog.Generate(cfg.Catalog))
	if err != nil {
		appLogger.Fatal().Err(err).Msg("❌ Catalog construction failed")
	}
	appLogger.Info().Int("products", products.Len()).Msg("✅ Catalog built")

	productSvc := service.NewProductService(
		pagination.NewOffsetPaginator(products),
		pagination.NewCursorPaginator(products),
		cfg.Pagination,
		appLogger,
	)

	if cfg.App.Env == "prod" || cfg.App.Env == "staging" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.Use(gin.Recovery(), handler.RequestLogger(appLogger))
	handler.Register(r, products, productSvc)

	srv := &http.Server{
		Addr:         cfg.App.Address(),
		Handler:      r,
		ReadTimeout:  cfg.App.ReadTimeout,
		WriteTimeout: cfg.App.WriteTimeout,
		IdleTimeout:  cfg.App.IdleTimeout,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		appLogger.Info().Str("addr", srv.Addr).Msg("🚀 Service started")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			appLogger.Error().Err(err).Msg("http server failed")
			stop()
		}
	}()

	<-ctx.Done()
	appLogger.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.App.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		appLogger.Error().Err(err).Msg("graceful shutdown failed")
		return
	}
	appLogger.Info().Msg("server stopped")
}
