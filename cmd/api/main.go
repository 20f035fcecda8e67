// cmd/api/main.go
package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"github.com/jinstore/admin-backend/internal/config"
	"github.com/jinstore/admin-backend/internal/domain/cart"
	"github.com/jinstore/admin-backend/internal/domain/checkout"
	"github.com/jinstore/admin-backend/internal/domain/order"
	"github.com/jinstore/admin-backend/internal/domain/product"
	"github.com/jinstore/admin-backend/internal/domain/selection"
	"github.com/jinstore/admin-backend/internal/infrastructure/storage"
	"github.com/jinstore/admin-backend/internal/infrastructure/storage/memory"
	"github.com/jinstore/admin-backend/internal/infrastructure/storage/redis"
	httpserver "github.com/jinstore/admin-backend/internal/interfaces/http"
	"github.com/jinstore/admin-backend/internal/interfaces/http/middleware"
	"github.com/jinstore/admin-backend/internal/interfaces/http/routes"
	"github.com/jinstore/admin-backend/internal/pkg/i18n"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logger := middleware.NewLogger(cfg)
	logger.Infof("🚀 Starting %s v%s in %s mode", cfg.App.Name, cfg.App.Version, cfg.App.Environment)

	// Connect the snapshot backend
	var snapshots storage.Snapshot
	var redisClient *goredis.Client

	switch cfg.Storage.Backend {
	case "redis":
		conn, err := redis.NewConnection(cfg)
		if err != nil {
			log.Fatalf("Failed to connect to Redis: %v", err)
		}
		defer conn.Close()

		if err := conn.Health(); err != nil {
			log.Fatalf("Redis health check failed: %v", err)
		}

		redisClient = conn.GetClient()
		snapshots = redis.NewSnapshotStore(redisClient)
	default:
		logger.Warn("Using in-memory snapshot storage; nothing survives a restart")
		snapshots = memory.NewStore()
	}

	// Build the stores. Each store exclusively owns its collection and is
	// handed to consumers by reference; orders are session-only and
	// always start from the seed.
	ctx := context.Background()
	orderStore := order.NewStore()
	productStore := product.NewStore(ctx, snapshots, cfg.Storage.ProductsKey, logger)
	cartStore := cart.NewStore(ctx, snapshots, cfg.Storage.CartKey, logger)

	deps := routes.Dependencies{
		Translator: i18n.NewTranslator(cfg.App.DefaultLanguage),
		Orders:     orderStore,
		Products:   productStore,
		Cart:       cartStore,
		Checkout:   checkout.NewService(cartStore),
		Selections: selection.NewManager(),
	}

	logger.WithField("orders", orderStore.Count()).
		WithField("products", productStore.Count()).
		Info("✅ Stores initialized")

	// Create and start HTTP server
	server := httpserver.NewServer(cfg, logger, redisClient, deps)

	// Start server in a goroutine
	go func() {
		if err := server.Start(); err != nil {
			log.Fatalf("Failed to start HTTP server: %v", err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	logger.Info("👋 Shutting down gracefully...")

	// Give server 30 seconds to shutdown gracefully
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Stop(shutdownCtx); err != nil {
		logger.Errorf("Failed to shutdown HTTP server gracefully: %v", err)
	}

	logger.Info("✅ Server shutdown completed")
}
