package main

import (
	"context"
	"database/sql"
	"log"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	_ "github.com/go-sql-driver/mysql"
	"github.com/redis/go-redis/v9"
	"github.com/rs/cors"

	"github.com/rl1809/storefront/internal/adapter/handler"
	"github.com/rl1809/storefront/internal/adapter/storage"
	"github.com/rl1809/storefront/internal/config"
	"github.com/rl1809/storefront/internal/core/service"
	"github.com/rl1809/storefront/internal/port"
	"github.com/rl1809/storefront/internal/seed"
)

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	cfg := config.Load()

	// Initialize Redis (session store)
	rdb := redis.NewClient(&redis.Options{
		Addr: cfg.RedisAddr,
	})
	if err := rdb.Ping(ctx).Err(); err != nil {
		log.Fatalf("failed to connect redis: %v", err)
	}
	log.Println("connected to redis")
	sessions := storage.NewRedisAdapter(rdb)

	// Initialize MySQL mirror when configured
	var db *sql.DB
	var mirror port.MirrorRepository
	if cfg.MySQLDSN != "" {
		var err error
		db, err = sql.Open("mysql", cfg.MySQLDSN)
		if err != nil {
			log.Fatalf("failed to open mysql: %v", err)
		}
		db.SetMaxOpenConns(25)
		db.SetMaxIdleConns(10)
		db.SetConnMaxLifetime(5 * time.Minute)

		if err := db.PingContext(ctx); err != nil {
			log.Fatalf("failed to ping mysql: %v", err)
		}
		log.Println("connected to mysql, mirror enabled")
		mirror = storage.NewMySQLAdapter(db)
	} else {
		log.Println("MYSQL_DSN not set, mirror disabled")
	}

	// Initialize stores from seed fixtures
	catalog := service.NewCatalogService(seed.Products(), seed.Users(), seed.Orders(), cfg.QueueSize)
	carts := service.NewCartService()
	checkout := service.NewCheckoutService(carts, catalog, sessions)

	// Start mirror workers draining the catalog change queue
	var wg sync.WaitGroup
	if mirror != nil {
		for i := 0; i < cfg.WorkerCount; i++ {
			wg.Add(1)
			go func(id int) {
				defer wg.Done()
				mirrorLoop(id, catalog.Events(), mirror)
			}(i)
		}
		log.Printf("started %d mirror workers", cfg.WorkerCount)
	} else {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for range catalog.Events() {
			}
		}()
	}

	// Initialize HTTP server
	auth := handler.NewAuth(cfg.JWTSecret)
	authHandler := handler.NewAuthHandler(catalog, sessions, cfg.JWTSecret, cfg.SessionTTL)
	catalogHandler := handler.NewCatalogHandler(catalog, cfg.PriceCeiling)
	cartHandler := handler.NewCartHandler(carts, catalog, checkout)
	adminHandler := handler.NewAdminHandler(catalog, cfg.UploadDir)

	router := handler.NewRouter(auth, authHandler, catalogHandler, cartHandler, adminHandler)

	corsHandler := cors.New(cors.Options{
		AllowedOrigins:   cfg.CORSOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE"},
		AllowedHeaders:   []string{"Authorization", "Content-Type", "X-Cart-ID"},
		AllowCredentials: true,
	})

	httpServer := &http.Server{
		Addr:    cfg.HTTPAddr,
		Handler: corsHandler.Handler(router),
	}

	go func() {
		log.Printf("HTTP server listening on %s", cfg.HTTPAddr)
		if err := httpServer.ListenAndServe(); err != http.ErrServerClosed {
			log.Printf("HTTP server error: %v", err)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("shutting down...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()
	httpServer.Shutdown(shutdownCtx)
	log.Println("HTTP server stopped")

	// Close change queue and wait for mirror workers
	catalog.Close()
	wg.Wait()
	log.Println("mirror workers stopped")

	rdb.Close()
	if db != nil {
		db.Close()
	}
	log.Println("connections closed")
}

// mirrorLoop applies catalog change events to the relational mirror.
// Failures are logged and dropped; the in-memory store already holds
// the authoritative state.
func mirrorLoop(id int, events <-chan service.MirrorEvent, mirror port.MirrorRepository) {
	for ev := range events {
		ctx, cancelEv := context.WithTimeout(context.Background(), 5*time.Second)

		var err error
		switch ev.Kind {
		case service.MirrorProductUpserted:
			err = mirror.UpsertProduct(ctx, ev.Product)
		case service.MirrorProductDeleted:
			err = mirror.DeleteProduct(ctx, ev.ProductID)
		case service.MirrorOrderSaved:
			err = mirror.SaveOrder(ctx, ev.Order)
		}

		if err != nil {
			log.Printf("worker %d: mirror write failed: %v", id, err)
		}

		cancelEv()
	}
}
