package main

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"pastelaria/catalog"
	"pastelaria/config"
	"pastelaria/messaging"
	"pastelaria/storage"
	httpapi "pastelaria/storefront-svc/internal/api/http"
	"pastelaria/storefront-svc/internal/service"

	"golang.org/x/sync/errgroup"
)

// newSessionStore keeps carts in Redis in postgres mode. In local mode carts
// live in the data file, through the same handle the repository writes orders to.
func newSessionStore(cfg config.Config, store storage.Adapter) (service.SessionStore, func(), error) {
	if cfg.StorageMode == config.StorageModeLocal {
		local, ok := store.(*storage.LocalRepository)
		if !ok {
			return nil, nil, fmt.Errorf("local mode needs a local repository, got %T", store)
		}
		return storage.NewLocalSessionStore(local.KV), func() {}, nil
	}

	client := config.MustInitRedis(cfg)
	return storage.NewRedisSessionStore(client, cfg.CartTTL), func() { client.Close() }, nil
}

func buildRouter(cfg config.Config, store storage.Adapter, sessions service.SessionStore, publisher service.OrderPublisher) http.Handler {
	menu := catalog.New(store)

	handler := httpapi.NewHandler(
		service.NewMenuService(menu, store),
		service.NewCartService(sessions, menu),
		service.NewCheckoutService(sessions, store, store, publisher, messaging.DefaultQRGenerator{}, cfg.CheckoutMode),
	)
	return httpapi.NewRouter(handler)
}

func main() {
	cfg := config.Load(":8081")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	tracing := config.MustInitTracing(cfg, "storefront-svc")

	var db *sql.DB
	if cfg.StorageMode == config.StorageModePostgres {
		db = config.MustInitPostgres(cfg)
		defer db.Close()
	}

	store, err := storage.NewAdapter(cfg, db)
	if err != nil {
		log.Fatal("Failed to open storage:", err)
	}

	sessions, closeSessions, err := newSessionStore(cfg, store)
	if err != nil {
		log.Fatal("Failed to open session store:", err)
	}
	defer closeSessions()

	var publisher service.OrderPublisher
	if writer := config.NewKafkaWriter(cfg); writer != nil {
		defer writer.Close()
		publisher = storage.NewKafkaPublisher(writer)
	} else {
		log.Printf("[storefront-svc] WARNING: no Kafka broker configured, order events disabled")
	}

	router := buildRouter(cfg, store, sessions, publisher)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return httpapi.StartServer(gctx, cfg.HTTPAddr, router)
	})

	if err := g.Wait(); err != nil && err != http.ErrServerClosed {
		log.Printf("[storefront-svc] stopped with error: %v", err)
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := tracing.Shutdown(shutdownCtx); err != nil {
		log.Printf("[storefront-svc] WARNING: tracing shutdown: %v", err)
	}
}
