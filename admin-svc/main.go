package main

import (
	"context"
	"database/sql"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	httpapi "pastelaria/admin-svc/internal/api/http"
	"pastelaria/admin-svc/internal/service"
	"pastelaria/catalog"
	"pastelaria/config"
	"pastelaria/storage"

	"golang.org/x/sync/errgroup"
)

const dashboardCacheTTL = 30 * time.Second

// prepareStorage owns the schema: migrations, default settings and the one-off
// import of a leftover local data file.
func prepareStorage(ctx context.Context, cfg config.Config, db *sql.DB, store storage.Adapter) error {
	if db != nil {
		if err := storage.Migrate(db); err != nil {
			return err
		}
	}

	if err := store.EnsureDefaultSettings(ctx); err != nil {
		return err
	}

	if cfg.StorageMode != config.StorageModePostgres || !storage.Exists(cfg.LocalDataFile) {
		return nil
	}

	kv, err := storage.OpenFileKV(cfg.LocalDataFile)
	if err != nil {
		log.Printf("[admin-svc] WARNING: local data file unreadable, skipping import: %v", err)
		return nil
	}
	report, err := storage.MigrateFromLocal(ctx, storage.NewLocalRepository(kv), store)
	if err != nil {
		log.Printf("[admin-svc] WARNING: local data import failed: %v", err)
		return nil
	}
	if !report.AlreadyDone {
		log.Printf("[admin-svc] imported local data: %d items, %d skipped, %d settings",
			report.ItemsInserted, report.ItemsSkipped, report.SettingsSaved)
	}
	return nil
}

type backOffice struct {
	router  http.Handler
	watcher *service.Watcher
}

func buildBackOffice(
	cfg config.Config,
	store storage.Adapter,
	cache service.DashboardCache,
	feed service.AlertFeed,
	publisher service.OrderPublisher,
	notifier service.Notifier,
) backOffice {
	dashboard := service.NewDashboardService(store, cache, cfg.Location())

	handler := httpapi.NewHandler(
		service.NewMenuService(catalog.New(store)),
		service.NewSettingsService(store),
		service.NewOrderService(store, store, publisher, notifier, dashboard),
		dashboard,
		service.NewAlertService(feed),
	)

	return backOffice{
		router:  httpapi.NewRouter(handler),
		watcher: service.NewWatcher(store, feed, dashboard, cfg.PollInterval),
	}
}

func main() {
	cfg := config.Load(":8082")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	tracing := config.MustInitTracing(cfg, "admin-svc")

	var db *sql.DB
	if cfg.StorageMode == config.StorageModePostgres {
		db = config.MustInitPostgres(cfg)
		defer db.Close()
	}

	store, err := storage.NewAdapter(cfg, db)
	if err != nil {
		log.Fatal("Failed to open storage:", err)
	}
	if err := prepareStorage(ctx, cfg, db, store); err != nil {
		log.Fatal("Failed to prepare storage:", err)
	}

	var (
		cache service.DashboardCache
		feed  service.AlertFeed
	)
	if cfg.StorageMode == config.StorageModePostgres {
		client := config.MustInitRedis(cfg)
		defer client.Close()
		cache = storage.NewRedisDashboardCache(client, dashboardCacheTTL)
		feed = storage.NewRedisAlertFeed(client, cfg.AlertDedupeWindow)
	} else {
		feed = storage.NewMemoryAlertFeed(cfg.AlertDedupeWindow)
	}

	var notifier service.Notifier = storage.LogNotifier{}
	if cfg.AMQPURL != "" {
		rabbit, err := storage.DialRabbitNotifier(cfg.AMQPURL)
		if err != nil {
			log.Printf("[admin-svc] WARNING: RabbitMQ unavailable, notifications only logged: %v", err)
		} else {
			defer rabbit.Close()
			notifier = rabbit
		}
	}

	var publisher service.OrderPublisher
	if writer := config.NewKafkaWriter(cfg); writer != nil {
		defer writer.Close()
		publisher = storage.NewKafkaPublisher(writer)
	} else {
		log.Printf("[admin-svc] WARNING: no Kafka broker configured, order events disabled")
	}

	app := buildBackOffice(cfg, store, cache, feed, publisher, notifier)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return httpapi.StartServer(gctx, cfg.HTTPAddr, app.router)
	})
	g.Go(func() error {
		app.watcher.Start(gctx)
		return nil
	})

	if err := g.Wait(); err != nil && err != http.ErrServerClosed {
		log.Printf("[admin-svc] stopped with error: %v", err)
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := tracing.Shutdown(shutdownCtx); err != nil {
		log.Printf("[admin-svc] WARNING: tracing shutdown: %v", err)
	}
}
