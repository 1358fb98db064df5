package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"pastelaria/config"
	"pastelaria/notify-svc/internal/service"
	"pastelaria/storage"
)

const dashboardCacheTTL = 30 * time.Second

func main() {
	cfg := config.Load("")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	reader := config.NewKafkaReader(cfg, "notify-svc-consumer")
	if reader == nil {
		log.Fatal("notify-svc needs KAFKA_BROKER")
	}
	defer reader.Close()

	client := config.MustInitRedis(cfg)
	defer client.Close()

	consumer := service.NewConsumer(
		reader,
		storage.NewRedisAlertFeed(client, cfg.AlertDedupeWindow),
		storage.NewRedisDashboardCache(client, dashboardCacheTTL),
		cfg.Location(),
	)
	consumer.Start(ctx)
}
