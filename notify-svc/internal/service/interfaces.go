package service

import (
	"context"

	"pastelaria/domain"
	"pastelaria/storage"

	"github.com/segmentio/kafka-go"
)

type MessageReader interface {
	ReadMessage(ctx context.Context) (kafka.Message, error)
}

type AlertFeed interface {
	Push(ctx context.Context, alert domain.Alert) (bool, error)
}

type DashboardCache interface {
	Invalidate(ctx context.Context, day string) error
}

type ConsumerInterface interface {
	Start(ctx context.Context)
	ProcessEvent(ctx context.Context, event domain.OrderEvent)
}

var (
	_ MessageReader     = (*kafka.Reader)(nil)
	_ AlertFeed         = (*storage.RedisAlertFeed)(nil)
	_ DashboardCache    = (*storage.RedisDashboardCache)(nil)
	_ ConsumerInterface = (*Consumer)(nil)
)
