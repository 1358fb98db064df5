package service

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"pastelaria/domain"
)

// Consumer turns order events into back-office alerts and drops the cached
// dashboard for the day the event happened.
type Consumer struct {
	Reader MessageReader
	Feed   AlertFeed
	Cache  DashboardCache
	loc    *time.Location
}

func NewConsumer(reader MessageReader, feed AlertFeed, cache DashboardCache, loc *time.Location) *Consumer {
	if loc == nil {
		loc = time.Local
	}
	return &Consumer{
		Reader: reader,
		Feed:   feed,
		Cache:  cache,
		loc:    loc,
	}
}

func (c *Consumer) Start(ctx context.Context) {
	log.Println("[notify-svc] starting order events consumer...")
	for {
		message, err := c.Reader.ReadMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				log.Println("[notify-svc] consumer stopped")
				return
			}
			log.Printf("[notify-svc] WARNING: error reading message: %v", err)
			continue
		}

		var event domain.OrderEvent
		if err := json.Unmarshal(message.Value, &event); err != nil {
			log.Printf("[notify-svc] WARNING: error unmarshaling message at offset %d: %v", message.Offset, err)
			continue
		}

		c.ProcessEvent(ctx, event)
	}
}

func (c *Consumer) ProcessEvent(ctx context.Context, event domain.OrderEvent) {
	switch event.Type {
	case domain.EventOrderCreated:
		alert := domain.NewOrderAlert(event.OrderID, event.CustomerName, event.TotalAmount, event.Timestamp)
		pushed, err := c.Feed.Push(ctx, alert)
		if err != nil {
			log.Printf("[notify-svc] WARNING: failed to queue alert for order %d: %v", event.OrderID, err)
		} else if pushed {
			log.Printf("[notify-svc] alert queued for order %d", event.OrderID)
		}
	case domain.EventOrderStatusChanged:
		log.Printf("[notify-svc] order %d: %s -> %s", event.OrderID, event.PreviousStatus, event.Status)
	default:
		return
	}

	c.invalidate(ctx, event.Timestamp)
}

func (c *Consumer) invalidate(ctx context.Context, at time.Time) {
	if c.Cache == nil {
		return
	}
	if at.IsZero() {
		at = time.Now()
	}
	day := at.In(c.loc).Format("2006-01-02")
	if err := c.Cache.Invalidate(ctx, day); err != nil {
		log.Printf("[notify-svc] WARNING: dashboard cache invalidation failed: %v", err)
	}
}
