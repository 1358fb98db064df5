package service

import (
	"context"
	"log"
	"time"

	"pastelaria/domain"
)

const watchBatch = 50

// Watcher polls pending orders and raises an alert for each one created since
// the previous poll. The first poll only records where to start from.
type Watcher struct {
	orders    OrderRepository
	feed      AlertFeed
	dashboard DashboardServiceInterface
	interval  time.Duration
	lastSeen  time.Time
	started   bool
	stopCh    chan struct{}
}

func NewWatcher(orders OrderRepository, feed AlertFeed, dashboard DashboardServiceInterface, interval time.Duration) *Watcher {
	if interval <= 0 {
		interval = 30 * time.Second
	}
	return &Watcher{
		orders:    orders,
		feed:      feed,
		dashboard: dashboard,
		interval:  interval,
		stopCh:    make(chan struct{}),
	}
}

func (w *Watcher) Start(ctx context.Context) {
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	log.Printf("[admin-svc] order watcher started, polling every %s", w.interval)
	w.poll(ctx)

	for {
		select {
		case <-ctx.Done():
			log.Printf("[admin-svc] order watcher shutting down")
			return
		case <-w.stopCh:
			log.Printf("[admin-svc] order watcher stopped")
			return
		case <-ticker.C:
			w.poll(ctx)
		}
	}
}

func (w *Watcher) Stop() {
	close(w.stopCh)
}

func (w *Watcher) poll(ctx context.Context) {
	if _, err := w.Poll(ctx); err != nil {
		log.Printf("[admin-svc] WARNING: order poll failed: %v", err)
	}
}

// Poll runs one check and returns how many new orders were alerted.
func (w *Watcher) Poll(ctx context.Context) (int, error) {
	pending, err := w.orders.GetOrders(ctx, watchBatch, 0, domain.StatusPending)
	if err != nil {
		return 0, err
	}

	newest := w.lastSeen
	for _, order := range pending {
		if order.CreatedAt.After(newest) {
			newest = order.CreatedAt
		}
	}

	if !w.started {
		w.started = true
		w.lastSeen = newest
		return 0, nil
	}

	alerted := 0
	for _, order := range pending {
		if !order.CreatedAt.After(w.lastSeen) {
			continue
		}
		pushed, err := w.feed.Push(ctx, domain.NewOrderAlert(order.ID, order.CustomerName, order.TotalAmount, order.CreatedAt))
		if err != nil {
			log.Printf("[admin-svc] WARNING: failed to queue alert for order %d: %v", order.ID, err)
			continue
		}
		if pushed {
			alerted++
		}
	}
	w.lastSeen = newest

	if alerted > 0 && w.dashboard != nil {
		w.dashboard.Invalidate(ctx)
	}
	return alerted, nil
}
