package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"strconv"
	"time"

	"pastelaria/domain"

	"github.com/redis/go-redis/v9"
)

// RedisSessionStore keeps carts and customer prefill per session.
type RedisSessionStore struct {
	Client *redis.Client
	TTL    time.Duration
}

func NewRedisSessionStore(client *redis.Client, ttl time.Duration) *RedisSessionStore {
	return &RedisSessionStore{Client: client, TTL: ttl}
}

func (s *RedisSessionStore) CartKey(session string) string {
	return KeyCartPrefix + session
}

func (s *RedisSessionStore) CustomerKey(session string) string {
	return KeyCustomerPrefix + session
}

func (s *RedisSessionStore) load(ctx context.Context, key string, dest interface{}) (bool, error) {
	raw, err := s.Client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	if err := json.Unmarshal(raw, dest); err != nil {
		return false, fmt.Errorf("decode %s: %w", key, err)
	}
	return true, nil
}

func (s *RedisSessionStore) save(ctx context.Context, key string, value interface{}) error {
	payload, err := json.Marshal(value)
	if err != nil {
		return err
	}
	return s.Client.Set(ctx, key, payload, s.TTL).Err()
}

func (s *RedisSessionStore) LoadCart(ctx context.Context, session string) (domain.Cart, error) {
	cart := domain.Cart{Lines: []domain.CartLine{}}
	if _, err := s.load(ctx, s.CartKey(session), &cart.Lines); err != nil {
		return domain.Cart{Lines: []domain.CartLine{}}, err
	}
	return cart, nil
}

func (s *RedisSessionStore) SaveCart(ctx context.Context, session string, cart domain.Cart) error {
	if cart.Lines == nil {
		cart.Lines = []domain.CartLine{}
	}
	return s.save(ctx, s.CartKey(session), cart.Lines)
}

func (s *RedisSessionStore) LoadCustomer(ctx context.Context, session string) (*domain.Customer, error) {
	var customer domain.Customer
	found, err := s.load(ctx, s.CustomerKey(session), &customer)
	if err != nil || !found {
		return nil, err
	}
	return &customer, nil
}

func (s *RedisSessionStore) SaveCustomer(ctx context.Context, session string, customer domain.Customer) error {
	return s.save(ctx, s.CustomerKey(session), customer)
}

const (
	alertsKey       = "alerts:admin"
	alertMarkerBase = "alert:order:"
	maxAlerts       = 50
)

// RedisAlertFeed queues new-order alerts for the back-office. The same order is
// not queued twice inside Window.
type RedisAlertFeed struct {
	Client *redis.Client
	Window time.Duration
}

func NewRedisAlertFeed(client *redis.Client, window time.Duration) *RedisAlertFeed {
	return &RedisAlertFeed{Client: client, Window: window}
}

func (f *RedisAlertFeed) Push(ctx context.Context, alert domain.Alert) (bool, error) {
	payload, err := json.Marshal(alert)
	if err != nil {
		return false, err
	}

	marker := alertMarkerBase + strconv.FormatInt(alert.OrderID, 10)
	fresh, err := f.Client.SetNX(ctx, marker, "1", f.Window).Result()
	if err != nil {
		return false, err
	}
	if !fresh {
		return false, nil
	}

	_, err = f.Client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.LPush(ctx, alertsKey, payload)
		pipe.LTrim(ctx, alertsKey, 0, maxAlerts-1)
		return nil
	})
	if err != nil {
		// let the next poll retry this order
		if delErr := f.Client.Del(ctx, marker).Err(); delErr != nil {
			log.Printf("[storage] WARNING: failed to release alert marker %s: %v", marker, delErr)
		}
		return false, err
	}
	return true, nil
}

// Drain returns queued alerts, newest first, and empties the queue.
func (f *RedisAlertFeed) Drain(ctx context.Context) ([]domain.Alert, error) {
	var rangeCmd *redis.StringSliceCmd
	_, err := f.Client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		rangeCmd = pipe.LRange(ctx, alertsKey, 0, -1)
		pipe.Del(ctx, alertsKey)
		return nil
	})
	if err != nil {
		return nil, err
	}

	alerts := []domain.Alert{}
	for _, raw := range rangeCmd.Val() {
		var alert domain.Alert
		if err := json.Unmarshal([]byte(raw), &alert); err != nil {
			continue
		}
		alerts = append(alerts, alert)
	}
	return alerts, nil
}

// RedisDashboardCache mirrors the day's dashboard in a short-lived hash.
type RedisDashboardCache struct {
	Client *redis.Client
	TTL    time.Duration
}

func NewRedisDashboardCache(client *redis.Client, ttl time.Duration) *RedisDashboardCache {
	return &RedisDashboardCache{Client: client, TTL: ttl}
}

func (c *RedisDashboardCache) DayKey(day string) string {
	return "dashboard:" + day
}

func (c *RedisDashboardCache) Get(ctx context.Context, day string) (*domain.DashboardStats, error) {
	fields, err := c.Client.HGetAll(ctx, c.DayKey(day)).Result()
	if err != nil || len(fields) == 0 {
		return nil, err
	}

	atoi := func(key string) int {
		n, _ := strconv.Atoi(fields[key])
		return n
	}
	revenue, _ := strconv.ParseFloat(fields["total_revenue"], 64)

	return &domain.DashboardStats{
		TotalOrders:  atoi("total_orders"),
		Pending:      atoi("pending"),
		Confirmed:    atoi("confirmed"),
		Delivering:   atoi("delivering"),
		Delivered:    atoi("delivered"),
		TotalRevenue: revenue,
	}, nil
}

func (c *RedisDashboardCache) Set(ctx context.Context, day string, stats domain.DashboardStats) error {
	key := c.DayKey(day)
	_, err := c.Client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.HSet(ctx, key, map[string]interface{}{
			"total_orders":  stats.TotalOrders,
			"pending":       stats.Pending,
			"confirmed":     stats.Confirmed,
			"delivering":    stats.Delivering,
			"delivered":     stats.Delivered,
			"total_revenue": strconv.FormatFloat(stats.TotalRevenue, 'f', 2, 64),
		})
		pipe.Expire(ctx, key, c.TTL)
		return nil
	})
	return err
}

func (c *RedisDashboardCache) Invalidate(ctx context.Context, day string) error {
	return c.Client.Del(ctx, c.DayKey(day)).Err()
}
