package storage

import (
	"context"
	"testing"
	"time"

	"pastelaria/domain"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupRedis(t *testing.T) (*miniredis.Miniredis, *redis.Client) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })
	return mr, client
}

func TestRedisSessionStore_Cart(t *testing.T) {
	mr, client := setupRedis(t)
	store := NewRedisSessionStore(client, time.Hour)
	ctx := context.Background()

	cart, err := store.LoadCart(ctx, "abc")
	require.NoError(t, err)
	assert.True(t, cart.Empty())

	require.NoError(t, cart.Add("Pastel de Queijo", 11.9, "Queijo", 1))
	require.NoError(t, cart.Add("Pastel de Queijo", 99, "", 2))
	require.NoError(t, store.SaveCart(ctx, "abc", cart))

	assert.True(t, mr.Exists(KeyCartPrefix+"abc"))
	assert.Equal(t, time.Hour, mr.TTL(KeyCartPrefix+"abc"))

	loaded, err := store.LoadCart(ctx, "abc")
	require.NoError(t, err)
	require.Len(t, loaded.Lines, 1)
	assert.Equal(t, 3, loaded.Lines[0].Quantity)
	assert.Equal(t, 11.9, loaded.Lines[0].Price)

	mr.FastForward(2 * time.Hour)
	expired, err := store.LoadCart(ctx, "abc")
	require.NoError(t, err)
	assert.True(t, expired.Empty())
}

func TestRedisSessionStore_Customer(t *testing.T) {
	_, client := setupRedis(t)
	store := NewRedisSessionStore(client, time.Hour)
	ctx := context.Background()

	customer, err := store.LoadCustomer(ctx, "abc")
	require.NoError(t, err)
	assert.Nil(t, customer)

	require.NoError(t, store.SaveCustomer(ctx, "abc", domain.Customer{Name: "Bruno", Neighborhood: "Centro"}))

	customer, err = store.LoadCustomer(ctx, "abc")
	require.NoError(t, err)
	assert.Equal(t, "Bruno", customer.Name)
	assert.Equal(t, "Centro", customer.Neighborhood)
}

func TestRedisAlertFeed_PushAndDrain(t *testing.T) {
	mr, client := setupRedis(t)
	feed := NewRedisAlertFeed(client, 10*time.Second)
	ctx := context.Background()

	pushed, err := feed.Push(ctx, domain.Alert{OrderID: 7, CustomerName: "Ana", TotalAmount: 25})
	require.NoError(t, err)
	assert.True(t, pushed)

	pushed, err = feed.Push(ctx, domain.Alert{OrderID: 7, CustomerName: "Ana", TotalAmount: 25})
	require.NoError(t, err)
	assert.False(t, pushed)

	mr.FastForward(11 * time.Second)
	pushed, err = feed.Push(ctx, domain.Alert{OrderID: 7})
	require.NoError(t, err)
	assert.True(t, pushed)

	_, err = feed.Push(ctx, domain.Alert{OrderID: 8, CustomerName: "Bia"})
	require.NoError(t, err)

	alerts, err := feed.Drain(ctx)
	require.NoError(t, err)
	require.Len(t, alerts, 3)
	assert.Equal(t, int64(8), alerts[0].OrderID)
	assert.Equal(t, "Ana", alerts[2].CustomerName)

	alerts, err = feed.Drain(ctx)
	require.NoError(t, err)
	assert.Empty(t, alerts)
}

func TestRedisAlertFeed_FailedQueueReleasesMarker(t *testing.T) {
	mr, client := setupRedis(t)
	feed := NewRedisAlertFeed(client, time.Minute)
	ctx := context.Background()

	require.NoError(t, mr.Set(alertsKey, "not a list"))

	pushed, err := feed.Push(ctx, domain.Alert{OrderID: 9})
	assert.Error(t, err)
	assert.False(t, pushed)
	assert.False(t, mr.Exists(alertMarkerBase+"9"))

	mr.Del(alertsKey)
	pushed, err = feed.Push(ctx, domain.Alert{OrderID: 9})
	require.NoError(t, err)
	assert.True(t, pushed)
}

func TestRedisAlertFeed_TrimsQueue(t *testing.T) {
	_, client := setupRedis(t)
	feed := NewRedisAlertFeed(client, time.Second)
	ctx := context.Background()

	for i := 1; i <= 55; i++ {
		_, err := feed.Push(ctx, domain.Alert{OrderID: int64(i)})
		require.NoError(t, err)
	}

	alerts, err := feed.Drain(ctx)
	require.NoError(t, err)
	assert.Len(t, alerts, 50)
	assert.Equal(t, int64(55), alerts[0].OrderID)
}

func TestRedisDashboardCache(t *testing.T) {
	mr, client := setupRedis(t)
	cache := NewRedisDashboardCache(client, 30*time.Second)
	ctx := context.Background()

	stats, err := cache.Get(ctx, "2026-03-01")
	require.NoError(t, err)
	assert.Nil(t, stats)

	want := domain.DashboardStats{TotalOrders: 4, Pending: 1, Delivered: 2, TotalRevenue: 35}
	require.NoError(t, cache.Set(ctx, "2026-03-01", want))
	assert.Equal(t, 30*time.Second, mr.TTL("dashboard:2026-03-01"))

	stats, err = cache.Get(ctx, "2026-03-01")
	require.NoError(t, err)
	require.NotNil(t, stats)
	assert.Equal(t, want, *stats)

	require.NoError(t, cache.Invalidate(ctx, "2026-03-01"))
	stats, err = cache.Get(ctx, "2026-03-01")
	require.NoError(t, err)
	assert.Nil(t, stats)
}
