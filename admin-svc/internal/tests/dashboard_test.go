package tests

import (
	"context"
	"errors"
	"testing"
	"time"

	"pastelaria/admin-svc/internal/mocks"
	"pastelaria/admin-svc/internal/service"
	"pastelaria/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestAggregate_RevenueCountsDeliveredOnly(t *testing.T) {
	orders := []domain.Order{
		{Status: domain.StatusPending, TotalAmount: 10},
		{Status: domain.StatusDelivered, TotalAmount: 20},
		{Status: domain.StatusCancelled, TotalAmount: 30},
		{Status: domain.StatusDelivered, TotalAmount: 15},
	}

	stats := service.Aggregate(orders)

	assert.Equal(t, 4, stats.TotalOrders)
	assert.Equal(t, 35.0, stats.TotalRevenue)
	assert.Equal(t, 1, stats.Pending)
	assert.Equal(t, 2, stats.Delivered)
}

func TestAggregate_Empty(t *testing.T) {
	assert.Equal(t, domain.DashboardStats{}, service.Aggregate(nil))
}

var saoPaulo = time.FixedZone("BRT", -3*60*60)

func fixedNow() time.Time {
	// 01:30 UTC is still the previous evening in São Paulo.
	return time.Date(2024, 3, 10, 1, 30, 0, 0, time.UTC)
}

func TestDashboardService_UsesLocalDayWindow(t *testing.T) {
	orders := mocks.NewOrderRepository(t)
	cache := mocks.NewDashboardCache(t)
	svc := service.NewDashboardService(orders, cache, saoPaulo).WithClock(fixedNow)

	from := time.Date(2024, 3, 9, 0, 0, 0, 0, saoPaulo)
	to := time.Date(2024, 3, 10, 0, 0, 0, 0, saoPaulo)
	want := domain.DashboardStats{TotalOrders: 1, Delivered: 1, TotalRevenue: 20}

	cache.On("Get", mock.Anything, "2024-03-09").Return(nil, nil).Once()
	orders.On("GetOrdersBetween", mock.Anything, mock.MatchedBy(from.Equal), mock.MatchedBy(to.Equal)).
		Return([]domain.Order{{Status: domain.StatusDelivered, TotalAmount: 20}}, nil).Once()
	cache.On("Set", mock.Anything, "2024-03-09", want).Return(nil).Once()

	assert.Equal(t, want, svc.Today(context.Background()))
}

func TestDashboardService_CacheHitSkipsOrders(t *testing.T) {
	orders := mocks.NewOrderRepository(t)
	cache := mocks.NewDashboardCache(t)
	svc := service.NewDashboardService(orders, cache, saoPaulo).WithClock(fixedNow)

	cached := &domain.DashboardStats{TotalOrders: 9}
	cache.On("Get", mock.Anything, "2024-03-09").Return(cached, nil).Once()

	assert.Equal(t, 9, svc.Today(context.Background()).TotalOrders)
	orders.AssertNotCalled(t, "GetOrdersBetween", mock.Anything, mock.Anything, mock.Anything)
}

func TestDashboardService_ZerosWhenOrdersFail(t *testing.T) {
	orders := mocks.NewOrderRepository(t)
	cache := mocks.NewDashboardCache(t)
	svc := service.NewDashboardService(orders, cache, saoPaulo).WithClock(fixedNow)

	cache.On("Get", mock.Anything, "2024-03-09").Return(nil, errors.New("redis down")).Once()
	orders.On("GetOrdersBetween", mock.Anything, mock.Anything, mock.Anything).
		Return(nil, errors.New("db down")).Once()

	assert.Equal(t, domain.DashboardStats{}, svc.Today(context.Background()))
}

func TestDashboardService_WithoutCache(t *testing.T) {
	orders := mocks.NewOrderRepository(t)
	svc := service.NewDashboardService(orders, nil, saoPaulo).WithClock(fixedNow)

	orders.On("GetOrdersBetween", mock.Anything, mock.Anything, mock.Anything).
		Return([]domain.Order{{Status: domain.StatusPending, TotalAmount: 10}}, nil).Once()

	svc.Invalidate(context.Background())
	assert.Equal(t, 1, svc.Today(context.Background()).Pending)
}

func TestDashboardService_InvalidateDropsToday(t *testing.T) {
	cache := mocks.NewDashboardCache(t)
	svc := service.NewDashboardService(mocks.NewOrderRepository(t), cache, saoPaulo).WithClock(fixedNow)

	cache.On("Invalidate", mock.Anything, "2024-03-09").Return(nil).Once()

	svc.Invalidate(context.Background())
}
