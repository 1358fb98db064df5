package mocks

import (
	"context"

	"pastelaria/domain"

	"github.com/stretchr/testify/mock"
)

type OrderPublisher struct {
	mock.Mock
}

func (_m *OrderPublisher) PublishOrderEvent(ctx context.Context, event domain.OrderEvent) error {
	ret := _m.Called(ctx, event)
	return ret.Error(0)
}

func NewOrderPublisher(t interface {
	mock.TestingT
	Cleanup(func())
}) *OrderPublisher {
	m := &OrderPublisher{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

type Notifier struct {
	mock.Mock
}

func (_m *Notifier) Dispatch(ctx context.Context, notification domain.Notification) error {
	ret := _m.Called(ctx, notification)
	return ret.Error(0)
}

func NewNotifier(t interface {
	mock.TestingT
	Cleanup(func())
}) *Notifier {
	m := &Notifier{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

type DashboardCache struct {
	mock.Mock
}

func (_m *DashboardCache) Get(ctx context.Context, day string) (*domain.DashboardStats, error) {
	ret := _m.Called(ctx, day)
	var r0 *domain.DashboardStats
	if v := ret.Get(0); v != nil {
		r0 = v.(*domain.DashboardStats)
	}
	return r0, ret.Error(1)
}

func (_m *DashboardCache) Set(ctx context.Context, day string, stats domain.DashboardStats) error {
	ret := _m.Called(ctx, day, stats)
	return ret.Error(0)
}

func (_m *DashboardCache) Invalidate(ctx context.Context, day string) error {
	ret := _m.Called(ctx, day)
	return ret.Error(0)
}

func NewDashboardCache(t interface {
	mock.TestingT
	Cleanup(func())
}) *DashboardCache {
	m := &DashboardCache{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

type AlertFeed struct {
	mock.Mock
}

func (_m *AlertFeed) Push(ctx context.Context, alert domain.Alert) (bool, error) {
	ret := _m.Called(ctx, alert)
	return ret.Bool(0), ret.Error(1)
}

func (_m *AlertFeed) Drain(ctx context.Context) ([]domain.Alert, error) {
	ret := _m.Called(ctx)
	var r0 []domain.Alert
	if v := ret.Get(0); v != nil {
		r0 = v.([]domain.Alert)
	}
	return r0, ret.Error(1)
}

func NewAlertFeed(t interface {
	mock.TestingT
	Cleanup(func())
}) *AlertFeed {
	m := &AlertFeed{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}
