package mocks

import (
	"context"

	"pastelaria/domain"

	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/mock"
)

type MessageReader struct {
	mock.Mock
}

func (_m *MessageReader) ReadMessage(ctx context.Context) (kafka.Message, error) {
	ret := _m.Called(ctx)
	return ret.Get(0).(kafka.Message), ret.Error(1)
}

func NewMessageReader(t interface {
	mock.TestingT
	Cleanup(func())
}) *MessageReader {
	m := &MessageReader{}
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

func NewAlertFeed(t interface {
	mock.TestingT
	Cleanup(func())
}) *AlertFeed {
	m := &AlertFeed{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

type DashboardCache struct {
	mock.Mock
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
