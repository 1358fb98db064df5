package mocks

import (
	"context"
	"time"

	"pastelaria/domain"

	"github.com/stretchr/testify/mock"
)

type OrderRepository struct {
	mock.Mock
}

func (_m *OrderRepository) GetOrder(ctx context.Context, id int64) (*domain.Order, error) {
	ret := _m.Called(ctx, id)
	var r0 *domain.Order
	if v := ret.Get(0); v != nil {
		r0 = v.(*domain.Order)
	}
	return r0, ret.Error(1)
}

func (_m *OrderRepository) GetOrders(ctx context.Context, limit, offset int, status domain.Status) ([]domain.Order, error) {
	ret := _m.Called(ctx, limit, offset, status)
	var r0 []domain.Order
	if v := ret.Get(0); v != nil {
		r0 = v.([]domain.Order)
	}
	return r0, ret.Error(1)
}

func (_m *OrderRepository) GetOrdersBetween(ctx context.Context, from, to time.Time) ([]domain.Order, error) {
	ret := _m.Called(ctx, from, to)
	var r0 []domain.Order
	if v := ret.Get(0); v != nil {
		r0 = v.([]domain.Order)
	}
	return r0, ret.Error(1)
}

func (_m *OrderRepository) UpdateOrderStatus(ctx context.Context, id int64, status domain.Status) (*domain.Order, error) {
	ret := _m.Called(ctx, id, status)
	var r0 *domain.Order
	if v := ret.Get(0); v != nil {
		r0 = v.(*domain.Order)
	}
	return r0, ret.Error(1)
}

func NewOrderRepository(t interface {
	mock.TestingT
	Cleanup(func())
}) *OrderRepository {
	m := &OrderRepository{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

type SettingsRepository struct {
	mock.Mock
}

func (_m *SettingsRepository) GetAllSettings(ctx context.Context) (map[string]string, error) {
	ret := _m.Called(ctx)
	var r0 map[string]string
	if v := ret.Get(0); v != nil {
		r0 = v.(map[string]string)
	}
	return r0, ret.Error(1)
}

func (_m *SettingsRepository) SaveSetting(ctx context.Context, key, value string) (string, error) {
	ret := _m.Called(ctx, key, value)
	return ret.String(0), ret.Error(1)
}

func NewSettingsRepository(t interface {
	mock.TestingT
	Cleanup(func())
}) *SettingsRepository {
	m := &SettingsRepository{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}
