package mocks

import (
	"context"

	"pastelaria/admin-svc/internal/service"
	"pastelaria/catalog"
	"pastelaria/domain"

	"github.com/stretchr/testify/mock"
)

type MenuServiceInterface struct {
	mock.Mock
}

func (_m *MenuServiceInterface) List(ctx context.Context, filter catalog.Filter) ([]domain.MenuItem, error) {
	ret := _m.Called(ctx, filter)
	var r0 []domain.MenuItem
	if v := ret.Get(0); v != nil {
		r0 = v.([]domain.MenuItem)
	}
	return r0, ret.Error(1)
}

func (_m *MenuServiceInterface) Add(ctx context.Context, in catalog.Input) (*domain.MenuItem, error) {
	ret := _m.Called(ctx, in)
	var r0 *domain.MenuItem
	if v := ret.Get(0); v != nil {
		r0 = v.(*domain.MenuItem)
	}
	return r0, ret.Error(1)
}

func (_m *MenuServiceInterface) Update(ctx context.Context, id int64, in catalog.Input) (*domain.MenuItem, error) {
	ret := _m.Called(ctx, id, in)
	var r0 *domain.MenuItem
	if v := ret.Get(0); v != nil {
		r0 = v.(*domain.MenuItem)
	}
	return r0, ret.Error(1)
}

func (_m *MenuServiceInterface) Remove(ctx context.Context, id int64) error {
	ret := _m.Called(ctx, id)
	return ret.Error(0)
}

func NewMenuServiceInterface(t interface {
	mock.TestingT
	Cleanup(func())
}) *MenuServiceInterface {
	m := &MenuServiceInterface{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

type SettingsServiceInterface struct {
	mock.Mock
}

func (_m *SettingsServiceInterface) GetAll(ctx context.Context) (map[string]string, error) {
	ret := _m.Called(ctx)
	var r0 map[string]string
	if v := ret.Get(0); v != nil {
		r0 = v.(map[string]string)
	}
	return r0, ret.Error(1)
}

func (_m *SettingsServiceInterface) Save(ctx context.Context, key, value string) (string, error) {
	ret := _m.Called(ctx, key, value)
	return ret.String(0), ret.Error(1)
}

func NewSettingsServiceInterface(t interface {
	mock.TestingT
	Cleanup(func())
}) *SettingsServiceInterface {
	m := &SettingsServiceInterface{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

type OrderServiceInterface struct {
	mock.Mock
}

func (_m *OrderServiceInterface) List(ctx context.Context, limit, offset int, status domain.Status) ([]domain.Order, error) {
	ret := _m.Called(ctx, limit, offset, status)
	var r0 []domain.Order
	if v := ret.Get(0); v != nil {
		r0 = v.([]domain.Order)
	}
	return r0, ret.Error(1)
}

func (_m *OrderServiceInterface) Get(ctx context.Context, id int64) (*domain.Order, error) {
	ret := _m.Called(ctx, id)
	var r0 *domain.Order
	if v := ret.Get(0); v != nil {
		r0 = v.(*domain.Order)
	}
	return r0, ret.Error(1)
}

func (_m *OrderServiceInterface) ChangeStatus(ctx context.Context, id int64, status string, confirmed bool) (*service.StatusChange, error) {
	ret := _m.Called(ctx, id, status, confirmed)
	var r0 *service.StatusChange
	if v := ret.Get(0); v != nil {
		r0 = v.(*service.StatusChange)
	}
	return r0, ret.Error(1)
}

func NewOrderServiceInterface(t interface {
	mock.TestingT
	Cleanup(func())
}) *OrderServiceInterface {
	m := &OrderServiceInterface{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

type DashboardServiceInterface struct {
	mock.Mock
}

func (_m *DashboardServiceInterface) Today(ctx context.Context) domain.DashboardStats {
	ret := _m.Called(ctx)
	return ret.Get(0).(domain.DashboardStats)
}

func (_m *DashboardServiceInterface) Invalidate(ctx context.Context) {
	_m.Called(ctx)
}

func NewDashboardServiceInterface(t interface {
	mock.TestingT
	Cleanup(func())
}) *DashboardServiceInterface {
	m := &DashboardServiceInterface{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

type AlertServiceInterface struct {
	mock.Mock
}

func (_m *AlertServiceInterface) Drain(ctx context.Context) ([]domain.Alert, error) {
	ret := _m.Called(ctx)
	var r0 []domain.Alert
	if v := ret.Get(0); v != nil {
		r0 = v.([]domain.Alert)
	}
	return r0, ret.Error(1)
}

func NewAlertServiceInterface(t interface {
	mock.TestingT
	Cleanup(func())
}) *AlertServiceInterface {
	m := &AlertServiceInterface{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}
