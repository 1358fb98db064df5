package mocks

import (
	"context"

	"pastelaria/catalog"
	"pastelaria/domain"
	"pastelaria/storefront-svc/internal/service"

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

func (_m *MenuServiceInterface) Categories() []catalog.CategoryInfo {
	ret := _m.Called()
	var r0 []catalog.CategoryInfo
	if v := ret.Get(0); v != nil {
		r0 = v.([]catalog.CategoryInfo)
	}
	return r0
}

func (_m *MenuServiceInterface) Settings(ctx context.Context) map[string]string {
	ret := _m.Called(ctx)
	var r0 map[string]string
	if v := ret.Get(0); v != nil {
		r0 = v.(map[string]string)
	}
	return r0
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

type CartServiceInterface struct {
	mock.Mock
}

func (_m *CartServiceInterface) Get(ctx context.Context, session string) (domain.Cart, error) {
	ret := _m.Called(ctx, session)
	return ret.Get(0).(domain.Cart), ret.Error(1)
}

func (_m *CartServiceInterface) AddItem(ctx context.Context, session string, req service.AddItemRequest) (domain.Cart, error) {
	ret := _m.Called(ctx, session, req)
	return ret.Get(0).(domain.Cart), ret.Error(1)
}

func (_m *CartServiceInterface) ChangeQuantity(ctx context.Context, session, name string, delta int) (domain.Cart, error) {
	ret := _m.Called(ctx, session, name, delta)
	return ret.Get(0).(domain.Cart), ret.Error(1)
}

func (_m *CartServiceInterface) RemoveLine(ctx context.Context, session, name string) (domain.Cart, error) {
	ret := _m.Called(ctx, session, name)
	return ret.Get(0).(domain.Cart), ret.Error(1)
}

func (_m *CartServiceInterface) Clear(ctx context.Context, session string) error {
	ret := _m.Called(ctx, session)
	return ret.Error(0)
}

func NewCartServiceInterface(t interface {
	mock.TestingT
	Cleanup(func())
}) *CartServiceInterface {
	m := &CartServiceInterface{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

type CheckoutServiceInterface struct {
	mock.Mock
}

func (_m *CheckoutServiceInterface) Customer(ctx context.Context, session string) (*domain.Customer, error) {
	ret := _m.Called(ctx, session)
	var r0 *domain.Customer
	if v := ret.Get(0); v != nil {
		r0 = v.(*domain.Customer)
	}
	return r0, ret.Error(1)
}

func (_m *CheckoutServiceInterface) Checkout(ctx context.Context, session string, customer domain.Customer) (*service.CheckoutResult, error) {
	ret := _m.Called(ctx, session, customer)
	var r0 *service.CheckoutResult
	if v := ret.Get(0); v != nil {
		r0 = v.(*service.CheckoutResult)
	}
	return r0, ret.Error(1)
}

func (_m *CheckoutServiceInterface) OrderQRCode(ctx context.Context, orderID int64) ([]byte, error) {
	ret := _m.Called(ctx, orderID)
	var r0 []byte
	if v := ret.Get(0); v != nil {
		r0 = v.([]byte)
	}
	return r0, ret.Error(1)
}

func NewCheckoutServiceInterface(t interface {
	mock.TestingT
	Cleanup(func())
}) *CheckoutServiceInterface {
	m := &CheckoutServiceInterface{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}
