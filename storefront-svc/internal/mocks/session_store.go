package mocks

import (
	"context"

	"pastelaria/domain"

	"github.com/stretchr/testify/mock"
)

type SessionStore struct {
	mock.Mock
}

func (_m *SessionStore) LoadCart(ctx context.Context, session string) (domain.Cart, error) {
	ret := _m.Called(ctx, session)
	return ret.Get(0).(domain.Cart), ret.Error(1)
}

func (_m *SessionStore) SaveCart(ctx context.Context, session string, cart domain.Cart) error {
	ret := _m.Called(ctx, session, cart)
	return ret.Error(0)
}

func (_m *SessionStore) LoadCustomer(ctx context.Context, session string) (*domain.Customer, error) {
	ret := _m.Called(ctx, session)
	var r0 *domain.Customer
	if v := ret.Get(0); v != nil {
		r0 = v.(*domain.Customer)
	}
	return r0, ret.Error(1)
}

func (_m *SessionStore) SaveCustomer(ctx context.Context, session string, customer domain.Customer) error {
	ret := _m.Called(ctx, session, customer)
	return ret.Error(0)
}

func NewSessionStore(t interface {
	mock.TestingT
	Cleanup(func())
}) *SessionStore {
	m := &SessionStore{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}
