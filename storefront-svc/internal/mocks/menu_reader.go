package mocks

import (
	"context"

	"pastelaria/catalog"
	"pastelaria/domain"

	"github.com/stretchr/testify/mock"
)

type MenuReader struct {
	mock.Mock
}

func (_m *MenuReader) List(ctx context.Context, filter catalog.Filter) ([]domain.MenuItem, error) {
	ret := _m.Called(ctx, filter)
	var r0 []domain.MenuItem
	if v := ret.Get(0); v != nil {
		r0 = v.([]domain.MenuItem)
	}
	return r0, ret.Error(1)
}

func (_m *MenuReader) Get(ctx context.Context, id int64) (*domain.MenuItem, error) {
	ret := _m.Called(ctx, id)
	var r0 *domain.MenuItem
	if v := ret.Get(0); v != nil {
		r0 = v.(*domain.MenuItem)
	}
	return r0, ret.Error(1)
}

func (_m *MenuReader) Categories() []catalog.CategoryInfo {
	ret := _m.Called()
	var r0 []catalog.CategoryInfo
	if v := ret.Get(0); v != nil {
		r0 = v.([]catalog.CategoryInfo)
	}
	return r0
}

func NewMenuReader(t interface {
	mock.TestingT
	Cleanup(func())
}) *MenuReader {
	m := &MenuReader{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}
