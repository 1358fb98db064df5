package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
)

type SettingsReader struct {
	mock.Mock
}

func (_m *SettingsReader) GetAllSettings(ctx context.Context) (map[string]string, error) {
	ret := _m.Called(ctx)
	var r0 map[string]string
	if v := ret.Get(0); v != nil {
		r0 = v.(map[string]string)
	}
	return r0, ret.Error(1)
}

func NewSettingsReader(t interface {
	mock.TestingT
	Cleanup(func())
}) *SettingsReader {
	m := &SettingsReader{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}
