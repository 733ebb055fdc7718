package mocks

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"crisis-server/internal/model"
	"crisis-server/internal/repository"
)

// MockDailyScenarioCache is a mock type for the DailyScenarioCache type
type MockDailyScenarioCache struct {
	mock.Mock
}

// Get provides a mock function with given fields: ctx, userID, day
func (_m *MockDailyScenarioCache) Get(ctx context.Context, userID uuid.UUID, day string) (*model.Scenario, error) {
	ret := _m.Called(ctx, userID, day)

	var r0 *model.Scenario
	if rf, ok := ret.Get(0).(func(context.Context, uuid.UUID, string) *model.Scenario); ok {
		r0 = rf(ctx, userID, day)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).(*model.Scenario)
		}
	}

	var r1 error
	if rf, ok := ret.Get(1).(func(context.Context, uuid.UUID, string) error); ok {
		r1 = rf(ctx, userID, day)
	} else {
		err := ret.Error(1)
		if err != nil {
			r1 = err
		}
	}

	return r0, r1
}

// Set provides a mock function with given fields: ctx, userID, day, scenario, ttl
func (_m *MockDailyScenarioCache) Set(ctx context.Context, userID uuid.UUID, day string, scenario *model.Scenario, ttl time.Duration) error {
	ret := _m.Called(ctx, userID, day, scenario, ttl)

	var r0 error
	if rf, ok := ret.Get(0).(func(context.Context, uuid.UUID, string, *model.Scenario, time.Duration) error); ok {
		r0 = rf(ctx, userID, day, scenario, ttl)
	} else {
		err := ret.Error(0)
		if err != nil {
			r0 = err
		}
	}

	return r0
}

// NewMockDailyScenarioCache creates a new instance of MockDailyScenarioCache. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
func NewMockDailyScenarioCache(t interface {
	mock.TestingT
	Helper()
}) *MockDailyScenarioCache {
	m := &MockDailyScenarioCache{}
	m.Mock.Test(t)
	t.Helper()
	return m
}

var _ repository.DailyScenarioCache = (*MockDailyScenarioCache)(nil)
