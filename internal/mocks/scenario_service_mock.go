package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"crisis-server/internal/engine"
	"crisis-server/internal/model"
	"crisis-server/internal/service"
)

// MockScenarioService is a mock type for the ScenarioService type
type MockScenarioService struct {
	mock.Mock
}

// Generate provides a mock function with given fields: ctx, userID, params
func (_m *MockScenarioService) Generate(ctx context.Context, userID uuid.UUID, params service.GenerateParams) (*model.Scenario, error) {
	ret := _m.Called(ctx, userID, params)

	var r0 *model.Scenario
	if rf, ok := ret.Get(0).(func(context.Context, uuid.UUID, service.GenerateParams) *model.Scenario); ok {
		r0 = rf(ctx, userID, params)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).(*model.Scenario)
		}
	}

	var r1 error
	if rf, ok := ret.Get(1).(func(context.Context, uuid.UUID, service.GenerateParams) error); ok {
		r1 = rf(ctx, userID, params)
	} else {
		err := ret.Error(1)
		if err != nil {
			r1 = err
		}
	}

	return r0, r1
}

// GenerateDaily provides a mock function with given fields: ctx, userID
func (_m *MockScenarioService) GenerateDaily(ctx context.Context, userID uuid.UUID) (*model.Scenario, error) {
	ret := _m.Called(ctx, userID)

	var r0 *model.Scenario
	if rf, ok := ret.Get(0).(func(context.Context, uuid.UUID) *model.Scenario); ok {
		r0 = rf(ctx, userID)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).(*model.Scenario)
		}
	}

	var r1 error
	if rf, ok := ret.Get(1).(func(context.Context, uuid.UUID) error); ok {
		r1 = rf(ctx, userID)
	} else {
		err := ret.Error(1)
		if err != nil {
			r1 = err
		}
	}

	return r0, r1
}

// RecordResponse provides a mock function with given fields: ctx, userID, scenarioID, score
func (_m *MockScenarioService) RecordResponse(ctx context.Context, userID uuid.UUID, scenarioID uuid.UUID, score int) error {
	ret := _m.Called(ctx, userID, scenarioID, score)

	var r0 error
	if rf, ok := ret.Get(0).(func(context.Context, uuid.UUID, uuid.UUID, int) error); ok {
		r0 = rf(ctx, userID, scenarioID, score)
	} else {
		err := ret.Error(0)
		if err != nil {
			r0 = err
		}
	}

	return r0
}

// Stats provides a mock function with no fields
func (_m *MockScenarioService) Stats() engine.AlgorithmStats {
	ret := _m.Called()

	var r0 engine.AlgorithmStats
	if rf, ok := ret.Get(0).(func() engine.AlgorithmStats); ok {
		r0 = rf()
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).(engine.AlgorithmStats)
		}
	}

	return r0
}

// NewMockScenarioService creates a new instance of MockScenarioService. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
func NewMockScenarioService(t interface {
	mock.TestingT
	Helper()
}) *MockScenarioService {
	m := &MockScenarioService{}
	m.Mock.Test(t)
	t.Helper()
	return m
}

var _ service.ScenarioService = (*MockScenarioService)(nil)
