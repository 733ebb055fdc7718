package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"crisis-server/internal/model"
	"crisis-server/internal/repository"
)

// MockScenarioRepository is a mock type for the ScenarioRepository type
type MockScenarioRepository struct {
	mock.Mock
}

// Save provides a mock function with given fields: ctx, scenario
func (_m *MockScenarioRepository) Save(ctx context.Context, scenario *model.Scenario) error {
	ret := _m.Called(ctx, scenario)

	var r0 error
	if rf, ok := ret.Get(0).(func(context.Context, *model.Scenario) error); ok {
		r0 = rf(ctx, scenario)
	} else {
		err := ret.Error(0)
		if err != nil {
			r0 = err
		}
	}

	return r0
}

// GetByID provides a mock function with given fields: ctx, id
func (_m *MockScenarioRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Scenario, error) {
	ret := _m.Called(ctx, id)

	var r0 *model.Scenario
	if rf, ok := ret.Get(0).(func(context.Context, uuid.UUID) *model.Scenario); ok {
		r0 = rf(ctx, id)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).(*model.Scenario)
		}
	}

	var r1 error
	if rf, ok := ret.Get(1).(func(context.Context, uuid.UUID) error); ok {
		r1 = rf(ctx, id)
	} else {
		err := ret.Error(1)
		if err != nil {
			r1 = err
		}
	}

	return r0, r1
}

// ListUsedKeys provides a mock function with given fields: ctx, userID
func (_m *MockScenarioRepository) ListUsedKeys(ctx context.Context, userID uuid.UUID) ([]string, error) {
	ret := _m.Called(ctx, userID)

	var r0 []string
	if rf, ok := ret.Get(0).(func(context.Context, uuid.UUID) []string); ok {
		r0 = rf(ctx, userID)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).([]string)
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

// NewMockScenarioRepository creates a new instance of MockScenarioRepository. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
func NewMockScenarioRepository(t interface {
	mock.TestingT
	Helper()
}) *MockScenarioRepository {
	m := &MockScenarioRepository{}
	m.Mock.Test(t)
	t.Helper()
	return m
}

var _ repository.ScenarioRepository = (*MockScenarioRepository)(nil)
